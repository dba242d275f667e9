package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/ramadankeeper/internal/tracker"
)

// Stats shows the profile page: account details and the whole-period
// counters.
func (a *App) Stats(ctx context.Context) error {
	user := a.requireUser(ctx)
	if user == nil {
		return nil
	}

	printlnFn(fmt.Sprintf("[%s] %s <%s>, joined %s", user.AvatarInitial(), user.Username, user.Email, user.JoinDate))

	remaining := tracker.DaysInPeriod - a.config.CurrentDay
	if remaining > 0 {
		printlnFn(fmt.Sprintf("Remaining days: %d", remaining))
	} else {
		printlnFn("The period is over")
	}

	stats, err := a.grid.Stats(ctx, user.ID)
	if err != nil {
		a.log.Error(ctx, "stats failed", "user", user.ID, "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Completed days:    %d", stats.CompletedDays))
	printlnFn(fmt.Sprintf("Completion rate:   %d%%", stats.CompletionRate))
	printlnFn(fmt.Sprintf("Completed prayers: %d", stats.CompletedPrayers))
	printlnFn(fmt.Sprintf("Completed juz:     %d", stats.CompletedJuz))
	return nil
}

// Reset wipes the user's whole grid after a typed confirmation. The
// confirmation lives here; the grid itself does not ask.
func (a *App) Reset(ctx context.Context) error {
	user := a.requireUser(ctx)
	if user == nil {
		return nil
	}

	answer, err := GetSimpleText(a.reader, "This removes all your tracked progress. Type 'yes' to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Reset cancelled")
		return nil
	}

	if err := a.grid.Reset(ctx, user.ID); err != nil {
		a.log.Error(ctx, "reset failed", "user", user.ID, "error", err)
		printlnFn("Reset failed, please try again")
		return err
	}

	printlnFn("Your data has been reset")
	return nil
}
