package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/ramadankeeper/internal/tracker"
	"github.com/dmitrijs2005/ramadankeeper/internal/users"
)

// requireUser returns the session user or prints the login hint.
func (a *App) requireUser(ctx context.Context) *users.User {
	u := a.session.Current(ctx)
	if u == nil {
		printlnFn("Please log in to track your progress")
	}
	return u
}

// ShowDay lists the checklist of one day with its completion ratio and
// band. With no argument it shows the configured current day.
func (a *App) ShowDay(ctx context.Context, args []string) error {
	user := a.requireUser(ctx)
	if user == nil {
		return nil
	}

	day := a.config.CurrentDay
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			printlnFn("Usage: day [1..30]")
			return nil
		}
		day = parsed
	}

	header := fmt.Sprintf("Day %d", day)
	if day == a.config.CurrentDay {
		header += " (today)"
	}

	ratio, err := a.grid.DayRatio(ctx, user.ID, day)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(header)
	for _, task := range tracker.Tasks {
		done, err := a.grid.Task(ctx, user.ID, day, task)
		if err != nil {
			printlnFn(err.Error())
			return err
		}
		mark := "[ ]"
		if done {
			mark = "[x]"
		}
		printlnFn("  " + mark + " " + task)
	}

	printlnFn(fmt.Sprintf("Progress: %d%% (%s)", ratio, tracker.BandFor(ratio)))

	complete, err := a.grid.DayComplete(ctx, user.ID, day)
	if err != nil {
		return err
	}
	if complete {
		printlnFn("Day fully complete, well done!")
	}
	return nil
}

// Check marks (or unmarks, when done is false) one task of one day and
// reports the day's new progress.
func (a *App) Check(ctx context.Context, args []string, done bool) error {
	user := a.requireUser(ctx)
	if user == nil {
		return nil
	}

	if len(args) < 2 {
		printlnFn("Usage: check <day> <task> / uncheck <day> <task>")
		return nil
	}

	day, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Usage: check <day> <task> / uncheck <day> <task>")
		return nil
	}
	task := args[1]

	if err := a.grid.SetTask(ctx, user.ID, day, task, done); err != nil {
		printlnFn(err.Error())
		return err
	}

	ratio, err := a.grid.DayRatio(ctx, user.ID, day)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Day %d progress: %d%% (%s)", day, ratio, tracker.BandFor(ratio)))
	return nil
}
