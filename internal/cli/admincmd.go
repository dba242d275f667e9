package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/ramadankeeper/internal/common"
	"github.com/dmitrijs2005/ramadankeeper/internal/users"
)

// requireAdmin returns the session user when it is the admin, printing a
// refusal otherwise.
func (a *App) requireAdmin(ctx context.Context) *users.User {
	u := a.session.Current(ctx)
	if u == nil || !u.IsAdmin {
		printlnFn("Admin access required")
		return nil
	}
	return u
}

// Users prints the aggregate stat cards of the admin page.
func (a *App) Users(ctx context.Context) error {
	if a.requireAdmin(ctx) == nil {
		return nil
	}

	stats, err := a.admin.Aggregate(ctx)
	if err != nil {
		a.log.Error(ctx, "aggregate stats failed", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Total users:  %d", stats.TotalUsers))
	printlnFn(fmt.Sprintf("Joined today: %d", stats.JoinedToday))
	printlnFn(fmt.Sprintf("Admins:       %d", stats.Admins))
	return nil
}

// Export writes the full application state to a file, the default export
// name when no path is given.
func (a *App) Export(ctx context.Context, args []string) error {
	if a.requireAdmin(ctx) == nil {
		return nil
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	written, err := a.admin.WriteExportFile(ctx, path)
	if err != nil {
		a.log.Error(ctx, "export failed", "error", err)
		printlnFn("Export failed: " + err.Error())
		return err
	}

	printlnFn("Exported to " + written)
	return nil
}

// Import applies an export document from a file. A parse failure reports
// the underlying message and leaves state untouched.
func (a *App) Import(ctx context.Context, args []string) error {
	if a.requireAdmin(ctx) == nil {
		return nil
	}

	if len(args) < 1 {
		printlnFn("Usage: import <path>")
		return nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		printlnFn("Cannot read file: " + err.Error())
		return err
	}

	if err := a.admin.ImportAll(ctx, data); err != nil {
		if errors.Is(err, common.ErrImportParse) {
			printlnFn("Error importing file: " + err.Error())
		} else {
			a.log.Error(ctx, "import failed", "error", err)
			printlnFn("Import failed: " + err.Error())
		}
		return err
	}

	printlnFn("Data imported successfully")
	return nil
}
