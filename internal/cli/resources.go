package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/ramadankeeper/internal/catalog"
	"github.com/dmitrijs2005/ramadankeeper/internal/common"
)

// Resources prints the three displayed catalog categories.
func (a *App) Resources(ctx context.Context) error {
	doc := a.catalog.Snapshot()

	sections := []struct {
		title string
		list  []catalog.Resource
	}{
		{"Prayers", doc.Prayers},
		{"Quran", doc.Quran},
		{"Lessons", doc.Lessons},
	}

	for _, s := range sections {
		printlnFn(s.title + ":")
		for _, r := range s.list {
			printlnFn("  " + r.Title + " - " + r.URL)
		}
	}
	return nil
}

// AddResource appends a link to one displayed category. Admin-only, and
// in-memory only: additions live in the rendered state (and in exports),
// never in the persisted store.
func (a *App) AddResource(ctx context.Context, args []string) error {
	if a.requireAdmin(ctx) == nil {
		return nil
	}

	if len(args) < 1 {
		printlnFn("Usage: addresource <prayers|quran|lessons>")
		return nil
	}
	category := args[0]

	title, err := GetSimpleText(a.reader, "Enter resource title", os.Stdout)
	if err != nil {
		return err
	}
	url, err := GetSimpleText(a.reader, "Enter resource URL", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.catalog.Add(category, catalog.Resource{Title: title, URL: url}); err != nil {
		if errors.Is(err, common.ErrValidation) {
			printlnFn(err.Error())
			return nil
		}
		return err
	}

	printlnFn("Resource added")
	return nil
}
