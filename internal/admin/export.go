package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/ramadankeeper/internal/catalog"
	"github.com/dmitrijs2005/ramadankeeper/internal/filex"
	"github.com/dmitrijs2005/ramadankeeper/internal/tracker"
	"github.com/dmitrijs2005/ramadankeeper/internal/users"
)

// DefaultExportFilename is used when the caller gives no path.
const DefaultExportFilename = "ramadan-tracker-export.json"

// Document is the export/import wire format. TrackerData nests as
// {userId: {"day1".."day30": {task: bool}}} and materializes every cell of
// every registered user's grid, untouched cells included.
type Document struct {
	Users       []users.User                          `json:"users"`
	TrackerData map[string]map[string]map[string]bool `json:"trackerData"`
	Resources   catalog.Document                      `json:"resources"`
}

// ExportAll serializes the full application state as pretty-printed JSON.
// The resources section snapshots the displayed lists, not the source
// catalog document.
func (s *Service) ExportAll(ctx context.Context) ([]byte, error) {
	list, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}

	trackerData := make(map[string]map[string]map[string]bool, len(list))
	for _, u := range list {
		m, err := s.grid.Matrix(ctx, u.ID)
		if err != nil {
			return nil, err
		}

		days := make(map[string]map[string]bool, tracker.DaysInPeriod)
		for day := 1; day <= tracker.DaysInPeriod; day++ {
			tasks := make(map[string]bool, len(tracker.Tasks))
			for _, task := range tracker.Tasks {
				tasks[task] = m.Done(day, task)
			}
			days[fmt.Sprintf("day%d", day)] = tasks
		}
		trackerData[u.ID] = days
	}

	doc := Document{
		Users:       list,
		TrackerData: trackerData,
		Resources:   s.state.Snapshot(),
	}

	return json.MarshalIndent(doc, "", "  ")
}

// WriteExportFile writes the export document to path. When path is empty
// the file goes to exports/DefaultExportFilename under the working
// directory. Returns the path written.
func (s *Service) WriteExportFile(ctx context.Context, path string) (string, error) {
	if path == "" {
		dir, err := filex.EnsureSubDir("exports")
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, DefaultExportFilename)
	}

	data, err := s.ExportAll(ctx)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
