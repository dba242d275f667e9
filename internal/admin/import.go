package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/ramadankeeper/internal/catalog"
	"github.com/dmitrijs2005/ramadankeeper/internal/common"
	"github.com/dmitrijs2005/ramadankeeper/internal/users"
)

// importDocument mirrors Document with pointer fields so absent top-level
// sections can be told apart from empty ones. Partial documents are honored
// section by section.
type importDocument struct {
	Users       *[]users.User                         `json:"users"`
	TrackerData map[string]map[string]map[string]bool `json:"trackerData"`
	Resources   *catalog.Document                     `json:"resources"`
}

// ImportAll applies an export document to the store.
//
//   - A parse failure returns common.ErrImportParse carrying the underlying
//     message, and no state is touched.
//   - `users` replaces the whole list; no merge, no dedup.
//   - `trackerData` writes each cell as the literal "true"/"false" string
//     under `${userId}-${dayToken}-${task}`, the day token taken verbatim
//     from the document (it is "day1".."day30" in exports).
//   - `resources` replaces the displayed lists.
//
// Writes are per-key; the operation is not atomic. On success the reload
// callback fires so derived state is rebuilt.
func (s *Service) ImportAll(ctx context.Context, data []byte) error {
	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", common.ErrImportParse, err)
	}

	if doc.Users != nil {
		if err := s.users.Replace(ctx, *doc.Users); err != nil {
			return err
		}
	}

	if doc.TrackerData != nil {
		for userID, days := range doc.TrackerData {
			for dayToken, tasks := range days {
				for task, done := range tasks {
					key := userID + "-" + dayToken + "-" + task
					if err := s.store.Set(ctx, key, strconv.FormatBool(done)); err != nil {
						return err
					}
				}
			}
		}
	}

	if doc.Resources != nil {
		s.state.Set(*doc.Resources)
	}

	s.log.Info(ctx, "import applied",
		"users", doc.Users != nil,
		"trackerData", doc.TrackerData != nil,
		"resources", doc.Resources != nil)

	if s.reload != nil {
		s.reload()
	}

	return nil
}
