// Package admin implements the administrator surface: aggregate user
// statistics and full-state export/import.
package admin

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ramadankeeper/internal/catalog"
	"github.com/dmitrijs2005/ramadankeeper/internal/logging"
	"github.com/dmitrijs2005/ramadankeeper/internal/storage"
	"github.com/dmitrijs2005/ramadankeeper/internal/tracker"
	"github.com/dmitrijs2005/ramadankeeper/internal/users"
)

// Service wires the directory, the grid, the raw store, and the displayed
// catalog state together for the admin operations.
//
// The raw store handle is deliberate: the import path writes tracker keys
// verbatim, one key at a time, with no cross-key transaction. A crash mid
// import leaves a partial write; that is the documented behavior of the
// persisted format, not something to fix here.
type Service struct {
	users  *users.Service
	grid   *tracker.Grid
	store  storage.Store
	state  *catalog.State
	log    logging.Logger
	reload func()
	now    func() time.Time
}

func NewService(us *users.Service, grid *tracker.Grid, store storage.Store, state *catalog.State, log logging.Logger) *Service {
	return &Service{
		users: us,
		grid:  grid,
		store: store,
		state: state,
		log:   log,
		now:   time.Now,
	}
}

// OnReload registers a callback invoked after every successful import, so
// the caller can rebuild whatever state it derives from the store (session,
// rendered views).
func (s *Service) OnReload(fn func()) {
	s.reload = fn
}

// AggregateStats summarizes the user directory for the admin stat cards.
type AggregateStats struct {
	TotalUsers  int
	JoinedToday int
	Admins      int
}

// Aggregate computes totals over the registered-user list. JoinedToday
// round-trips each joinDate through its layout and compares the result to
// today's formatted date; unparseable dates simply do not count.
func (s *Service) Aggregate(ctx context.Context) (*AggregateStats, error) {
	list, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now().Format(users.JoinDateLayout)

	stats := &AggregateStats{TotalUsers: len(list)}
	for _, u := range list {
		parsed, err := time.Parse(users.JoinDateLayout, u.JoinDate)
		if err == nil && parsed.Format(users.JoinDateLayout) == today {
			stats.JoinedToday++
		}
		if u.IsAdmin {
			stats.Admins++
		}
	}

	return stats, nil
}
