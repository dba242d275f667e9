package tracker

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/dmitrijs2005/ramadankeeper/internal/common"
	"github.com/dmitrijs2005/ramadankeeper/internal/storage"
)

// completedValue is the literal stored for a done task. Reads compare
// against it with string equality; any other value, or an absent key,
// means not done.
const completedValue = "true"

// Stats summarizes one user's whole period.
type Stats struct {
	// CompletedDays counts days with all tasks done.
	CompletedDays int
	// CompletionRate is round(CompletedDays/30*100).
	CompletionRate int
	// CompletedPrayers sums done prayer-task cells across all days.
	CompletedPrayers int
	// CompletedJuz counts days with the juz task done.
	CompletedJuz int
}

// Grid reads and writes the per-user day/task matrix in the key/value
// store, one cell per key.
type Grid struct {
	store storage.Store
}

func NewGrid(store storage.Store) *Grid {
	return &Grid{store: store}
}

func validateCell(day int, task string) error {
	if day < 1 || day > DaysInPeriod {
		return fmt.Errorf("%w: day %d out of range 1..%d", common.ErrValidation, day, DaysInPeriod)
	}
	if !IsTask(task) {
		return fmt.Errorf("%w: unknown task %q", common.ErrValidation, task)
	}
	return nil
}

// SetTask writes one cell as the literal string "true" or "false".
func (g *Grid) SetTask(ctx context.Context, userID string, day int, task string, done bool) error {
	if err := validateCell(day, task); err != nil {
		return err
	}
	return g.store.Set(ctx, Key(userID, day, task), strconv.FormatBool(done))
}

// Task reads one cell; absent keys read as false.
func (g *Grid) Task(ctx context.Context, userID string, day int, task string) (bool, error) {
	if err := validateCell(day, task); err != nil {
		return false, err
	}
	v, err := g.store.Get(ctx, Key(userID, day, task))
	if err != nil {
		return false, err
	}
	return v == completedValue, nil
}

// DayRatio returns the day's completion percentage, rounded to the nearest
// integer in [0,100].
func (g *Grid) DayRatio(ctx context.Context, userID string, day int) (int, error) {
	if day < 1 || day > DaysInPeriod {
		return 0, fmt.Errorf("%w: day %d out of range 1..%d", common.ErrValidation, day, DaysInPeriod)
	}

	completed := 0
	for _, task := range Tasks {
		v, err := g.store.Get(ctx, Key(userID, day, task))
		if err != nil {
			return 0, err
		}
		if v == completedValue {
			completed++
		}
	}

	return int(math.Round(float64(completed) / float64(len(Tasks)) * 100)), nil
}

// DayComplete reports whether every task of the day is done.
func (g *Grid) DayComplete(ctx context.Context, userID string, day int) (bool, error) {
	if day < 1 || day > DaysInPeriod {
		return false, fmt.Errorf("%w: day %d out of range 1..%d", common.ErrValidation, day, DaysInPeriod)
	}

	for _, task := range Tasks {
		v, err := g.store.Get(ctx, Key(userID, day, task))
		if err != nil {
			return false, err
		}
		if v != completedValue {
			return false, nil
		}
	}
	return true, nil
}

// Stats loads the full grid once and aggregates the period counters.
func (g *Grid) Stats(ctx context.Context, userID string) (*Stats, error) {
	m, err := g.Matrix(ctx, userID)
	if err != nil {
		return nil, err
	}
	return m.Stats(), nil
}

// Reset deletes every cell of the user's grid. Irreversible; confirmation
// is the caller's responsibility.
func (g *Grid) Reset(ctx context.Context, userID string) error {
	for day := 1; day <= DaysInPeriod; day++ {
		for _, task := range Tasks {
			if err := g.store.Delete(ctx, Key(userID, day, task)); err != nil {
				return err
			}
		}
	}
	return nil
}
