package tracker

import (
	"context"
	"math"
)

// taskCount is the width of the matrix. Tasks must stay this long.
const taskCount = 17

var taskIndex = func() map[string]int {
	m := make(map[string]int, len(Tasks))
	for i, t := range Tasks {
		m[t] = i
	}
	if len(m) != taskCount {
		panic("tracker: task list does not match matrix width")
	}
	return m
}()

// Matrix is one user's whole period as an indexed boolean table: row d-1
// is day d, columns follow the Tasks order. It is a rendered view of the
// flat string-key namespace, loaded in one pass; writes still go through
// Grid so the persisted keys stay compatible.
type Matrix [DaysInPeriod][taskCount]bool

// Matrix loads the user's full grid into an indexed table.
func (g *Grid) Matrix(ctx context.Context, userID string) (*Matrix, error) {
	var m Matrix
	for day := 1; day <= DaysInPeriod; day++ {
		for i, task := range Tasks {
			v, err := g.store.Get(ctx, Key(userID, day, task))
			if err != nil {
				return nil, err
			}
			m[day-1][i] = v == completedValue
		}
	}
	return &m, nil
}

// Done reports one cell. Unknown tasks and out-of-range days read as false.
func (m *Matrix) Done(day int, task string) bool {
	if day < 1 || day > DaysInPeriod {
		return false
	}
	i, ok := taskIndex[task]
	if !ok {
		return false
	}
	return m[day-1][i]
}

// DayCompleted reports whether every task of the day is done.
func (m *Matrix) DayCompleted(day int) bool {
	if day < 1 || day > DaysInPeriod {
		return false
	}
	for _, done := range m[day-1] {
		if !done {
			return false
		}
	}
	return true
}

// DayRatio returns the day's completion percentage, rounded to the
// nearest integer in [0,100].
func (m *Matrix) DayRatio(day int) int {
	if day < 1 || day > DaysInPeriod {
		return 0
	}
	completed := 0
	for _, done := range m[day-1] {
		if done {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(taskCount) * 100))
}

// Stats aggregates the period counters from the table.
func (m *Matrix) Stats() *Stats {
	stats := &Stats{}

	for day := 1; day <= DaysInPeriod; day++ {
		if m.DayCompleted(day) {
			stats.CompletedDays++
		}
		for i, task := range Tasks {
			if !m[day-1][i] {
				continue
			}
			if IsPrayerTask(task) {
				stats.CompletedPrayers++
			}
			if task == JuzTask {
				stats.CompletedJuz++
			}
		}
	}

	stats.CompletionRate = int(math.Round(float64(stats.CompletedDays) / float64(DaysInPeriod) * 100))
	return stats
}
