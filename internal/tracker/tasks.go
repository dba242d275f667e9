// Package tracker implements the 30-day observance grid: per-task
// completion flags, day ratios, and whole-period statistics.
package tracker

import "fmt"

// DaysInPeriod is the length of the observance period.
const DaysInPeriod = 30

// Tasks is the fixed daily checklist, in display order. Storage does not
// depend on the order; the stats do (the first five are the prayers).
var Tasks = []string{
	"fajr", "dhuhr", "asr", "maghrib", "isha",
	"ghiba", "kazb", "kalam", "juz", "hizb",
	"rahm", "saim", "gedal", "eslah",
	"taraweh", "dohaw", "etkaf",
}

// PrayerTasks are the five daily prayers, counted separately in Stats.
var PrayerTasks = []string{"fajr", "dhuhr", "asr", "maghrib", "isha"}

// JuzTask feeds the Quran-reading counter: days with juz done.
const JuzTask = "juz"

var taskSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Tasks))
	for _, t := range Tasks {
		m[t] = struct{}{}
	}
	return m
}()

var prayerSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(PrayerTasks))
	for _, t := range PrayerTasks {
		m[t] = struct{}{}
	}
	return m
}()

// IsTask reports whether name is one of the fixed checklist tasks.
func IsTask(name string) bool {
	_, ok := taskSet[name]
	return ok
}

// IsPrayerTask reports whether name is one of the five prayers.
func IsPrayerTask(name string) bool {
	_, ok := prayerSet[name]
	return ok
}

// Key composes the store key for one (user, day, task) cell. The format is
// the persisted contract: `${userId}-day${day}-${task}`.
func Key(userID string, day int, task string) string {
	return fmt.Sprintf("%s-day%d-%s", userID, day, task)
}
