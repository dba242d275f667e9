// Package catalog loads and holds the three-category list of external
// reference links shown on the resources page.
package catalog

import (
	"fmt"

	"github.com/dmitrijs2005/ramadankeeper/internal/common"
)

// Resource is one external link.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Document is the catalog wire format: three positional category lists.
type Document struct {
	Prayers []Resource `json:"prayers"`
	Quran   []Resource `json:"quran"`
	Lessons []Resource `json:"lessons"`
}

// Category names accepted by State.Add and the import path.
const (
	CategoryPrayers = "prayers"
	CategoryQuran   = "quran"
	CategoryLessons = "lessons"
)

// Defaults is the built-in fallback set used when the catalog document
// cannot be fetched or parsed: two entries per category.
func Defaults() Document {
	return Document{
		Prayers: []Resource{
			{Title: "الأذكار الموسمية", URL: "https://d1.islamhouse.com/data/ar/ih_books/single/ar_athkar_almushafiah.pdf"},
			{Title: "أدعية رمضان", URL: "https://ar.islamway.net/collection/4746/%D8%A3%D8%AF%D8%B9%D9%8A%D8%A9-%D8%B1%D9%85%D8%B6%D8%A7%D9%86"},
		},
		Quran: []Resource{
			{Title: "القرآن الكريم بقراءات متعددة", URL: "https://quran.ksu.edu.sa/"},
			{Title: "تلاوات للقراء المشهورين", URL: "https://server.mp3quran.net/"},
		},
		Lessons: []Resource{
			{Title: "دروس رمضانية", URL: "https://ar.islamway.net/lessons?month=9"},
			{Title: "سلسلة دروس رمضان", URL: "https://www.youtube.com/playlist?list=PLxI8Ct9zH7e8jQ1uFQJiV1J3T1T1Z1Z1Z"},
		},
	}
}

// State holds the currently displayed lists. It is what the export
// snapshots and what an import replaces; additions via Add live only here,
// never in the persisted store.
type State struct {
	doc Document
}

func NewState() *State {
	return &State{}
}

// Set replaces all three displayed lists at once.
func (s *State) Set(doc Document) {
	s.doc = doc
}

// Snapshot returns a deep copy of the displayed lists.
func (s *State) Snapshot() Document {
	return Document{
		Prayers: append([]Resource(nil), s.doc.Prayers...),
		Quran:   append([]Resource(nil), s.doc.Quran...),
		Lessons: append([]Resource(nil), s.doc.Lessons...),
	}
}

// Add appends a resource to one displayed category list.
func (s *State) Add(category string, r Resource) error {
	if r.Title == "" || r.URL == "" {
		return fmt.Errorf("%w: resource title and url are required", common.ErrValidation)
	}
	switch category {
	case CategoryPrayers:
		s.doc.Prayers = append(s.doc.Prayers, r)
	case CategoryQuran:
		s.doc.Quran = append(s.doc.Quran, r)
	case CategoryLessons:
		s.doc.Lessons = append(s.doc.Lessons, r)
	default:
		return fmt.Errorf("%w: unknown category %q", common.ErrValidation, category)
	}
	return nil
}
