// Package dayindex maintains the per-project mapping from calendar-day
// key to the ordered list of documents filed under that day.
package dayindex

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stonebridgedev/clearview/internal/calendar"
	"github.com/stonebridgedev/clearview/internal/domain"
)

// ErrInvalidDayKey is returned when an empty or unparseable day key is
// supplied to an indexing operation.
var ErrInvalidDayKey = errors.New("invalid day key")

// Index is the document day-index for one open project. It owns its
// documents exclusively; persistence is the caller's concern.
type Index struct {
	projectID string
	days      map[string][]*domain.Document
}

// New creates an empty index scoped to projectID.
func New(projectID string) *Index {
	return &Index{
		projectID: projectID,
		days:      make(map[string][]*domain.Document),
	}
}

// Restore builds an index from a previously saved snapshot. A nil
// snapshot yields an empty index.
func Restore(projectID string, days map[string][]*domain.Document) *Index {
	ix := New(projectID)
	for key, docs := range days {
		ix.days[key] = append(ix.days[key], docs...)
	}
	return ix
}

// ProjectID returns the owning project's id.
func (ix *Index) ProjectID() string {
	return ix.projectID
}

// Append files doc under dayKey, assigning a generated id and the
// current instant as CreatedAt, and returns the stored document. The
// key canonicalizes through calendar.Key; empty or unparseable keys
// are rejected. A blank title defaults to
// "<kind label> – <short day>". Append order
// within a day is the chronological filing order; no other sorting is
// applied. Documents are never updated in place.
func (ix *Index) Append(dayKey string, doc *domain.Document) (*domain.Document, error) {
	dayKey = calendar.Key(dayKey)
	if dayKey == "" {
		return nil, fmt.Errorf("appending document: %w", ErrInvalidDayKey)
	}
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.Title == "" {
		if day, err := calendar.ParseDay(dayKey); err == nil {
			doc.Title = doc.Kind.Label() + " – " + calendar.FormatShort(day)
		}
	}
	doc.ProjectID = ix.projectID
	doc.DayKey = dayKey
	doc.CreatedAt = time.Now()
	ix.days[dayKey] = append(ix.days[dayKey], doc)
	return doc, nil
}

// ListForDay returns the documents filed under dayKey in append order.
// The result is never nil.
func (ix *Index) ListForDay(dayKey string) []*domain.Document {
	docs := ix.days[dayKey]
	out := make([]*domain.Document, len(docs))
	copy(out, docs)
	return out
}

// ListForRange hydrates a visible window of dayCount days starting at
// startKey. Keys are generated by day offset, not by scanning stored
// keys, so days with no documents still have a defined empty entry.
func (ix *Index) ListForRange(startKey string, dayCount int) (map[string][]*domain.Document, error) {
	start, err := calendar.ParseDay(startKey)
	if err != nil {
		return nil, fmt.Errorf("listing range from %q: %w", startKey, ErrInvalidDayKey)
	}
	out := make(map[string][]*domain.Document, dayCount)
	for i := 0; i < dayCount; i++ {
		key := calendar.DayKey(calendar.AddDays(start, i))
		out[key] = ix.ListForDay(key)
	}
	return out, nil
}

// Len returns the total number of documents in the index.
func (ix *Index) Len() int {
	n := 0
	for _, docs := range ix.days {
		n += len(docs)
	}
	return n
}

// All returns a snapshot copy of the day map for persistence.
func (ix *Index) All() map[string][]*domain.Document {
	out := make(map[string][]*domain.Document, len(ix.days))
	for key := range ix.days {
		out[key] = ix.ListForDay(key)
	}
	return out
}
