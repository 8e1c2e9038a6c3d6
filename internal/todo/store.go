// Package todo implements the copy-on-write record collection behind the
// todos screen. Every effective mutation returns a brand-new *Store and
// leaves the old identity untouched, so a publisher can hand the result to
// its cell and change detection fires for free.
package todo

import "strings"

// Store is an insertion-ordered collection of Records keyed by id.
//
// Mutating operations are pure: they build and return a new store rather
// than touching the receiver. The one exemption from "new identity per
// call" is a true no-op (empty-text Add, Toggle/Remove of an absent id),
// which returns the receiver itself: nothing changed, so nothing should
// re-render.
type Store struct {
	records []Record
	nextID  int64
}

// NewStore returns an empty store. Ids start from 1 and are never reused
// for the store's lifetime, deletions included.
func NewStore() *Store {
	return &Store{}
}

// Add inserts a record with the trimmed text at the end of insertion order.
// Empty (or all-whitespace) text is silently rejected: the receiver comes
// back unchanged. The id comes from a per-store counter, not the clock, so
// two Adds in the same instant still get distinct ids.
func (s *Store) Add(text string) *Store {
	text = strings.TrimSpace(text)
	if text == "" {
		return s
	}
	next := &Store{
		records: make([]Record, len(s.records), len(s.records)+1),
		nextID:  s.nextID + 1,
	}
	copy(next.records, s.records)
	next.records = append(next.records, Record{ID: s.nextID + 1, Text: text, Done: false})
	return next
}

// Toggle flips Done for id. Toggling twice restores the original record.
// An absent id is a no-op returning the receiver; it never panics.
func (s *Store) Toggle(id int64) *Store {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	next := s.clone()
	next.records[i].Done = !next.records[i].Done
	return next
}

// Remove deletes id outright: the key is gone from iteration, not replaced
// by a placeholder. An absent id is a no-op returning the receiver.
func (s *Store) Remove(id int64) *Store {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	next := &Store{
		records: make([]Record, 0, len(s.records)-1),
		nextID:  s.nextID,
	}
	next.records = append(next.records, s.records[:i]...)
	next.records = append(next.records, s.records[i+1:]...)
	return next
}

// Items returns a fresh snapshot slice in insertion order. The caller may
// keep or mutate it freely; the store is unaffected.
func (s *Store) Items() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record for id and whether it exists.
func (s *Store) Get(id int64) (Record, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.records[i], true
	}
	return Record{}, false
}

// Len reports how many records the store holds.
func (s *Store) Len() int { return len(s.records) }

// Stats counts done and pending records, for the screen header.
func (s *Store) Stats() (done, pending int) {
	for _, r := range s.records {
		if r.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func (s *Store) indexOf(id int64) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) clone() *Store {
	next := &Store{
		records: make([]Record, len(s.records)),
		nextID:  s.nextID,
	}
	copy(next.records, s.records)
	return next
}
