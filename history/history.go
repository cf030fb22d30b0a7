// Package history stores finalized plot pages in numbered slots so
// they can be re-rendered after the live page has moved on.
//
// Slots are numbered from 1 and the store grows densely on append.
// Removing a page empties its slot without compacting, so slot numbers
// handed out earlier stay valid for the lifetime of the store. The
// store itself is not safe for concurrent use; it belongs to the
// single goroutine that owns the live drawing state.
package history

import (
	"errors"

	"github.com/plotgd/plotgd"
)

// Sentinel errors for the history package.
var (
	// ErrNotFound is returned when a slot is out of range or empty.
	ErrNotFound = errors.New("history: page not found")

	// ErrNoReplay is returned by Replay when no replay hook was
	// supplied at construction.
	ErrNoReplay = errors.New("history: no replay hook")
)

// Hooks connect a store to the live drawing state of its host device.
// Snapshot captures the page currently under construction, reporting
// false when there is nothing to capture. Replay redraws a stored page
// onto the live surface. Either hook may be nil.
type Hooks struct {
	Snapshot func() (plotgd.Page, bool)
	Replay   func(plotgd.Page)
}

// Store holds pages in 1-based slots.
type Store struct {
	hooks Hooks
	items []*plotgd.Page
}

// New returns an empty store wired to the given hooks.
func New(hooks Hooks) *Store {
	return &Store{hooks: hooks}
}

// Put stores page in the given slot, growing the store as needed.
// Slots below 1 are ignored.
func (s *Store) Put(index int, page plotgd.Page) {
	if index < 1 {
		return
	}
	for len(s.items) < index {
		s.items = append(s.items, nil)
	}
	s.items[index-1] = &page
}

// PutCurrent captures the live page through the snapshot hook and
// stores it in the given slot. It reports whether anything was
// captured.
func (s *Store) PutCurrent(index int) bool {
	if s.hooks.Snapshot == nil {
		return false
	}
	page, ok := s.hooks.Snapshot()
	if !ok {
		return false
	}
	s.Put(index, page)
	return true
}

// PutLast stores the most recently finished page in the given slot.
// The live builder still holds that page at the page boundary where
// PutLast runs, so the capture goes through the same snapshot hook.
func (s *Store) PutLast(index int) {
	s.PutCurrent(index)
}

// Get returns the page in the given slot.
func (s *Store) Get(index int) (plotgd.Page, error) {
	if index < 1 || index > len(s.items) || s.items[index-1] == nil {
		return plotgd.Page{}, ErrNotFound
	}
	return *s.items[index-1], nil
}

// Remove empties the given slot, keeping later slot numbers stable.
// It reports whether the slot held a page.
func (s *Store) Remove(index int) bool {
	if index < 1 || index > len(s.items) || s.items[index-1] == nil {
		return false
	}
	s.items[index-1] = nil
	return true
}

// Clear empties every slot and resets the slot numbering.
func (s *Store) Clear() {
	s.items = nil
}

// Replay redraws the page in the given slot onto the live surface
// through the replay hook.
func (s *Store) Replay(index int) error {
	page, err := s.Get(index)
	if err != nil {
		return err
	}
	if s.hooks.Replay == nil {
		return ErrNoReplay
	}
	s.hooks.Replay(page)
	return nil
}

// Len returns the number of occupied slots.
func (s *Store) Len() int {
	n := 0
	for _, p := range s.items {
		if p != nil {
			n++
		}
	}
	return n
}
