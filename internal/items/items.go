package items

import (
	"fmt"
	"sync"
	"time"

	"careercatch/internal/catalog"
)

// Item is a single clickable instance on the board. Positions are
// percentage coordinates in [0, 100] so the rendering layer can place them
// regardless of viewport size.
type Item struct {
	ID     string        `json:"id"`
	Kind   catalog.Kind  `json:"kind"`
	Key    string        `json:"key"`
	Points int           `json:"points"`
	X      float64       `json:"x"`
	Y      float64       `json:"y"`
	BornAt time.Time     `json:"-"`
	TTL    time.Duration `json:"-"`
}

// Expired reports whether the item has outlived its time-to-live at now.
func (it Item) Expired(now time.Time) bool {
	return now.Sub(it.BornAt) >= it.TTL
}

// Store tracks the set of live items. IDs are never reused within a
// session: the sequence counter survives Clear.
type Store struct {
	mu      sync.Mutex
	items   map[string]*Item
	nextSeq int
	spawned int
}

func NewStore() *Store {
	return &Store{
		items:   make(map[string]*Item),
		nextSeq: 1,
	}
}

// Add registers a new item, assigning its unique ID, and returns it.
func (s *Store) Add(proto Item) *Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := proto
	it.ID = fmt.Sprintf("%s-%d", proto.Key, s.nextSeq)
	s.nextSeq++
	s.spawned++
	s.items[it.ID] = &it
	return &it
}

// Remove takes an item out of the live set. Removing an absent ID is a
// no-op; the second return value reports whether anything was removed, so
// a click racing an expiry sweep never double-counts.
func (s *Store) Remove(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return Item{}, false
	}
	delete(s.items, id)
	return *it, true
}

// SweepExpired removes every item past its TTL at now and returns the
// count removed.
func (s *Store) SweepExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, it := range s.items {
		if it.Expired(now) {
			delete(s.items, id)
			removed++
		}
	}
	return removed
}

// List returns a snapshot of the live items.
func (s *Store) List() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		list = append(list, *it)
	}
	return list
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Spawned returns the total number of items ever added.
func (s *Store) Spawned() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spawned
}

// Clear empties the live set and resets the spawn total for a new session.
// The ID sequence is deliberately not reset.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*Item)
	s.spawned = 0
}
