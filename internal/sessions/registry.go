// Package sessions tracks the live kiosk sessions by id.
package sessions

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"careercatch/internal/broadcast"
	"careercatch/internal/catalog"
	"careercatch/internal/engine"
	"careercatch/internal/events"
	"careercatch/internal/live"
	"careercatch/internal/session"
	"careercatch/internal/store"
)

const staleTTL = 1 * time.Hour

// Entry bundles one session with its fan-out machinery.
type Entry struct {
	ID          string
	Session     *session.Session
	Broadcaster *broadcast.Broadcaster
	Hub         *live.Hub
	Bus         *events.Bus
	Counter     *session.MemoryCounter
	CreatedAt   time.Time
}

type Registry struct {
	mu          sync.Mutex
	entries     map[string]*Entry
	cfg         session.Config
	cat         *catalog.Catalog
	submissions chan<- store.Record
}

func NewRegistry(cfg session.Config, cat *catalog.Catalog, submissions chan<- store.Record) *Registry {
	r := &Registry{
		entries:     make(map[string]*Entry),
		cfg:         cfg,
		cat:         cat,
		submissions: submissions,
	}
	go r.sweepStale()
	return r
}

// Create builds a new session with its own bus, broadcaster, hub and play
// counter. The layout override applies when non-empty.
func (r *Registry) Create(layout string) *Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg := r.cfg
	if layout != "" {
		cfg.Layout = sessionLayout(layout)
	}

	id := uuid.NewString()
	bus := events.NewBus()
	counter := session.NewMemoryCounter()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	entry := &Entry{
		ID:          id,
		Session:     session.New(id, cfg, r.cat, counter, bus, r.submissions, rng),
		Broadcaster: broadcast.NewBroadcaster(bus),
		Hub:         live.NewHub(),
		Bus:         bus,
		Counter:     counter,
		CreatedAt:   time.Now(),
	}
	r.entries[id] = entry
	return entry
}

func (r *Registry) Get(id string) *Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[id]
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

func (r *Registry) List() []*Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		list = append(list, e)
	}
	return list
}

func sessionLayout(s string) engine.Layout {
	if s == string(engine.LayoutNarrow) {
		return engine.LayoutNarrow
	}
	return engine.LayoutDesktop
}

func (r *Registry) sweepStale() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		r.mu.Lock()
		now := time.Now()
		for id, e := range r.entries {
			if now.Sub(e.CreatedAt) > staleTTL && e.Session.Phase() != session.PhaseGame {
				delete(r.entries, id)
			}
		}
		r.mu.Unlock()
	}
}
