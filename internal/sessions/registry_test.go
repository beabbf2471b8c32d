package sessions

import (
	"testing"

	"careercatch/internal/catalog"
	"careercatch/internal/engine"
	"careercatch/internal/session"
)

func newTestRegistry() *Registry {
	cfg := session.Config{
		DurationSec: 30,
		MaxPlays:    2,
		EventID:     "career-fair-2025",
		Layout:      engine.LayoutDesktop,
	}
	return NewRegistry(cfg, catalog.Default(), nil)
}

func TestCreateAndGet(t *testing.T) {
	r := newTestRegistry()

	e := r.Create("")
	if e == nil {
		t.Fatal("Create() returned nil")
	}
	if e.ID == "" {
		t.Error("entry has empty id")
	}
	if e.Session == nil || e.Broadcaster == nil || e.Hub == nil || e.Bus == nil || e.Counter == nil {
		t.Error("entry has unwired components")
	}
	if e.Session.Phase() != session.PhaseForm {
		t.Errorf("new session phase = %v, want %v", e.Session.Phase(), session.PhaseForm)
	}

	if got := r.Get(e.ID); got != e {
		t.Errorf("Get(%q) = %p, want %p", e.ID, got, e)
	}
}

func TestCreateUniqueIDs(t *testing.T) {
	r := newTestRegistry()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		e := r.Create("")
		if seen[e.ID] {
			t.Fatalf("duplicate session id %q", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestGetUnknown(t *testing.T) {
	r := newTestRegistry()
	if got := r.Get("nope"); got != nil {
		t.Errorf("Get(unknown) = %v, want nil", got)
	}
}

func TestDelete(t *testing.T) {
	r := newTestRegistry()
	e := r.Create("")
	r.Delete(e.ID)
	if got := r.Get(e.ID); got != nil {
		t.Errorf("Get after Delete = %v, want nil", got)
	}
	// Deleting again should not panic
	r.Delete(e.ID)
}

func TestList(t *testing.T) {
	r := newTestRegistry()
	r.Create("")
	r.Create("")
	if got := len(r.List()); got != 2 {
		t.Errorf("List() len = %d, want 2", got)
	}
}

func TestSessionLayout(t *testing.T) {
	if got := sessionLayout("narrow"); got != engine.LayoutNarrow {
		t.Errorf("sessionLayout(narrow) = %v, want %v", got, engine.LayoutNarrow)
	}
	if got := sessionLayout("desktop"); got != engine.LayoutDesktop {
		t.Errorf("sessionLayout(desktop) = %v, want %v", got, engine.LayoutDesktop)
	}
	if got := sessionLayout("bogus"); got != engine.LayoutDesktop {
		t.Errorf("sessionLayout(bogus) = %v, want %v", got, engine.LayoutDesktop)
	}
}
