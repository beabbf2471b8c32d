// Package session orchestrates one player kiosk through the
// form -> game -> result cycle: guarded starts, the live round (delegated
// to the engine), finalization and the submission hand-off.
package session

import (
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"careercatch/internal/catalog"
	"careercatch/internal/engine"
	"careercatch/internal/events"
	"careercatch/internal/store"
	"careercatch/internal/utility"
)

type Phase string

const (
	PhaseForm   = Phase("form")
	PhaseGame   = Phase("game")
	PhaseResult = Phase("result")
)

// PlayerInfo is the validated lead-capture form payload.
type PlayerInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	University string `json:"university"`
	Confirmed  bool   `json:"confirmed"`
}

var emailPattern = regexp.MustCompile(`.+@.+\..+`)

// Valid reports whether the form payload allows a game to start.
func Valid(info PlayerInfo) bool {
	return len(strings.TrimSpace(info.Name)) > 1 &&
		emailPattern.MatchString(info.Email) &&
		len(strings.TrimSpace(info.University)) > 1 &&
		info.Confirmed
}

type Config struct {
	DurationSec int
	MaxPlays    int
	EventID     string
	Layout      engine.Layout
}

// Data is the full snapshot exposed to the rendering layer.
type Data struct {
	ID    string `json:"sessionId"`
	Phase Phase  `json:"phase"`
	engine.State
	Name       string     `json:"name,omitempty"`
	University string     `json:"university,omitempty"`
	PlaysUsed  int        `json:"playsUsed"`
	PlaysLeft  int        `json:"playsLeft"`
	EndedAt    *time.Time `json:"endedAt,omitempty"`
	BoothCode  string     `json:"boothCode,omitempty"`
	Prize      string     `json:"prize,omitempty"`
}

// Session is one kiosk's state machine. All entrypoints serialize on a
// single mutex; the engine underneath is never touched concurrently.
type Session struct {
	mu          sync.Mutex
	id          string
	cfg         Config
	cat         *catalog.Catalog
	phase       Phase
	player      PlayerInfo
	plays       PlayCounter
	eng         *engine.Engine
	bus         *events.Bus
	submissions chan<- store.Record
	endedAt     time.Time
	boothCode   string
}

// New creates a session in the form phase. The plays counter is owned by
// the caller and only read/incremented through its interface; the
// submissions channel may be nil when no persistence is configured.
func New(id string, cfg Config, cat *catalog.Catalog, plays PlayCounter, bus *events.Bus, submissions chan<- store.Record, rng *rand.Rand) *Session {
	return &Session{
		id:          id,
		cfg:         cfg,
		cat:         cat,
		phase:       PhaseForm,
		plays:       plays,
		eng:         engine.New(cat, engine.Config{DurationSec: cfg.DurationSec, Layout: cfg.Layout}, rng),
		bus:         bus,
		submissions: submissions,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) playsLeft() int {
	left := s.cfg.MaxPlays - s.plays.Used()
	if left < 0 {
		return 0
	}
	return left
}

// Start attempts the form->game (or result->game) transition. Invalid
// forms and exhausted plays are silently refused. The engine is fully
// reset before the phase flips, so no prior round leaks in.
func (s *Session) Start(now time.Time, info PlayerInfo) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseGame {
		return false
	}
	if s.playsLeft() <= 0 || !Valid(info) {
		return false
	}

	s.eng.Reset()
	s.player = info
	s.endedAt = time.Time{}
	s.boothCode = ""
	s.phase = PhaseGame
	s.eng.Start(now)
	s.publishPhase()
	return true
}

// Tick advances the round and returns the phase afterwards. Outside the
// game phase it does nothing.
func (s *Session) Tick(now time.Time) Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseGame {
		return s.phase
	}
	if s.eng.Tick(now) {
		s.finalize(now)
	}
	return s.phase
}

// Click forwards a click to the engine. Clicks outside the game phase, or
// on ids that already vanished, are no-ops.
func (s *Session) Click(now time.Time, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseGame {
		return false
	}
	_, ok := s.eng.ClickItem(now, itemID)
	return ok
}

// CloseAchievement clears the displayed achievement.
func (s *Session) CloseAchievement() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.CloseAchievement()
}

// GoHome returns to the form from the results screen.
func (s *Session) GoHome() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseResult {
		return
	}
	s.phase = PhaseForm
	s.publishPhase()
}

// finalize runs the game->result side effects in order: stop the clock,
// bump the play counter, stamp the end, derive the booth code, and hand
// the submission record off without blocking. Caller holds the lock.
func (s *Session) finalize(now time.Time) {
	s.eng.Stop()
	s.phase = PhaseResult

	if s.plays.Used() < s.cfg.MaxPlays {
		s.plays.Increment()
	}

	s.endedAt = now
	score := s.eng.Score()
	s.boothCode = utility.MakeBoothCode(fmt.Sprintf("%s|%d|%d", s.player.Email, score, now.UnixMilli()))

	stats := s.eng.Stats()
	accuracy := 0
	if total := stats.GoodClicks + stats.BadClicks; total > 0 {
		accuracy = int(float64(stats.GoodClicks)/float64(total)*100 + 0.5)
	}
	achTitle := ""
	if a := s.eng.Achievement(); a != nil {
		achTitle = a.Title
	}

	rec := store.Record{
		Name:         s.player.Name,
		Email:        s.player.Email,
		University:   s.player.University,
		Event:        s.cfg.EventID,
		Score:        score,
		Timestamp:    now,
		BoothCode:    s.boothCode,
		Achievements: achTitle,
		GoodClicks:   stats.GoodClicks,
		BadClicks:    stats.BadClicks,
		Accuracy:     accuracy,
		Level:        engine.LevelForScore(score),
	}

	if s.submissions != nil {
		select {
		case s.submissions <- rec:
		default:
			log.Printf("[Session] submission buffer full, dropping record for %s\n", s.id)
		}
	}
	s.publishPhase()
}

func (s *Session) publishPhase() {
	if s.bus == nil {
		return
	}
	select {
	case s.bus.PhaseChanges <- events.PhaseChangeEvent{SessionID: s.id, Phase: string(s.phase)}:
	default:
		// No listener keeping up; phase changes are advisory.
	}
}

// Snapshot renders the full session view at now.
func (s *Session) Snapshot(now time.Time) Data {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := Data{
		ID:         s.id,
		Phase:      s.phase,
		State:      s.eng.Snapshot(now),
		Name:       s.player.Name,
		University: s.player.University,
		PlaysUsed:  s.plays.Used(),
		PlaysLeft:  s.playsLeft(),
		BoothCode:  s.boothCode,
	}
	if !s.endedAt.IsZero() {
		ended := s.endedAt
		d.EndedAt = &ended
	}
	if s.phase == PhaseResult {
		if tier, ok := s.cat.PrizeFor(d.Score); ok {
			d.Prize = tier.Label
		}
	}
	return d
}
