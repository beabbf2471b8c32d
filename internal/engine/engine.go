// Package engine implements the game round itself: the countdown, spawn
// scheduling, item lifecycle, scoring and combo rules. Everything
// time-dependent flows through a single Tick entrypoint that takes the
// current time as an argument, so the round is deterministic under test:
// feed it a seeded rng and synthetic timestamps and it plays out the same
// way every run.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"careercatch/internal/achievements"
	"careercatch/internal/catalog"
	"careercatch/internal/items"
)

// Layout tunes spawn behavior for the client's viewport class. The engine
// never inspects ambient window state; the rendering layer reports its
// class once at session start.
type Layout string

const (
	LayoutDesktop = Layout("desktop")
	LayoutNarrow  = Layout("narrow")
)

type Config struct {
	DurationSec int
	Layout      Layout
}

const (
	sweepInterval    = 200 * time.Millisecond
	comboIdleTimeout = 2000 * time.Millisecond
	shakeDuration    = 200 * time.Millisecond
	cueTTL           = 1000 * time.Millisecond
)

// SpawnCue is the transient visual marker emitted alongside each spawned
// item. It is UI signaling only and never affects scoring.
type SpawnCue struct {
	ID        string    `json:"id"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	ExpiresAt time.Time `json:"-"`
}

// State is the snapshot handed to the rendering layer.
type State struct {
	Running     bool                      `json:"running"`
	TimeLeft    int                       `json:"timeLeft"`
	Score       int                       `json:"score"`
	Combo       int                       `json:"combo"`
	Level       string                    `json:"level"`
	Stats       achievements.Stats        `json:"stats"`
	Items       []items.Item              `json:"items"`
	Cues        []SpawnCue                `json:"spawnCues"`
	Achievement *achievements.Achievement `json:"achievement,omitempty"`
	Intensity   float64                   `json:"gameIntensity"`
	IsShaking   bool                      `json:"isShaking"`
}

// Engine holds all round state. It is not safe for concurrent use; the
// owning session serializes every entrypoint.
type Engine struct {
	cat   *catalog.Catalog
	cfg   Config
	rng   *rand.Rand
	items *items.Store

	running     bool
	startedAt   time.Time
	timeLeft    int
	nextSpawnAt time.Time
	nextSweepAt time.Time

	score         int
	combo         int
	stats         achievements.Stats
	comboDeadline time.Time
	shakeUntil    time.Time
	cues          []SpawnCue
	cueSeq        int
	achievement   *achievements.Achievement
}

func New(cat *catalog.Catalog, cfg Config, rng *rand.Rand) *Engine {
	if cfg.Layout == "" {
		cfg.Layout = LayoutDesktop
	}
	return &Engine{
		cat:      cat,
		cfg:      cfg,
		rng:      rng,
		items:    items.NewStore(),
		timeLeft: cfg.DurationSec,
	}
}

// Reset clears every piece of round state. No schedule survives: once
// running is false, Tick does nothing, so no late mutation can arrive.
func (e *Engine) Reset() {
	e.running = false
	e.startedAt = time.Time{}
	e.timeLeft = e.cfg.DurationSec
	e.nextSpawnAt = time.Time{}
	e.nextSweepAt = time.Time{}
	e.score = 0
	e.combo = 0
	e.stats = achievements.Stats{}
	e.comboDeadline = time.Time{}
	e.shakeUntil = time.Time{}
	e.cues = nil
	e.achievement = nil
	e.items.Clear()
}

// Start begins a round at now. The first spawn and sweep are scheduled
// relative to now.
func (e *Engine) Start(now time.Time) {
	e.running = true
	e.startedAt = now
	e.timeLeft = e.cfg.DurationSec
	e.nextSpawnAt = now.Add(e.spawnInterval())
	e.nextSweepAt = now.Add(sweepInterval)
}

// Stop halts the round without clearing state, cancelling all pending
// spawn/sweep schedules.
func (e *Engine) Stop() {
	e.running = false
}

func (e *Engine) Running() bool {
	return e.running
}

// Tick advances the round to now: countdown, combo idle reset, expiry
// sweep and spawning all derive from elapsed time here rather than from
// independently armed timers. It returns true on the tick where the
// countdown reaches zero; the engine stops itself at that point.
func (e *Engine) Tick(now time.Time) bool {
	if !e.running {
		return false
	}

	elapsed := now.Sub(e.startedAt)
	tl := e.cfg.DurationSec - int(elapsed/time.Second)
	if tl < 0 {
		tl = 0
	}
	e.timeLeft = tl

	if e.combo > 0 && !e.comboDeadline.IsZero() && !now.Before(e.comboDeadline) {
		e.combo = 0
		e.comboDeadline = time.Time{}
		e.evaluateAchievements()
	}

	if tl == 0 {
		e.running = false
		return true
	}

	if !now.Before(e.nextSweepAt) {
		missed := e.items.SweepExpired(now)
		e.stats.MissedItems += missed
		e.nextSweepAt = now.Add(sweepInterval)
	}

	if !now.Before(e.nextSpawnAt) {
		e.spawnBatch(now)
		e.nextSpawnAt = now.Add(e.spawnInterval())
	}

	e.expireCues(now)
	return false
}

// ClickItem removes the item and applies its scoring effect. A click on an
// id already gone (expired or already clicked) is a no-op.
func (e *Engine) ClickItem(now time.Time, id string) (items.Item, bool) {
	if !e.running {
		return items.Item{}, false
	}
	it, ok := e.items.Remove(id)
	if !ok {
		return items.Item{}, false
	}
	e.registerClick(now, it.Kind, it.Points)
	return it, true
}

// CloseAchievement clears the displayed achievement on an explicit signal
// from the rendering layer.
func (e *Engine) CloseAchievement() {
	e.achievement = nil
}

// Achievement returns the currently displayed achievement, or nil.
func (e *Engine) Achievement() *achievements.Achievement {
	return e.achievement
}

func (e *Engine) Score() int {
	return e.score
}

func (e *Engine) Stats() achievements.Stats {
	return e.stats
}

// SpawnedTotal returns the number of items spawned this round.
func (e *Engine) SpawnedTotal() int {
	return e.items.Spawned()
}

// LiveItems returns the number of items currently on the board.
func (e *Engine) LiveItems() int {
	return e.items.Len()
}

// Snapshot renders the engine state at now for the rendering layer.
func (e *Engine) Snapshot(now time.Time) State {
	return State{
		Running:     e.running,
		TimeLeft:    e.timeLeft,
		Score:       e.score,
		Combo:       e.combo,
		Level:       LevelForScore(e.score),
		Stats:       e.stats,
		Items:       e.items.List(),
		Cues:        e.liveCues(now),
		Achievement: e.achievement,
		Intensity:   e.intensity(now),
		IsShaking:   now.Before(e.shakeUntil),
	}
}

// intensity is the difficulty ramp exposed for visual effects: 0 outside a
// round, otherwise elapsed/duration clamped to [0, 1].
func (e *Engine) intensity(now time.Time) float64 {
	if !e.running {
		return 0
	}
	return e.difficulty(now)
}

func (e *Engine) difficulty(now time.Time) float64 {
	d := now.Sub(e.startedAt).Seconds() / float64(e.cfg.DurationSec)
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}

func (e *Engine) expireCues(now time.Time) {
	kept := e.cues[:0]
	for _, c := range e.cues {
		if now.Before(c.ExpiresAt) {
			kept = append(kept, c)
		}
	}
	e.cues = kept
}

func (e *Engine) liveCues(now time.Time) []SpawnCue {
	live := make([]SpawnCue, 0, len(e.cues))
	for _, c := range e.cues {
		if now.Before(c.ExpiresAt) {
			live = append(live, c)
		}
	}
	return live
}

func (e *Engine) nextCueID() string {
	e.cueSeq++
	return fmt.Sprintf("cue-%d", e.cueSeq)
}
