package engine

import (
	"time"

	"careercatch/internal/catalog"
	"careercatch/internal/items"
	"careercatch/internal/utility"
)

// spawnInterval is the delay until the next spawn batch, derived from the
// remaining time: max(400ms, 700ms - timeLeft*8ms).
func (e *Engine) spawnInterval() time.Duration {
	iv := 700 - e.timeLeft*8
	if iv < 400 {
		iv = 400
	}
	return time.Duration(iv) * time.Millisecond
}

// spawnBatch creates 1-2 items with difficulty-scaled kind odds, lifetime
// and position, plus a spawn cue per item.
func (e *Engine) spawnBatch(now time.Time) {
	d := e.difficulty(now)

	speedScale := 0.4
	batchChance := 0.3
	minX, maxX := 8.0, 92.0
	minY, maxY := 15.0, 85.0
	if e.cfg.Layout == LayoutNarrow {
		speedScale = 0.3
		batchChance = 0.2
		minX, maxX = 15.0, 85.0
		minY, maxY = 20.0, 80.0
	}

	speedMult := 1 + d*speedScale
	powerUpChance := 0.03 + d*0.02
	badChance := 0.35 + d*0.15

	batch := 1
	if e.rng.Float64() < batchChance {
		batch = 2
	}

	for i := 0; i < batch; i++ {
		var kind catalog.Kind
		switch {
		case e.rng.Float64() < powerUpChance:
			kind = catalog.KindPowerUp
		case e.rng.Float64() < badChance:
			kind = catalog.KindBad
		default:
			kind = catalog.KindGood
		}
		key := utility.Pick(e.rng, e.cat.Keys(kind))

		ttlMs := (1200-d*300)/speedMult + utility.RandRange(e.rng, -100, 100)
		x := utility.RandRange(e.rng, minX, maxX)
		y := utility.RandRange(e.rng, minY, maxY)

		e.items.Add(items.Item{
			Kind:   kind,
			Key:    key,
			Points: e.cat.Points(kind, key),
			X:      x,
			Y:      y,
			BornAt: now,
			TTL:    time.Duration(ttlMs * float64(time.Millisecond)),
		})
		e.cues = append(e.cues, SpawnCue{
			ID:        e.nextCueID(),
			X:         x,
			Y:         y,
			ExpiresAt: now.Add(cueTTL),
		})
	}
}
