package engine

import (
	"time"

	"careercatch/internal/achievements"
	"careercatch/internal/catalog"
)

const (
	LevelStudent      = "Student"
	LevelIntern       = "Intern"
	LevelProfessional = "Professional"
)

// LevelForScore derives the player level from the score alone.
func LevelForScore(score int) string {
	switch {
	case score >= 20:
		return LevelProfessional
	case score >= 10:
		return LevelIntern
	default:
		return LevelStudent
	}
}

// registerClick applies the full scoring effect of one click as a single
// atomic operation: the multiplier uses the combo value from before this
// click, and no observer can see score and combo out of step.
func (e *Engine) registerClick(now time.Time, kind catalog.Kind, points int) {
	if kind == catalog.KindBad {
		e.score += points
		if e.score < 0 {
			e.score = 0
		}
		e.stats.BadClicks++
		e.combo = 0
		e.comboDeadline = time.Time{}
		e.shakeUntil = now.Add(shakeDuration)
	} else {
		// Good and power-up clicks both extend the combo.
		mult := e.combo/3 + 1
		if mult > 3 {
			mult = 3
		}
		e.score += points * mult
		e.stats.GoodClicks++
		e.combo++
		e.comboDeadline = now.Add(comboIdleTimeout)
	}
	e.evaluateAchievements()
}

// evaluateAchievements refreshes the displayed achievement after any
// change to score, combo or click counters. When several predicates hold
// at once the last match in catalog order is shown.
func (e *Engine) evaluateAchievements() {
	a := achievements.Evaluate(e.stats, e.combo, e.score)
	if a == nil {
		return
	}
	if e.achievement == nil || e.achievement.ID != a.ID {
		e.achievement = a
	}
}
