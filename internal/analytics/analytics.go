// Package analytics summarizes submissions for the organizer dashboard.
package analytics

import (
	"sort"

	"careercatch/internal/store"
)

type EventStats struct {
	TotalSubmissions   int            `json:"totalSubmissions"`
	UniqueUniversities int            `json:"uniqueUniversities"`
	AverageScore       float64        `json:"averageScore"`
	TopScore           int            `json:"topScore"`
	TopScorer          string         `json:"topScorer,omitempty"`
	AverageAccuracy    float64        `json:"averageAccuracy"`
	LevelBreakdown     map[string]int `json:"levelBreakdown"`
}

type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	University string `json:"university"`
	Score      int    `json:"score"`
	Level      string `json:"level"`
}

// Compute aggregates the full submission list into dashboard stats.
func Compute(records []store.Record) EventStats {
	stats := EventStats{
		LevelBreakdown: make(map[string]int),
	}
	stats.TotalSubmissions = len(records)
	if len(records) == 0 {
		return stats
	}

	universities := make(map[string]bool)
	scoreSum := 0
	accuracySum := 0
	for _, r := range records {
		universities[r.University] = true
		scoreSum += r.Score
		accuracySum += r.Accuracy
		stats.LevelBreakdown[r.Level]++
		if r.Score > stats.TopScore || stats.TopScorer == "" {
			stats.TopScore = r.Score
			stats.TopScorer = r.Name
		}
	}
	stats.UniqueUniversities = len(universities)
	stats.AverageScore = float64(scoreSum) / float64(len(records))
	stats.AverageAccuracy = float64(accuracySum) / float64(len(records))
	return stats
}

// Leaderboard returns the top submissions by score. Ties keep the
// original (newest-first) order the store returns.
func Leaderboard(records []store.Record, limit int) []LeaderboardEntry {
	sorted := make([]store.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	entries := make([]LeaderboardEntry, 0, len(sorted))
	for i, r := range sorted {
		entries = append(entries, LeaderboardEntry{
			Rank:       i + 1,
			Name:       r.Name,
			University: r.University,
			Score:      r.Score,
			Level:      r.Level,
		})
	}
	return entries
}
