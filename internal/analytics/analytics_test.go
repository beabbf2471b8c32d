package analytics

import (
	"testing"
	"time"

	"careercatch/internal/store"
)

func sampleRecords() []store.Record {
	ts := time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)
	return []store.Record{
		{Name: "Ada", University: "MIT", Score: 22, Accuracy: 90, Level: "Professional", Timestamp: ts},
		{Name: "Grace", University: "Yale", Score: 12, Accuracy: 80, Level: "Intern", Timestamp: ts},
		{Name: "Alan", University: "MIT", Score: 5, Accuracy: 60, Level: "Student", Timestamp: ts},
		{Name: "Edsger", University: "Eindhoven", Score: 12, Accuracy: 70, Level: "Intern", Timestamp: ts},
	}
}

func TestComputeEmpty(t *testing.T) {
	stats := Compute(nil)
	if stats.TotalSubmissions != 0 {
		t.Errorf("total = %d, want 0", stats.TotalSubmissions)
	}
	if stats.TopScorer != "" {
		t.Errorf("topScorer = %q, want empty", stats.TopScorer)
	}
	if stats.LevelBreakdown == nil {
		t.Error("levelBreakdown should be non-nil for JSON rendering")
	}
}

func TestCompute(t *testing.T) {
	stats := Compute(sampleRecords())

	if stats.TotalSubmissions != 4 {
		t.Errorf("total = %d, want 4", stats.TotalSubmissions)
	}
	if stats.UniqueUniversities != 3 {
		t.Errorf("universities = %d, want 3", stats.UniqueUniversities)
	}
	if want := (22.0 + 12 + 5 + 12) / 4; stats.AverageScore != want {
		t.Errorf("averageScore = %v, want %v", stats.AverageScore, want)
	}
	if stats.TopScore != 22 || stats.TopScorer != "Ada" {
		t.Errorf("top = %d by %q, want 22 by Ada", stats.TopScore, stats.TopScorer)
	}
	if want := (90.0 + 80 + 60 + 70) / 4; stats.AverageAccuracy != want {
		t.Errorf("averageAccuracy = %v, want %v", stats.AverageAccuracy, want)
	}
	if stats.LevelBreakdown["Intern"] != 2 || stats.LevelBreakdown["Student"] != 1 || stats.LevelBreakdown["Professional"] != 1 {
		t.Errorf("levelBreakdown = %v", stats.LevelBreakdown)
	}
}

func TestLeaderboard(t *testing.T) {
	entries := Leaderboard(sampleRecords(), 3)

	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	if entries[0].Name != "Ada" || entries[0].Rank != 1 {
		t.Errorf("first = %+v, want Ada rank 1", entries[0])
	}
	// Grace precedes Edsger: equal scores keep input order
	if entries[1].Name != "Grace" || entries[2].Name != "Edsger" {
		t.Errorf("tie order = %q, %q, want Grace, Edsger", entries[1].Name, entries[2].Name)
	}
	if entries[2].Rank != 3 {
		t.Errorf("third rank = %d, want 3", entries[2].Rank)
	}
}

func TestLeaderboardNoLimit(t *testing.T) {
	entries := Leaderboard(sampleRecords(), 0)
	if len(entries) != 4 {
		t.Errorf("len = %d, want 4", len(entries))
	}
}

func TestLeaderboardDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	Leaderboard(records, 2)
	if records[0].Name != "Ada" || records[2].Name != "Alan" {
		t.Error("input slice was reordered")
	}
}
