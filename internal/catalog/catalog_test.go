package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_HasAllKinds(t *testing.T) {
	c := Default()
	if len(c.Good) == 0 {
		t.Error("default catalog has no good items")
	}
	if len(c.Bad) == 0 {
		t.Error("default catalog has no bad items")
	}
	if len(c.PowerUps) == 0 {
		t.Error("default catalog has no power-ups")
	}
	if len(c.PrizeTiers) != 3 {
		t.Errorf("prize tiers = %d, want 3", len(c.PrizeTiers))
	}
}

func TestPoints(t *testing.T) {
	c := Default()

	tests := []struct {
		kind Kind
		key  string
		want int
	}{
		{KindGood, "laptop", 1},
		{KindGood, "mortarboard", 1},
		{KindBad, "bomb", -1},
		{KindBad, "phone", -1},
		{KindPowerUp, "star", 3},
		{KindPowerUp, "rocket", 2},
		{KindPowerUp, "brain", 2},
	}
	for _, tt := range tests {
		if got := c.Points(tt.kind, tt.key); got != tt.want {
			t.Errorf("Points(%s, %s) = %d, want %d", tt.kind, tt.key, got, tt.want)
		}
	}
}

func TestKeys(t *testing.T) {
	c := Default()
	if got := c.Keys(KindGood); len(got) != len(c.Good) {
		t.Errorf("Keys(good) = %d items, want %d", len(got), len(c.Good))
	}
	if got := c.Keys(KindBad); len(got) != len(c.Bad) {
		t.Errorf("Keys(bad) = %d items, want %d", len(got), len(c.Bad))
	}
	if got := c.Keys(KindPowerUp); len(got) != len(c.PowerUps) {
		t.Errorf("Keys(powerup) = %d items, want %d", len(got), len(c.PowerUps))
	}
	if got := c.Keys(Kind("bogus")); got != nil {
		t.Errorf("Keys(bogus) = %v, want nil", got)
	}
}

func TestPrizeFor(t *testing.T) {
	c := Default()

	tests := []struct {
		score     int
		wantLabel string
		wantOK    bool
	}{
		{0, "", false},
		{29, "", false},
		{30, "Pen", true},
		{49, "Pen", true},
		{50, "Tote Bag", true},
		{99, "Tote Bag", true},
		{100, "Voucher", true},
		{250, "Voucher", true},
	}
	for _, tt := range tests {
		tier, ok := c.PrizeFor(tt.score)
		if ok != tt.wantOK {
			t.Errorf("PrizeFor(%d) ok = %v, want %v", tt.score, ok, tt.wantOK)
			continue
		}
		if ok && tier.Label != tt.wantLabel {
			t.Errorf("PrizeFor(%d) = %q, want %q", tt.score, tier.Label, tt.wantLabel)
		}
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
good: [alpha, beta]
bad: [gamma]
power_ups: [star, delta]
prize_tiers:
  - min: 10
    label: Sticker
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(c.Good) != 2 || c.Good[0] != "alpha" {
		t.Errorf("Good = %v, want [alpha beta]", c.Good)
	}
	if c.Points(KindPowerUp, "star") != 3 {
		t.Errorf("star points = %d, want 3", c.Points(KindPowerUp, "star"))
	}
	if c.Points(KindPowerUp, "delta") != 2 {
		t.Errorf("delta points = %d, want 2", c.Points(KindPowerUp, "delta"))
	}
	if tier, ok := c.PrizeFor(10); !ok || tier.Label != "Sticker" {
		t.Errorf("PrizeFor(10) = %v, %v, want Sticker, true", tier, ok)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/catalog.yaml"); err == nil {
		t.Error("Load() with missing file should return error")
	}
}

func TestLoad_InvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("good: []\nbad: [x]\npower_ups: [y]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with empty good list should return error")
	}
}
