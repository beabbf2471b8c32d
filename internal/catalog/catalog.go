// Package catalog holds the static classification of game items: which
// identifiers count as good, bad, or power-ups, their point values, and the
// prize tiers derived from a final score. The catalog is loaded once at
// startup, from a YAML file when configured or from the embedded default.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Kind string

const (
	KindGood    = Kind("good")
	KindBad     = Kind("bad")
	KindPowerUp = Kind("powerup")
)

// starKey is the one power-up worth 3 points instead of 2.
const starKey = "star"

type PrizeTier struct {
	Min   int    `yaml:"min"`
	Label string `yaml:"label"`
}

type Catalog struct {
	Good       []string    `yaml:"good"`
	Bad        []string    `yaml:"bad"`
	PowerUps   []string    `yaml:"power_ups"`
	PrizeTiers []PrizeTier `yaml:"prize_tiers"`
}

// Load reads the catalog from path, or returns the embedded default when
// path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog %s: %w", path, err)
		}
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Load("")
	if err != nil {
		// The embedded default is part of the build; failing to parse it is
		// a programming error.
		panic(err)
	}
	return c
}

func (c *Catalog) validate() error {
	if len(c.Good) == 0 {
		return fmt.Errorf("no good items")
	}
	if len(c.Bad) == 0 {
		return fmt.Errorf("no bad items")
	}
	if len(c.PowerUps) == 0 {
		return fmt.Errorf("no power-up items")
	}
	return nil
}

// Keys returns the category key list for a kind.
func (c *Catalog) Keys(kind Kind) []string {
	switch kind {
	case KindGood:
		return c.Good
	case KindBad:
		return c.Bad
	case KindPowerUp:
		return c.PowerUps
	}
	return nil
}

// Points returns the point value for an item of the given kind and key.
func (c *Catalog) Points(kind Kind, key string) int {
	switch kind {
	case KindBad:
		return -1
	case KindPowerUp:
		if key == starKey {
			return 3
		}
		return 2
	default:
		return 1
	}
}

// PrizeFor returns the highest prize tier the score qualifies for, if any.
func (c *Catalog) PrizeFor(score int) (PrizeTier, bool) {
	best := PrizeTier{Min: -1}
	for _, tier := range c.PrizeTiers {
		if score >= tier.Min && tier.Min > best.Min {
			best = tier
		}
	}
	if best.Min < 0 {
		return PrizeTier{}, false
	}
	return best, true
}
