package achievements

type ID string

const (
	IDSpeedDemon    ID = "speed_demon"
	IDComboMaster   ID = "combo_master"
	IDPerfectionist ID = "perfectionist"
	IDCareerFocused ID = "career_focused"
)

// Stats are the session counters achievement predicates run against.
type Stats struct {
	GoodClicks  int `json:"goodClicks"`
	BadClicks   int `json:"badClicks"`
	MissedItems int `json:"missedItems"`
}

type Achievement struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Check       func(s Stats, combo, score int) bool `json:"-"`
}

// Catalog is ordered: when several predicates hold at once, the last
// matching entry wins.
var Catalog = []Achievement{
	{
		ID:          IDSpeedDemon,
		Title:       "Speed Demon",
		Description: "5 clicks in 3 seconds",
		Check: func(s Stats, combo, score int) bool {
			return s.GoodClicks >= 5
		},
	},
	{
		ID:          IDComboMaster,
		Title:       "Combo Master",
		Description: "7x combo achieved",
		Check: func(s Stats, combo, score int) bool {
			return combo >= 7
		},
	},
	{
		ID:          IDPerfectionist,
		Title:       "Perfectionist",
		Description: "No bad clicks",
		Check: func(s Stats, combo, score int) bool {
			return s.BadClicks == 0 && score > 5
		},
	},
	{
		ID:          IDCareerFocused,
		Title:       "Career Focused",
		Description: "15+ points scored",
		Check: func(s Stats, combo, score int) bool {
			return score >= 15
		},
	},
}

// Evaluate runs every predicate against the current state and returns the
// last match in catalog order, or nil when none hold.
func Evaluate(s Stats, combo, score int) *Achievement {
	var matched *Achievement
	for i := range Catalog {
		if Catalog[i].Check(s, combo, score) {
			matched = &Catalog[i]
		}
	}
	return matched
}
