package inventory

// ChangeDirection says which way a stat moved.
type ChangeDirection int

const (
	ChangeNeutral ChangeDirection = iota
	ChangePositive
	ChangeNegative
)

// String returns a human-readable label for the direction.
func (d ChangeDirection) String() string {
	switch d {
	case ChangePositive:
		return "positive"
	case ChangeNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// MarshalText lets the direction serialize as its name in JSON and YAML.
func (d ChangeDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Icon keys for stat cards. The dashboard maps them to glyphs.
const (
	IconPackage = "package"
	IconScale   = "scale"
	IconAlert   = "alert"
	IconTrend   = "trend"
)

// StatEntry is one pre-formatted tile of the stats summary.
type StatEntry struct {
	Title       string          `yaml:"title" json:"title"`
	Value       string          `yaml:"value" json:"value"`
	Change      string          `yaml:"change" json:"change"`
	Direction   ChangeDirection `yaml:"direction" json:"direction"`
	Description string          `yaml:"description" json:"description"`
	Icon        string          `yaml:"icon" json:"icon"`
}

// DefaultStats returns a copy of the fixed stats summary.
// The values are display seeds and are not derived from the catalog.
func DefaultStats() []StatEntry {
	return seedStats()
}
