// Package config resolves the effective mobtimer settings.
//
// Settings come from three layers, highest precedence first:
//
//  1. command-line flags
//  2. the persisted config file (JSON with comments, or YAML)
//  3. built-in defaults, which MOB_TIMER_* environment variables override
//
// Resolve merges them field by field into a fully populated Config.
package config

// Built-in values used when neither flags, file nor environment set a field.
const (
	DefaultPath   = ".mobtimer.json"
	DefaultSite   = "https://timer.mob.sh"
	DefaultLineup = "lineup"
	DefaultTime   = 7
)

// Config is the persisted settings record. A zero field means "unset".
type Config struct {
	Site   string `json:"site,omitempty" yaml:"site,omitempty"`
	Room   string `json:"room,omitempty" yaml:"room,omitempty"`
	Lineup string `json:"lineup,omitempty" yaml:"lineup,omitempty"`
	Time   int    `json:"time,omitempty" yaml:"time,omitempty"`
}

// IsZero reports whether no field is set.
func (c Config) IsZero() bool {
	return c == Config{}
}
