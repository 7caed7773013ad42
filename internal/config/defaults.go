package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envDefaults mirrors Config with the environment overrides of the
// built-in defaults.
type envDefaults struct {
	Site   string `env:"MOB_TIMER_SITE" envDefault:"https://timer.mob.sh"`
	Room   string `env:"MOB_TIMER_ROOM"`
	Lineup string `env:"MOB_TIMER_LINEUP" envDefault:"lineup"`
	Time   int    `env:"MOB_TIMER_TIME" envDefault:"7"`
}

// Defaults builds the lowest-precedence layer.
//
// environ supplies the MOB_TIMER_* variables; nil reads the process
// environment. The room is drawn from gen once per call unless
// MOB_TIMER_ROOM is set, so callers should compute defaults once at startup
// and pass the value along.
func Defaults(gen RoomGenerator, environ map[string]string) (Config, error) {
	var d envDefaults
	opts := env.Options{Environment: environ}
	if err := env.ParseWithOptions(&d, opts); err != nil {
		return Config{}, fmt.Errorf("parse env defaults: %w", err)
	}
	if d.Time <= 0 {
		return Config{}, fmt.Errorf("parse env defaults: MOB_TIMER_TIME must be positive, got %d", d.Time)
	}
	if d.Room == "" {
		d.Room = gen.Generate()
	}
	return Config{
		Site:   d.Site,
		Room:   d.Room,
		Lineup: d.Lineup,
		Time:   d.Time,
	}, nil
}
