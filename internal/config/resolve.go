package config

// Resolve merges the three layers. For each field the first non-zero value
// among cli, persisted and defaults wins.
//
// --new-room is not handled here: callers put a freshly generated room in
// cli.Room before calling, which makes it outrank everything else.
func Resolve(cli, persisted, defaults Config) Config {
	return Config{
		Site:   firstString(cli.Site, persisted.Site, defaults.Site),
		Room:   firstString(cli.Room, persisted.Room, defaults.Room),
		Lineup: firstString(cli.Lineup, persisted.Lineup, defaults.Lineup),
		Time:   firstInt(cli.Time, persisted.Time, defaults.Time),
	}
}

func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstInt(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}
