package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var builtin = Config{Site: DefaultSite, Room: "generated", Lineup: DefaultLineup, Time: DefaultTime}

func TestResolve_PersistedBeatsDefault(t *testing.T) {
	got := Resolve(Config{}, Config{Site: "https://x"}, builtin)
	assert.Equal(t, "https://x", got.Site)
}

func TestResolve_CLIBeatsEverything(t *testing.T) {
	got := Resolve(Config{Site: "https://y"}, Config{Site: "https://x"}, builtin)
	assert.Equal(t, "https://y", got.Site)
}

func TestResolve_PerField(t *testing.T) {
	cli := Config{Time: 3}
	persisted := Config{Room: "saved", Time: 10}

	got := Resolve(cli, persisted, builtin)
	assert.Equal(t, Config{Site: DefaultSite, Room: "saved", Lineup: DefaultLineup, Time: 3}, got)
}

func TestResolve_FullyPopulated(t *testing.T) {
	got := Resolve(Config{}, Config{}, builtin)
	assert.Equal(t, builtin, got)
	assert.NotEmpty(t, got.Site)
	assert.NotEmpty(t, got.Room)
	assert.NotEmpty(t, got.Lineup)
	assert.NotZero(t, got.Time)
}

func TestResolve_NewRoomOverridesPersisted(t *testing.T) {
	persisted := Config{Room: "fixed-room"}
	gen := UUIDGenerator{}

	for i := 0; i < 50; i++ {
		got := Resolve(Config{Room: gen.Generate()}, persisted, builtin)
		require.NotEqual(t, "fixed-room", got.Room)
		require.NotEmpty(t, got.Room)
	}
}

func TestDefaults_Builtin(t *testing.T) {
	d, err := Defaults(NewFixedGenerator("room-1"), map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, Config{Site: DefaultSite, Room: "room-1", Lineup: DefaultLineup, Time: DefaultTime}, d)
}

func TestDefaults_Environment(t *testing.T) {
	environ := map[string]string{
		"MOB_TIMER_SITE":   "https://timer.example",
		"MOB_TIMER_ROOM":   "env-room",
		"MOB_TIMER_LINEUP": "crew",
		"MOB_TIMER_TIME":   "12",
	}

	// The generator must not be consulted when the room comes from the env.
	d, err := Defaults(NewFixedGenerator(), environ)
	require.NoError(t, err)
	assert.Equal(t, Config{Site: "https://timer.example", Room: "env-room", Lineup: "crew", Time: 12}, d)
}

func TestDefaults_BadTime(t *testing.T) {
	for _, v := range []string{"soon", "0", "-1"} {
		_, err := Defaults(NewFixedGenerator("r"), map[string]string{"MOB_TIMER_TIME": v})
		assert.Error(t, err, "MOB_TIMER_TIME=%s", v)
	}
}

func TestDefaults_ProcessEnvironment(t *testing.T) {
	t.Setenv("MOB_TIMER_LINEUP", "from-process")

	d, err := Defaults(NewFixedGenerator("r"), nil)
	require.NoError(t, err)
	assert.Equal(t, "from-process", d.Lineup)
}

func TestUUIDGenerator_Unique(t *testing.T) {
	gen := UUIDGenerator{}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		room := gen.Generate()
		require.Len(t, room, 36)
		require.False(t, seen[room])
		seen[room] = true
	}
}

func TestFixedGenerator_Exhausted(t *testing.T) {
	gen := NewFixedGenerator("only")
	assert.Equal(t, "only", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}
