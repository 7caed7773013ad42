package config

import (
	"sync"

	"github.com/google/uuid"
)

// RoomGenerator produces room identifiers for the timer service.
type RoomGenerator interface {
	Generate() string
}

// UUIDGenerator generates random (version 4) room identifiers.
//
// Thread-safety: UUIDGenerator is stateless and safe for concurrent use.
type UUIDGenerator struct{}

// Generate returns a new hyphenated UUIDv4.
// Panics if the system random source fails.
func (UUIDGenerator) Generate() string {
	return uuid.Must(uuid.NewRandom()).String()
}

// FixedGenerator returns predetermined room identifiers in order.
// Used by tests that compare output byte for byte.
type FixedGenerator struct {
	mu    sync.Mutex
	rooms []string
	idx   int
}

// NewFixedGenerator creates a generator that returns rooms in order.
func NewFixedGenerator(rooms ...string) *FixedGenerator {
	return &FixedGenerator{rooms: rooms}
}

// Generate returns the next predetermined room.
// Panics once all rooms have been handed out.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.rooms) {
		panic("FixedGenerator: all rooms exhausted")
	}
	room := g.rooms[g.idx]
	g.idx++
	return room
}
