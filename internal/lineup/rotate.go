package lineup

import (
	"fmt"
	"math/rand"
)

// Lineup is the ordered list of participant names.
type Lineup []string

// Assignment is the navigator/driver pair at the front of a lineup.
// It is derived on every command and never persisted.
type Assignment struct {
	Navigator string `json:"navigator"`
	Driver    string `json:"driver"`
}

// User returns the label sent to the timer service.
func (a Assignment) User() string {
	return fmt.Sprintf("D: %s, N: %s", a.Driver, a.Navigator)
}

// Shuffler permutes n elements through swap.
// *rand.Rand from math/rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalRand struct{}

func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Rotate returns a copy of l shifted cyclically by offset positions.
// result[i] == l[(i+offset) mod n]; negative offsets shift backward.
func Rotate(l Lineup, offset int) Lineup {
	n := len(l)
	out := make(Lineup, n)
	if n == 0 {
		return out
	}
	k := ((offset % n) + n) % n
	for i := range l {
		out[i] = l[(i+k)%n]
	}
	return out
}

// Shuffle returns a uniformly random permutation of l. l is not modified.
// A nil Shuffler uses the math/rand global source.
func Shuffle(l Lineup, r Shuffler) Lineup {
	if r == nil {
		r = globalRand{}
	}
	out := make(Lineup, len(l))
	copy(out, l)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// NextUp returns the assignment formed by the first two entries.
// Lineups shorter than two fail with *InsufficientError.
func NextUp(l Lineup) (Assignment, error) {
	if len(l) < 2 {
		return Assignment{}, &InsufficientError{Count: len(l)}
	}
	return Assignment{Navigator: l[0], Driver: l[1]}, nil
}
