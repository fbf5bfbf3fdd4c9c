// internal/difficulty/difficulty.go
//
// Difficulty levels shared by both engines.
// Responsibilities:
//   - Closed Level enum (easy, normal, hard, expert) parsed once from strings.
//   - One immutable Profile row per level, consumed by table lookup.
//
// Notes:
//   - Profiles are plain values; engines copy them at construction time and never
//     mutate them mid-game.

package difficulty

import (
	"errors"
	"fmt"
	"strings"
)

// Level is a closed set of difficulty settings.
type Level int

const (
	Easy Level = iota
	Normal
	Hard
	Expert
)

// ErrUnknownLevel is returned by Parse for anything outside the four known names.
var ErrUnknownLevel = errors.New("difficulty: unknown level")

var names = [...]string{"easy", "normal", "hard", "expert"}

// Profile is the per-level configuration row.
type Profile struct {
	Level          Level
	MistakeRate    float64 // guesser: chance of a random candidate instead of the searched one
	SearchDepth    int     // omok: alpha-beta plies
	RandomMoveRate float64 // omok: chance of a random (centre-biased) move
	Description    string
	Strategy       string
}

var profiles = [...]Profile{
	Easy: {
		Level:          Easy,
		MistakeRate:    0.30,
		SearchDepth:    2,
		RandomMoveRate: 0.4,
		Description:    "Beginner: the AI makes frequent mistakes",
		Strategy:       "Plays basic moves",
	},
	Normal: {
		Level:          Normal,
		MistakeRate:    0.10,
		SearchDepth:    3,
		RandomMoveRate: 0.2,
		Description:    "Casual: a balanced opponent",
		Strategy:       "Balances attack and defence",
	},
	Hard: {
		Level:          Hard,
		MistakeRate:    0.05,
		SearchDepth:    4,
		RandomMoveRate: 0.1,
		Description:    "Skilled: a strong opponent",
		Strategy:       "Strategic play with longer plans",
	},
	Expert: {
		Level:          Expert,
		MistakeRate:    0.0,
		SearchDepth:    5,
		RandomMoveRate: 0.0,
		Description:    "Expert: the strongest setting",
		Strategy:       "Minimax with alpha-beta pruning",
	},
}

// Parse maps a case-insensitive level name to a Level.
func Parse(s string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == key {
			return Level(i), nil
		}
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Valid reports whether l is one of the four defined levels.
func (l Level) Valid() bool { return l >= Easy && l <= Expert }

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return names[l]
}

// Levels lists every level from easiest to hardest.
func Levels() []Level { return []Level{Easy, Normal, Hard, Expert} }

// For returns the profile row for l. An out-of-range Level is a programmer error.
func For(l Level) Profile {
	if !l.Valid() {
		panic(fmt.Sprintf("difficulty: invalid level %d", int(l)))
	}
	return profiles[l]
}
