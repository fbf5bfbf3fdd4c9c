package baseball

import "github.com/jinga80/game-collection/internal/difficulty"

// Fixed opening guesses per digit count. These are heuristics picked by hand, not
// results of an exhaustive search over the opening position.
var (
	// normal: the "123" prefix, padded with distinct digits.
	prefixOpeners = map[int]string{3: "123", 4: "1230", 5: "12304"}
	// hard: ascending spread.
	spreadOpeners = map[int]string{3: "123", 4: "1234", 5: "12345"}
	// expert: includes 0 away from the lead so the first reply also splits on it.
	expertOpeners = map[int]string{3: "102", 4: "1023", 5: "10234"}
)

// opener picks the first guess for a fresh game. pool must be the full space.
func opener(level difficulty.Level, digits int, pool []Code, rng Rand) Code {
	switch level {
	case difficulty.Easy:
		return pool[rng.Intn(len(pool))]
	case difficulty.Normal:
		return MustParseCode(prefixOpeners[digits])
	case difficulty.Hard:
		return MustParseCode(spreadOpeners[digits])
	default:
		return MustParseCode(expertOpeners[digits])
	}
}
