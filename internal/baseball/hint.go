package baseball

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jinga80/game-collection/internal/difficulty"
)

// Statistics summarises the current game for display.
type Statistics struct {
	Difficulty        string  `json:"difficulty"`
	TotalGuesses      int     `json:"totalGuesses"`
	CandidatePoolSize int     `json:"candidatePoolSize"`
	PossibleSpaceSize int     `json:"possibleSpaceSize"`
	Efficiency        float64 `json:"efficiency"`
}

// Statistics reports counters for the current game.
func (g *Guesser) Statistics() Statistics {
	return Statistics{
		Difficulty:        g.profile.Level.String(),
		TotalGuesses:      len(g.history),
		CandidatePoolSize: len(g.pool),
		PossibleSpaceSize: len(g.space),
		Efficiency:        float64(len(g.space)) / float64(max(1, len(g.history))),
	}
}

type hintBucket int

const (
	bucketNothing hintBucket = iota // 0 strikes, 0 balls
	bucketStrikes
	bucketBalls
	bucketOther
)

func bucketOf(o Outcome) hintBucket {
	switch {
	case o.Strikes == 0 && o.Balls == 0:
		return bucketNothing
	case o.Strikes > 0:
		return bucketStrikes
	case o.Balls > 0:
		return bucketBalls
	default:
		return bucketOther
	}
}

// hintText is indexed by level then bucket; placeholders are filled by Hint.
var hintText = [...][4]string{
	difficulty.Easy: {
		"None of the digits in '{guess}' are in the answer.",
		"{strikes} digit(s) of '{guess}' are in the right place!",
		"{balls} digit(s) of '{guess}' are in the answer but in a different place.",
		"Nice try! Keep going.",
	},
	difficulty.Normal: {
		"Swap every digit of '{guess}' for different ones.",
		"{strikes} digit(s) of '{guess}' are in the right place. Keep them and change the rest.",
		"{balls} digit(s) of '{guess}' are in the answer. Only their positions need to change.",
		"Look for a pattern before the next guess.",
	},
	difficulty.Hard: {
		"'{guess}' missed completely. Try a different range of digits.",
		"{strikes} digit(s) of '{guess}' are exact. Use that to reason about the others.",
		"{balls} digit(s) of '{guess}' belong to the answer. Work out where they go.",
		"Use this result to narrow down the pattern.",
	},
	difficulty.Expert: {
		"'{guess}' is ruled out entirely.",
		"{strikes} digit(s) of '{guess}' are exact.",
		"{balls} digit(s) of '{guess}' are included.",
		"Information gathered.",
	},
}

// Hint returns presentational feedback for a guess and its outcome. Expert hints
// also report how many candidates remain. It does not change any state.
func (g *Guesser) Hint(guess Code, o Outcome) string {
	level := g.profile.Level
	if !level.Valid() {
		level = difficulty.Normal
	}
	text := strings.NewReplacer(
		"{guess}", guess.String(),
		"{strikes}", strconv.Itoa(o.Strikes),
		"{balls}", strconv.Itoa(o.Balls),
	).Replace(hintText[level][bucketOf(o)])
	if g.profile.Level == difficulty.Expert {
		text += fmt.Sprintf(" Candidates left: %d.", len(g.pool))
	}
	return text
}
