// internal/baseball/guesser.go
//
// Constraint-satisfaction guesser for a single strikes-and-balls game.
// Responsibilities:
//   - Build the full code space and the candidate pool on Initialize.
//   - Pick the next guess: opener, singleton, deliberate mistake, or minimax-partition search.
//   - Prune the pool after every reported outcome.
//
// State transitions:
//   uninitialized → active (Initialize). The guesser never decides the game is over;
//   the caller simply stops asking.
//
// A Guesser is owned by one game and is not safe for concurrent use.

package baseball

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/jinga80/game-collection/internal/difficulty"
)

var (
	ErrNotInitialized = errors.New("baseball: guesser not initialized")
	ErrDigitCount     = errors.New("baseball: digit count must be 3 to 5")
	ErrOutcomeRange   = errors.New("baseball: strikes+balls out of range")
	ErrInvalidProfile = errors.New("baseball: profile has an unknown difficulty level")
)

// Rand is the randomness the guesser needs. *math/rand.Rand and *frand.RNG both satisfy it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Origin says how a guess was produced.
type Origin int

const (
	OriginOpening Origin = iota
	OriginSingleton
	OriginSearch
	OriginMistake
	// OriginInconsistent means the pool is empty: the reported outcomes contradict
	// every code, so the guess is a random code rather than a deduction.
	OriginInconsistent
)

func (o Origin) String() string {
	switch o {
	case OriginOpening:
		return "opening"
	case OriginSingleton:
		return "singleton"
	case OriginSearch:
		return "search"
	case OriginMistake:
		return "mistake"
	case OriginInconsistent:
		return "inconsistent"
	default:
		return fmt.Sprintf("Origin(%d)", int(o))
	}
}

// Guess is a proposed code plus how it was chosen.
type Guess struct {
	Code     Code   `json:"code"`
	Origin   Origin `json:"origin"`
	PoolSize int    `json:"poolSize"`
}

// Record is one entry in the guess/outcome history.
type Record struct {
	Guess   Code    `json:"guess"`
	Outcome Outcome `json:"outcome"`
}

// Option customises a Guesser.
type Option func(*Guesser)

// WithRand replaces the default frand generator, mainly for deterministic tests.
func WithRand(r Rand) Option { return func(g *Guesser) { g.rng = r } }

// WithWorkers bounds the goroutines used by the partition search.
func WithWorkers(n int) Option {
	return func(g *Guesser) {
		if n > 0 {
			g.workers = n
		}
	}
}

// WithPlanCache shares searched guesses between guessers.
func WithPlanCache(c *PlanCache) Option { return func(g *Guesser) { g.cache = c } }

// Guesser holds the belief state for one game.
type Guesser struct {
	profile difficulty.Profile
	rng     Rand
	workers int
	cache   *PlanCache

	active  bool
	digits  int
	space   []Code // shared, read-only
	pool    []Code
	history []Record
	first   Code
}

// New creates an uninitialized guesser for the given profile.
func New(profile difficulty.Profile, opts ...Option) *Guesser {
	g := &Guesser{
		profile: profile,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = frand.New()
	}
	return g
}

// Initialize starts a new game with codes of digitCount digits.
func (g *Guesser) Initialize(digitCount int) error {
	if !g.profile.Level.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, g.profile.Level)
	}
	if digitCount < MinDigits || digitCount > MaxDigits {
		return fmt.Errorf("%w: %d", ErrDigitCount, digitCount)
	}
	g.digits = digitCount
	g.space = Space(digitCount)
	g.pool = append(make([]Code, 0, len(g.space)), g.space...)
	g.history = g.history[:0]
	g.first = opener(g.profile.Level, digitCount, g.pool, g.rng)
	g.active = true
	return nil
}

// NextGuess proposes the next code to play.
func (g *Guesser) NextGuess(ctx context.Context) (Guess, error) {
	if !g.active {
		return Guess{}, ErrNotInitialized
	}
	if len(g.history) == 0 {
		return g.propose(g.first, OriginOpening), nil
	}
	switch len(g.pool) {
	case 0:
		log.Warn().
			Int("digits", g.digits).
			Int("guesses", len(g.history)).
			Msg("candidate pool empty, outcomes are inconsistent")
		return g.propose(g.space[g.rng.Intn(len(g.space))], OriginInconsistent), nil
	case 1:
		return g.propose(g.pool[0], OriginSingleton), nil
	}
	if g.profile.MistakeRate > 0 && g.rng.Float64() < g.profile.MistakeRate {
		return g.propose(g.pool[g.rng.Intn(len(g.pool))], OriginMistake), nil
	}
	code, err := g.search(ctx)
	if err != nil {
		return Guess{}, err
	}
	return g.propose(code, OriginSearch), nil
}

func (g *Guesser) propose(c Code, o Origin) Guess {
	return Guess{Code: c, Origin: o, PoolSize: len(g.pool)}
}

func (g *Guesser) search(ctx context.Context) (Code, error) {
	key := planKey(g.digits, g.history)
	if c, ok := g.cache.get(key); ok {
		return c, nil
	}
	start := time.Now()
	c, worst, err := selectMinimax(ctx, g.space, g.pool, g.workers)
	if err != nil {
		return Code{}, fmt.Errorf("partition search: %w", err)
	}
	log.Debug().
		Str("guess", c.String()).
		Int("pool", len(g.pool)).
		Int("worstGroup", worst).
		Dur("took", time.Since(start)).
		Msg("partition search")
	g.cache.put(key, c)
	return c, nil
}

// RecordOutcome appends guess/outcome to the history and drops every candidate
// that would have produced a different outcome. Call once per real guess.
func (g *Guesser) RecordOutcome(guess Code, outcome Outcome) error {
	if !g.active {
		return ErrNotInitialized
	}
	if guess.Len() != g.digits {
		return fmt.Errorf("%w: got %d digits, game uses %d", ErrCodeLength, guess.Len(), g.digits)
	}
	if outcome.Strikes < 0 || outcome.Balls < 0 || outcome.Strikes+outcome.Balls > g.digits {
		return fmt.Errorf("%w: %s", ErrOutcomeRange, outcome)
	}
	g.history = append(g.history, Record{Guess: guess, Outcome: outcome})

	before := len(g.pool)
	kept := g.pool[:0]
	for _, cand := range g.pool {
		if Score(guess, cand) == outcome {
			kept = append(kept, cand)
		}
	}
	g.pool = kept
	if before > 0 && len(kept) == 0 {
		log.Warn().
			Str("guess", guess.String()).
			Str("outcome", outcome.String()).
			Msg("outcome eliminated every candidate")
	}
	return nil
}

// Consistent reports whether at least one code still explains every outcome.
func (g *Guesser) Consistent() bool { return !g.active || len(g.pool) > 0 }

// DigitCount is the code length of the current game, or 0 before Initialize.
func (g *Guesser) DigitCount() int { return g.digits }

// Profile returns the difficulty profile the guesser was built with.
func (g *Guesser) Profile() difficulty.Profile { return g.profile }

// Candidates returns a copy of the current candidate pool.
func (g *Guesser) Candidates() []Code { return append([]Code(nil), g.pool...) }

// History returns a copy of the guess/outcome history.
func (g *Guesser) History() []Record { return append([]Record(nil), g.history...) }

// RandomSecret draws a uniformly random valid code of digitCount digits.
func RandomSecret(rng Rand, digitCount int) (Code, error) {
	space := Space(digitCount)
	if len(space) == 0 {
		return Code{}, fmt.Errorf("%w: %d", ErrDigitCount, digitCount)
	}
	return space[rng.Intn(len(space))], nil
}
