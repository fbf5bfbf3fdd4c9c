// internal/omok/engine.go
//
// Move selection for the five-in-a-row engine.
// Responsibilities:
//   - Apply the decision ladder: random move, forced block, immediate win,
//     open-four threats, alpha-beta search, then a positional fallback.
//   - Forced blocks and wins take the first qualifying cell in scan order.
//   - Annotate a hypothetical move with an attack/defence category.
//
// The caller's board is never modified: BestMove works on a copy.
// An Engine is owned by one game and is not safe for concurrent use.

package omok

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/jinga80/game-collection/internal/difficulty"
)

const (
	DefaultNodeBudget = 150000
	DefaultWidth      = 12
)

// Rand is the randomness the engine needs. *math/rand.Rand and *frand.RNG both satisfy it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Reason records which rung of the decision ladder produced a move.
type Reason int

const (
	ReasonRandom Reason = iota
	ReasonWin
	ReasonDefend
	ReasonOpenFour
	ReasonBlockThree
	ReasonSearch
	ReasonStrategic
	ReasonBoardFull
)

func (r Reason) String() string {
	switch r {
	case ReasonRandom:
		return "random"
	case ReasonWin:
		return "win"
	case ReasonDefend:
		return "defend"
	case ReasonOpenFour:
		return "open-four"
	case ReasonBlockThree:
		return "block-three"
	case ReasonSearch:
		return "search"
	case ReasonStrategic:
		return "strategic"
	case ReasonBoardFull:
		return "board-full"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Decision is the chosen move plus search diagnostics.
type Decision struct {
	Move      Move   `json:"move"`
	Reason    Reason `json:"reason"`
	Score     int64  `json:"score"`
	Nodes     int    `json:"nodes"`
	Depth     int    `json:"depth"`
	Truncated bool   `json:"truncated"`
}

// Option customises an Engine.
type Option func(*Engine)

func WithRand(r Rand) Option { return func(e *Engine) { e.rng = r } }

// WithNodeBudget caps the nodes visited per BestMove. Zero or less means unlimited.
func WithNodeBudget(n int) Option { return func(e *Engine) { e.budget = n } }

// WithWidth caps the children expanded per node.
func WithWidth(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.width = n
		}
	}
}

// WithEvalCache enables a leaf evaluation cache of the given size. Zero disables it.
func WithEvalCache(size int) Option {
	return func(e *Engine) {
		e.cache = nil
		if size > 0 {
			if c, err := NewEvalCache(size); err == nil {
				e.cache = c
			}
		}
	}
}

// WithThreatScan turns the open-four rungs on or off. With them off, open fours
// and open threes are left to the search. On by default.
func WithThreatScan(enabled bool) Option { return func(e *Engine) { e.threats = enabled } }

// Engine picks moves for one side at a fixed difficulty.
type Engine struct {
	profile difficulty.Profile
	rng     Rand
	budget  int
	width   int
	cache   *EvalCache
	threats bool
}

// NewEngine creates an engine for the given profile.
func NewEngine(profile difficulty.Profile, opts ...Option) *Engine {
	e := &Engine{
		profile: profile,
		budget:  DefaultNodeBudget,
		width:   DefaultWidth,
		threats: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = frand.New()
	}
	return e
}

// Profile returns the difficulty profile the engine was built with.
func (e *Engine) Profile() difficulty.Profile { return e.profile }

// BestMove chooses a move for player on b. A full board is not an error: the
// decision carries ReasonBoardFull and the centre cell.
func (e *Engine) BestMove(ctx context.Context, b Board, player Cell) (Decision, error) {
	if !player.IsPlayer() {
		return Decision{}, ErrInvalidPlayer
	}
	if b.Full() {
		return Decision{Move: Center, Reason: ReasonBoardFull}, nil
	}
	if e.profile.RandomMoveRate > 0 && e.rng.Float64() < e.profile.RandomMoveRate {
		return Decision{Move: e.randomMove(&b), Reason: ReasonRandom}, nil
	}

	opp := player.Opponent()
	if blocks := winningCells(&b, opp); len(blocks) > 0 {
		return Decision{Move: blocks[0], Reason: ReasonDefend}, nil
	}
	if wins := winningCells(&b, player); len(wins) > 0 {
		return Decision{Move: wins[0], Reason: ReasonWin}, nil
	}
	if e.threats {
		if fours := openFourCells(&b, player); len(fours) > 0 {
			return Decision{Move: strongestCell(&b, fours, player), Reason: ReasonOpenFour}, nil
		}
		if threes := openFourCells(&b, opp); len(threes) > 0 {
			return Decision{Move: strongestCell(&b, threes, player), Reason: ReasonBlockThree}, nil
		}
	}

	start := time.Now()
	s := newSearcher(ctx, b, e.width, e.budget, e.cache)
	res := s.run(player, e.profile.SearchDepth)
	ev := log.Debug().
		Str("player", player.String()).
		Int("depth", e.profile.SearchDepth).
		Int("nodes", res.nodes).
		Bool("truncated", res.truncated).
		Dur("took", time.Since(start))
	if res.truncated && !res.found {
		ev.Msg("search stopped before any root move completed")
		return Decision{
			Move:      e.strategicMove(&b),
			Reason:    ReasonStrategic,
			Nodes:     res.nodes,
			Depth:     e.profile.SearchDepth,
			Truncated: true,
		}, nil
	}
	if !res.found {
		ev.Msg("search produced no move")
		return Decision{Move: e.strategicMove(&b), Reason: ReasonStrategic, Nodes: res.nodes, Depth: e.profile.SearchDepth}, nil
	}
	ev.Str("move", res.move.String()).Int64("score", res.score).Msg("alpha-beta search")
	return Decision{
		Move:      res.move,
		Reason:    ReasonSearch,
		Score:     res.score,
		Nodes:     res.nodes,
		Depth:     e.profile.SearchDepth,
		Truncated: res.truncated,
	}, nil
}

// inCentre covers rows and columns 5 through 9.
func inCentre(m Move) bool {
	return m.Row >= 5 && m.Row <= 9 && m.Col >= 5 && m.Col <= 9
}

func inCornerBand(m Move) bool {
	return (m.Row <= 2 || m.Row >= Size-3) && (m.Col <= 2 || m.Col >= Size-3)
}

func (e *Engine) randomMove(b *Board) Move {
	empty := b.EmptyCells()
	if m, ok := e.pick(empty, inCentre); ok {
		return m
	}
	return empty[e.rng.Intn(len(empty))]
}

func (e *Engine) strategicMove(b *Board) Move {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return Center
	}
	if m, ok := e.pick(empty, inCentre); ok {
		return m
	}
	if m, ok := e.pick(empty, inCornerBand); ok {
		return m
	}
	return empty[e.rng.Intn(len(empty))]
}

func (e *Engine) pick(cells []Move, keep func(Move) bool) (Move, bool) {
	var matched []Move
	for _, m := range cells {
		if keep(m) {
			matched = append(matched, m)
		}
	}
	if len(matched) == 0 {
		return Move{}, false
	}
	return matched[e.rng.Intn(len(matched))], true
}

// Category classifies a move by what it does for the mover.
type Category int

const (
	Neutral Category = iota
	Defensive
	ModerateAttack
	CriticalDefense
	StrongAttack
	ImmediateWin
)

func (c Category) String() string {
	switch c {
	case ImmediateWin:
		return "immediate win"
	case StrongAttack:
		return "strong attack"
	case CriticalDefense:
		return "critical defense"
	case ModerateAttack:
		return "moderate attack"
	case Defensive:
		return "defensive"
	case Neutral:
		return "neutral"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Describe renders the category as a sentence about player.
func (c Category) Describe(player Cell) string {
	switch c {
	case ImmediateWin:
		return fmt.Sprintf("Winning move! %s wins with this stone.", player)
	case StrongAttack:
		return fmt.Sprintf("Strong attack! This gives %s a clear advantage.", player)
	case CriticalDefense:
		return "Critical defense! This stops the opponent's winning line."
	case ModerateAttack:
		return fmt.Sprintf("Good attack! This builds a useful line for %s.", player)
	case Defensive:
		return "Defensive move. This blunts the opponent's attack."
	default:
		return "Basic move on a positional point."
	}
}

// AnalyzeMove classifies playing m as player on b. The attack value scores the
// stone as player's, the defence value as if the opponent had played there.
func AnalyzeMove(b Board, m Move, player Cell) (Category, error) {
	if !player.IsPlayer() {
		return Neutral, ErrInvalidPlayer
	}
	if !m.Valid() {
		return Neutral, fmt.Errorf("%w: %s", ErrOutOfBounds, m)
	}
	if !b.IsEmpty(m) {
		return Neutral, fmt.Errorf("%w: %s", ErrOccupied, m)
	}
	attack := StoneScore(&b, m, player)
	defence := StoneScore(&b, m, player.Opponent())
	switch {
	case attack >= ScoreOpenFour:
		return ImmediateWin, nil
	case attack >= ScoreBlockedFour:
		return StrongAttack, nil
	case defence >= ScoreBlockedFour:
		return CriticalDefense, nil
	case attack >= ScoreBlockedThree:
		return ModerateAttack, nil
	case defence >= ScoreBlockedThree:
		return Defensive, nil
	}
	return Neutral, nil
}

// AnalyzeMove is the engine-bound form of the package function.
func (e *Engine) AnalyzeMove(b Board, m Move, player Cell) (Category, error) {
	return AnalyzeMove(b, m, player)
}

// Info describes the engine's difficulty for display.
type Info struct {
	Description string `json:"description"`
	Strategy    string `json:"strategy"`
	SearchDepth int    `json:"searchDepth"`
}

// DifficultyInfo reports the profile in display form.
func (e *Engine) DifficultyInfo() Info {
	return Info{
		Description: e.profile.Description,
		Strategy:    e.profile.Strategy,
		SearchDepth: e.profile.SearchDepth,
	}
}
