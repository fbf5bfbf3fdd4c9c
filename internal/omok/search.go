// internal/omok/search.go
//
// Depth-limited alpha-beta search (negamax form).
// Responsibilities:
//   - Generate and order children: empty cells near existing stones, capped at a width.
//   - Detect terminal fives as soon as a child is placed.
//   - Stop on node budget or context cancellation and report truncation.
//
// Notes:
//   - The searcher owns a scratch copy of the board. Every set is paired with a clear
//     before the enclosing loop continues, so the copy is back to the root position
//     whenever a root child finishes.

package omok

import (
	"context"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// winScore dominates any static evaluation; remaining depth is added so that
	// faster wins score higher.
	winScore int64 = 1 << 40
	infinity int64 = 1 << 50

	// neighbourhood is the Chebyshev radius around stones that yields candidates.
	neighbourhood = 2

	// ctxCheckInterval is how many nodes pass between context polls.
	ctxCheckInterval = 1024
)

// EvalCache memoises static evaluations by Zobrist hash. Values are stored from
// Black's point of view; the evaluation is antisymmetric so White's is the negation.
type EvalCache struct {
	entries *lru.Cache[uint64, int]
}

// NewEvalCache returns a cache holding at most size positions.
func NewEvalCache(size int) (*EvalCache, error) {
	c, err := lru.New[uint64, int](size)
	if err != nil {
		return nil, err
	}
	return &EvalCache{entries: c}, nil
}

// Len reports the number of cached positions.
func (c *EvalCache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

func (c *EvalCache) evaluate(b *Board, player Cell) int {
	if c == nil {
		return Evaluate(b, player)
	}
	v, ok := c.entries.Get(b.Hash())
	if !ok {
		v = Evaluate(b, Black)
		c.entries.Add(b.Hash(), v)
	}
	if player == White {
		return -v
	}
	return v
}

type searchResult struct {
	move      Move
	score     int64
	found     bool
	nodes     int
	truncated bool
}

type searcher struct {
	ctx    context.Context
	board  Board
	width  int
	budget int
	cache  *EvalCache

	nodes   int
	stopped bool
}

func newSearcher(ctx context.Context, b Board, width, budget int, cache *EvalCache) *searcher {
	return &searcher{ctx: ctx, board: b, width: width, budget: budget, cache: cache}
}

// run searches depth plies for player. A root child whose subtree was cut short
// is discarded; the best fully searched child is kept.
func (s *searcher) run(player Cell, depth int) searchResult {
	res := searchResult{score: -infinity}
	if depth < 1 {
		depth = 1
	}
	alpha := -infinity
	for _, m := range s.children(player) {
		if s.tick() {
			break
		}
		v := s.child(m, player, depth, alpha, infinity)
		if s.stopped {
			break
		}
		if !res.found || v > res.score {
			res.move, res.score, res.found = m, v, true
		}
		alpha = max(alpha, v)
	}
	res.nodes = s.nodes
	res.truncated = s.stopped
	return res
}

// child plays m for toMove, scores it and takes it back.
func (s *searcher) child(m Move, toMove Cell, depth int, alpha, beta int64) int64 {
	s.board.set(m, toMove)
	var v int64
	if completesFive(&s.board, m, toMove) {
		v = winScore + int64(depth)
	} else {
		v = -s.negamax(toMove.Opponent(), depth-1, -beta, -alpha)
	}
	s.board.clear(m)
	return v
}

func (s *searcher) negamax(toMove Cell, depth int, alpha, beta int64) int64 {
	if depth == 0 {
		return int64(s.cache.evaluate(&s.board, toMove))
	}
	children := s.children(toMove)
	if len(children) == 0 {
		return int64(s.cache.evaluate(&s.board, toMove))
	}
	best := -infinity
	for _, m := range children {
		if s.tick() {
			return best
		}
		v := s.child(m, toMove, depth, alpha, beta)
		if s.stopped {
			return best
		}
		if v > best {
			best = v
		}
		if v > alpha {
			alpha = v
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// tick counts a node and reports whether the search must stop.
func (s *searcher) tick() bool {
	if s.stopped {
		return true
	}
	s.nodes++
	if s.budget > 0 && s.nodes >= s.budget {
		s.stopped = true
	} else if s.nodes%ctxCheckInterval == 0 && s.ctx.Err() != nil {
		s.stopped = true
	}
	return s.stopped
}

type scoredMove struct {
	move  Move
	score int
}

// children returns candidate moves for toMove, best first, at most s.width of them.
// An empty board yields only the centre.
func (s *searcher) children(toMove Cell) []Move {
	return candidates(&s.board, toMove, s.width)
}

func candidates(b *Board, toMove Cell, width int) []Move {
	if b.stones == 0 {
		return []Move{Center}
	}
	var near [Size * Size]bool
	for i, c := range b.cells {
		if c == Empty {
			continue
		}
		m := moveAt(i)
		for r := max(0, m.Row-neighbourhood); r <= min(Size-1, m.Row+neighbourhood); r++ {
			for col := max(0, m.Col-neighbourhood); col <= min(Size-1, m.Col+neighbourhood); col++ {
				near[r*Size+col] = true
			}
		}
	}

	opp := toMove.Opponent()
	scored := make([]scoredMove, 0, 64)
	for i, ok := range near {
		if !ok || b.cells[i] != Empty {
			continue
		}
		m := moveAt(i)
		scored = append(scored, scoredMove{
			move:  m,
			score: StoneScore(b, m, toMove) + StoneScore(b, m, opp) + positionWeight[i],
		})
	}
	slices.SortStableFunc(scored, func(a, b scoredMove) int { return b.score - a.score })
	if width > 0 && len(scored) > width {
		scored = scored[:width]
	}
	out := make([]Move, len(scored))
	for i, sm := range scored {
		out[i] = sm.move
	}
	return out
}
