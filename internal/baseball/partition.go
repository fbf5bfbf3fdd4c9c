// internal/baseball/partition.go
//
// Minimax-partition guess selection.
// For each hypothetical guess in the full space, the candidate pool is split by the
// outcome each candidate would produce; the guess whose largest group is smallest wins.
// Ties go to the earliest guess in space order.
//
// The space is cut into contiguous chunks scored by an errgroup. Each worker keeps
// its own (worst, index) best and the merge takes the minimum pair, so the answer is
// the same as a sequential scan regardless of worker count.

package baseball

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// ctxCheckEvery is how many guesses a worker scores between cancellation checks.
const ctxCheckEvery = 64

type pick struct {
	index int
	worst int
}

func (p pick) better(o pick) bool {
	if p.worst != o.worst {
		return p.worst < o.worst
	}
	return p.index < o.index
}

// worstGroup returns the size of the largest outcome group guess induces on pool.
// It stops early once a group reaches limit, since such a guess cannot win.
func worstGroup(guess Code, pool []Code, limit int) int {
	var counts [outcomeSlots]int
	worst := 0
	for _, cand := range pool {
		s := Score(guess, cand).slot()
		counts[s]++
		if counts[s] > worst {
			worst = counts[s]
			if worst >= limit {
				return worst
			}
		}
	}
	return worst
}

// selectMinimax scores every code in space against pool using up to workers goroutines.
func selectMinimax(ctx context.Context, space, pool []Code, workers int) (Code, int, error) {
	if len(space) == 0 || len(pool) == 0 {
		return Code{}, 0, nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(space) {
		workers = len(space)
	}

	results := make([]pick, workers)
	chunk := (len(space) + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(space))
		slot := &results[w]
		g.Go(func() error {
			best := pick{index: -1, worst: math.MaxInt}
			for i := lo; i < hi; i++ {
				if (i-lo)%ctxCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				worst := worstGroup(space[i], pool, best.worst)
				if worst < best.worst {
					best = pick{index: i, worst: worst}
				}
			}
			*slot = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Code{}, 0, err
	}

	best := pick{index: -1, worst: math.MaxInt}
	for _, r := range results {
		if r.index >= 0 && r.better(best) {
			best = r
		}
	}
	return space[best.index], best.worst, nil
}
