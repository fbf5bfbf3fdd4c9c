package omok

// winningCells lists, in scan order, the empty cells where c would complete five.
func winningCells(b *Board, c Cell) []Move {
	var out []Move
	for i, cell := range b.cells {
		if cell != Empty {
			continue
		}
		if m := moveAt(i); completesFive(b, m, c) {
			out = append(out, m)
		}
	}
	return out
}

// openFourCells lists, in scan order, the empty cells where c would form a run of
// exactly four with both ends empty.
func openFourCells(b *Board, c Cell) []Move {
	var out []Move
	for i, cell := range b.cells {
		if cell != Empty {
			continue
		}
		m := moveAt(i)
		for _, d := range directions {
			if n, open := RunAt(b, m, c, d[0], d[1]); n == winLength-1 && open == 2 {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// strongestCell picks the cell worth most to both sides at once, so a block that
// also builds our own line beats a bare one. Ties keep scan order.
func strongestCell(b *Board, cells []Move, player Cell) Move {
	best, bestScore := cells[0], -1
	for _, m := range cells {
		s := StoneScore(b, m, player) + StoneScore(b, m, player.Opponent())
		if s > bestScore {
			best, bestScore = m, s
		}
	}
	return best
}
