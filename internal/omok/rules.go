package omok

// winLength is the run length that ends the game.
const winLength = 5

// directions are the four line orientations: horizontal, vertical, and both diagonals.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// IsWin reports whether the stone of colour c at m is part of five or more in a row.
func IsWin(b *Board, m Move, c Cell) bool {
	if !c.IsPlayer() || b.At(m) != c {
		return false
	}
	return completesFive(b, m, c)
}

// completesFive reports whether a stone of colour c at m, whether or not it is
// already there, would sit in a line of at least five.
func completesFive(b *Board, m Move, c Cell) bool {
	for _, d := range directions {
		if n, _ := RunAt(b, m, c, d[0], d[1]); n >= winLength {
			return true
		}
	}
	return false
}

// RunAt measures the contiguous line of colour c through m along (dr, dc),
// treating m itself as c. openEnds counts the empty cells (0, 1 or 2) bounding the run.
func RunAt(b *Board, m Move, c Cell, dr, dc int) (length, openEnds int) {
	length = 1
	for _, sign := range [2]int{1, -1} {
		r, col := m.Row+sign*dr, m.Col+sign*dc
		for r >= 0 && r < Size && col >= 0 && col < Size && b.cells[r*Size+col] == c {
			length++
			r += sign * dr
			col += sign * dc
		}
		if r >= 0 && r < Size && col >= 0 && col < Size && b.cells[r*Size+col] == Empty {
			openEnds++
		}
	}
	return length, openEnds
}
