// internal/omok/board.go
//
// Fixed 15x15 five-in-a-row board.
// Defines:
//   - Cell: empty/black/white.
//   - Move: a (row, col) coordinate.
//   - Board: cell array plus an incrementally maintained Zobrist hash.
//
// Notes:
//   - Board is a value type; assigning or passing it by value makes a snapshot.
//   - Place is the validated entry point for callers. set/clear are the unchecked
//     pair used by the search on its own scratch copy.

package omok

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the board edge length.
const Size = 15

var (
	ErrOutOfBounds   = errors.New("omok: move out of bounds")
	ErrOccupied      = errors.New("omok: cell occupied")
	ErrInvalidPlayer = errors.New("omok: player must be black or white")
	ErrBoardShape    = errors.New("omok: board must be 15 rows of 15 cells")
)

// Cell is the content of one intersection.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// Opponent returns the other colour. Empty has no opponent and maps to Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// IsPlayer reports whether c is a stone colour.
func (c Cell) IsPlayer() bool { return c == Black || c == White }

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// ParseCell maps "black"/"white" to a Cell.
func ParseCell(s string) (Cell, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidPlayer, s)
	}
}

// Move addresses one cell.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Center is the middle intersection.
var Center = Move{Row: Size / 2, Col: Size / 2}

// Valid reports whether m lies on the board.
func (m Move) Valid() bool { return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size }

func (m Move) String() string { return fmt.Sprintf("(%d,%d)", m.Row, m.Col) }

func (m Move) index() int { return m.Row*Size + m.Col }

func moveAt(idx int) Move { return Move{Row: idx / Size, Col: idx % Size} }

// Board holds the cells and a Zobrist hash of the position.
type Board struct {
	cells  [Size * Size]Cell
	hash   uint64
	stones int
}

// At returns the cell at m, or Empty when m is off the board.
func (b *Board) At(m Move) Cell {
	if !m.Valid() {
		return Empty
	}
	return b.cells[m.index()]
}

// IsEmpty reports whether m is on the board and unoccupied.
func (b *Board) IsEmpty(m Move) bool { return m.Valid() && b.cells[m.index()] == Empty }

// Place puts a stone of colour c at m.
func (b *Board) Place(m Move, c Cell) error {
	if !c.IsPlayer() {
		return ErrInvalidPlayer
	}
	if !m.Valid() {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, m)
	}
	if b.cells[m.index()] != Empty {
		return fmt.Errorf("%w: %s", ErrOccupied, m)
	}
	b.set(m, c)
	return nil
}

func (b *Board) set(m Move, c Cell) {
	i := m.index()
	b.cells[i] = c
	b.hash ^= zobristKey(i, c)
	b.stones++
}

func (b *Board) clear(m Move) {
	i := m.index()
	b.hash ^= zobristKey(i, b.cells[i])
	b.cells[i] = Empty
	b.stones--
}

// EmptyCells lists the unoccupied cells in row-major scan order.
func (b *Board) EmptyCells() []Move {
	out := make([]Move, 0, Size*Size-b.stones)
	for i, c := range b.cells {
		if c == Empty {
			out = append(out, moveAt(i))
		}
	}
	return out
}

// CountEmpty returns the number of unoccupied cells.
func (b *Board) CountEmpty() int { return Size*Size - b.stones }

// Stones returns the number of stones on the board.
func (b *Board) Stones() int { return b.stones }

// Full reports whether no empty cell remains.
func (b *Board) Full() bool { return b.stones == Size*Size }

// Hash returns the Zobrist hash of the position.
func (b *Board) Hash() uint64 { return b.hash }

// String renders the board with '.' for empty, 'X' for black and 'O' for white.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Size * (Size + 1))
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteByte(cellRune(b.cells[r*Size+c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellRune(c Cell) byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	default:
		return '.'
	}
}

// ParseBoard builds a board from Size rows of Size characters using the String
// alphabet ('B' and 'W' are accepted as aliases).
func ParseBoard(rows []string) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("%w: got %d rows", ErrBoardShape, len(rows))
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("%w: row %d has %d cells", ErrBoardShape, r, len(row))
		}
		for c := 0; c < Size; c++ {
			switch row[c] {
			case '.', '+', '_':
			case 'X', 'x', 'B', 'b':
				b.set(Move{Row: r, Col: c}, Black)
			case 'O', 'o', 'W', 'w':
				b.set(Move{Row: r, Col: c}, White)
			default:
				return b, fmt.Errorf("%w: row %d col %d has %q", ErrBoardShape, r, c, row[c])
			}
		}
	}
	return b, nil
}

// Zobrist keys, two per cell, generated once from a fixed splitmix64 seed.
var zobristKeys = func() [Size * Size * 2]uint64 {
	var keys [Size * Size * 2]uint64
	rng := splitmix64{state: 0x9e3779b97f4a7c15 ^ Size}
	for i := range keys {
		keys[i] = rng.next()
	}
	return keys
}()

func zobristKey(idx int, c Cell) uint64 {
	if c == White {
		return zobristKeys[idx*2+1]
	}
	return zobristKeys[idx*2]
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
