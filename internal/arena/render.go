package arena

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jinga80/game-collection/internal/omok"
)

// RenderBoard writes b with coordinates, colouring stones for the terminal
// profile of out and highlighting last.
func RenderBoard(w io.Writer, out *termenv.Output, b omok.Board, last omok.Move) error {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < omok.Size; c++ {
		fmt.Fprintf(&sb, "%x ", c)
	}
	sb.WriteByte('\n')
	for r := 0; r < omok.Size; r++ {
		fmt.Fprintf(&sb, "%2x ", r)
		for c := 0; c < omok.Size; c++ {
			m := omok.Move{Row: r, Col: c}
			sb.WriteString(stone(out, b.At(m), m == last))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func stone(out *termenv.Output, c omok.Cell, last bool) string {
	var st termenv.Style
	switch c {
	case omok.Black:
		st = out.String("X").Foreground(out.Color("12"))
	case omok.White:
		st = out.String("O").Foreground(out.Color("9"))
	default:
		return out.String(".").Faint().String()
	}
	if last {
		st = st.Bold().Underline()
	}
	return st.String()
}

// Summary renders a one-line description of a baseball batch.
func (r BaseballReport) Summary() string {
	return fmt.Sprintf("%s, %d digits: %d games, avg %.2f guesses, worst %d, unsolved %d, inconsistent %d",
		r.Level, r.Digits, len(r.Games), r.Average, r.Worst, r.Unsolved, r.Inconsistent)
}

// Summary renders a one-line description of a self-play game.
func (r OmokReport) Summary() string {
	result := "no winner"
	if r.Winner != omok.Empty {
		result = r.Winner.String() + " wins"
	}
	return fmt.Sprintf("%s (black) vs %s (white): %s after %d moves, %d truncated searches",
		r.Black, r.White, result, len(r.Moves), r.Truncated)
}
