package omok

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinga80/game-collection/internal/difficulty"
)

// fixedRand always returns the same draw.
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Intn(n int) int    { return r.i % n }
func (r fixedRand) Float64() float64 { return r.f }

func newEngine(level difficulty.Level, opts ...Option) *Engine {
	opts = append([]Option{WithRand(rand.New(rand.NewSource(1)))}, opts...)
	return NewEngine(difficulty.For(level), opts...)
}

func TestBestMoveTakesWin(t *testing.T) {
	var b Board
	line(t, &b, Black, 7, 3, 0, 1, 4)
	require.NoError(t, b.Place(Move{Row: 2, Col: 2}, White))

	d, err := newEngine(difficulty.Expert).BestMove(context.Background(), b, Black)
	require.NoError(t, err)
	assert.Equal(t, ReasonWin, d.Reason)
	assert.Equal(t, Move{Row: 7, Col: 2}, d.Move, "first winning cell in scan order")

	require.NoError(t, b.Place(d.Move, Black))
	assert.True(t, IsWin(&b, d.Move, Black))
}

func TestBestMoveDefendsBeforeWinning(t *testing.T) {
	var b Board
	line(t, &b, Black, 7, 3, 0, 1, 4)
	line(t, &b, White, 2, 3, 0, 1, 4)
	require.NoError(t, b.Place(Move{Row: 2, Col: 2}, Black))

	d, err := newEngine(difficulty.Expert).BestMove(context.Background(), b, Black)
	require.NoError(t, err)
	assert.Equal(t, ReasonDefend, d.Reason)
	assert.Equal(t, Move{Row: 2, Col: 7}, d.Move)
}

func TestBestMoveDefends(t *testing.T) {
	var b Board
	line(t, &b, White, 3, 3, 0, 1, 4)
	require.NoError(t, b.Place(Move{Row: 3, Col: 2}, Black))
	require.NoError(t, b.Place(Move{Row: 9, Col: 9}, Black))

	d, err := newEngine(difficulty.Expert).BestMove(context.Background(), b, Black)
	require.NoError(t, err)
	assert.Equal(t, ReasonDefend, d.Reason)
	assert.Equal(t, Move{Row: 3, Col: 7}, d.Move)
}

func TestBestMoveDefendsFirstCellInScanOrder(t *testing.T) {
	var b Board
	line(t, &b, White, 7, 5, 0, 1, 4)
	require.NoError(t, b.Place(Move{Row: 7, Col: 10}, Black))
	require.NoError(t, b.Place(Move{Row: 7, Col: 11}, Black))

	d, err := newEngine(difficulty.Expert).BestMove(context.Background(), b, Black)
	require.NoError(t, err)
	assert.Equal(t, ReasonDefend, d.Reason)
	assert.Equal(t, Move{Row: 7, Col: 4}, d.Move)
}

func TestBestMoveBlocksOpenThree(t *testing.T) {
	var b Board
	line(t, &b, White, 7, 5, 0, 1, 3)
	require.NoError(t, b.Place(Move{Row: 9, Col: 9}, Black))
	require.NoError(t, b.Place(Move{Row: 10, Col: 3}, Black))

	d, err := newEngine(difficulty.Expert).BestMove(context.Background(), b, Black)
	require.NoError(t, err)
	assert.Equal(t, ReasonBlockThree, d.Reason)
	assert.Contains(t, []Move{{Row: 7, Col: 4}, {Row: 7, Col: 8}}, d.Move)
}

func TestSearchBlocksOpenThreeWithoutThreatScan(t *testing.T) {
	var b Board
	line(t, &b, White, 7, 5, 0, 1, 3)
	require.NoError(t, b.Place(Move{Row: 9, Col: 9}, Black))
	require.NoError(t, b.Place(Move{Row: 10, Col: 3}, Black))

	e := newEngine(difficulty.Expert, WithThreatScan(false))
	d, err := e.BestMove(context.Background(), b, Black)
	require.NoError(t, err)
	assert.Equal(t, ReasonSearch, d.Reason)
	assert.Contains(t, []Move{{Row: 7, Col: 4}, {Row: 7, Col: 8}}, d.Move)

	require.NoError(t, b.Place(d.Move, Black))
	assert.Empty(t, openFourCells(&b, White), "white has no open four left")
}

func TestBestMoveMakesOpenFour(t *testing.T) {
	var b Board
	line(t, &b, Black, 7, 5, 0, 1, 3)
	line(t, &b, White, 2, 2, 1, 0, 2)

	d, err := newEngine(difficulty.Expert).BestMove(context.Background(), b, Black)
	require.NoError(t, err)
	assert.Equal(t, ReasonOpenFour, d.Reason)
	assert.Contains(t, []Move{{Row: 7, Col: 4}, {Row: 7, Col: 8}}, d.Move)
}

func TestBestMoveLeavesBoardUntouched(t *testing.T) {
	var b Board
	require.NoError(t, b.Place(Center, Black))
	require.NoError(t, b.Place(Move{Row: 7, Col: 8}, White))
	require.NoError(t, b.Place(Move{Row: 8, Col: 8}, Black))
	require.NoError(t, b.Place(Move{Row: 6, Col: 6}, White))
	before := b

	for _, level := range difficulty.Levels() {
		e := newEngine(level, WithRand(fixedRand{f: 0.99}), WithEvalCache(1024))
		d, err := e.BestMove(context.Background(), b, White)
		require.NoError(t, err)
		assert.Equal(t, before, b, level.String())
		assert.True(t, b.IsEmpty(d.Move), "%s chose occupied %s", level, d.Move)
		assert.Equal(t, ReasonSearch, d.Reason, level.String())
		assert.Equal(t, difficulty.For(level).SearchDepth, d.Depth)
		assert.Positive(t, d.Nodes)
	}
}

func TestBestMoveFullBoard(t *testing.T) {
	var b Board
	for i := range b.cells {
		c := Black
		if (i/Size+i%Size/2)%2 == 0 {
			c = White
		}
		b.set(moveAt(i), c)
	}
	require.True(t, b.Full())

	d, err := newEngine(difficulty.Expert).BestMove(context.Background(), b, Black)
	require.NoError(t, err)
	assert.Equal(t, ReasonBoardFull, d.Reason)
	assert.Equal(t, Center, d.Move)
}

func TestBestMoveEmptyBoardPlaysCentre(t *testing.T) {
	d, err := newEngine(difficulty.Expert).BestMove(context.Background(), Board{}, Black)
	require.NoError(t, err)
	assert.Equal(t, Center, d.Move)
	assert.Equal(t, ReasonSearch, d.Reason)
}

func TestRandomBranchStaysCentral(t *testing.T) {
	e := newEngine(difficulty.Easy, WithRand(fixedRand{f: 0, i: 7}))
	var b Board
	require.NoError(t, b.Place(Center, White))

	d, err := e.BestMove(context.Background(), b, Black)
	require.NoError(t, err)
	assert.Equal(t, ReasonRandom, d.Reason)
	assert.True(t, inCentre(d.Move))
	assert.True(t, b.IsEmpty(d.Move))
}

func TestBestMoveRejectsBadPlayer(t *testing.T) {
	_, err := newEngine(difficulty.Normal).BestMove(context.Background(), Board{}, Empty)
	assert.ErrorIs(t, err, ErrInvalidPlayer)
}

func TestSearchBudgetFallsBackToStrategic(t *testing.T) {
	var b Board
	require.NoError(t, b.Place(Center, Black))
	require.NoError(t, b.Place(Move{Row: 8, Col: 6}, White))

	e := newEngine(difficulty.Expert, WithNodeBudget(1))
	d, err := e.BestMove(context.Background(), b, Black)
	require.NoError(t, err)
	assert.Equal(t, ReasonStrategic, d.Reason)
	assert.True(t, d.Truncated)
	assert.True(t, b.IsEmpty(d.Move))
	assert.True(t, inCentre(d.Move))
}

func TestSearchHonoursCancellation(t *testing.T) {
	var b Board
	line(t, &b, Black, 6, 6, 1, 1, 2)
	line(t, &b, White, 6, 8, 1, 0, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := newEngine(difficulty.Expert, WithNodeBudget(0))
	d, err := e.BestMove(ctx, b, Black)
	require.NoError(t, err)
	assert.True(t, d.Truncated)
	assert.LessOrEqual(t, d.Nodes, ctxCheckInterval)
	assert.True(t, b.IsEmpty(d.Move))
}

func TestSearcherFindsWinInTree(t *testing.T) {
	var b Board
	line(t, &b, White, 4, 4, 1, 1, 4)
	s := newSearcher(context.Background(), b, DefaultWidth, 0, nil)
	res := s.run(White, 3)
	require.True(t, res.found)
	assert.GreaterOrEqual(t, res.score, winScore)
	assert.Contains(t, []Move{{Row: 3, Col: 3}, {Row: 8, Col: 8}}, res.move)
	assert.Equal(t, b, s.board, "scratch board restored")
}

func TestCandidates(t *testing.T) {
	assert.Equal(t, []Move{Center}, candidates(&Board{}, Black, DefaultWidth))

	var b Board
	require.NoError(t, b.Place(Move{Row: 0, Col: 0}, Black))
	all := candidates(&b, White, 0)
	assert.Len(t, all, 8, "3x3 corner neighbourhood minus the stone")
	for _, m := range all {
		assert.LessOrEqual(t, m.Row, 2)
		assert.LessOrEqual(t, m.Col, 2)
	}
	assert.Len(t, candidates(&b, White, 3), 3)
}

func TestAnalyzeMove(t *testing.T) {
	build := func(c Cell, row, col, n int) Board {
		var b Board
		line(t, &b, c, row, col, 0, 1, n)
		return b
	}
	cases := []struct {
		name  string
		board Board
		move  Move
		want  Category
	}{
		{"empty", Board{}, Center, Neutral},
		{"five", build(Black, 7, 3, 4), Move{Row: 7, Col: 7}, ImmediateWin},
		{"open four", build(Black, 7, 3, 3), Move{Row: 7, Col: 6}, ImmediateWin},
		{"open three", build(Black, 7, 5, 2), Move{Row: 7, Col: 7}, StrongAttack},
		{"block four", build(White, 7, 3, 3), Move{Row: 7, Col: 6}, CriticalDefense},
		{"open two", build(Black, 7, 7, 1), Move{Row: 7, Col: 8}, ModerateAttack},
		{"block two", build(White, 7, 7, 1), Move{Row: 7, Col: 8}, Defensive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.board
			got, err := AnalyzeMove(tc.board, tc.move, Black)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, got.String())
			assert.Equal(t, before, tc.board)
			assert.NotEmpty(t, got.Describe(Black))
		})
	}

	b := build(Black, 7, 7, 1)
	_, err := AnalyzeMove(b, Move{Row: 7, Col: 7}, White)
	assert.ErrorIs(t, err, ErrOccupied)
	_, err = AnalyzeMove(b, Move{Row: 15, Col: 0}, White)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = newEngine(difficulty.Easy).AnalyzeMove(b, Center, Empty)
	assert.ErrorIs(t, err, ErrInvalidPlayer)
}

func TestDifficultyInfo(t *testing.T) {
	for _, level := range difficulty.Levels() {
		info := newEngine(level).DifficultyInfo()
		p := difficulty.For(level)
		assert.Equal(t, p.SearchDepth, info.SearchDepth)
		assert.Equal(t, p.Description, info.Description)
		assert.NotEmpty(t, info.Strategy)
	}
	assert.Equal(t, "block-three", ReasonBlockThree.String())
	assert.Equal(t, "immediate win", ImmediateWin.String())
}
