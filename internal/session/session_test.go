package session

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinga80/game-collection/internal/baseball"
	"github.com/jinga80/game-collection/internal/difficulty"
	"github.com/jinga80/game-collection/internal/omok"
)

func TestBaseballSessionSolves(t *testing.T) {
	ctx := context.Background()
	s, err := NewBaseball(difficulty.For(difficulty.Expert), 3, baseball.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)
	assert.Len(t, s.ID, 16)
	assert.Equal(t, KindBaseball, s.Kind)
	assert.Equal(t, "playing", s.State())

	secret := baseball.MustParseCode("582")
	for !s.Finished() {
		g, err := s.Guess(ctx)
		require.NoError(t, err)
		require.NoError(t, s.Report(g.Code, baseball.Score(g.Code, secret)))
		require.Less(t, s.Turns(), 12)
	}
	assert.Equal(t, "won", s.State())

	_, err = s.Guess(ctx)
	assert.ErrorIs(t, err, ErrFinished)
	assert.ErrorIs(t, s.Report(secret, baseball.Outcome{Strikes: 3}), ErrFinished)

	st, err := s.Statistics()
	require.NoError(t, err)
	assert.Equal(t, s.Turns(), st.TotalGuesses)

	_, err = s.EngineMove(ctx)
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestBaseballSessionRejectsBadInput(t *testing.T) {
	_, err := NewBaseball(difficulty.For(difficulty.Easy), 7)
	assert.ErrorIs(t, err, baseball.ErrDigitCount)

	s, err := NewBaseball(difficulty.For(difficulty.Easy), 4)
	require.NoError(t, err)
	err = s.Report(baseball.MustParseCode("123"), baseball.Outcome{})
	assert.ErrorIs(t, err, baseball.ErrCodeLength)
	assert.Zero(t, s.Turns())

	hint, err := s.Hint(baseball.MustParseCode("1234"), baseball.Outcome{Balls: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, hint)
}

func TestOmokHumanVersusHuman(t *testing.T) {
	s := NewOmok(nil, nil)
	assert.Equal(t, omok.Black, s.ToMove())

	// black builds a row on 7, white answers on row 9
	for i := 0; i < 4; i++ {
		require.NoError(t, s.HumanMove(omok.Move{Row: 7, Col: 3 + i}))
		require.NoError(t, s.HumanMove(omok.Move{Row: 9, Col: 3 + i}))
	}
	assert.ErrorIs(t, s.HumanMove(omok.Move{Row: 7, Col: 3}), omok.ErrOccupied)
	assert.Equal(t, omok.Black, s.ToMove(), "failed move keeps the turn")

	cat, err := s.Analyze(omok.Move{Row: 7, Col: 7})
	require.NoError(t, err)
	assert.Equal(t, omok.ImmediateWin, cat)

	require.NoError(t, s.HumanMove(omok.Move{Row: 7, Col: 7}))
	assert.True(t, s.Finished())
	assert.Equal(t, omok.Black, s.Winner())
	assert.Equal(t, "won", s.State())
	assert.Len(t, s.Moves(), 9)
	assert.ErrorIs(t, s.HumanMove(omok.Move{Row: 0, Col: 0}), ErrFinished)

	_, err = s.EngineMove(context.Background())
	assert.ErrorIs(t, err, ErrFinished)
}

func TestOmokEngineTurns(t *testing.T) {
	ctx := context.Background()
	engine := omok.NewEngine(difficulty.For(difficulty.Normal),
		omok.WithRand(rand.New(rand.NewSource(9))), omok.WithNodeBudget(5000))
	s := NewOmok(nil, engine)
	assert.Equal(t, difficulty.Normal, s.Level)

	_, err := s.EngineMove(ctx)
	assert.ErrorIs(t, err, ErrNotEngine)
	require.NoError(t, s.HumanMove(omok.Center))

	assert.ErrorIs(t, s.HumanMove(omok.Move{Row: 0, Col: 0}), ErrNotHuman)
	d, err := s.EngineMove(ctx)
	require.NoError(t, err)
	board := s.Board()
	assert.Equal(t, omok.White, board.At(d.Move))
	assert.Equal(t, omok.Black, s.ToMove())
	assert.Equal(t, []omok.Move{omok.Center, d.Move}, s.Moves())

	_, err = s.Guess(ctx)
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestOmokEngineFinishesGame(t *testing.T) {
	ctx := context.Background()
	black := omok.NewEngine(difficulty.For(difficulty.Expert),
		omok.WithRand(rand.New(rand.NewSource(1))), omok.WithWidth(6))
	s := NewOmok(black, nil)

	// white scatters stones two apart along the edges and never threatens
	var far []omok.Move
	for i := 0; i < omok.Size; i += 2 {
		far = append(far, omok.Move{Row: 0, Col: i}, omok.Move{Row: omok.Size - 1, Col: i})
	}
	for i := 2; i < omok.Size-2; i += 2 {
		far = append(far, omok.Move{Row: i, Col: 0}, omok.Move{Row: i, Col: omok.Size - 1})
	}
	next := 0
	for !s.Finished() {
		_, err := s.EngineMove(ctx)
		require.NoError(t, err)
		if s.Finished() {
			break
		}
		board := s.Board()
		for next < len(far) && !board.IsEmpty(far[next]) {
			next++
		}
		require.Less(t, next, len(far), "black did not win in time")
		require.NoError(t, s.HumanMove(far[next]))
	}
	assert.Equal(t, omok.Black, s.Winner())
}
