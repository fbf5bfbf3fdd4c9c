// internal/session/session.go
//
// One game session: the engine state owned by a single game for its lifetime.
// Responsibilities:
//   - Baseball: own a Guesser, forward guesses and reported outcomes, finish on a solve.
//   - Omok: own the board and one engine per computer-played colour, apply moves,
//     detect wins and draws, track whose turn it is.
//
// State transitions:
//   - playing → won (solved / five in a row) or draw (omok board filled).
//   - Any move after the session is finished returns ErrFinished.
//
// Notes:
//   - Sessions are passed around explicitly; nothing here is global.
//   - A Session is not safe for concurrent use; the store hands out the same pointer.
//   - randomID() is a compact hex identifier for correlating sessions in logs.

package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jinga80/game-collection/internal/baseball"
	"github.com/jinga80/game-collection/internal/difficulty"
	"github.com/jinga80/game-collection/internal/omok"
)

var (
	ErrFinished  = errors.New("session: game finished")
	ErrWrongKind = errors.New("session: operation does not apply to this game")
	ErrNotEngine = errors.New("session: side to move has no engine")
	ErrNotHuman  = errors.New("session: side to move is played by an engine")
)

// Kind names the game a session plays.
type Kind string

const (
	KindBaseball Kind = "baseball"
	KindOmok     Kind = "omok"
)

// Session holds the state of a single game.
type Session struct {
	ID    string
	Kind  Kind
	Level difficulty.Level

	finished bool
	won      bool

	// baseball
	guesser *baseball.Guesser
	turns   int

	// omok
	engines [3]*omok.Engine // indexed by omok.Cell
	board   omok.Board
	toMove  omok.Cell
	moves   []omok.Move
	winner  omok.Cell
}

// NewBaseball starts a strikes-and-balls session in which the guesser deduces a
// digits-long secret held by the caller.
func NewBaseball(profile difficulty.Profile, digits int, opts ...baseball.Option) (*Session, error) {
	g := baseball.New(profile, opts...)
	if err := g.Initialize(digits); err != nil {
		return nil, err
	}
	s := &Session{ID: randomID(), Kind: KindBaseball, Level: profile.Level, guesser: g}
	log.Debug().Str("session", s.ID).Str("level", profile.Level.String()).Int("digits", digits).Msg("baseball session started")
	return s, nil
}

// NewOmok starts a five-in-a-row session. A nil engine means that colour is
// played through HumanMove. Black moves first.
func NewOmok(black, white *omok.Engine) *Session {
	s := &Session{ID: randomID(), Kind: KindOmok, toMove: omok.Black}
	s.engines[omok.Black] = black
	s.engines[omok.White] = white
	for _, e := range []*omok.Engine{white, black} {
		if e != nil {
			s.Level = e.Profile().Level
		}
	}
	log.Debug().Str("session", s.ID).Bool("blackEngine", black != nil).Bool("whiteEngine", white != nil).Msg("omok session started")
	return s
}

// Finished reports whether the game is over.
func (s *Session) Finished() bool { return s.finished }

// State is "playing", "won", "lost" or "draw". For baseball "won" means the guesser
// solved the code; for omok it means somebody made five.
func (s *Session) State() string {
	switch {
	case !s.finished:
		return "playing"
	case s.won:
		return "won"
	case s.Kind == KindOmok:
		return "draw"
	default:
		return "lost"
	}
}

// ---- baseball ----

// Guess asks the guesser for its next code.
func (s *Session) Guess(ctx context.Context) (baseball.Guess, error) {
	if s.Kind != KindBaseball {
		return baseball.Guess{}, ErrWrongKind
	}
	if s.finished {
		return baseball.Guess{}, ErrFinished
	}
	return s.guesser.NextGuess(ctx)
}

// Report feeds back the outcome of a guess. A full-strike outcome finishes the game.
func (s *Session) Report(guess baseball.Code, outcome baseball.Outcome) error {
	if s.Kind != KindBaseball {
		return ErrWrongKind
	}
	if s.finished {
		return ErrFinished
	}
	if err := s.guesser.RecordOutcome(guess, outcome); err != nil {
		return fmt.Errorf("report %s: %w", guess, err)
	}
	s.turns++
	if outcome.Solved(guess.Len()) {
		s.finished, s.won = true, true
		log.Debug().Str("session", s.ID).Int("turns", s.turns).Msg("baseball solved")
	}
	return nil
}

// Hint describes an outcome in the session's difficulty voice.
func (s *Session) Hint(guess baseball.Code, outcome baseball.Outcome) (string, error) {
	if s.Kind != KindBaseball {
		return "", ErrWrongKind
	}
	return s.guesser.Hint(guess, outcome), nil
}

// Statistics reports the guesser's progress.
func (s *Session) Statistics() (baseball.Statistics, error) {
	if s.Kind != KindBaseball {
		return baseball.Statistics{}, ErrWrongKind
	}
	return s.guesser.Statistics(), nil
}

// Turns is the number of reported outcomes.
func (s *Session) Turns() int { return s.turns }

// ---- omok ----

// EngineMove lets the engine owning the side to move pick and play a move.
func (s *Session) EngineMove(ctx context.Context) (omok.Decision, error) {
	if s.Kind != KindOmok {
		return omok.Decision{}, ErrWrongKind
	}
	if s.finished {
		return omok.Decision{}, ErrFinished
	}
	e := s.engines[s.toMove]
	if e == nil {
		return omok.Decision{}, ErrNotEngine
	}
	d, err := e.BestMove(ctx, s.board, s.toMove)
	if err != nil {
		return omok.Decision{}, fmt.Errorf("%s engine: %w", s.toMove, err)
	}
	if d.Reason == omok.ReasonBoardFull {
		s.finished = true
		return d, nil
	}
	if err := s.apply(d.Move); err != nil {
		return omok.Decision{}, fmt.Errorf("%s engine move %s: %w", s.toMove, d.Move, err)
	}
	return d, nil
}

// HumanMove plays m for the side to move, which must not be engine-controlled.
func (s *Session) HumanMove(m omok.Move) error {
	if s.Kind != KindOmok {
		return ErrWrongKind
	}
	if s.finished {
		return ErrFinished
	}
	if s.engines[s.toMove] != nil {
		return ErrNotHuman
	}
	return s.apply(m)
}

func (s *Session) apply(m omok.Move) error {
	mover := s.toMove
	if err := s.board.Place(m, mover); err != nil {
		return err
	}
	s.moves = append(s.moves, m)
	switch {
	case omok.IsWin(&s.board, m, mover):
		s.finished, s.won, s.winner = true, true, mover
		log.Debug().Str("session", s.ID).Str("winner", mover.String()).Int("moves", len(s.moves)).Msg("omok won")
	case s.board.Full():
		s.finished = true
	default:
		s.toMove = mover.Opponent()
	}
	return nil
}

// Analyze classifies a hypothetical move for the side to move.
func (s *Session) Analyze(m omok.Move) (omok.Category, error) {
	if s.Kind != KindOmok {
		return omok.Neutral, ErrWrongKind
	}
	return omok.AnalyzeMove(s.board, m, s.toMove)
}

// Board returns a snapshot of the omok board.
func (s *Session) Board() omok.Board { return s.board }

// ToMove is the colour whose turn it is.
func (s *Session) ToMove() omok.Cell { return s.toMove }

// Moves returns a copy of the moves played so far.
func (s *Session) Moves() []omok.Move { return append([]omok.Move(nil), s.moves...) }

// Winner is the colour that made five, or Empty.
func (s *Session) Winner() omok.Cell { return s.winner }

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
