// internal/arena/omok.go
//
// Engine-versus-engine five-in-a-row.
// Responsibilities:
//   - Play one game between a black and a white engine inside a session.
//   - Bound each move with a deadline and the whole game with a move cap.
//   - Record every decision for the report.

package arena

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jinga80/game-collection/internal/difficulty"
	"github.com/jinga80/game-collection/internal/omok"
	"github.com/jinga80/game-collection/internal/session"
	"github.com/jinga80/game-collection/internal/store"
)

// OmokConfig controls a self-play game.
type OmokConfig struct {
	Black, White difficulty.Level
	Seed         int64

	NodeBudget    int           // per move; 0 means unlimited
	MoveTimeout   time.Duration // per move; 0 means none
	MaxMoves      int           // 0 means the whole board
	EvalCacheSize int
	Width         int

	Store store.Store // optional
}

// OmokMove is one played move.
type OmokMove struct {
	Player   omok.Cell     `json:"player"`
	Decision omok.Decision `json:"decision"`
}

// OmokReport is the outcome of a self-play game.
type OmokReport struct {
	SessionID string           `json:"sessionId"`
	Black     difficulty.Level `json:"black"`
	White     difficulty.Level `json:"white"`
	Winner    omok.Cell        `json:"winner"`
	Moves     []OmokMove       `json:"moves"`
	Truncated int              `json:"truncated"` // searches cut short by budget or deadline
	Board     omok.Board       `json:"-"`
	Last      omok.Move        `json:"last"`
}

// PlayOmok plays black against white until five in a row, a full board, or the move cap.
func PlayOmok(ctx context.Context, cfg OmokConfig) (OmokReport, error) {
	maxMoves := cfg.MaxMoves
	if maxMoves <= 0 || maxMoves > omok.Size*omok.Size {
		maxMoves = omok.Size * omok.Size
	}
	engine := func(level difficulty.Level, seed int64) *omok.Engine {
		opts := []omok.Option{
			omok.WithRand(rand.New(rand.NewSource(seed))),
			omok.WithNodeBudget(cfg.NodeBudget),
			omok.WithEvalCache(cfg.EvalCacheSize),
		}
		if cfg.Width > 0 {
			opts = append(opts, omok.WithWidth(cfg.Width))
		}
		return omok.NewEngine(difficulty.For(level), opts...)
	}
	s := session.NewOmok(engine(cfg.Black, cfg.Seed), engine(cfg.White, cfg.Seed+1))
	if cfg.Store != nil {
		if err := cfg.Store.Save(ctx, s); err != nil {
			return OmokReport{}, err
		}
	}

	rep := OmokReport{SessionID: s.ID, Black: cfg.Black, White: cfg.White}
	start := time.Now()
	for !s.Finished() && len(rep.Moves) < maxMoves {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		player := s.ToMove()
		d, err := engineMove(ctx, s, cfg.MoveTimeout)
		if err != nil {
			return rep, fmt.Errorf("move %d: %w", len(rep.Moves)+1, err)
		}
		if d.Reason == omok.ReasonBoardFull {
			break
		}
		if d.Truncated {
			rep.Truncated++
		}
		rep.Moves = append(rep.Moves, OmokMove{Player: player, Decision: d})
		rep.Last = d.Move
		log.Debug().
			Int("ply", len(rep.Moves)).
			Str("player", player.String()).
			Str("move", d.Move.String()).
			Str("reason", d.Reason.String()).
			Msg("omok move")
	}
	rep.Winner = s.Winner()
	rep.Board = s.Board()
	log.Info().
		Str("black", cfg.Black.String()).
		Str("white", cfg.White.String()).
		Str("winner", rep.Winner.String()).
		Int("moves", len(rep.Moves)).
		Int("truncated", rep.Truncated).
		Dur("took", time.Since(start)).
		Msg("omok game finished")
	return rep, nil
}

func engineMove(ctx context.Context, s *session.Session, timeout time.Duration) (omok.Decision, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.EngineMove(ctx)
}
