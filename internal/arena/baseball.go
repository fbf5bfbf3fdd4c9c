// internal/arena/baseball.go
//
// Batch self-play for the strikes-and-balls guesser.
// Responsibilities:
//   - Play N games against random secrets, each in its own session.
//   - Run games concurrently (errgroup) with per-game deterministic seeds.
//   - Summarise turns per game, the worst game, and inconsistent-history games.

package arena

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/jinga80/game-collection/internal/baseball"
	"github.com/jinga80/game-collection/internal/difficulty"
	"github.com/jinga80/game-collection/internal/session"
	"github.com/jinga80/game-collection/internal/store"
)

// BaseballConfig controls a baseball batch.
type BaseballConfig struct {
	Level    difficulty.Level
	Digits   int
	Games    int
	Seed     int64
	MaxTurns int // per game; 0 means 30

	Parallel int // concurrent games; 0 means GOMAXPROCS
	Workers  int // partition workers per guesser; 0 means the guesser default

	Cache *baseball.PlanCache // optional, shared by all games
	Store store.Store         // optional, receives every session
}

// BaseballGame is the result of one game.
type BaseballGame struct {
	SessionID    string        `json:"sessionId"`
	Secret       baseball.Code `json:"secret"`
	Turns        int           `json:"turns"`
	Solved       bool          `json:"solved"`
	Inconsistent bool          `json:"inconsistent"`
}

// BaseballReport summarises a batch.
type BaseballReport struct {
	Level        difficulty.Level `json:"level"`
	Digits       int              `json:"digits"`
	Games        []BaseballGame   `json:"games"`
	Average      float64          `json:"average"`
	Worst        int              `json:"worst"`
	Unsolved     int              `json:"unsolved"`
	Inconsistent int              `json:"inconsistent"`
}

// PlayBaseball plays cfg.Games games and reports how many guesses each took.
func PlayBaseball(ctx context.Context, cfg BaseballConfig) (BaseballReport, error) {
	if cfg.Games < 1 {
		return BaseballReport{}, fmt.Errorf("arena: games must be positive, got %d", cfg.Games)
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = 30
	}
	if cfg.Parallel <= 0 {
		cfg.Parallel = runtime.GOMAXPROCS(0)
	}

	// secrets come from one stream so the batch is reproducible for a seed
	secrets := make([]baseball.Code, cfg.Games)
	rng := rand.New(rand.NewSource(cfg.Seed))
	for i := range secrets {
		c, err := baseball.RandomSecret(rng, cfg.Digits)
		if err != nil {
			return BaseballReport{}, err
		}
		secrets[i] = c
	}

	games := make([]BaseballGame, cfg.Games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i := range games {
		g.Go(func() error {
			res, err := playBaseballGame(gctx, cfg, secrets[i], cfg.Seed+int64(i)+1)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			games[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BaseballReport{}, err
	}

	rep := BaseballReport{Level: cfg.Level, Digits: cfg.Digits, Games: games}
	total := 0
	for _, gm := range games {
		total += gm.Turns
		rep.Worst = max(rep.Worst, gm.Turns)
		if !gm.Solved {
			rep.Unsolved++
		}
		if gm.Inconsistent {
			rep.Inconsistent++
		}
	}
	rep.Average = float64(total) / float64(len(games))
	log.Info().
		Str("level", cfg.Level.String()).
		Int("digits", cfg.Digits).
		Int("games", len(games)).
		Float64("average", rep.Average).
		Int("worst", rep.Worst).
		Msg("baseball batch finished")
	return rep, nil
}

func playBaseballGame(ctx context.Context, cfg BaseballConfig, secret baseball.Code, seed int64) (BaseballGame, error) {
	opts := []baseball.Option{
		baseball.WithRand(rand.New(rand.NewSource(seed))),
		baseball.WithWorkers(cfg.Workers),
	}
	if cfg.Cache != nil {
		opts = append(opts, baseball.WithPlanCache(cfg.Cache))
	}
	s, err := session.NewBaseball(difficulty.For(cfg.Level), cfg.Digits, opts...)
	if err != nil {
		return BaseballGame{}, err
	}
	if cfg.Store != nil {
		if err := cfg.Store.Save(ctx, s); err != nil {
			return BaseballGame{}, err
		}
	}

	res := BaseballGame{SessionID: s.ID, Secret: secret}
	for !s.Finished() && s.Turns() < cfg.MaxTurns {
		guess, err := s.Guess(ctx)
		if err != nil {
			return res, err
		}
		if guess.Origin == baseball.OriginInconsistent {
			res.Inconsistent = true
		}
		if err := s.Report(guess.Code, baseball.Score(guess.Code, secret)); err != nil {
			return res, err
		}
	}
	res.Turns = s.Turns()
	res.Solved = s.Finished()
	return res, nil
}
