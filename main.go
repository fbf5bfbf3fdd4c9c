// main.go
//
// Arena runner for the game engines.
// Responsibilities:
//   - Load configuration (.env + environment) and set the zerolog level.
//   - Play a batch of strikes-and-balls games and one five-in-a-row self-play game.
//   - Print summaries and the final board, coloured for the terminal.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jinga80/game-collection/internal/arena"
	"github.com/jinga80/game-collection/internal/baseball"
	"github.com/jinga80/game-collection/internal/config"
	"github.com/jinga80/game-collection/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cache *baseball.PlanCache
	if cfg.PlanCacheSize > 0 {
		if cache, err = baseball.NewPlanCache(cfg.PlanCacheSize); err != nil {
			log.Fatal().Err(err).Msg("plan cache")
		}
	}
	sessions := store.NewMemoryStore()
	out := termenv.NewOutput(os.Stdout)

	bb, err := arena.PlayBaseball(ctx, arena.BaseballConfig{
		Level:   cfg.Difficulty,
		Digits:  cfg.BaseballDigits,
		Games:   cfg.ArenaGames,
		Seed:    cfg.ArenaSeed,
		Workers: cfg.BaseballWorkers,
		Cache:   cache,
		Store:   sessions,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("baseball arena")
	}
	out.WriteString(out.String("baseball").Bold().String() + "  " + bb.Summary() + "\n")

	om, err := arena.PlayOmok(ctx, arena.OmokConfig{
		Black:         cfg.Difficulty,
		White:         cfg.WhiteDifficulty,
		Seed:          cfg.ArenaSeed,
		NodeBudget:    cfg.OmokNodeBudget,
		MoveTimeout:   cfg.OmokMoveTimeout,
		MaxMoves:      cfg.OmokMaxMoves,
		EvalCacheSize: cfg.OmokEvalCache,
		Store:         sessions,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("omok arena")
	}
	out.WriteString(out.String("omok").Bold().String() + "  " + om.Summary() + "\n\n")
	if err := arena.RenderBoard(out, out, om.Board, om.Last); err != nil {
		log.Fatal().Err(err).Msg("render board")
	}

	all, _ := sessions.List(ctx)
	log.Info().Int("sessions", len(all)).Msg("arena finished")
}
