// internal/config/config.go
//
// Process configuration from the environment.
// Responsibilities:
//   - Load an optional .env file (godotenv) without overriding real env vars.
//   - Read every knob with a default, the way getEnv does for the server.
//   - Reject values that parse but make no sense (zero games, unknown difficulty).

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/jinga80/game-collection/internal/difficulty"
)

var ErrInvalid = errors.New("config: invalid value")

// Config is the full set of runtime settings.
type Config struct {
	LogLevel string

	Difficulty      difficulty.Level // baseball guesser and omok black
	WhiteDifficulty difficulty.Level // omok white

	BaseballDigits  int
	BaseballWorkers int
	PlanCacheSize   int

	ArenaGames int
	ArenaSeed  int64

	OmokNodeBudget  int
	OmokMoveTimeout time.Duration
	OmokMaxMoves    int
	OmokEvalCache   int
}

// Load reads .env (if present) and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() (Config, error) {
	var (
		c   Config
		err error
	)
	c.LogLevel = getEnv("LOG_LEVEL", "info")
	if c.Difficulty, err = difficulty.Parse(getEnv("DIFFICULTY", "normal")); err != nil {
		return c, fmt.Errorf("DIFFICULTY: %w", err)
	}
	if c.WhiteDifficulty, err = difficulty.Parse(getEnv("OMOK_WHITE_DIFFICULTY", c.Difficulty.String())); err != nil {
		return c, fmt.Errorf("OMOK_WHITE_DIFFICULTY: %w", err)
	}

	ints := []struct {
		key string
		def int
		min int
		dst *int
	}{
		{"BASEBALL_DIGITS", 3, 3, &c.BaseballDigits},
		{"BASEBALL_WORKERS", 0, 0, &c.BaseballWorkers},
		{"PLAN_CACHE_SIZE", 4096, 0, &c.PlanCacheSize},
		{"ARENA_GAMES", 20, 1, &c.ArenaGames},
		{"OMOK_NODE_BUDGET", 150000, 0, &c.OmokNodeBudget},
		{"OMOK_MAX_MOVES", 120, 1, &c.OmokMaxMoves},
		{"OMOK_EVAL_CACHE", 1 << 16, 0, &c.OmokEvalCache},
	}
	for _, f := range ints {
		if *f.dst, err = getInt(f.key, f.def, f.min); err != nil {
			return c, err
		}
	}
	if c.BaseballDigits > 5 {
		return c, fmt.Errorf("%w: BASEBALL_DIGITS=%d (3 to 5)", ErrInvalid, c.BaseballDigits)
	}

	seed, err := strconv.ParseInt(getEnv("ARENA_SEED", "0"), 10, 64)
	if err != nil {
		return c, fmt.Errorf("%w: ARENA_SEED: %v", ErrInvalid, err)
	}
	c.ArenaSeed = seed

	if c.OmokMoveTimeout, err = time.ParseDuration(getEnv("OMOK_MOVE_TIMEOUT", "5s")); err != nil || c.OmokMoveTimeout < 0 {
		return c, fmt.Errorf("%w: OMOK_MOVE_TIMEOUT=%q", ErrInvalid, os.Getenv("OMOK_MOVE_TIMEOUT"))
	}
	return c, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def, min int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < min {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalid, k, v)
	}
	return n, nil
}
