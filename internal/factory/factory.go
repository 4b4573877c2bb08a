package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/tobyheywood/wordguess/internal/dependencies/clock"
	"github.com/tobyheywood/wordguess/internal/dependencies/random"
	"github.com/tobyheywood/wordguess/internal/services/auth"
	"github.com/tobyheywood/wordguess/internal/services/game"
	"github.com/tobyheywood/wordguess/internal/services/quota"
	"github.com/tobyheywood/wordguess/internal/services/report"
	"github.com/tobyheywood/wordguess/internal/services/words"
	"github.com/tobyheywood/wordguess/internal/storage"
	"github.com/tobyheywood/wordguess/internal/storage/memory"
	redisstorage "github.com/tobyheywood/wordguess/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService    *auth.Service
	QuotaService   *quota.Service
	WordService    *words.Service
	GameController *game.Controller
	ReportService  *report.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// QuotaMaxPerDay is the daily session quota (optional)
	// If zero, defaults to quota.DefaultMaxPerDay
	QuotaMaxPerDay int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.CredentialDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, cfg.QuotaMaxPerDay, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	authCfg auth.Config,
	quotaMax int,
	logger *slog.Logger,
) *App {
	authService := auth.New(store, clk, rnd, authCfg, logger)
	quotaService := quota.New(store, clk, authService, quotaMax, logger)
	wordService := words.New(store, clk, rnd, logger)
	gameController := game.NewController(store, quotaService, wordService, clk, rnd, logger)
	reportService := report.New(store)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		AuthService:    authService,
		QuotaService:   quotaService,
		WordService:    wordService,
		GameController: gameController,
		ReportService:  reportService,
	}
}
