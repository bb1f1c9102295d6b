package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flashlight-portfolio/internal/app"
	"flashlight-portfolio/internal/config"
	"flashlight-portfolio/internal/content"
	"flashlight-portfolio/internal/domain"
	"flashlight-portfolio/internal/infra/memory"
	pgloader "flashlight-portfolio/internal/infra/postgres"
	infraredis "flashlight-portfolio/internal/infra/redis"
	"flashlight-portfolio/internal/infra/sqlite"
	"flashlight-portfolio/internal/logger"
	transport "flashlight-portfolio/internal/transport/http"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the portfolio server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func newLogger(cfg config.Config) (*zap.Logger, func(), error) {
	return logger.New(logger.Config{Level: cfg.Log.Level, File: cfg.Log.File})
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg, log); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	loader, closeLoader, err := newBankLoader(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeLoader()

	bankTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	var banks app.QuestionRepository
	if redisClient != nil {
		banks = infraredis.NewQuestionRepository(redisClient, loader, bankTTL)
	} else {
		banks = memory.NewQuestionRepository(loader, bankTTL)
	}

	var store app.SessionRepository
	if redisClient != nil {
		store = infraredis.NewSessionStore(redisClient, redisTTL)
	} else {
		store = memory.NewSessionStore()
	}

	bankID := cfg.Quiz.BankID
	if bankID == "" {
		bankID = content.DefaultBankID
	}
	service := app.NewGameService(store, banks, app.ServiceConfig{
		BankID: bankID,
		Game: app.GameConfig{
			QuestionSeconds:  cfg.Quiz.QuestionSeconds,
			GameOverDelay:    config.TTLDuration(cfg.Quiz.GameOverDelay, 3*time.Second),
			OverlayDelay:     config.TTLDuration(cfg.Quiz.OverlayDelay, 900*time.Millisecond),
			OverlayDuration:  config.TTLDuration(cfg.Quiz.OverlayDuration, 3*time.Second),
			FallbackViewport: domain.Viewport{Width: cfg.Quiz.Viewport.Width, Height: cfg.Quiz.Viewport.Height},
		},
	}, log)

	gin.SetMode(gin.ReleaseMode)
	router := transport.NewRouter(
		transport.NewSiteHandler(nil),
		transport.NewWSHandler(service, log),
		cfg.Server.StaticDir,
		log,
	)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("starting portfolio server", zap.String("port", finalPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutting down server")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newBankLoader picks the bank source: Postgres, then SQLite, then a YAML
// file, then the built-in bank.
func newBankLoader(ctx context.Context, cfg config.Config, log *zap.Logger) (memory.BankLoader, func(), error) {
	switch {
	case cfg.Postgres.URL != "":
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("question banks from postgres")
		return pgloader.NewBankLoader(pool), pool.Close, nil
	case cfg.SQLite.DSN != "":
		db, err := sqlite.Open(ctx, cfg.SQLite.DSN)
		if err != nil {
			return nil, nil, err
		}
		loader := sqlite.NewBankLoader(db)
		if err := loader.Seed(ctx, content.DefaultBank()); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("question banks from sqlite", zap.String("dsn", cfg.SQLite.DSN))
		return loader, func() { _ = db.Close() }, nil
	case cfg.Quiz.BankFile != "":
		log.Info("question banks from file", zap.String("path", cfg.Quiz.BankFile))
		return memory.NewFileBankLoader(cfg.Quiz.BankFile), func() {}, nil
	default:
		return memory.NewStaticBankLoader(content.Banks()), func() {}, nil
	}
}

