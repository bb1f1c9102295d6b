package integration

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"flashlight-portfolio/internal/app"
	"flashlight-portfolio/internal/content"
	"flashlight-portfolio/internal/domain"
	pgloader "flashlight-portfolio/internal/infra/postgres"
	pgmigrations "flashlight-portfolio/internal/infra/postgres/migrations"
	infraredis "flashlight-portfolio/internal/infra/redis"
	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

func TestFlashlightGameEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	migrateDB(t, ctx, pgURL)

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	loader := pgloader.NewBankLoader(pool)

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	defer redisClient.Close()

	banks := infraredis.NewQuestionRepository(redisClient, loader, 5*time.Minute)
	sessions := infraredis.NewSessionStore(redisClient, 5*time.Minute)
	service := app.NewGameService(sessions, banks, app.ServiceConfig{BankID: content.DefaultBankID}, nil,
		app.WithRandom(func() app.Random { return rand.New(rand.NewSource(1)) }),
	)

	game, err := service.Mount(ctx)
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	defer service.Unmount(ctx, game.ID())

	if n, err := redisClient.Exists(ctx, "game:session:"+game.ID()).Result(); err != nil || n != 1 {
		t.Fatalf("expected liveness key, got n=%d err=%v", n, err)
	}

	snap, err := service.Start(ctx, game.ID(), domain.Viewport{Width: 1024, Height: 768})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if snap.TotalQuestions != len(content.DefaultBank().Questions) {
		t.Fatalf("expected seeded bank, got %d questions", snap.TotalQuestions)
	}

	bank := content.DefaultBank()
	for i, q := range bank.Questions {
		res, err := service.Submit(ctx, game.ID(), q.Correct)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if res.Outcome != domain.OutcomeCorrect || res.Score != i+1 {
			t.Fatalf("question %d: unexpected result %+v", i, res)
		}
	}

	final, err := service.Snapshot(ctx, game.ID())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if final.Phase != domain.PhaseCompleted || final.EndReason != domain.EndCleared || final.Score != len(bank.Questions) {
		t.Fatalf("expected cleared game, got %+v", final)
	}

	if n, _ := redisClient.Exists(ctx, "bank:"+content.DefaultBankID+":questions").Result(); n != 1 {
		t.Fatalf("expected bank cached in redis")
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "flash", "POSTGRES_PASSWORD": "flashpass", "POSTGRES_DB": "flashdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://flash:flashpass@%s:%s/flashdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

// migrateDB creates the schema; the seed migration inserts the default bank.
func migrateDB(t *testing.T, ctx context.Context, dsn string) {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
