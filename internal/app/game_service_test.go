package app_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"flashlight-portfolio/internal/app"
	"flashlight-portfolio/internal/domain"
	"flashlight-portfolio/internal/infra/memory"
)

func TestServiceMountStartSubmit(t *testing.T) {
	sched := &fakeScheduler{}
	sessions := memory.NewSessionStore()
	svc := newTestService(sessions, sched, testBank(2))
	ctx := context.Background()

	game, err := svc.Mount(ctx)
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if game.ID() != "game-1" {
		t.Fatalf("expected generated id, got %q", game.ID())
	}
	if _, ok := sessions.Get("game-1"); !ok {
		t.Fatalf("expected session stored")
	}

	snap, err := svc.Start(ctx, "game-1", domain.Viewport{Width: 800, Height: 600})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if snap.Phase != domain.PhasePlaying || snap.TotalQuestions != 2 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	res, err := svc.Submit(ctx, "game-1", "b1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Outcome != domain.OutcomeCorrect || res.Score != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}

	got, err := svc.Snapshot(ctx, "game-1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if got.QuestionIndex != 1 {
		t.Fatalf("expected second question, got %d", got.QuestionIndex)
	}
}

func TestServiceUnknownGame(t *testing.T) {
	svc := newTestService(memory.NewSessionStore(), &fakeScheduler{}, testBank(1))
	ctx := context.Background()

	if _, err := svc.Start(ctx, "nope", domain.Viewport{}); !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("start: expected not found, got %v", err)
	}
	if _, err := svc.Submit(ctx, "nope", "x"); !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("submit: expected not found, got %v", err)
	}
	if _, err := svc.Snapshot(ctx, "nope"); !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("snapshot: expected not found, got %v", err)
	}
	if _, _, err := svc.Subscribe(ctx, "nope"); !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("subscribe: expected not found, got %v", err)
	}
}

func TestServiceMountMissingBank(t *testing.T) {
	loader := memory.NewStaticBankLoader(nil)
	repo := memory.NewQuestionRepository(loader, 0)
	svc := app.NewGameService(memory.NewSessionStore(), repo, app.ServiceConfig{BankID: "missing"}, nil)

	if _, err := svc.Mount(context.Background()); !errors.Is(err, domain.ErrBankNotFound) {
		t.Fatalf("expected bank not found, got %v", err)
	}
}

func TestServiceMountInvalidBank(t *testing.T) {
	bank := testBank(1)
	bank.Questions[0].Correct = "not-an-option"
	sessions := memory.NewSessionStore()
	svc := newTestService(sessions, &fakeScheduler{}, bank)

	if _, err := svc.Mount(context.Background()); !errors.Is(err, domain.ErrInvalidBank) {
		t.Fatalf("expected invalid bank, got %v", err)
	}
	if sessions.Len() != 0 {
		t.Fatalf("invalid bank must not create a session")
	}
}

func TestServiceUnmountClosesGame(t *testing.T) {
	sched := &fakeScheduler{}
	sessions := memory.NewSessionStore()
	svc := newTestService(sessions, sched, testBank(1))
	ctx := context.Background()

	game, err := svc.Mount(ctx)
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if _, err := svc.Start(ctx, game.ID(), domain.Viewport{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	events, _, err := svc.Subscribe(ctx, game.ID())
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	svc.Unmount(ctx, game.ID())

	if sessions.Len() != 0 {
		t.Fatalf("expected session removed")
	}
	if sched.liveTickers() != 0 {
		t.Fatalf("expected ticker stopped on unmount")
	}
	for range events {
	}
	// unmounting twice is harmless
	svc.Unmount(ctx, game.ID())
}

func newTestService(sessions app.SessionRepository, sched app.Scheduler, bank domain.QuestionBank) *app.GameService {
	loader := memory.NewStaticBankLoader(map[string]domain.QuestionBank{bank.ID: bank})
	ids := 0
	return app.NewGameService(
		sessions,
		memory.NewQuestionRepository(loader, 0),
		app.ServiceConfig{BankID: bank.ID},
		nil,
		app.WithScheduler(sched),
		app.WithRandom(func() app.Random { return rand.New(rand.NewSource(7)) }),
		app.WithIDGenerator(func() string {
			ids++
			return fmt.Sprintf("game-%d", ids)
		}),
	)
}
