package app

import (
	"math/rand"
	"testing"
	"time"

	"flashlight-portfolio/internal/domain"
)

func TestPlaceOptionsStaysOnScreen(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	vp := domain.Viewport{Width: 320, Height: 240}
	for i := 0; i < 200; i++ {
		for _, p := range placeOptions(rnd, 4, vp) {
			if p.X < 0 || p.X >= vp.Width-buttonWidth || p.Y < 0 || p.Y >= vp.Height-buttonHeight {
				t.Fatalf("position %+v outside %+v", p, vp)
			}
		}
	}
}

func TestPlaceOptionsTinyViewport(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for _, p := range placeOptions(rnd, 4, domain.Viewport{Width: 50, Height: 20}) {
		if p.X != 0 || p.Y != 0 {
			t.Fatalf("expected positions pinned to origin, got %+v", p)
		}
	}
}

func TestShuffleOptionsDoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c", "d"}
	out := shuffleOptions(rand.New(rand.NewSource(9)), in)
	if in[0] != "a" || in[3] != "d" {
		t.Fatalf("input mutated: %v", in)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d options, got %d", len(in), len(out))
	}
}

func TestPointerTrackerSpotlight(t *testing.T) {
	var p PointerTracker
	if p.Position() != (domain.Position{}) {
		t.Fatalf("expected origin before any move")
	}
	p.Move(120.5, 80)
	if p.Position() != (domain.Position{X: 120.5, Y: 80}) {
		t.Fatalf("unexpected position %+v", p.Position())
	}
	want := "radial-gradient(circle at 120.5px 80px, rgba(255, 255, 255, 0.4) 60px, rgba(0, 0, 0, 0.85) 150px, rgba(0, 0, 0, 1) 300px)"
	if got := p.Spotlight(); got != want {
		t.Fatalf("spotlight:\n got %s\nwant %s", got, want)
	}
}

func TestWrongAnswerRelayoutUsesClientViewport(t *testing.T) {
	bank := domain.QuestionBank{ID: "t", Questions: []domain.Question{
		{Prompt: "Q1", Correct: "b1", Options: []string{"a1", "b1", "c1", "d1"}},
		{Prompt: "Q2", Correct: "b2", Options: []string{"a2", "b2", "c2", "d2"}},
	}}
	game := NewGame("g1", bank, GameConfig{}, idleScheduler{}, rand.New(rand.NewSource(5)))
	vp := domain.Viewport{Width: 320, Height: 240}

	if _, err := game.Start(vp); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := game.Submit("b1"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := game.Submit("a2"); err != nil {
		t.Fatalf("submit wrong: %v", err)
	}

	game.mu.Lock()
	defer game.mu.Unlock()
	if game.index != 0 || len(game.positions) != 4 {
		t.Fatalf("expected first question re-laid out, index %d positions %d", game.index, len(game.positions))
	}
	if game.viewport != vp {
		t.Fatalf("viewport changed to %+v", game.viewport)
	}
	for _, p := range game.positions {
		if p.X > vp.Width-buttonWidth || p.Y > vp.Height-buttonHeight {
			t.Fatalf("position %+v outside %+v", p, vp)
		}
	}
}

type idleScheduler struct{}

func (idleScheduler) Every(time.Duration, func()) func() { return func() {} }
func (idleScheduler) After(time.Duration, func()) func() { return func() {} }
