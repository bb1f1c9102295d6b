package app

import (
	"math/rand"
	"time"

	"flashlight-portfolio/internal/domain"
)

// Answer buttons are roughly this large; positions keep them on screen.
const (
	buttonWidth  = 100
	buttonHeight = 50
)

// Random is the subset of *rand.Rand the engine needs.
type Random interface {
	Shuffle(n int, swap func(i, j int))
	Float64() float64
}

// NewRandom returns a time-seeded source for production use.
func NewRandom() Random {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// shuffleOptions returns a uniformly random permutation of opts (Fisher-Yates).
func shuffleOptions(rnd Random, opts []string) []string {
	out := append([]string(nil), opts...)
	rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// placeOptions samples one on-screen position per option.
func placeOptions(rnd Random, n int, vp domain.Viewport) []domain.Position {
	maxX := vp.Width - buttonWidth
	if maxX < 0 {
		maxX = 0
	}
	maxY := vp.Height - buttonHeight
	if maxY < 0 {
		maxY = 0
	}

	out := make([]domain.Position, n)
	for i := range out {
		out[i] = domain.Position{
			X: rnd.Float64() * maxX,
			Y: rnd.Float64() * maxY,
		}
	}
	return out
}
