package app

import (
	"fmt"

	"flashlight-portfolio/internal/domain"
)

// PointerTracker holds the last reported pointer coordinates for the
// flashlight overlay. It has no effect on gameplay.
type PointerTracker struct {
	pos domain.Position
}

// Move records a pointer-move event.
func (p *PointerTracker) Move(x, y float64) {
	p.pos = domain.Position{X: x, Y: y}
}

// Position returns the current coordinates.
func (p *PointerTracker) Position() domain.Position {
	return p.pos
}

// Spotlight renders the CSS background for the overlay centred on the pointer.
func (p *PointerTracker) Spotlight() string {
	return fmt.Sprintf(
		"radial-gradient(circle at %gpx %gpx, rgba(255, 255, 255, 0.4) 60px, rgba(0, 0, 0, 0.85) 150px, rgba(0, 0, 0, 1) 300px)",
		p.pos.X, p.pos.Y,
	)
}
