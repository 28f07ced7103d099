package sim

import "github.com/jakecoffman/cp"

// Bounds is the rectangular arena the entities move inside.
type Bounds struct {
	Width  float64
	Height float64
}

// Integrate advances the entity one Euler step (unit time-step) and
// reflects it off the arena walls. Each axis is handled independently:
// leaving [radius, bound-radius] negates that axis's velocity and
// clamps the position back into the interval. A corner hit reflects
// both axes on their own, which can look like a re-entry rather than a
// true diagonal bounce; that is accepted behavior, not a bug.
func Integrate(e *Entity, b Bounds, radius float64) {
	e.Position = e.Position.Add(e.Velocity)

	if e.Position.X < radius || e.Position.X > b.Width-radius {
		e.Velocity.X = -e.Velocity.X
		e.Position.X = cp.Clamp(e.Position.X, radius, b.Width-radius)
	}
	if e.Position.Y < radius || e.Position.Y > b.Height-radius {
		e.Velocity.Y = -e.Velocity.Y
		e.Position.Y = cp.Clamp(e.Position.Y, radius, b.Height-radius)
	}
}
