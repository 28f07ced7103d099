package sim

import "github.com/jakecoffman/cp"

// Entity is a single mobile participant in the arena. IDs are assigned
// by the store in creation order. Velocity magnitude is fixed at spawn
// time; only reflections flip its components, conversions never touch
// it. Kind must be changed through Store.ChangeKind so the per-kind
// index stays consistent.
type Entity struct {
	ID       int
	Position cp.Vector
	Velocity cp.Vector
	Kind     Kind
}
