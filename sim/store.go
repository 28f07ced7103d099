package sim

import "fmt"

// Store owns the canonical entity list plus a per-kind index over the
// same entities. Entities are appended in creation order and never
// removed; a kind being eliminated means its bucket is empty, not that
// anything was destroyed. The buckets always partition the canonical
// list.
type Store struct {
	entities []*Entity
	byKind   [KindCount][]*Entity
}

func NewStore() *Store {
	return &Store{}
}

// Add assigns the next id and inserts the entity into the canonical
// list and the bucket matching its kind.
func (s *Store) Add(e *Entity) {
	e.ID = len(s.entities) + 1
	s.entities = append(s.entities, e)
	s.byKind[e.Kind] = append(s.byKind[e.Kind], e)
}

// ChangeKind moves the entity from its current bucket to the bucket for
// to and updates the entity's field. Bucket order is preserved for the
// remaining entities.
func (s *Store) ChangeKind(e *Entity, to Kind) {
	if e.Kind == to {
		return
	}
	bucket := s.byKind[e.Kind]
	for i, other := range bucket {
		if other == e {
			s.byKind[e.Kind] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	e.Kind = to
	s.byKind[to] = append(s.byKind[to], e)
}

// CountOf returns the current population of one kind.
func (s *Store) CountOf(k Kind) int {
	return len(s.byKind[k])
}

// OfKind returns the bucket for one kind in insertion order. Callers
// must not mutate it.
func (s *Store) OfKind(k Kind) []*Entity {
	return s.byKind[k]
}

// Entities returns the canonical list in creation order.
func (s *Store) Entities() []*Entity {
	return s.entities
}

// Len returns the total live entity count.
func (s *Store) Len() int {
	return len(s.entities)
}

// Validate checks that the kind buckets partition the canonical list: a
// desynchronized index would corrupt collision results for the rest of
// the run, so callers should treat any error as fatal.
func (s *Store) Validate() error {
	total := 0
	for k := Kind(0); k < KindCount; k++ {
		for _, e := range s.byKind[k] {
			if e.Kind != k {
				return fmt.Errorf("sim: entity %d in %s bucket has kind %s", e.ID, k, e.Kind)
			}
		}
		total += len(s.byKind[k])
	}
	if total != len(s.entities) {
		return fmt.Errorf("sim: kind buckets hold %d entities, canonical list has %d", total, len(s.entities))
	}
	return nil
}
