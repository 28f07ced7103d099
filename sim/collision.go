package sim

// Resolve scans the bucket of the kind that beats e, in bucket order,
// and converts e to that kind on the first entity found strictly closer
// than twice the collision radius. Only the dominator bucket is
// scanned: same-kind and dominated-kind entities can never convert e,
// and skipping them keeps a tick at O(population x one bucket) instead
// of O(population^2). At most one conversion happens per call. Reports
// whether e was converted.
func Resolve(e *Entity, s *Store, radius float64) bool {
	threat := e.Kind.BeatenBy()
	limit := 2 * radius
	for _, d := range s.OfKind(threat) {
		if d.Position.DistanceSq(e.Position) < limit*limit {
			s.ChangeKind(e, threat)
			return true
		}
	}
	return false
}
