package engine

// fixpoint applies rule until a pass reports no change, returning
// whether any pass changed anything. Every technique shares this loop
// so a rule's "changed" signal is derived from its eliminations rather
// than tracked by hand.
func fixpoint(rule func() bool) bool {
	changed := false
	for rule() {
		changed = true
	}
	return changed
}
