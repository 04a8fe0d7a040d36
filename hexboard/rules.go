package hexboard

// ValidMove reports whether (r, c) is in bounds and unoccupied.
func ValidMove(b *Board, r, c int) bool {
	return b.ValidCell(r, c) && b.Cell(r, c) == Empty
}

// PieRuleAvailable reports whether the pie (swap) rule may still be
// invoked, i.e. at most one ply has been played. This is a pure
// predicate consumed by the UI collaborator; the engine itself never
// mutates state through the pie rule, it just accepts a swap as an
// ordinary move.
func PieRuleAvailable(plyCount int, toMove Player) bool {
	return plyCount <= 1
}
