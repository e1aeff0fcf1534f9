package game

// Evaluator scores a board between -1 and 1 from the perspective of side p.
type Evaluator func(b *Board, p Pebble) float64

// EvaluateMaterial compares the pebbles each side still has on the board.
func EvaluateMaterial(b *Board, p Pebble) float64 {
	if !p.IsPlayer() {
		return 0
	}
	if b.IsOver() {
		if b.Winner() == p {
			return 1
		}
		return -1
	}
	return normalize(float64(b.stats[p].Pebbles), float64(b.stats[p.Opponent()].Pebbles))
}

// EvaluateThreats considers the captures each side could launch, in
// addition to material. Attacks are counted for both sides regardless of
// whose turn it is.
func EvaluateThreats(b *Board, p Pebble) float64 {
	if !p.IsPlayer() || b.IsOver() {
		return EvaluateMaterial(b, p)
	}
	material := EvaluateMaterial(b, p)
	threats := normalize(float64(b.countAttacks(p)), float64(b.countAttacks(p.Opponent())))
	return (material + threats) / 2
}

// countAttacks tallies the capturing attacks open to side p.
func (b *Board) countAttacks(p Pebble) int {
	n := 0
	for i, occupant := range b.cells {
		if occupant != p {
			continue
		}
		src := PositionOf(i)
		for _, d := range Directions {
			if !canLoop(src, d) {
				continue
			}
			// without a cut a feasible attack always ends on a capture
			if ok, err := CanAttack(b, src.Row, src.Column, d, nil); err == nil && ok {
				n++
			}
		}
	}
	return n
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
