package game

// ValidateStep reports whether (r1, c1) is on the board and at most one row
// and one column away from (r0, c0). It knows nothing about occupancy.
func ValidateStep(r0, c0, r1, c1 int) bool {
	return Position{Row: r1, Column: c1}.InBounds() &&
		abs(r1-r0) <= 1 && abs(c1-c0) <= 1
}
