package blockfall

// Collides reports whether piece, shifted by (dx, dy), would leave the
// field through a side or the bottom, or overlap a settled block.
// The field has no ceiling: cells above row 0 are legal and never checked
// against the grid.
func Collides(p Piece, g *Grid, dx, dy int) bool {
	for r := range p.Shape.Rows() {
		for c := range p.Shape.Cols() {
			if !p.Shape.Filled(r, c) {
				continue
			}
			x := p.X + c + dx
			y := p.Y + r + dy
			if x < 0 || x >= g.Cols() || y >= g.Rows() {
				return true
			}
			if y >= 0 && g.Get(x, y) != Empty {
				return true
			}
		}
	}
	return false
}
