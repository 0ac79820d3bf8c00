package tile

// Tile is a single grid cell. It is a plain value and is never mutated after
// construction; resolving the start tile produces a new Tile.
type Tile struct {
	Position Position
	Shape    Shape
	IsStart  bool
}

// New builds a Tile; IsStart follows from the Start shape.
func New(pos Position, shape Shape) Tile {
	return Tile{Position: pos, Shape: shape, IsStart: shape == Start}
}

// WithShape returns a copy of t drawn with shape, keeping IsStart.
func (t Tile) WithShape(shape Shape) Tile {
	t.Shape = shape
	return t
}

// IsConnected reports whether t and other are orthogonal neighbors whose
// pipes open towards each other. Both sides must agree.
func (t Tile) IsConnected(other Tile) bool {
	d, ok := t.Position.DirectionTo(other.Position)
	if !ok {
		return false
	}
	return t.Shape.Ports().Has(d) && other.Shape.Ports().Has(d.Opposite())
}
