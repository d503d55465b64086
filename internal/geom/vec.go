package geom

// Vec is a 2D point or offset in screen space.
type Vec struct {
	X float64
	Y float64
}

// Add returns v translated by o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}
