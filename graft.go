package graft

// Vec2 is a 2D vector used for positions, scale factors, and offsets
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Vec2Zero is the zero vector (default position).
var Vec2Zero = Vec2{0, 0}

// Vec2One is the unit-scale vector (default scale).
var Vec2One = Vec2{1, 1}
