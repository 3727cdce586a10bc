package contour

// Occupied is the occupancy predicate a trace runs against. The plane
// the predicate inspects is the caller's concern; out-of-range
// coordinates must simply report false.
type Occupied func(i, j int) bool

// Node is a 2D lattice coordinate in the traced plane. Nodes are
// immutable values with structural equality; stepping produces a new
// node rather than mutating in place.
type Node struct {
	I, J int
}

// Next returns the neighboring node one unit step away in direction d.
func (n Node) Next(d Direction) Node {
	return Node{I: n.I + d.StepI(), J: n.J + d.StepJ()}
}

// NextOccupied reports whether the neighbor in direction d is occupied
// according to occ.
func (n Node) NextOccupied(d Direction, occ Occupied) bool {
	return occ(n.I+d.StepI(), n.J+d.StepJ())
}
