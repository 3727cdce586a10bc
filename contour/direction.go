package contour

// Direction is one of the eight compass octants, stored as an index
// into a fixed table of unit offsets. Directions are plain values:
// CCW and CW return rotated copies rather than mutating in place.
type Direction int

// The eight octants in cyclic order. Successive constants are 45°
// apart in the counter-clockwise sense.
const (
	E Direction = iota
	NE
	N
	NW
	W
	SW
	S
	SE
)

const octants = 8

var (
	dirNames = [octants]string{"E", "NE", "N", "NW", "W", "SW", "S", "SE"}
	dirI     = [octants]int{1, 1, 0, -1, -1, -1, 0, 1}
	dirJ     = [octants]int{0, 1, 1, 1, 0, -1, -1, -1}
)

// CCW returns the direction rotated counter-clockwise by one octant
// (45°). Eight applications return to the start.
func (d Direction) CCW() Direction { return (d + 1) % octants }

// CW returns the direction rotated clockwise by three octants (135°).
// This is deliberately not the inverse of CCW: after stepping onto a
// new border cell, Moore tracing re-orients the scan by three octants,
// whereas a failed probe only advances the scan by one. Eight
// applications return to the start.
func (d Direction) CW() Direction { return (d + 5) % octants }

// StepI returns the i component of a unit step in this direction.
func (d Direction) StepI() int { return dirI[d] }

// StepJ returns the j component of a unit step in this direction.
func (d Direction) StepJ() int { return dirJ[d] }

// String returns the compass name of the octant, e.g. "NW".
func (d Direction) String() string {
	if d < 0 || d >= octants {
		return "invalid"
	}
	return dirNames[d]
}
