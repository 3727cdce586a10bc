package contour_test

import (
	"testing"

	"github.com/biofilmkit/biogrid/contour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// occSet builds an Occupied predicate from an explicit cell set.
// Everything outside the set — including negative coordinates — is
// unoccupied, matching the total-function policy of the 2D queries.
func occSet(cells ...[2]int) contour.Occupied {
	set := make(map[[2]int]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return func(i, j int) bool { return set[[2]int{i, j}] }
}

// TestTrace_Square walks a 2×2 block anchored at (1,1). Starting from
// its south-west cell with a westward scan, the walk must visit the
// four cells counter-clockwise and close back on the start.
func TestTrace_Square(t *testing.T) {
	occ := occSet([2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})

	nodes, err := contour.Trace(occ, contour.Node{I: 1, J: 1}, contour.DefaultOptions())
	require.NoError(t, err, "square contour must close")

	want := []contour.Node{{I: 1, J: 1}, {I: 2, J: 1}, {I: 2, J: 2}, {I: 1, J: 2}}
	assert.Equal(t, want, nodes)
}

// TestTrace_Bar walks a 3×1 horizontal bar. A one-cell-thick region is
// traced out along one side and back along the other, so the middle
// cell appears twice in the ordering.
func TestTrace_Bar(t *testing.T) {
	occ := occSet([2]int{1, 1}, [2]int{2, 1}, [2]int{3, 1})

	nodes, err := contour.Trace(occ, contour.Node{I: 1, J: 1}, contour.DefaultOptions())
	require.NoError(t, err)

	want := []contour.Node{{I: 1, J: 1}, {I: 2, J: 1}, {I: 3, J: 1}, {I: 2, J: 1}}
	assert.Equal(t, want, nodes)
}

// TestTrace_IsolatedCell covers the degenerate region: a single
// occupied cell with no occupied neighbor can never close a contour,
// so the bounded-step guard must end the walk with ErrOpenContour
// rather than looping forever.
func TestTrace_IsolatedCell(t *testing.T) {
	occ := occSet([2]int{2, 2})
	opts := contour.Options{Dir: contour.W, MaxSteps: 64}

	nodes, err := contour.Trace(occ, contour.Node{I: 2, J: 2}, opts)
	assert.ErrorIs(t, err, contour.ErrOpenContour)
	assert.Equal(t, []contour.Node{{I: 2, J: 2}}, nodes, "partial trace holds only the start")
}

// TestTrace_StartUnoccupied verifies the precondition on the start node.
func TestTrace_StartUnoccupied(t *testing.T) {
	occ := occSet([2]int{1, 1})
	_, err := contour.Trace(occ, contour.Node{I: 0, J: 0}, contour.DefaultOptions())
	assert.ErrorIs(t, err, contour.ErrStartUnoccupied)
}

// TestTrace_BadSteps verifies the guard on a non-positive step limit.
func TestTrace_BadSteps(t *testing.T) {
	occ := occSet([2]int{1, 1})
	_, err := contour.Trace(occ, contour.Node{I: 1, J: 1}, contour.Options{Dir: contour.W, MaxSteps: 0})
	assert.ErrorIs(t, err, contour.ErrBadSteps)
}

// TestNode_NextAndEquality pins value semantics of Node stepping.
func TestNode_NextAndEquality(t *testing.T) {
	n := contour.Node{I: 3, J: 4}
	assert.Equal(t, contour.Node{I: 2, J: 4}, n.Next(contour.W))
	assert.Equal(t, contour.Node{I: 4, J: 3}, n.Next(contour.SE))
	assert.Equal(t, contour.Node{I: 3, J: 4}, n, "Next must not mutate the receiver")

	occ := occSet([2]int{2, 4})
	assert.True(t, n.NextOccupied(contour.W, occ))
	assert.False(t, n.NextOccupied(contour.E, occ))
}
