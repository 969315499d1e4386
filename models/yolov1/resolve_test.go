package yolov1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// geomIndex returns the flat buffer position of one geometry component,
// mirroring the layout contract, for building fixtures by hand.
func geomIndex(s, c, b, row, col, box, comp int) int {
	return s*s*c + s*s*b + ((row*s+col)*b+box)*4 + comp
}

// confIndex returns the flat buffer position of one box confidence.
func confIndex(s, c, b, row, col, box int) int {
	return s*s*c + (row*s+col)*b + box
}

// TestResolveBoxesGridOffsets verifies that the x coordinate offsets by the
// column index and the y coordinate by the row index, never the other way
// around.
//
// @example
// go test -v -run TestResolveBoxesGridOffsets
func TestResolveBoxesGridOffsets(t *testing.T) {
	const s, c, b = 2, 1, 1
	const imageWidth, imageHeight = 200, 100

	raw := make([]float32, outputLen(s, c, b))
	// Zero offsets everywhere: each resolved center must sit on its own
	// cell origin. Non-zero sizes keep the fixture realistic.
	for row := 0; row < s; row++ {
		for col := 0; col < s; col++ {
			raw[geomIndex(s, c, b, row, col, 0, 2)] = 0.5
			raw[geomIndex(s, c, b, row, col, 0, 3)] = 0.5
		}
	}

	tensor, err := newRawTensor(raw, s, c, b)
	require.NoError(t, err)

	boxes, err := resolveBoxes(tensor, imageWidth, imageHeight)
	require.NoError(t, err)
	require.Len(t, boxes, s*s*b)

	// Cell (row=0, col=1): center moves along x only.
	right := boxes[(0*s+1)*b]
	assert.InDelta(t, 100.0, right.CX, 0.001, "col offset must land on x")
	assert.InDelta(t, 0.0, right.CY, 0.001)

	// Cell (row=1, col=0): center moves along y only.
	below := boxes[(1*s+0)*b]
	assert.InDelta(t, 0.0, below.CX, 0.001)
	assert.InDelta(t, 50.0, below.CY, 0.001, "row offset must land on y")
}

// TestResolveBoxesSquaredSizes verifies that stored sizes are squared to
// recover the true normalized size, and that x sizes scale by image width
// while y sizes scale by image height.
//
// @example
// go test -v -run TestResolveBoxesSquaredSizes
func TestResolveBoxesSquaredSizes(t *testing.T) {
	const s, c, b = 1, 1, 1
	const imageWidth, imageHeight = 400, 100

	raw := make([]float32, outputLen(s, c, b))
	raw[geomIndex(s, c, b, 0, 0, 0, 2)] = 0.5  // rw
	raw[geomIndex(s, c, b, 0, 0, 0, 3)] = -0.1 // rh: squaring makes it positive

	tensor, err := newRawTensor(raw, s, c, b)
	require.NoError(t, err)

	boxes, err := resolveBoxes(tensor, imageWidth, imageHeight)
	require.NoError(t, err)

	assert.InDelta(t, 0.25*imageWidth, boxes[0].W, 0.001, "w = rw^2 * imageWidth")
	assert.InDelta(t, 0.01*imageHeight, boxes[0].H, 0.001, "h = rh^2 * imageHeight")
}

// TestResolveBoxesInvalidImageSize verifies eager rejection of non-positive
// image dimensions.
//
// @example
// go test -v -run TestResolveBoxesInvalidImageSize
func TestResolveBoxesInvalidImageSize(t *testing.T) {
	const s, c, b = 1, 1, 1

	tensor, err := newRawTensor(make([]float32, outputLen(s, c, b)), s, c, b)
	require.NoError(t, err)

	tests := []struct {
		name          string
		width, height int
	}{
		{name: "zero width", width: 0, height: 100},
		{name: "zero height", width: 100, height: 0},
		{name: "negative width", width: -640, height: 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveBoxes(tensor, tt.width, tt.height)
			require.ErrorIs(t, err, ErrInvalidImageSize)
		})
	}
}

// TestResolveBoxesDoesNotMutateInput verifies the raw buffer stays
// untouched: geometry is resolved into a fresh slice, never in place.
//
// @example
// go test -v -run TestResolveBoxesDoesNotMutateInput
func TestResolveBoxesDoesNotMutateInput(t *testing.T) {
	const s, c, b = 2, 2, 2

	raw := make([]float32, outputLen(s, c, b))
	for i := range raw {
		raw[i] = float32(i) * 0.01
	}
	original := append([]float32(nil), raw...)

	tensor, err := newRawTensor(raw, s, c, b)
	require.NoError(t, err)

	_, err = resolveBoxes(tensor, 640, 480)
	require.NoError(t, err)
	_ = fuseScores(tensor)

	assert.Equal(t, original, raw, "the output buffer is read-only")
}

// TestFuseScoresOuterProduct verifies the full outer product across the box
// and class axes, class fastest.
//
// @example
// go test -v -run TestFuseScoresOuterProduct
func TestFuseScoresOuterProduct(t *testing.T) {
	const s, c, b = 1, 2, 2

	raw := make([]float32, outputLen(s, c, b))
	raw[0] = 0.5  // classProb(0,0,0)
	raw[1] = 0.25 // classProb(0,0,1)
	raw[confIndex(s, c, b, 0, 0, 0)] = 0.8
	raw[confIndex(s, c, b, 0, 0, 1)] = 0.4

	tensor, err := newRawTensor(raw, s, c, b)
	require.NoError(t, err)

	scores := fuseScores(tensor)

	// Layout is [box, class] with class fastest.
	assert.Equal(t, []float32{0.4, 0.2, 0.2, 0.1}, scores)
}
