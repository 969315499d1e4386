package yolov1

import "github.com/pkg/errors"

// rawTensor provides strided read-only views over the flat network output.
// The buffer holds three contiguous regions in fixed order: class
// probabilities (S*S*C values), box confidences (S*S*B values), then box
// geometry (S*S*B*4 values). Every region is row-major with the trailing
// axis fastest; the geometry region's fastest axis is the component
// (x, y, w, h). Nothing here transforms values, and nothing writes back
// into the buffer.
type rawTensor struct {
	raw     []float32
	s, c, b int
}

// outputLen is the only valid buffer length for a given configuration.
func outputLen(s, c, b int) int {
	return s*s*c + s*s*b + s*s*b*4
}

// newRawTensor checks the buffer length against the configuration and
// returns the layout views.
func newRawTensor(raw []float32, s, c, b int) (*rawTensor, error) {
	if want := outputLen(s, c, b); len(raw) != want {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"got %d values, want %d for S=%d C=%d B=%d", len(raw), want, s, c, b)
	}
	return &rawTensor{raw: raw, s: s, c: c, b: b}, nil
}

// classProb reads the class probability at [row, col, class].
func (t *rawTensor) classProb(row, col, class int) float32 {
	return t.raw[(row*t.s+col)*t.c+class]
}

// confidence reads the box confidence at [row, col, box].
func (t *rawTensor) confidence(row, col, box int) float32 {
	return t.raw[t.s*t.s*t.c+(row*t.s+col)*t.b+box]
}

// geometry reads one geometry component at [row, col, box, comp], where
// comp 0..3 selects x, y, w, h.
func (t *rawTensor) geometry(row, col, box, comp int) float32 {
	base := t.s*t.s*t.c + t.s*t.s*t.b
	return t.raw[base+((row*t.s+col)*t.b+box)*4+comp]
}
