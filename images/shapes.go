// Package images - Image-space geometry shared by detection models.
package images

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// ErrDegenerateBox reports a box with zero or negative area reaching an
// overlap computation. Degenerate geometry is invalid input and is never
// silently treated as a zero IoU.
var ErrDegenerateBox = errors.New("degenerate box: zero or negative area")

// Box is a bounding box in center-size form, in image pixel units.
type Box struct {
	// CX, CY are the coordinates of the box center.
	CX, CY float32
	// W, H are the full width and height of the box.
	W, H float32
}

// Rect is a lightweight corner-form bounding box.
type Rect struct {
	X1, Y1, X2, Y2 float32
}

// Rect converts the box to corner form (xmin, ymin, xmax, ymax), the shape
// presenters want when clamping a box against image bounds for display.
func (b Box) Rect() Rect {
	return Rect{
		X1: b.CX - b.W/2,
		Y1: b.CY - b.H/2,
		X2: b.CX + b.W/2,
		Y2: b.CY + b.H/2,
	}
}

// Area returns the box area, W times H.
func (b Box) Area() float32 {
	return b.W * b.H
}

// CalculateIoU computes the Intersection over Union of two center-size
// boxes:
//
//	IoU = Area of Intersection / Area of Union
//
// The intersection extent along each axis is the distance between the
// nearer far edge and the farther near edge, clamped at zero when the boxes
// do not overlap on that axis. The union follows inclusion-exclusion:
// Area(A) + Area(B) - Area(Intersection).
//
// Either operand having zero or negative area is an error
// (ErrDegenerateBox), as is a non-positive union.
func CalculateIoU(a, b Box) (float32, error) {
	if a.Area() <= 0 {
		return 0, errors.Wrapf(ErrDegenerateBox, "box %.2fx%.2f", a.W, a.H)
	}
	if b.Area() <= 0 {
		return 0, errors.Wrapf(ErrDegenerateBox, "box %.2fx%.2f", b.W, b.H)
	}

	interW := math32.Min(a.CX+a.W/2, b.CX+b.W/2) - math32.Max(a.CX-a.W/2, b.CX-b.W/2)
	interH := math32.Min(a.CY+a.H/2, b.CY+b.H/2) - math32.Max(a.CY-a.H/2, b.CY-b.H/2)
	intersection := math32.Max(0, interW) * math32.Max(0, interH)

	union := a.Area() + b.Area() - intersection
	if union <= 0 {
		return 0, errors.Wrapf(ErrDegenerateBox, "union of %.2fx%.2f and %.2fx%.2f is %.2f", a.W, a.H, b.W, b.H, union)
	}

	return intersection / union, nil
}
