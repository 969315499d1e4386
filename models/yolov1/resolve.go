package yolov1

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-yolo/images"
)

// resolveBoxes converts raw per-cell geometry into absolute image-space
// boxes in center-size form.
//
// Per cell (row, col) and box b, reading raw components (rx, ry, rw, rh):
//
//	cx = (rx + col) / S   x offsets by the column index
//	cy = (ry + row) / S   y offsets by the row index
//	w  = rw * rw          sizes are stored as square roots of the
//	h  = rh * rh          normalized size
//
// then cx and w scale by imageWidth, cy and h by imageHeight. The result is
// a fresh slice indexed row-major [row, col, box]; the raw buffer is never
// written to.
func resolveBoxes(t *rawTensor, imageWidth, imageHeight int) ([]images.Box, error) {
	if imageWidth <= 0 || imageHeight <= 0 {
		return nil, errors.Wrapf(ErrInvalidImageSize, "%dx%d", imageWidth, imageHeight)
	}

	grid := float32(t.s)
	boxes := make([]images.Box, t.s*t.s*t.b)

	for row := 0; row < t.s; row++ {
		for col := 0; col < t.s; col++ {
			for b := 0; b < t.b; b++ {
				rx := t.geometry(row, col, b, 0)
				ry := t.geometry(row, col, b, 1)
				rw := t.geometry(row, col, b, 2)
				rh := t.geometry(row, col, b, 3)

				boxes[(row*t.s+col)*t.b+b] = images.Box{
					CX: (rx + float32(col)) / grid * float32(imageWidth),
					CY: (ry + float32(row)) / grid * float32(imageHeight),
					W:  rw * rw * float32(imageWidth),
					H:  rh * rh * float32(imageHeight),
				}
			}
		}
	}

	return boxes, nil
}

// fuseScores combines class probabilities with box confidences into the
// per-box per-class score tensor:
//
//	score[row, col, b, c] = classProb[row, col, c] * confidence[row, col, b]
//
// The full outer product over the box and class axes is materialized as a
// flat slice, row-major with the class axis fastest. The fused score is the
// sole ranking signal downstream.
func fuseScores(t *rawTensor) []float32 {
	scores := make([]float32, t.s*t.s*t.b*t.c)

	i := 0
	for row := 0; row < t.s; row++ {
		for col := 0; col < t.s; col++ {
			for b := 0; b < t.b; b++ {
				conf := t.confidence(row, col, b)
				for c := 0; c < t.c; c++ {
					scores[i] = t.classProb(row, col, c) * conf
					i++
				}
			}
		}
	}

	return scores
}
