package yolov1

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nvr-ai/go-yolo/models/postprocess"
)

// PostProcess transforms the flat YOLOv1 output buffer into labeled
// detections by:
//   - Reinterpreting the buffer as class-probability, confidence and
//     geometry views (length must match the configuration exactly).
//   - Resolving raw geometry into image-space boxes and fusing class
//     probabilities with box confidences into per-box per-class scores.
//   - Filtering by score threshold, sorting by score descending, and
//     greedily suppressing overlapping lower-score boxes.
//
// The call is a pure function of its inputs: the output buffer is read-only,
// no state survives between calls, and independent calls may run in
// parallel.
//
// Arguments:
//   - output: The flat output buffer of the YOLOv1 head.
//   - imageWidth, imageHeight: Pixel size of the source image.
//
// Returns:
//   - Detections sorted by score descending, ties in enumeration order.
//   - An error from the first stage whose precondition is violated.
func (m *YOLOv1) PostProcess(output []float32, imageWidth, imageHeight int) ([]postprocess.Detection, error) {
	p := m.params

	t, err := newRawTensor(output, p.GridSize, p.NumClasses, p.NumBoxes)
	if err != nil {
		return nil, err
	}

	boxes, err := resolveBoxes(t, imageWidth, imageHeight)
	if err != nil {
		return nil, err
	}
	scores := fuseScores(t)

	if err := p.NMS.Validate(); err != nil {
		return nil, err
	}
	if len(p.Labels) < p.NumClasses {
		return nil, errors.Wrapf(ErrLabelTableTooSmall,
			"%d labels for %d classes", len(p.Labels), p.NumClasses)
	}

	// Filter. Enumeration is row-major over (row, col, box, class) with
	// class fastest, matching the score tensor layout; the stable sort
	// relies on this order for tie-breaking.
	candidates := make([]postprocess.Result, 0, 16)
	i := 0
	for cell := 0; cell < p.GridSize*p.GridSize; cell++ {
		for b := 0; b < p.NumBoxes; b++ {
			box := boxes[cell*p.NumBoxes+b]
			for c := 0; c < p.NumClasses; c++ {
				if score := scores[i]; score >= p.NMS.ScoreThreshold {
					candidates = append(candidates, postprocess.Result{
						Box:   box,
						Score: score,
						Class: c,
					})
				}
				i++
			}
		}
	}

	postprocess.SortByScore(candidates)

	kept, err := postprocess.ApplyGreedyNMS(candidates, p.NMS)
	if err != nil {
		return nil, err
	}

	detections := make([]postprocess.Detection, len(kept))
	for n, r := range kept {
		detections[n] = postprocess.Detection{
			Label: p.Labels[r.Class],
			Box:   r.Box,
			Score: r.Score,
			Class: r.Class,
		}
	}

	if m.log != nil {
		m.log.WithFields(logrus.Fields{
			"image_width":  imageWidth,
			"image_height": imageHeight,
			"candidates":   len(candidates),
			"detections":   len(detections),
		}).Debug("yolov1 postprocess complete")
	}

	return detections, nil
}
