// Package postprocess - Postprocessing utilities for models.
package postprocess

import (
	"fmt"

	"github.com/nvr-ai/go-yolo/images"
)

// Result represents a single detection candidate.
type Result struct {
	// The bounding box of the candidate.
	Box images.Box
	// The fused confidence score of the candidate.
	Score float32
	// The predicted class index of the candidate.
	Class int
}

// Detection is a final labeled detection returned to callers once
// suppression has run.
type Detection struct {
	// Label is the class name from the model's label table.
	Label string
	// Box is the detection's bounding box in image pixel units.
	Box images.Box
	// Score is the fused confidence score.
	Score float32
	// Class is the class index the label was resolved from.
	Class int
}

// String formats the detection for console reporting.
func (d Detection) String() string {
	return fmt.Sprintf("class : %s, [x,y,w,h]=[%d,%d,%d,%d], Confidence = %f",
		d.Label, int(d.Box.CX), int(d.Box.CY), int(d.Box.W), int(d.Box.H), d.Score)
}
