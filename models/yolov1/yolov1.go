// Package yolov1 - postprocess YOLOv1 model outputs.
//
// The YOLOv1 head emits a single flat buffer per image: per-cell class
// probabilities, then per-box confidences, then per-box geometry, over an
// SxS grid with B boxes per cell and C classes. This package turns that
// buffer plus the source image size into a ranked, de-duplicated list of
// labeled detections. It runs no inference and touches no pixels.
package yolov1

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nvr-ai/go-yolo/models/model"
	"github.com/nvr-ai/go-yolo/models/postprocess"
)

var (
	// ErrShapeMismatch reports a raw output buffer whose length disagrees
	// with the configured grid, class and box counts.
	ErrShapeMismatch = errors.New("output length does not match grid/class/box configuration")
	// ErrInvalidImageSize reports non-positive image dimensions.
	ErrInvalidImageSize = errors.New("image dimensions must be positive")
	// ErrLabelTableTooSmall reports a label table with fewer entries than
	// the class count.
	ErrLabelTableTooSmall = errors.New("label table smaller than class count")
)

// Params defines the YOLOv1 post-processing configuration. All values are
// explicit call-time inputs; nothing is read from package state, so two
// processors with different Params can run side by side.
type Params struct {
	// GridSize is the side length S of the SxS detection grid.
	GridSize int
	// NumClasses is the number of object classes C the model was trained
	// with.
	NumClasses int
	// NumBoxes is the number of boxes B predicted per grid cell.
	NumBoxes int
	// NMS holds the score threshold and suppression parameters.
	NMS *postprocess.NMSConfig
	// Labels maps class index to class name. Must have at least NumClasses
	// entries.
	Labels []string
}

// VOCParams returns Params for the canonical Pascal VOC YOLOv1 head:
// a 7x7 grid, 20 classes, 2 boxes per cell, score threshold 0.2 and IoU
// threshold 0.5.
func VOCParams() Params {
	return Params{
		GridSize:   7,
		NumClasses: 20,
		NumBoxes:   2,
		NMS: &postprocess.NMSConfig{
			ScoreThreshold: 0.2,
			IoUThreshold:   0.5,
		},
		Labels: model.VOCClasses,
	}
}

// YOLOv1 is the instance of the YOLOv1 post-processor.
type YOLOv1 struct {
	params Params
	log    *logrus.Logger
}

// NewYOLOv1 returns a post-processor configured with the given parameters.
func NewYOLOv1(p Params) *YOLOv1 {
	return &YOLOv1{params: p}
}

// Params returns the configuration the processor was built with.
func (m *YOLOv1) Params() Params {
	return m.params
}

// SetLogger attaches a logger used for per-call debug output. A nil logger
// keeps the processor silent.
func (m *YOLOv1) SetLogger(log *logrus.Logger) {
	m.log = log
}

// Options implements model.Model.
func (m *YOLOv1) Options() model.BaseModel {
	return model.BaseModel{
		Name:   model.ModelNameYOLOv1,
		Family: model.ModelFamilyVOC,
	}
}
