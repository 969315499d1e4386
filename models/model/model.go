// Package model - Definitions for model identities, class sets and the
// post-processing contract shared by all models.
package model

import "github.com/nvr-ai/go-yolo/models/postprocess"

// Family is the dataset family of models.
type Family string

const (
	// ModelFamilyCOCO is the COCO model family.
	ModelFamilyCOCO Family = "coco"
	// ModelFamilyVOC is the Pascal VOC model family.
	ModelFamilyVOC Family = "voc"
)

// Name is the unique identifier of a model.
type Name string

const (
	// ModelNameYOLOv1 is the name of the YOLOv1 model.
	ModelNameYOLOv1 Name = "yolov1"
)

// BaseModel identifies a model instance.
type BaseModel struct {
	Name   Name
	Family Family
}

// Model is the contract between an inference engine and a presenter: the
// engine supplies a flat output buffer plus the source image's pixel size,
// the model turns it into labeled detections, and the presenter consumes
// them. Loading and running the network, decoding pixels and rendering
// results all live on the far side of this interface.
type Model interface {
	Options() BaseModel
	PostProcess(output []float32, imageWidth, imageHeight int) ([]postprocess.Detection, error)
}

// NewModelArgs is the arguments for creating a new model.
type NewModelArgs struct {
	Name   Name                   `json:"name" yaml:"name"`
	Family Family                 `json:"family" yaml:"family"`
	NMS    *postprocess.NMSConfig `json:"nms" yaml:"nms"`
	Labels []string               `json:"labels" yaml:"labels"`
}
