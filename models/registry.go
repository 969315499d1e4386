// Package models - registry for models.
package models

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-yolo/models/model"
	"github.com/nvr-ai/go-yolo/models/yolov1"
)

// NewModel creates a new detection post-processor based on the specified
// model name.
//
// This factory is the unified entry point for model creation: callers name
// the model and optionally override the suppression configuration and label
// table; everything else comes from the model's canonical defaults.
//
// Arguments:
//   - args: Configuration naming the model plus optional overrides.
//
// Returns:
//   - model.Model: A configured post-processor implementing the Model
//     interface.
//   - error: If the model name is unsupported.
func NewModel(args model.NewModelArgs) (model.Model, error) {
	switch args.Name {
	case model.ModelNameYOLOv1:
		params := yolov1.VOCParams()
		if args.NMS != nil {
			params.NMS = args.NMS
		}
		if args.Labels != nil {
			params.Labels = args.Labels
		}
		return yolov1.NewYOLOv1(params), nil
	default:
		return nil, errors.Errorf("unsupported model name: %s", args.Name)
	}
}
