// Package postprocess - provides Non-Maximum Suppression for detection results.
package postprocess

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-yolo/images"
)

// ErrInvalidParameter reports a threshold that is non-finite or outside
// [0,1].
var ErrInvalidParameter = errors.New("invalid parameter")

// NMSConfig defines parameters for candidate filtering and Non-Maximum
// Suppression.
type NMSConfig struct {
	// ScoreThreshold is the minimum fused score for a candidate to be
	// considered at all. The comparison is inclusive: a score exactly equal
	// to the threshold is kept.
	ScoreThreshold float32
	// IoUThreshold is the overlap above which a lower-ranked box is
	// suppressed.
	IoUThreshold float32
	// ClassAware, if true, restricts suppression to candidates of the same
	// class. The default (false) lets a high-score box suppress overlapping
	// boxes of any class.
	ClassAware bool
}

// Validate checks that both thresholds are finite and within [0,1].
//
// Returns:
//   - ErrInvalidParameter (wrapped with the offending value) on violation.
func (c *NMSConfig) Validate() error {
	if c == nil {
		return errors.Wrap(ErrInvalidParameter, "nil NMS config")
	}
	checks := []struct {
		name  string
		value float32
	}{
		{"score threshold", c.ScoreThreshold},
		{"iou threshold", c.IoUThreshold},
	}
	for _, check := range checks {
		if math32.IsNaN(check.value) || math32.IsInf(check.value, 0) ||
			check.value < 0 || check.value > 1 {
			return errors.Wrapf(ErrInvalidParameter, "%s %v not a finite value in [0,1]", check.name, check.value)
		}
	}
	return nil
}

// SortByScore orders candidates by score descending, in place. The sort is
// stable: candidates with equal scores keep their relative enumeration
// order, which is what makes suppression deterministic on ties.
func SortByScore(candidates []Result) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}

// ApplyGreedyNMS performs standard greedy Non-Maximum Suppression.
//
// Suppression state lives in an explicit flag slice indexed by post-sort
// position, so a candidate's score is never used as a tombstone and
// survivors come back with their values untouched.
//
// Arguments:
//   - detections: Slice of candidates sorted by descending score.
//   - config: Suppression configuration.
//
// Returns:
//   - Surviving candidates in their input (post-sort) order.
//   - An error if any compared box pair is degenerate.
func ApplyGreedyNMS(detections []Result, config *NMSConfig) ([]Result, error) {
	n := len(detections)
	if n == 0 {
		return nil, nil
	}

	filtered := make([]Result, 0, n)
	used := make([]bool, n)

	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}

		anchor := detections[i]
		filtered = append(filtered, anchor)
		used[i] = true

		for j := i + 1; j < n; j++ {
			if used[j] {
				continue
			}
			if config.ClassAware && anchor.Class != detections[j].Class {
				continue
			}

			iou, err := images.CalculateIoU(anchor.Box, detections[j].Box)
			if err != nil {
				return nil, err
			}
			if iou > config.IoUThreshold {
				used[j] = true
			}
		}
	}

	return filtered, nil
}
