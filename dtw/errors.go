// SPDX-License-Identifier: MIT

package dtw

import "errors"

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates invalid options (Window < -1, unknown MemoryMode).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrNilMetric indicates a nil metric.
	ErrNilMetric = errors.New("dtw: metric must be non-nil")

	// ErrNoAlignment indicates the window admits no warping path.
	ErrNoAlignment = errors.New("dtw: no warping path within window")
)
