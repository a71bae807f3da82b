// SPDX-License-Identifier: MIT

package dtw

import "github.com/katalvlaran/lvalgebra/ring"

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) matrix in memory.
//     Allows distance + full backtrace for the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows — only keep the previous and current rows.
//     Memory: O(min(n, m)), distance only.
//
//   - NoMemory — a single row updated in place, carrying the diagonal
//     in a scalar. Memory: O(min(n, m)), distance only.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows keeps two rows, no path recovery.
	TwoRows

	// NoMemory keeps one row, no path recovery.
	NoMemory
)

// String returns the mode name.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case TwoRows:
		return "TwoRows"
	case NoMemory:
		return "NoMemory"
	default:
		return "MemoryMode(?)"
	}
}

// Options configures Dynamic Time Warping over distances of type R.
//
// Fields:
//   - Window       — maximum deviation |i-j| allowed (Sakoe–Chiba band).
//     -1 means no windowing constraint; values below -1 are rejected.
//     0 is a strict diagonal band, so the zero value of Options only
//     aligns sequences of equal length. Start literals from
//     DefaultOptions (Window -1) and override the fields you need.
//   - SlopePenalty — cost added to every insertion/deletion step.
//   - ReturnPath   — if true, DTW backtracks and returns the warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode   — FullMatrix, TwoRows or NoMemory.
type Options[R any] struct {
	Window       int
	SlopePenalty R
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free, distance-only
// configuration in TwoRows mode.
func DefaultOptions[R ring.Real[R]]() Options[R] {
	var r R

	return Options[R]{
		Window:       -1,
		SlopePenalty: r.Zero(),
		ReturnPath:   false,
		MemoryMode:   TwoRows,
	}
}

// Coord is one step of a warping path: element I of the first sequence is
// matched with element J of the second.
type Coord struct {
	I, J int
}
