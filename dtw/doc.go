// Package dtw computes Dynamic Time Warping (DTW) distances between
// sequences of any space that carries a metric, with optional alignment
// path and memory optimizations.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance.  It’s widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching (sequences of R³ points)
//	  • Signature & handwriting verification
//	  • Time-series clustering & anomaly detection
//
// ✨ Key features:
//   - generic over the element type X and the distance type R: any
//     metric.Metric[X, R] plugs in (inner.InnerProductMetric, vector.LpNorm, ...)
//   - full-matrix mode: exact O(N·M) time & memory, with alignment path
//   - two-row and single-row modes: O(min(N,M)) memory, distance only
//   - optional Sakoe–Chiba window (|i−j| ≤ w) for speed & constraint
//   - slope penalty to discourage excessive stretching
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvalgebra/dtw"
//
//	opts := dtw.DefaultOptions[scalar.Float64]()
//	opts.Window = 10          // Sakoe–Chiba band ±10
//	opts.SlopePenalty = 0.5   // penalty for 1×2 vs 2×1 steps
//	opts.ReturnPath = true    // also return warp path
//	opts.MemoryMode = dtw.FullMatrix
//
//	var m inner.InnerProductMetric[vector.Vec3, scalar.Float64, scalar.Float64]
//	dist, path, err := dtw.DTW[vector.Vec3, scalar.Float64](a, b, m, &opts)
//
// Distances are never infinite: a generic R has no +Inf. When the window
// leaves no monotone path from (0,0) to (N−1,M−1), DTW fails with
// ErrNoAlignment instead.
//
// Performance:
//
//   - Time:   O(N·M) metric evaluations
//   - Memory: O(N·M) (FullMatrix) or O(min(N,M)) (TwoRows, NoMemory)
package dtw
