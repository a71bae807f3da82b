// Package metric defines distance and length functions: metrics,
// seminorms and norms.
//
// These are implemented on a type other than the space they measure. A
// space usually admits many metrics, and one metric construction usually
// serves a whole family of spaces, so keeping them apart lets each be
// written once:
//
//	l1, _ := vector.NewLpNorm(1) // a Norm and a Metric on vector.Dense
//	d := l1.Distance(x, y)
//
// The laws (positivity, symmetry, triangle inequality, homogeneity) are
// documented, not checked.
package metric
