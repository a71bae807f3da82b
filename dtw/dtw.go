package dtw

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvalgebra/metric"
	"github.com/katalvlaran/lvalgebra/ring"
)

// DTW — Dynamic Time Warping
//
// Description:
//
//	DTW measures similarity between two sequences that may vary
//	in time or speed by finding an optimal “warping path”. The local
//	cost of matching a[i] with b[j] is m.Distance(a[i], b[j]).
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), k = len(b). Allocate (n+1)x(k+1) DP matrix D.
//  2. Initialize: D[0][0] = 0; every other cell of row 0 and column 0
//     is unreachable.
//  3. For i = 1..n:
//     For j = 1..k (and |i-j| ≤ Window, if constrained):
//     match = D[i-1][j-1]
//     ins   = D[i-1][j]   + SlopePenalty
//     del   = D[i][j-1]   + SlopePenalty
//     D[i][j] = d(a[i-1], b[j-1]) + min over the reachable of (match, ins, del)
//     Ties prefer match, then ins, then del.
//  4. distance = D[n][k]; unreachable means ErrNoAlignment.
//  5. If ReturnPath, follow the recorded predecessor of each cell from
//     (n,k) back to (1,1).
//
// Complexity:
//
//	Time   = O(n·k) metric evaluations (fewer with a window)
//	Memory = O(n·k) (FullMatrix) or O(min(n,k)) (TwoRows, NoMemory)
//
// Errors:
//   - ErrEmptyInput      — if either input is empty.
//   - ErrNilMetric       — if m is nil.
//   - ErrBadInput        — Window < -1 or an unknown MemoryMode.
//   - ErrPathNeedsMatrix — ReturnPath without FullMatrix.
//   - ErrNoAlignment     — the window excludes every path.
//
// A nil opts means DefaultOptions.
func DTW[X any, R ring.Real[R]](a, b []X, m metric.Metric[X, R], opts *Options[R]) (R, []Coord, error) {
	var zero R
	zero = zero.Zero()

	if len(a) == 0 || len(b) == 0 {
		return zero, nil, ErrEmptyInput
	}
	if m == nil {
		return zero, nil, ErrNilMetric
	}
	o := DefaultOptions[R]()
	if opts != nil {
		o = *opts
	}
	if o.Window < -1 {
		return zero, nil, fmt.Errorf("%w: window %d", ErrBadInput, o.Window)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return zero, nil, ErrPathNeedsMatrix
	}

	w := warper[X, R]{m: m, window: o.Window, penalty: o.SlopePenalty}
	var (
		res  cell[R]
		path []Coord
	)
	switch o.MemoryMode {
	case FullMatrix:
		res, path = w.fullMatrix(a, b, o.ReturnPath)
	case TwoRows:
		res = w.twoRows(shorterLast(a, b))
	case NoMemory:
		res = w.oneRow(shorterLast(a, b))
	default:
		return zero, nil, fmt.Errorf("%w: memory mode %d", ErrBadInput, o.MemoryMode)
	}
	if !res.ok {
		return zero, nil, fmt.Errorf("%w: window %d, lengths %d and %d", ErrNoAlignment, o.Window, len(a), len(b))
	}

	return res.cost, path, nil
}

// move records which neighbour a cell was reached from.
type move uint8

const (
	moveNone move = iota
	moveDiag      // from (i-1, j-1)
	moveUp        // from (i-1, j)
	moveLeft      // from (i, j-1)
)

// cell is one DP entry. ok is false for cells no path reaches; their cost
// is meaningless.
type cell[R any] struct {
	cost R
	ok   bool
}

type warper[X any, R ring.Real[R]] struct {
	m       metric.Metric[X, R]
	window  int
	penalty R
}

// inBand reports whether (i, j) lies in the Sakoe–Chiba band.
func (w *warper[X, R]) inBand(i, j int) bool {
	return w.window < 0 || abs(i-j) <= w.window
}

// relax picks the cheapest reachable predecessor among diag, up and left
// and adds the local cost of matching x with y.
func (w *warper[X, R]) relax(diag, up, left cell[R], x, y X) (cell[R], move) {
	best, mv := diag, moveDiag
	if !best.ok {
		mv = moveNone
	}
	if up.ok {
		c := up.cost.Add(w.penalty)
		if !best.ok || c.Less(best.cost) {
			best, mv = cell[R]{cost: c, ok: true}, moveUp
		}
	}
	if left.ok {
		c := left.cost.Add(w.penalty)
		if !best.ok || c.Less(best.cost) {
			best, mv = cell[R]{cost: c, ok: true}, moveLeft
		}
	}
	if !best.ok {
		return cell[R]{}, moveNone
	}

	return cell[R]{cost: best.cost.Add(w.m.Distance(x, y)), ok: true}, mv
}

// fullMatrix fills the whole DP table and optionally backtracks.
func (w *warper[X, R]) fullMatrix(a, b []X, wantPath bool) (cell[R], []Coord) {
	n, k := len(a), len(b)
	stride := k + 1
	dp := make([]cell[R], (n+1)*stride)
	var moves []move
	if wantPath {
		moves = make([]move, (n+1)*stride)
	}
	dp[0] = cell[R]{cost: w.penalty.Zero(), ok: true}

	for i := 1; i <= n; i++ {
		for j := 1; j <= k; j++ {
			if !w.inBand(i, j) {
				continue
			}
			c, mv := w.relax(dp[(i-1)*stride+j-1], dp[(i-1)*stride+j], dp[i*stride+j-1], a[i-1], b[j-1])
			dp[i*stride+j] = c
			if wantPath {
				moves[i*stride+j] = mv
			}
		}
	}

	res := dp[n*stride+k]
	if !wantPath || !res.ok {
		return res, nil
	}

	path := make([]Coord, 0, n+k-1)
	for i, j := n, k; i > 0 && j > 0; {
		path = append(path, Coord{I: i - 1, J: j - 1})
		switch moves[i*stride+j] {
		case moveDiag:
			i, j = i-1, j-1
		case moveUp:
			i--
		case moveLeft:
			j--
		default:
			i, j = 0, 0
		}
	}
	slices.Reverse(path)

	return res, path
}

// twoRows keeps the previous and current DP rows over b.
func (w *warper[X, R]) twoRows(a, b []X) cell[R] {
	k := len(b)
	prev := make([]cell[R], k+1)
	curr := make([]cell[R], k+1)
	prev[0] = cell[R]{cost: w.penalty.Zero(), ok: true}

	for i := 1; i <= len(a); i++ {
		curr[0] = cell[R]{}
		for j := 1; j <= k; j++ {
			if !w.inBand(i, j) {
				curr[j] = cell[R]{}
				continue
			}
			curr[j], _ = w.relax(prev[j-1], prev[j], curr[j-1], a[i-1], b[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[k]
}

// oneRow updates a single DP row in place; diag carries D[i-1][j-1].
func (w *warper[X, R]) oneRow(a, b []X) cell[R] {
	k := len(b)
	row := make([]cell[R], k+1)
	row[0] = cell[R]{cost: w.penalty.Zero(), ok: true}

	for i := 1; i <= len(a); i++ {
		diag := row[0]
		row[0] = cell[R]{}
		for j := 1; j <= k; j++ {
			up := row[j]
			if w.inBand(i, j) {
				row[j], _ = w.relax(diag, up, row[j-1], a[i-1], b[j-1])
			} else {
				row[j] = cell[R]{}
			}
			diag = up
		}
	}

	return row[k]
}

// shorterLast orders the sequences so the DP row runs over the shorter
// one. The metric is symmetric and so is the band, so the distance does
// not change.
func shorterLast[X any](a, b []X) ([]X, []X) {
	if len(b) > len(a) {
		return b, a
	}

	return a, b
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
