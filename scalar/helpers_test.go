// SPDX-License-Identifier: MIT

package scalar_test

import (
	"errors"

	"github.com/katalvlaran/lvalgebra/ring"
)

// selfInner is a scalar that is an inner-product space over itself.
type selfInner[T any] interface {
	ring.UnitalRing[T]
	InnerProduct(rhs T) T
}

// hide forwards only the module primitives and InnerProduct of a scalar,
// so derived operations run the generic path instead of the override.
type hide[T selfInner[T]] struct{ x T }

func (h hide[T]) Add(o hide[T]) hide[T]    { return hide[T]{h.x.Add(o.x)} }
func (h hide[T]) Sub(o hide[T]) hide[T]    { return hide[T]{h.x.Sub(o.x)} }
func (h hide[T]) Neg() hide[T]             { return hide[T]{h.x.Neg()} }
func (h hide[T]) IsZero() bool             { return h.x.IsZero() }
func (h hide[T]) MulScalar(k T) hide[T]    { return hide[T]{h.x.Mul(k)} }
func (h hide[T]) InnerProduct(o hide[T]) T { return h.x.InnerProduct(o.x) }

// recoverErr runs f and returns the error it panicked with, or nil.
func recoverErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			if err, ok = r.(error); !ok {
				err = errors.New("non-error panic")
			}
		}
	}()
	f()

	return nil
}
