// SPDX-License-Identifier: MIT

package vector

import "gonum.org/v1/gonum/spatial/r3"

// Point3 is a location in three-dimensional affine space. Points cannot be
// added or scaled; they differ by a Vec3 and move by one.
type Point3 r3.Vec

// P3 is shorthand for Point3{x, y, z}.
func P3(x, y, z float64) Point3 { return Point3{X: x, Y: y, Z: z} }

// Diff returns the displacement p - q.
func (p Point3) Diff(q Point3) Vec3 { return Vec3(r3.Sub(r3.Vec(p), r3.Vec(q))) }

// AddVec returns p moved by v.
func (p Point3) AddVec(v Vec3) Point3 { return Point3(r3.Add(r3.Vec(p), r3.Vec(v))) }

// SubVec returns p moved by -v.
func (p Point3) SubVec(v Vec3) Point3 { return Point3(r3.Sub(r3.Vec(p), r3.Vec(v))) }

// AddVecAssign moves p by v in place.
func (p *Point3) AddVecAssign(v Vec3) {
	p.X += v.X
	p.Y += v.Y
	p.Z += v.Z
}
