// SPDX-License-Identifier: MIT

// Command gen writes scalar/scalar_gen.go: the method sets that wire the
// primitive numeric types into the capability hierarchy.
//
// Every type gets the same template blocks for its kind, so the set of
// conformances stays closed and uniform. Kernels with real logic live in
// scalar/kernels.go and are written once over golang.org/x/exp/constraints.
//
//	go run ./internal/gen -out scalar/scalar_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"
)

// kind selects the template blocks a scalar receives.
type kind int

const (
	kindInt kind = iota
	kindFloat
	kindComplex
)

// scalarType describes one generated scalar.
type scalarType struct {
	Name     string // exported Go type
	Prim     string // underlying primitive
	Real     string // real subtype (exported)
	RealPrim string // primitive of the real subtype
	AbsFn    string // kernel for |x|
	SqrtFn   string // kernel for √x
	Kind     kind
}

var scalarTypes = []scalarType{
	{Name: "Int32", Prim: "int32", Real: "Int32", RealPrim: "int32", AbsFn: "intAbs", SqrtFn: "intSqrt", Kind: kindInt},
	{Name: "Int64", Prim: "int64", Real: "Int64", RealPrim: "int64", AbsFn: "intAbs", SqrtFn: "intSqrt", Kind: kindInt},
	{Name: "Float32", Prim: "float32", Real: "Float32", RealPrim: "float32", AbsFn: "floatAbs", SqrtFn: "floatSqrt", Kind: kindFloat},
	{Name: "Float64", Prim: "float64", Real: "Float64", RealPrim: "float64", AbsFn: "floatAbs", SqrtFn: "floatSqrt", Kind: kindFloat},
	{Name: "Complex64", Prim: "complex64", Real: "Float32", RealPrim: "float32", Kind: kindComplex},
	{Name: "Complex128", Prim: "complex128", Real: "Float64", RealPrim: "float64", Kind: kindComplex},
}

// blocks lists the templates applied per kind, in output order.
var blocks = map[kind][]string{
	kindInt:     {"common", "real"},
	kindFloat:   {"common", "real", "field", "float"},
	kindComplex: {"common", "field", "complex"},
}

const header = `// Code generated by internal/gen; DO NOT EDIT.

package scalar
`

const commonTmpl = `
// {{.Name}} wraps {{.Prim}} as a ring, a one-dimensional module over
// itself and an inner-product space over itself.
type {{.Name}} {{.Prim}}

// Add returns x + y.
func (x {{.Name}}) Add(y {{.Name}}) {{.Name}} { return x + y }

// Sub returns x - y.
func (x {{.Name}}) Sub(y {{.Name}}) {{.Name}} { return x - y }

// Neg returns -x.
func (x {{.Name}}) Neg() {{.Name}} { return -x }

// IsZero reports whether x == 0.
func (x {{.Name}}) IsZero() bool { return x == 0 }

// Mul returns x * y.
func (x {{.Name}}) Mul(y {{.Name}}) {{.Name}} { return x * y }

// Zero returns 0.
func ({{.Name}}) Zero() {{.Name}} { return 0 }

// One returns 1.
func ({{.Name}}) One() {{.Name}} { return 1 }

// Distributive tags Mul as distributive over Add.
func ({{.Name}}) Distributive() {}

// MulScalar returns x * k.
func (x {{.Name}}) MulScalar(k {{.Name}}) {{.Name}} { return x * k }

// Dot returns x * y.
func (x {{.Name}}) Dot(y {{.Name}}) {{.Name}} { return x * y }

// Symmetric tags Dot as symmetric.
func ({{.Name}}) Symmetric() {}

// QForm returns x * x.
func (x {{.Name}}) QForm() {{.Name}} { return x * x }

// At returns the only coordinate of x. i must be 0.
func (x {{.Name}}) At(i int) {{.Name}} {
	checkIndex(i)
	return x
}

// Basis returns 1, the only basis element. i must be 0.
func ({{.Name}}) Basis(i int) {{.Name}} {
	checkIndex(i)
	return 1
}

// Elements returns 1.
func ({{.Name}}) Elements() int { return 1 }

// Dimensions returns 1.
func ({{.Name}}) Dimensions() int { return 1 }

// SetAt replaces the only coordinate of x. i must be 0.
func (x *{{.Name}}) SetAt(i int, k {{.Name}}) {
	checkIndex(i)
	*x = k
}
`

const realTmpl = `
// Abs returns |x|.
func (x {{.Name}}) Abs() {{.Name}} { return {{.AbsFn}}(x) }

// Sqrt returns the square root of x.
func (x {{.Name}}) Sqrt() {{.Name}} { return {{.SqrtFn}}(x) }

// Less reports whether x < y.
func (x {{.Name}}) Less(y {{.Name}}) bool { return x < y }

// Conj returns x.
func (x {{.Name}}) Conj() {{.Name}} { return x }

// AsReal returns x.
func (x {{.Name}}) AsReal() {{.Name}} { return x }

// FromReal returns r.
func ({{.Name}}) FromReal(r {{.Name}}) {{.Name}} { return r }

// InnerProduct returns x * y.
func (x {{.Name}}) InnerProduct(y {{.Name}}) {{.Name}} { return x * y }

// Norm returns |x| without going through √(x·x).
func (x {{.Name}}) Norm() {{.Name}} { return {{.AbsFn}}(x) }

// Orthogonal reports whether x or y is zero, without forming x·y.
func (x {{.Name}}) Orthogonal(y {{.Name}}) bool { return x == 0 || y == 0 }
`

const fieldTmpl = `
// Div returns x / y.
func (x {{.Name}}) Div(y {{.Name}}) {{.Name}} { return x / y }

// Inv returns 1 / x.
func (x {{.Name}}) Inv() {{.Name}} { return 1 / x }

// DivScalar returns x / k.
func (x {{.Name}}) DivScalar(k {{.Name}}) {{.Name}} { return x / k }
`

const floatTmpl = `
// Acos returns the arc cosine of x.
func (x {{.Name}}) Acos() {{.Name}} { return floatAcos(x) }

// Normalized returns the sign of x: ±1 following the sign bit, NaN for NaN.
func (x {{.Name}}) Normalized() {{.Name}} { return signum(x) }

// Project returns 0 when x is zero and y otherwise.
func (x {{.Name}}) Project(y {{.Name}}) {{.Name}} { return projectLine(x, y) }

// Reject returns y when x is zero and 0 otherwise.
func (x {{.Name}}) Reject(y {{.Name}}) {{.Name}} { return rejectLine(x, y) }

// Angle returns π/2 when exactly one of x, y is zero, π when their signs
// differ and 0 otherwise. It never calls acos, so the result is one of
// three exact values.
func (x {{.Name}}) Angle(y {{.Name}}) {{.Name}} { return angleLine(x, y) }
`

const complexTmpl = `
// Conj returns the complex conjugate of x.
func (x {{.Name}}) Conj() {{.Name}} { return conj(x) }

// AsReal returns the real part of x.
func (x {{.Name}}) AsReal() {{.Real}} { return {{.Real}}(real(x)) }

// FromReal returns r + 0i.
func ({{.Name}}) FromReal(r {{.Real}}) {{.Name}} { return {{.Name}}(complex({{.RealPrim}}(r), 0)) }

// InnerProduct returns conj(x) * y.
func (x {{.Name}}) InnerProduct(y {{.Name}}) {{.Name}} { return conj(x) * y }

// Acos returns the complex arc cosine of x.
func (x {{.Name}}) Acos() {{.Name}} { return complexAcos(x) }
`

func main() {
	out := flag.String("out", "scalar_gen.go", "output file")
	flag.Parse()

	src, err := generate()
	if err != nil {
		log.Fatalf("gen: %v", err)
	}
	if err = os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("gen: %v", err)
	}
}

// generate renders every scalar type and gofmts the result.
func generate() ([]byte, error) {
	tmpl := template.New("scalar")
	for name, text := range map[string]string{
		"common":  commonTmpl,
		"real":    realTmpl,
		"field":   fieldTmpl,
		"float":   floatTmpl,
		"complex": complexTmpl,
	} {
		if _, err := tmpl.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	for _, st := range scalarTypes {
		for _, block := range blocks[st.Kind] {
			if err := tmpl.ExecuteTemplate(&buf, block, st); err != nil {
				return nil, fmt.Errorf("%s/%s: %w", st.Name, block, err)
			}
		}
	}

	return format.Source(buf.Bytes())
}
