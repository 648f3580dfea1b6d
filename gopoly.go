// Package gopoly evaluates polynomials and finds the real roots of linear,
// quadratic and cubic equations, following GSL's polynomial routines.
//
// Design goals:
//   - Single root package, zero runtime dependencies
//   - One generic implementation over real and complex coefficients
//   - Closed-form solvers with exact classification of degenerate cases
//   - Typed sentinel errors; no panics on user input
package gopoly

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// ============================================================
// Scalar field
// ============================================================

// Coeff is the scalar field a polynomial is defined over.
type Coeff interface {
	float64 | complex128
}

func isFinite[T Coeff](v T) bool {
	switch v := any(v).(type) {
	case float64:
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	case complex128:
		return !cmplx.IsNaN(v) && !cmplx.IsInf(v)
	}
	return false
}

func isZero[T Coeff](v T) bool { var zero T; return v == zero }

func realPart[T Coeff](v T) float64 {
	switch v := any(v).(type) {
	case float64:
		return v
	case complex128:
		return real(v)
	}
	return 0
}

func imagPart[T Coeff](v T) float64 {
	if v, ok := any(v).(complex128); ok {
		return imag(v)
	}
	return 0
}

// scale multiplies v by the real factor f within the field of T.
func scale[T Coeff](v T, f float64) T {
	switch v := any(v).(type) {
	case float64:
		return any(v * f).(T)
	case complex128:
		return any(v * complex(f, 0)).(T)
	}
	var zero T
	return zero
}

// ============================================================
// Polynomial
// ============================================================

// Polynomial is a dense polynomial with coefficients stored in ascending
// powers:
//
//	P(x) = coef[0] + coef[1]·x + coef[2]·x² + ... + coef[n]·xⁿ
//
// A Polynomial is an immutable value: every transformation returns a new
// one, and all operations are safe for concurrent use.
type Polynomial[T Coeff] struct {
	coef []T
}

// New builds a polynomial from coefficients given in ascending powers.
// It fails with ErrInvalidCoefficients if any coefficient is NaN or
// infinite.
func New[T Coeff](coef ...T) (*Polynomial[T], error) {
	for _, c := range coef {
		if !isFinite(c) {
			return nil, ErrInvalidCoefficients
		}
	}
	return &Polynomial[T]{coef: append([]T(nil), coef...)}, nil
}

// Degree returns the polynomial's degree, len(coef)-1.
// The empty polynomial has degree -1.
func (p *Polynomial[T]) Degree() int { return len(p.coef) - 1 }

// Coef returns a copy of the coefficients in ascending powers.
func (p *Polynomial[T]) Coef() []T { return append([]T(nil), p.coef...) }

// Trim returns a copy of p with trailing zero coefficients removed.
// A single-coefficient polynomial is left as is; a polynomial whose
// coefficients are all zero trims to the canonical [0].
func (p *Polynomial[T]) Trim() *Polynomial[T] {
	n := len(p.coef)
	for n > 1 && isZero(p.coef[n-1]) {
		n--
	}
	return &Polynomial[T]{coef: append([]T(nil), p.coef[:n]...)}
}

// String renders the polynomial in descending powers, skipping zero terms.
func (p *Polynomial[T]) String() string {
	var b strings.Builder
	first := true
	for i := len(p.coef) - 1; i >= 0; i-- {
		if isZero(p.coef[i]) && len(p.coef) > 1 {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		first = false
		fmt.Fprintf(&b, "%v", p.coef[i])
		if i > 0 {
			fmt.Fprintf(&b, "x^%d", i)
		}
	}
	if first {
		return "0"
	}
	return b.String()
}

// ============================================================
// Evaluation (Horner's scheme)
// ============================================================

// Eval evaluates the polynomial at x using Horner's scheme: n
// multiplications and n additions for a degree-n polynomial. The empty
// polynomial evaluates to zero. x is not validated; NaN and infinite
// inputs propagate IEEE semantics.
func (p *Polynomial[T]) Eval(x T) T {
	var res T
	if len(p.coef) == 0 {
		return res
	}
	res = p.coef[len(p.coef)-1]
	for i := len(p.coef) - 1; i >= 1; i-- {
		res = p.coef[i-1] + x*res
	}
	return res
}

// ============================================================
// Derivatives (synthetic division)
// ============================================================

// EvalDerivs evaluates the polynomial and its derivatives at x in a single
// pass of nested synthetic division, returning
//
//	[P(x), P′(x), P″(x), ..., P⁽ⁿ⁻¹⁾(x)]
//
// Requested orders beyond the polynomial's degree are identically zero.
// As with Eval, x is not validated.
func (p *Polynomial[T]) EvalDerivs(x T, n int) []T {
	res := make([]T, n)
	if n == 0 || len(p.coef) == 0 {
		return res
	}

	degree := len(p.coef) - 1
	nmax := min(len(p.coef), n) - 1

	for j := 0; j <= nmax; j++ {
		res[j] = p.coef[degree]
	}

	for i := 0; i < degree; i++ {
		k := degree - i
		res[0] = x*res[0] + p.coef[k-1]
		jmax := nmax
		if k <= nmax {
			jmax = k - 1
		}
		for j := 1; j <= jmax; j++ {
			res[j] = x*res[j] + res[j-1]
		}
	}

	// The pass above leaves res[j] in divided-difference form; multiply by
	// the running factorial to obtain the true derivative values.
	f := 1.0
	for j := 2; j <= nmax; j++ {
		f *= float64(j)
		res[j] = scale(res[j], f)
	}
	return res
}
