package gopoly

import (
	"math"
	"sort"
)

// ============================================================
// Validators
// ============================================================

// checkOrder verifies that the coefficient count matches the given order.
func checkOrder[T Coeff](coef []T, order int) error {
	if len(coef) != order+1 {
		return &OrderError{Expected: order}
	}
	return nil
}

// checkRealCoef verifies that every coefficient has a zero imaginary part.
func checkRealCoef[T Coeff](coef []T) error {
	for _, c := range coef {
		if imagPart(c) != 0 {
			return ErrNotRealCoefficients
		}
	}
	return nil
}

// toReal projects a coefficient onto the real line.
func toReal[T Coeff](v T) (float64, error) {
	if imagPart(v) != 0 || !isFinite(v) {
		return 0, ErrComplexConversion
	}
	return realPart(v), nil
}

// realCoef projects a full coefficient sequence onto the real line.
func realCoef[T Coeff](coef []T) ([]float64, error) {
	out := make([]float64, len(coef))
	for i, c := range coef {
		r, err := toReal(c)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// ============================================================
// Linear solver
// ============================================================

// solveRealLinear solves ax+b = 0. The zero test on a is an exact
// floating-point comparison: a tiny but non-zero a yields a very large
// root, not an error.
func solveRealLinear(a, b float64) (float64, error) {
	if a == 0 {
		return 0, ErrConstantPolynomial
	}
	return -b / a, nil
}

// ============================================================
// Quadratic solver
// ============================================================

// solveRealQuadratic solves ax²+bx+c = 0 with real coefficients. With a=0
// the equation degenerates and is handed to the linear solver. For two
// distinct roots the "+" branch of the quadratic formula comes first.
func solveRealQuadratic(a, b, c float64) ([]float64, error) {
	if a == 0 {
		x, err := solveRealLinear(b, c)
		if err != nil {
			return nil, err
		}
		return []float64{x}, nil
	}

	disc := b*b - 4*a*c
	switch {
	case math.IsNaN(disc):
		return nil, ErrNaNDiscriminant
	case disc < 0:
		return nil, ErrNoRealRoots
	case disc == 0:
		return []float64{-b / (2 * a)}, nil
	default:
		sq := math.Sqrt(disc)
		return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}, nil
	}
}

// ============================================================
// Cubic solver
// ============================================================

// solveRealCubic solves the monic cubic x³+ax²+bx+c = 0, returning three
// real roots in ascending order. A simple root from the Cardano branch is
// replicated three times; the two complex conjugate roots are never
// reported.
func solveRealCubic(a, b, c float64) ([]float64, error) {
	q := a*a - 3*b
	r := 2*a*a*a - 9*a*b + 27*c

	Q := q / 9
	R := r / 54
	Q3 := Q * Q * Q
	R2 := R * R

	// CR2 and CQ3 compare R² against Q³ in integer-scaled form, so the
	// double-root boundary is not blurred by the rounding of two
	// independent cube and square computations.
	CR2 := 729 * r * r
	CQ3 := 2916 * q * q * q

	switch {
	case r == 0 && q == 0:
		// Triple root.
		x := -a / 3
		return []float64{x, x, x}, nil

	case CR2 == CQ3:
		// One simple and one double root; the sign of R selects which
		// extreme the simple root sits on.
		sqrtQ := math.Sqrt(Q)
		var roots []float64
		if R > 0 {
			roots = []float64{-2*sqrtQ - a/3, sqrtQ - a/3, sqrtQ - a/3}
		} else {
			roots = []float64{-sqrtQ - a/3, -sqrtQ - a/3, 2*sqrtQ - a/3}
		}
		sort.Float64s(roots)
		return roots, nil

	case R2 < Q3:
		// Three distinct real roots, by Viète's trigonometric form. All
		// intermediate quantities stay bounded, which keeps this branch
		// stable near the boundary.
		theta := math.Acos(sign(R) * math.Sqrt(R2/Q3))
		norm := -2 * math.Sqrt(Q)
		roots := []float64{
			norm*math.Cos(theta/3) - a/3,
			norm*math.Cos((theta+2*math.Pi)/3) - a/3,
			norm*math.Cos((theta-2*math.Pi)/3) - a/3,
		}
		sort.Float64s(roots)
		return roots, nil

	default:
		// One real root, by Cardano's form.
		A := -sign(R) * math.Cbrt(math.Abs(R)+math.Sqrt(R2-Q3))
		B := Q / A
		x := A + B - a/3
		return []float64{x, x, x}, nil
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// ============================================================
// Root finding on Polynomial
// ============================================================

// SolveRealQuadratic finds the real roots of a degree-2 polynomial with
// real coefficients. With a zero leading coefficient the equation
// degenerates to a linear one and yields a single root.
func (p *Polynomial[T]) SolveRealQuadratic() ([]float64, error) {
	if err := checkOrder(p.coef, 2); err != nil {
		return nil, err
	}
	if err := checkRealCoef(p.coef); err != nil {
		return nil, err
	}
	coef, err := realCoef(p.coef)
	if err != nil {
		return nil, err
	}
	return solveRealQuadratic(coef[2], coef[1], coef[0])
}

// SolveRealCubic finds the real roots of a degree-3 polynomial with real
// coefficients, sorted ascending. The polynomial is normalized to monic
// form before solving; with a zero leading coefficient the equation
// degenerates to a quadratic one.
func (p *Polynomial[T]) SolveRealCubic() ([]float64, error) {
	if err := checkOrder(p.coef, 3); err != nil {
		return nil, err
	}
	if err := checkRealCoef(p.coef); err != nil {
		return nil, err
	}
	coef, err := realCoef(p.coef)
	if err != nil {
		return nil, err
	}
	if coef[3] == 0 {
		return solveRealQuadratic(coef[2], coef[1], coef[0])
	}
	return solveRealCubic(coef[2]/coef[3], coef[1]/coef[3], coef[0]/coef[3])
}
