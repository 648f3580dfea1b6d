package gopoly

import (
	"errors"
	"fmt"
)

// Sentinel errors for polynomial construction and solving. Solvers return
// these directly; callers match with errors.Is, and with errors.As for
// *OrderError.
var (
	// ErrInvalidCoefficients reports a NaN or infinite coefficient at
	// construction.
	ErrInvalidCoefficients = errors.New("gopoly: coefficients must not be NaN or infinite")

	// ErrNotRealCoefficients reports a non-zero imaginary part where a
	// real-only solver was requested.
	ErrNotRealCoefficients = errors.New("gopoly: polynomial must have real coefficients")

	// ErrConstantPolynomial reports that every coefficient above the
	// constant term is zero, leaving no equation to solve.
	ErrConstantPolynomial = errors.New("gopoly: polynomial is constant")

	// ErrNoRealRoots reports a negative quadratic discriminant.
	ErrNoRealRoots = errors.New("gopoly: polynomial has no real roots")

	// ErrNaNDiscriminant reports an unorderable discriminant. Unreachable
	// for polynomials built through New, which rejects non-finite
	// coefficients.
	ErrNaNDiscriminant = errors.New("gopoly: discriminant calculation returned NaN")

	// ErrComplexConversion reports a complex value that cannot be
	// projected onto the real line.
	ErrComplexConversion = errors.New("gopoly: cannot convert complex value to real")
)

// OrderError reports a polynomial whose coefficient count does not match
// the order a solver expects.
type OrderError struct {
	Expected int
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("gopoly: polynomial must be of order %d", e.Expected)
}
