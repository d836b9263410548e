// Package tridiag solves complex tridiagonal linear systems by forward
// elimination and back-substitution (the Thomas algorithm).
package tridiag

import (
	"fmt"
	"math/cmplx"

	"schrod/internal/quantum"
)

// pivotFloor is the smallest pivot magnitude elimination will divide by.
const pivotFloor = 1e-30

// Solve returns x satisfying the system with sub-diagonal sub (length n-1),
// diagonal diag (length n), super-diagonal sup (length n-1) and right-hand
// side rhs (length n).
//
// No pivoting is performed: callers are expected to supply diagonally
// dominant systems, as the Crank-Nicolson operators are by construction.
// A pivot below pivotFloor, or a non-finite value surfacing during
// back-substitution, reports ErrSingularSystem instead of propagating NaNs.
func Solve(sub, diag, sup, rhs []complex128) ([]complex128, error) {
	n := len(diag)
	if n < 2 {
		return nil, fmt.Errorf("%w: diagonal length %d", quantum.ErrDimensionMismatch, n)
	}
	if len(sub) != n-1 || len(sup) != n-1 || len(rhs) != n {
		return nil, fmt.Errorf("%w: sub=%d sup=%d rhs=%d for n=%d",
			quantum.ErrDimensionMismatch, len(sub), len(sup), len(rhs), n)
	}

	cp := make([]complex128, n-1)
	dp := make([]complex128, n)

	piv := diag[0]
	if cmplx.Abs(piv) < pivotFloor {
		return nil, fmt.Errorf("%w: pivot at row 0", quantum.ErrSingularSystem)
	}
	cp[0] = sup[0] / piv
	dp[0] = rhs[0] / piv

	for i := 1; i < n; i++ {
		piv = diag[i] - sub[i-1]*cp[i-1]
		if cmplx.Abs(piv) < pivotFloor {
			return nil, fmt.Errorf("%w: pivot at row %d", quantum.ErrSingularSystem, i)
		}
		if i < n-1 {
			cp[i] = sup[i] / piv
		}
		dp[i] = (rhs[i] - sub[i-1]*dp[i-1]) / piv
	}

	x := make([]complex128, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}

	for i, v := range x {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return nil, fmt.Errorf("%w: non-finite solution at index %d", quantum.ErrSingularSystem, i)
		}
	}
	return x, nil
}
