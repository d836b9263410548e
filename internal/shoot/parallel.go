package shoot

import (
	"context"
	"sync"

	"schrod/internal/quantum"
)

// SolveSpectrum solves a set of quantum numbers concurrently, one goroutine
// per state. Calls share only the read-only potential, so no coordination
// is needed beyond the final join.
//
// Results and errors are reported per state, index-aligned with numbers: a
// state that fails to converge does not abort its siblings, letting callers
// skip it or retry with a wider bracket.
func SolveSpectrum(ctx context.Context, mhdx2 float64, v []float64, seed Seed, bracket quantum.Bracket, numbers []int, maxIter int) ([]Result, []error) {
	results := make([]Result, len(numbers))
	errs := make([]error, len(numbers))

	var wg sync.WaitGroup
	for i, n := range numbers {
		wg.Add(1)
		go func(idx, target int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = SolveBracket(mhdx2, v, seed, bracket, target, maxIter)
		}(i, n)
	}
	wg.Wait()

	return results, errs
}
