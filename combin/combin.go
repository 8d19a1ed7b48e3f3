// Package combin provides integer combinatorics with overflow checking.
//
// All results are exact int64 values. Inputs that are valid but whose
// result (or an intermediate product on the way to it) does not fit in
// an int64 fail with an overflow error, distinct from the
// invalid-parameter error raised for malformed inputs.
package combin

import (
	"math"

	"github.com/probkit/probkit/errz"
)

// Factorial returns n!. It fails for negative n and reports overflow
// for n > 20, the largest factorial representable in an int64. The
// accumulation is iterative, keeping stack use constant.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, errz.InvalidParameterf("n", "must be non-negative, got %d", n)
	}
	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		if result > math.MaxInt64/i {
			return 0, errz.Overflowf("factorial(%d) exceeds the int64 range", n)
		}
		result *= i
	}
	return result, nil
}

// Permutations returns the number of ordered arrangements of r items
// drawn from n, the product n·(n-1)·…·(n-r+1). Computing the falling
// product directly instead of dividing two factorials delays overflow.
func Permutations(n, r int) (int64, error) {
	if err := checkArrangement(n, r); err != nil {
		return 0, err
	}
	result := int64(1)
	for i := 0; i < r; i++ {
		factor := int64(n - i)
		if factor > 0 && result > math.MaxInt64/factor {
			return 0, errz.Overflowf("permutations(%d, %d) exceeds the int64 range", n, r)
		}
		result *= factor
	}
	return result, nil
}

// Combinations returns the number of unordered selections of r items
// drawn from n. The reflection r := min(r, n-r) and the incremental
// multiply-then-divide recurrence keep every intermediate result an
// exact integer and minimize overflow risk. Overflow is detected on
// intermediate products, so a handful of results near the top of the
// int64 range are rejected even though the final value would fit.
func Combinations(n, r int) (int64, error) {
	if err := checkArrangement(n, r); err != nil {
		return 0, err
	}
	if r > n-r {
		r = n - r
	}
	result := int64(1)
	for i := 0; i < r; i++ {
		factor := int64(n - i)
		if result > math.MaxInt64/factor {
			return 0, errz.Overflowf("combinations(%d, %d) exceeds the int64 range", n, r)
		}
		result = result * factor / int64(i+1)
	}
	return result, nil
}

// BinomialCoefficient returns "n choose k". It is an alias of
// Combinations under the name conventional in distribution formulas.
func BinomialCoefficient(n, k int) (int64, error) {
	return Combinations(n, k)
}

func checkArrangement(n, r int) error {
	if n < 0 {
		return errz.InvalidParameterf("n", "must be non-negative, got %d", n)
	}
	if r < 0 {
		return errz.InvalidParameterf("r", "must be non-negative, got %d", r)
	}
	if r > n {
		return errz.InvalidParameterf("r", "must not exceed n, got r=%d n=%d", r, n)
	}
	return nil
}
