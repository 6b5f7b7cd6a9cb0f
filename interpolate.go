package secretshare

import (
	"fmt"
	"math/big"
)

// lagrangeInterpolate computes the value at x of the unique polynomial of
// degree len(xs)-1 passing through the points (xs[i], ys[i]), modulo prime.
//
// Numerators and denominators of the Lagrange basis terms are accumulated
// as exact integers and divided in the field only once per term, so no
// intermediate division is inexact. The x-coordinates must be pairwise
// distinct: a duplicate zeroes a basis denominator and means the caller
// failed to deduplicate, so it panics instead of returning an error.
func lagrangeInterpolate(x *big.Int, xs, ys []*big.Int, prime *big.Int) (*big.Int, error) {
	if prime == nil || prime.Cmp(bigTwo) < 0 {
		return nil, fmt.Errorf("%w: prime must be at least 2", ErrInvalidField)
	}

	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i].Cmp(xs[j]) == 0 {
				panic("secretshare: duplicate interpolation points")
			}
		}
	}

	k := len(xs)
	nums := make([]*big.Int, k)
	dens := make([]*big.Int, k)

	for i := range k {
		numTerms := make([]*big.Int, 0, k-1)
		denTerms := make([]*big.Int, 0, k-1)

		for j := range k {
			if j == i {
				continue
			}

			numTerms = append(numTerms, new(big.Int).Sub(x, xs[j]))
			denTerms = append(denTerms, new(big.Int).Sub(xs[i], xs[j]))
		}

		nums[i] = product(numTerms)
		dens[i] = product(denTerms)
	}

	den := product(dens)

	num := big.NewInt(0)
	for i := range k {
		term := new(big.Int).Mul(nums[i], den)
		term.Mul(term, ys[i])
		term.Mod(term, prime)

		quot, err := modDiv(term, dens[i], prime)
		if err != nil {
			return nil, err
		}

		num.Add(num, quot)
	}

	result, err := modDiv(num, den, prime)
	if err != nil {
		return nil, err
	}

	result.Add(result, prime)
	return result.Mod(result, prime), nil
}

// interpolateAtZero recovers the constant term of the polynomial passing
// through the given points: the secret of a split.
func interpolateAtZero(xs, ys []*big.Int, prime *big.Int) (*big.Int, error) {
	return lagrangeInterpolate(new(big.Int), xs, ys, prime)
}
