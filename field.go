package secretshare

import (
	"fmt"
	"math/big"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// extendedGCD computes Bézout coefficients (x, y) such that
// a*x + b*y = gcd(a, b). Inputs may be negative.
func extendedGCD(a, b *big.Int) (*big.Int, *big.Int) {
	x, lastX := big.NewInt(0), big.NewInt(1)
	y, lastY := big.NewInt(1), big.NewInt(0)

	a = new(big.Int).Set(a)
	b = new(big.Int).Set(b)

	for b.Sign() != 0 {
		quot, rem := new(big.Int).DivMod(a, b, new(big.Int))
		a, b = b, rem

		x, lastX = new(big.Int).Sub(lastX, new(big.Int).Mul(quot, x)), x
		y, lastY = new(big.Int).Sub(lastY, new(big.Int).Mul(quot, y)), y
	}

	return lastX, lastY
}

// modDiv computes num * inverse(den) in the field defined by prime,
// normalized into [0, prime). The inverse comes from the first Bézout
// coefficient of extendedGCD(den, prime); the caller must ensure den does
// not reduce to zero modulo prime.
func modDiv(num, den, prime *big.Int) (*big.Int, error) {
	if prime == nil || prime.Cmp(bigTwo) < 0 {
		return nil, fmt.Errorf("%w: prime must be at least 2", ErrInvalidField)
	}

	inv, _ := extendedGCD(den, prime)

	result := new(big.Int).Mul(num, inv)
	return result.Mod(result, prime), nil
}

// product multiplies the values together, returning 1 for an empty input.
func product(values []*big.Int) *big.Int {
	result := big.NewInt(1)
	for _, value := range values {
		result.Mul(result, value)
	}
	return result
}
