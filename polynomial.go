package secretshare

import (
	"io"
	"math/big"
)

// polynomial represents a polynomial over a prime field.
// coefficients[0] is the constant term (the secret).
type polynomial struct {
	coefficients []*big.Int
}

// newPolynomial creates a polynomial with the given coefficients.
func newPolynomial(coefficients []*big.Int) *polynomial {
	return &polynomial{coefficients: coefficients}
}

// newRandomPolynomial creates a random polynomial of degree (threshold-1)
// with the given secret as the constant term. The threshold must be at
// least 1. Coefficients are drawn at the table level covering the secret,
// keeping every coefficient inside the field the polynomial is evaluated
// in; zero coefficients are allowed.
func newRandomPolynomial(random io.Reader, secret *big.Int, threshold int) (*polynomial, error) {
	bits, err := ClosestBitsForValue(secret)
	if err != nil {
		return nil, err
	}

	coefficients := make([]*big.Int, threshold)
	coefficients[0] = new(big.Int).Set(secret)

	for i := 1; i < threshold; i++ {
		coef, err := RandomInt(random, bits)
		if err != nil {
			return nil, err
		}
		coefficients[i] = coef
	}

	return &polynomial{coefficients: coefficients}, nil
}

// evaluate computes the polynomial at point x modulo prime using Horner's
// method, one multiply-add per coefficient from the highest degree down.
func (p *polynomial) evaluate(x, prime *big.Int) *big.Int {
	result := big.NewInt(0)

	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.coefficients[i])
		result.Mod(result, prime)
	}

	return result
}
