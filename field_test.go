package secretshare

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendedGCD(t *testing.T) {
	tests := []struct {
		name      string
		a, b      int64
		expectedX int64
		expectedY int64
	}{
		{"positive inputs", 240, 46, -9, 47},
		{"negative first input", -257, 7, -3, -110},
		{"coprime inputs", 3, 7, -2, 1},
		{"second input zero", 5, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := extendedGCD(big.NewInt(tt.a), big.NewInt(tt.b))
			assert.Equal(t, tt.expectedX, x.Int64())
			assert.Equal(t, tt.expectedY, y.Int64())
		})
	}
}

func TestExtendedGCDBezoutIdentity(t *testing.T) {
	pairs := [][2]int64{
		{240, 46},
		{-257, 7},
		{1633902946, 4294967311},
		{100, 7},
	}

	for _, pair := range pairs {
		a, b := big.NewInt(pair[0]), big.NewInt(pair[1])
		x, y := extendedGCD(a, b)

		// a*x + b*y must equal gcd(a, b)
		lhs := new(big.Int).Mul(a, x)
		lhs.Add(lhs, new(big.Int).Mul(b, y))

		gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
		assert.Equal(t, 0, lhs.CmpAbs(gcd), "a=%d b=%d", pair[0], pair[1])
	}
}

func TestModDiv(t *testing.T) {
	tests := []struct {
		name     string
		num      int64
		den      int64
		prime    int64
		expected int64
	}{
		{"division with inverse", 3, 256, 5, 3},
		{"normalized negative inverse", 1, 100, 7, 4},
		{"exact division", 10, 5, 7, 2},
		{"identity denominator", 9, 1, 11, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := modDiv(big.NewInt(tt.num), big.NewInt(tt.den), big.NewInt(tt.prime))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Int64())
		})
	}
}

func TestModDivRoundTrip(t *testing.T) {
	// (num/den)*den mod prime must give back num mod prime
	prime := big.NewInt(4294967311)
	num := big.NewInt(1633902946)
	den := big.NewInt(123456789)

	quot, err := modDiv(num, den, prime)
	require.NoError(t, err)

	back := new(big.Int).Mul(quot, den)
	back.Mod(back, prime)
	assert.Equal(t, 0, back.Cmp(num))
}

func TestModDivInvalidPrime(t *testing.T) {
	tests := []struct {
		name  string
		prime *big.Int
	}{
		{"prime one", big.NewInt(1)},
		{"prime zero", big.NewInt(0)},
		{"negative prime", big.NewInt(-7)},
		{"nil prime", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := modDiv(big.NewInt(1), big.NewInt(2), tt.prime)
			assert.ErrorIs(t, err, ErrInvalidField)
		})
	}
}

func TestModDivResultRange(t *testing.T) {
	prime := big.NewInt(7)

	for num := int64(-20); num <= 20; num++ {
		for den := int64(1); den < 7; den++ {
			result, err := modDiv(big.NewInt(num), big.NewInt(den), prime)
			require.NoError(t, err)
			assert.True(t, result.Sign() >= 0 && result.Cmp(prime) < 0,
				"modDiv(%d, %d, 7) = %s out of [0, 7)", num, den, result)
		}
	}
}

func TestProduct(t *testing.T) {
	tests := []struct {
		name     string
		values   []int64
		expected int64
	}{
		{"empty input", nil, 1},
		{"single value", []int64{5}, 5},
		{"several values", []int64{2, 3, 4}, 24},
		{"with negatives", []int64{-2, 3, -4}, 24},
		{"with zero", []int64{7, 0, 9}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make([]*big.Int, len(tt.values))
			for i, v := range tt.values {
				values[i] = big.NewInt(v)
			}

			result := product(values)
			assert.Equal(t, tt.expected, result.Int64())
		})
	}
}

func BenchmarkModDiv(b *testing.B) {
	num := big.NewInt(1633902946)
	den := big.NewInt(123456789)
	prime, err := Prime(128)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := modDiv(num, den, prime); err != nil {
			b.Fatal(err)
		}
	}
}
