package secretshare

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
)

// checkValueRange validates that a secret or share value fits the supported
// fields: positive and at most one below the largest table prime.
func checkValueRange(value *big.Int) error {
	if value.Sign() < 1 {
		return fmt.Errorf("%w: value must be positive", ErrOutOfRange)
	}
	if value.Cmp(maxFieldValue) > 0 {
		return fmt.Errorf("%w: value exceeds the largest supported field", ErrOutOfRange)
	}

	return nil
}

// Secret holds the value protected by a split, stored as its minimal
// big-endian bytes.
type Secret struct {
	value []byte
}

// NewSecret builds a Secret from an integer value.
func NewSecret(value *big.Int) (*Secret, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: nil value", ErrTypeMismatch)
	}

	if err := checkValueRange(value); err != nil {
		return nil, err
	}

	return &Secret{value: value.Bytes()}, nil
}

// SecretFromBytes builds a Secret from its wire form: minimal big-endian
// bytes without a leading zero.
func SecretFromBytes(data []byte) (*Secret, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrTypeMismatch)
	}
	if data[0] == 0 {
		return nil, fmt.Errorf("%w: leading zero byte", ErrTypeMismatch)
	}

	if err := checkValueRange(new(big.Int).SetBytes(data)); err != nil {
		return nil, err
	}

	return &Secret{value: bytes.Clone(data)}, nil
}

// SecretFromHex builds a Secret from the hex form of its wire bytes. An 0x
// prefix and odd-length input are accepted.
func SecretFromHex(text string) (*Secret, error) {
	data, err := parseHexString(text)
	if err != nil {
		return nil, err
	}

	return SecretFromBytes(data)
}

// SecretFromBase64 builds a Secret from the base64 form of its wire bytes.
func SecretFromBase64(text string) (*Secret, error) {
	data, err := parseBase64String(text)
	if err != nil {
		return nil, err
	}

	return SecretFromBytes(data)
}

// GenerateSecret draws a fresh Secret of at most bits length from random.
// Zero draws are rejected and redrawn, since a secret must be positive.
func GenerateSecret(random io.Reader, bits int) (*Secret, error) {
	for attempt := 0; attempt < maxRandomAttempts; attempt++ {
		value, err := RandomInt(random, bits)
		if err != nil {
			return nil, err
		}

		if value.Sign() > 0 {
			return &Secret{value: value.Bytes()}, nil
		}
	}

	return nil, fmt.Errorf("%w: rejection sampling gave no positive value in %d attempts", ErrOutOfRange, maxRandomAttempts)
}

// RandomSecret draws a fresh Secret at the largest supported security level
// from the platform randomness source.
func RandomSecret() (*Secret, error) {
	return GenerateSecret(rand.Reader, MaxBits())
}

// Bytes returns a copy of the minimal big-endian wire bytes.
func (s *Secret) Bytes() []byte {
	return bytes.Clone(s.value)
}

// Int returns the value as a fresh big integer.
func (s *Secret) Int() *big.Int {
	return new(big.Int).SetBytes(s.value)
}

// BitLen returns the length of the value in bits.
func (s *Secret) BitLen() int {
	return s.Int().BitLen()
}

// Hex returns the hex form of the wire bytes.
func (s *Secret) Hex() string {
	return hex.EncodeToString(s.value)
}

// Base64 returns the base64 form of the wire bytes.
func (s *Secret) Base64() string {
	return base64.StdEncoding.EncodeToString(s.value)
}

// String renders the secret for debugging with its decimal value.
func (s *Secret) String() string {
	return fmt.Sprintf("Secret(value=%s)", s.Int().String())
}

// Equal reports whether both secrets hold the same value.
func (s *Secret) Equal(other *Secret) bool {
	if other == nil {
		return false
	}

	return bytes.Equal(s.value, other.value)
}

// Clone returns an independent copy of the secret.
func (s *Secret) Clone() *Secret {
	return &Secret{value: bytes.Clone(s.value)}
}
