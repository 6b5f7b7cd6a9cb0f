package secretshare

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
	"math/bits"
)

// sharePointWidth is the byte width of the point prefix in the share wire
// form, sized to fit the largest point. It changes only when the prime
// table grows past the next byte boundary.
var sharePointWidth = (bits.Len(uint(MaxBits()-1)) + 7) / 8

// MaxPoint returns the largest share point, one below the largest security
// level.
func MaxPoint() int {
	return MaxBits() - 1
}

// checkPointRange validates that a share point lies within [1, MaxPoint()].
func checkPointRange(point int) error {
	if point < 1 || point > MaxPoint() {
		return fmt.Errorf("%w: point must be within [1, %d]", ErrOutOfRange, MaxPoint())
	}

	return nil
}

// Share holds one fragment of a split secret: the point the polynomial was
// evaluated at and the resulting field value. Its wire form is the point in
// little-endian fixed-width bytes followed by the minimal big-endian value
// bytes.
type Share struct {
	point int
	value []byte
}

// NewShare builds a Share from a point and a field value.
func NewShare(point int, value *big.Int) (*Share, error) {
	if err := checkPointRange(point); err != nil {
		return nil, err
	}

	if value == nil {
		return nil, fmt.Errorf("%w: nil value", ErrTypeMismatch)
	}

	if err := checkValueRange(value); err != nil {
		return nil, err
	}

	return &Share{point: point, value: value.Bytes()}, nil
}

// ShareFromBytes builds a Share from its wire form.
func ShareFromBytes(data []byte) (*Share, error) {
	if len(data) <= sharePointWidth {
		return nil, fmt.Errorf("%w: share needs at least %d bytes", ErrTypeMismatch, sharePointWidth+1)
	}

	point := 0
	for i := range sharePointWidth {
		point |= int(data[i]) << (8 * i)
	}

	return NewShare(point, new(big.Int).SetBytes(data[sharePointWidth:]))
}

// ShareFromHex builds a Share from the hex form of its wire bytes. An 0x
// prefix and odd-length input are accepted.
func ShareFromHex(text string) (*Share, error) {
	data, err := parseHexString(text)
	if err != nil {
		return nil, err
	}

	return ShareFromBytes(data)
}

// ShareFromBase64 builds a Share from the base64 form of its wire bytes.
func ShareFromBase64(text string) (*Share, error) {
	data, err := parseBase64String(text)
	if err != nil {
		return nil, err
	}

	return ShareFromBytes(data)
}

// Point returns the evaluation point.
func (s *Share) Point() int {
	return s.point
}

// Value returns the field value as a fresh big integer.
func (s *Share) Value() *big.Int {
	return new(big.Int).SetBytes(s.value)
}

// Bytes returns the wire form of the share.
func (s *Share) Bytes() []byte {
	buf := make([]byte, sharePointWidth, sharePointWidth+len(s.value))
	for i := range sharePointWidth {
		buf[i] = byte(s.point >> (8 * i))
	}

	return append(buf, s.value...)
}

// Hex returns the hex form of the wire bytes.
func (s *Share) Hex() string {
	return hex.EncodeToString(s.Bytes())
}

// Base64 returns the base64 form of the wire bytes.
func (s *Share) Base64() string {
	return base64.StdEncoding.EncodeToString(s.Bytes())
}

// String renders the share for debugging with its decimal value.
func (s *Share) String() string {
	return fmt.Sprintf("Share(point=%d, value=%s)", s.point, s.Value().String())
}

// Equal reports whether both shares hold the same point and value.
func (s *Share) Equal(other *Share) bool {
	if other == nil {
		return false
	}

	return s.point == other.point && bytes.Equal(s.value, other.value)
}

// Clone returns an independent copy of the share.
func (s *Share) Clone() *Share {
	return &Share{point: s.point, value: bytes.Clone(s.value)}
}
