package secretshare

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// EncodeInt returns the base64 form of the integer's minimal big-endian
// bytes, matching the on-disk representation of the prime table.
func EncodeInt(value *big.Int) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%w: nil value", ErrTypeMismatch)
	}
	if value.Sign() < 0 {
		return "", fmt.Errorf("%w: negative value", ErrOutOfRange)
	}

	return base64.StdEncoding.EncodeToString(value.Bytes()), nil
}

// DecodeInt reverses EncodeInt.
func DecodeInt(text string) (*big.Int, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, errors.Join(ErrTypeMismatch, err)
	}

	return new(big.Int).SetBytes(data), nil
}

// parseHexString decodes hex text into bytes, additionally accepting an
// optional 0x prefix and odd-length input, which is left-padded with a zero
// nibble.
func parseHexString(text string) ([]byte, error) {
	if data, err := hex.DecodeString(text); err == nil {
		return data, nil
	}

	cleaned := strings.TrimPrefix(text, "0x")
	if len(cleaned)%2 != 0 {
		cleaned = "0" + cleaned
	}

	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, errors.Join(ErrTypeMismatch, err)
	}

	return data, nil
}

// parseBase64String decodes standard padded base64 text into bytes.
func parseBase64String(text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, errors.Join(ErrTypeMismatch, err)
	}

	return data, nil
}
