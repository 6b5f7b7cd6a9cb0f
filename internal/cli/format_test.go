package cli

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/secretshare"
)

func TestEncodeDecodeShare(t *testing.T) {
	share, err := secretshare.NewShare(2, big.NewInt(1633902946))
	require.NoError(t, err)

	tests := []struct {
		name    string
		format  string
		encoded string
	}{
		{name: "base64", format: formatBase64, encoded: "AgBhY2Fi"},
		{name: "hex", format: formatHex, encoded: "020061636162"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.encoded, encodeShare(share, test.format))

			decoded, err := decodeShare(test.encoded, test.format)
			require.NoError(t, err)
			assert.True(t, share.Equal(decoded))
		})
	}
}

func TestEncodeDecodeSecret(t *testing.T) {
	secret, err := secretshare.NewSecret(big.NewInt(1633902946))
	require.NoError(t, err)

	tests := []struct {
		name    string
		format  string
		encoded string
	}{
		{name: "base64", format: formatBase64, encoded: "YWNhYg=="},
		{name: "hex", format: formatHex, encoded: "61636162"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.encoded, encodeSecret(secret, test.format))

			decoded, err := decodeSecret(test.encoded, test.format)
			require.NoError(t, err)
			assert.True(t, secret.Equal(decoded))
		})
	}
}

func TestDecodeShareRejectsGarbage(t *testing.T) {
	_, err := decodeShare("not base64!", formatBase64)
	assert.Error(t, err)

	_, err = decodeShare("zz", formatHex)
	assert.Error(t, err)
}

func TestDecodeSecretRejectsGarbage(t *testing.T) {
	_, err := decodeSecret("not base64!", formatBase64)
	assert.Error(t, err)

	_, err = decodeSecret("zz", formatHex)
	assert.Error(t, err)
}
