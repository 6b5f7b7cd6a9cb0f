package secretshare

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShare(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		share, err := NewShare(2, big.NewInt(1633902946))
		require.NoError(t, err)

		assert.Equal(t, 2, share.Point())
		assert.Equal(t, int64(1633902946), share.Value().Int64())
	})

	t.Run("largest point", func(t *testing.T) {
		share, err := NewShare(MaxPoint(), big.NewInt(1))
		require.NoError(t, err)
		assert.Equal(t, 8191, share.Point())
	})

	t.Run("zero point", func(t *testing.T) {
		_, err := NewShare(0, big.NewInt(1))
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("negative point", func(t *testing.T) {
		_, err := NewShare(-1, big.NewInt(1))
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("point beyond the table", func(t *testing.T) {
		_, err := NewShare(MaxPoint()+1, big.NewInt(1))
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("nil value", func(t *testing.T) {
		_, err := NewShare(1, nil)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("zero value", func(t *testing.T) {
		_, err := NewShare(1, big.NewInt(0))
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("value beyond the largest field", func(t *testing.T) {
		tooBig := new(big.Int).Add(MaxValue(), bigOne)
		_, err := NewShare(1, tooBig)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestShareBytes(t *testing.T) {
	t.Run("low point", func(t *testing.T) {
		share, err := NewShare(2, big.NewInt(1633902946))
		require.NoError(t, err)
		assert.Equal(t, []byte{0x02, 0x00, 0x61, 0x63, 0x61, 0x62}, share.Bytes())
	})

	t.Run("point spans both prefix bytes", func(t *testing.T) {
		share, err := NewShare(8191, big.NewInt(1))
		require.NoError(t, err)
		assert.Equal(t, []byte{0xff, 0x1f, 0x01}, share.Bytes())
	})
}

func TestShareFromBytes(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		share, err := ShareFromBytes([]byte{0x02, 0x00, 0x61, 0x63, 0x61, 0x62})
		require.NoError(t, err)

		assert.Equal(t, 2, share.Point())
		assert.Equal(t, int64(1633902946), share.Value().Int64())
	})

	t.Run("point prefix is little endian", func(t *testing.T) {
		share, err := ShareFromBytes([]byte{0xff, 0x1f, 0x01})
		require.NoError(t, err)

		assert.Equal(t, 8191, share.Point())
		assert.Equal(t, int64(1), share.Value().Int64())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ShareFromBytes(nil)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("prefix only", func(t *testing.T) {
		_, err := ShareFromBytes([]byte{0x02, 0x00})
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("zero point", func(t *testing.T) {
		_, err := ShareFromBytes([]byte{0x00, 0x00, 0x01})
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("zero value", func(t *testing.T) {
		_, err := ShareFromBytes([]byte{0x02, 0x00, 0x00})
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestShareFromHex(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "plain", text: "020061636162"},
		{name: "0x prefix", text: "0x020061636162"},
		{name: "odd length restores the dropped nibble", text: "20061636162"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share, err := ShareFromHex(tt.text)
			require.NoError(t, err)

			assert.Equal(t, 2, share.Point())
			assert.Equal(t, int64(1633902946), share.Value().Int64())
		})
	}

	t.Run("not hex", func(t *testing.T) {
		_, err := ShareFromHex("zz")
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestShareFromBase64(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		share, err := ShareFromBase64("AgBhY2Fi")
		require.NoError(t, err)

		assert.Equal(t, 2, share.Point())
		assert.Equal(t, int64(1633902946), share.Value().Int64())
	})

	t.Run("not base64", func(t *testing.T) {
		_, err := ShareFromBase64("!!!")
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestShareEncodings(t *testing.T) {
	share, err := NewShare(2, big.NewInt(1633902946))
	require.NoError(t, err)

	assert.Equal(t, "020061636162", share.Hex())
	assert.Equal(t, "AgBhY2Fi", share.Base64())
	assert.Equal(t, "Share(point=2, value=1633902946)", share.String())
}

func TestShareEqual(t *testing.T) {
	first, err := NewShare(2, big.NewInt(1633902946))
	require.NoError(t, err)

	second, err := NewShare(2, big.NewInt(1633902946))
	require.NoError(t, err)

	differentPoint, err := NewShare(3, big.NewInt(1633902946))
	require.NoError(t, err)

	differentValue, err := NewShare(2, big.NewInt(7))
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.False(t, first.Equal(differentPoint))
	assert.False(t, first.Equal(differentValue))
	assert.False(t, first.Equal(nil))
}

func TestShareClone(t *testing.T) {
	share, err := NewShare(2, big.NewInt(1633902946))
	require.NoError(t, err)

	clone := share.Clone()
	assert.True(t, share.Equal(clone))

	clone.value[0] = 0xff
	assert.False(t, share.Equal(clone))
}

func TestShareRoundTrip(t *testing.T) {
	value, err := RandomInt(rand.Reader, 512)
	require.NoError(t, err)
	if value.Sign() == 0 {
		value = big.NewInt(1)
	}

	share, err := NewShare(77, value)
	require.NoError(t, err)

	fromBytes, err := ShareFromBytes(share.Bytes())
	require.NoError(t, err)
	assert.True(t, share.Equal(fromBytes))

	fromHex, err := ShareFromHex(share.Hex())
	require.NoError(t, err)
	assert.True(t, share.Equal(fromHex))

	fromBase64, err := ShareFromBase64(share.Base64())
	require.NoError(t, err)
	assert.True(t, share.Equal(fromBase64))
}
