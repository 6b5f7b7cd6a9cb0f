package cli

import (
	"github.com/vitalvas/secretshare"
)

const (
	formatBase64 = "base64"
	formatHex    = "hex"
)

func encodeShare(share *secretshare.Share, format string) string {
	if format == formatHex {
		return share.Hex()
	}

	return share.Base64()
}

func encodeSecret(secret *secretshare.Secret, format string) string {
	if format == formatHex {
		return secret.Hex()
	}

	return secret.Base64()
}

func decodeShare(text, format string) (*secretshare.Share, error) {
	if format == formatHex {
		return secretshare.ShareFromHex(text)
	}

	return secretshare.ShareFromBase64(text)
}

func decodeSecret(text, format string) (*secretshare.Secret, error) {
	if format == formatHex {
		return secretshare.SecretFromHex(text)
	}

	return secretshare.SecretFromBase64(text)
}
