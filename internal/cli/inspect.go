package cli

import (
	"errors"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/vitalvas/secretshare"
	"github.com/vitalvas/secretshare/internal/xentropy"
)

func (a *app) newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <share|secret>",
		Short: "Describe an encoded share or secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			report, err := a.inspect(args[0])
			if err != nil {
				return err
			}

			return a.printer().PrintReport(report)
		},
	}

	return cmd
}

// inspect decodes the input as a share first, then as a secret, and
// reports the field parameters either way.
func (a *app) inspect(text string) (InspectReport, error) {
	var (
		kind  string
		point int
		value *big.Int
	)

	if share, err := decodeShare(text, a.conf.Format); err == nil {
		kind = "share"
		point = share.Point()
		value = share.Value()
	} else if secret, err := decodeSecret(text, a.conf.Format); err == nil {
		kind = "secret"
		value = secret.Int()
	} else {
		return InspectReport{}, errors.New("input is neither a share nor a secret")
	}

	level, err := secretshare.ClosestBitsForValue(value)
	if err != nil {
		return InspectReport{}, err
	}

	data := value.Bytes()

	return InspectReport{
		Kind:    kind,
		Point:   point,
		Bits:    value.BitLen(),
		Size:    len(data),
		Level:   level,
		Entropy: xentropy.Shannon(data),
		Weak:    xentropy.Weak(data),
	}, nil
}
