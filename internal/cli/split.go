package cli

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvas/secretshare"
	"github.com/vitalvas/secretshare/internal/xentropy"
)

func (a *app) newSplitCommand() *cobra.Command {
	var (
		threshold  int
		shareCount int
		bits       int
		random     bool
		encoded    bool
	)

	cmd := &cobra.Command{
		Use:   "split [secret]",
		Short: "Split a secret into shares",
		Long: "Split a secret into shares. The secret is taken from the argument,\n" +
			"or read from standard input when no argument is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("threshold") {
				a.conf.Threshold = threshold
			}

			if cmd.Flags().Changed("shares") {
				a.conf.ShareCount = shareCount
			}

			if err := a.conf.Validate(); err != nil {
				return err
			}

			secret, err := a.splitSecret(args, random, encoded, bits)
			if err != nil {
				return err
			}

			engine, err := secretshare.NewWithSecret(a.conf.Threshold, a.conf.ShareCount, secret)
			if err != nil {
				return err
			}

			shares, err := engine.Split()
			if err != nil {
				return err
			}

			level, err := secretshare.ClosestBitsForValue(secret.Int())
			if err != nil {
				return err
			}

			a.logger.Info("secret split into shares",
				"threshold", a.conf.Threshold,
				"shares", len(shares),
				"level", level)

			encodedShares := make([]string, 0, len(shares))
			for _, share := range shares {
				encodedShares = append(encodedShares, encodeShare(share, a.conf.Format))
			}

			return a.printer().PrintShares(encodedShares)
		},
	}

	cmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "shares required to recover the secret")
	cmd.Flags().IntVarP(&shareCount, "shares", "n", 0, "shares to produce")
	cmd.Flags().BoolVar(&random, "random", false, "generate a random secret instead of reading one")
	cmd.Flags().IntVar(&bits, "bits", 0, "bit length for --random (defaults to the largest field)")
	cmd.Flags().BoolVar(&encoded, "encoded", false, "treat the input as an encoded secret instead of raw bytes")

	return cmd
}

// splitSecret resolves the secret to split from the flags, the argument or
// standard input. Raw input is checked for predictable content.
func (a *app) splitSecret(args []string, random, encoded bool, bits int) (*secretshare.Secret, error) {
	if random {
		if bits == 0 {
			bits = secretshare.MaxBits()
		}

		secret, err := secretshare.GenerateSecret(rand.Reader, bits)
		if err != nil {
			return nil, err
		}

		fmt.Fprintf(a.stderr, "generated secret (%s): %s\n", a.conf.Format, encodeSecret(secret, a.conf.Format))

		return secret, nil
	}

	var raw []byte
	if len(args) > 0 {
		raw = []byte(args[0])
	} else {
		line, err := readSecretInput(a.stdin, a.stderr, "Secret: ")
		if err != nil {
			return nil, err
		}

		raw = line
	}

	if len(raw) == 0 {
		return nil, errors.New("empty secret")
	}

	if encoded {
		return decodeSecret(string(raw), a.conf.Format)
	}

	if xentropy.Weak(raw) {
		a.logger.Warn("secret looks predictable",
			"entropy", fmt.Sprintf("%.2f", xentropy.Shannon(raw)))
	}

	return secretshare.SecretFromBytes(raw)
}
