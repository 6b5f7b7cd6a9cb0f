package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitalvas/secretshare"
)

func (a *app) newCombineCommand() *cobra.Command {
	var (
		threshold  int
		shareCount int
		raw        bool
	)

	cmd := &cobra.Command{
		Use:   "combine [share ...]",
		Short: "Recover a secret from shares",
		Long: "Recover a secret from shares passed as arguments,\n" +
			"or read from standard input one per line.",
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

			lines := args
			if len(lines) == 0 {
				read, err := readLines(a.stdin)
				if err != nil {
					return err
				}

				lines = read
			}

			if len(lines) == 0 {
				return errors.New("no shares provided")
			}

			shares := make([]*secretshare.Share, 0, len(lines))
			for _, line := range lines {
				share, err := decodeShare(line, a.conf.Format)
				if err != nil {
					return fmt.Errorf("share %q: %w", line, err)
				}

				shares = append(shares, share)
			}

			count := a.conf.ShareCount
			if !cmd.Flags().Changed("shares") && len(shares) > count {
				count = len(shares)
			}

			engine, err := secretshare.New(a.conf.Threshold, count)
			if err != nil {
				return err
			}

			if err := engine.SetShares(shares); err != nil {
				return err
			}

			secret, err := engine.Combine()
			if err != nil {
				return err
			}

			a.logger.Info("secret recovered from shares",
				"shares", len(shares),
				"bits", secret.BitLen())

			if raw {
				_, err := a.stdout.Write(secret.Bytes())
				return err
			}

			return a.printer().PrintSecret(encodeSecret(secret, a.conf.Format))
		},
	}

	cmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "shares required to recover the secret")
	cmd.Flags().IntVarP(&shareCount, "shares", "n", 0, "shares the secret was split into")
	cmd.Flags().BoolVar(&raw, "raw", false, "write the recovered secret bytes verbatim")

	return cmd
}

// readLines collects non-blank lines until the input is exhausted.
func readLines(in io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		lines = append(lines, line)
	}

	return lines, scanner.Err()
}
