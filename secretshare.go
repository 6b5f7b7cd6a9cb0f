// Package secretshare splits secrets into shares and recovers them with
// Shamir secret sharing. A secret becomes the constant term of a random
// polynomial over a prime field, shares are evaluations of that polynomial
// at small points, and any threshold-sized subset of shares interpolates
// the secret back. Fewer shares reveal nothing.
package secretshare

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// SecretShare carries the parameters of one split or combine: the recovery
// threshold, the number of shares to produce, the secret, and the shares.
type SecretShare struct {
	threshold  int
	shareCount int
	secret     *Secret
	shares     []*Share
	random     io.Reader
}

// New builds an engine around a freshly generated secret at the largest
// supported security level.
func New(threshold, shareCount int) (*SecretShare, error) {
	secret, err := RandomSecret()
	if err != nil {
		return nil, err
	}

	return NewWithSecret(threshold, shareCount, secret)
}

// NewWithSecret builds an engine around an existing secret.
func NewWithSecret(threshold, shareCount int, secret *Secret) (*SecretShare, error) {
	s := &SecretShare{random: rand.Reader}

	if err := s.SetThreshold(threshold); err != nil {
		return nil, err
	}
	if err := s.SetShareCount(shareCount); err != nil {
		return nil, err
	}
	if err := s.SetSecret(secret); err != nil {
		return nil, err
	}

	return s, nil
}

// SetThreshold sets how many shares a combine needs. A threshold above the
// share count is allowed here and rejected by Split and Combine, so the two
// parameters can be adjusted in either order.
func (s *SecretShare) SetThreshold(threshold int) error {
	if threshold < 2 {
		return fmt.Errorf("%w: threshold must be at least 2", ErrConfiguration)
	}

	s.threshold = threshold
	return nil
}

// SetShareCount sets how many shares Split produces.
func (s *SecretShare) SetShareCount(count int) error {
	if count < 2 {
		return fmt.Errorf("%w: share count must be at least 2", ErrConfiguration)
	}

	s.shareCount = count
	return nil
}

// SetSecret replaces the secret and drops any shares held, since they no
// longer belong to it.
func (s *SecretShare) SetSecret(secret *Secret) error {
	if secret == nil {
		return fmt.Errorf("%w: nil secret", ErrTypeMismatch)
	}

	s.secret = secret.Clone()
	s.shares = nil
	return nil
}

// SetShares replaces the held shares, typically ahead of a Combine.
func (s *SecretShare) SetShares(shares []*Share) error {
	seen := make(map[int]struct{}, len(shares))
	for _, share := range shares {
		if share == nil {
			return fmt.Errorf("%w: nil share", ErrTypeMismatch)
		}

		if _, ok := seen[share.Point()]; ok {
			return fmt.Errorf("%w: duplicate share point %d", ErrConfiguration, share.Point())
		}
		seen[share.Point()] = struct{}{}
	}

	s.shares = cloneShares(shares)
	return nil
}

// Threshold returns how many shares a combine needs.
func (s *SecretShare) Threshold() int {
	return s.threshold
}

// ShareCount returns how many shares Split produces.
func (s *SecretShare) ShareCount() int {
	return s.shareCount
}

// Secret returns a copy of the held secret, or nil if there is none.
func (s *SecretShare) Secret() *Secret {
	if s.secret == nil {
		return nil
	}

	return s.secret.Clone()
}

// Shares returns copies of the held shares.
func (s *SecretShare) Shares() []*Share {
	return cloneShares(s.shares)
}

// MaxShareCount returns the most shares the held secret can be split into,
// one below its bit length. Zero if there is no secret.
func (s *SecretShare) MaxShareCount() int {
	if s.secret == nil {
		return 0
	}

	return s.secret.BitLen() - 1
}

// Split produces the configured number of shares from the held secret by
// evaluating a fresh random polynomial at the points 1 through the share
// count. The engine keeps the shares and also returns them.
func (s *SecretShare) Split() ([]*Share, error) {
	if s.secret == nil {
		return nil, fmt.Errorf("%w: no secret to split", ErrConfiguration)
	}
	if s.threshold > s.shareCount {
		return nil, fmt.Errorf("%w: threshold %d exceeds share count %d", ErrConfiguration, s.threshold, s.shareCount)
	}
	if max := s.MaxShareCount(); s.shareCount > max {
		return nil, fmt.Errorf("%w: share count %d exceeds the secret capacity %d", ErrConfiguration, s.shareCount, max)
	}

	prime, err := ClosestPrimeForValue(s.secret.Int())
	if err != nil {
		return nil, err
	}

	poly, err := newRandomPolynomial(s.random, s.secret.Int(), s.threshold)
	if err != nil {
		return nil, err
	}

	shares := make([]*Share, 0, s.shareCount)
	for point := 1; point <= s.shareCount; point++ {
		value := poly.evaluate(big.NewInt(int64(point)), prime)

		share, err := NewShare(point, value)
		if err != nil {
			return nil, err
		}

		shares = append(shares, share)
	}

	s.shares = shares
	return cloneShares(shares), nil
}

// Combine recovers the secret from the held shares by interpolating their
// polynomial at zero. The engine adopts the recovered secret, which drops
// the shares, and also returns it.
func (s *SecretShare) Combine() (*Secret, error) {
	if len(s.shares) < s.threshold {
		return nil, fmt.Errorf("%w: %d shares held, threshold is %d", ErrConfiguration, len(s.shares), s.threshold)
	}
	if len(s.shares) > s.shareCount {
		return nil, fmt.Errorf("%w: %d shares held, share count is %d", ErrConfiguration, len(s.shares), s.shareCount)
	}

	// Share values of a split sit strictly below the prime of the secret's
	// level, so sizing the field by the largest value lands on the same
	// prime the split used.
	largest := s.shares[0].Value()
	for _, share := range s.shares[1:] {
		if value := share.Value(); value.Cmp(largest) > 0 {
			largest = value
		}
	}

	prime, err := ClosestPrimeForValue(largest)
	if err != nil {
		return nil, err
	}

	xs := make([]*big.Int, len(s.shares))
	ys := make([]*big.Int, len(s.shares))
	for i, share := range s.shares {
		xs[i] = big.NewInt(int64(share.Point()))
		ys[i] = share.Value()
	}

	value, err := interpolateAtZero(xs, ys, prime)
	if err != nil {
		return nil, err
	}

	secret, err := NewSecret(value)
	if err != nil {
		return nil, err
	}

	if err := s.SetSecret(secret); err != nil {
		return nil, err
	}

	return secret, nil
}

// String renders the engine state for debugging.
func (s *SecretShare) String() string {
	return fmt.Sprintf("SecretShare(secret=%v, shareCount=%d, shares=%v, threshold=%d)",
		s.secret, s.shareCount, s.shares, s.threshold)
}

func cloneShares(shares []*Share) []*Share {
	result := make([]*Share, len(shares))
	for i, share := range shares {
		result[i] = share.Clone()
	}

	return result
}
