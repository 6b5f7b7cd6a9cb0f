package secretshare

import (
	"encoding/base64"
	"fmt"
	"io"
	"math/big"
)

// primeLevels lists the supported security levels in ascending order. The
// table is versioned: adding or removing a level changes the share point
// width and breaks the wire format.
var primeLevels = []int{128, 256, 512, 1024, 2048, 4096, 8192}

// primesByLevel maps a security level to its field prime, stored as base64
// of the minimal big-endian bytes. Levels 128 and 256 hold the closest
// primes above 2^level, 512 holds the 13th Mersenne prime (2^521 - 1), and
// the remaining levels hold ssh-keygen generated primes of exactly that many
// bits.
var primesByLevel = map[int]*big.Int{
	128: mustParsePrime("AQAAAAAAAAAAAAAAAAAAADM="),
	256: mustParsePrime("AQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAEp"),
	512: mustParsePrime("Af//////////////////////////////////////////////////////////////" +
		"////////////////////////"),
	1024: mustParsePrime("w6/AZR8enj1UPxvgqHvqcwubIWZdBMkdry74x+j+qUCQuOHgAJFjDTvuDEJWwk5K" +
		"6+bYj/Iv9hB/Ol33cG64kscRcng9NsNV0HVMC/lMjuQnohqRXyOluCcMjFcFtYRU" +
		"Eykr8LkrHusbXRtkV+fOh1TGZA5xyR1STftXM0YArQM="),
	2048: mustParsePrime("6gMD0D/2m8q9wl3epqyc/ujDbvSMfyiCtl1Wiw0Up9rM9Kbo6QVyfAuYL6TXxOWd" +
		"2vRwTQ7HZ9ebE6MkZ8jTn2FbUmjkM43XDGByxwLN9vORU8Ry5mir8LhbjQhFQCeq" +
		"UuMifFugF7JVj3phHwnHvl4opHL6tRxx/36MdYzVIFxWLzZ02UHvLex/Oz9JxM46" +
		"nde0J1vVN78EpKjpj6pCrQoigM/A1GkjOe7IA7af3DMFeDf70jPba3iSD3BJtfnK" +
		"nP3Zg1G555RyZUOfSEKTBtbKsId08rdCemHadXN10mwIuZvK+4CF5B26DknRQu7B" +
		"ZMwxU6sxGft2AzszakNIvw=="),
	4096: mustParsePrime("wofaFpLIdg2InKvqanBV+tsTyfBkyHMi1Wm5xXQAHeuhaF2o3/uaESU/aFowReLO" +
		"ugV8Nd1Bf3FxEJSQB3ArJaN67mDDoamqahZnwVu///Fz3yeBOnSVl1aCKrNKK7l7" +
		"L0CMxqmUrcg/BcuAKHhLhZolAy1pHx3fsah/R+3Cif5EUr5OTXsHdFwdWpAefvBS" +
		"FGXf/B7sq35PFRcqkCV6/8oRtFWt0kBnsgwg7fm1tZvf2uA78Ks5oT5gUVyoreMn" +
		"O7yoKQ07WB+Sth8aiTq/8WJVqSJmOBWWQPeGm1wwyP/zwzeLFOGlUpyN4SCp4gmT" +
		"iOEhe938wXCPN+dL3l0KLc/cTdJ7ppfD+COBgtp8XQJDHghgZzWMyam07/fI1/yf" +
		"DIwFKIh6GUptBhOu4e7dx6MVrBoXjpN35Ij0k2dXO6jt+A/W7eLSVvBhSvgbj7Gy" +
		"Q+p/BMpr4OC+n0NSXTtnGNql4v09IL4/N+1ALa/X8Zw55RpAho0/edRc1CKp90VN" +
		"s/7/IFvkwQI0kU/YiCs0Tb+1wr5bV26pTrYsOvzQEu5/gvB0S+Bnc26aeO845vBk" +
		"dOAld28TivhOQJOrNmg6YNDbXLn3XKfEMDBZ4N3OOmQaMnj1AV/ULqp5ty5fDS79" +
		"qt47drI91MKjnzWbPKAPdYS3KYALPgHcPUzUs7AWBJ8="),
	8192: mustParsePrime("4/y9z9QaQJxYvgg7ZIWi1n4gkxsfRpd0uuDxqyiYuAADJYGxxPxx/hNgh5N6iFr7" +
		"b8nlgt2XuN460q+GFBnV8GJ4MW36eLrn7wmYifDplXXHgS5yQLZ2I+eHdzcBOn1d" +
		"s2OAQAg0AOjydgC6wGUNJCIMobPAX7fdcEaaIB2/8TCOyhxxUqYBa7ib+2xiVxXu" +
		"kakuoYSPCySRqpIYdGjZ6EQmedf19rZLydWj1Om1jFnu62X41rcKcQmeG0ILwP11" +
		"DLLzM8I8l5Zr5yemttmuyMDrJDbgF3DwOEC/7JIou23UbOJ9VznhhCn0ZP/2gSsP" +
		"ZqiwAkvgMpSQC40Lw8pnhfjEGO/nBoss0ZClS7n5DgWIWlyF3AaUlcIAn3nb/Xd0" +
		"19ZbmDH9wpXOFG9OuR3FarvQtkvq88NA4L8SOhFdEiidRLZQ/4Rhc0MI9HAc8sGZ" +
		"Z22ztIBPzb1rCMXUh1BzrVxXXKC2RZdHKlwj60J3tSsRKPOxrjY+NqLC1u9fzgDu" +
		"FXOkCtWs3NrePiZyl5z2jodTBSCyyiwREMvktjHzq+g8/9t9Ws3W3KWRbjCxdx/i" +
		"nE9gFjtiNJtmwO3c6FAvfEndQInqWuMf+yIKiMjSMjZ7Uvq3ZE8C5+wQN4aXITzw" +
		"2Q2oOplBwhfFWfiN7GWHrZU8lfEcV18O+pzAZQlVxzORDy+Qx4rjZ/Z7D0lqEA4L" +
		"AYcxQE0rrsdCD4wrH7ZhKvaezzafI23Qv7Csuu1BQbKhRZHGR1/Fw9TptiKez34o" +
		"jAFdWaNd5n9jPcWGYJqzq4WgK5nd8bb6fVTUst23Z8qreXyfspWUuAtbqs93dmbQ" +
		"s1zm79jkYnDE1xW3T+pk/jT79DMrtOhHfKQ4ZFwkREQX6ldptQeSX7S4/FnkKfHs" +
		"WTw5f3EIeggLOaGStRR9BNnzDcI3dkyBDlGbdO6Q8EfQgpEEtroaAfHMGMhb559S" +
		"CE+tbXvz7aNtY5gdi3VnZ0DbGqbgatDB9qO2ZdLZ0ONj/ON7WBxoKl9VTYIISc7n" +
		"Bmp9sBHqfZFrSkUhLLvHpWra0z0gO4oe2gMGSjQ1GRbCQ+ZdRUJZdMFGimJrdztI" +
		"liEIID8CgU8VZAFJvMIyXEDyRX8GGMqv3iYWIyby+B6Mcn+v7RtD46yHUun07f9b" +
		"WL0xaIK1VeYyeP6wC2EURwPAYLYYjzUo4XbpstWZZXkEi3I+tnjNVvqXkAQnDp+I" +
		"8jVATFIu0Hbp8ocJfy92AKLUVm0vbvtgCphUthzbQ2MEDU8w2WuwEe9LsODyEZL3" +
		"KxBrTzinn6OEl4w8Kpq5RTS+Acg5J7yVqcXlXmGNfF13qfo5Zk7vEbLVD1k5ba18" +
		"3CPxeUhYW9iDQu7WrGU0Sw=="),
}

// maxFieldValue is the largest value a secret or share value may take:
// one below the biggest table prime.
var maxFieldValue = new(big.Int).Sub(primesByLevel[primeLevels[len(primeLevels)-1]], bigOne)

func mustParsePrime(encoded string) *big.Int {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		panic("secretshare: corrupt prime constant: " + err.Error())
	}

	return new(big.Int).SetBytes(raw)
}

// Prime returns a copy of the table prime for the given security level.
func Prime(bits int) (*big.Int, error) {
	prime, ok := primesByLevel[bits]
	if !ok {
		return nil, fmt.Errorf("%w: no prime for level %d", ErrInvalidField, bits)
	}

	return new(big.Int).Set(prime), nil
}

// ClosestBits returns the smallest table level that covers bits.
func ClosestBits(bits int) (int, error) {
	for _, level := range primeLevels {
		if level >= bits {
			return level, nil
		}
	}

	return 0, fmt.Errorf("%w: no level covers %d bits", ErrInvalidField, bits)
}

// ClosestPrime returns a copy of the prime at ClosestBits(bits).
func ClosestPrime(bits int) (*big.Int, error) {
	level, err := ClosestBits(bits)
	if err != nil {
		return nil, err
	}

	return Prime(level)
}

// ClosestBitsForValue returns the smallest table level whose prime strictly
// exceeds value, so that the value fits the field at that level.
func ClosestBitsForValue(value *big.Int) (int, error) {
	if value == nil {
		return 0, fmt.Errorf("%w: nil value", ErrTypeMismatch)
	}

	for _, level := range primeLevels {
		if primesByLevel[level].Cmp(value) > 0 {
			return level, nil
		}
	}

	return 0, fmt.Errorf("%w: no table prime exceeds the value", ErrInvalidField)
}

// ClosestPrimeForValue returns a copy of the prime at ClosestBitsForValue.
func ClosestPrimeForValue(value *big.Int) (*big.Int, error) {
	level, err := ClosestBitsForValue(value)
	if err != nil {
		return nil, err
	}

	return Prime(level)
}

// MinBits returns the smallest supported security level.
func MinBits() int {
	return primeLevels[0]
}

// MaxBits returns the largest supported security level.
func MaxBits() int {
	return primeLevels[len(primeLevels)-1]
}

// MinBytes returns MinBits in bytes.
func MinBytes() int {
	return MinBits() / 8
}

// MaxBytes returns MaxBits in bytes.
func MaxBytes() int {
	return MaxBits() / 8
}

// MaxValue returns the largest value a secret or share value may take.
func MaxValue() *big.Int {
	return new(big.Int).Set(maxFieldValue)
}

// maxRandomAttempts bounds the rejection sampling loops. The worst table
// level rejects a draw with probability below 0.25, so hitting the cap
// indicates a broken randomness source rather than bad luck.
const maxRandomAttempts = 256

// RandomInt draws a uniform integer of at most bits length from random,
// redrawing any sample that does not fall below the closest table prime.
func RandomInt(random io.Reader, bits int) (*big.Int, error) {
	if bits < MinBits() || bits > MaxBits() {
		return nil, fmt.Errorf("%w: bits must be within [%d, %d]", ErrOutOfRange, MinBits(), MaxBits())
	}

	prime, err := ClosestPrime(bits)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, (bits+7)/8)
	for attempt := 0; attempt < maxRandomAttempts; attempt++ {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, err
		}

		if extra := len(buf)*8 - bits; extra > 0 {
			buf[0] &= byte(0xff >> extra)
		}

		value := new(big.Int).SetBytes(buf)
		if value.Cmp(prime) < 0 {
			return value, nil
		}
	}

	return nil, fmt.Errorf("%w: rejection sampling gave no value below the prime in %d attempts", ErrOutOfRange, maxRandomAttempts)
}
