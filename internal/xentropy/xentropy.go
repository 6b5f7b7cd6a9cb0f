// Package xentropy estimates the randomness of secret material supplied on
// the command line, so predictable inputs can be flagged before they are
// split.
package xentropy

import "math"

const (
	// minSampleSize is the shortest input worth judging. Below it the byte
	// frequencies carry too little signal either way.
	minSampleSize = 8

	// weakShannon flags inputs averaging fewer bits of surprise per byte
	// than short structured text, such as repeated words or digit runs.
	weakShannon = 3.5

	// weakMinEntropy flags inputs where a single byte value dominates,
	// even when the rest of the distribution looks healthy.
	weakMinEntropy = 1.5
)

func byteFrequencies(data []byte) map[byte]int {
	freq := make(map[byte]int, 256)
	for _, b := range data {
		freq[b]++
	}

	return freq
}

// Shannon returns the Shannon entropy of data in bits per byte: the average
// amount of information each byte carries. Ranges from 0 for uniform runs
// to 8 for a perfectly even distribution.
func Shannon(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	var entropy float64
	length := float64(len(data))

	for _, count := range byteFrequencies(data) {
		probability := float64(count) / length
		entropy -= probability * math.Log2(probability)
	}

	return entropy
}

// MinEntropy returns the min-entropy of data in bits per byte, judged by
// the most common byte value alone. It is the conservative counterpart of
// Shannon: what guessing the dominant byte first would achieve.
func MinEntropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	maxCount := 0
	for _, count := range byteFrequencies(data) {
		if count > maxCount {
			maxCount = count
		}
	}

	return -math.Log2(float64(maxCount) / float64(len(data)))
}

// Weak reports whether data looks predictable enough to warn about.
// Inputs shorter than eight bytes are never flagged, since their
// frequencies cannot be judged.
func Weak(data []byte) bool {
	if len(data) < minSampleSize {
		return false
	}

	return Shannon(data) < weakShannon || MinEntropy(data) < weakMinEntropy
}
