package secretshare

import "errors"

var (
	// ErrTypeMismatch is returned when input has the wrong shape: empty or
	// truncated byte strings, undecodable hex/base64 text, a canonical
	// encoding starting with a zero byte, or a nil argument.
	ErrTypeMismatch = errors.New("secretshare: malformed input")

	// ErrOutOfRange is returned when a value, point or bit size falls
	// outside the bounds of the supported fields.
	ErrOutOfRange = errors.New("secretshare: value out of range")

	// ErrConfiguration is returned when threshold, share count or the held
	// share set violate a split or combine precondition.
	ErrConfiguration = errors.New("secretshare: invalid configuration")

	// ErrInvalidField is returned when a field prime is smaller than 2 or
	// no table entry covers the requested size.
	ErrInvalidField = errors.New("secretshare: invalid field prime")
)
