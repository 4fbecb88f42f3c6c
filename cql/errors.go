package cql

import "github.com/juju/errors"

// Error kinds the codec reports through the single tagged error channel
// described by the spec: decode errors on fixed-width, length, or container
// shape are fatal for the enclosing call, while a handful of cases (see
// WarnFunc) are soft and degrade to Null/truncated output instead.
var (
	// ErrTruncated means the wire buffer ended before a required field
	// finished.
	ErrTruncated = errors.New("cql: truncated input")
	// ErrLengthMismatch means a fixed-width type had the wrong cell length.
	ErrLengthMismatch = errors.New("cql: length mismatch")
	// ErrUnknownType means a type descriptor tag was not recognised.
	ErrUnknownType = errors.New("cql: unknown type")
	// ErrRange means a decoded value fell outside its type's valid range,
	// or a container declared a negative element count.
	ErrRange = errors.New("cql: value out of range")
	// ErrMalformedText means a date/time/decimal/uuid/inet string could not
	// be parsed on encode.
	ErrMalformedText = errors.New("cql: malformed text")
	// ErrOverflow means a value does not fit its destination fixed-width
	// slot; the encoder returns it when a DECIMAL's scale falls outside the
	// int32 range.
	ErrOverflow = errors.New("cql: overflow")
)
