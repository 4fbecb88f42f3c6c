package cql

import (
	"encoding/binary"
	"math"

	"github.com/juju/errors"
)

// Reader is a cursor over an immutable input slice, with bounds-checked
// big-endian primitives matching the CQL native protocol's wire format.
// It never copies: every returned byte slice borrows from the buffer it was
// constructed with.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for sequential reading. buf is borrowed, not copied.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the number of unread bytes remaining.
func (r *Reader) Len() int {
	return len(r.buf) - r.pos
}

func (r *Reader) require(n int) error {
	if r.Len() < n {
		return errors.Annotatef(ErrTruncated, "need %d bytes, have %d", n, r.Len())
	}
	return nil
}

func (r *Reader) take(n int) []byte {
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

// ReadByte reads a single unsigned byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	return r.take(1)[0], nil
}

// ReadInt8 reads a signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.ReadByte()
	return int8(b), err
}

// ReadUnsignedShort reads an unsigned 16-bit big-endian integer.
func (r *Reader) ReadUnsignedShort() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(r.take(2)), nil
}

// ReadInt16 reads a signed 16-bit big-endian integer.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUnsignedShort()
	return int16(v), err
}

// ReadUnsignedInt reads an unsigned 32-bit big-endian integer.
func (r *Reader) ReadUnsignedInt() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(r.take(4)), nil
}

// ReadInt32 reads a signed 32-bit big-endian integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUnsignedInt()
	return int32(v), err
}

// ReadUnsignedLong reads an unsigned 64-bit big-endian integer.
func (r *Reader) ReadUnsignedLong() (uint64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(r.take(8)), nil
}

// ReadInt64 reads a signed 64-bit big-endian integer.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUnsignedLong()
	return int64(v), err
}

// ReadFloat32 reads an IEEE-754 big-endian single-precision float.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUnsignedInt()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads an IEEE-754 big-endian double-precision float.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUnsignedLong()
	return math.Float64frombits(v), err
}

// ReadRawBytes reads exactly n raw bytes, borrowed from the input.
func (r *Reader) ReadRawBytes(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	return r.take(n), nil
}

// ReadBytes reads an [int32 length][payload] cell body. A negative length
// is the NULL sentinel: it returns (nil, false, nil). A non-negative length
// returns the borrowed payload slice and true.
func (r *Reader) ReadBytes() ([]byte, bool, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, false, err
	}
	if n < 0 {
		return nil, false, nil
	}
	b, err := r.ReadRawBytes(int(n))
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// ReadShortBytes reads a [uint16 length][payload] byte string.
func (r *Reader) ReadShortBytes() ([]byte, error) {
	n, err := r.ReadUnsignedShort()
	if err != nil {
		return nil, err
	}
	return r.ReadRawBytes(int(n))
}

// ReadString reads a [uint16 length][utf8 payload] string.
func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadShortBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadLongString reads an [int32 length][utf8 payload] string.
func (r *Reader) ReadLongString() (string, error) {
	b, present, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	if !present {
		return "", errors.Annotatef(ErrTruncated, "long string length was negative")
	}
	return string(b), nil
}
