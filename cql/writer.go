package cql

import (
	"encoding/binary"
	"math"
)

// Writer is an append-only output buffer with big-endian primitives
// matching the CQL native protocol's wire format, plus the reserve/patch
// pair used to back-fill container lengths after their children are
// encoded.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated output. It aliases the Writer's internal
// buffer; callers must not retain it across further writes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) {
	w.buf = append(w.buf, b)
}

// WriteInt8 appends a signed byte.
func (w *Writer) WriteInt8(v int8) {
	w.WriteByte(byte(v))
}

// WriteUnsignedShort appends an unsigned 16-bit big-endian integer.
func (w *Writer) WriteUnsignedShort(v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// WriteInt16 appends a signed 16-bit big-endian integer.
func (w *Writer) WriteInt16(v int16) {
	w.WriteUnsignedShort(uint16(v))
}

// WriteUnsignedInt appends an unsigned 32-bit big-endian integer.
func (w *Writer) WriteUnsignedInt(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// WriteInt32 appends a signed 32-bit big-endian integer.
func (w *Writer) WriteInt32(v int32) {
	w.WriteUnsignedInt(uint32(v))
}

// WriteUnsignedLong appends an unsigned 64-bit big-endian integer.
func (w *Writer) WriteUnsignedLong(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// WriteInt64 appends a signed 64-bit big-endian integer.
func (w *Writer) WriteInt64(v int64) {
	w.WriteUnsignedLong(uint64(v))
}

// WriteFloat32 appends an IEEE-754 big-endian single-precision float.
func (w *Writer) WriteFloat32(v float32) {
	w.WriteUnsignedInt(math.Float32bits(v))
}

// WriteFloat64 appends an IEEE-754 big-endian double-precision float.
func (w *Writer) WriteFloat64(v float64) {
	w.WriteUnsignedLong(math.Float64bits(v))
}

// WriteRawBytes appends b verbatim, with no length prefix.
func (w *Writer) WriteRawBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteBytes appends an [int32 length][payload] cell body.
func (w *Writer) WriteBytes(b []byte) {
	w.WriteInt32(int32(len(b)))
	w.WriteRawBytes(b)
}

// WriteNull appends the NULL cell sentinel, an int32 length of -1.
func (w *Writer) WriteNull() {
	w.WriteInt32(-1)
}

// WriteShortBytes appends a [uint16 length][payload] byte string.
func (w *Writer) WriteShortBytes(b []byte) {
	w.WriteUnsignedShort(uint16(len(b)))
	w.WriteRawBytes(b)
}

// WriteString appends a [uint16 length][utf8 payload] string.
func (w *Writer) WriteString(s string) {
	w.WriteShortBytes([]byte(s))
}

// WriteLongString appends an [int32 length][utf8 payload] string.
func (w *Writer) WriteLongString(s string) {
	w.WriteBytes([]byte(s))
}

// ReserveInt32 appends a zeroed int32 placeholder and returns its position,
// to be filled in later with PatchInt32 once the enclosed payload's length
// is known.
func (w *Writer) ReserveInt32() int {
	pos := len(w.buf)
	w.WriteInt32(0)
	return pos
}

// PatchInt32 overwrites the int32 at pos (as returned by ReserveInt32) with
// value.
func (w *Writer) PatchInt32(pos int, value int32) {
	binary.BigEndian.PutUint32(w.buf[pos:pos+4], uint32(value))
}
