package cql

import (
	"encoding/hex"
	"math"
	"net"
	"strconv"

	"github.com/juju/errors"

	"github.com/TvdW/cassandra-codec-go/internal/bignum"
)

// EncodeCell writes v as one [int32 length][payload] cell to w, per t. A
// Null value always writes the length-(-1) sentinel regardless of t.
func EncodeCell(w *Writer, v CellValue, t *TypeDescriptor, warn WarnFunc) error {
	if v.IsNull() {
		w.WriteNull()
		return nil
	}

	switch t.Tag {
	case TagAscii, TagVarchar, TagText:
		writeSized(w, func() { w.WriteRawBytes([]byte(v.Text)) })
		return nil

	case TagBlob, TagCustom:
		writeSized(w, func() { w.WriteRawBytes(v.Bytes) })
		return nil

	case TagBoolean:
		writeSized(w, func() {
			if v.Bool {
				w.WriteByte(1)
			} else {
				w.WriteByte(0)
			}
		})
		return nil

	case TagTinyint:
		n, ok := cellAsInt64(v)
		if !ok {
			return errors.Annotatef(ErrRange, "tinyint requires an integer value, got %v", v.Kind)
		}
		if n < math.MinInt8 || n > math.MaxInt8 {
			warn.warnf("cql: tinyint value %d out of range, truncating", n)
		}
		writeSized(w, func() { w.WriteInt8(int8(n)) })
		return nil

	case TagSmallint:
		n, ok := cellAsInt64(v)
		if !ok {
			return errors.Annotatef(ErrRange, "smallint requires an integer value, got %v", v.Kind)
		}
		writeSized(w, func() { w.WriteInt16(int16(n)) })
		return nil

	case TagInt:
		n, ok := cellAsInt64(v)
		if !ok {
			return errors.Annotatef(ErrRange, "int requires an integer value, got %v", v.Kind)
		}
		writeSized(w, func() { w.WriteInt32(int32(n)) })
		return nil

	case TagBigint, TagCounter, TagTimestamp:
		n, ok := cellAsInt64(v)
		if !ok {
			return errors.Annotatef(ErrRange, "%s requires an integer value, got %v", t.Tag, v.Kind)
		}
		writeSized(w, func() { w.WriteInt64(n) })
		return nil

	case TagFloat:
		f, ok := cellAsFloat64(v)
		if !ok {
			return errors.Annotatef(ErrRange, "float requires a float value, got %v", v.Kind)
		}
		writeSized(w, func() { w.WriteFloat32(float32(f)) })
		return nil

	case TagDouble:
		f, ok := cellAsFloat64(v)
		if !ok {
			return errors.Annotatef(ErrRange, "double requires a float value, got %v", v.Kind)
		}
		writeSized(w, func() { w.WriteFloat64(f) })
		return nil

	case TagUUID, TagTimeUUID:
		b, err := parseUUID(v.UUID)
		if err != nil {
			warn.warnf("cql: malformed uuid %q, encoding null", v.UUID)
			w.WriteNull()
			return nil
		}
		writeSized(w, func() { w.WriteRawBytes(b) })
		return nil

	case TagInet:
		ip := net.ParseIP(v.Inet)
		if ip == nil {
			warn.warnf("cql: malformed inet address %q, encoding null", v.Inet)
			w.WriteNull()
			return nil
		}
		raw := ip.To4()
		if raw == nil {
			raw = ip.To16()
		}
		writeSized(w, func() { w.WriteRawBytes(raw) })
		return nil

	case TagDate:
		d, err := encodeDateString(v.Date)
		if err != nil {
			return errors.Trace(err)
		}
		writeSized(w, func() { w.WriteUnsignedInt(d) })
		return nil

	case TagTime:
		nanos, err := encodeTimeString(v.Time)
		if err != nil {
			return errors.Trace(err)
		}
		writeSized(w, func() { w.WriteInt64(nanos) })
		return nil

	case TagVarint:
		n, err := bignum.FromDecimalString(v.VarInt)
		if err != nil {
			return errors.Annotatef(ErrMalformedText, "varint %q is invalid", v.VarInt)
		}
		writeSized(w, func() { w.WriteRawBytes(n.TwosComplementBytes()) })
		return nil

	case TagDecimal:
		return encodeDecimal(w, v.Decimal)

	case TagList, TagSet:
		return encodeList(w, v, t, warn)

	case TagMap:
		return encodeMap(w, v, t, warn)

	case TagTuple:
		return encodeTuple(w, v, t, warn)

	case TagUDT:
		return encodeUDT(w, v, t, warn)

	default:
		return errors.Annotatef(ErrUnknownType, "tag 0x%04x", uint16(t.Tag))
	}
}

// writeSized runs fn to append a cell's payload, then back-patches the
// int32 length prefix it reserved beforehand.
func writeSized(w *Writer, fn func()) {
	pos := w.ReserveInt32()
	fn()
	w.PatchInt32(pos, int32(w.Len()-pos-4))
}

// cellAsInt64 extracts a generic integer value regardless of which
// fixed-width Kind produced it, so e.g. a KindI32 value can be encoded into
// a TINYINT column via a truncating cast instead of a hard type error.
func cellAsInt64(v CellValue) (int64, bool) {
	switch v.Kind {
	case KindI8:
		return int64(v.I8), true
	case KindI16:
		return int64(v.I16), true
	case KindI32:
		return int64(v.I32), true
	case KindI64:
		return v.I64, true
	default:
		return 0, false
	}
}

func cellAsFloat64(v CellValue) (float64, bool) {
	switch v.Kind {
	case KindF32:
		return float64(v.F32), true
	case KindF64:
		return v.F64, true
	default:
		return 0, false
	}
}

func parseUUID(s string) ([]byte, error) {
	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			continue
		}
		clean = append(clean, s[i])
	}
	if len(clean) != 32 {
		return nil, errors.Annotatef(ErrMalformedText, "uuid %q is invalid", s)
	}
	b, err := hex.DecodeString(string(clean))
	if err != nil {
		return nil, errors.Annotatef(ErrMalformedText, "uuid %q is invalid", s)
	}
	return b, nil
}

// encodeDecimal parses the full human decimal grammar encode_decimal
// (encode.c:537-596) accepts: an optional sign, mandatory integer digits,
// an optional '.' followed by fractional digits, and an optional
// [eE][+-]?digits exponent. Each fractional digit raises the scale by one;
// the explicit exponent lowers it again, so scale = fracDigits - exponent.
// This also covers decodeDecimal's own "<unscaled>[e<exponent>]" output,
// which is just the fracDigits == 0 case of the same grammar.
func encodeDecimal(w *Writer, s string) error {
	if len(s) == 0 {
		return errors.Annotatef(ErrMalformedText, "decimal %q is invalid", s)
	}

	pos := 0
	sign := ""
	if s[pos] == '-' || s[pos] == '+' {
		if s[pos] == '-' {
			sign = "-"
		}
		pos++
	}

	intStart := pos
	for pos < len(s) && isDecimalDigit(s[pos]) {
		pos++
	}
	intDigits := s[intStart:pos]
	if intDigits == "" {
		return errors.Annotatef(ErrMalformedText, "decimal %q is invalid", s)
	}

	var fracDigits string
	if pos < len(s) && s[pos] == '.' {
		pos++
		fracStart := pos
		for pos < len(s) && isDecimalDigit(s[pos]) {
			pos++
		}
		fracDigits = s[fracStart:pos]
		if fracDigits == "" {
			return errors.Annotatef(ErrMalformedText, "decimal %q is invalid", s)
		}
	}

	var exponent int64
	if pos < len(s) && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		expStart := pos
		if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
			pos++
		}
		digitsStart := pos
		for pos < len(s) && isDecimalDigit(s[pos]) {
			pos++
		}
		if pos == digitsStart {
			return errors.Annotatef(ErrMalformedText, "decimal %q is invalid", s)
		}
		parsed, err := strconv.ParseInt(s[expStart:pos], 10, 64)
		if err != nil {
			return errors.Annotatef(ErrMalformedText, "decimal %q is invalid", s)
		}
		exponent = parsed
	}

	if pos != len(s) {
		return errors.Annotatef(ErrMalformedText, "decimal %q is invalid", s)
	}

	scale := int64(len(fracDigits)) - exponent
	if scale < math.MinInt32 || scale > math.MaxInt32 {
		return errors.Annotatef(ErrOverflow, "decimal %q scale out of range", s)
	}

	n, err := bignum.FromDecimalString(sign + intDigits + fracDigits)
	if err != nil {
		return errors.Annotatef(ErrMalformedText, "decimal %q is invalid", s)
	}

	pos32 := w.ReserveInt32()
	w.WriteInt32(int32(scale))
	w.WriteRawBytes(n.TwosComplementBytes())
	w.PatchInt32(pos32, int32(w.Len()-pos32-4))
	return nil
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func encodeList(w *Writer, v CellValue, t *TypeDescriptor, warn WarnFunc) error {
	pos := w.ReserveInt32()
	w.WriteInt32(int32(len(v.List)))
	for _, item := range v.List {
		if err := EncodeCell(w, item, t.Elem, warn); err != nil {
			return errors.Trace(err)
		}
	}
	w.PatchInt32(pos, int32(w.Len()-pos-4))
	return nil
}

func encodeMap(w *Writer, v CellValue, t *TypeDescriptor, warn WarnFunc) error {
	pos := w.ReserveInt32()
	w.WriteInt32(int32(len(v.Map)))
	for _, e := range v.Map {
		if err := EncodeCell(w, e.Key, t.Key, warn); err != nil {
			return errors.Trace(err)
		}
		if err := EncodeCell(w, e.Value, t.Value, warn); err != nil {
			return errors.Trace(err)
		}
	}
	w.PatchInt32(pos, int32(w.Len()-pos-4))
	return nil
}

// encodeTuple requires exactly one value per declared field, in order; the
// trailing-elision leniency decodeTuple offers has no encode-side analogue.
func encodeTuple(w *Writer, v CellValue, t *TypeDescriptor, warn WarnFunc) error {
	if len(v.List) != len(t.Tuple) {
		return errors.Annotatef(ErrLengthMismatch, "tuple has %d fields, value has %d", len(t.Tuple), len(v.List))
	}
	pos := w.ReserveInt32()
	for i, ft := range t.Tuple {
		if err := EncodeCell(w, v.List[i], ft, warn); err != nil {
			return errors.Trace(err)
		}
	}
	w.PatchInt32(pos, int32(w.Len()-pos-4))
	return nil
}

// encodeUDT requires the value's fields to match the type's declared fields
// exactly in count, order and name; unlike decodeUDT there is no trailing
// elision on encode.
func encodeUDT(w *Writer, v CellValue, t *TypeDescriptor, warn WarnFunc) error {
	if len(v.UDT) != len(t.Fields) {
		return errors.Annotatef(ErrLengthMismatch, "udt %s.%s has %d fields, value has %d", t.Keyspace, t.TypeName, len(t.Fields), len(v.UDT))
	}
	for i, f := range t.Fields {
		if v.UDT[i].Name != f.Name {
			return errors.Annotatef(ErrMalformedText, "udt field %d: want %q, got %q", i, f.Name, v.UDT[i].Name)
		}
	}

	pos := w.ReserveInt32()
	for i, f := range t.Fields {
		if err := EncodeCell(w, v.UDT[i].Value, f.Type, warn); err != nil {
			return errors.Trace(err)
		}
	}
	w.PatchInt32(pos, int32(w.Len()-pos-4))
	return nil
}
