package cql

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"net"
	"strconv"

	"github.com/juju/errors"

	"github.com/TvdW/cassandra-codec-go/internal/bignum"
)

// DecodeCell reads one [int32 length][payload] cell from r and interprets
// it according to t. A negative length decodes to Null without consulting
// t at all, matching the wire's untyped NULL sentinel.
func DecodeCell(r *Reader, t *TypeDescriptor, warn WarnFunc) (CellValue, error) {
	payload, present, err := r.ReadBytes()
	if err != nil {
		return CellValue{}, errors.Trace(err)
	}
	if !present {
		return Null, nil
	}
	return decodeValue(payload, t, warn)
}

// decodeValue interprets an already-extracted cell payload according to t.
func decodeValue(payload []byte, t *TypeDescriptor, warn WarnFunc) (CellValue, error) {
	switch t.Tag {
	case TagAscii, TagVarchar, TagText:
		return CellValue{Kind: KindText, Text: string(payload)}, nil

	case TagBlob, TagCustom:
		return CellValue{Kind: KindBytes, Bytes: append([]byte(nil), payload...)}, nil

	case TagBoolean:
		if len(payload) != 1 {
			return CellValue{}, errors.Annotatef(ErrLengthMismatch, "boolean length %d", len(payload))
		}
		return CellValue{Kind: KindBool, Bool: payload[0] != 0}, nil

	case TagTinyint:
		if len(payload) != 1 {
			return CellValue{}, errors.Annotatef(ErrLengthMismatch, "tinyint length %d", len(payload))
		}
		return CellValue{Kind: KindI8, I8: int8(payload[0])}, nil

	case TagSmallint:
		if len(payload) != 2 {
			return CellValue{}, errors.Annotatef(ErrLengthMismatch, "smallint length %d", len(payload))
		}
		return CellValue{Kind: KindI16, I16: int16(binary.BigEndian.Uint16(payload))}, nil

	case TagInt:
		if len(payload) != 4 {
			return CellValue{}, errors.Annotatef(ErrLengthMismatch, "int length %d", len(payload))
		}
		return CellValue{Kind: KindI32, I32: int32(binary.BigEndian.Uint32(payload))}, nil

	case TagBigint, TagCounter, TagTimestamp:
		if len(payload) != 8 {
			return CellValue{}, errors.Annotatef(ErrLengthMismatch, "%s length %d", t.Tag, len(payload))
		}
		return CellValue{Kind: KindI64, I64: int64(binary.BigEndian.Uint64(payload))}, nil

	case TagFloat:
		if len(payload) != 4 {
			return CellValue{}, errors.Annotatef(ErrLengthMismatch, "float length %d", len(payload))
		}
		bits := binary.BigEndian.Uint32(payload)
		return CellValue{Kind: KindF32, F32: math.Float32frombits(bits)}, nil

	case TagDouble:
		if len(payload) != 8 {
			return CellValue{}, errors.Annotatef(ErrLengthMismatch, "double length %d", len(payload))
		}
		bits := binary.BigEndian.Uint64(payload)
		return CellValue{Kind: KindF64, F64: math.Float64frombits(bits)}, nil

	case TagUUID, TagTimeUUID:
		if len(payload) != 16 {
			return CellValue{}, errors.Annotatef(ErrLengthMismatch, "uuid length %d", len(payload))
		}
		return CellValue{Kind: KindUUID, UUID: formatUUID(payload)}, nil

	case TagInet:
		if len(payload) != 4 && len(payload) != 16 {
			return CellValue{}, errors.Annotatef(ErrLengthMismatch, "inet length %d", len(payload))
		}
		return CellValue{Kind: KindInet, Inet: net.IP(payload).String()}, nil

	case TagDate:
		if len(payload) != 4 {
			return CellValue{}, errors.Annotatef(ErrLengthMismatch, "date length %d", len(payload))
		}
		return CellValue{Kind: KindDate, Date: decodeDateString(binary.BigEndian.Uint32(payload))}, nil

	case TagTime:
		if len(payload) != 8 {
			return CellValue{}, errors.Annotatef(ErrLengthMismatch, "time length %d", len(payload))
		}
		s, err := decodeTimeString(int64(binary.BigEndian.Uint64(payload)))
		if err != nil {
			return CellValue{}, errors.Trace(err)
		}
		return CellValue{Kind: KindTime, Time: s}, nil

	case TagVarint:
		return CellValue{Kind: KindVarInt, VarInt: decodeVarintString(payload)}, nil

	case TagDecimal:
		return decodeDecimal(payload)

	case TagList, TagSet:
		return decodeList(payload, t, warn)

	case TagMap:
		return decodeMap(payload, t, warn)

	case TagTuple:
		return decodeTuple(payload, t, warn)

	case TagUDT:
		return decodeUDT(payload, t, warn)

	default:
		warn.warnf("cql: decoding unrecognised type tag 0x%04x as null", uint16(t.Tag))
		return Null, nil
	}
}

// decodeContainerElement reads one length-prefixed element from r, the form
// every collection, tuple and UDT field takes inside its enclosing cell.
func decodeContainerElement(r *Reader, elemType *TypeDescriptor, warn WarnFunc) (CellValue, error) {
	payload, present, err := r.ReadBytes()
	if err != nil {
		return CellValue{}, errors.Trace(err)
	}
	if !present {
		return Null, nil
	}
	return decodeValue(payload, elemType, warn)
}

func formatUUID(b []byte) string {
	return fmt.Sprintf("%s-%s-%s-%s-%s",
		hex.EncodeToString(b[0:4]),
		hex.EncodeToString(b[4:6]),
		hex.EncodeToString(b[6:8]),
		hex.EncodeToString(b[8:10]),
		hex.EncodeToString(b[10:16]))
}

// decodeVarintString renders a two's-complement VARINT payload as a base-10
// string, using a plain int64 fast path for anything that fits in eight
// bytes and falling back to the bignum engine otherwise.
func decodeVarintString(payload []byte) string {
	if len(payload) == 0 {
		return "0"
	}
	if len(payload) <= 8 {
		var v int64
		if payload[0]&0x80 != 0 {
			v = -1
		}
		for _, b := range payload {
			v = (v << 8) | int64(b)
		}
		return strconv.FormatInt(v, 10)
	}
	return bignum.FromTwosComplement(payload).String()
}

// decodeDecimal reads the [int32 scale][varint unscaled] payload and renders
// it as "<unscaled>e<sign><exponent>", exponent = -scale, with the suffix
// dropped entirely when scale is zero.
func decodeDecimal(payload []byte) (CellValue, error) {
	r := NewReader(payload)
	scale, err := r.ReadInt32()
	if err != nil {
		return CellValue{}, errors.Trace(err)
	}
	rest, err := r.ReadRawBytes(r.Len())
	if err != nil {
		return CellValue{}, errors.Trace(err)
	}

	unscaled := decodeVarintString(rest)
	exponent := -int64(scale)
	if exponent == 0 {
		return CellValue{Kind: KindDecimal, Decimal: unscaled}, nil
	}
	return CellValue{Kind: KindDecimal, Decimal: fmt.Sprintf("%se%+d", unscaled, exponent)}, nil
}

func decodeList(payload []byte, t *TypeDescriptor, warn WarnFunc) (CellValue, error) {
	r := NewReader(payload)
	count, err := r.ReadInt32()
	if err != nil {
		return CellValue{}, errors.Trace(err)
	}
	if count < 0 {
		return CellValue{}, errors.Annotatef(ErrRange, "negative collection count %d", count)
	}

	items := make([]CellValue, 0, count)
	for i := int32(0); i < count; i++ {
		v, err := decodeContainerElement(r, t.Elem, warn)
		if err != nil {
			return CellValue{}, errors.Trace(err)
		}
		items = append(items, v)
	}

	kind := KindList
	if t.Tag == TagSet {
		kind = KindSet
	}
	return CellValue{Kind: kind, List: items}, nil
}

func decodeMap(payload []byte, t *TypeDescriptor, warn WarnFunc) (CellValue, error) {
	r := NewReader(payload)
	count, err := r.ReadInt32()
	if err != nil {
		return CellValue{}, errors.Trace(err)
	}
	if count < 0 {
		return CellValue{}, errors.Annotatef(ErrRange, "negative collection count %d", count)
	}

	entries := make([]MapEntry, 0, count)
	for i := int32(0); i < count; i++ {
		k, err := decodeContainerElement(r, t.Key, warn)
		if err != nil {
			return CellValue{}, errors.Trace(err)
		}
		v, err := decodeContainerElement(r, t.Value, warn)
		if err != nil {
			return CellValue{}, errors.Trace(err)
		}
		entries = append(entries, MapEntry{Key: k, Value: v})
	}
	return CellValue{Kind: KindMap, Map: entries}, nil
}

// decodeTuple decodes TUPLE fields in declaration order. If the payload runs
// out before every field is consumed, the remaining fields decode as Null;
// this lets an older tuple value be read against a type that has since
// grown fields.
func decodeTuple(payload []byte, t *TypeDescriptor, warn WarnFunc) (CellValue, error) {
	r := NewReader(payload)
	vals := make([]CellValue, len(t.Tuple))
	for i, ft := range t.Tuple {
		if r.Len() == 0 {
			vals[i] = Null
			continue
		}
		v, err := decodeContainerElement(r, ft, warn)
		if err != nil {
			return CellValue{}, errors.Trace(err)
		}
		vals[i] = v
	}
	return CellValue{Kind: KindTuple, List: vals}, nil
}

// decodeUDT decodes fields in declaration order, with the same
// trailing-elision rule as decodeTuple.
func decodeUDT(payload []byte, t *TypeDescriptor, warn WarnFunc) (CellValue, error) {
	r := NewReader(payload)
	pairs := make([]Pair, len(t.Fields))
	for i, f := range t.Fields {
		if r.Len() == 0 {
			pairs[i] = Pair{Name: f.Name, Value: Null}
			continue
		}
		v, err := decodeContainerElement(r, f.Type, warn)
		if err != nil {
			return CellValue{}, errors.Trace(err)
		}
		pairs[i] = Pair{Name: f.Name, Value: v}
	}
	return CellValue{Kind: KindUDT, UDT: pairs}, nil
}
