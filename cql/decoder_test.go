package cql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func cellBytes(payload []byte) []byte {
	w := NewWriter()
	w.WriteBytes(payload)
	return w.Bytes()
}

func TestDecodeCellNull(t *testing.T) {
	w := NewWriter()
	w.WriteNull()

	v, err := DecodeCell(NewReader(w.Bytes()), NewPrimitive(TagInt), DiscardWarnings)
	require.NoError(t, err)
	require.True(t, v.IsNull())
}

func TestDecodeInt257(t *testing.T) {
	r := NewReader(cellBytes([]byte{0x00, 0x00, 0x01, 0x01}))
	v, err := DecodeCell(r, NewPrimitive(TagInt), DiscardWarnings)
	require.NoError(t, err)
	require.Equal(t, KindI32, v.Kind)
	require.EqualValues(t, 257, v.I32)
}

func TestDecodeVarint(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
		want    string
	}{
		{"zero", []byte{0x00}, "0"},
		{"minus one", []byte{0xff}, "-1"},
		{"128", []byte{0x00, 0x80}, "128"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewReader(cellBytes(c.payload))
			v, err := DecodeCell(r, NewPrimitive(TagVarint), DiscardWarnings)
			require.NoError(t, err)
			require.Equal(t, KindVarInt, v.Kind)
			require.Equal(t, c.want, v.VarInt)
		})
	}
}

func TestDecodeVarintBigValue(t *testing.T) {
	// 2^72, requires the bignum fallback path (>8 bytes two's complement).
	payload := append([]byte{0x01}, make([]byte, 9)...)
	r := NewReader(cellBytes(payload))
	v, err := DecodeCell(r, NewPrimitive(TagVarint), DiscardWarnings)
	require.NoError(t, err)
	require.Equal(t, "4722366482869645213696", v.VarInt)
}

func TestDecodeDecimalNegative(t *testing.T) {
	// -1.50 == -150 * 10^-2, unscaled -150 as two's complement varint.
	payload := []byte{0x00, 0x00, 0x00, 0x02, 0xff, 0x6a}
	r := NewReader(cellBytes(payload))
	v, err := DecodeCell(r, NewPrimitive(TagDecimal), DiscardWarnings)
	require.NoError(t, err)
	require.Equal(t, KindDecimal, v.Kind)
	require.Equal(t, "-150e-2", v.Decimal)
}

func TestDecodeDateEpoch(t *testing.T) {
	w := NewWriter()
	w.WriteUnsignedInt(uint32(int64(1) << 31))
	r := NewReader(cellBytes(w.Bytes()))
	v, err := DecodeCell(r, NewPrimitive(TagDate), DiscardWarnings)
	require.NoError(t, err)
	require.Equal(t, "1970-01-01", v.Date)
}

func TestDecodeTimeWithFraction(t *testing.T) {
	nanos := int64(1*3600+2*60+3)*nanosPerSecond + 4_000_000
	w := NewWriter()
	w.WriteInt64(nanos)
	r := NewReader(cellBytes(w.Bytes()))
	v, err := DecodeCell(r, NewPrimitive(TagTime), DiscardWarnings)
	require.NoError(t, err)
	require.Equal(t, "1:02:03.004", v.Time)
}

func TestDecodeListOfInt(t *testing.T) {
	w := NewWriter()
	w.WriteInt32(2)
	w.WriteBytes([]byte{0, 0, 0, 1})
	w.WriteBytes([]byte{0, 0, 0, 2})

	r := NewReader(cellBytes(w.Bytes()))
	v, err := DecodeCell(r, NewList(NewPrimitive(TagInt)), DiscardWarnings)
	require.NoError(t, err)
	require.Equal(t, KindList, v.Kind)
	require.Len(t, v.List, 2)
	require.EqualValues(t, 1, v.List[0].I32)
	require.EqualValues(t, 2, v.List[1].I32)
}

func TestDecodeUUID(t *testing.T) {
	raw := []byte{
		0x01, 0x02, 0x03, 0x04,
		0x05, 0x06,
		0x07, 0x08,
		0x09, 0x0a,
		0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	}
	r := NewReader(cellBytes(raw))
	v, err := DecodeCell(r, NewPrimitive(TagUUID), DiscardWarnings)
	require.NoError(t, err)
	require.Equal(t, "01020304-0506-0708-090a-0b0c0d0e0f10", v.UUID)
}

func TestDecodeTruncatedInt(t *testing.T) {
	w := NewWriter()
	w.WriteBytes([]byte{0x00, 0x01})

	r := NewReader(w.Bytes())
	_, err := DecodeCell(r, NewPrimitive(TagInt), DiscardWarnings)
	require.Error(t, err)
}

func TestDecodeTupleTrailingElision(t *testing.T) {
	// Only the first of two declared fields is present on the wire.
	w := NewWriter()
	w.WriteBytes([]byte{0, 0, 0, 9})

	r := NewReader(cellBytes(w.Bytes()))
	v, err := DecodeCell(r, NewTuple(NewPrimitive(TagInt), NewPrimitive(TagText)), DiscardWarnings)
	require.NoError(t, err)
	require.Equal(t, KindTuple, v.Kind)
	require.Len(t, v.List, 2)
	require.EqualValues(t, 9, v.List[0].I32)
	require.True(t, v.List[1].IsNull())
}
