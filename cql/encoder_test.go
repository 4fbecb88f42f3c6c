package cql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, v CellValue, typ *TypeDescriptor) CellValue {
	t.Helper()
	w := NewWriter()
	err := EncodeCell(w, v, typ, DiscardWarnings)
	require.NoError(t, err)

	got, err := DecodeCell(NewReader(w.Bytes()), typ, DiscardWarnings)
	require.NoError(t, err)
	return got
}

func TestEncodeDecodeNullRoundTrip(t *testing.T) {
	got := roundTrip(t, Null, NewPrimitive(TagInt))
	require.True(t, got.IsNull())
}

func TestEncodeDecodeIntRoundTrip(t *testing.T) {
	got := roundTrip(t, CellValue{Kind: KindI32, I32: 257}, NewPrimitive(TagInt))
	require.EqualValues(t, 257, got.I32)
}

func TestEncodeTinyintTruncates(t *testing.T) {
	var warned string
	warn := WarnFunc(func(format string, args ...interface{}) {
		warned = format
	})

	w := NewWriter()
	err := EncodeCell(w, CellValue{Kind: KindI32, I32: 200}, NewPrimitive(TagTinyint), warn)
	require.NoError(t, err)
	require.NotEmpty(t, warned)

	got, err := DecodeCell(NewReader(w.Bytes()), NewPrimitive(TagTinyint), DiscardWarnings)
	require.NoError(t, err)
	require.EqualValues(t, -56, got.I8)
}

func TestEncodeDecodeVarintRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "-1", "128", "-128", "4722366482869645213696"} {
		got := roundTrip(t, CellValue{Kind: KindVarInt, VarInt: s}, NewPrimitive(TagVarint))
		require.Equal(t, s, got.VarInt)
	}
}

func TestEncodeDecodeDecimalRoundTrip(t *testing.T) {
	for _, s := range []string{"-150e-2", "42", "7e+3"} {
		got := roundTrip(t, CellValue{Kind: KindDecimal, Decimal: s}, NewPrimitive(TagDecimal))
		require.Equal(t, s, got.Decimal)
	}
}

func TestEncodeDecimalDottedLiteral(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"-1.50", "-150e-2"},
		{"-1.5e+10", "-15e+9"},
		{"1.5", "15e-1"},
		{"0.00", "0e-2"},
	}
	for _, c := range cases {
		got := roundTrip(t, CellValue{Kind: KindDecimal, Decimal: c.in}, NewPrimitive(TagDecimal))
		require.Equal(t, c.want, got.Decimal, "input %q", c.in)
	}
}

func TestEncodeDecimalMatchesWireBytes(t *testing.T) {
	w := NewWriter()
	err := EncodeCell(w, CellValue{Kind: KindDecimal, Decimal: "-1.50"}, NewPrimitive(TagDecimal), DiscardWarnings)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00, 0x02, 0xff, 0x6a}, w.Bytes())
}

func TestEncodeDecodeDateRoundTrip(t *testing.T) {
	got := roundTrip(t, CellValue{Kind: KindDate, Date: "1970-01-01"}, NewPrimitive(TagDate))
	require.Equal(t, "1970-01-01", got.Date)
}

func TestEncodeDecodeTimeRoundTrip(t *testing.T) {
	got := roundTrip(t, CellValue{Kind: KindTime, Time: "1:02:03.004"}, NewPrimitive(TagTime))
	require.Equal(t, "1:02:03.004", got.Time)
}

func TestEncodeDecodeUUIDRoundTrip(t *testing.T) {
	got := roundTrip(t, CellValue{Kind: KindUUID, UUID: "01020304-0506-0708-090a-0b0c0d0e0f10"}, NewPrimitive(TagUUID))
	require.Equal(t, "01020304-0506-0708-090a-0b0c0d0e0f10", got.UUID)
}

func TestEncodeMalformedUUIDBecomesNull(t *testing.T) {
	var warned bool
	warn := WarnFunc(func(string, ...interface{}) { warned = true })

	w := NewWriter()
	err := EncodeCell(w, CellValue{Kind: KindUUID, UUID: "not-a-uuid"}, NewPrimitive(TagUUID), warn)
	require.NoError(t, err)
	require.True(t, warned)

	got, err := DecodeCell(NewReader(w.Bytes()), NewPrimitive(TagUUID), DiscardWarnings)
	require.NoError(t, err)
	require.True(t, got.IsNull())
}

func TestEncodeDecodeListRoundTrip(t *testing.T) {
	v := CellValue{Kind: KindList, List: []CellValue{
		{Kind: KindI32, I32: 1},
		{Kind: KindI32, I32: 2},
	}}
	got := roundTrip(t, v, NewList(NewPrimitive(TagInt)))
	require.Len(t, got.List, 2)
	require.EqualValues(t, 1, got.List[0].I32)
	require.EqualValues(t, 2, got.List[1].I32)
}

func TestEncodeDecodeMapRoundTrip(t *testing.T) {
	v := CellValue{Kind: KindMap, Map: []MapEntry{
		{Key: CellValue{Kind: KindText, Text: "a"}, Value: CellValue{Kind: KindI32, I32: 1}},
	}}
	got := roundTrip(t, v, NewMap(NewPrimitive(TagText), NewPrimitive(TagInt)))
	require.Len(t, got.Map, 1)
	require.Equal(t, "a", got.Map[0].Key.Text)
	require.EqualValues(t, 1, got.Map[0].Value.I32)
}

func TestEncodeDecodeTupleRoundTrip(t *testing.T) {
	typ := NewTuple(NewPrimitive(TagInt), NewPrimitive(TagText))
	v := CellValue{Kind: KindTuple, List: []CellValue{
		{Kind: KindI32, I32: 9},
		{Kind: KindText, Text: "hi"},
	}}
	got := roundTrip(t, v, typ)
	require.EqualValues(t, 9, got.List[0].I32)
	require.Equal(t, "hi", got.List[1].Text)
}

func TestEncodeTupleLengthMismatch(t *testing.T) {
	typ := NewTuple(NewPrimitive(TagInt), NewPrimitive(TagText))
	v := CellValue{Kind: KindTuple, List: []CellValue{{Kind: KindI32, I32: 9}}}

	w := NewWriter()
	err := EncodeCell(w, v, typ, DiscardWarnings)
	require.Error(t, err)
}

func TestEncodeDecodeUDTRoundTrip(t *testing.T) {
	typ := NewUDT("ks", "point", UDTField{Name: "x", Type: NewPrimitive(TagInt)}, UDTField{Name: "y", Type: NewPrimitive(TagInt)})
	v := CellValue{Kind: KindUDT, UDT: []Pair{
		{Name: "x", Value: CellValue{Kind: KindI32, I32: 1}},
		{Name: "y", Value: CellValue{Kind: KindI32, I32: 2}},
	}}
	got := roundTrip(t, v, typ)
	require.Len(t, got.UDT, 2)
	require.Equal(t, "x", got.UDT[0].Name)
	require.EqualValues(t, 1, got.UDT[0].Value.I32)
	require.Equal(t, "y", got.UDT[1].Name)
	require.EqualValues(t, 2, got.UDT[1].Value.I32)
}
