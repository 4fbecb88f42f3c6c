package cql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func serializeType(t *TypeDescriptor) []byte {
	w := NewWriter()
	SerializeType(w, t)
	return w.Bytes()
}

func TestParseTypePrimitive(t *testing.T) {
	got, err := ParseType(NewReader(serializeType(NewPrimitive(TagInt))))
	require.NoError(t, err)
	require.Equal(t, TagInt, got.Tag)
}

func TestParseTypeListRoundTrip(t *testing.T) {
	orig := NewList(NewPrimitive(TagText))
	got, err := ParseType(NewReader(serializeType(orig)))
	require.NoError(t, err)
	require.True(t, orig.Equal(got))
}

func TestParseTypeMapRoundTrip(t *testing.T) {
	orig := NewMap(NewPrimitive(TagText), NewPrimitive(TagInt))
	got, err := ParseType(NewReader(serializeType(orig)))
	require.NoError(t, err)
	require.True(t, orig.Equal(got))
}

func TestParseTypeTupleRoundTrip(t *testing.T) {
	orig := NewTuple(NewPrimitive(TagInt), NewPrimitive(TagText), NewList(NewPrimitive(TagBoolean)))
	got, err := ParseType(NewReader(serializeType(orig)))
	require.NoError(t, err)
	require.True(t, orig.Equal(got))
}

func TestParseTypeUDTRoundTrip(t *testing.T) {
	orig := NewUDT("ks", "point",
		UDTField{Name: "x", Type: NewPrimitive(TagInt)},
		UDTField{Name: "y", Type: NewPrimitive(TagInt)})
	got, err := ParseType(NewReader(serializeType(orig)))
	require.NoError(t, err)
	require.True(t, orig.Equal(got))
}

func TestParseTypeLegacyCustomRewrite(t *testing.T) {
	w := NewWriter()
	w.WriteUnsignedShort(uint16(TagCustom))
	w.WriteString("org.apache.cassandra.db.marshal.UTF8Type")

	got, err := ParseType(NewReader(w.Bytes()))
	require.NoError(t, err)
	require.Equal(t, TagVarchar, got.Tag)
}

func TestParseTypeUnrecognisedCustomStaysCustom(t *testing.T) {
	w := NewWriter()
	w.WriteUnsignedShort(uint16(TagCustom))
	w.WriteString("com.example.MyCustomType")

	got, err := ParseType(NewReader(w.Bytes()))
	require.NoError(t, err)
	require.Equal(t, TagCustom, got.Tag)
	require.Equal(t, "com.example.MyCustomType", got.CustomClass)
}

func TestParseTypeUnknownTag(t *testing.T) {
	w := NewWriter()
	w.WriteUnsignedShort(0x7fff)

	_, err := ParseType(NewReader(w.Bytes()))
	require.Error(t, err)
}
