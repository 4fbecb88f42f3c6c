package cql

// Kind discriminates which field of a CellValue is live.
type Kind int

// Kind values, one per CellValue variant.
const (
	KindNull Kind = iota
	KindBool
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
	KindBytes
	KindText
	KindUUID
	KindInet
	KindDate
	KindTime
	KindDecimal
	KindVarInt
	KindList
	KindSet
	KindTuple
	KindMap
	KindUDT
)

// Pair is an ordered (name, value) entry, used by KindUDT to preserve
// declaration order.
type Pair struct {
	Name  string
	Value CellValue
}

// MapEntry is one (key, value) entry of a KindMap CellValue; a slice of
// them preserves wire/insertion order.
type MapEntry struct {
	Key   CellValue
	Value CellValue
}

// CellValue is a codec-neutral value: the host-language-independent result
// of decoding a cell, or the input to encoding one. Exactly one set of
// fields is meaningful, selected by Kind; the rest are zero.
//
// Date, Time, Decimal and VarInt are carried as strings rather than native
// numeric types because their precision or rendering rules (arbitrary
// calendar range, arbitrary precision, the synthetic "Ne[+-]S" decimal
// shape) don't map onto any fixed-width host type.
type CellValue struct {
	Kind Kind

	Bool    bool
	I8      int8
	I16     int16
	I32     int32
	I64     int64
	F32     float32
	F64     float64
	Bytes   []byte
	Text    string
	UUID    string
	Inet    string
	Date    string
	Time    string
	Decimal string
	VarInt  string

	List []CellValue
	Map  []MapEntry
	UDT  []Pair
}

// Null is the CellValue representing a NULL cell.
var Null = CellValue{Kind: KindNull}

// IsNull reports whether v represents NULL.
func (v CellValue) IsNull() bool {
	return v.Kind == KindNull
}
