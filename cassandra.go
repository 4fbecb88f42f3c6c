// Package cassandra is a thin facade over cql, exposing the pieces a caller
// needs to parse a native-protocol <type> descriptor and encode/decode the
// cell values that go with it. It carries no connection, cluster or
// query-execution state — see cql for the actual wire-format work.
package cassandra

import "github.com/TvdW/cassandra-codec-go/cql"

// A TypeDescriptor describes the wire shape of a CQL type, as it appears in
// result metadata and prepared-statement signatures.
type TypeDescriptor = cql.TypeDescriptor

// A CellValue is a codec-neutral representation of one decoded cell, or the
// input to encoding one.
type CellValue = cql.CellValue

// WarnFunc receives a formatted message for a soft, non-fatal codec
// condition. The zero value is a no-op.
type WarnFunc = cql.WarnFunc

// DiscardWarnings is a WarnFunc that drops every message.
var DiscardWarnings = cql.DiscardWarnings

// ParseType reads a <type> TLV, recursing into container types and
// rewriting legacy Java marshaller class names to their native tag.
func ParseType(r *cql.Reader) (*TypeDescriptor, error) {
	return cql.ParseType(r)
}

// SerializeType writes t's <type> TLV, the inverse of ParseType.
func SerializeType(w *cql.Writer, t *TypeDescriptor) {
	cql.SerializeType(w, t)
}

// DecodeCell reads one length-prefixed cell and interprets it according to
// t, calling warn for any non-fatal condition encountered along the way.
func DecodeCell(r *cql.Reader, t *TypeDescriptor, warn WarnFunc) (CellValue, error) {
	return cql.DecodeCell(r, t, warn)
}

// EncodeCell writes v as one length-prefixed cell according to t, calling
// warn for any non-fatal condition encountered along the way.
func EncodeCell(w *cql.Writer, v CellValue, t *TypeDescriptor, warn WarnFunc) error {
	return cql.EncodeCell(w, v, t, warn)
}

// NewReader and NewWriter are re-exported so a caller never needs to import
// cql directly for the common path.
func NewReader(buf []byte) *cql.Reader {
	return cql.NewReader(buf)
}

func NewWriter() *cql.Writer {
	return cql.NewWriter()
}
