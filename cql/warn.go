package cql

// WarnFunc receives a formatted message for a soft, non-fatal codec
// condition: an unrecognised cell type decoding as Null, an out-of-range
// TINYINT encode truncated to its low eight bits, or a malformed UUID/INET
// string encoded as Null. The
// zero value is a no-op; callers that want visibility should set it to
// something that logs.
type WarnFunc func(format string, args ...interface{})

func (w WarnFunc) warnf(format string, args ...interface{}) {
	if w == nil {
		return
	}
	w(format, args...)
}

// DiscardWarnings is a WarnFunc that drops every message, for callers that
// don't care about the soft-error path.
func DiscardWarnings(string, ...interface{}) {}
