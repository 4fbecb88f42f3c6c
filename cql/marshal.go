package cql

import "strings"

// marshalPrefix is the legacy Java-class-name prefix a CUSTOM type's class
// name is checked against before falling back to an opaque custom type.
const marshalPrefix = "org.apache.cassandra.db.marshal."

// legacyMarshalTags maps the class-name suffix (everything after
// marshalPrefix) of a recognised legacy marshaller to its native tag. The
// table matches unpack_type_nocroak's switch in the original C client
// byte-for-byte.
var legacyMarshalTags = map[string]Tag{
	"UTF8Type":          TagVarchar,
	"UUIDType":          TagUUID,
	"TimeType":          TagTime,
	"ByteType":          TagTinyint,
	"DateType":          TagDate,
	"LongType":          TagBigint,
	"AsciiType":         TagAscii,
	"Int32Type":         TagInt,
	"BytesType":         TagBlob,
	"FloatType":         TagFloat,
	"ShortType":         TagSmallint,
	"DoubleType":        TagDouble,
	"BooleanType":       TagBoolean,
	"DecimalType":       TagDecimal,
	"IntegerType":       TagVarint,
	"TimeUUIDType":      TagTimeUUID,
	"TimestampType":     TagTimestamp,
	"SimpleDateType":    TagDate,
	"InetAddressType":   TagInet,
	"CounterColumnType": TagCounter,
}

// resolveLegacyClass reports the native tag a legacy
// org.apache.cassandra.db.marshal.* class name maps to, if any.
func resolveLegacyClass(className string) (Tag, bool) {
	suffix, ok := strings.CutPrefix(className, marshalPrefix)
	if !ok {
		return 0, false
	}
	tag, ok := legacyMarshalTags[suffix]
	return tag, ok
}
