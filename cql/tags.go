package cql

// Tag identifies the wire shape of a TypeDescriptor, matching Cassandra's
// native protocol <type> tag values.
type Tag uint16

// Tag values, per the native protocol's <type> encoding.
const (
	TagCustom    Tag = 0x00
	TagAscii     Tag = 0x01
	TagBigint    Tag = 0x02
	TagBlob      Tag = 0x03
	TagBoolean   Tag = 0x04
	TagCounter   Tag = 0x05
	TagDecimal   Tag = 0x06
	TagDouble    Tag = 0x07
	TagFloat     Tag = 0x08
	TagInt       Tag = 0x09
	TagText      Tag = 0x0A
	TagTimestamp Tag = 0x0B
	TagUUID      Tag = 0x0C
	TagVarchar   Tag = 0x0D
	TagVarint    Tag = 0x0E
	TagTimeUUID  Tag = 0x0F
	TagInet      Tag = 0x10
	TagDate      Tag = 0x11
	TagTime      Tag = 0x12
	TagSmallint  Tag = 0x13
	TagTinyint   Tag = 0x14
	TagList      Tag = 0x20
	TagMap       Tag = 0x21
	TagSet       Tag = 0x22
	TagUDT       Tag = 0x30
	TagTuple     Tag = 0x31
)

func (t Tag) String() string {
	switch t {
	case TagCustom:
		return "custom"
	case TagAscii:
		return "ascii"
	case TagBigint:
		return "bigint"
	case TagBlob:
		return "blob"
	case TagBoolean:
		return "boolean"
	case TagCounter:
		return "counter"
	case TagDecimal:
		return "decimal"
	case TagDouble:
		return "double"
	case TagFloat:
		return "float"
	case TagInt:
		return "int"
	case TagText:
		return "text"
	case TagTimestamp:
		return "timestamp"
	case TagUUID:
		return "uuid"
	case TagVarchar:
		return "varchar"
	case TagVarint:
		return "varint"
	case TagTimeUUID:
		return "timeuuid"
	case TagInet:
		return "inet"
	case TagDate:
		return "date"
	case TagTime:
		return "time"
	case TagSmallint:
		return "smallint"
	case TagTinyint:
		return "tinyint"
	case TagList:
		return "list"
	case TagMap:
		return "map"
	case TagSet:
		return "set"
	case TagUDT:
		return "udt"
	case TagTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// isPrimitive reports whether t is a fixed-shape scalar tag with no
// recursive payload (the 0x01..0x14 range).
func isPrimitive(t Tag) bool {
	return t >= TagAscii && t <= TagTinyint
}
