package cql

// UDTField is one declared field of a user-defined type, in declaration
// order.
type UDTField struct {
	Name string
	Type *TypeDescriptor
}

// TypeDescriptor is the recursive, tag-driven description of a CQL type, as
// it appears in result metadata and prepared-statement signatures. Only the
// fields relevant to Tag are populated; the field comments below say which
// tags each field belongs to.
type TypeDescriptor struct {
	Tag Tag

	// CustomClass holds the Java class name for a CUSTOM type that did not
	// match any entry in the legacy marshal table.
	CustomClass string

	// Elem is the inner type for LIST and SET.
	Elem *TypeDescriptor
	// Key and Value are the inner types for MAP.
	Key   *TypeDescriptor
	Value *TypeDescriptor

	// Keyspace and TypeName identify a UDT; Fields holds its declared
	// fields in order.
	Keyspace string
	TypeName string
	Fields   []UDTField

	// Tuple holds a TUPLE's ordered field types.
	Tuple []*TypeDescriptor
}

// NewPrimitive builds a TypeDescriptor for a fixed-shape scalar tag.
func NewPrimitive(tag Tag) *TypeDescriptor {
	return &TypeDescriptor{Tag: tag}
}

// NewCustom builds a TypeDescriptor for a CUSTOM type whose class name did
// not resolve to a native tag.
func NewCustom(className string) *TypeDescriptor {
	return &TypeDescriptor{Tag: TagCustom, CustomClass: className}
}

// NewList builds a TypeDescriptor for LIST<elem>.
func NewList(elem *TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Tag: TagList, Elem: elem}
}

// NewSet builds a TypeDescriptor for SET<elem>.
func NewSet(elem *TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Tag: TagSet, Elem: elem}
}

// NewMap builds a TypeDescriptor for MAP<key, value>.
func NewMap(key, value *TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Tag: TagMap, Key: key, Value: value}
}

// NewTuple builds a TypeDescriptor for TUPLE<fields...>.
func NewTuple(fields ...*TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Tag: TagTuple, Tuple: fields}
}

// NewUDT builds a TypeDescriptor for a user-defined type.
func NewUDT(keyspace, typeName string, fields ...UDTField) *TypeDescriptor {
	return &TypeDescriptor{Tag: TagUDT, Keyspace: keyspace, TypeName: typeName, Fields: fields}
}

// Destroy recursively releases a TypeDescriptor's owned children. Go's
// garbage collector reclaims the memory regardless; Destroy exists so code
// ported from the original's manual-memory model (cc_type_destroy) has a
// direct, safe equivalent to call, and so a caller can explicitly drop
// large UDT/tuple trees without waiting on a GC cycle.
func (t *TypeDescriptor) Destroy() {
	if t == nil {
		return
	}
	switch t.Tag {
	case TagList, TagSet:
		t.Elem.Destroy()
		t.Elem = nil
	case TagMap:
		t.Key.Destroy()
		t.Value.Destroy()
		t.Key, t.Value = nil, nil
	case TagUDT:
		for i := range t.Fields {
			t.Fields[i].Type.Destroy()
			t.Fields[i].Type = nil
		}
		t.Fields = nil
	case TagTuple:
		for i := range t.Tuple {
			t.Tuple[i].Destroy()
			t.Tuple[i] = nil
		}
		t.Tuple = nil
	case TagCustom:
		t.CustomClass = ""
	}
}

// Equal reports whether t and other describe the same type, recursively.
// Used by the type descriptor round-trip tests (parse(serialize(t)) == t).
func (t *TypeDescriptor) Equal(other *TypeDescriptor) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Tag != other.Tag {
		return false
	}
	switch t.Tag {
	case TagCustom:
		return t.CustomClass == other.CustomClass
	case TagList, TagSet:
		return t.Elem.Equal(other.Elem)
	case TagMap:
		return t.Key.Equal(other.Key) && t.Value.Equal(other.Value)
	case TagUDT:
		if t.Keyspace != other.Keyspace || t.TypeName != other.TypeName {
			return false
		}
		if len(t.Fields) != len(other.Fields) {
			return false
		}
		for i := range t.Fields {
			if t.Fields[i].Name != other.Fields[i].Name {
				return false
			}
			if !t.Fields[i].Type.Equal(other.Fields[i].Type) {
				return false
			}
		}
		return true
	case TagTuple:
		if len(t.Tuple) != len(other.Tuple) {
			return false
		}
		for i := range t.Tuple {
			if !t.Tuple[i].Equal(other.Tuple[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
