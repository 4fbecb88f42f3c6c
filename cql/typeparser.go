package cql

import "github.com/juju/errors"

// ParseType reads a <type> TLV from r, recursing into container types. A
// CUSTOM type whose class name matches a legacy
// org.apache.cassandra.db.marshal.* marshaller is transparently rewritten
// to the corresponding native tag. Any sub-parse failure is fatal and
// propagates; on error the caller should not assume any returned
// descriptor is usable (none is returned).
func ParseType(r *Reader) (*TypeDescriptor, error) {
	rawTag, err := r.ReadUnsignedShort()
	if err != nil {
		return nil, errors.Trace(err)
	}
	tag := Tag(rawTag)

	switch {
	case isPrimitive(tag):
		return &TypeDescriptor{Tag: tag}, nil

	case tag == TagCustom:
		className, err := r.ReadString()
		if err != nil {
			return nil, errors.Trace(err)
		}
		if native, ok := resolveLegacyClass(className); ok {
			return &TypeDescriptor{Tag: native}, nil
		}
		return &TypeDescriptor{Tag: TagCustom, CustomClass: className}, nil

	case tag == TagList:
		elem, err := ParseType(r)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return &TypeDescriptor{Tag: TagList, Elem: elem}, nil

	case tag == TagSet:
		elem, err := ParseType(r)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return &TypeDescriptor{Tag: TagSet, Elem: elem}, nil

	case tag == TagMap:
		key, err := ParseType(r)
		if err != nil {
			return nil, errors.Trace(err)
		}
		value, err := ParseType(r)
		if err != nil {
			key.Destroy()
			return nil, errors.Trace(err)
		}
		return &TypeDescriptor{Tag: TagMap, Key: key, Value: value}, nil

	case tag == TagUDT:
		keyspace, err := r.ReadString()
		if err != nil {
			return nil, errors.Trace(err)
		}
		typeName, err := r.ReadString()
		if err != nil {
			return nil, errors.Trace(err)
		}
		fieldCount, err := r.ReadUnsignedShort()
		if err != nil {
			return nil, errors.Trace(err)
		}
		fields := make([]UDTField, 0, fieldCount)
		for i := uint16(0); i < fieldCount; i++ {
			name, err := r.ReadString()
			if err != nil {
				destroyFields(fields)
				return nil, errors.Trace(err)
			}
			fieldType, err := ParseType(r)
			if err != nil {
				destroyFields(fields)
				return nil, errors.Trace(err)
			}
			fields = append(fields, UDTField{Name: name, Type: fieldType})
		}
		return &TypeDescriptor{Tag: TagUDT, Keyspace: keyspace, TypeName: typeName, Fields: fields}, nil

	case tag == TagTuple:
		fieldCount, err := r.ReadUnsignedShort()
		if err != nil {
			return nil, errors.Trace(err)
		}
		fields := make([]*TypeDescriptor, 0, fieldCount)
		for i := uint16(0); i < fieldCount; i++ {
			fieldType, err := ParseType(r)
			if err != nil {
				for _, f := range fields {
					f.Destroy()
				}
				return nil, errors.Trace(err)
			}
			fields = append(fields, fieldType)
		}
		return &TypeDescriptor{Tag: TagTuple, Tuple: fields}, nil

	default:
		return nil, errors.Annotatef(ErrUnknownType, "tag 0x%04x", rawTag)
	}
}

func destroyFields(fields []UDTField) {
	for i := range fields {
		fields[i].Type.Destroy()
	}
}

// SerializeType writes t's <type> TLV to w, the inverse of ParseType. It
// always emits the native tag form, never a legacy class name, since
// ParseType already normalises legacy names away on read.
func SerializeType(w *Writer, t *TypeDescriptor) {
	w.WriteUnsignedShort(uint16(t.Tag))

	switch t.Tag {
	case TagCustom:
		w.WriteString(t.CustomClass)
	case TagList, TagSet:
		SerializeType(w, t.Elem)
	case TagMap:
		SerializeType(w, t.Key)
		SerializeType(w, t.Value)
	case TagUDT:
		w.WriteString(t.Keyspace)
		w.WriteString(t.TypeName)
		w.WriteUnsignedShort(uint16(len(t.Fields)))
		for _, f := range t.Fields {
			w.WriteString(f.Name)
			SerializeType(w, f.Type)
		}
	case TagTuple:
		w.WriteUnsignedShort(uint16(len(t.Tuple)))
		for _, f := range t.Tuple {
			SerializeType(w, f)
		}
	}
}
