package json

import "strconv"

// Dump renders a value tree as an indented human-readable listing: the
// type name, the scalar payload when there is one, and children on
// their own lines. This is a debugging view, not JSON serialization.
func Dump(value *Value) []byte {
	return appendValue(make([]byte, 0, 64), value, 0)
}

func appendValue(dst []byte, value *Value, indent int) []byte {
	switch value.Type {
	case VALUE_TYPE_NULL:
		return append(dst, "Null"...)

	case VALUE_TYPE_BOOLEAN:
		dst = append(dst, "Boolean "...)
		return strconv.AppendBool(dst, value.Bool)

	case VALUE_TYPE_NUMBER:
		dst = append(dst, "Number "...)
		return strconv.AppendFloat(dst, value.Num, 'g', -1, 64)

	case VALUE_TYPE_STRING:
		dst = append(dst, "String "...)
		return strconv.AppendQuote(dst, string(value.Str))

	case VALUE_TYPE_ARRAY:
		dst = append(dst, "Array"...)
		for _, element := range value.Elements {
			dst = appendLineStart(dst, indent+1)
			dst = appendValue(dst, element, indent+1)
		}
		return dst

	case VALUE_TYPE_OBJECT:
		dst = append(dst, "Object"...)
		for _, member := range value.Members {
			dst = appendLineStart(dst, indent+1)
			dst = strconv.AppendQuote(dst, string(member.Key))
			dst = append(dst, ": "...)
			dst = appendValue(dst, member.Value, indent+1)
		}
		return dst

	default:
		return append(dst, "Invalid"...)
	}
}

func appendLineStart(dst []byte, indent int) []byte {
	dst = append(dst, '\n')
	for i := 0; i < indent; i++ {
		dst = append(dst, ' ', ' ')
	}
	return dst
}
