package json

type ValueType int

const (
	VALUE_TYPE_NULL ValueType = iota
	VALUE_TYPE_BOOLEAN
	VALUE_TYPE_NUMBER
	VALUE_TYPE_STRING
	VALUE_TYPE_ARRAY
	VALUE_TYPE_OBJECT
)

func (t ValueType) String() string {
	switch t {
	case VALUE_TYPE_NULL:
		return "Null"
	case VALUE_TYPE_BOOLEAN:
		return "Boolean"
	case VALUE_TYPE_NUMBER:
		return "Number"
	case VALUE_TYPE_STRING:
		return "String"
	case VALUE_TYPE_ARRAY:
		return "Array"
	case VALUE_TYPE_OBJECT:
		return "Object"
	default:
		return "Invalid"
	}
}

// Value is the result of parsing any JSON construct. Only the payload
// fields matching Type carry meaning; the rest stay zero.
type Value struct {
	Type ValueType

	Str      []byte
	Num      float64
	Bool     bool
	Elements []*Value
	Members  []Pair
}

// Pair is one object member. Members keep input order and duplicate
// keys both survive; no last-wins merging happens anywhere.
type Pair struct {
	Key   []byte
	Value *Value
}

// Release drops every payload the value owns, recursing into arrays
// and objects. Safe to call more than once and on nil.
func (v *Value) Release() {
	if v == nil {
		return
	}

	for _, element := range v.Elements {
		element.Release()
	}
	for i := range v.Members {
		v.Members[i].Key = nil
		v.Members[i].Value.Release()
	}

	v.Str = nil
	v.Elements = nil
	v.Members = nil
}

func releaseAll(elements []*Value) {
	for _, element := range elements {
		element.Release()
	}
}

func releaseMembers(members []Pair) {
	for i := range members {
		members[i].Key = nil
		members[i].Value.Release()
	}
}
