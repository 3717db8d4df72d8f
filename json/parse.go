package json

import "bytes"

// MAX_DEPTH caps container nesting. Recursion depth tracks JSON depth
// one to one, so unbounded input would otherwise grow the goroutine
// stack without limit.
const MAX_DEPTH = 128

var (
	literalTrue  = []byte("true")
	literalFalse = []byte("false")
	literalNull  = []byte("null")
)

// Parse reads one JSON value from the start of input and returns how
// many bytes it consumed together with the value tree. Trailing bytes
// after a complete value are left unconsumed; the consumed count tells
// the caller where they begin.
func Parse(input []byte) (int, *Value, error) {
	if len(input) == 0 {
		return 0, nil, ErrInvalidInput
	}

	skip, value, err := parseValue(input, nil, 0)
	if err != nil {
		return skip, nil, err
	}

	if value == nil {
		return skip, nil, ErrIncompleteExpression
	}

	return skip, value, nil
}

// parseValue skips leading whitespace, looks at the first significant
// byte and routes to the matching sub-parser. A nil value with a nil
// error means no value starts here: either the input ran out or a
// delimiter from delims was hit. The caller decides which of the two
// it is by looking at its own cursor.
func parseValue(input []byte, delims []byte, depth int) (int, *Value, error) {
	if depth > MAX_DEPTH {
		return 0, nil, ErrDepthExceeded
	}

	pos := skipWhitespace(input, 0)
	if pos >= len(input) {
		return pos, nil, nil
	}

	b := input[pos]
	if len(delims) > 0 && isDelimiter(delims, b) {
		return pos, nil, nil
	}

	switch {
	case b == '[':
		skip, value, err := parseArray(input[pos:], depth)
		return pos + skip, value, err

	case b == '{':
		skip, value, err := parseObject(input[pos:], depth)
		return pos + skip, value, err

	case b == '"':
		skip, decoded, err := parseString(input[pos:])
		if err != nil {
			return pos + skip, nil, err
		}
		return pos + skip, &Value{Type: VALUE_TYPE_STRING, Str: decoded}, nil

	case b == 't':
		if !bytes.HasPrefix(input[pos:], literalTrue) {
			return pos, nil, ErrUnexpectedCharacter
		}
		return pos + len(literalTrue), &Value{Type: VALUE_TYPE_BOOLEAN, Bool: true}, nil

	case b == 'f':
		if !bytes.HasPrefix(input[pos:], literalFalse) {
			return pos, nil, ErrUnexpectedCharacter
		}
		return pos + len(literalFalse), &Value{Type: VALUE_TYPE_BOOLEAN, Bool: false}, nil

	case b == 'n':
		if !bytes.HasPrefix(input[pos:], literalNull) {
			return pos, nil, ErrUnexpectedCharacter
		}
		return pos + len(literalNull), &Value{Type: VALUE_TYPE_NULL}, nil

	case b == '-' || isDigit(b):
		skip, num, err := parseNumber(input[pos:], delims)
		if err != nil {
			return pos + skip, nil, err
		}
		return pos + skip, &Value{Type: VALUE_TYPE_NUMBER, Num: num}, nil

	default:
		return pos, nil, ErrUnexpectedCharacter
	}
}

func skipWhitespace(input []byte, pos int) int {
	for pos < len(input) {
		switch input[pos] {
		case ' ', '\t', '\r', '\n':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDelimiter(delims []byte, b byte) bool {
	for _, d := range delims {
		if d == b {
			return true
		}
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
