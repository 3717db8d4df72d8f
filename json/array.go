package json

type arrayState int

const (
	ARRAY_STATE_SCANNING arrayState = iota
	ARRAY_STATE_ELEMENTS
	ARRAY_STATE_COMMA
	ARRAY_STATE_END
)

var arrayDelimiters = []byte{' ', '\t', '\r', '\n', ']', ','}

// parseArray parses `[ v1, v2, ... ]`, feeding each element through the
// value dispatcher. Elements parsed before a failure are released
// before the error propagates.
func parseArray(input []byte, depth int) (int, *Value, error) {
	pos := 0
	state := ARRAY_STATE_SCANNING
	elements := make([]*Value, 0)

	for state != ARRAY_STATE_END {
		switch state {
		case ARRAY_STATE_SCANNING:
			{
				pos = skipWhitespace(input, pos)
				if pos >= len(input) {
					return pos, nil, ErrIncompleteExpression
				}
				if input[pos] != '[' {
					return pos, nil, ErrUnexpectedCharacter
				}
				pos++
				state = ARRAY_STATE_ELEMENTS
			}

		case ARRAY_STATE_ELEMENTS:
			{
				skip, element, err := parseValue(input[pos:], arrayDelimiters, depth+1)
				pos += skip
				if err != nil {
					releaseAll(elements)
					return pos, nil, err
				}

				if element == nil {
					if pos >= len(input) {
						releaseAll(elements)
						return pos, nil, ErrIncompleteExpression
					}

					if input[pos] == ']' && len(elements) == 0 {
						pos++
						state = ARRAY_STATE_END
						continue
					}

					// Either a trailing comma before ']' or a stray ','.
					releaseAll(elements)
					return pos, nil, ErrUnexpectedCharacter
				}

				elements = append(elements, element)
				state = ARRAY_STATE_COMMA
			}

		case ARRAY_STATE_COMMA:
			{
				pos = skipWhitespace(input, pos)
				if pos >= len(input) {
					releaseAll(elements)
					return pos, nil, ErrIncompleteExpression
				}

				switch input[pos] {
				case ',':
					pos++
					state = ARRAY_STATE_ELEMENTS
				case ']':
					pos++
					state = ARRAY_STATE_END
				default:
					releaseAll(elements)
					return pos, nil, ErrUnexpectedCharacter
				}
			}
		}
	}

	return pos, &Value{Type: VALUE_TYPE_ARRAY, Elements: elements}, nil
}
