package json

type objectState int

const (
	OBJECT_STATE_SCANNING objectState = iota
	OBJECT_STATE_PAIR
	OBJECT_STATE_DELIMITER
	OBJECT_STATE_END
)

var objectDelimiters = []byte{' ', '\t', '\r', '\n', '}', ','}

// parseObject parses `{ "k1": v1, ... }` with the pair parser doing the
// member work. Members keep input order; duplicate keys are preserved.
func parseObject(input []byte, depth int) (int, *Value, error) {
	pos := 0
	state := OBJECT_STATE_SCANNING
	members := make([]Pair, 0)

	for state != OBJECT_STATE_END {
		switch state {
		case OBJECT_STATE_SCANNING:
			{
				pos = skipWhitespace(input, pos)
				if pos >= len(input) {
					return pos, nil, ErrIncompleteExpression
				}
				if input[pos] != '{' {
					return pos, nil, ErrUnexpectedCharacter
				}
				pos++
				state = OBJECT_STATE_PAIR
			}

		case OBJECT_STATE_PAIR:
			{
				pos = skipWhitespace(input, pos)
				if pos >= len(input) {
					releaseMembers(members)
					return pos, nil, ErrIncompleteExpression
				}

				if input[pos] == '}' {
					if len(members) > 0 {
						// Comma was just consumed: trailing comma.
						releaseMembers(members)
						return pos, nil, ErrUnexpectedCharacter
					}
					pos++
					state = OBJECT_STATE_END
					continue
				}

				skip, member, err := parsePair(input[pos:], objectDelimiters, depth+1)
				pos += skip
				if err != nil {
					releaseMembers(members)
					return pos, nil, err
				}

				members = append(members, member)
				state = OBJECT_STATE_DELIMITER
			}

		case OBJECT_STATE_DELIMITER:
			{
				pos = skipWhitespace(input, pos)
				if pos >= len(input) {
					releaseMembers(members)
					return pos, nil, ErrIncompleteExpression
				}

				switch input[pos] {
				case ',':
					pos++
					state = OBJECT_STATE_PAIR
				case '}':
					pos++
					state = OBJECT_STATE_END
				default:
					releaseMembers(members)
					return pos, nil, ErrUnexpectedCharacter
				}
			}
		}
	}

	return pos, &Value{Type: VALUE_TYPE_OBJECT, Members: members}, nil
}
