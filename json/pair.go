package json

type pairState int

const (
	PAIR_STATE_SCANNING pairState = iota
	PAIR_STATE_STRING
	PAIR_STATE_COLON
	PAIR_STATE_VALUE
	PAIR_STATE_END
)

// parsePair parses `"key" : value`. The key is always a string literal,
// never a bare identifier or number. The caller's delimiter set is
// passed through to the value dispatcher.
func parsePair(input []byte, delims []byte, depth int) (int, Pair, error) {
	var pair Pair
	pos := 0
	state := PAIR_STATE_SCANNING

	for state != PAIR_STATE_END {
		switch state {
		case PAIR_STATE_SCANNING:
			{
				pos = skipWhitespace(input, pos)
				if pos >= len(input) {
					return pos, Pair{}, ErrIncompleteExpression
				}
				state = PAIR_STATE_STRING
			}

		case PAIR_STATE_STRING:
			{
				skip, key, err := parseString(input[pos:])
				pos += skip
				if err != nil {
					return pos, Pair{}, err
				}
				pair.Key = key
				state = PAIR_STATE_COLON
			}

		case PAIR_STATE_COLON:
			{
				pos = skipWhitespace(input, pos)
				if pos >= len(input) {
					return pos, Pair{}, ErrIncompleteExpression
				}
				if input[pos] != ':' {
					return pos, Pair{}, ErrUnexpectedCharacter
				}
				pos++
				state = PAIR_STATE_VALUE
			}

		case PAIR_STATE_VALUE:
			{
				skip, value, err := parseValue(input[pos:], delims, depth)
				pos += skip
				if err != nil {
					return pos, Pair{}, err
				}

				if value == nil {
					if pos >= len(input) {
						return pos, Pair{}, ErrIncompleteExpression
					}
					// A delimiter where the member value should start,
					// e.g. {"a":} or {"a":,...}.
					return pos, Pair{}, ErrUnexpectedCharacter
				}

				pair.Value = value
				state = PAIR_STATE_END
			}
		}
	}

	return pos, pair, nil
}
