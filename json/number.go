package json

import "strconv"

type numberState int

const (
	NUMBER_STATE_SCANNING numberState = iota
	NUMBER_STATE_CHARACTERISTIC
	NUMBER_STATE_CHARACTERISTIC_DIGIT
	NUMBER_STATE_DECIMAL_POINT
	NUMBER_STATE_MANTISSA
	NUMBER_STATE_EXPONENT
	NUMBER_STATE_EXPONENT_SIGN
	NUMBER_STATE_EXPONENT_FIRST_DIGIT
	NUMBER_STATE_EXPONENT_DIGITS
	NUMBER_STATE_END
)

// parseNumber scans a number literal and converts it with
// strconv.ParseFloat. A byte from delims (or plain whitespace) ends the
// literal; states that still need a digit treat it as an error instead.
func parseNumber(input []byte, delims []byte) (int, float64, error) {
	pos := 0
	litStart := 0
	state := NUMBER_STATE_SCANNING

stateLoop:
	for state != NUMBER_STATE_END {
		if pos >= len(input) {
			switch state {
			case NUMBER_STATE_SCANNING,
				NUMBER_STATE_CHARACTERISTIC,
				NUMBER_STATE_EXPONENT_SIGN,
				NUMBER_STATE_EXPONENT_FIRST_DIGIT:
				return pos, 0, ErrIncompleteExpression
			default:
				break stateLoop
			}
		}

		b := input[pos]

		switch state {
		case NUMBER_STATE_SCANNING:
			{
				switch {
				case isWhitespace(b):
					pos++
				case b == '-':
					litStart = pos
					pos++
					state = NUMBER_STATE_CHARACTERISTIC
				default:
					litStart = pos
					state = NUMBER_STATE_CHARACTERISTIC
				}
			}

		case NUMBER_STATE_CHARACTERISTIC:
			{
				switch {
				case b == '0':
					// A leading zero stands alone.
					pos++
					state = NUMBER_STATE_DECIMAL_POINT
				case b >= '1' && b <= '9':
					pos++
					state = NUMBER_STATE_CHARACTERISTIC_DIGIT
				default:
					return pos, 0, ErrUnexpectedCharacter
				}
			}

		case NUMBER_STATE_CHARACTERISTIC_DIGIT:
			{
				switch {
				case isDigit(b):
					pos++
				case isTerminator(delims, b):
					state = NUMBER_STATE_END
				default:
					state = NUMBER_STATE_DECIMAL_POINT
				}
			}

		case NUMBER_STATE_DECIMAL_POINT:
			{
				switch {
				case b == '.':
					pos++
					state = NUMBER_STATE_MANTISSA
				case isTerminator(delims, b):
					state = NUMBER_STATE_END
				default:
					state = NUMBER_STATE_EXPONENT
				}
			}

		case NUMBER_STATE_MANTISSA:
			{
				switch {
				case isDigit(b):
					pos++
				case isTerminator(delims, b):
					state = NUMBER_STATE_END
				default:
					state = NUMBER_STATE_EXPONENT
				}
			}

		case NUMBER_STATE_EXPONENT:
			{
				switch {
				case b == 'e' || b == 'E':
					pos++
					state = NUMBER_STATE_EXPONENT_SIGN
				case isTerminator(delims, b):
					state = NUMBER_STATE_END
				default:
					return pos, 0, ErrUnexpectedCharacter
				}
			}

		case NUMBER_STATE_EXPONENT_SIGN:
			{
				switch {
				case b == '+' || b == '-':
					pos++
					state = NUMBER_STATE_EXPONENT_FIRST_DIGIT
				case isDigit(b):
					pos++
					state = NUMBER_STATE_EXPONENT_DIGITS
				default:
					return pos, 0, ErrUnexpectedCharacter
				}
			}

		case NUMBER_STATE_EXPONENT_FIRST_DIGIT:
			{
				switch {
				case isDigit(b):
					pos++
					state = NUMBER_STATE_EXPONENT_DIGITS
				default:
					return pos, 0, ErrUnexpectedCharacter
				}
			}

		case NUMBER_STATE_EXPONENT_DIGITS:
			{
				switch {
				case isDigit(b):
					pos++
				case isTerminator(delims, b):
					state = NUMBER_STATE_END
				default:
					return pos, 0, ErrUnexpectedCharacter
				}
			}
		}
	}

	num, err := strconv.ParseFloat(string(input[litStart:pos]), 64)
	if err != nil {
		return pos, 0, ErrUnexpectedCharacter
	}

	return pos, num, nil
}

func isTerminator(delims []byte, b byte) bool {
	return isWhitespace(b) || isDelimiter(delims, b)
}
