package json

import (
	"unicode/utf16"
	"unicode/utf8"
)

type stringState int

const (
	STRING_STATE_SCANNING stringState = iota
	STRING_STATE_CHAR
	STRING_STATE_ESCAPED_CHAR
	STRING_STATE_UNICODE
	STRING_STATE_END
)

// parseString decodes a quoted string literal, escapes included, into
// an owned byte sequence. The consumed count covers the closing quote.
func parseString(input []byte) (int, []byte, error) {
	var decoded []byte
	pos := 0
	state := STRING_STATE_SCANNING

	for state != STRING_STATE_END {
		if pos >= len(input) {
			// Unterminated string or a cut-off escape.
			return pos, nil, ErrIncompleteExpression
		}

		b := input[pos]

		switch state {
		case STRING_STATE_SCANNING:
			{
				switch {
				case isWhitespace(b):
					pos++
				case b == '"':
					pos++
					decoded = make([]byte, 0)
					state = STRING_STATE_CHAR
				default:
					return pos, nil, ErrUnexpectedCharacter
				}
			}

		case STRING_STATE_CHAR:
			{
				switch b {
				case '"':
					pos++
					state = STRING_STATE_END
				case '\\':
					pos++
					state = STRING_STATE_ESCAPED_CHAR
				case '\n', '\r':
					// Only the escaped forms are legal inside a literal.
					return pos, nil, ErrUnexpectedCharacter
				default:
					decoded = append(decoded, b)
					pos++
				}
			}

		case STRING_STATE_ESCAPED_CHAR:
			{
				switch b {
				case '"', '\\', '/':
					decoded = append(decoded, b)
					pos++
					state = STRING_STATE_CHAR
				case 'b':
					decoded = append(decoded, 0x08)
					pos++
					state = STRING_STATE_CHAR
				case 'f':
					decoded = append(decoded, 0x0c)
					pos++
					state = STRING_STATE_CHAR
				case 'n':
					decoded = append(decoded, '\n')
					pos++
					state = STRING_STATE_CHAR
				case 'r':
					decoded = append(decoded, '\r')
					pos++
					state = STRING_STATE_CHAR
				case 't':
					decoded = append(decoded, '\t')
					pos++
					state = STRING_STATE_CHAR
				case 'u':
					pos++
					state = STRING_STATE_UNICODE
				default:
					return pos, nil, ErrUnexpectedCharacter
				}
			}

		case STRING_STATE_UNICODE:
			{
				unit, skip, err := decodeCodeUnit(input[pos:])
				if err != nil {
					return pos + skip, nil, err
				}
				pos += skip

				if utf16.IsSurrogate(rune(unit)) && unit < 0xDC00 {
					// High half: try to pair it with an immediately
					// following \uXXXX low half.
					low, skip, ok := lowSurrogate(input[pos:])
					if ok {
						r := utf16.DecodeRune(rune(unit), rune(low))
						decoded = utf8.AppendRune(decoded, r)
						pos += skip
						state = STRING_STATE_CHAR
						continue
					}
				}

				decoded = appendCodeUnit(decoded, unit)
				state = STRING_STATE_CHAR
			}
		}
	}

	return pos, decoded, nil
}

// decodeCodeUnit reads exactly 4 hex digits as one UTF-16 code unit.
func decodeCodeUnit(input []byte) (uint16, int, error) {
	var unit uint16
	for i := 0; i < 4; i++ {
		if i >= len(input) {
			return 0, i, ErrIncompleteExpression
		}

		v := hexToByte(input[i])
		if v == 255 {
			return 0, i, ErrUnexpectedCharacter
		}

		unit = unit<<4 | uint16(v)
	}
	return unit, 4, nil
}

// lowSurrogate reports whether input starts with a \uXXXX escape
// encoding a low surrogate half, and decodes it if so.
func lowSurrogate(input []byte) (uint16, int, bool) {
	if len(input) < 6 || input[0] != '\\' || input[1] != 'u' {
		return 0, 0, false
	}

	var unit uint16
	for i := 2; i < 6; i++ {
		v := hexToByte(input[i])
		if v == 255 {
			return 0, 0, false
		}
		unit = unit<<4 | uint16(v)
	}

	if unit < 0xDC00 || unit > 0xDFFF {
		return 0, 0, false
	}
	return unit, 6, true
}

// appendCodeUnit encodes a single 16-bit code unit as UTF-8. Unpaired
// surrogate halves take the plain 3-byte form, matching the permissive
// handling of lone halves.
func appendCodeUnit(dst []byte, unit uint16) []byte {
	switch {
	case unit < 0x80:
		return append(dst, byte(unit))
	case unit < 0x800:
		return append(dst, 0xC0|byte(unit>>6), 0x80|byte(unit&0x3F))
	default:
		return append(dst, 0xE0|byte(unit>>12), 0x80|byte(unit>>6&0x3F), 0x80|byte(unit&0x3F))
	}
}

func hexToByte(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 255 // Invalid hex
}
