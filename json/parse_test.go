package json

import (
	"errors"
	"strings"
	"testing"

	"github.com/freekieb7/grit/test"
)

func TestParseNumberValue(t *testing.T) {
	skip, value, err := Parse([]byte("42"))

	test.AssertNoError(t, err)
	test.AssertEqual(t, 2, skip)
	test.AssertEqual(t, VALUE_TYPE_NUMBER, value.Type)
	test.AssertEqual(t, 42.0, value.Num)
}

func TestParseStringValue(t *testing.T) {
	skip, value, err := Parse([]byte(`"a\u0041"`))

	test.AssertNoError(t, err)
	test.AssertEqual(t, 9, skip)
	test.AssertEqual(t, VALUE_TYPE_STRING, value.Type)
	test.AssertEqual(t, "aA", string(value.Str))
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected ValueType
		boolVal  bool
	}{
		{"true", VALUE_TYPE_BOOLEAN, true},
		{"false", VALUE_TYPE_BOOLEAN, false},
		{"null", VALUE_TYPE_NULL, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			skip, value, err := Parse([]byte(tt.input))

			test.AssertNoError(t, err)
			test.AssertEqual(t, len(tt.input), skip)
			test.AssertEqual(t, tt.expected, value.Type)
			if tt.expected == VALUE_TYPE_BOOLEAN {
				test.AssertEqual(t, tt.boolVal, value.Bool)
			}
		})
	}
}

func TestParseObjectOrder(t *testing.T) {
	_, value, err := Parse([]byte(`{"name":"Alice","age":30}`))

	test.AssertNoError(t, err)
	test.AssertEqual(t, VALUE_TYPE_OBJECT, value.Type)
	test.AssertEqual(t, 2, len(value.Members))

	test.AssertEqual(t, "name", string(value.Members[0].Key))
	test.AssertEqual(t, VALUE_TYPE_STRING, value.Members[0].Value.Type)
	test.AssertEqual(t, "Alice", string(value.Members[0].Value.Str))

	test.AssertEqual(t, "age", string(value.Members[1].Key))
	test.AssertEqual(t, VALUE_TYPE_NUMBER, value.Members[1].Value.Type)
	test.AssertEqual(t, 30.0, value.Members[1].Value.Num)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"empty input", "", ErrInvalidInput},
		{"whitespace only", "   \t\n", ErrIncompleteExpression},
		{"unterminated string", `"hello`, ErrIncompleteExpression},
		{"broken true literal", "tru", ErrUnexpectedCharacter},
		{"broken false literal", "fals", ErrUnexpectedCharacter},
		{"broken null literal", "nul", ErrUnexpectedCharacter},
		{"wrong literal", "ture", ErrUnexpectedCharacter},
		{"nan rejected", "NaN", ErrUnexpectedCharacter},
		{"infinity rejected", "Infinity", ErrUnexpectedCharacter},
		{"leading plus", "+1", ErrUnexpectedCharacter},
		{"stray character", "@", ErrUnexpectedCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, value, err := Parse([]byte(tt.input))
			if !errors.Is(err, tt.expected) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.expected)
			}
			if value != nil {
				t.Errorf("Parse(%q) returned a value alongside the error", tt.input)
			}
		})
	}
}

// A complete value followed by trailing garbage succeeds and reports
// where the garbage starts.
func TestParseTrailingInput(t *testing.T) {
	skip, value, err := Parse([]byte("42 garbage"))

	test.AssertNoError(t, err)
	test.AssertEqual(t, 2, skip)
	test.AssertEqual(t, 42.0, value.Num)
}

func TestParseLeadingWhitespaceCounted(t *testing.T) {
	skip, value, err := Parse([]byte("  42"))

	test.AssertNoError(t, err)
	test.AssertEqual(t, 4, skip)
	test.AssertEqual(t, 42.0, value.Num)
}

func TestParseDepthLimit(t *testing.T) {
	deep := strings.Repeat("[", MAX_DEPTH+2)
	_, _, err := Parse([]byte(deep))
	test.AssertErrorIs(t, err, ErrDepthExceeded)

	ok := strings.Repeat("[", 50) + "1" + strings.Repeat("]", 50)
	_, value, err := Parse([]byte(ok))
	test.AssertNoError(t, err)
	test.AssertEqual(t, VALUE_TYPE_ARRAY, value.Type)
}

func TestParseNested(t *testing.T) {
	input := `{"users":[{"id":1,"active":true},{"id":2,"active":false}],"total":2}`

	_, value, err := Parse([]byte(input))

	test.AssertNoError(t, err)
	test.AssertEqual(t, VALUE_TYPE_OBJECT, value.Type)

	users := value.Members[0].Value
	test.AssertEqual(t, VALUE_TYPE_ARRAY, users.Type)
	test.AssertEqual(t, 2, len(users.Elements))
	test.AssertEqual(t, 1.0, users.Elements[0].Members[0].Value.Num)
	test.AssertEqual(t, false, users.Elements[1].Members[1].Value.Bool)
}
