package json

import (
	"errors"
	"testing"
)

func TestParseObject(t *testing.T) {
	_, value, err := Parse([]byte(`{"a":1,"b":"x","c":null}`))
	if err != nil {
		t.Fatal(err)
	}
	if value.Type != VALUE_TYPE_OBJECT {
		t.Fatalf("type = %v, want Object", value.Type)
	}
	if len(value.Members) != 3 {
		t.Fatalf("got %d members, want 3", len(value.Members))
	}
	if string(value.Members[0].Key) != "a" || value.Members[0].Value.Num != 1 {
		t.Errorf("member 0 = %q:%v", value.Members[0].Key, value.Members[0].Value.Num)
	}
	if string(value.Members[1].Key) != "b" || string(value.Members[1].Value.Str) != "x" {
		t.Errorf("member 1 = %q:%q", value.Members[1].Key, value.Members[1].Value.Str)
	}
	if value.Members[2].Value.Type != VALUE_TYPE_NULL {
		t.Errorf("member 2 type = %v, want Null", value.Members[2].Value.Type)
	}
}

func TestParseObjectEmpty(t *testing.T) {
	skip, value, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatal(err)
	}
	if skip != 2 {
		t.Errorf("skip = %d, want 2", skip)
	}
	if len(value.Members) != 0 {
		t.Errorf("got %d members, want 0", len(value.Members))
	}
}

func TestParseObjectWhitespace(t *testing.T) {
	_, value, err := Parse([]byte("{\n\t\"a\" : 1 ,\r\n\t\"b\" : 2\n}"))
	if err != nil {
		t.Fatal(err)
	}
	if len(value.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(value.Members))
	}
}

// Duplicate keys both survive in input order, no last-wins merging.
func TestParseObjectDuplicateKeys(t *testing.T) {
	_, value, err := Parse([]byte(`{"a":1,"a":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(value.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(value.Members))
	}
	if value.Members[0].Value.Num != 1 || value.Members[1].Value.Num != 2 {
		t.Errorf("members = %v, %v; want 1, 2",
			value.Members[0].Value.Num, value.Members[1].Value.Num)
	}
}

func TestParseObjectErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"trailing comma", `{"a":1,}`, ErrUnexpectedCharacter},
		{"missing colon", `{"a" 1}`, ErrUnexpectedCharacter},
		{"missing value", `{"a":}`, ErrUnexpectedCharacter},
		{"bare key", `{a:1}`, ErrUnexpectedCharacter},
		{"number key", `{1:2}`, ErrUnexpectedCharacter},
		{"leading comma", `{,}`, ErrUnexpectedCharacter},
		{"missing comma", `{"a":1 "b":2}`, ErrUnexpectedCharacter},
		{"open brace only", `{`, ErrIncompleteExpression},
		{"cut after key", `{"a"`, ErrIncompleteExpression},
		{"cut after colon", `{"a":`, ErrIncompleteExpression},
		{"cut after member", `{"a":1`, ErrIncompleteExpression},
		{"cut after comma", `{"a":1,`, ErrIncompleteExpression},
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
