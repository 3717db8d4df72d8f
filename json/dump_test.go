package json

import "testing"

func TestDumpScalars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"number", "42", "Number 42"},
		{"float", "3.14", "Number 3.14"},
		{"exponent", "6.02e23", "Number 6.02e+23"},
		{"string", `"hi"`, `String "hi"`},
		{"true", "true", "Boolean true"},
		{"false", "false", "Boolean false"},
		{"null", "null", "Null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, value, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			if got := string(Dump(value)); got != tt.expected {
				t.Errorf("Dump(%s) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDumpTree(t *testing.T) {
	_, value, err := Parse([]byte(`{"name":"Alice","tags":[1,true,null]}`))
	if err != nil {
		t.Fatal(err)
	}

	expected := "Object\n" +
		"  \"name\": String \"Alice\"\n" +
		"  \"tags\": Array\n" +
		"    Number 1\n" +
		"    Boolean true\n" +
		"    Null"

	if got := string(Dump(value)); got != expected {
		t.Errorf("Dump() =\n%s\nwant\n%s", got, expected)
	}
}

func TestDumpEmptyContainers(t *testing.T) {
	_, value, err := Parse([]byte(`{"a":[],"b":{}}`))
	if err != nil {
		t.Fatal(err)
	}

	expected := "Object\n" +
		"  \"a\": Array\n" +
		"  \"b\": Object"

	if got := string(Dump(value)); got != expected {
		t.Errorf("Dump() = %q, want %q", got, expected)
	}
}
