package jsonc

import "testing"

func TestNormalize_BareKeys(t *testing.T) {
	if got := Normalize(`{foo: 1}`); got != `{"foo": 1}` {
		t.Fatalf("bare key not quoted: %q", got)
	}
	if got := Normalize(`{a: 1, b_2: 2, $c: 3}`); got != `{"a": 1, "b_2": 2, "$c": 3}` {
		t.Fatalf("identifier keys mishandled: %q", got)
	}
}

func TestNormalize_BareKeyInsideStringUntouched(t *testing.T) {
	in := `{"a": "foo: 1"}`
	if got := Normalize(in); got != in {
		t.Fatalf("string content was normalized: %q", got)
	}
}

func TestNormalize_TrailingCommas(t *testing.T) {
	if got := Normalize(`{"a":1,}`); got != `{"a":1}` {
		t.Fatalf("object trailing comma kept: %q", got)
	}
	if got := Normalize("[1, 2,\n]"); got != "[1, 2\n]" {
		t.Fatalf("array trailing comma kept: %q", got)
	}
}

func TestNormalize_SingleQuotes(t *testing.T) {
	if got := Normalize(`{'a': 'b'}`); got != `{"a": "b"}` {
		t.Fatalf("single quotes not converted: %q", got)
	}
	// a double quote inside a single-quoted literal must be escaped
	if got := Normalize(`{'a': 'say "hi"'}`); got != `{"a": "say \"hi\""}` {
		t.Fatalf("inner double quote not escaped: %q", got)
	}
	// an escaped single quote becomes a plain apostrophe
	if got := Normalize(`{'a': 'it\'s'}`); got != `{"a": "it's"}` {
		t.Fatalf("escaped single quote mishandled: %q", got)
	}
}

func TestNormalizeAggressive_NumericLeadingKey(t *testing.T) {
	if got := normalizeAggressive(`{1key: 1}`); got != `{"1key": 1}` {
		t.Fatalf("aggressive pass missed numeric-leading key: %q", got)
	}
}
