package jsonc

import (
	"errors"
	"reflect"
	"testing"

	json "github.com/goccy/go-json"
)

func TestDecode_KeyOrderPreserved(t *testing.T) {
	v, err := Decode(`{"z": 1, "a": 2, "m": 3}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	obj, ok := v.(*Object)
	if !ok {
		t.Fatalf("expected *Object, got %T", v)
	}
	if !reflect.DeepEqual(obj.Keys, []string{"z", "a", "m"}) {
		t.Fatalf("key order lost: %v", obj.Keys)
	}
}

func TestDecode_ValueTypes(t *testing.T) {
	v, err := Decode(`{"s": "x", "n": 1.5, "b": true, "nl": null, "arr": [1, "two"]}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	obj := v.(*Object)
	if s, _ := obj.Get("s"); s != "x" {
		t.Fatalf("string mismatch: %v", s)
	}
	if n, _ := obj.Get("n"); n != json.Number("1.5") {
		t.Fatalf("number mismatch: %v (%T)", n, n)
	}
	if b, _ := obj.Get("b"); b != true {
		t.Fatalf("bool mismatch: %v", b)
	}
	if nl, _ := obj.Get("nl"); nl != nil {
		t.Fatalf("null mismatch: %v", nl)
	}
	arr, _ := obj.Get("arr")
	if !reflect.DeepEqual(arr, []any{json.Number("1"), "two"}) {
		t.Fatalf("array mismatch: %#v", arr)
	}
}

// The reader must produce identical output for the same document with and
// without comments injected at node boundaries.
func TestDecode_CommentImmunity(t *testing.T) {
	plain := "{\n  \"type\": \"object\",\n  \"properties\": {\n    \"a\": {\"type\": \"string\"}\n  }\n}"
	commented := "{\n  // root record\n  \"type\": \"object\",\n  /* block */\n  \"properties\": {\n    \"a\": {\"type\": \"string\"} // leaf\n  }\n}"
	v1, err := Decode(plain)
	if err != nil {
		t.Fatalf("plain decode err: %v", err)
	}
	v2, err := Decode(commented)
	if err != nil {
		t.Fatalf("commented decode err: %v", err)
	}
	if !reflect.DeepEqual(v1, v2) {
		t.Fatalf("comment injection changed the value\n got=%#v\nwant=%#v", v2, v1)
	}
}

func TestDecode_CommentTokenInsideString(t *testing.T) {
	v, err := Decode(`{"sep": "//"}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s, _ := v.(*Object).Get("sep"); s != "//" {
		t.Fatalf("string %q was treated as a comment", s)
	}
}

func TestDecode_SloppyInput(t *testing.T) {
	v, err := Decode(`{foo: 1, 'bar': 'two',}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	obj := v.(*Object)
	if n, _ := obj.Get("foo"); n != json.Number("1") {
		t.Fatalf("foo mismatch: %v", n)
	}
	if s, _ := obj.Get("bar"); s != "two" {
		t.Fatalf("bar mismatch: %v", s)
	}
}

func TestDecode_AggressiveSecondPass(t *testing.T) {
	// a key starting with a digit is only repaired by the aggressive pass
	v, err := Decode(`{1key: 1}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n, _ := v.(*Object).Get("1key"); n != json.Number("1") {
		t.Fatalf("1key mismatch: %v", n)
	}
}

func TestDecode_MalformedPosition(t *testing.T) {
	_, err := Decode("{\n  \"a\": 1\n  \"b\": 2\n}")
	if err == nil {
		t.Fatalf("expected malformed error")
	}
	var mal *MalformedError
	if !errors.As(err, &mal) {
		t.Fatalf("expected *MalformedError, got %T", err)
	}
	if mal.Line < 2 {
		t.Fatalf("expected a line past the first, got line=%d col=%d", mal.Line, mal.Col)
	}
	if mal.Excerpt == "" {
		t.Fatalf("expected an excerpt around the failure point")
	}
	if mal.Msg == "" {
		t.Fatalf("expected the decoder message to be carried")
	}
}

func TestLineCol(t *testing.T) {
	text := "ab\ncd\nef"
	line, col := lineCol(text, 4) // the 'd'
	if line != 2 || col != 2 {
		t.Fatalf("lineCol = (%d,%d), want (2,2)", line, col)
	}
	line, col = lineCol(text, 0)
	if line != 1 || col != 1 {
		t.Fatalf("lineCol = (%d,%d), want (1,1)", line, col)
	}
}
