package jsonc

import "testing"

func TestStripComments_LineAndBlock(t *testing.T) {
	in := "{\n  // a comment\n  \"a\": 1, /* inline */ \"b\": 2\n}"
	want := "{\n  \n  \"a\": 1,  \"b\": 2\n}"
	if got := StripComments(in); got != want {
		t.Fatalf("strip mismatch\n got=%q\nwant=%q", got, want)
	}
}

func TestStripComments_StringSafety(t *testing.T) {
	// "//" inside a double-quoted value is data, not a comment
	in := `{"url": "https://example.com", "sep": "//"}`
	if got := StripComments(in); got != in {
		t.Fatalf("string content was altered: %q", got)
	}
}

func TestStripComments_EscapedQuote(t *testing.T) {
	in := `{"a": "say \"hi\" // not a comment"}`
	if got := StripComments(in); got != in {
		t.Fatalf("escaped quote broke string tracking: %q", got)
	}
}

func TestStripComments_LineCommentKeepsNewline(t *testing.T) {
	in := "1 // one\n"
	want := "1 \n"
	if got := StripComments(in); got != want {
		t.Fatalf("newline not preserved: %q", got)
	}
}

func TestStripComments_BlockCommentAcrossLines(t *testing.T) {
	in := "{/* a\nmultiline\ncomment */\"a\": 1}"
	want := "{\"a\": 1}"
	if got := StripComments(in); got != want {
		t.Fatalf("block strip mismatch: %q", got)
	}
}
