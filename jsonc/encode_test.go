package jsonc_test

import (
	"reflect"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/HarveyLijh/zod-n-json/jsonc"
	"github.com/HarveyLijh/zod-n-json/schema"
)

func TestEncodeSchema_String(t *testing.T) {
	n := &schema.Node{Kind: schema.KindString}
	want := "{\n  \"type\": \"string\"\n}"
	if got := jsonc.EncodeSchema(n, false); got != want {
		t.Fatalf("document mismatch\n got=%q\nwant=%q", got, want)
	}
	// no description means no comment line either way
	if got := jsonc.EncodeSchema(n, true); got != want {
		t.Fatalf("comment mode changed an undescribed node\n got=%q", got)
	}
}

func TestEncodeSchema_DescribedProperty(t *testing.T) {
	n := &schema.Node{Kind: schema.KindObject, Properties: []schema.Property{
		{Name: "a", Node: &schema.Node{Kind: schema.KindString, Description: "A"}},
	}}

	plain := jsonc.EncodeSchema(n, false)
	if strings.Contains(plain, "//") {
		t.Fatalf("comment emitted without includeComments:\n%s", plain)
	}
	if !strings.Contains(plain, "\"description\": \"A\"") {
		t.Fatalf("description field missing:\n%s", plain)
	}

	commented := jsonc.EncodeSchema(n, true)
	if !strings.Contains(commented, "// A") {
		t.Fatalf("comment line missing:\n%s", commented)
	}
	// the comment sits inside the node's braces, before its first field
	idx := strings.Index(commented, "// A")
	typeIdx := strings.Index(commented, "\"type\": \"string\"")
	if idx > typeIdx {
		t.Fatalf("comment must precede the node's first field:\n%s", commented)
	}
}

func TestEncodeSchema_NoTrailingCommas(t *testing.T) {
	n := &schema.Node{Kind: schema.KindObject, Properties: []schema.Property{
		{Name: "a", Node: &schema.Node{Kind: schema.KindString}},
		{Name: "b", Node: &schema.Node{Kind: schema.KindNumber}},
	}}
	doc := jsonc.EncodeSchema(n, false)
	for _, bad := range []string{",\n}", ",\n]", ", }"} {
		if strings.Contains(strings.ReplaceAll(doc, " ", ""), strings.ReplaceAll(bad, " ", "")) {
			t.Fatalf("trailing comma found:\n%s", doc)
		}
	}
}

// roundTripNodes covers every constructible kind, flags and descriptions.
func roundTripNodes() []*schema.Node {
	return []*schema.Node{
		{Kind: schema.KindString},
		{Kind: schema.KindNumber, Nullable: true},
		{Kind: schema.KindBoolean, Optional: true},
		{Kind: schema.KindNull},
		{Kind: schema.KindUndefined},
		{Kind: schema.KindBigInt},
		{Kind: schema.KindDate, Description: "when it happened"},
		{Kind: schema.KindAny},
		{Kind: schema.KindLiteral, Literal: "fixed"},
		{Kind: schema.KindLiteral, Literal: json.Number("42")},
		{Kind: schema.KindLiteral, Literal: true},
		{Kind: schema.KindEnum, Enum: []any{"b", "a", json.Number("3"), "c"}},
		{Kind: schema.KindArray, Items: &schema.Node{Kind: schema.KindNumber}},
		{
			Kind:        schema.KindObject,
			Description: "user",
			Properties: []schema.Property{
				{Name: "z", Node: &schema.Node{Kind: schema.KindString, Description: "Z"}},
				{Name: "a", Node: &schema.Node{Kind: schema.KindNumber, Optional: true}},
				{Name: "nested", Node: &schema.Node{
					Kind: schema.KindArray,
					Items: &schema.Node{
						Kind:     schema.KindEnum,
						Nullable: true,
						Enum:     []any{"x", "y"},
					},
				}},
			},
		},
		{Kind: schema.KindUnion, Members: []*schema.Node{
			{Kind: schema.KindString},
			{Kind: schema.KindObject, Properties: []schema.Property{
				{Name: "k", Node: &schema.Node{Kind: schema.KindLiteral, Literal: "v"}},
			}},
		}},
	}
}

func TestEncodeSchema_RoundTrip(t *testing.T) {
	for _, n := range roundTripNodes() {
		doc := jsonc.EncodeSchema(n, false)
		back, err := jsonc.DecodeSchema(doc)
		if err != nil {
			t.Fatalf("decode of rendered document failed: %v\n%s", err, doc)
		}
		if !reflect.DeepEqual(back, n) {
			t.Fatalf("round trip mismatch\n got=%#v\nwant=%#v\ndoc=%s", back, n, doc)
		}
	}
}

func TestEncodeSchema_RoundTripWithComments(t *testing.T) {
	// the comment-bearing form must decode to the same node
	for _, n := range roundTripNodes() {
		doc := jsonc.EncodeSchema(n, true)
		back, err := jsonc.DecodeSchema(doc)
		if err != nil {
			t.Fatalf("decode of commented document failed: %v\n%s", err, doc)
		}
		if !reflect.DeepEqual(back, n) {
			t.Fatalf("commented round trip mismatch\n got=%#v\nwant=%#v", back, n)
		}
	}
}

func TestEncodeSchema_EnumOrderPreserved(t *testing.T) {
	n := &schema.Node{Kind: schema.KindEnum, Enum: []any{"b", "a", "c"}}
	back, err := jsonc.DecodeSchema(jsonc.EncodeSchema(n, false))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(back.Enum, []any{"b", "a", "c"}) {
		t.Fatalf("enum order changed: %v", back.Enum)
	}
}

func TestNodeFromValue_UnknownTypeBecomesAny(t *testing.T) {
	back, err := jsonc.DecodeSchema(`{"type": "tuple"}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if back.Kind != schema.KindAny {
		t.Fatalf("unknown type should map to any, got %s", back.Kind)
	}
}

func TestNodeFromValue_InferredKinds(t *testing.T) {
	back, err := jsonc.DecodeSchema(`{"properties": {"a": {"type": "string"}}}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if back.Kind != schema.KindObject || back.Property("a") == nil {
		t.Fatalf("missing type not inferred from properties: %#v", back)
	}
}

func TestNodeFromValue_RootMustBeObject(t *testing.T) {
	if _, err := jsonc.DecodeSchema(`[1, 2]`); err == nil {
		t.Fatalf("expected error for non-object document root")
	}
}

func TestEncodeSchema_MultilineDescriptionComment(t *testing.T) {
	n := &schema.Node{Kind: schema.KindString, Description: "line one\nline two"}
	doc := jsonc.EncodeSchema(n, true)
	if !strings.Contains(doc, "// line one") || !strings.Contains(doc, "// line two") {
		t.Fatalf("both description lines must carry the comment marker:\n%s", doc)
	}
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "line") {
			t.Fatalf("comment continuation without marker:\n%s", doc)
		}
	}
	// a comment-stripping reader still decodes the document back to the node
	back, err := jsonc.DecodeSchema(doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(back, n) {
		t.Fatalf("round trip mismatch:\n got=%#v\nwant=%#v", back, n)
	}
}

func TestEncodeSchema_NilNode(t *testing.T) {
	want := "{\n  \"type\": \"any\"\n}"
	if got := jsonc.EncodeSchema(nil, true); got != want {
		t.Fatalf("nil node\n got=%q\nwant=%q", got, want)
	}
}
