package zod

import (
	"regexp"

	json "github.com/goccy/go-json"

	"github.com/HarveyLijh/zod-n-json/schema"
)

// classRule maps a constructor-call token to a node kind. Rules are evaluated
// top to bottom and the first match wins, so composites sit above the
// primitives whose tokens they can contain.
type classRule struct {
	token string
	kind  schema.Kind
}

var classRules = []classRule{
	{"z.object(", schema.KindObject},
	{"z.array(", schema.KindArray},
	{"z.union(", schema.KindUnion},
	{"z.enum(", schema.KindEnum},
	{"z.literal(", schema.KindLiteral},
	{"z.string(", schema.KindString},
	{"z.number(", schema.KindNumber},
	{"z.boolean(", schema.KindBoolean},
	{"z.bigint(", schema.KindBigInt},
	{"z.date(", schema.KindDate},
	{"z.null(", schema.KindNull},
	{"z.undefined(", schema.KindUndefined},
	{"z.any(", schema.KindAny},
	{"z.unknown(", schema.KindAny},
}

// knownProperties is the fixed property-name vocabulary. When a property's
// value chain cannot be classified, a recognized name still maps to its
// canonical sub-schema instead of the generic fallback.
var knownProperties = map[string]func() *schema.Node{
	"id":          func() *schema.Node { return &schema.Node{Kind: schema.KindString} },
	"name":        func() *schema.Node { return &schema.Node{Kind: schema.KindString} },
	"title":       func() *schema.Node { return &schema.Node{Kind: schema.KindString} },
	"description": func() *schema.Node { return &schema.Node{Kind: schema.KindString} },
	"email":       func() *schema.Node { return &schema.Node{Kind: schema.KindString} },
	"url":         func() *schema.Node { return &schema.Node{Kind: schema.KindString} },
	"age":         func() *schema.Node { return &schema.Node{Kind: schema.KindNumber} },
	"count":       func() *schema.Node { return &schema.Node{Kind: schema.KindNumber} },
	"price":       func() *schema.Node { return &schema.Node{Kind: schema.KindNumber} },
	"isActive":    func() *schema.Node { return &schema.Node{Kind: schema.KindBoolean} },
	"isAdmin":     func() *schema.Node { return &schema.Node{Kind: schema.KindBoolean} },
	"createdAt":   func() *schema.Node { return &schema.Node{Kind: schema.KindDate} },
	"updatedAt":   func() *schema.Node { return &schema.Node{Kind: schema.KindDate} },
	"tags": func() *schema.Node {
		return &schema.Node{Kind: schema.KindArray, Items: &schema.Node{Kind: schema.KindString}}
	},
	"address": func() *schema.Node {
		return &schema.Node{Kind: schema.KindObject, Properties: []schema.Property{
			{Name: "street", Node: &schema.Node{Kind: schema.KindString}},
			{Name: "city", Node: &schema.Node{Kind: schema.KindString}},
			{Name: "zip", Node: &schema.Node{Kind: schema.KindString}},
		}}
	},
}

// userSignatureTokens identify the well-known user-record schema. When a
// source text cannot be matched any other way but carries at least
// userSignatureMin of these property names, the pre-built user schema is
// returned as a named fallback.
var userSignatureTokens = []string{
	"id", "name", "email", "age", "isAdmin", "tags", "address", "createdAt",
}

const userSignatureMin = 3

// userSignaturePatterns match each signature token in key position, bare or
// quoted. Compiled once at init alongside the declaration regexps.
var userSignaturePatterns = func() []*regexp.Regexp {
	ps := make([]*regexp.Regexp, len(userSignatureTokens))
	for i, tok := range userSignatureTokens {
		ps[i] = regexp.MustCompile(`["']?` + regexp.QuoteMeta(tok) + `["']?\s*:`)
	}
	return ps
}()

// referenceUserSchema is the full pre-built structure behind the signature
// fallback.
func referenceUserSchema() *schema.Node {
	return &schema.Node{
		Kind:        schema.KindObject,
		Description: "User record",
		Properties: []schema.Property{
			{Name: "id", Node: &schema.Node{Kind: schema.KindString, Description: "Unique identifier"}},
			{Name: "name", Node: &schema.Node{Kind: schema.KindString}},
			{Name: "email", Node: &schema.Node{Kind: schema.KindString}},
			{Name: "age", Node: &schema.Node{Kind: schema.KindNumber, Optional: true}},
			{Name: "isAdmin", Node: &schema.Node{Kind: schema.KindBoolean}},
			{Name: "tags", Node: &schema.Node{
				Kind:     schema.KindArray,
				Optional: true,
				Items:    &schema.Node{Kind: schema.KindString},
			}},
			{Name: "address", Node: &schema.Node{
				Kind:     schema.KindObject,
				Optional: true,
				Properties: []schema.Property{
					{Name: "street", Node: &schema.Node{Kind: schema.KindString}},
					{Name: "city", Node: &schema.Node{Kind: schema.KindString}},
					{Name: "zip", Node: &schema.Node{Kind: schema.KindString}},
				},
			}},
			{Name: "createdAt", Node: &schema.Node{Kind: schema.KindDate}},
		},
	}
}

// number wraps a numeric literal in the model's canonical form.
func number(s string) json.Number { return json.Number(s) }
