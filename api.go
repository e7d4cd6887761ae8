package zodnjson

import (
	"errors"

	"github.com/HarveyLijh/zod-n-json/i18n"
	"github.com/HarveyLijh/zod-n-json/jsonc"
	"github.com/HarveyLijh/zod-n-json/zod"
)

// ConvertSourceToDocument extracts the schema from schema-definition source
// text and renders it as JSON document text. When includeComments is set,
// node descriptions are additionally emitted as // comment lines.
func ConvertSourceToDocument(src string, includeComments bool) (string, error) {
	n, err := zod.Extract(src)
	if err != nil {
		return "", toIssues(err)
	}
	return jsonc.EncodeSchema(n, includeComments), nil
}

// ConvertDocumentToSource reads comment-bearing document text, tolerating
// single quotes, unquoted keys and trailing commas, and renders it back as
// formatted schema-definition source text.
func ConvertDocumentToSource(doc string) (string, error) {
	n, err := jsonc.DecodeSchema(doc)
	if err != nil {
		return "", toIssues(err)
	}
	return zod.Indent(zod.Render(n)), nil
}

// ConvertSourceToYAML is ConvertSourceToDocument with YAML output;
// descriptions become YAML head comments.
func ConvertSourceToYAML(src string, includeComments bool) (string, error) {
	n, err := zod.Extract(src)
	if err != nil {
		return "", toIssues(err)
	}
	out, err := jsonc.EncodeSchemaYAML(n, includeComments)
	if err != nil {
		return "", toIssues(err)
	}
	return out, nil
}

// ConvertYAMLToSource reads a YAML schema document and renders it as
// formatted schema-definition source text.
func ConvertYAMLToSource(doc string) (string, error) {
	n, err := jsonc.DecodeSchemaYAML(doc)
	if err != nil {
		return "", toIssues(err)
	}
	return zod.Indent(zod.Render(n)), nil
}

// toIssues maps subpackage errors onto the Issues model, attaching guidance
// text from the i18n dictionary.
func toIssues(err error) Issues {
	var unrec *zod.UnrecognizedError
	if errors.As(err, &unrec) {
		return Issues{{
			Code:    CodeUnrecognizedSchema,
			Message: unrec.Error(),
			Hint:    i18n.T(CodeUnrecognizedSchema, nil),
			Cause:   err,
			Offset:  -1,
		}}
	}
	var mal *jsonc.MalformedError
	if errors.As(err, &mal) {
		return Issues{{
			Code:          CodeMalformedInput,
			Message:       mal.Msg,
			Hint:          i18n.T(CodeMalformedInput, nil),
			Cause:         err,
			Offset:        mal.Offset,
			Line:          mal.Line,
			Col:           mal.Col,
			InputFragment: mal.Excerpt,
		}}
	}
	return Issues{{
		Code:    CodeParseError,
		Message: err.Error(),
		Hint:    i18n.T(CodeParseError, nil),
		Cause:   err,
		Offset:  -1,
	}}
}
