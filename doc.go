package zodnjson

// Package zodnjson converts between fluent schema-definition source text and
// JSON-like schema documents that may carry // comment annotations.
//
// - Source -> document: a heuristic extractor (zod package) builds the
//   intermediate schema model, which the document writer (jsonc package)
//   renders with optional comment lines.
// - Document -> source: a tolerant comment-aware reader recovers the model
//   from sloppy JSON (or YAML) and the source renderer prints it back.
//
// Design policy:
// - Keep only public conversion APIs and the error model in the root package;
//   put the model under schema/, document handling under jsonc/, source
//   handling under zod/, and the CLI under cmd/zod-n-json.
// - All conversions are pure, synchronous functions with no shared state;
//   failures are returned as Issues values, never panics.
//
// Typical usage:
//
//	doc, err := zodnjson.ConvertSourceToDocument(src, true)
//	src, err := zodnjson.ConvertDocumentToSource(doc)
