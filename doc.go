// Package treeval extracts strongly typed Go values out of generic document
// trees (the map[string]any / []any / json.Number shape produced by JSON and
// YAML decoding).
//
// It provides:
//
//   - An ExtractionContext that dispatches to per-type Extractor
//     implementations registered in a Formats registry, tracking the document
//     path along the way
//   - A stable error model via Problem/ExtractionError (path, message, cause)
//   - A configurable failure policy (fail immediately vs. collect up to a cap)
//     and duplicate-object-key handling through ExtractOptions
//   - Tree materialization from JSON (ParseBytes/ParseReader, pluggable
//     driver) and YAML (ParseYAMLBytes)
//
// Design policy:
//   - Keep only public APIs in the root package; put the token engine under
//     internal/.
//   - Place input drivers under source/, optional extractors under codec/, and
//     the CLI under cmd/treeval.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := treeval.ParseBytes(data)
//	n, err := treeval.ExtractPath[int](doc, treeval.MustParsePath(".count"), treeval.DefaultFormats())
//
//	ec := treeval.NewContext(treeval.DefaultFormats(), treeval.DefaultOptions())
//	v, err := treeval.ExtractSub[string](ec, doc, treeval.Path{treeval.KeyElement("name")})
package treeval
