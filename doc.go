// Package vld provides runtime validation of JSON-like values.
//
//   - Declarative, composable schemas with type-safe parsing (Parse/Validate)
//   - A stable error model via Issues (path, code, message) that accumulates
//     every violation found in one pass instead of stopping at the first
//   - An input boundary that accepts JSON/YAML text, raw bytes, file paths,
//     or already-decoded values and converts them into one value model
//   - Pure error-shaping helpers (Flatten/Treeify/Prettify) and the wire
//     envelope shared by HTTP adapters
//   - A lenient per-field engine that always returns a best-effort value and
//     reports each declared field independently
//
// Design policy:
//
//   - Keep only public contracts in the root package; put detailed
//     implementations under internal/.
//   - Place schema constructors and combinators under dsl/, messages under
//     i18n/.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := buildSchema()
//	v, err := vld.ParseFrom(ctx, s, vld.JSONBytes(data))
//	ok := vld.IsValid(ctx, s, candidate)
//
// Schemas are immutable once constructed and safe to share across goroutines.
package vld
