// Package schema models the configuration schema document that drives the
// formwork editor.
//
// A schema document declares an ordered list of sections, each with an
// ordered list of fields. Every field carries one of six closed type
// variants (string, number, float, boolean, enum, path) plus UI hints
// such as the widget kind, an optional subsection grouping tag, and an
// optional visibility condition attached at the section level.
//
// Documents are accepted in JSON or YAML form; YAML input is normalized
// and decoded through the same tagged-union path as JSON. The parsed
// tree is immutable for the lifetime of an editing session.
package schema
