// Package schema describes typed configuration records and projects raw
// mappings onto them.
//
// A Schema is an ordered field descriptor table: each Field carries a name,
// a kind tag, a default value, and, depending on the kind, a choice list, a
// sequence element kind, or a nested record schema. The table replaces
// runtime reflection: the projector walks it generically.
//
// Project converts a merged raw mapping into a typed Instance. Absent keys
// fall back to the field's declared default, so schema defaults act as the
// lowest configuration layer without ever being materialized as one. Values
// that cannot be coerced to the declared kind become FieldErrors; all field
// errors from one projection are collected and reported together.
package schema
