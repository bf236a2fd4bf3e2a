package schema

// Field describes one named member of a record: its kind, its default, and
// kind-specific details. Fields are value types; the modifier methods return
// updated copies so descriptor tables can be built inline.
type Field struct {
	// Name is the mapping key and the basis for the CLI flag name.
	Name string
	// Kind tags the declared type.
	Kind Kind
	// Optional marks a field that may be unset. An explicit null projects to
	// unset instead of falling back to the default.
	Optional bool
	// Default is the fallback value when the merged mapping omits the field.
	Default any
	// Choices lists the valid values for a KindChoice field.
	Choices []string
	// Elem is the element kind of a KindSequence field.
	Elem Kind
	// Schema describes the nested record of a KindRecord field.
	Schema *Schema
	// Usage is optional help text surfaced by the CLI binding.
	Usage string
}

// AsOptional returns a copy of the field marked optional with no default.
func (f Field) AsOptional() Field {
	f.Optional = true
	f.Default = nil

	return f
}

// WithDefault returns a copy of the field with the given default value.
func (f Field) WithDefault(value any) Field {
	f.Default = value

	return f
}

// WithUsage returns a copy of the field with the given help text.
func (f Field) WithUsage(usage string) Field {
	f.Usage = usage

	return f
}

// String declares a string field.
func String(name, def string) Field {
	return Field{Name: name, Kind: KindString, Default: def}
}

// Int declares an integer field.
func Int(name string, def int) Field {
	return Field{Name: name, Kind: KindInt, Default: def}
}

// Float declares a floating-point field.
func Float(name string, def float64) Field {
	return Field{Name: name, Kind: KindFloat, Default: def}
}

// Bool declares a boolean field.
func Bool(name string, def bool) Field {
	return Field{Name: name, Kind: KindBool, Default: def}
}

// Path declares a filesystem path field.
func Path(name, def string) Field {
	return Field{Name: name, Kind: KindPath, Default: def}
}

// Choice declares a string field restricted to the given values.
func Choice(name, def string, choices ...string) Field {
	return Field{Name: name, Kind: KindChoice, Default: def, Choices: choices}
}

// Sequence declares an ordered sequence field with scalar elements of the
// given kind. The default is the literal slice supplied (nil means empty).
func Sequence(name string, elem Kind, def []any) Field {
	return Field{Name: name, Kind: KindSequence, Elem: elem, Default: def}
}

// Record declares a nested record field described by sub.
func Record(name string, sub *Schema) Field {
	return Field{Name: name, Kind: KindRecord, Schema: sub}
}

// Schema is an ordered, immutable field descriptor table for one record.
type Schema struct {
	fields []Field
	byName map[string]int
}

// New creates a schema from the given fields. Field order is preserved; it
// determines projection order and therefore error message order.
func New(fields ...Field) *Schema {
	byName := make(map[string]int, len(fields))
	for i, field := range fields {
		byName[field.Name] = i
	}

	return &Schema{
		fields: fields,
		byName: byName,
	}
}

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []Field {
	return s.fields
}

// Field looks up a field by name.
func (s *Schema) Field(name string) (Field, bool) {
	index, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}

	return s.fields[index], true
}
