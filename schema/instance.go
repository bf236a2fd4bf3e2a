package schema

// Instance is a typed record produced by projecting a raw mapping onto a
// Schema. Every declared field is populated: with a coerced value, with the
// schema default, or with nil for an unset optional field.
type Instance struct {
	schema *Schema
	values map[string]any
}

// Schema returns the schema this instance was projected against.
func (i *Instance) Schema() *Schema {
	return i.schema
}

// Get returns the raw typed value for a field, or nil if the field is an
// unset optional or not declared. Record fields return *Instance.
func (i *Instance) Get(name string) any {
	return i.values[name]
}

// IsSet reports whether the field holds a non-nil value.
func (i *Instance) IsSet(name string) bool {
	return i.values[name] != nil
}

// GetString returns a string field's value, or "" if unset or mistyped.
func (i *Instance) GetString(name string) string {
	value, _ := i.values[name].(string)

	return value
}

// GetInt returns an integer field's value, or 0 if unset or mistyped.
func (i *Instance) GetInt(name string) int {
	value, _ := i.values[name].(int)

	return value
}

// GetFloat returns a float field's value, or 0 if unset or mistyped.
func (i *Instance) GetFloat(name string) float64 {
	value, _ := i.values[name].(float64)

	return value
}

// GetBool returns a boolean field's value, or false if unset or mistyped.
func (i *Instance) GetBool(name string) bool {
	value, _ := i.values[name].(bool)

	return value
}

// GetSequence returns a sequence field's coerced elements, or nil if unset.
func (i *Instance) GetSequence(name string) []any {
	value, _ := i.values[name].([]any)

	return value
}

// GetRecord returns a nested record field's instance, or nil if the field is
// not a record.
func (i *Instance) GetRecord(name string) *Instance {
	value, _ := i.values[name].(*Instance)

	return value
}

// ToMap converts the instance back into a raw mapping with typed leaf
// values. Nested records become nested mappings and sequences are copied, so
// mutating the result does not affect the instance.
func (i *Instance) ToMap() map[string]any {
	result := make(map[string]any, len(i.values))

	for name, value := range i.values {
		switch typed := value.(type) {
		case *Instance:
			result[name] = typed.ToMap()
		case []any:
			elements := make([]any, len(typed))
			copy(elements, typed)
			result[name] = elements
		default:
			result[name] = value
		}
	}

	return result
}
