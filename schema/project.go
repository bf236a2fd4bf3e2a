package schema

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// FieldError reports one field whose raw value could not be coerced to the
// declared kind.
type FieldError struct {
	// Path is the dotted field path from the record root.
	Path string
	// Expected names the declared kind, including the choice list for
	// choice fields.
	Expected string
	// Received is the raw value that failed to coerce.
	Received any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: expected %s, got %v (%T)", e.Path, e.Expected, e.Received, e.Received)
}

// Project walks the schema's field table over the merged raw mapping and
// produces a fully populated typed instance.
//
// Absent fields fall back to the declared default. An explicit null on an
// optional field projects to unset; on a required field it falls back to the
// default like an absent key. Keys present in the mapping but not declared
// in the schema are ignored.
//
// Coercion failures do not stop the walk: every FieldError is collected and
// the combined error is returned with a nil instance. No partially valid
// instance is ever produced.
func Project(mapping map[string]any, s *Schema) (*Instance, error) {
	instance, fieldErrors := project(mapping, s, "")
	if len(fieldErrors) > 0 {
		return nil, multierr.Combine(fieldErrors...)
	}

	return instance, nil
}

func project(mapping map[string]any, s *Schema, prefix string) (*Instance, []error) {
	values := make(map[string]any, len(s.fields))

	var fieldErrors []error

	for _, field := range s.fields {
		path := joinPath(prefix, field.Name)

		if field.Kind == KindRecord {
			subInstance, subErrors := projectRecord(mapping, field, path)
			fieldErrors = append(fieldErrors, subErrors...)
			values[field.Name] = subInstance

			continue
		}

		raw, present := mapping[field.Name]

		switch {
		case !present:
			values[field.Name] = field.Default
		case raw == nil:
			if field.Optional {
				values[field.Name] = nil
			} else {
				values[field.Name] = field.Default
			}
		default:
			value, fieldErr := coerce(raw, field, path)
			if fieldErr != nil {
				fieldErrors = append(fieldErrors, fieldErr)

				continue
			}

			values[field.Name] = value
		}
	}

	return &Instance{schema: s, values: values}, fieldErrors
}

func projectRecord(mapping map[string]any, field Field, path string) (*Instance, []error) {
	sub := map[string]any{}

	raw, present := mapping[field.Name]
	if present && raw != nil {
		subMapping, ok := raw.(map[string]any)
		if !ok {
			return nil, []error{&FieldError{Path: path, Expected: KindRecord.String(), Received: raw}}
		}

		sub = subMapping
	}

	return project(sub, field.Schema, path)
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}

func coerce(raw any, field Field, path string) (any, *FieldError) {
	switch field.Kind {
	case KindString:
		return coerceString(raw, field.Kind, path)
	case KindPath:
		return coercePath(raw, path)
	case KindInt:
		return coerceInt(raw, path)
	case KindFloat:
		return coerceFloat(raw, path)
	case KindBool:
		return coerceBool(raw, path)
	case KindChoice:
		return coerceChoice(raw, field, path)
	case KindSequence:
		return coerceSequence(raw, field, path)
	case KindRecord:
		// handled by projectRecord
		return nil, &FieldError{Path: path, Expected: KindRecord.String(), Received: raw}
	default:
		return nil, &FieldError{Path: path, Expected: field.Kind.String(), Received: raw}
	}
}

func coerceString(raw any, kind Kind, path string) (any, *FieldError) {
	switch value := raw.(type) {
	case string:
		return value, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprintf("%v", value), nil
	default:
		return nil, &FieldError{Path: path, Expected: kind.String(), Received: raw}
	}
}

func coercePath(raw any, path string) (any, *FieldError) {
	value, fieldErr := coerceString(raw, KindPath, path)
	if fieldErr != nil {
		return nil, fieldErr
	}

	text, _ := value.(string)
	if text == "" {
		return "", nil
	}

	return filepath.Clean(text), nil
}

// coerceInt truncates fractional input: "4.0" and 4.7 both become ints.
func coerceInt(raw any, path string) (any, *FieldError) {
	switch value := raw.(type) {
	case int:
		return value, nil
	case int64:
		return int(value), nil
	case uint64:
		return int(value), nil
	case float64:
		return int(value), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, &FieldError{Path: path, Expected: KindInt.String(), Received: raw}
		}

		return int(parsed), nil
	default:
		return nil, &FieldError{Path: path, Expected: KindInt.String(), Received: raw}
	}
}

func coerceFloat(raw any, path string) (any, *FieldError) {
	switch value := raw.(type) {
	case float64:
		return value, nil
	case int:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case uint64:
		return float64(value), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, &FieldError{Path: path, Expected: KindFloat.String(), Received: raw}
		}

		return parsed, nil
	default:
		return nil, &FieldError{Path: path, Expected: KindFloat.String(), Received: raw}
	}
}

func coerceBool(raw any, path string) (any, *FieldError) {
	switch value := raw.(type) {
	case bool:
		return value, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "yes", "1", "y", "on":
			return true, nil
		case "false", "no", "0", "n", "off":
			return false, nil
		}
	}

	return nil, &FieldError{Path: path, Expected: KindBool.String(), Received: raw}
}

func coerceChoice(raw any, field Field, path string) (any, *FieldError) {
	expected := fmt.Sprintf("one of [%s]", strings.Join(field.Choices, ", "))

	value, fieldErr := coerceString(raw, KindChoice, path)
	if fieldErr != nil {
		return nil, &FieldError{Path: path, Expected: expected, Received: raw}
	}

	text, _ := value.(string)
	for _, choice := range field.Choices {
		if text == choice {
			return text, nil
		}
	}

	return nil, &FieldError{Path: path, Expected: expected, Received: raw}
}

func coerceSequence(raw any, field Field, path string) (any, *FieldError) {
	elemField := Field{Name: field.Name, Kind: field.Elem, Choices: field.Choices}

	var elements []any

	switch value := raw.(type) {
	case []any:
		elements = value
	case []string:
		elements = make([]any, len(value))
		for i, item := range value {
			elements[i] = item
		}
	case string:
		elements = splitSequenceString(value)
	default:
		return nil, &FieldError{Path: path, Expected: KindSequence.String(), Received: raw}
	}

	result := make([]any, 0, len(elements))

	for i, element := range elements {
		coerced, fieldErr := coerce(element, elemField, fmt.Sprintf("%s[%d]", path, i))
		if fieldErr != nil {
			return nil, fieldErr
		}

		result = append(result, coerced)
	}

	return result, nil
}

// splitSequenceString accepts the two CLI spellings of a sequence literal:
// "a,b,c" and "[a, b, c]".
func splitSequenceString(value string) []any {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")

	if strings.TrimSpace(trimmed) == "" {
		return nil
	}

	parts := strings.Split(trimmed, ",")
	elements := make([]any, len(parts))

	for i, part := range parts {
		elements[i] = strings.TrimSpace(part)
	}

	return elements
}
