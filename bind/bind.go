package bind

import (
	"fmt"
	"strings"

	"github.com/0xalexb/strata/merge"
	"github.com/0xalexb/strata/schema"

	"github.com/spf13/pflag"
)

// Binder applies the final CLI override pass on top of an effective-defaults
// instance.
type Binder struct {
	schema       *schema.Schema
	defaults     *schema.Instance
	flags        *pflag.FlagSet
	fieldsByFlag map[string][]string
}

// Option defines a function type for configuring a Binder.
type Option func(*binderOptions)

type binderOptions struct {
	repeatable map[string]bool
}

// WithRepeatableField marks a root-level field whose flag may appear several
// times; the last occurrence wins. The config-file directive uses this.
func WithRepeatableField(name string) Option {
	return func(opts *binderOptions) {
		if name != "" {
			opts.repeatable[name] = true
		}
	}
}

// New creates a Binder for the schema, seeding every flag default from the
// effective-defaults instance. Flag order follows schema declaration order.
func New(name string, s *schema.Schema, defaults *schema.Instance, opts ...Option) *Binder {
	options := binderOptions{repeatable: map[string]bool{}}
	for _, apply := range opts {
		apply(&options)
	}

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SortFlags = false
	flags.SetNormalizeFunc(normalizeFlagName)

	binder := &Binder{
		schema:       s,
		defaults:     defaults,
		flags:        flags,
		fieldsByFlag: map[string][]string{},
	}

	binder.register(s, defaults, nil, &options)

	// A repeatable directive outside the schema (a config flag with no
	// backing field) still gets a flag so the final parse tolerates it.
	for fieldName := range options.repeatable {
		if _, declared := s.Field(fieldName); !declared {
			flags.StringArray(flagNameFor([]string{fieldName}), nil, "configuration file (repeatable)")
		}
	}

	return binder
}

// FlagSet exposes the underlying flag set, e.g. to print usage text.
func (b *Binder) FlagSet() *pflag.FlagSet {
	return b.flags
}

// Parse runs the final pass over the full argument list. Flags the user set
// override the effective defaults; the result is re-projected through the
// schema so CLI values are coerced and validated like file values. Unknown
// flags are errors here. A help request returns pflag.ErrHelp.
func (b *Binder) Parse(args []string) (*schema.Instance, error) {
	err := b.flags.Parse(args)
	if err != nil {
		return nil, err
	}

	overlay := map[string]any{}

	b.flags.Visit(func(flag *pflag.Flag) {
		path, known := b.fieldsByFlag[flag.Name]
		if !known {
			return
		}

		setNested(overlay, path, flagValue(flag))
	})

	merged := merge.Maps(b.defaults.ToMap(), overlay)

	instance, err := schema.Project(merged, b.schema)
	if err != nil {
		return nil, fmt.Errorf("applying command-line overrides: %w", err)
	}

	return instance, nil
}

func (b *Binder) register(s *schema.Schema, defaults *schema.Instance, prefix []string, options *binderOptions) {
	for _, field := range s.Fields() {
		path := append(append([]string{}, prefix...), field.Name)

		if field.Kind == schema.KindRecord {
			b.register(field.Schema, defaults.GetRecord(field.Name), path, options)

			continue
		}

		flagName := flagNameFor(path)
		b.fieldsByFlag[flagName] = path

		usage := fieldUsage(field)

		if len(prefix) == 0 && options.repeatable[field.Name] {
			b.flags.StringArray(flagName, nil, usage)

			continue
		}

		if field.Optional && !defaults.IsSet(field.Name) {
			b.flags.String(flagName, "", usage)

			continue
		}

		switch field.Kind {
		case schema.KindInt:
			b.flags.Int(flagName, defaults.GetInt(field.Name), usage)
		case schema.KindFloat:
			b.flags.Float64(flagName, defaults.GetFloat(field.Name), usage)
		case schema.KindBool:
			b.flags.Bool(flagName, defaults.GetBool(field.Name), usage)
		case schema.KindSequence:
			b.flags.StringSlice(flagName, sequenceStrings(defaults.GetSequence(field.Name)), usage)
		default:
			b.flags.String(flagName, defaults.GetString(field.Name), usage)
		}
	}
}

func fieldUsage(field schema.Field) string {
	usage := field.Usage

	if field.Kind == schema.KindChoice && len(field.Choices) > 0 {
		suffix := fmt.Sprintf("one of: %s", strings.Join(field.Choices, ", "))
		if usage == "" {
			usage = suffix
		} else {
			usage = usage + " (" + suffix + ")"
		}
	}

	return usage
}

// flagValue extracts the raw override for one set flag. Repeatable flags
// yield their last occurrence; everything else round-trips through the
// flag's string form and is re-coerced by the projector.
func flagValue(flag *pflag.Flag) any {
	if flag.Value.Type() == "stringArray" {
		if sliceValue, ok := flag.Value.(pflag.SliceValue); ok {
			values := sliceValue.GetSlice()
			if len(values) > 0 {
				return values[len(values)-1]
			}

			return ""
		}
	}

	return flag.Value.String()
}

func sequenceStrings(elements []any) []string {
	result := make([]string, len(elements))
	for i, element := range elements {
		result[i] = fmt.Sprintf("%v", element)
	}

	return result
}

func setNested(mapping map[string]any, path []string, value any) {
	current := mapping

	for _, segment := range path[:len(path)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[segment] = next
		}

		current = next
	}

	current[path[len(path)-1]] = value
}

func flagNameFor(path []string) string {
	segments := make([]string, len(path))
	for i, segment := range path {
		segments[i] = strings.ReplaceAll(segment, "_", "-")
	}

	return strings.Join(segments, ".")
}

// normalizeFlagName lets --model_type and --model-type address the same flag.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
