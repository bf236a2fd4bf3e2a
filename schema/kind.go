package schema

// Kind tags the declared type of a field.
type Kind int

const (
	// KindString is a free-form string field.
	KindString Kind = iota
	// KindInt is an integer field. Numeric strings coerce, truncating any
	// fractional part.
	KindInt
	// KindFloat is a floating-point field.
	KindFloat
	// KindBool is a boolean field. true/yes/1/y/on and false/no/0/n/off
	// coerce case-insensitively.
	KindBool
	// KindPath is a filesystem path field. Values are cleaned on coercion.
	KindPath
	// KindChoice is a string field restricted to a declared membership list.
	KindChoice
	// KindSequence is an ordered sequence of scalar elements.
	KindSequence
	// KindRecord is a nested record described by its own Schema.
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindPath:
		return "path"
	case KindChoice:
		return "choice"
	case KindSequence:
		return "sequence"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}
