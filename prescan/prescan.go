package prescan

import "strings"

// Result holds the directive values found by a scan.
type Result struct {
	// ConfigPaths lists every config-file directive value in argument order.
	ConfigPaths []string
	// Mode is the last mode flag value seen, valid only when ModeSet is true.
	Mode    string
	ModeSet bool
}

// Scan reads the argument list for occurrences of the config-file directive
// and the mode flag. The argument slice is never mutated; the final parser
// re-reads the same tokens.
//
// Flag names are matched with dashes and underscores interchangeable, so
// --model-type and --model_type both address a mode field named
// "model_type". The config directive is repeatable and order-preserving;
// for the mode flag the last occurrence wins. An empty modeFlag disables
// mode scanning. A directive missing its value is skipped. Scanning stops
// at a bare "--" terminator, matching the final parser's end-of-flags rule.
func Scan(args []string, configFlag, modeFlag string) Result {
	configKey := canonical(configFlag)
	modeKey := canonical(modeFlag)

	var result Result

	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			// end-of-flags terminator; the final parser stops here too
			break
		}

		name, value, hasValue := splitToken(args[i])
		if name == "" {
			continue
		}

		key := canonical(name)
		if key != configKey && (modeKey == "" || key != modeKey) {
			continue
		}

		if !hasValue {
			if i+1 >= len(args) || isFlagToken(args[i+1]) {
				// directive without a value; the final parser reports it
				continue
			}

			value = args[i+1]
			i++
		}

		if value == "" {
			continue
		}

		if key == configKey {
			result.ConfigPaths = append(result.ConfigPaths, value)
		} else {
			result.Mode = value
			result.ModeSet = true
		}
	}

	return result
}

// splitToken breaks a "--name" or "--name=value" token into its parts.
// Anything that is not a long flag yields an empty name.
func splitToken(token string) (name, value string, hasValue bool) {
	rest, isFlag := strings.CutPrefix(token, "--")
	if !isFlag || rest == "" {
		return "", "", false
	}

	name, value, hasValue = strings.Cut(rest, "=")

	return name, value, hasValue
}

func isFlagToken(token string) bool {
	return strings.HasPrefix(token, "--")
}

// canonical folds dashes to underscores so both flag spellings match.
func canonical(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
