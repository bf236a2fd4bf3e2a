// Package prescan extracts directive values from raw CLI tokens before the
// schema-aware parse.
//
// The scan is deliberately lenient: it recognizes only the config-file
// directive and the mode flag, tolerates both --flag=value and --flag value
// forms plus dash/underscore spellings, and skips everything else. Unknown
// flags and malformed directives are never errors here; the final parser
// re-reads the same tokens and fails loudly on anything truly invalid.
package prescan
