package strata

import "log/slog"

// Options holds configuration settings for a Resolver.
type Options struct {
	Name             string
	DefaultConfigDir string
	ModeField        string
	ConfigField      string
	LogLevel         string
	Logger           *slog.Logger
	Args             []string
}

// Option defines a function type for applying resolver options.
type Option func(*Options)

// WithName sets the name used for the CLI flag set (shown in usage text).
func WithName(name string) Option {
	return func(opts *Options) {
		opts.Name = name
	}
}

// WithDefaultConfigDir sets the directory containing default.yaml and
// default_<mode>.yaml. Defaults to "configs".
func WithDefaultConfigDir(dir string) Option {
	return func(opts *Options) {
		opts.DefaultConfigDir = dir
	}
}

// WithModeField names the schema field whose resolved value selects the
// mode-specific default file default_<mode>.yaml. Empty disables mode files.
func WithModeField(name string) Option {
	return func(opts *Options) {
		opts.ModeField = name
	}
}

// WithConfigField names the schema field that records the last user config
// file path; it doubles as the config directive's flag name. Defaults to
// "config".
func WithConfigField(name string) Option {
	return func(opts *Options) {
		opts.ConfigField = name
	}
}

// WithLogLevel enables resolution tracing to stderr at the given level.
// Valid levels are: "debug", "info", "warn", "error".
// If not set, resolution is silent.
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogger sets an explicit logger for resolution tracing, overriding
// WithLogLevel.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithArgs sets the CLI arguments used by NewModule. Defaults to
// os.Args[1:].
func WithArgs(args []string) Option {
	return func(opts *Options) {
		opts.Args = args
	}
}
