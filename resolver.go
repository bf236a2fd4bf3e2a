package strata

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xalexb/strata/bind"
	"github.com/0xalexb/strata/layer"
	"github.com/0xalexb/strata/logging"
	"github.com/0xalexb/strata/merge"
	"github.com/0xalexb/strata/prescan"
	"github.com/0xalexb/strata/schema"
)

// DefaultFileName is the base default layer file, resolved relative to the
// default config directory.
const DefaultFileName = "default.yaml"

const (
	defaultName        = "strata"
	defaultConfigDir   = "configs"
	defaultConfigField = "config"
)

// ErrNilSchema is returned when a Resolver is created without a schema.
var ErrNilSchema = errors.New("schema must not be nil")

// Resolver resolves a single typed configuration value from layered sources:
// CLI overrides over user config files over the mode-specific default file
// over the base default file over the schema's own defaults.
//
// A Resolver holds no state between invocations; Resolve and Parse may be
// called repeatedly and with identical inputs produce identical results.
type Resolver struct {
	schema  *schema.Schema
	options Options
	logger  *slog.Logger
}

// Result is the outcome of one resolution pass, before CLI overrides.
type Result struct {
	// Defaults is the effective-defaults instance: every file and schema
	// layer merged and projected. It seeds the final CLI parse and the
	// default values shown in help text.
	Defaults *schema.Instance
	// Merged is the raw mapping the defaults were projected from.
	Merged map[string]any
	// ConfigPath is the last user config file loaded, or "".
	ConfigPath string
	// Mode is the effective mode value that selected the mode default file,
	// or "" when no mode field is configured.
	Mode string
}

// New creates a Resolver for the given schema.
func New(s *schema.Schema, opts ...Option) (*Resolver, error) {
	if s == nil {
		return nil, ErrNilSchema
	}

	options := Options{
		Name:             defaultName,
		DefaultConfigDir: defaultConfigDir,
		ConfigField:      defaultConfigField,
	}

	for _, apply := range opts {
		apply(&options)
	}

	return &Resolver{
		schema:  s,
		options: options,
		logger:  createLogger(&options),
	}, nil
}

func createLogger(options *Options) *slog.Logger {
	if options.Logger != nil {
		return options.Logger
	}

	if options.LogLevel != "" {
		return logging.New(logging.Config{Level: options.LogLevel, Component: "strata"}, os.Stderr)
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Resolve runs the file-layer pipeline over the given CLI arguments:
// pre-scan directives, resolve the effective mode, load the base default,
// mode default, and user config files, deep-merge them in precedence order,
// and project the merged mapping onto the schema.
//
// A missing user config file or any projection failure aborts with an error;
// missing default files do not. CLI overrides are not applied here: hand
// Result.Defaults to the final parser, or use Parse.
func (r *Resolver) Resolve(args []string) (*Result, error) {
	scan := prescan.Scan(args, r.options.ConfigField, r.options.ModeField)
	r.logger.Debug("prescan complete",
		slog.Any("config_paths", scan.ConfigPaths),
		slog.Bool("mode_override", scan.ModeSet),
	)

	base, err := layer.LoadOptional(filepath.Join(r.options.DefaultConfigDir, DefaultFileName))
	if err != nil {
		return nil, err
	}

	user, lastPath, err := layer.LoadUser(scan.ConfigPaths)
	if err != nil {
		return nil, err
	}

	mode := r.resolveMode(scan, base, user)

	modeLayer := map[string]any{}

	if r.options.ModeField != "" && mode != "" {
		modePath := filepath.Join(r.options.DefaultConfigDir, "default_"+mode+".yaml")

		modeLayer, err = layer.LoadOptional(modePath)
		if err != nil {
			return nil, err
		}

		r.logger.Debug("mode layer loaded", slog.String("mode", mode), slog.String("path", modePath))
	}

	merged := merge.Layers(base, modeLayer, user)

	if lastPath != "" {
		if _, ok := r.schema.Field(r.options.ConfigField); ok {
			merged[r.options.ConfigField] = lastPath
		}
	}

	defaults, err := schema.Project(merged, r.schema)
	if err != nil {
		return nil, fmt.Errorf("projecting merged configuration: %w", err)
	}

	r.logger.Debug("resolution complete",
		slog.String("mode", mode),
		slog.String("config_path", lastPath),
	)

	return &Result{
		Defaults:   defaults,
		Merged:     merged,
		ConfigPath: lastPath,
		Mode:       mode,
	}, nil
}

// resolveMode picks the effective mode before the mode file is merged in:
// CLI override over user files over the base default file over the schema
// default. The mode file itself never influences the mode field.
func (r *Resolver) resolveMode(scan prescan.Result, base, user map[string]any) string {
	if r.options.ModeField == "" {
		return ""
	}

	mode := ""

	if field, ok := r.schema.Field(r.options.ModeField); ok && field.Default != nil {
		mode = scalarString(field.Default)
	}

	if value, ok := base[r.options.ModeField]; ok && value != nil {
		mode = scalarString(value)
	}

	if value, ok := user[r.options.ModeField]; ok && value != nil {
		mode = scalarString(value)
	}

	if scan.ModeSet {
		mode = scan.Mode
	}

	return mode
}

// Parse is the full pipeline: Resolve, then the final CLI override pass.
// The returned instance is the resolved configuration. A --help argument
// prints usage with merged defaults and returns pflag.ErrHelp.
func (r *Resolver) Parse(args []string) (*schema.Instance, error) {
	result, err := r.Resolve(args)
	if err != nil {
		return nil, err
	}

	binder := bind.New(r.options.Name, r.schema, result.Defaults,
		bind.WithRepeatableField(r.options.ConfigField),
	)

	return binder.Parse(args)
}

func scalarString(value any) string {
	text := fmt.Sprintf("%v", value)

	return strings.TrimSpace(text)
}
