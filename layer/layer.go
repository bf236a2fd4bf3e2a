package layer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xalexb/strata/merge"

	"github.com/goccy/go-yaml"
)

// ErrPathIsDirectory is returned when a config path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrNotMapping is returned when a config file decodes to something other
// than a mapping at the top level (e.g. a bare scalar or a sequence).
var ErrNotMapping = errors.New("document is not a mapping")

// LoadError reports a config layer that was requested but could not be loaded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading config layer %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Source retrieves the raw bytes of a single config document.
// Non-file callers and tests can substitute in-memory data.
type Source interface {
	Fetch() ([]byte, error)
}

// FileSource implements Source by reading a file from the filesystem
// on each Fetch.
type FileSource struct {
	path string
}

// NewFileSource returns a FileSource for the given path. The path is
// cleaned here; it is not checked until Fetch.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: filepath.Clean(path)}
}

// Fetch stats and reads the file. A path that resolves to a directory
// fails with ErrPathIsDirectory.
func (s *FileSource) Fetch() ([]byte, error) {
	stat, err := os.Stat(s.path)
	if err != nil {
		return nil, err
	}

	if stat.IsDir() {
		return nil, ErrPathIsDirectory
	}

	return os.ReadFile(s.path) // #nosec G304 -- path is cleaned and validated
}

// FromSource fetches a document from source and decodes it into a raw
// mapping. An empty document decodes to an empty mapping.
func FromSource(source Source) (map[string]any, error) {
	data, err := source.Fetch()
	if err != nil {
		return nil, err
	}

	return decode(data)
}

// Load reads and decodes the file at path into a raw mapping.
// The file must exist: any fetch or decode failure is a LoadError.
func Load(path string) (map[string]any, error) {
	cleanPath := filepath.Clean(path)

	mapping, err := FromSource(NewFileSource(cleanPath))
	if err != nil {
		return nil, &LoadError{Path: cleanPath, Err: err}
	}

	return mapping, nil
}

// LoadOptional is Load for convention-based default files: an empty path or
// a file that does not exist yields an empty mapping without error. A file
// that exists but cannot be read or decoded is still a LoadError.
func LoadOptional(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{}, nil
	}

	_, err := os.Stat(filepath.Clean(path))
	if os.IsNotExist(err) {
		return map[string]any{}, nil
	}

	return Load(path)
}

// LoadUser loads each user config file in order and deep-merges them,
// first path lowest precedence. It returns the merged mapping and the last
// path in the list, which populates the config field downstream. Every path
// is required: a missing file aborts with a LoadError.
func LoadUser(paths []string) (map[string]any, string, error) {
	result := map[string]any{}
	lastPath := ""

	for _, path := range paths {
		mapping, err := Load(path)
		if err != nil {
			return nil, "", err
		}

		result = merge.Maps(result, mapping)
		lastPath = filepath.Clean(path)
	}

	return result, lastPath, nil
}

// decode unmarshals a YAML document into a raw mapping.
// Empty input and an explicit null document both yield an empty mapping.
func decode(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return map[string]any{}, nil
	}

	var document any

	err := yaml.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if document == nil {
		return map[string]any{}, nil
	}

	mapping, ok := document.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, document)
	}

	return mapping, nil
}
