package layer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticSource implements Source with in-memory data.
type staticSource struct {
	data []byte
	err  error
}

func (s *staticSource) Fetch() ([]byte, error) {
	return s.data, s.err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "config.yaml", `
model:
  num_layers: 4
learning_rate: 0.005
`)

	mapping, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"model":         map[string]any{"num_layers": uint64(4)},
		"learning_rate": 0.005,
	}, mapping)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	mapping, err := Load("/nonexistent/path/config.yaml")

	require.Error(t, err)
	assert.Nil(t, mapping)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Path, "nonexistent")
}

func TestLoad_PathIsDirectory(t *testing.T) {
	t.Parallel()

	mapping, err := Load(t.TempDir())

	require.Error(t, err)
	assert.Nil(t, mapping)
	assert.ErrorIs(t, err, ErrPathIsDirectory)
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "broken.yaml", "key: [unclosed\n  nested: {")

	mapping, err := Load(path)

	require.Error(t, err)
	assert.Nil(t, mapping)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "empty.yaml", "")

	mapping, err := Load(path)

	require.NoError(t, err)
	assert.Empty(t, mapping)
}

func TestLoad_NullDocument(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "null.yaml", "null\n")

	mapping, err := Load(path)

	require.NoError(t, err)
	assert.Empty(t, mapping)
}

func TestLoad_NonMappingDocument(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "list.yaml", "- a\n- b\n")

	mapping, err := Load(path)

	require.Error(t, err)
	assert.Nil(t, mapping)
	assert.ErrorIs(t, err, ErrNotMapping)
}

func TestFromSource_StaticData(t *testing.T) {
	t.Parallel()

	source := &staticSource{data: []byte("model:\n  num_layers: 4\n")}

	mapping, err := FromSource(source)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"model": map[string]any{"num_layers": uint64(4)},
	}, mapping)
}

func TestFromSource_FetchError(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("backend unavailable")
	source := &staticSource{err: fetchErr}

	mapping, err := FromSource(source)

	require.Error(t, err)
	assert.Nil(t, mapping)
	assert.ErrorIs(t, err, fetchErr)
}

func TestFromSource_NonMappingDocument(t *testing.T) {
	t.Parallel()

	source := &staticSource{data: []byte("- a\n- b\n")}

	mapping, err := FromSource(source)

	require.Error(t, err)
	assert.Nil(t, mapping)
	assert.ErrorIs(t, err, ErrNotMapping)
}

func TestFileSource_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := "a: 1\n"
	path := writeFile(t, t.TempDir(), "config.yaml", content)

	data, err := NewFileSource(path).Fetch()

	require.NoError(t, err)
	assert.Equal(t, []byte(content), data)
}

func TestFileSource_Fetch_Directory(t *testing.T) {
	t.Parallel()

	data, err := NewFileSource(t.TempDir()).Fetch()

	require.Error(t, err)
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrPathIsDirectory)
}

func TestLoadOptional_MissingFile(t *testing.T) {
	t.Parallel()

	mapping, err := LoadOptional(filepath.Join(t.TempDir(), "default_nosuchmode.yaml"))

	require.NoError(t, err)
	assert.Empty(t, mapping)
}

func TestLoadOptional_EmptyPath(t *testing.T) {
	t.Parallel()

	mapping, err := LoadOptional("")

	require.NoError(t, err)
	assert.Empty(t, mapping)
}

func TestLoadOptional_PresentFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "default.yaml", "a: 1\n")

	mapping, err := LoadOptional(path)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": uint64(1)}, mapping)
}

func TestLoadOptional_PresentButMalformed(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "default.yaml", "key: [unclosed\n  nested: {")

	mapping, err := LoadOptional(path)

	require.Error(t, err)
	assert.Nil(t, mapping)
}

func TestLoadUser_OrderedFold(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	basePath := writeFile(t, dir, "base.yaml", "a: 1\nb: 2\n")
	projectPath := writeFile(t, dir, "project.yaml", "b: 3\n")
	userPath := writeFile(t, dir, "user.yaml", "a: 5\n")

	mapping, lastPath, err := LoadUser([]string{basePath, projectPath, userPath})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": uint64(5), "b": uint64(3)}, mapping)
	assert.Equal(t, userPath, lastPath)
}

func TestLoadUser_Empty(t *testing.T) {
	t.Parallel()

	mapping, lastPath, err := LoadUser(nil)

	require.NoError(t, err)
	assert.Empty(t, mapping)
	assert.Empty(t, lastPath)
}

func TestLoadUser_MissingFileAborts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	presentPath := writeFile(t, dir, "present.yaml", "a: 1\n")
	missingPath := filepath.Join(dir, "missing.yaml")

	mapping, lastPath, err := LoadUser([]string{presentPath, missingPath})

	require.Error(t, err)
	assert.Nil(t, mapping)
	assert.Empty(t, lastPath)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, missingPath, loadErr.Path)
}
