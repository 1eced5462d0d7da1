package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appConf = `ns app
{
	String name = "test-app";
	Int port = "8080";
}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "app.conf", appConf)

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)
	assert.Equal(t, path, fetcher.Path())

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, appConf, string(data))
}

func TestFetcher_Fetch_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("/nonexistent/path/app.conf")()

	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "stat file")
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestFetcher_Fetch_EmptyFile(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(writeFile(t, "empty.conf", ""))()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFetcher_Fetch_DirectoryPath(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(t.TempDir())()

	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestFetcher_Fetch_FileModifiedAfterConstruction_ReturnsCachedData(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "app.conf", `Int version = "1";`)

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`Int version = "2";`), 0o600))

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, `Int version = "1";`, string(data), "Fetch should return cached data, not current file content")

	require.NoError(t, fetcher.Refresh())

	data, err = fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, `Int version = "2";`, string(data), "Refresh should pick up the new content")
}

func TestFetcher_Refresh_KeepsDataOnError(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "app.conf", appConf)

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	require.ErrorIs(t, fetcher.Refresh(), os.ErrNotExist)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, appConf, string(data))
}

func TestFetcher_Fetch_ReturnsCopy_MutationSafe(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(writeFile(t, "app.conf", appConf))()
	require.NoError(t, err)

	data1, err := fetcher.Fetch()
	require.NoError(t, err)

	data1[0] = 'X'

	data2, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, appConf, string(data2), "Fetch should return unmodified cached data")
}

func TestWriter_Write_NewFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "new.conf")

	writer, err := NewWriter(path)()
	require.NoError(t, err)
	assert.Equal(t, path, writer.Path())

	require.NoError(t, writer.Write([]byte(appConf)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, appConf, string(data))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())
}

func TestWriter_Write_ReplacesAndKeepsMode(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "app.conf", appConf)
	require.NoError(t, os.Chmod(path, 0o640))

	writer, err := NewWriter(path)()
	require.NoError(t, err)

	require.NoError(t, writer.Write([]byte(`Int x = "1";`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `Int x = "1";`, string(data))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), stat.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestNewWriter_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewWriter(t.TempDir())()
	require.ErrorIs(t, err, ErrPathIsDirectory)

	_, err = NewWriter(filepath.Join(t.TempDir(), "missing", "app.conf"))()
	require.ErrorIs(t, err, os.ErrNotExist)
}
