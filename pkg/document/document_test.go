package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJoinsLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("the cat\r\nthe dog\nthe end"), 0644))

	doc, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "input.txt", doc.Title)
	assert.Equal(t, "the cat\nthe dog\nthe end", doc.Text)
}

func TestReadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	doc, err := Read(path)
	require.NoError(t, err)
	assert.Empty(t, doc.Text)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestWriteHTMLCreatesFolder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	path, err := WriteHTML(dir, "cloud.html", "<html></html>\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cloud.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>\n", string(data))
}

func TestWriteHTMLDefaultsToCwd(t *testing.T) {
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	path, err := WriteHTML("", "cloud.html", "x")
	require.NoError(t, err)
	assert.Equal(t, "cloud.html", path)
	assert.FileExists(t, "cloud.html")
}
