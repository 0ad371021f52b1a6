package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Hero leaves home", CleanText("  Hero 🚀 leaves\n\n\thome ✨ "))
	assert.Equal(t, "a b", CleanText("a\u200Bb"))
	assert.Equal(t, "", CleanText(" \n "))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Heros_Journey_v1_2", SanitizeFilename(`Hero's Journey "v1.2"`))
}

func TestSaveAndLoadText(t *testing.T) {
	dir := t.TempDir()

	target, err := SaveTextToFile(dir, "story circle", "html", "<div></div>")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "story_circle.html"), target)

	got, err := LoadText(target)
	require.NoError(t, err)
	assert.Equal(t, "<div></div>", got)
}

func TestLoadTextMissingFile(t *testing.T) {
	_, err := LoadText(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 3, WordCount(" one two\nthree "))
}

func TestToIndentedJson(t *testing.T) {
	out, err := ToIndentedJson(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", out)
}

func TestToJsonStr(t *testing.T) {
	out, err := ToJsonStr(map[string]string{"html": "<div>\n</div>"})
	require.NoError(t, err)
	assert.Equal(t, `{"html":"<div>\n</div>"}`, out)

	_, err = ToJsonStr(make(chan int))
	assert.Error(t, err)
}
