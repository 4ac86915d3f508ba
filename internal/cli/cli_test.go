package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newDictionaryDir lays out an English flat language and a Portuguese
// sharded one under a temporary directory.
func newDictionaryDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "en-us", "four.json"), `{"tree": {"definitions": ["a woody plant"]}}`)
	writeFile(t, filepath.Join(dir, "en-us", "five.json"), `{"grape": {"definitions": ["a small fruit"], "synonyms": ["vine fruit"]}}`)
	writeFile(t, filepath.Join(dir, "en-us", "six.json"), `{"apple": {"definitions": ["a round fruit"]}}`)
	writeFile(t, filepath.Join(dir, "pt-br", "four", "c.json"), `{"casa": {"definitions": ["moradia"], "examples": ["minha casa"]}}`)
	writeFile(t, filepath.Join(dir, "pt-br", "four", "g.json"), `{"gato": {}}`)
	return dir
}
