package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifest_IsValid(t *testing.T) {
	m := DefaultManifest()
	require.NoError(t, m.Validate())
	assert.Equal(t, "en-us", m.DefaultLanguage)
	assert.Len(t, m.Languages, 2)
}

func TestParseManifest(t *testing.T) {
	data := []byte(`
default_language: PT-BR
languages:
  - code: pt-br
    layout: sharded
    min_length: 3
    max_length: 8
    usage_aliases: [examples]
  - code: pt-legacy
    layout: plain
    path: listas
    min_length: 4
    max_length: 8
    file_prefix: palavras_
`)

	m, err := ParseManifest(data)
	require.NoError(t, err)

	assert.Equal(t, "pt-br", m.DefaultLanguage)
	require.Len(t, m.Languages, 2)
	assert.Equal(t, "pt-br", m.Languages[0].Path)
	assert.Equal(t, []string{"examples"}, m.Languages[0].UsageAliases)
	assert.Equal(t, LayoutPlain, m.Languages[1].Layout)
	assert.Equal(t, "listas", m.Languages[1].Path)
}

func TestParseManifest_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "unknown layout",
			data:    "default_language: en\nlanguages:\n  - {code: en, layout: csv, min_length: 4, max_length: 8}\n",
			wantErr: "layout",
		},
		{
			name:    "max below min",
			data:    "default_language: en\nlanguages:\n  - {code: en, layout: flat, min_length: 8, max_length: 4}\n",
			wantErr: "max_length",
		},
		{
			name:    "no languages",
			data:    "default_language: en\nlanguages: []\n",
			wantErr: "languages",
		},
		{
			name:    "duplicate code",
			data:    "default_language: en\nlanguages:\n  - {code: en, layout: flat, min_length: 4, max_length: 8}\n  - {code: EN, layout: plain, min_length: 4, max_length: 8}\n",
			wantErr: "duplicate language",
		},
		{
			name:    "undeclared default",
			data:    "default_language: fr\nlanguages:\n  - {code: en, layout: flat, min_length: 4, max_length: 8}\n",
			wantErr: "default language",
		},
		{
			name:    "not yaml",
			data:    "languages: [",
			wantErr: "parse manifest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadManifest(t *testing.T) {
	t.Run("falls back to defaults when the directory has no manifest", func(t *testing.T) {
		m, err := LoadManifest("", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, DefaultManifest(), m)
	})

	t.Run("reads manifest.yaml from the directory", func(t *testing.T) {
		dir := t.TempDir()
		content := "default_language: en\nlanguages:\n  - {code: en, layout: bundle, min_length: 4, max_length: 8}\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFileName), []byte(content), 0o644))

		m, err := LoadManifest("", dir)
		require.NoError(t, err)
		assert.Equal(t, LayoutBundle, m.Languages[0].Layout)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"), "")
		assert.Error(t, err)
	})
}

func TestBuildLanguages(t *testing.T) {
	dir := t.TempDir()

	languages, err := BuildLanguages(DefaultManifest(), dir, nil)
	require.NoError(t, err)
	require.Len(t, languages, 2)

	assert.IsType(t, &FlatFileLoader{}, languages[0].Loader)
	assert.IsType(t, &ShardedDirectoryLoader{}, languages[1].Loader)
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8}, languages[1].Lengths())
	assert.True(t, languages[1].Supports(3))
	assert.False(t, languages[0].Supports(3))

	db := Manifest{
		DefaultLanguage: "en",
		Languages:       []LanguageSpec{{Code: "en", Layout: LayoutDatabase, MinLength: 4, MaxLength: 8}},
	}
	_, err = BuildLanguages(db, dir, nil)
	assert.ErrorContains(t, err, "requires a database")

	languages, err = BuildLanguages(db, dir, &stubStore{})
	require.NoError(t, err)
	assert.IsType(t, &DatabaseLoader{}, languages[0].Loader)
}

func TestManifest_Lookups(t *testing.T) {
	m := DefaultManifest()

	assert.True(t, m.UsesLayout(LayoutSharded))
	assert.False(t, m.UsesLayout(LayoutDatabase))

	spec, ok := m.Language(" PT-BR ")
	require.True(t, ok)
	assert.Equal(t, LayoutSharded, spec.Layout)
	assert.Equal(t, []string{"examples"}, spec.UsageAliases)

	_, ok = m.Language("de-de")
	assert.False(t, ok)
}
