package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lexicon/internal/database"
	"github.com/mrlokans/lexicon/internal/database/words"
)

func TestImportSQLiteCommand_ParseFlags(t *testing.T) {
	assert.ErrorContains(t, NewImportSQLiteCommand().ParseFlags([]string{"-dir", "dict"}), "-lang")

	cmd := NewImportSQLiteCommand()
	require.NoError(t, cmd.ParseFlags([]string{"-lang", "pt-br", "-db", "words.db"}))
	assert.Equal(t, "pt-br", cmd.Language)
	assert.Equal(t, "words.db", cmd.DatabasePath)
}

func TestImportSQLiteCommand_Run(t *testing.T) {
	dir := newDictionaryDir(t)
	dbPath := filepath.Join(t.TempDir(), "lexicon.db")
	ctx := context.Background()

	t.Run("imports a flat language", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &ImportSQLiteCommand{DictionaryDir: dir, Language: "en-us", DatabasePath: dbPath, Verbose: true, out: &out}
		require.NoError(t, cmd.Run())

		assert.Contains(t, out.String(), "Imported 3 words")
		assert.Contains(t, out.String(), "en-us/7: no data, skipped")

		db, err := database.NewDatabase(dbPath)
		require.NoError(t, err)
		defer db.Close()

		rows, err := words.NewRepository(db.DB).FindPartition(ctx, "en-us", 5, "")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "grape", rows[0].Word)
		assert.Equal(t, "g", rows[0].Letter)
		assert.Equal(t, `["a small fruit"]`, rows[0].Definitions)
		assert.Equal(t, `["vine fruit"]`, rows[0].Synonyms)
		assert.Empty(t, rows[0].Usages)
	})

	t.Run("imports a sharded language with usage aliases", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &ImportSQLiteCommand{DictionaryDir: dir, Language: "PT-BR", DatabasePath: dbPath, out: &out}
		require.NoError(t, cmd.Run())

		assert.Contains(t, out.String(), "Imported 2 words")
		assert.Contains(t, out.String(), "en-us: 3")
		assert.Contains(t, out.String(), "pt-br: 2")

		db, err := database.NewDatabase(dbPath)
		require.NoError(t, err)
		defer db.Close()

		rows, err := words.NewRepository(db.DB).FindPartition(ctx, "pt-br", 4, "c")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, `["minha casa"]`, rows[0].Usages)
	})

	t.Run("re-import is idempotent", func(t *testing.T) {
		cmd := &ImportSQLiteCommand{DictionaryDir: dir, Language: "en-us", DatabasePath: dbPath, out: &bytes.Buffer{}}
		require.NoError(t, cmd.Run())

		db, err := database.NewDatabase(dbPath)
		require.NoError(t, err)
		defer db.Close()

		counts, err := words.NewRepository(db.DB).CountByLanguage(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), counts["en-us"])
	})

	t.Run("unknown language", func(t *testing.T) {
		cmd := &ImportSQLiteCommand{DictionaryDir: dir, Language: "de-de", DatabasePath: dbPath, out: &bytes.Buffer{}}
		assert.ErrorContains(t, cmd.Run(), "not in the manifest")
	})

	t.Run("database layout cannot be imported", func(t *testing.T) {
		dbDir := t.TempDir()
		writeFile(t, filepath.Join(dbDir, "manifest.yaml"), `
default_language: en-db
languages:
  - code: en-db
    layout: database
    min_length: 4
    max_length: 8
`)
		cmd := &ImportSQLiteCommand{DictionaryDir: dbDir, Language: "en-db", DatabasePath: dbPath, out: &bytes.Buffer{}}
		assert.ErrorContains(t, cmd.Run(), "already stored in the database")
	})
}
