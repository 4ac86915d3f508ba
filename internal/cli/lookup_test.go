package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lexicon/internal/dictionary"
	"github.com/mrlokans/lexicon/internal/entities"
)

func TestLookupCommand_ParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"word", []string{"-word", "apple"}, ""},
		{"length with language", []string{"-length", "5", "-lang", "pt-br"}, ""},
		{"neither", []string{"-lang", "en-us"}, "one of -word or -length is required"},
		{"both", []string{"-word", "apple", "-length", "5"}, "mutually exclusive"},
		{"negative length", []string{"-length", "-2"}, "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewLookupCommand().ParseFlags(tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestLookupCommand_Run(t *testing.T) {
	dir := newDictionaryDir(t)

	t.Run("prints meanings", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &LookupCommand{DictionaryDir: dir, Word: "Grape", NoColor: true, out: &out}

		require.NoError(t, cmd.Run())

		assert.Equal(t, "grape\n"+
			"  Definitions:\n"+
			"    1. a small fruit\n"+
			"  Synonyms:\n"+
			"    1. vine fruit\n", out.String())
	})

	t.Run("finds misfiled word", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &LookupCommand{DictionaryDir: dir, Word: "apple", JSON: true, out: &out}

		require.NoError(t, cmd.Run())

		var entry entities.WordEntry
		require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
		assert.Equal(t, []string{"a round fruit"}, entry.Definitions)
	})

	t.Run("random word from sharded language", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &LookupCommand{DictionaryDir: dir, Language: "pt-br", Length: 4, JSON: true, out: &out}

		require.NoError(t, cmd.Run())

		var entry entities.WordEntry
		require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
		assert.Contains(t, []string{"casa", "gato"}, entry.Word)
	})

	t.Run("unknown word", func(t *testing.T) {
		cmd := &LookupCommand{DictionaryDir: dir, Word: "zzzzzznotaword", out: &bytes.Buffer{}}
		err := cmd.Run()
		assert.ErrorIs(t, err, dictionary.ErrNotFound)
	})

	t.Run("length out of range", func(t *testing.T) {
		cmd := &LookupCommand{DictionaryDir: dir, Length: 3, out: &bytes.Buffer{}}
		err := cmd.Run()
		assert.ErrorIs(t, err, dictionary.ErrValidation)
	})
}

func TestPrintEntry_NoMeanings(t *testing.T) {
	var out bytes.Buffer
	printEntry(&out, entities.NewWordEntry("gato"), true)
	assert.Equal(t, "gato\n  (no meanings recorded)\n", out.String())
}
