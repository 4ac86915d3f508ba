package dictionary

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mrlokans/lexicon/internal/entities"
)

// Schema describes the shape of a raw bucket entry.
type Schema string

const (
	// SchemaStructured entries are objects with definitions, synonyms and usages.
	SchemaStructured Schema = "structured"
	// SchemaMeaningList entries are arrays of meaning strings.
	SchemaMeaningList Schema = "meaning_list"
	// SchemaPlain entries carry no meanings at all.
	SchemaPlain Schema = "plain"
)

const (
	keyDefinitions = "definitions"
	keySynonyms    = "synonyms"
	keyUsages      = "usages"
)

// Normalizer converts raw bucket entries of one source schema into WordEntry.
type Normalizer struct {
	Schema Schema
	// UsageAliases are consulted in order when an entry has no "usages" key.
	UsageAliases []string
}

// Normalize converts word and its raw representation into a WordEntry.
// A nil or JSON null raw value yields an entry with empty lists.
func (n Normalizer) Normalize(word string, raw json.RawMessage) (entities.WordEntry, error) {
	word = NormalizeWord(word)
	if word == "" {
		return entities.WordEntry{}, NewValidationError("word", "must not be empty")
	}

	entry := entities.NewWordEntry(word)
	if isNullRaw(raw) || n.Schema == SchemaPlain {
		return entry, nil
	}

	source := fmt.Sprintf("entry %q", word)

	switch n.Schema {
	case SchemaMeaningList:
		defs, err := decodeStringList(source, raw)
		if err != nil {
			return entities.WordEntry{}, err
		}
		entry.Definitions = defs
		return entry, nil
	case SchemaStructured, "":
	default:
		return entities.WordEntry{}, &FormatError{Source: source, Reason: fmt.Sprintf("unknown schema %q", n.Schema)}
	}

	if firstByte(raw) != '{' {
		return entities.WordEntry{}, &FormatError{Source: source, Reason: "expected an object of meanings"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return entities.WordEntry{}, &FormatError{Source: source, Reason: "invalid JSON", Err: err}
	}

	var err error
	if entry.Definitions, err = decodeStringList(source+"."+keyDefinitions, fields[keyDefinitions]); err != nil {
		return entities.WordEntry{}, err
	}
	if entry.Synonyms, err = decodeStringList(source+"."+keySynonyms, fields[keySynonyms]); err != nil {
		return entities.WordEntry{}, err
	}

	usageKey := keyUsages
	if _, ok := fields[keyUsages]; !ok {
		for _, alias := range n.UsageAliases {
			if _, ok := fields[alias]; ok {
				usageKey = alias
				break
			}
		}
	}
	if entry.Usages, err = decodeStringList(source+"."+usageKey, fields[usageKey]); err != nil {
		return entities.WordEntry{}, err
	}

	return entry, nil
}

func decodeStringList(source string, raw json.RawMessage) ([]string, error) {
	if isNullRaw(raw) {
		return []string{}, nil
	}
	if firstByte(raw) != '[' {
		return nil, &FormatError{Source: source, Reason: "expected a list of strings"}
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, &FormatError{Source: source, Reason: "expected a list of strings", Err: err}
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

func isNullRaw(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
