package dictionary

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mrlokans/lexicon/internal/entities"
)

// PartitionStore is the read side of the SQLite word store.
type PartitionStore interface {
	FindPartition(ctx context.Context, language string, length int, letter string) ([]entities.DictionaryWord, error)
}

// DatabaseLoader reads partitions from a PartitionStore. Rows are turned
// back into structured JSON entries so they share the file normalizer.
type DatabaseLoader struct {
	store      PartitionStore
	normalizer Normalizer
}

// NewDatabaseLoader creates a loader backed by store.
func NewDatabaseLoader(store PartitionStore) *DatabaseLoader {
	return &DatabaseLoader{
		store:      store,
		normalizer: Normalizer{Schema: SchemaStructured},
	}
}

func (l *DatabaseLoader) LoadPartition(ctx context.Context, key PartitionKey) (*Bucket, error) {
	rows, err := l.store.FindPartition(ctx, key.Language, key.Length, key.Letter)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, &IOError{Path: "sqlite:" + key.String(), Err: err}
	}

	raw := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		entry, err := rowToRaw(row)
		if err != nil {
			return nil, err
		}
		raw[row.Word] = entry
	}
	return NewBucket(raw), nil
}

// MeaningKey addresses the whole length partition: the store is indexed,
// so sharding by letter buys nothing.
func (l *DatabaseLoader) MeaningKey(language string, length int, _ string) PartitionKey {
	return LengthKey(language, length)
}

func (l *DatabaseLoader) Normalizer() Normalizer {
	return l.normalizer
}

func rowToRaw(row entities.DictionaryWord) (json.RawMessage, error) {
	fields := map[string]json.RawMessage{
		keyDefinitions: columnRaw(row.Definitions),
		keySynonyms:    columnRaw(row.Synonyms),
		keyUsages:      columnRaw(row.Usages),
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, &FormatError{Source: fmt.Sprintf("row %d (%s)", row.ID, row.Word), Reason: "invalid meaning column", Err: err}
	}
	return data, nil
}

func columnRaw(value string) json.RawMessage {
	if value == "" {
		return json.RawMessage("null")
	}
	return json.RawMessage(value)
}
