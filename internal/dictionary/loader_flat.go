package dictionary

import (
	"context"
	"io/fs"
)

// FlatFileLoader reads one JSON object file per word length, named after
// the spelled-out length ("four.json" ... "eight.json").
type FlatFileLoader struct {
	fsys       fs.FS
	normalizer Normalizer
}

// NewFlatFileLoader creates a loader rooted at fsys.
func NewFlatFileLoader(fsys fs.FS, usageAliases []string) *FlatFileLoader {
	return &FlatFileLoader{
		fsys:       fsys,
		normalizer: Normalizer{Schema: SchemaStructured, UsageAliases: usageAliases},
	}
}

// LoadPartition reads the file for key.Length. The letter of a shard key
// is ignored because flat files are not sharded.
func (l *FlatFileLoader) LoadPartition(ctx context.Context, key PartitionKey) (*Bucket, error) {
	name := LengthName(key.Length) + ".json"

	data, err := readRequired(ctx, l.fsys, key, name)
	if err != nil {
		return nil, err
	}

	raw, err := decodeObject(name, data)
	if err != nil {
		return nil, err
	}
	return NewBucket(raw), nil
}

func (l *FlatFileLoader) MeaningKey(language string, length int, _ string) PartitionKey {
	return LengthKey(language, length)
}

func (l *FlatFileLoader) Normalizer() Normalizer {
	return l.normalizer
}
