package dictionary

import (
	"context"
	"encoding/json"
	"io/fs"
	"sync"
)

// DefaultBundleFile is the name of the single-file wordnet bundle.
const DefaultBundleFile = "wordnet_words_len4_8.json"

// BundleLoader reads every length from one JSON file shaped as
// {"len_four": {word: [meaning, ...]}, "len_five": {...}}. The file is
// parsed once; each length then decodes only its own section.
type BundleLoader struct {
	fsys fs.FS
	file string

	mu       sync.Mutex
	sections map[string]json.RawMessage
}

// NewBundleLoader creates a loader for file inside fsys. An empty file
// selects DefaultBundleFile.
func NewBundleLoader(fsys fs.FS, file string) *BundleLoader {
	if file == "" {
		file = DefaultBundleFile
	}
	return &BundleLoader{fsys: fsys, file: file}
}

// BundleSection returns the top-level key that holds words of length.
func BundleSection(length int) string {
	return "len_" + LengthName(length)
}

// LoadPartition extracts the section for key.Length from the bundle.
// A missing section yields an empty bucket.
func (l *BundleLoader) LoadPartition(ctx context.Context, key PartitionKey) (*Bucket, error) {
	sections, err := l.bundleSections(ctx, key)
	if err != nil {
		return nil, err
	}

	section, ok := sections[BundleSection(key.Length)]
	if !ok || isNullRaw(section) {
		return EmptyBucket(), nil
	}

	raw, err := decodeObject(l.file+"#"+BundleSection(key.Length), section)
	if err != nil {
		return nil, err
	}
	return NewBucket(raw), nil
}

// bundleSections reads and splits the bundle on first use. Failures are not
// kept, so a later call retries.
func (l *BundleLoader) bundleSections(ctx context.Context, key PartitionKey) (map[string]json.RawMessage, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sections != nil {
		return l.sections, nil
	}

	data, err := readRequired(ctx, l.fsys, key, l.file)
	if err != nil {
		return nil, err
	}
	sections, err := decodeObject(l.file, data)
	if err != nil {
		return nil, err
	}
	l.sections = sections
	return sections, nil
}

func (l *BundleLoader) MeaningKey(language string, length int, _ string) PartitionKey {
	return LengthKey(language, length)
}

func (l *BundleLoader) Normalizer() Normalizer {
	return Normalizer{Schema: SchemaMeaningList}
}
