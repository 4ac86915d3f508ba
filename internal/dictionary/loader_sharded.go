package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
)

// UnlistedShard is the shard letter that stands in for every initial letter
// without a shard file. Meaning lookups for such words share one empty
// partition per length instead of caching one per letter.
const UnlistedShard = "-"

// ShardedDirectoryLoader reads one directory per word length ("three/" ...
// "eight/"), each holding one JSON object file per initial letter.
//
// Meaning lookups only load the shard of the word's first letter. Random
// word selection merges every shard of the length directory.
type ShardedDirectoryLoader struct {
	fsys       fs.FS
	normalizer Normalizer

	mu      sync.Mutex
	letters map[int]map[string]struct{}
}

// NewShardedDirectoryLoader creates a loader rooted at fsys.
func NewShardedDirectoryLoader(fsys fs.FS, usageAliases []string) *ShardedDirectoryLoader {
	return &ShardedDirectoryLoader{
		fsys:       fsys,
		normalizer: Normalizer{Schema: SchemaStructured, UsageAliases: usageAliases},
		letters:    make(map[int]map[string]struct{}),
	}
}

func (l *ShardedDirectoryLoader) LoadPartition(ctx context.Context, key PartitionKey) (*Bucket, error) {
	dir := LengthName(key.Length)
	if !key.IsShard() {
		return l.loadDirectory(ctx, key, dir)
	}

	// Shard file names never come from the requested letter directly: only
	// letters present in the directory listing are read.
	letters, err := l.shardLetters(key.Length)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return EmptyBucket(), nil
		}
		return nil, &IOError{Path: dir, Err: err}
	}
	if _, ok := letters[key.Letter]; !ok {
		return EmptyBucket(), nil
	}
	return l.loadShard(ctx, path.Join(dir, key.Letter+".json"))
}

// shardLetters lists the shard letters of a length directory. Successful
// listings are kept for the loader's lifetime.
func (l *ShardedDirectoryLoader) shardLetters(length int) (map[string]struct{}, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if letters, ok := l.letters[length]; ok {
		return letters, nil
	}

	entries, err := fs.ReadDir(l.fsys, LengthName(length))
	if err != nil {
		return nil, err
	}
	letters := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isJSONFile(entry.Name()) {
			continue
		}
		letters[strings.TrimSuffix(entry.Name(), ".json")] = struct{}{}
	}
	l.letters[length] = letters
	return letters, nil
}

// loadShard returns an empty bucket when the shard file does not exist:
// no word of that length starts with the letter.
func (l *ShardedDirectoryLoader) loadShard(ctx context.Context, name string) (*Bucket, error) {
	data, err := readFile(ctx, l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return EmptyBucket(), nil
		}
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, &IOError{Path: name, Err: err}
	}

	raw, err := decodeObject(name, data)
	if err != nil {
		return nil, err
	}
	return NewBucket(raw), nil
}

func (l *ShardedDirectoryLoader) loadDirectory(ctx context.Context, key PartitionKey, dir string) (*Bucket, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{What: fmt.Sprintf("partition %s (%s/)", key, dir), Err: err}
		}
		return nil, &IOError{Path: dir, Err: err}
	}

	// fs.ReadDir returns entries sorted by name, so the merge is deterministic.
	shards := make([]*Bucket, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isJSONFile(entry.Name()) {
			continue
		}
		shard, err := l.loadShard(ctx, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		shards = append(shards, shard)
	}
	return mergeBuckets(shards...), nil
}

// MeaningKey returns the shard of the word's initial letter when the length
// directory has a file for it, and the UnlistedShard key otherwise.
func (l *ShardedDirectoryLoader) MeaningKey(language string, length int, word string) PartitionKey {
	key := ShardKey(language, length, word)
	letters, err := l.shardLetters(length)
	if err == nil {
		if _, ok := letters[key.Letter]; ok {
			return key
		}
	}
	key.Letter = UnlistedShard
	return key
}

func (l *ShardedDirectoryLoader) Normalizer() Normalizer {
	return l.normalizer
}
