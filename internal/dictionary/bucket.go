package dictionary

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// PartitionKey identifies one cached Bucket. Letter is empty for a whole
// length partition and holds the initial letter for a per-letter shard.
type PartitionKey struct {
	Language string
	Length   int
	Letter   string
}

// LengthKey returns the key of a whole length partition.
func LengthKey(language string, length int) PartitionKey {
	return PartitionKey{Language: language, Length: length}
}

// ShardKey returns the key of the per-letter shard holding word.
func ShardKey(language string, length int, word string) PartitionKey {
	return PartitionKey{Language: language, Length: length, Letter: initialLetter(word)}
}

// IsShard reports whether the key addresses a single initial-letter shard.
func (k PartitionKey) IsShard() bool {
	return k.Letter != ""
}

func (k PartitionKey) String() string {
	if k.IsShard() {
		return fmt.Sprintf("%s/%d/%s", k.Language, k.Length, k.Letter)
	}
	return fmt.Sprintf("%s/%d", k.Language, k.Length)
}

// Bucket is the immutable word set of one partition. Each word maps to its
// raw source representation; plain word lists store nil.
type Bucket struct {
	entries map[string]json.RawMessage
	words   []string
}

// NewBucket builds a Bucket from raw entries. Keys are trimmed and
// lower-cased, blank keys are dropped, and on a case collision the entry
// whose original key sorts first wins.
func NewBucket(raw map[string]json.RawMessage) *Bucket {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make(map[string]json.RawMessage, len(raw))
	for _, k := range keys {
		word := NormalizeWord(k)
		if word == "" {
			continue
		}
		if _, exists := entries[word]; exists {
			continue
		}
		entries[word] = raw[k]
	}
	return newBucketFromEntries(entries)
}

// NewWordListBucket builds a Bucket of bare words without meanings.
func NewWordListBucket(words []string) *Bucket {
	entries := make(map[string]json.RawMessage, len(words))
	for _, w := range words {
		word := NormalizeWord(w)
		if word == "" {
			continue
		}
		entries[word] = nil
	}
	return newBucketFromEntries(entries)
}

// EmptyBucket returns a Bucket with no words.
func EmptyBucket() *Bucket {
	return newBucketFromEntries(map[string]json.RawMessage{})
}

func newBucketFromEntries(entries map[string]json.RawMessage) *Bucket {
	words := make([]string, 0, len(entries))
	for w := range entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return &Bucket{entries: entries, words: words}
}

// mergeBuckets combines shards into one Bucket. Earlier buckets win on
// duplicate words.
func mergeBuckets(buckets ...*Bucket) *Bucket {
	total := 0
	for _, b := range buckets {
		total += b.Len()
	}
	entries := make(map[string]json.RawMessage, total)
	for _, b := range buckets {
		for w, raw := range b.entries {
			if _, exists := entries[w]; !exists {
				entries[w] = raw
			}
		}
	}
	return newBucketFromEntries(entries)
}

// Len returns the number of words in the bucket.
func (b *Bucket) Len() int {
	return len(b.words)
}

// IsEmpty reports whether the bucket holds no words.
func (b *Bucket) IsEmpty() bool {
	return len(b.words) == 0
}

// WordAt returns the i-th word in ascending order.
func (b *Bucket) WordAt(i int) string {
	return b.words[i]
}

// Words returns a copy of the bucket's words in ascending order.
func (b *Bucket) Words() []string {
	out := make([]string, len(b.words))
	copy(out, b.words)
	return out
}

// Lookup returns the raw representation of word and whether it is present.
func (b *Bucket) Lookup(word string) (json.RawMessage, bool) {
	raw, ok := b.entries[word]
	return raw, ok
}

// Contains reports whether word is in the bucket.
func (b *Bucket) Contains(word string) bool {
	_, ok := b.entries[word]
	return ok
}

// NormalizeWord trims and lower-cases a word.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// WordLength counts letters, not bytes, so accented words measure correctly.
func WordLength(word string) int {
	return utf8.RuneCountInString(word)
}

func initialLetter(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}
