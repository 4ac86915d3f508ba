package dictionary

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"strings"
)

// DefaultPlainListPrefix is the file prefix written by split-wordlist.
const DefaultPlainListPrefix = "palavras_"

// PlainListLoader reads newline-delimited word lists, one file per length
// ("palavras_5.txt"). Entries carry no meanings.
type PlainListLoader struct {
	fsys   fs.FS
	prefix string
}

// NewPlainListLoader creates a loader rooted at fsys. An empty prefix
// selects DefaultPlainListPrefix.
func NewPlainListLoader(fsys fs.FS, prefix string) *PlainListLoader {
	if prefix == "" {
		prefix = DefaultPlainListPrefix
	}
	return &PlainListLoader{fsys: fsys, prefix: prefix}
}

// PlainListFileName returns the file name of the list for length.
func PlainListFileName(prefix string, length int) string {
	return fmt.Sprintf("%s%d.txt", prefix, length)
}

func (l *PlainListLoader) LoadPartition(ctx context.Context, key PartitionKey) (*Bucket, error) {
	name := PlainListFileName(l.prefix, key.Length)

	data, err := readRequired(ctx, l.fsys, key, name)
	if err != nil {
		return nil, err
	}

	words, err := ParseWordList(data)
	if err != nil {
		return nil, &FormatError{Source: name, Reason: "unreadable word list", Err: err}
	}
	return NewWordListBucket(words), nil
}

func (l *PlainListLoader) MeaningKey(language string, length int, _ string) PartitionKey {
	return LengthKey(language, length)
}

func (l *PlainListLoader) Normalizer() Normalizer {
	return Normalizer{Schema: SchemaPlain}
}

// ParseWordList splits data into trimmed words, skipping blank lines and
// lines starting with '#'.
func ParseWordList(data []byte) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
