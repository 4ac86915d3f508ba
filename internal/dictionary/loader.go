package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:generate mockgen -source=loader.go -destination=../mocks/dictionary/mock_loader.go -package=mock_dictionary

// PartitionLoader reads the raw Bucket of one partition from storage. Each
// language gets exactly one loader, selected from the manifest at startup.
type PartitionLoader interface {
	// LoadPartition reads the partition addressed by key. A key with an
	// empty Letter addresses the whole length partition.
	LoadPartition(ctx context.Context, key PartitionKey) (*Bucket, error)
	// MeaningKey returns the partition a meaning lookup for word should probe
	// when searching words of the given length.
	MeaningKey(language string, length int, word string) PartitionKey
	// Normalizer converts this loader's raw entries into WordEntry values.
	Normalizer() Normalizer
}

var lengthNames = map[int]string{
	1:  "one",
	2:  "two",
	3:  "three",
	4:  "four",
	5:  "five",
	6:  "six",
	7:  "seven",
	8:  "eight",
	9:  "nine",
	10: "ten",
	11: "eleven",
	12: "twelve",
}

// LengthName spells out a word length the way partition files are named
// ("five" for 5). Lengths without a spelled name fall back to digits.
func LengthName(length int) string {
	if name, ok := lengthNames[length]; ok {
		return name
	}
	return fmt.Sprintf("%d", length)
}

func readFile(ctx context.Context, fsys fs.FS, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// readRequired reads a file whose absence means the partition does not exist.
func readRequired(ctx context.Context, fsys fs.FS, key PartitionKey, name string) ([]byte, error) {
	data, err := readFile(ctx, fsys, name)
	if err == nil {
		return data, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &NotFoundError{What: fmt.Sprintf("partition %s (%s)", key, name), Err: err}
	}
	if ctx.Err() != nil {
		return nil, err
	}
	return nil, &IOError{Path: name, Err: err}
}

// decodeObject parses data as a JSON object of word -> raw entry.
func decodeObject(source string, data []byte) (map[string]json.RawMessage, error) {
	if firstByte(data) != '{' {
		return nil, &FormatError{Source: source, Reason: "top-level value is not an object"}
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{Source: source, Reason: "invalid JSON", Err: err}
	}
	return raw, nil
}

func isJSONFile(name string) bool {
	return len(name) > len(".json") && strings.HasSuffix(name, ".json")
}
