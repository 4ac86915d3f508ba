package entities

import (
	"time"

	"gorm.io/gorm"
)

// WordEntry is the canonical record served for a single dictionary word.
// List fields are never nil so they always serialize as JSON arrays.
type WordEntry struct {
	Word        string   `json:"word"`
	Definitions []string `json:"definitions"`
	Synonyms    []string `json:"synonyms"`
	Usages      []string `json:"usages"`
}

// NewWordEntry returns an entry for word with empty meaning lists.
func NewWordEntry(word string) WordEntry {
	return WordEntry{
		Word:        word,
		Definitions: []string{},
		Synonyms:    []string{},
		Usages:      []string{},
	}
}

// HasMeanings reports whether any of the meaning lists is non-empty.
func (e WordEntry) HasMeanings() bool {
	return len(e.Definitions) > 0 || len(e.Synonyms) > 0 || len(e.Usages) > 0
}

// DictionaryWord is a row of the SQLite word store. Meaning lists are kept
// as JSON-encoded text columns and decoded by the dictionary loaders. A word
// is unique per language and length, so a word filed under two lengths keeps
// both rows.
type DictionaryWord struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Language    string         `gorm:"size:16;not null;uniqueIndex:idx_dictionary_word,priority:1;index:idx_dictionary_partition,priority:1" json:"language"`
	Length      int            `gorm:"not null;uniqueIndex:idx_dictionary_word,priority:2;index:idx_dictionary_partition,priority:2" json:"length"`
	Letter      string         `gorm:"size:8;not null;index:idx_dictionary_partition,priority:3" json:"letter"`
	Word        string         `gorm:"size:64;not null;uniqueIndex:idx_dictionary_word,priority:3" json:"word"`
	Definitions string         `gorm:"type:text" json:"definitions"`
	Synonyms    string         `gorm:"type:text" json:"synonyms"`
	Usages      string         `gorm:"type:text" json:"usages"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (DictionaryWord) TableName() string {
	return "dictionary_words"
}
