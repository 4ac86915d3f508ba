// Package words provides database operations for the dictionary word store.
//
// # Interface Implementation
//
//	var _ dictionary.PartitionStore = (*Repository)(nil)
//
// # Usage
//
//	repo := words.NewRepository(db)
//	rows, err := repo.FindPartition(ctx, "en-us", 5, "")
package words

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/lexicon/internal/entities"
)

const upsertBatchSize = 500

// Repository handles all dictionary word database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new word repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindPartition returns the words of one language and length ordered by
// word. A non-empty letter narrows the result to words starting with it.
func (r *Repository) FindPartition(ctx context.Context, language string, length int, letter string) ([]entities.DictionaryWord, error) {
	var rows []entities.DictionaryWord
	query := r.db.WithContext(ctx).
		Where("language = ? AND length = ?", language, length)
	if letter != "" {
		query = query.Where("letter = ?", letter)
	}
	err := query.Order("word ASC").Find(&rows).Error
	return rows, err
}

// UpsertWords inserts rows, replacing the meanings of words that already
// exist for the same language and length.
func (r *Repository) UpsertWords(ctx context.Context, rows []entities.DictionaryWord) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "language"}, {Name: "length"}, {Name: "word"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"letter", "definitions", "synonyms", "usages", "updated_at",
		}),
	}).CreateInBatches(rows, upsertBatchSize).Error
}

// CountByLanguage returns the number of stored words per language.
func (r *Repository) CountByLanguage(ctx context.Context) (map[string]int64, error) {
	var results []struct {
		Language string
		Count    int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.DictionaryWord{}).
		Select("language, COUNT(*) as count").
		Group("language").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(results))
	for _, res := range results {
		counts[res.Language] = res.Count
	}
	return counts, nil
}
