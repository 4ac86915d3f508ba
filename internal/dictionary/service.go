package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/mrlokans/lexicon/internal/entities"
)

// LanguageInfo summarizes a served language.
type LanguageInfo struct {
	Code      string `json:"code"`
	Layout    Layout `json:"layout"`
	MinLength int    `json:"min_length"`
	MaxLength int    `json:"max_length"`
	Meanings  bool   `json:"meanings"`
	Default   bool   `json:"default"`
}

// Service answers random-word and meaning queries from cached partitions.
// It is safe for concurrent use.
type Service struct {
	languages       map[string]*Language
	defaultLanguage string
	cache           *Cache
	intN            func(n int) int
	logger          *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithRandom replaces the random index source. intN must return a value in
// [0, n) and be safe for concurrent use.
func WithRandom(intN func(n int) int) Option {
	return func(s *Service) {
		s.intN = intN
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a lookup service over languages. The cache is owned by
// the caller so tests can inspect it and production can share it.
func NewService(languages []*Language, defaultLanguage string, cache *Cache, opts ...Option) (*Service, error) {
	if cache == nil {
		return nil, errors.New("dictionary service: cache is required")
	}

	byCode := make(map[string]*Language, len(languages))
	for _, lang := range languages {
		if _, dup := byCode[lang.Code]; dup {
			return nil, fmt.Errorf("dictionary service: duplicate language %q", lang.Code)
		}
		byCode[lang.Code] = lang
	}

	defaultLanguage = NormalizeWord(defaultLanguage)
	if _, ok := byCode[defaultLanguage]; !ok {
		return nil, fmt.Errorf("dictionary service: default language %q is not configured", defaultLanguage)
	}

	s := &Service{
		languages:       byCode,
		defaultLanguage: defaultLanguage,
		cache:           cache,
		intN:            rand.IntN,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GetRandomWord returns a uniformly chosen word of the given length.
//
// theme is accepted for forward compatibility; no source schema carries
// thematic tags yet, so it does not filter anything.
func (s *Service) GetRandomWord(ctx context.Context, length int, language, theme string) (entities.WordEntry, error) {
	lang, err := s.language(language)
	if err != nil {
		return entities.WordEntry{}, err
	}
	if !lang.Supports(length) {
		return entities.WordEntry{}, NewValidationError("length",
			fmt.Sprintf("must be between %d and %d for %s", lang.MinLength, lang.MaxLength, lang.Code))
	}
	if theme != "" {
		s.logger.DebugContext(ctx, "theme filter ignored", slog.String("theme", theme), slog.String("language", lang.Code))
	}

	bucket, err := s.bucket(ctx, lang, LengthKey(lang.Code, length))
	if err != nil {
		return entities.WordEntry{}, err
	}
	if bucket.IsEmpty() {
		return entities.WordEntry{}, &NotFoundError{What: fmt.Sprintf("words of length %d for %s", length, lang.Code)}
	}

	word := bucket.WordAt(s.intN(bucket.Len()))
	raw, _ := bucket.Lookup(word)
	return lang.Loader.Normalizer().Normalize(word, raw)
}

// GetMeanings returns the entry for word. The partition matching the
// word's length is probed first, then every supported length in ascending
// order, so entries filed under the wrong length are still found.
func (s *Service) GetMeanings(ctx context.Context, word, language string) (entities.WordEntry, error) {
	normalized := NormalizeWord(word)
	if normalized == "" {
		return entities.WordEntry{}, NewValidationError("word", "must not be empty")
	}

	lang, err := s.language(language)
	if err != nil {
		return entities.WordEntry{}, err
	}
	if !lang.HasMeanings() {
		return entities.WordEntry{}, NewValidationError("lang", fmt.Sprintf("meanings are not available for %s", lang.Code))
	}

	for _, key := range meaningCandidates(lang, normalized) {
		bucket, err := s.bucket(ctx, lang, key)
		if err != nil {
			// A length with no data file cannot hold the word; keep probing.
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return entities.WordEntry{}, err
		}
		if raw, ok := bucket.Lookup(normalized); ok {
			return lang.Loader.Normalizer().Normalize(normalized, raw)
		}
	}

	return entities.WordEntry{}, &NotFoundError{What: fmt.Sprintf("word %q in %s", normalized, lang.Code)}
}

// meaningCandidates lists the partitions to probe for word, in order.
func meaningCandidates(lang *Language, word string) []PartitionKey {
	length := WordLength(word)
	keys := make([]PartitionKey, 0, lang.MaxLength-lang.MinLength+2)
	if lang.Supports(length) {
		keys = append(keys, lang.Loader.MeaningKey(lang.Code, length, word))
	}
	for _, n := range lang.Lengths() {
		if n == length {
			continue
		}
		keys = append(keys, lang.Loader.MeaningKey(lang.Code, n, word))
	}
	return keys
}

// Preload loads every whole-length partition of every language. It keeps
// going after a failure and returns all errors joined.
func (s *Service) Preload(ctx context.Context) error {
	var errs []error
	for _, code := range s.languageCodes() {
		lang := s.languages[code]
		for _, n := range lang.Lengths() {
			if _, err := s.bucket(ctx, lang, LengthKey(lang.Code, n)); err != nil {
				errs = append(errs, fmt.Errorf("preload %s/%d: %w", lang.Code, n, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Languages describes the configured languages sorted by code.
func (s *Service) Languages() []LanguageInfo {
	codes := s.languageCodes()
	infos := make([]LanguageInfo, 0, len(codes))
	for _, code := range codes {
		lang := s.languages[code]
		infos = append(infos, LanguageInfo{
			Code:      lang.Code,
			Layout:    lang.Layout,
			MinLength: lang.MinLength,
			MaxLength: lang.MaxLength,
			Meanings:  lang.HasMeanings(),
			Default:   lang.Code == s.defaultLanguage,
		})
	}
	return infos
}

// DefaultLanguage returns the code used when a request names no language.
func (s *Service) DefaultLanguage() string {
	return s.defaultLanguage
}

// Stats returns the cache statistics.
func (s *Service) Stats() CacheStats {
	return s.cache.Stats()
}

func (s *Service) language(code string) (*Language, error) {
	code = NormalizeWord(code)
	if code == "" {
		code = s.defaultLanguage
	}
	lang, ok := s.languages[code]
	if !ok {
		return nil, NewValidationError("lang", fmt.Sprintf("unsupported language %q", code))
	}
	return lang, nil
}

func (s *Service) languageCodes() []string {
	codes := make([]string, 0, len(s.languages))
	for code := range s.languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (s *Service) bucket(ctx context.Context, lang *Language, key PartitionKey) (*Bucket, error) {
	return s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (*Bucket, error) {
		start := time.Now()
		b, err := lang.Loader.LoadPartition(ctx, key)
		if err != nil {
			s.logger.DebugContext(ctx, "dictionary partition load failed",
				slog.String("partition", key.String()), slog.Any("error", err))
			return nil, err
		}
		s.logger.DebugContext(ctx, "dictionary partition loaded",
			slog.String("partition", key.String()),
			slog.Int("words", b.Len()),
			slog.Duration("duration", time.Since(start)))
		return b, nil
	})
}
