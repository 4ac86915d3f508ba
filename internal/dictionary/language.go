package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
)

// Language binds a language code to its supported lengths and loader.
type Language struct {
	Code      string
	Layout    Layout
	MinLength int
	MaxLength int
	Loader    PartitionLoader
}

// Supports reports whether length is within the language's range.
func (l *Language) Supports(length int) bool {
	return length >= l.MinLength && length <= l.MaxLength
}

// Lengths returns every supported length in ascending order.
func (l *Language) Lengths() []int {
	lengths := make([]int, 0, l.MaxLength-l.MinLength+1)
	for n := l.MinLength; n <= l.MaxLength; n++ {
		lengths = append(lengths, n)
	}
	return lengths
}

// HasMeanings reports whether the language's source carries meanings.
func (l *Language) HasMeanings() bool {
	return l.Loader.Normalizer().Schema != SchemaPlain
}

// BuildLanguages creates a Language for every manifest entry. File layouts
// are rooted at dir joined with the entry's path; the database layout
// needs a non-nil store.
func BuildLanguages(m Manifest, dir string, store PartitionStore) ([]*Language, error) {
	languages := make([]*Language, 0, len(m.Languages))
	for _, spec := range m.Languages {
		loader, err := newLoader(spec, dir, store)
		if err != nil {
			return nil, fmt.Errorf("language %s: %w", spec.Code, err)
		}
		languages = append(languages, &Language{
			Code:      spec.Code,
			Layout:    spec.Layout,
			MinLength: spec.MinLength,
			MaxLength: spec.MaxLength,
			Loader:    loader,
		})
	}
	return languages, nil
}

func newLoader(spec LanguageSpec, dir string, store PartitionStore) (PartitionLoader, error) {
	root := filepath.Join(dir, spec.Path)

	switch spec.Layout {
	case LayoutFlat:
		return NewFlatFileLoader(os.DirFS(root), spec.UsageAliases), nil
	case LayoutSharded:
		return NewShardedDirectoryLoader(os.DirFS(root), spec.UsageAliases), nil
	case LayoutPlain:
		return NewPlainListLoader(os.DirFS(root), spec.FilePrefix), nil
	case LayoutBundle:
		return NewBundleLoader(os.DirFS(root), spec.File), nil
	case LayoutDatabase:
		if store == nil {
			return nil, fmt.Errorf("layout %q requires a database", spec.Layout)
		}
		return NewDatabaseLoader(store), nil
	default:
		return nil, fmt.Errorf("unknown layout %q", spec.Layout)
	}
}
