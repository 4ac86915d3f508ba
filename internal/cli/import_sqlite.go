package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mrlokans/lexicon/internal/config"
	"github.com/mrlokans/lexicon/internal/database"
	"github.com/mrlokans/lexicon/internal/database/words"
	"github.com/mrlokans/lexicon/internal/dictionary"
	"github.com/mrlokans/lexicon/internal/entities"
)

// ImportSQLiteCommand copies a file-based language into the SQLite word store.
type ImportSQLiteCommand struct {
	DictionaryDir string
	ManifestPath  string
	Language      string
	DatabasePath  string
	Verbose       bool

	out io.Writer
}

func NewImportSQLiteCommand() *ImportSQLiteCommand {
	return &ImportSQLiteCommand{out: os.Stdout}
}

func (cmd *ImportSQLiteCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-sqlite", flag.ExitOnError)

	fs.StringVar(&cmd.DictionaryDir, "dir", config.DefaultDictionaryDir, "Dictionary data directory")
	fs.StringVar(&cmd.ManifestPath, "manifest", "", "Path to manifest.yaml (default: <dir>/manifest.yaml or built-in languages)")
	fs.StringVar(&cmd.Language, "lang", "", "Language code to import (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the SQLite word store")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print every partition")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-sqlite -lang <code> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Load every partition of a file-based language and write it to the SQLite\n")
		fmt.Fprintf(os.Stderr, "word store. Existing words of the language and length are updated in place.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Language == "" {
		return fmt.Errorf("required flag -lang not provided")
	}
	return nil
}

func (cmd *ImportSQLiteCommand) Run() error {
	ctx := context.Background()

	manifest, err := dictionary.LoadManifest(cmd.ManifestPath, cmd.DictionaryDir)
	if err != nil {
		return err
	}
	spec, ok := manifest.Language(cmd.Language)
	if !ok {
		return fmt.Errorf("language %q is not in the manifest", cmd.Language)
	}
	if spec.Layout == dictionary.LayoutDatabase {
		return fmt.Errorf("language %q is already stored in the database", spec.Code)
	}

	languages, err := dictionary.BuildLanguages(dictionary.Manifest{
		DefaultLanguage: spec.Code,
		Languages:       []dictionary.LanguageSpec{spec},
	}, cmd.DictionaryDir, nil)
	if err != nil {
		return err
	}
	lang := languages[0]

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()
	repo := words.NewRepository(db.DB)

	fmt.Fprintf(cmd.out, "Importing %s (%s) into %s\n", lang.Code, lang.Layout, cmd.DatabasePath)

	imported := 0
	for _, n := range lang.Lengths() {
		bucket, err := lang.Loader.LoadPartition(ctx, dictionary.LengthKey(lang.Code, n))
		if errors.Is(err, dictionary.ErrNotFound) {
			if cmd.Verbose {
				fmt.Fprintf(cmd.out, "  %s/%d: no data, skipped\n", lang.Code, n)
			}
			continue
		}
		if err != nil {
			return err
		}

		rows, err := partitionRows(lang, n, bucket)
		if err != nil {
			return err
		}
		if err := repo.UpsertWords(ctx, rows); err != nil {
			return fmt.Errorf("failed to store %s/%d: %w", lang.Code, n, err)
		}

		imported += len(rows)
		if cmd.Verbose {
			fmt.Fprintf(cmd.out, "  %s/%d: %d words\n", lang.Code, n, len(rows))
		}
	}

	fmt.Fprintf(cmd.out, "Imported %d words\n", imported)

	counts, err := repo.CountByLanguage(ctx)
	if err != nil {
		return fmt.Errorf("failed to count stored words: %w", err)
	}
	codes := make([]string, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	fmt.Fprintln(cmd.out, "Word store totals:")
	for _, code := range codes {
		fmt.Fprintf(cmd.out, "  %s: %d\n", code, counts[code])
	}
	return nil
}

// partitionRows converts the words of a length partition into store rows.
// Rows keep the partition's length so misfiled words stay where the
// fallback scan expects them.
func partitionRows(lang *dictionary.Language, length int, bucket *dictionary.Bucket) ([]entities.DictionaryWord, error) {
	normalizer := lang.Loader.Normalizer()
	rows := make([]entities.DictionaryWord, 0, bucket.Len())

	for _, word := range bucket.Words() {
		raw, _ := bucket.Lookup(word)
		entry, err := normalizer.Normalize(word, raw)
		if err != nil {
			return nil, err
		}

		row := entities.DictionaryWord{
			Language: lang.Code,
			Length:   length,
			Letter:   dictionary.ShardKey(lang.Code, length, word).Letter,
			Word:     word,
		}
		if row.Definitions, err = encodeList(entry.Definitions); err != nil {
			return nil, err
		}
		if row.Synonyms, err = encodeList(entry.Synonyms); err != nil {
			return nil, err
		}
		if row.Usages, err = encodeList(entry.Usages); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func encodeList(items []string) (string, error) {
	if len(items) == 0 {
		return "", nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
