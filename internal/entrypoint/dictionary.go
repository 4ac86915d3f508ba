package entrypoint

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrlokans/lexicon/internal/database"
	"github.com/mrlokans/lexicon/internal/database/words"
	"github.com/mrlokans/lexicon/internal/dictionary"
)

// DictionaryOptions locates the dictionary data.
type DictionaryOptions struct {
	Dir          string
	ManifestPath string
	DatabasePath string
	Logger       *slog.Logger
}

// Dictionary is a ready-to-query lookup service and the resources it owns.
type Dictionary struct {
	Manifest dictionary.Manifest
	Service  *dictionary.Service
	Cache    *dictionary.Cache
	Database *database.Database // nil unless a language uses the database layout
}

// OpenDictionary loads the manifest, opens the word store when a language
// needs it and builds the lookup service with an empty cache.
func OpenDictionary(opts DictionaryOptions) (*Dictionary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	manifest, err := dictionary.LoadManifest(opts.ManifestPath, opts.Dir)
	if err != nil {
		return nil, err
	}

	d := &Dictionary{Manifest: manifest}

	var store dictionary.PartitionStore
	if manifest.UsesLayout(dictionary.LayoutDatabase) {
		db, err := database.NewDatabase(opts.DatabasePath)
		if err != nil {
			return nil, err
		}
		d.Database = db
		store = words.NewRepository(db.DB)
	}

	languages, err := dictionary.BuildLanguages(manifest, opts.Dir, store)
	if err != nil {
		return nil, errors.Join(err, d.Close())
	}

	d.Cache = dictionary.NewCache()
	d.Service, err = dictionary.NewService(languages, manifest.DefaultLanguage, d.Cache, dictionary.WithLogger(logger))
	if err != nil {
		return nil, errors.Join(err, d.Close())
	}

	for _, lang := range d.Service.Languages() {
		logger.Info("Dictionary language configured",
			slog.String("code", lang.Code),
			slog.String("layout", string(lang.Layout)),
			slog.String("lengths", fmt.Sprintf("%d-%d", lang.MinLength, lang.MaxLength)),
			slog.Bool("default", lang.Default))
	}

	return d, nil
}

// Close releases the word store, if one was opened.
func (d *Dictionary) Close() error {
	if d.Database == nil {
		return nil
	}
	return d.Database.Close()
}
