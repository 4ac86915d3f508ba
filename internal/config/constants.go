package config

const (
	// DefaultDictionaryDir is where per-language dictionary data is read from
	DefaultDictionaryDir = "./dict"

	// DefaultDatabasePath is the default path for the SQLite word store
	DefaultDatabasePath = "./lexicon.db"
)
