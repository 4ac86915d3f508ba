package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Words WordService

	// Optional SQLite word store; nil when no language uses it
	Database Pinger

	// Root of the per-language dictionary data, checked by /health
	DictionaryDir string

	// Application info
	Version string
}
