package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/lexicon/internal/database"
	"github.com/mrlokans/lexicon/internal/database/words"
	"github.com/mrlokans/lexicon/internal/dictionary"
	"github.com/mrlokans/lexicon/internal/http"
	"github.com/mrlokans/lexicon/internal/scheduler"
)

// =============================================================================
// Partition Loaders
// =============================================================================

var _ dictionary.PartitionLoader = (*dictionary.FlatFileLoader)(nil)
var _ dictionary.PartitionLoader = (*dictionary.ShardedDirectoryLoader)(nil)
var _ dictionary.PartitionLoader = (*dictionary.PlainListLoader)(nil)
var _ dictionary.PartitionLoader = (*dictionary.BundleLoader)(nil)
var _ dictionary.PartitionLoader = (*dictionary.DatabaseLoader)(nil)

// =============================================================================
// Data Access Layer
// =============================================================================

// PartitionStore implementations
var _ dictionary.PartitionStore = (*words.Repository)(nil)

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Service Layer
// =============================================================================

var _ http.WordService = (*dictionary.Service)(nil)
var _ scheduler.StatsSource = (*dictionary.Service)(nil)
