// Package database provides the SQLite word store.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── words/           # Partition queries and bulk upserts
//
// The lookup service only ever reads from the store: the "database" layout
// of the manifest plugs words.Repository into dictionary.NewDatabaseLoader.
// Rows are written offline by the import-sqlite command.
//
//	db, err := database.NewDatabase("./lexicon.db")
//	repo := words.NewRepository(db.DB)
//	loader := dictionary.NewDatabaseLoader(repo)
//
// # Interface Implementations
//
//   - words.Repository: implements dictionary.PartitionStore
package database
