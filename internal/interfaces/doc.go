// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Dictionary Interfaces
//
//   - PartitionLoader: Reads one partition of a language's data (internal/dictionary/loader.go)
//   - PartitionStore: Read side of the SQLite word store (internal/dictionary/loader_database.go)
//
// ## Transport Interfaces
//
//   - WordService: Lookup operations served over HTTP (internal/http/words.go)
//   - Pinger: Backing store health check (internal/http/health.go)
//
// ## Background Interfaces
//
//   - StatsSource: Cache counters for the stats reporter (internal/scheduler/stats_reporter.go)
//
// # Adding a New Storage Layout
//
// To serve a language from a new on-disk shape:
//
//  1. Add a Layout constant and its name to the oneof tag in internal/dictionary/manifest.go
//  2. Implement PartitionLoader in internal/dictionary/loader_<layout>.go
//  3. Return it from newLoader in internal/dictionary/language.go
//  4. Add a compile-time check to checks.go
//
// # Regenerating Mocks
//
//	go generate ./internal/dictionary/...
package interfaces
