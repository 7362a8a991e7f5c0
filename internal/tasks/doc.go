// Package tasks orchestrates date lookups against a concert database with progress reporting.
//
// # Core Operations
//
// [LookupEngine] runs the two independent lookups behind a single date selection:
//
//  1. [LookupEngine.ShowByDate] : one query filtered by showdate, returning the first show or nil
//
//  2. [LookupEngine.SetlistByDate] : resolves the setlist in two steps
//     - Queries setlist entries filtered by showdate
//     - Reads the show identifier from the first entry
//     - Queries every entry for that identifier
//
// The showdate query does not reliably return every song of a show, so the identifier query is the
// authoritative source of completeness. Any empty step yields nil (absence), never an error.
//
// [LookupEngine.Run] performs both lookups in order and returns a [LookupResult].
//
// # Progress Reporting
//
// Run accepts an optional channel of [ProgressUpdate] values. Updates use select with default to prevent blocking.
//
// # Errors
//
// Transport and API errors are returned unchanged. There are no retries.
package tasks
