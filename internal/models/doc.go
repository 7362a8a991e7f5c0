// Package models defines the show and setlist entities fetched from Phish.net.
//
// Records arrive as permissive mappings ([Record]) and are normalized into typed values:
//   - [Show] : a dated concert with venue and location metadata
//   - [SetlistEntry] : one song performance tagged with set, position, transition and footnote
//   - [SetGroup] : the entries of one set, ordered by position
//
// Normalization never fails. Missing or oddly typed fields fall back to defaults.
package models
