// Package ui implements an interactive terminal date picker using bubbletea's Elm architecture.
//
// The [Model] holds a single date input. Submitting a date (or stepping a day with pgup/pgdown) runs the
// show and setlist lookups through a [tasks.Lookup] and renders:
//  1. The show heading and a two-column block: venue and location, show id and artist
//  2. One table per set, ordered by set label and position
//
// Lookups run in a goroutine. Progress updates flow through a channel from the LookupEngine and the final
// result arrives as a message, so the view stays responsive while requests are in flight.
//
// Dates outside the allowed range are clamped to the nearest bound rather than rejected.
package ui
