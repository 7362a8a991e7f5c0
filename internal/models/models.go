package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unknown is the placeholder for missing text attributes.
const Unknown = "Unknown"

// EncoreLabel is the set label assigned to entries that carry none.
const EncoreLabel = "E"

// SegueTransition is the transition value Phish.net uses for a segue into the next song.
const SegueTransition = 1

// TransitionMarker is appended to song titles that segue into the next song.
const TransitionMarker = "→"

// Record is a single object as decoded from a Phish.net response.
type Record = map[string]any

// Show represents a single dated concert.
type Show struct {
	ShowID     string `json:"showid"`
	ShowDate   string `json:"showdate"`
	Venue      string `json:"venue"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	ArtistName string `json:"artist_name"`
}

// Location renders "City, State".
func (s Show) Location() string {
	return fmt.Sprintf("%s, %s", s.City, s.State)
}

// SetlistEntry represents one song performance within a show.
type SetlistEntry struct {
	ShowID      string `json:"showid"`
	Set         string `json:"set"`
	Position    int    `json:"position"`
	HasPosition bool   `json:"-"`
	Song        string `json:"song"`
	Transition  int    `json:"transition"`
	Footnote    string `json:"footnote"`
}

// Segues reports whether the song segued directly into the next one.
func (e SetlistEntry) Segues() bool {
	return e.Transition == SegueTransition
}

// DisplaySong returns the song title with the transition marker appended when it segues.
func (e SetlistEntry) DisplaySong() string {
	if e.Segues() {
		return e.Song + TransitionMarker
	}
	return e.Song
}

// DisplayPosition returns the position as text, empty when the record had none.
func (e SetlistEntry) DisplayPosition() string {
	if !e.HasPosition {
		return ""
	}
	return strconv.Itoa(e.Position)
}

// SetGroup is a labeled set of entries ordered by position.
type SetGroup struct {
	Label   string         `json:"label"`
	Title   string         `json:"title"`
	Entries []SetlistEntry `json:"entries"`
}

// SetTitle names a set label for display, e.g. "Set 2" or "Set Encore".
func SetTitle(label string) string {
	if strings.EqualFold(label, EncoreLabel) {
		return "Set Encore"
	}
	return "Set " + label
}

// ShowFromRecord normalizes a show record, defaulting missing text to [Unknown].
func ShowFromRecord(r Record) Show {
	return Show{
		ShowID:     StringField(r, "showid", Unknown),
		ShowDate:   StringField(r, "showdate", ""),
		Venue:      StringField(r, "venue", Unknown),
		City:       StringField(r, "city", Unknown),
		State:      StringField(r, "state", Unknown),
		Country:    StringField(r, "country", ""),
		ArtistName: StringField(r, "artist_name", Unknown),
	}
}

// EntryFromRecord normalizes a setlist record.
//
// A missing set label becomes [EncoreLabel]; a missing position becomes 0 and
// leaves HasPosition unset.
func EntryFromRecord(r Record) SetlistEntry {
	pos, hasPos := IntField(r, "position")
	transition, _ := IntField(r, "transition")

	return SetlistEntry{
		ShowID:      StringField(r, "showid", ""),
		Set:         StringField(r, "set", EncoreLabel),
		Position:    pos,
		HasPosition: hasPos,
		Song:        StringField(r, "song", Unknown),
		Transition:  transition,
		Footnote:    StringField(r, "footnote", ""),
	}
}

// StringField reads key from r as text. Numbers are formatted without a
// fractional part when whole. Missing, null and empty values yield def.
func StringField(r Record, key, def string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}

	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	case bool:
		s = strconv.FormatBool(t)
	default:
		return def
	}

	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// IntField reads key from r as an integer. The second result is false when
// the key is missing or holds something that is not a whole number.
func IntField(r Record, key string) (int, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, false
	}

	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		return int(t), true
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n, true
		}
	}
	return 0, false
}
