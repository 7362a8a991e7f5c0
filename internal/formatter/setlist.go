// package formatter groups setlist records into sets and renders them as tables, Markdown, CSV or JSON
package formatter

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/desertthunder/phx/internal/models"
)

// Notice classifies why a [SetlistView] has nothing to show.
type Notice int

const (
	NoticeNone    Notice = iota
	NoticeNoData         // lookup came back absent
	NoticeInvalid        // input was not a sequence
	NoticeNoSongs        // sequence held no usable records
)

// Message returns the user-facing text for the notice.
func (n Notice) Message() string {
	switch n {
	case NoticeNoData:
		return "No setlist data available for this date."
	case NoticeInvalid:
		return "Invalid setlist data format. Expected list."
	case NoticeNoSongs:
		return "No songs found in the setlist data."
	default:
		return ""
	}
}

// SetlistView is the grouped, ordered form of a setlist ready for rendering.
type SetlistView struct {
	Notice   Notice            `json:"-"`
	Received string            `json:"-"` // Type name of invalid input
	Sets     []models.SetGroup `json:"sets"`
}

// Empty reports whether there are no sets to render.
func (v SetlistView) Empty() bool {
	return len(v.Sets) == 0
}

// NoticeText returns the notice message, naming the received type for invalid input.
func (v SetlistView) NoticeText() string {
	if v.Notice == NoticeInvalid && v.Received != "" {
		return fmt.Sprintf("%s Received data type: %s", v.Notice.Message(), v.Received)
	}
	return v.Notice.Message()
}

// Entries flattens the view's sets back into a single slice, set by set.
func (v SetlistView) Entries() []models.SetlistEntry {
	var out []models.SetlistEntry
	for _, g := range v.Sets {
		out = append(out, g.Entries...)
	}
	return out
}

// Present groups raw setlist data by set label and orders it for display.
//
// data is whatever the setlist lookup produced. Absence (nil, including a nil slice) and non-sequence input
// become notices rather than errors. Elements that are not records are skipped.
func Present(data any) SetlistView {
	items, view, ok := sequence(data)
	if !ok {
		return view
	}

	groups := map[string][]models.SetlistEntry{}
	for _, item := range items {
		record, ok := item.(models.Record)
		if !ok {
			continue
		}

		entry := models.EntryFromRecord(record)
		groups[entry.Set] = append(groups[entry.Set], entry)
	}

	if len(groups) == 0 {
		return SetlistView{Notice: NoticeNoSongs}
	}

	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return LabelLess(labels[i], labels[j]) })

	view = SetlistView{Sets: make([]models.SetGroup, 0, len(labels))}
	for _, label := range labels {
		entries := groups[label]
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Position < entries[j].Position })

		view.Sets = append(view.Sets, models.SetGroup{
			Label:   label,
			Title:   models.SetTitle(label),
			Entries: entries,
		})
	}

	return view
}

// sequence unwraps data into a slice of elements. When ok is false the returned view carries the notice.
func sequence(data any) ([]any, SetlistView, bool) {
	switch t := data.(type) {
	case nil:
		return nil, SetlistView{Notice: NoticeNoData}, false
	case []any:
		if t == nil {
			return nil, SetlistView{Notice: NoticeNoData}, false
		}
		return t, SetlistView{}, true
	case []models.Record:
		if t == nil {
			return nil, SetlistView{Notice: NoticeNoData}, false
		}
		items := make([]any, len(t))
		for i, r := range t {
			items[i] = r
		}
		return items, SetlistView{}, true
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, SetlistView{Notice: NoticeInvalid, Received: fmt.Sprintf("%T", data)}, false
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil, SetlistView{Notice: NoticeNoData}, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, SetlistView{}, true
}

// LabelLess orders set labels: numeric labels ascend numerically ahead of
// other labels, which ascend lexically. "1" < "2" < "10" < "E" < "e".
func LabelLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}
