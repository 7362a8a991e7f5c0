package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/desertthunder/phx/internal/shared"
	tu "github.com/desertthunder/phx/internal/testing"
)

var showDate = time.Date(1999, 7, 24, 0, 0, 0, 0, time.UTC)

const (
	dateKey = "1999-07-24"
	showKey = "1252698103"
)

func alpineValley() *tu.MockService {
	return tu.NewMockService().
		On("shows", "showdate", dateKey, []any{
			map[string]any{
				"showid":      json.Number(showKey),
				"venue":       "Alpine Valley Music Theatre",
				"city":        "East Troy",
				"state":       "WI",
				"artist_name": "Phish",
			},
		}).
		On("setlists", "showdate", dateKey, []any{
			tu.SetlistRecord(json.Number(showKey), "1", json.Number("1"), "Llama"),
		}).
		On("setlists", "showid", showKey, []any{
			tu.SetlistRecord(json.Number(showKey), "1", json.Number("1"), "Llama"),
			tu.SetlistRecord(json.Number(showKey), "1", json.Number("2"), "Wolfman's Brother"),
			tu.SetlistRecord(json.Number(showKey), "e", json.Number("1"), "Loving Cup"),
		})
}

func TestLookupEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("ShowByDate", func(t *testing.T) {
		t.Run("Returns First Show", func(t *testing.T) {
			engine := NewLookupEngine(alpineValley(), nil)

			show, err := engine.ShowByDate(ctx, showDate)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if show == nil {
				t.Fatal("expected a show")
			}
			if show.ShowID != showKey || show.Venue != "Alpine Valley Music Theatre" {
				t.Errorf("unexpected show %+v", show)
			}
		})

		t.Run("No Show Is Not An Error", func(t *testing.T) {
			engine := NewLookupEngine(tu.NewMockService(), nil)

			show, err := engine.ShowByDate(ctx, showDate)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if show != nil {
				t.Errorf("expected nil show, got %+v", show)
			}
		})

		t.Run("Malformed First Record", func(t *testing.T) {
			svc := tu.NewMockService().On("shows", "showdate", dateKey, []any{"not a record"})
			engine := NewLookupEngine(svc, nil)

			show, err := engine.ShowByDate(ctx, showDate)
			if err != nil || show != nil {
				t.Errorf("expected nil, nil; got %+v, %v", show, err)
			}
		})

		t.Run("Propagates Service Errors", func(t *testing.T) {
			boom := errors.New("connection reset")
			svc := tu.NewMockService().Fail("shows", "showdate", dateKey, boom)
			engine := NewLookupEngine(svc, nil)

			if _, err := engine.ShowByDate(ctx, showDate); !errors.Is(err, boom) {
				t.Errorf("expected service error, got %v", err)
			}
		})

		t.Run("Missing Fields Default", func(t *testing.T) {
			svc := tu.NewMockService().On("shows", "showdate", dateKey, []any{map[string]any{}})
			engine := NewLookupEngine(svc, nil)

			show, err := engine.ShowByDate(ctx, showDate)
			if err != nil || show == nil {
				t.Fatalf("expected a show, got %+v, %v", show, err)
			}
			if show.Venue != "Unknown" || show.ArtistName != "Unknown" {
				t.Errorf("expected Unknown defaults, got %+v", show)
			}
		})
	})

	t.Run("SetlistByDate", func(t *testing.T) {
		t.Run("Resolves Through Show ID", func(t *testing.T) {
			svc := alpineValley()
			engine := NewLookupEngine(svc, nil)

			entries, err := engine.SetlistByDate(ctx, showDate)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(entries) != 3 {
				t.Errorf("expected the 3 entries from the show id query, got %d", len(entries))
			}

			want := []string{tu.Key("setlists", "showdate", dateKey), tu.Key("setlists", "showid", showKey)}
			if len(svc.Calls) != len(want) {
				t.Fatalf("expected calls %v, got %v", want, svc.Calls)
			}
			for i := range want {
				if svc.Calls[i] != want[i] {
					t.Errorf("call %d: expected %s, got %s", i, want[i], svc.Calls[i])
				}
			}
		})

		t.Run("Empty Date Query", func(t *testing.T) {
			svc := tu.NewMockService()
			engine := NewLookupEngine(svc, nil)

			entries, err := engine.SetlistByDate(ctx, showDate)
			if err != nil || entries != nil {
				t.Errorf("expected nil, nil; got %v, %v", entries, err)
			}
			if svc.CallCount() != 1 {
				t.Errorf("expected a single query, got %d", svc.CallCount())
			}
		})

		t.Run("First Entry Without Show ID", func(t *testing.T) {
			for _, first := range []any{
				map[string]any{"song": "Llama"},
				map[string]any{"showid": nil},
				map[string]any{"showid": ""},
				"garbage",
			} {
				svc := tu.NewMockService().On("setlists", "showdate", dateKey, []any{first})
				engine := NewLookupEngine(svc, nil)

				entries, err := engine.SetlistByDate(ctx, showDate)
				if err != nil || entries != nil {
					t.Errorf("%v: expected nil, nil; got %v, %v", first, entries, err)
				}
				if svc.CallCount() != 1 {
					t.Errorf("%v: expected no show id query, got %v", first, svc.Calls)
				}
			}
		})

		t.Run("Empty Show ID Query", func(t *testing.T) {
			svc := tu.NewMockService().On("setlists", "showdate", dateKey, []any{
				tu.SetlistRecord(json.Number(showKey), "1", json.Number("1"), "Llama"),
			})
			engine := NewLookupEngine(svc, nil)

			entries, err := engine.SetlistByDate(ctx, showDate)
			if err != nil || entries != nil {
				t.Errorf("expected nil, nil; got %v, %v", entries, err)
			}
		})

		t.Run("Propagates Service Errors", func(t *testing.T) {
			boom := errors.New("timeout")
			svc := alpineValley().Fail("setlists", "showid", showKey, boom)
			engine := NewLookupEngine(svc, nil)

			if _, err := engine.SetlistByDate(ctx, showDate); !errors.Is(err, boom) {
				t.Errorf("expected service error, got %v", err)
			}
		})
	})

	t.Run("Run", func(t *testing.T) {
		t.Run("Both Lookups", func(t *testing.T) {
			engine := NewLookupEngine(alpineValley(), shared.NewLogger(nil))
			progress := make(chan ProgressUpdate, 10)

			result, err := engine.Run(ctx, progress, showDate)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			close(progress)

			if result.ID == "" {
				t.Error("expected correlation id")
			}
			if result.Show == nil || result.Show.City != "East Troy" {
				t.Errorf("unexpected show %+v", result.Show)
			}
			if len(result.Setlist) != 3 {
				t.Errorf("expected 3 setlist entries, got %d", len(result.Setlist))
			}

			var phases []Phase
			for update := range progress {
				phases = append(phases, update.Phase)
			}
			want := []Phase{FetchShow, FetchSetlist, ResolveShowID, FetchShowSetlist, Complete}
			if len(phases) != len(want) {
				t.Fatalf("expected phases %v, got %v", want, phases)
			}
			for i := range want {
				if phases[i] != want[i] {
					t.Errorf("phase %d: expected %s, got %s", i, want[i], phases[i])
				}
			}
		})

		t.Run("Lookups Are Independent", func(t *testing.T) {
			svc := tu.NewMockService().
				On("setlists", "showdate", dateKey, []any{tu.SetlistRecord(json.Number(showKey), "1", 1, "Llama")}).
				On("setlists", "showid", showKey, []any{tu.SetlistRecord(json.Number(showKey), "1", 1, "Llama")})
			engine := NewLookupEngine(svc, nil)

			result, err := engine.Run(ctx, nil, showDate)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.Show != nil {
				t.Errorf("expected no show, got %+v", result.Show)
			}
			if len(result.Setlist) != 1 {
				t.Errorf("expected setlist despite missing show, got %d", len(result.Setlist))
			}
		})

		t.Run("Full Progress Channel Does Not Block", func(t *testing.T) {
			engine := NewLookupEngine(alpineValley(), nil)
			progress := make(chan ProgressUpdate)

			if _, err := engine.Run(ctx, progress, showDate); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("Show Error Stops Run", func(t *testing.T) {
			boom := errors.New("dns failure")
			svc := alpineValley().Fail("shows", "showdate", dateKey, boom)
			engine := NewLookupEngine(svc, nil)

			_, err := engine.Run(ctx, nil, showDate)
			if !errors.Is(err, boom) {
				t.Errorf("expected wrapped service error, got %v", err)
			}
		})

		t.Run("Nil Service", func(t *testing.T) {
			engine := NewLookupEngine(nil, nil)

			if _, err := engine.Run(ctx, nil, showDate); !errors.Is(err, shared.ErrServiceUnavailable) {
				t.Errorf("expected ErrServiceUnavailable, got %v", err)
			}
		})
	})
}

func TestPhaseString(t *testing.T) {
	if FetchShowSetlist.String() != "fetch_show_setlist" {
		t.Errorf("unexpected phase string %s", FetchShowSetlist)
	}
	if Phase(99).String() != "" {
		t.Error("expected unknown phase to be empty")
	}
}
