package shared

import (
	"errors"
	"testing"
	"time"
)

func TestDates(t *testing.T) {
	bounds := DateRange{
		Min:     time.Date(1983, 12, 2, 0, 0, 0, 0, time.UTC),
		Max:     time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC),
		Default: time.Date(1999, 7, 24, 0, 0, 0, 0, time.UTC),
	}

	t.Run("ParseDate", func(t *testing.T) {
		tc := []struct {
			name    string
			input   string
			want    string
			wantErr bool
		}{
			{name: "iso date", input: "1999-07-24", want: "1999-07-24"},
			{name: "surrounding whitespace", input: "  1997-12-31 ", want: "1997-12-31"},
			{name: "us format", input: "07/24/1999", wantErr: true},
			{name: "impossible day", input: "1999-02-30", wantErr: true},
			{name: "empty", input: "", wantErr: true},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				got, err := ParseDate(tt.input)
				if tt.wantErr {
					if !errors.Is(err, ErrInvalidDate) {
						t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", tt.input, err)
					}
					return
				}
				if err != nil {
					t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
				}
				if FormatDate(got) != tt.want {
					t.Errorf("ParseDate(%q) = %s, want %s", tt.input, FormatDate(got), tt.want)
				}
			})
		}
	})

	t.Run("Contains Is Inclusive", func(t *testing.T) {
		if !bounds.Contains(bounds.Min) || !bounds.Contains(bounds.Max) {
			t.Error("expected bounds to include both ends")
		}
		if bounds.Contains(bounds.Min.AddDate(0, 0, -1)) {
			t.Error("expected day before min to be excluded")
		}
		if !bounds.Contains(bounds.Max.Add(23 * time.Hour)) {
			t.Error("expected time of day to be ignored")
		}
	})

	t.Run("Check", func(t *testing.T) {
		err := bounds.Check(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC))
		if !errors.Is(err, ErrDateOutOfRange) {
			t.Errorf("expected ErrDateOutOfRange, got %v", err)
		}
		if err := bounds.Check(bounds.Default); err != nil {
			t.Errorf("expected default date to be valid, got %v", err)
		}
	})

	t.Run("Clamp", func(t *testing.T) {
		if got := bounds.Clamp(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)); !got.Equal(bounds.Min) {
			t.Errorf("expected clamp to min, got %s", FormatDate(got))
		}
		if got := bounds.Clamp(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)); !got.Equal(bounds.Max) {
			t.Errorf("expected clamp to max, got %s", FormatDate(got))
		}
		if got := bounds.Clamp(bounds.Default); !got.Equal(bounds.Default) {
			t.Errorf("expected in-range date unchanged, got %s", FormatDate(got))
		}
	})

	t.Run("Resolve", func(t *testing.T) {
		got, err := bounds.Resolve("")
		if err != nil || !got.Equal(bounds.Default) {
			t.Errorf("expected default date for empty input, got %s, %v", FormatDate(got), err)
		}

		got, err = bounds.Resolve("1995-12-31")
		if err != nil || FormatDate(got) != "1995-12-31" {
			t.Errorf("expected 1995-12-31, got %s, %v", FormatDate(got), err)
		}

		if _, err := bounds.Resolve("1983-12-01"); !errors.Is(err, ErrDateOutOfRange) {
			t.Errorf("expected ErrDateOutOfRange, got %v", err)
		}

		if _, err := bounds.Resolve("yesterday"); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("Day", func(t *testing.T) {
		got := Day(time.Date(1999, 7, 24, 23, 59, 0, 0, time.UTC))
		if got.Hour() != 0 || got.Minute() != 0 || FormatDate(got) != "1999-07-24" {
			t.Errorf("expected midnight 1999-07-24, got %v", got)
		}
	})
}

func TestBrowserCommand(t *testing.T) {
	orig := getRuntime
	t.Cleanup(func() { getRuntime = orig })

	tc := []struct {
		goos    string
		want    string
		wantErr bool
	}{
		{goos: "darwin", want: "open"},
		{goos: "linux", want: "xdg-open"},
		{goos: "windows", want: "cmd"},
		{goos: "plan9", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.goos, func(t *testing.T) {
			getRuntime = func() string { return tt.goos }

			cmd, err := browserCommand("http://127.0.0.1:3000")
			if tt.wantErr {
				if err == nil {
					t.Error("expected error for unsupported platform")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd.Args[0] != tt.want {
				t.Errorf("expected %s, got %s", tt.want, cmd.Args[0])
			}
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	data := map[string]string{"song": "Tweezer"}

	compact, err := MarshalJSON(data, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(compact) != `{"song":"Tweezer"}` {
		t.Errorf("unexpected compact output: %s", compact)
	}

	pretty, err := MarshalJSON(data, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(pretty) != "{\n  \"song\": \"Tweezer\"\n}" {
		t.Errorf("unexpected pretty output: %s", pretty)
	}
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if len(a) != 36 {
		t.Errorf("expected 36 character uuid, got %q", a)
	}
	if a == b {
		t.Error("expected unique ids")
	}
}
