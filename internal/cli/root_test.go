package cli

import (
	"testing"
	"time"

	"daydesk/internal/constants"
	"daydesk/internal/models"
)

func TestParseRepeat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    constants.Repeat
		wantErr bool
	}{
		{name: "none", input: "none", want: constants.RepeatNone},
		{name: "daily", input: "daily", want: constants.RepeatDaily},
		{name: "weekly", input: "weekly", want: constants.RepeatWeekly},
		{name: "monthly", input: "monthly", want: constants.RepeatMonthly},
		{name: "unknown", input: "hourly", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRepeat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRepeat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseRepeat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCombineDateTime(t *testing.T) {
	t.Run("explicit date and time", func(t *testing.T) {
		got, err := CombineDateTime("2026-03-15", "09:30")
		if err != nil {
			t.Fatalf("CombineDateTime() error = %v", err)
		}
		want := time.Date(2026, time.March, 15, 9, 30, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("CombineDateTime() = %v, want %v", got, want)
		}
	})

	t.Run("empty date means today", func(t *testing.T) {
		got, err := CombineDateTime("", "23:59")
		if err != nil {
			t.Fatalf("CombineDateTime() error = %v", err)
		}
		now := time.Now()
		if got.Year() != now.Year() || got.Month() != now.Month() || got.Day() != now.Day() {
			t.Errorf("CombineDateTime() date = %v, want today", got)
		}
		if got.Hour() != 23 || got.Minute() != 59 {
			t.Errorf("CombineDateTime() clock = %02d:%02d, want 23:59", got.Hour(), got.Minute())
		}
	})

	t.Run("bad clock", func(t *testing.T) {
		if _, err := CombineDateTime("2026-03-15", "9:30 PM"); err == nil {
			t.Error("CombineDateTime() should reject a 12-hour clock string")
		}
	})

	t.Run("bad date", func(t *testing.T) {
		if _, err := CombineDateTime("03/15/2026", "09:30"); err == nil {
			t.Error("CombineDateTime() should reject a slash date")
		}
	})
}

func TestFormatDatetime(t *testing.T) {
	when := time.Date(2026, time.March, 15, 14, 5, 0, 0, time.Local)

	settings := models.DefaultSettings()
	if got := FormatDatetime(when, settings); got != "2026-03-15 2:05 PM" {
		t.Errorf("12h format = %q", got)
	}

	settings.TimeFormat = "24h"
	if got := FormatDatetime(when, settings); got != "2026-03-15 14:05" {
		t.Errorf("24h format = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{name: "short string unchanged", input: "hello", max: 10, want: "hello"},
		{name: "exact fit unchanged", input: "hello", max: 5, want: "hello"},
		{name: "long string gets ellipsis", input: "hello world", max: 8, want: "hello..."},
		{name: "tiny max hard cuts", input: "hello", max: 2, want: "he"},
		{name: "multibyte exact fit unchanged", input: "日本語のメモ", max: 6, want: "日本語のメモ"},
		{name: "multibyte cut lands on rune boundary", input: "café journal", max: 7, want: "café..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}
