package utils

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid morning time",
			input:   "07:30",
			wantErr: false,
		},
		{
			name:    "valid midnight",
			input:   "00:00",
			wantErr: false,
		},
		{
			name:    "valid end of day",
			input:   "23:59",
			wantErr: false,
		},
		{
			name:    "missing minutes",
			input:   "07",
			wantErr: true,
		},
		{
			name:    "12-hour format rejected",
			input:   "7:30 PM",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClock(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseClock(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid date",
			input:   "2026-03-15",
			wantErr: false,
		},
		{
			name:    "slashes rejected",
			input:   "2026/03/15",
			wantErr: true,
		},
		{
			name:    "month out of range",
			input:   "2026-13-01",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	base := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{
			name: "same instant",
			a:    base,
			b:    base,
			want: true,
		},
		{
			name: "different clock times",
			a:    base,
			b:    time.Date(2026, time.March, 15, 23, 59, 0, 0, time.Local),
			want: true,
		},
		{
			name: "adjacent days",
			a:    base,
			b:    base.AddDate(0, 0, 1),
			want: false,
		},
		{
			name: "same day different year",
			a:    base,
			b:    base.AddDate(1, 0, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		n     int
		want  time.Time
	}{
		{
			name:  "plain advancement",
			start: time.Date(2026, time.March, 15, 9, 30, 0, 0, time.Local),
			n:     1,
			want:  time.Date(2026, time.April, 15, 9, 30, 0, 0, time.Local),
		},
		{
			name:  "jan 31 clamps to feb 28",
			start: time.Date(2026, time.January, 31, 8, 0, 0, 0, time.Local),
			n:     1,
			want:  time.Date(2026, time.February, 28, 8, 0, 0, 0, time.Local),
		},
		{
			name:  "jan 31 clamps to feb 29 in leap year",
			start: time.Date(2028, time.January, 31, 8, 0, 0, 0, time.Local),
			n:     1,
			want:  time.Date(2028, time.February, 29, 8, 0, 0, 0, time.Local),
		},
		{
			name:  "may 31 clamps to jun 30",
			start: time.Date(2026, time.May, 31, 12, 0, 0, 0, time.Local),
			n:     1,
			want:  time.Date(2026, time.June, 30, 12, 0, 0, 0, time.Local),
		},
		{
			name:  "year rollover",
			start: time.Date(2026, time.December, 10, 6, 0, 0, 0, time.Local),
			n:     2,
			want:  time.Date(2027, time.February, 10, 6, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonths(tt.start, tt.n)
			if !got.Equal(tt.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.start, tt.n, got, tt.want)
			}
		})
	}
}

func TestNthWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		weekday time.Weekday
		n       int
		wantDay int
	}{
		{
			name:    "second sunday of may 2026",
			year:    2026,
			month:   time.May,
			weekday: time.Sunday,
			n:       2,
			wantDay: 10,
		},
		{
			name:    "third sunday of june 2026",
			year:    2026,
			month:   time.June,
			weekday: time.Sunday,
			n:       3,
			wantDay: 21,
		},
		{
			name:    "fourth thursday of november 2026",
			year:    2026,
			month:   time.November,
			weekday: time.Thursday,
			n:       4,
			wantDay: 26,
		},
		{
			name:    "first day is the sought weekday",
			year:    2026,
			month:   time.February,
			weekday: time.Sunday,
			n:       1,
			wantDay: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NthWeekdayOfMonth(tt.year, tt.month, tt.weekday, tt.n)
			if got.Day() != tt.wantDay {
				t.Errorf("NthWeekdayOfMonth() = %v, want day %d", got, tt.wantDay)
			}
			if got.Weekday() != tt.weekday {
				t.Errorf("NthWeekdayOfMonth() weekday = %v, want %v", got.Weekday(), tt.weekday)
			}
		})
	}
}

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{
			name: "new year's day",
			date: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local),
			want: 1,
		},
		{
			name: "july 2 in a common year",
			date: time.Date(2026, time.July, 2, 0, 0, 0, 0, time.Local),
			want: 183,
		},
		{
			name: "july 2 in a leap year",
			date: time.Date(2028, time.July, 2, 0, 0, 0, 0, time.Local),
			want: 184,
		},
		{
			name: "last day of year",
			date: time.Date(2026, time.December, 31, 0, 0, 0, 0, time.Local),
			want: 365,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayOfYear(tt.date); got != tt.want {
				t.Errorf("DayOfYear(%v) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}
