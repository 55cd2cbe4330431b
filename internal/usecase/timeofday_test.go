package usecase

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "10:00", want: "10:00"},
		{input: "10:00:00", want: "10:00"},
		{input: "09:30:15", want: "09:30"},
		{input: "00:00", want: "00:00"},
		{input: "23:59", want: "23:59"},
		{input: "25:00", wantErr: true},
		{input: "10:65", wantErr: true},
		{input: "ten o'clock", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseTimeOfDay(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseTimeOfDay(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTimeOfDay(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if formatted := got.Format("15:04"); formatted != tt.want {
			t.Errorf("parseTimeOfDay(%q) = %s, want %s", tt.input, formatted, tt.want)
		}
	}
}

func TestWithinWindow(t *testing.T) {
	parse := func(s string) time.Time {
		v, err := parseTimeOfDay(s)
		if err != nil {
			t.Fatalf("parseTimeOfDay(%q): %v", s, err)
		}
		return v
	}

	start := parse("09:00")
	end := parse("17:00")

	tests := []struct {
		name string
		at   string
		want bool
	}{
		{name: "inside", at: "10:00", want: true},
		{name: "start boundary inclusive", at: "09:00", want: true},
		{name: "end boundary exclusive", at: "17:00", want: false},
		{name: "just before end", at: "16:59", want: true},
		{name: "before window", at: "08:59", want: false},
		{name: "after window", at: "18:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withinWindow(parse(tt.at), start, end); got != tt.want {
				t.Errorf("withinWindow(%s) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}
