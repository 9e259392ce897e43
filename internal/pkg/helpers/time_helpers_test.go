package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"15s", 15 * time.Second},
		{"2m30s", 150 * time.Second},
		{"", time.Minute},
		{"soon", time.Minute},
		{"0s", time.Minute},
		{"-5s", time.Minute},
	}
	for _, tt := range tests {
		if got := ParseDuration(tt.in, time.Minute); got != tt.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2021-07-01", want: time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)},
		{in: " 2021-07-01 ", want: time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2021-07-01T10:30:00+05:30", want: time.Date(2021, 7, 1, 5, 0, 0, 0, time.UTC)},
		{in: "01/07/2021", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) expected an error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) || got.Location() != time.UTC {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
