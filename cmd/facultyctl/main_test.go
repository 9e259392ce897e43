package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckEligibility(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "assistant professor over every threshold",
			args: []string{"--designation", "Assistant Professor", "--joined", "2022-01-01", "--teaching", "3", "--publications", "5", "--as-of", "2026-01-01"},
			want: "Eligible:         true",
		},
		{
			name: "one publication short",
			args: []string{"--designation", "Assistant Professor", "--joined", "2022-01-01", "--teaching", "3", "--publications", "4", "--as-of", "2026-01-01"},
			want: "Eligible:         false",
		},
		{
			name: "professor after one year",
			args: []string{"-d", "Professor", "-j", "2025-01-01", "-t", "8", "-p", "15", "--as-of", "2026-01-02"},
			want: "Eligible:         true",
		},
		{
			name: "joining date in the future",
			args: []string{"-d", "Professor", "-j", "2027-01-01", "-t", "20", "-p", "40", "--as-of", "2026-01-01"},
			want: "Years of service: 0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"check-eligibility"}, tt.args...)...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q does not contain %q", out, tt.want)
			}
		})
	}
}

func TestCheckEligibilityRejectsBadInput(t *testing.T) {
	tests := [][]string{
		{"check-eligibility", "-d", "Lecturer", "-j", "2020-01-01"},
		{"check-eligibility", "-d", "Professor", "-j", "01/01/2020"},
		{"check-eligibility", "-j", "2020-01-01"},
	}
	for _, args := range tests {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestSeedAndRefreshAgainstMemoryStore(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SERVER_STORAGE_PATH", t.TempDir())

	out, err := execute(t, "seed", "--config", "missing.yaml")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !strings.Contains(out, "Created 6, skipped 0") {
		t.Errorf("seed output %q", out)
	}

	// Every run gets a fresh in-memory store
	out, err = execute(t, "refresh-eligibility", "--config", "missing.yaml")
	if err != nil {
		t.Fatalf("refresh-eligibility: %v", err)
	}
	if !strings.Contains(out, "Updated 0 records") {
		t.Errorf("refresh output %q", out)
	}
}
