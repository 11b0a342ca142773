package cli

import (
	"testing"

	"github.com/okozlov/fileman/internal/fsops"
)

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		name   string
		status fsops.Status
		want   string
	}{
		{"success", fsops.Success, "Operation successful"},
		{"no matches", fsops.NoMatches, "no files found"},
		{"invalid request", fsops.InvalidRequest, "invalid path or resource already exists"},
		{"not found", fsops.NotFound, "not found"},
		{"internal error", fsops.InternalError, "system error"},
		{"out of range", fsops.Status(42), "unknown status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusMessage(tt.status); got != tt.want {
				t.Errorf("statusMessage(%v) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"valid command", "5", 5, false},
		{"exit command", "9", 9, false},
		{"non-numeric", "abc", 0, true},
		{"empty", "", 0, true},
		{"trailing text", "5x", 0, true},
		{"negative selector parses", "-1", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCommand(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseCommand(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseCommand(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
