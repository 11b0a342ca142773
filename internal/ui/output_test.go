package ui

import (
	"bytes"
	"strings"
	"testing"
)

// newPlainUI returns a UI writing to buf with color disabled so the
// tests can match raw text.
func newPlainUI(buf *bytes.Buffer) *UI {
	u := NewWithWriter(buf)
	u.EnableColor(false)
	return u
}

func TestOutputPrefixes(t *testing.T) {
	tests := []struct {
		name  string
		print func(u *UI)
		want  string
	}{
		{"info", func(u *UI) { u.Info("hello") }, "[INFO] hello\n"},
		{"success", func(u *UI) { u.Success("done") }, "[✓] done\n"},
		{"warning", func(u *UI) { u.Warning("careful") }, "[WARNING] careful\n"},
		{"error", func(u *UI) { u.Error("boom") }, "[ERROR] boom\n"},
		{"item", func(u *UI) { u.Item("/tmp/a.txt") }, "  /tmp/a.txt\n"},
		{"menu entry", func(u *UI) { u.MenuEntry(3, "Create Directory") }, "  [3] Create Directory\n"},
		{"printf", func(u *UI) { u.Printf("%d entries", 4) }, "4 entries\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(newPlainUI(&buf))
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeaderChrome(t *testing.T) {
	var buf bytes.Buffer
	newPlainUI(&buf).Header("File Manager")

	out := buf.String()
	if !strings.Contains(out, "File Manager") {
		t.Errorf("Header() output missing title: %q", out)
	}
	if strings.Count(out, strings.Repeat("=", 40)) != 2 {
		t.Errorf("Header() should draw a border above and below the title: %q", out)
	}
}

func TestNonInteractiveConfirmReturnsDefault(t *testing.T) {
	var buf bytes.Buffer
	u := newPlainUI(&buf)
	u.SetNonInteractive(true)

	for _, def := range []bool{true, false} {
		got, err := u.Confirm("proceed?", def)
		if err != nil {
			t.Fatalf("Confirm() error = %v", err)
		}
		if got != def {
			t.Errorf("Confirm() = %v, want default %v", got, def)
		}
	}

	if buf.Len() != 0 {
		t.Errorf("non-interactive Confirm() should not write a prompt, got %q", buf.String())
	}
}
