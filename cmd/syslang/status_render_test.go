package main

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"syslang/internal/locale"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Language", statusError, "unavailable", false)
	want := fmt.Sprintf("%-*s %s", statusLabelWidth, "Language:", "[ERROR] unavailable")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Language", statusOK, "zh-CN", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestAttemptRows(t *testing.T) {
	det := locale.Detection{
		Tag:    "en",
		Source: locale.SourceDefault,
		Attempts: []locale.Attempt{
			{Source: "registry", Error: "language not detected"},
			{Source: "env:LANG", Error: "language not detected"},
		},
	}
	rows := attemptRows(det)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][2] != "language not detected" || rows[2][0] != locale.SourceDefault || rows[2][2] != "selected" {
		t.Fatalf("unexpected rows %v", rows)
	}

	table := renderTable([]string{"Source", "Raw", "Result"}, rows)
	for _, want := range []string{"SOURCE", "registry", "env:LANG", "default"} {
		if !strings.Contains(strings.ToUpper(table), strings.ToUpper(want)) {
			t.Fatalf("table missing %q:\n%s", want, table)
		}
	}
}
