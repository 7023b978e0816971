package kernlog

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestEncodeWarnWithoutPid(t *testing.T) {
	lines := encodeRecord(LevelWarn.Priority(), "myapp", 0, "disk low")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if got := string(lines[0]); got != "<4>myapp: disk low\n" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeErrorWithPid(t *testing.T) {
	lines := encodeRecord(LevelError.Priority(), "myapp", 1234, "panic: X")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if got := string(lines[0]); got != "<3>myapp[1234]: panic: X\n" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a := encodeRecord(priInfo, "svc", 99, "same input")
	b := encodeRecord(priInfo, "svc", 99, "same input")
	if len(a) != len(b) {
		t.Fatalf("line counts differ")
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			t.Fatalf("line %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestEncodeSplitsEmbeddedNewlines(t *testing.T) {
	lines := encodeRecord(priInfo, "svc", 0, "first\nsecond\n\nthird\n")
	want := []string{
		"<6>svc: first\n",
		"<6>svc: second\n",
		"<6>svc: third\n",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if string(lines[i]) != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestEncodeTrailingNewlineNotDuplicated(t *testing.T) {
	lines := encodeRecord(priWarning, "svc", 0, "disk low\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if got := string(lines[0]); got != "<4>svc: disk low\n" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeTruncatesLongLine(t *testing.T) {
	lines := encodeRecord(priInfo, "svc", 0, strings.Repeat("x", 4*maxLineBytes))
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	line := lines[0]
	if len(line) != maxLineBytes {
		t.Fatalf("line length %d, want %d", len(line), maxLineBytes)
	}
	if line[len(line)-1] != '\n' {
		t.Fatalf("truncated line lost its newline")
	}
}

func TestEncodeTruncatesOnRuneBoundary(t *testing.T) {
	lines := encodeRecord(priInfo, "svc", 0, strings.Repeat("世", maxLineBytes))
	line := lines[0]
	if len(line) > maxLineBytes {
		t.Fatalf("line length %d exceeds cap", len(line))
	}
	if !utf8.Valid(line[:len(line)-1]) {
		t.Fatalf("truncation tore a rune")
	}
}

func TestSanitizeTag(t *testing.T) {
	cases := map[string]string{
		"myapp":       "myapp",
		"bad:tag":     "bad-tag",
		"two words":   "two-words",
		"pid[7]":      "pid-7-",
		"line\nbreak": "line-break",
		"  spaced  ":  "spaced",
		"":            "kernlog",
		"\n":          "kernlog",
	}
	for in, want := range cases {
		if got := sanitizeTag(in); got != want {
			t.Fatalf("sanitizeTag(%q) = %q, want %q", in, got, want)
		}
	}
}
