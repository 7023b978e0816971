package kernlog

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxLineBytes caps every encoded frame at the kernel's LOG_LINE_MAX. The
// kernel truncates oversized kmsg writes itself; cutting here keeps the
// trailing newline intact so the entry still terminates cleanly.
const maxLineBytes = 1024

// encodeRecord renders one record as kernel log frames. A message with
// embedded newlines is split so each non-empty segment becomes its own
// complete line with identical framing; kernel log readers treat every
// newline as a record boundary anyway. Identical inputs always yield
// identical bytes.
func encodeRecord(pri int, tag string, pid int, msg string) [][]byte {
	if !strings.ContainsRune(msg, '\n') {
		return [][]byte{appendLine(nil, pri, tag, pid, msg)}
	}
	var lines [][]byte
	for _, seg := range strings.Split(msg, "\n") {
		seg = strings.TrimSuffix(seg, "\r")
		if seg == "" {
			continue
		}
		lines = append(lines, appendLine(nil, pri, tag, pid, seg))
	}
	return lines
}

// appendLine appends a single <P>tag[pid]: msg\n frame to dst. pid <= 0
// omits the [pid] segment entirely.
func appendLine(dst []byte, pri int, tag string, pid int, msg string) []byte {
	dst = append(dst, '<')
	dst = strconv.AppendInt(dst, int64(pri), 10)
	dst = append(dst, '>')
	dst = append(dst, tag...)
	if pid > 0 {
		dst = append(dst, '[')
		dst = strconv.AppendInt(dst, int64(pid), 10)
		dst = append(dst, ']')
	}
	dst = append(dst, ':', ' ')
	dst = append(dst, msg...)
	if len(dst) >= maxLineBytes {
		dst = truncateLine(dst)
	}
	return append(dst, '\n')
}

// truncateLine cuts dst back so frame plus newline fit in maxLineBytes,
// stepping left to a rune boundary rather than leaving a torn UTF-8
// sequence at the end.
func truncateLine(dst []byte) []byte {
	cut := maxLineBytes - 1
	for cut > 0 && !utf8.RuneStart(dst[cut]) {
		cut--
	}
	return dst[:cut]
}

// sanitizeTag strips the characters that would corrupt the frame: control
// bytes (newlines above all) and the ':', '[', ']' delimiters the parser
// keys on. Empty tags fall back to the package name.
func sanitizeTag(tag string) string {
	tag = strings.Map(func(r rune) rune {
		switch {
		case r < 0x21, r == ':', r == '[', r == ']':
			return '-'
		}
		return r
	}, strings.TrimSpace(tag))
	if tag == "" {
		return "kernlog"
	}
	return tag
}
