package kernlog

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// ParsedLine is the decoded form of one kernel log frame.
type ParsedLine struct {
	Priority int
	Tag      string
	Pid      int // 0 when the line carries no pid segment
	Message  string
}

// ParseLine decodes a <P>tag[pid]: message frame, recovering the priority,
// tag, optional pid and message text unchanged. The trailing newline is
// optional. It is the read-side counterpart of the encoder and backs the
// round-trip tests; privileged log viewers can use it on lines this package
// wrote.
func ParseLine(line []byte) (ParsedLine, error) {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	if len(line) < 3 || line[0] != '<' {
		return ParsedLine{}, errors.New("kernlog: missing priority prefix")
	}
	end := bytes.IndexByte(line, '>')
	if end < 0 {
		return ParsedLine{}, errors.New("kernlog: unterminated priority prefix")
	}
	pri, err := strconv.Atoi(string(line[1:end]))
	if err != nil || pri < 0 || pri > 7 {
		return ParsedLine{}, fmt.Errorf("kernlog: bad priority %q", line[1:end])
	}

	rest := line[end+1:]
	sep := bytes.Index(rest, []byte(": "))
	if sep < 0 {
		return ParsedLine{}, errors.New("kernlog: missing tag separator")
	}
	head := rest[:sep]
	p := ParsedLine{Priority: pri, Tag: string(head), Message: string(rest[sep+2:])}

	if n := bytes.IndexByte(head, '['); n >= 0 {
		if head[len(head)-1] != ']' {
			return ParsedLine{}, errors.New("kernlog: unterminated pid segment")
		}
		pid, err := strconv.Atoi(string(head[n+1 : len(head)-1]))
		if err != nil || pid <= 0 {
			return ParsedLine{}, fmt.Errorf("kernlog: bad pid %q", head[n+1:len(head)-1])
		}
		p.Tag = string(head[:n])
		p.Pid = pid
	}
	return p, nil
}
