package common

import (
	"fmt"
	"strings"
)

type StringPos struct {
	Pos, Line, Col int
}

func (s StringPos) String() string {
	return fmt.Sprintf("%d:%d", s.Line+1, s.Col+1)
}

// MetaString is an unconsumed slice of a document together with the
// position of its first byte in that document.
type MetaString struct {
	contents string
	Loc      StringPos
}

func NewMetaString(contents string) MetaString {
	return MetaString{contents, StringPos{0, 0, 0}}
}

func (m MetaString) getPos(start int) StringPos {
	if start == 0 {
		return m.Loc
	}

	newlineCount := strings.Count(m.contents[:start], "\n")
	pos := m.Loc.Pos + start
	line := m.Loc.Line + newlineCount
	col := start

	if newlineCount == 0 {
		col += m.Loc.Col
	} else {
		lastNewlinePos := strings.LastIndex(m.contents[:start], "\n")
		col -= lastNewlinePos + 1
	}

	return StringPos{pos, line, col}
}

func (m MetaString) FromStartPos(start int) MetaString {
	return MetaString{m.contents[start:], m.getPos(start)}
}

func (m MetaString) FromPosRange(start, stop int) MetaString {
	return MetaString{m.contents[start:stop], m.getPos(start)}
}

// StripPrefix consumes prefix if the slice starts with it.
func (m MetaString) StripPrefix(prefix string) (MetaString, bool) {
	if !strings.HasPrefix(m.contents, prefix) {
		return m, false
	}

	return m.FromStartPos(len(prefix)), true
}

// SpanWhile returns the length in bytes of the longest prefix made only of
// characters in set.
func (m MetaString) SpanWhile(set CharSet) int {
	for i, ch := range m.contents {
		if !set.Contains(ch) {
			return i
		}
	}

	return len(m.contents)
}

// TrimSpace drops leading and trailing whitespace, keeping the position
// of the first remaining byte.
func (m MetaString) TrimSpace() MetaString {
	start := len(m.contents) - len(strings.TrimLeft(m.contents, " \t\r\n"))
	stop := len(strings.TrimRight(m.contents, " \t\r\n"))

	if stop < start {
		stop = start
	}

	return m.FromPosRange(start, stop)
}

// Prefix returns at most n characters from the front of the slice, for
// use in diagnostics.
func (m MetaString) Prefix(n int) string {
	count := 0

	for i := range m.contents {
		if count == n {
			return m.contents[:i]
		}

		count++
	}

	return m.contents
}

func (m MetaString) Len() int {
	return len(m.contents)
}

func (m MetaString) Empty() bool {
	return len(m.contents) == 0
}

func (m MetaString) Val() string {
	return m.contents
}

func (m MetaString) String() string {
	if strings.Contains(m.contents, "\"") {
		return fmt.Sprintf("'%s' %s", m.contents, m.Loc)
	} else {
		return fmt.Sprintf("%#v %s", m.contents, m.Loc)
	}
}
