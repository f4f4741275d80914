package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetaStringPositions(t *testing.T) {
	m := NewMetaString("ab\ncd\nef")

	assert.Equal(t, StringPos{0, 0, 0}, m.Loc)
	assert.Equal(t, StringPos{1, 0, 1}, m.FromStartPos(1).Loc)
	assert.Equal(t, StringPos{4, 1, 1}, m.FromStartPos(4).Loc)
	assert.Equal(t, StringPos{7, 2, 1}, m.FromStartPos(4).FromStartPos(3).Loc)
	assert.Equal(t, "2:2", m.FromStartPos(4).Loc.String())
}

func TestMetaStringStripPrefix(t *testing.T) {
	m := NewMetaString("true!")

	rest, ok := m.StripPrefix("true")
	assert.True(t, ok)
	assert.Equal(t, "!", rest.Val())
	assert.Equal(t, 4, rest.Loc.Pos)

	rest, ok = m.StripPrefix("false")
	assert.False(t, ok)
	assert.Equal(t, m, rest)
}

func TestMetaStringPrefix(t *testing.T) {
	assert.Equal(t, "abcdefghij", NewMetaString("abcdefghijklmnop").Prefix(PrefixLength))
	assert.Equal(t, "abc", NewMetaString("abc").Prefix(PrefixLength))
	assert.Equal(t, "ééé", NewMetaString("éééé").Prefix(3))
}

func TestMetaStringTrimSpace(t *testing.T) {
	trimmed := NewMetaString("\n  x y \n").TrimSpace()
	assert.Equal(t, "x y", trimmed.Val())
	assert.Equal(t, StringPos{3, 1, 2}, trimmed.Loc)

	assert.True(t, NewMetaString("   ").TrimSpace().Empty())
}

func TestSpanWhile(t *testing.T) {
	assert.Equal(t, 3, NewMetaString("123abc").SpanWhile(NumberCharacters))
	assert.Equal(t, 0, NewMetaString("abc").SpanWhile(NumberCharacters))
	assert.Equal(t, 3, NewMetaString("123").SpanWhile(NumberCharacters))
	assert.Equal(t, 9, NewMetaString("a-b@c.d1Z!").SpanWhile(StringCharacters))
}
