package common

import "github.com/fatih/color"

type TokenKind int

const (
	KeyToken TokenKind = iota
	StringToken
	NumberToken
	BooleanToken
	NullToken
	PunctuationToken
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[TokenKind]func(string, ...any) string
}

// NewColors returns the default palette. Its colors are always enabled,
// whatever color.NoColor says; attach it only to output that should be
// colored.
func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[TokenKind]func(string, ...any) string{
			KeyToken:         enabled(color.RGB(128, 168, 196)),
			StringToken:      enabled(color.RGB(8, 196, 16)),
			NumberToken:      enabled(color.RGB(128, 216, 236)),
			BooleanToken:     enabled(color.New(color.FgCyan)),
			NullToken:        enabled(color.RGB(168, 0, 196)),
			PunctuationToken: enabled(color.RGB(196, 128, 128)),
		},
	}
}

func enabled(c *color.Color) func(string, ...any) string {
	c.EnableColor()
	return c.SprintfFunc()
}

func (c *Colors) Paint(kind TokenKind, text string) string {
	f, ok := c.Map[kind]

	if !ok {
		f = c.Default
	}

	return f("%s", text)
}

var colorDefault = enabled(color.New(color.Reset))
