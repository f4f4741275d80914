package common

import "strings"

type SerializerConfig struct {
	useTabs    bool
	indentSize int
	minify     bool
	colors     *Colors
}

// Serializable is implemented by values that can render themselves as
// document text.
type Serializable interface {
	Serialize(config *SerializerConfig, indentLevel int) (string, error)
}

// WithColors returns a copy of the config that paints tokens with colors.
func (c SerializerConfig) WithColors(colors *Colors) *SerializerConfig {
	c.colors = colors
	return &c
}

func (c SerializerConfig) Indent(indentLevel int) string {
	if c.minify {
		return ""
	}

	if c.useTabs {
		return strings.Repeat("\t", c.indentSize*indentLevel)
	}

	return strings.Repeat(" ", c.indentSize*indentLevel)
}

func (c SerializerConfig) Sep(separator string, alt string) string {
	if c.minify {
		return alt
	}

	return separator
}

func (c SerializerConfig) Paint(kind TokenKind, text string) string {
	if c.colors == nil {
		return text
	}

	return c.colors.Paint(kind, text)
}

func NewSerializerConfig(useTabs bool, indentSize int, minify bool) *SerializerConfig {
	return &SerializerConfig{useTabs: useTabs, indentSize: indentSize, minify: minify}
}

func Serialize(value Serializable, useTabs bool, indentSize int) (string, error) {
	config := SerializerConfig{useTabs: useTabs, indentSize: indentSize}
	return value.Serialize(&config, 0)
}

func Minify(value Serializable) (string, error) {
	config := SerializerConfig{minify: true}
	return value.Serialize(&config, 0)
}
