package jsonish

import (
	"github.com/l-donovan/parsnip"
	"github.com/l-donovan/parsnip/common"
)

var document = parsnip.NewGrammar(Value())

// Parse returns the syntax tree of a complete document. Whitespace around
// the value is ignored; anything else after it is a TrailingData error.
func Parse(s string) (common.Node, error) {
	return document.Parse(s)
}
