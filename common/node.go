package common

import (
	"fmt"
	"strings"
)

type Integer = int32

// Node is a fragment of the syntax tree produced by a parser. The set of
// implementations is closed: Number, String, Sequence, Mapping, Pair,
// Boolean and Null.
type Node interface {
	fmt.Stringer
	node()
}

type Number Integer

// String borrows its text from the parsed document.
type String string

type Sequence []Node

type Entry struct {
	Key   Node
	Value Node
}

type Mapping []Entry

type Pair struct {
	Key   Node
	Value Node
}

type Boolean bool

type Null struct{}

func (Number) node()   {}
func (String) node()   {}
func (Sequence) node() {}
func (Mapping) node()  {}
func (Pair) node()     {}
func (Boolean) node()  {}
func (Null) node()     {}

func (n Number) String() string {
	return fmt.Sprintf("Number(%d)", int32(n))
}

func (s String) String() string {
	return fmt.Sprintf("String(%#v)", string(s))
}

func (s Sequence) String() string {
	items := make([]string, len(s))

	for i, item := range s {
		items[i] = nodeString(item)
	}

	return fmt.Sprintf("Sequence[%s]", strings.Join(items, ", "))
}

func (m Mapping) String() string {
	entries := make([]string, len(m))

	for i, entry := range m {
		entries[i] = fmt.Sprintf("%s: %s", nodeString(entry.Key), nodeString(entry.Value))
	}

	return fmt.Sprintf("Mapping{%s}", strings.Join(entries, ", "))
}

func (p Pair) String() string {
	return fmt.Sprintf("Pair<%s, %s>", nodeString(p.Key), nodeString(p.Value))
}

func (b Boolean) String() string {
	return fmt.Sprintf("Boolean(%t)", bool(b))
}

func (Null) String() string {
	return "Null"
}

func nodeString(n Node) string {
	if n == nil {
		return "<nil>"
	}

	return n.String()
}
