package parsnip

import (
	"github.com/l-donovan/parsnip/common"
)

// Result is what a successful parse leaves behind: the unconsumed input
// and, unless the match was structurally inert, a fragment of the tree.
type Result struct {
	Remaining common.MetaString
	Node      common.Node
}

// Parser consumes a prefix of its input. On failure nothing is consumed
// and the error is a *common.ParseError.
type Parser interface {
	Parse(input common.MetaString) (Result, error)
}

type ParserFunc func(input common.MetaString) (Result, error)

func (f ParserFunc) Parse(input common.MetaString) (Result, error) {
	return f(input)
}

// ParseString runs p over the whole of contents, starting at 1:1.
func ParseString(p Parser, contents string) (Result, error) {
	return p.Parse(common.NewMetaString(contents))
}

type literal string

// Literal matches the exact text val and produces no fragment.
func Literal(val string) Parser {
	return literal(val)
}

func (l literal) Parse(input common.MetaString) (Result, error) {
	remaining, ok := input.StripPrefix(string(l))

	if !ok {
		return Result{}, common.Mismatch(input, `"`+string(l)+`"`)
	}

	return Result{Remaining: remaining}, nil
}

type charRun struct {
	set common.CharSet
}

// CharRun greedily consumes characters belonging to set. It always
// succeeds, producing a String fragment that may be empty.
func CharRun(set common.CharSet) Parser {
	return charRun{set}
}

func (c charRun) Parse(input common.MetaString) (Result, error) {
	n := input.SpanWhile(c.set)

	return Result{Remaining: input.FromStartPos(n), Node: common.String(input.Val()[:n])}, nil
}

type optional struct {
	expr Parser
}

// Optional matches nothing when expr fails. It never fails itself.
func Optional(expr Parser) Parser {
	return optional{expr}
}

func (o optional) Parse(input common.MetaString) (Result, error) {
	result, err := o.expr.Parse(input)

	if err != nil {
		// Zero matches are permissible, so this still counts as a match
		return Result{Remaining: input}, nil
	}

	return result, nil
}

type repeat struct {
	expr Parser
}

// Repeat applies expr until it fails and collects the fragments into a
// Sequence. With no fragments there is no Sequence at all. Repeat never
// fails itself.
func Repeat(expr Parser) Parser {
	return repeat{expr}
}

func (r repeat) Parse(input common.MetaString) (Result, error) {
	var results common.Sequence

	for {
		result, err := r.expr.Parse(input)

		if err != nil {
			break
		}

		if result.Node != nil {
			results = append(results, result.Node)
		}

		consumed := result.Remaining.Len() < input.Len()
		input = result.Remaining

		if !consumed {
			break
		}
	}

	if len(results) == 0 {
		return Result{Remaining: input}, nil
	}

	return Result{Remaining: input, Node: results}, nil
}

type whitespace struct{}

var whitespaceRun = Repeat(Choice(Literal(" "), Literal("\n")))

// Whitespace skips any run of spaces and newlines.
func Whitespace() Parser {
	return whitespace{}
}

func (whitespace) Parse(input common.MetaString) (Result, error) {
	result, err := whitespaceRun.Parse(input)

	if err != nil {
		return Result{}, err
	}

	return Result{Remaining: result.Remaining}, nil
}
