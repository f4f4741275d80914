// Package arith evaluates integer arithmetic while parsing it.
//
// Precedence, tightest first: literals and parentheses, ^, * and /,
// + and -. Every layer folds left to right, including ^, so 2^3^2 is
// (2^3)^2.
package arith

import (
	"github.com/l-donovan/parsnip"
	"github.com/l-donovan/parsnip/common"
	"github.com/l-donovan/parsnip/jsonish"
)

// IntLiteral is the same production as a document integer.
func IntLiteral() parsnip.Parser {
	return jsonish.Integer()
}

// Primary is an integer literal or a parenthesized expression.
func Primary() parsnip.Parser {
	return parsnip.ParserFunc(parsePrimary)
}

func parsePrimary(input common.MetaString) (parsnip.Result, error) {
	result, err := parsnip.Choice(
		IntLiteral(),
		parsnip.Sequence(parsnip.Literal("("), Expression(), parsnip.Literal(")")),
	).Parse(input)

	if err != nil {
		return parsnip.Result{}, err
	}

	switch node := result.Node.(type) {
	case common.Number:
		return result, nil
	case common.Sequence:
		if len(node) != 1 {
			panic("parenthesized expression did not return a number")
		}

		return parsnip.Result{Remaining: result.Remaining, Node: common.Number(numberOf(node[0]))}, nil
	default:
		panic("Primary did not return a number")
	}
}

func Exponent() parsnip.Parser {
	return Layer(ExponentOperators, Primary)
}

func MultiplyDivide() parsnip.Parser {
	return Layer(MultiplyDivideOperators, Exponent)
}

func AddSubtract() parsnip.Parser {
	return Layer(AddSubtractOperators, MultiplyDivide)
}

// Expression is the loosest layer and the entry point of the grammar.
func Expression() parsnip.Parser {
	return AddSubtract()
}

var expression = parsnip.NewGrammar(Expression())

// Evaluate computes the value of a complete expression. Whitespace around
// it is ignored; anything else left over is a TrailingData error.
func Evaluate(s string) (common.Integer, error) {
	node, err := expression.Parse(s)

	if err != nil {
		return 0, err
	}

	return numberOf(node), nil
}
