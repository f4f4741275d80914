package arith

import (
	"errors"
	"math"

	"github.com/l-donovan/parsnip"
	"github.com/l-donovan/parsnip/common"
)

// Operator binds a delimiter to the operation it introduces. Apply folds
// the operand that follows the delimiter into the accumulated value.
type Operator struct {
	Literal string
	Apply   func(acc, operand common.Integer) (common.Integer, error)
}

type operation struct {
	op      Operator
	operand common.Integer
	at      common.MetaString
}

// Layer parses operand, then any number of (delimiter operand) steps
// using the first delimiter in operators that matches. Once no delimiter
// matches, the queued operations are applied left to right.
func Layer(operators []Operator, operand func() parsnip.Parser) parsnip.Parser {
	return parsnip.ParserFunc(func(input common.MetaString) (parsnip.Result, error) {
		first, err := operand().Parse(input)

		if err != nil {
			return parsnip.Result{}, err
		}

		start := numberOf(first.Node)
		next := first.Remaining

		var operations []operation

	tokenWalker:
		for {
			for _, op := range operators {
				result, err := parsnip.Sequence(parsnip.Whitespace(), parsnip.Literal(op.Literal), operand()).Parse(next)

				if err != nil {
					if !common.Recoverable(err) {
						return parsnip.Result{}, err
					}

					continue
				}

				exprs, ok := result.Node.(common.Sequence)

				if !ok || len(exprs) == 0 {
					panic("Sequence did not return a sequence")
				}

				operations = append(operations, operation{op, numberOf(exprs[len(exprs)-1]), next})
				next = result.Remaining

				continue tokenWalker
			}

			// None of the delimiters matched
			break
		}

		acc := start

		for _, operation := range operations {
			acc, err = operation.op.Apply(acc, operation.operand)

			if err != nil {
				var parseErr *common.ParseError

				if errors.As(err, &parseErr) {
					parseErr.Loc = operation.at.TrimSpace().Loc
				}

				return parsnip.Result{}, err
			}
		}

		return parsnip.Result{Remaining: next, Node: common.Number(acc)}, nil
	})
}

func numberOf(node common.Node) common.Integer {
	number, ok := node.(common.Number)

	if !ok {
		panic("operand did not return a number")
	}

	return common.Integer(number)
}

func failure(kind common.ErrorKind, message string) error {
	return &common.ParseError{Kind: kind, Message: message}
}

func checked(result int64) (common.Integer, error) {
	if result < math.MinInt32 || result > math.MaxInt32 {
		return 0, failure(common.Arithmetic, "integer overflow")
	}

	return common.Integer(result), nil
}

func add(acc, operand common.Integer) (common.Integer, error) {
	return checked(int64(acc) + int64(operand))
}

func subtract(acc, operand common.Integer) (common.Integer, error) {
	return checked(int64(acc) - int64(operand))
}

func multiply(acc, operand common.Integer) (common.Integer, error) {
	return checked(int64(acc) * int64(operand))
}

func divide(acc, operand common.Integer) (common.Integer, error) {
	if operand == 0 {
		return 0, failure(common.Arithmetic, "division by zero")
	}

	return checked(int64(acc) / int64(operand))
}

func power(acc, exponent common.Integer) (common.Integer, error) {
	if exponent < 0 {
		return 0, failure(common.NumericConversion, "negative exponent")
	}

	// Only these bases survive large exponents without overflowing
	switch acc {
	case 0:
		if exponent == 0 {
			return 1, nil
		}

		return 0, nil
	case 1:
		return 1, nil
	case -1:
		if exponent%2 == 0 {
			return 1, nil
		}

		return -1, nil
	}

	result := int64(1)

	for i := common.Integer(0); i < exponent; i++ {
		result *= int64(acc)

		if result < math.MinInt32 || result > math.MaxInt32 {
			return 0, failure(common.Arithmetic, "integer overflow")
		}
	}

	return common.Integer(result), nil
}

var (
	AddSubtractOperators = []Operator{
		{"+", add},
		{"-", subtract},
	}
	MultiplyDivideOperators = []Operator{
		{"*", multiply},
		{"/", divide},
	}
	ExponentOperators = []Operator{
		{"^", power},
	}
)
