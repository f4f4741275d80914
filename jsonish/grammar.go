// Package jsonish parses a relaxed JSON dialect: integers only, strings
// without escapes, trailing commas allowed.
package jsonish

import (
	"strconv"

	"github.com/l-donovan/parsnip"
	"github.com/l-donovan/parsnip/common"
)

// Integer matches an optional minus sign followed by decimal digits.
func Integer() parsnip.Parser {
	return parsnip.ParserFunc(parseInteger)
}

func parseInteger(input common.MetaString) (parsnip.Result, error) {
	signed, _ := parsnip.Optional(parsnip.Literal("-")).Parse(input)
	digits, _ := parsnip.CharRun(common.NumberCharacters).Parse(signed.Remaining)

	if digits.Remaining.Len() == signed.Remaining.Len() {
		return parsnip.Result{}, common.Mismatch(input, "an integer literal")
	}

	text := input.Val()[:input.Len()-digits.Remaining.Len()]
	n, err := strconv.ParseInt(text, 10, 32)

	if err != nil {
		return parsnip.Result{}, &common.ParseError{
			Kind:    common.NumericConversion,
			Message: "integer literal " + text + " does not fit in 32 bits",
			Loc:     input.Loc,
			Err:     err,
		}
	}

	return parsnip.Result{Remaining: digits.Remaining, Node: common.Number(n)}, nil
}

// String matches a double-quoted run of common.StringCharacters.
func String() parsnip.Parser {
	return parsnip.ParserFunc(parseString)
}

func parseString(input common.MetaString) (parsnip.Result, error) {
	quote := parsnip.Literal(`"`)
	opened, err := quote.Parse(input)

	if err != nil {
		return parsnip.Result{}, err
	}

	contents, _ := parsnip.CharRun(common.StringCharacters).Parse(opened.Remaining)
	closed, err := quote.Parse(contents.Remaining)

	if err != nil {
		return parsnip.Result{}, err
	}

	return parsnip.Result{Remaining: closed.Remaining, Node: contents.Node}, nil
}

func Boolean() parsnip.Parser {
	return parsnip.ParserFunc(func(input common.MetaString) (parsnip.Result, error) {
		if result, err := parsnip.Literal("true").Parse(input); err == nil {
			return parsnip.Result{Remaining: result.Remaining, Node: common.Boolean(true)}, nil
		}

		if result, err := parsnip.Literal("false").Parse(input); err == nil {
			return parsnip.Result{Remaining: result.Remaining, Node: common.Boolean(false)}, nil
		}

		return parsnip.Result{}, common.NewError(common.SyntaxMismatch, input, "%q was neither \"true\" nor \"false\"", input.Prefix(common.PrefixLength))
	})
}

func Null() parsnip.Parser {
	return parsnip.ParserFunc(func(input common.MetaString) (parsnip.Result, error) {
		result, err := parsnip.Literal("null").Parse(input)

		if err != nil {
			return parsnip.Result{}, common.NewError(common.SyntaxMismatch, input, "%q did not match \"null\"", input.Prefix(common.PrefixLength))
		}

		return parsnip.Result{Remaining: result.Remaining, Node: common.Null{}}, nil
	})
}

// Value matches any single value. The alternatives are told apart by
// their first character, so their order does not change the result.
func Value() parsnip.Parser {
	return parsnip.ParserFunc(func(input common.MetaString) (parsnip.Result, error) {
		return parsnip.Choice(Boolean(), Integer(), String(), Array(), Object(), Null()).Parse(input)
	})
}

func Array() parsnip.Parser {
	return parsnip.ParserFunc(func(input common.MetaString) (parsnip.Result, error) {
		return parsnip.CommaList(Value(), "[", "]").Parse(input)
	})
}

// KeyValue matches `"key": value` and produces a Pair.
func KeyValue() parsnip.Parser {
	return parsnip.ParserFunc(parseKeyValue)
}

func parseKeyValue(input common.MetaString) (parsnip.Result, error) {
	result, err := parsnip.Sequence(String(), parsnip.Literal(":"), Value()).Parse(input)

	if err != nil {
		return parsnip.Result{}, err
	}

	keyval, ok := result.Node.(common.Sequence)

	if !ok || len(keyval) != 2 {
		panic("Sequence did not return a key and a value")
	}

	return parsnip.Result{Remaining: result.Remaining, Node: common.Pair{Key: keyval[0], Value: keyval[1]}}, nil
}

// Object matches a braced list of key-value pairs and produces a Mapping.
func Object() parsnip.Parser {
	return parsnip.ParserFunc(parseObject)
}

func parseObject(input common.MetaString) (parsnip.Result, error) {
	result, err := parsnip.CommaList(KeyValue(), "{", "}").Parse(input)

	if err != nil {
		return parsnip.Result{}, err
	}

	items, ok := result.Node.(common.Sequence)

	if !ok {
		panic("DelimitedList did not return a sequence")
	}

	mapping := make(common.Mapping, 0, len(items))

	for _, item := range items {
		pair, ok := item.(common.Pair)

		if !ok {
			panic("KeyValue did not return a pair")
		}

		mapping = append(mapping, common.Entry{Key: pair.Key, Value: pair.Value})
	}

	return parsnip.Result{Remaining: result.Remaining, Node: mapping}, nil
}
