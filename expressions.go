package parsnip

import (
	"github.com/l-donovan/parsnip/common"
)

type sequence struct {
	items []Parser
}

// Sequence applies items in order with whitespace skipped between each
// adjacent pair. The fragments of all items are gathered into one Sequence.
func Sequence(items ...Parser) Parser {
	return sequence{items}
}

func (s sequence) Parse(input common.MetaString) (Result, error) {
	results := common.Sequence{}
	ws := Whitespace()

	for i, item := range s.items {
		if i > 0 {
			skipped, err := ws.Parse(input)

			if err != nil {
				return Result{}, err
			}

			input = skipped.Remaining
		}

		result, err := item.Parse(input)

		if err != nil {
			return Result{}, err
		}

		if result.Node != nil {
			results = append(results, result.Node)
		}

		input = result.Remaining
	}

	return Result{Remaining: input, Node: results}, nil
}

type choice struct {
	options []Parser
}

// Choice tries each option against the same input and commits to the
// first one that matches. It fails only when every option fails; the
// first failure that is not common.Recoverable is then reported in
// preference to a plain mismatch.
func Choice(options ...Parser) Parser {
	return choice{options}
}

func (c choice) Parse(input common.MetaString) (Result, error) {
	var hardErr error

	for _, option := range c.options {
		result, err := option.Parse(input)

		if err == nil {
			return result, nil
		}

		if hardErr == nil && !common.Recoverable(err) {
			hardErr = err
		}
	}

	if hardErr != nil {
		return Result{}, hardErr
	}

	return Result{}, common.NewError(common.SyntaxMismatch, input, "none of the options were satisfied at %q", input.Prefix(common.PrefixLength))
}

type delimitedList struct {
	element   Parser
	start     string
	end       string
	separator string
}

// DelimitedList matches start, then elements joined by separator, then
// end. A separator may trail the last element. start immediately followed
// by end is the empty list.
func DelimitedList(element Parser, start, end, separator string) Parser {
	return delimitedList{element, start, end, separator}
}

// CommaList is a DelimitedList separated by commas.
func CommaList(element Parser, start, end string) Parser {
	return DelimitedList(element, start, end, ",")
}

func (d delimitedList) Parse(input common.MetaString) (Result, error) {
	if empty, err := Sequence(Literal(d.start), Literal(d.end)).Parse(input); err == nil {
		return Result{Remaining: empty.Remaining, Node: common.Sequence{}}, nil
	}

	opened, err := Sequence(Literal(d.start), Whitespace()).Parse(input)

	if err != nil {
		return Result{}, err
	}

	current := opened.Remaining
	elements := common.Sequence{}

	first, err := d.element.Parse(current)

	if err != nil {
		return Result{}, err
	}

	if first.Node != nil {
		elements = append(elements, first.Node)
	}

	current = first.Remaining
	separator := Sequence(Whitespace(), Literal(d.separator), Whitespace())

	for {
		separated, err := separator.Parse(current)

		if err != nil {
			break
		}

		// A trailing separator stays consumed even if no element follows
		current = separated.Remaining
		next, err := d.element.Parse(current)

		if err != nil {
			if !common.Recoverable(err) {
				return Result{}, err
			}

			break
		}

		if next.Node != nil {
			elements = append(elements, next.Node)
		}

		current = next.Remaining
	}

	closed, err := Sequence(Whitespace(), Literal(d.end)).Parse(current)

	if err != nil {
		return Result{}, err
	}

	return Result{Remaining: closed.Remaining, Node: elements}, nil
}
