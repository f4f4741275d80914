package parsnip

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/l-donovan/parsnip/common"
)

// Grammar is a complete document parser: surrounding whitespace is
// skipped and anything left over after the top-level value is an error.
type Grammar struct {
	top Parser
}

func NewGrammar(top Parser) *Grammar {
	return &Grammar{top}
}

// Parse returns the tree for contents. A top-level parser that matches
// without producing a fragment yields a nil Node.
func (g Grammar) Parse(contents string) (common.Node, error) {
	input := common.NewMetaString(contents)
	result, err := Sequence(Whitespace(), g.top, Whitespace()).Parse(input)

	if err != nil {
		return nil, err
	}

	if !result.Remaining.Empty() {
		remaining := result.Remaining
		return nil, common.NewError(common.TrailingData, remaining, "unconsumed input %q", remaining.Prefix(common.PrefixLength))
	}

	container, ok := result.Node.(common.Sequence)

	if !ok {
		panic("Sequence did not return a sequence")
	}

	if len(container) == 0 {
		return nil, nil
	}

	return container[len(container)-1], nil
}

func digitCount(input int) int {
	if input == 0 {
		return 1
	}

	count := 0

	for input != 0 {
		input /= 10
		count++
	}

	return count
}

var (
	highlight = color.New(color.FgBlack, color.BgWhite).SprintFunc()
	marker    = color.New(color.FgRed, color.Bold).SprintFunc()
)

// PrintContext writes the lines of contents surrounding the location of a
// parse error, marking the offending character. Errors that carry no
// location are written on their own.
func PrintContext(w io.Writer, contents string, err error, contextLineCount int) {
	var parseErr *common.ParseError

	if !errors.As(err, &parseErr) {
		fmt.Fprintln(w, err)
		return
	}

	loc := parseErr.Loc
	lines := strings.Split(contents, "\n")

	if loc.Line >= len(lines) {
		fmt.Fprintln(w, err)
		return
	}

	startLineNum := max(0, loc.Line-contextLineCount)
	endLineNum := min(loc.Line+contextLineCount+1, len(lines))
	maxLineNumWidth := digitCount(endLineNum + 1)

	fmt.Fprintln(w, "Context:")

	for i := startLineNum; i < endLineNum; i++ {
		line := lines[i]

		if i != loc.Line {
			fmt.Fprintf(w, "%*d │ %s\n", maxLineNumWidth, i+1, line)
			continue
		}

		col := min(loc.Col, len(line))

		// Tabs are kept so the marker lines up with wide characters
		tabCount := strings.Count(line[:col], "\t")
		left := strings.Repeat("\t", tabCount) + strings.Repeat(" ", col-tabCount)

		if col < len(line) {
			_, size := utf8.DecodeRuneInString(line[col:])
			fmt.Fprintf(w, "%*d │ %s%s%s\n", maxLineNumWidth, i+1, line[:col], highlight(line[col:col+size]), line[col+size:])
		} else {
			fmt.Fprintf(w, "%*d │ %s%s\n", maxLineNumWidth, i+1, line, highlight(" "))
		}

		fmt.Fprintf(w, "%*s │ %s%s\n", maxLineNumWidth, "", left, marker("╰─── "+parseErr.Message))
	}
}
