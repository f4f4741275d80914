package arith

import (
	"testing"

	"github.com/l-donovan/parsnip"
	"github.com/l-donovan/parsnip/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimary(t *testing.T) {
	tests := []struct {
		input     string
		want      int32
		remaining string
	}{
		{"55a", 55, "a"},
		{"-55a", -55, "a"},
		{"(-55)a", -55, "a"},
		{"( 1 + 2 )a", 3, "a"},
		{"((7))", 7, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := parsnip.ParseString(Primary(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, common.Number(tt.want), result.Node)
			assert.Equal(t, tt.remaining, result.Remaining.Val())
		})
	}
}

func TestExponent(t *testing.T) {
	result, err := parsnip.ParseString(Exponent(), "2")
	require.NoError(t, err)
	assert.Equal(t, common.Number(2), result.Node)

	result, err = parsnip.ParseString(Exponent(), "(2)^5")
	require.NoError(t, err)
	assert.Equal(t, common.Number(32), result.Node)
	assert.Empty(t, result.Remaining.Val())
}

func TestLayerLeavesUnmatchedInput(t *testing.T) {
	result, err := parsnip.ParseString(Expression(), "1 + 2 ]")
	require.NoError(t, err)
	assert.Equal(t, common.Number(3), result.Node)
	assert.Equal(t, " ]", result.Remaining.Val())
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  int32
	}{
		{"5", 5},
		{"5-3", 2},
		{"5 - 3", 2},
		{"5+4-11", -2},
		{"5 + 3*2", 11},
		{"5 - 2^5", -27},
		{"5*2-3*2", 4},
		{"20 / 10 * 5", 10},
		{"(2)^3^2", 64},
		{"2^3^2", 64},
		{"2^(3^2)", 512},
		{"(5 + 3) * 2", 16},
		{"7 / 2", 3},
		{"-7 / 2", -3},
		{"5 - -3", 8},
		{"2 ^ 0", 1},
		{"0^0", 1},
		{"(-1)^2147483647", -1},
		{"\n 1\n+\n1 \n", 2},
		{"2147483647", 2147483647},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateFailures(t *testing.T) {
	tests := []struct {
		input string
		kind  common.ErrorKind
	}{
		{"1/0", common.Arithmetic},
		{"2 * (1 / 0)", common.Arithmetic},
		{"2147483647 + 1", common.Arithmetic},
		{"2^31", common.Arithmetic},
		{"2^-1", common.NumericConversion},
		{"99999999999", common.NumericConversion},
		{"1 + 99999999999", common.NumericConversion},
		{"1 2", common.TrailingData},
		{"1 +", common.TrailingData},
		{"", common.SyntaxMismatch},
		{"(1 + 2", common.SyntaxMismatch},
		{"+", common.SyntaxMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Evaluate(tt.input)
			require.Error(t, err)
			assert.Truef(t, common.IsKind(err, tt.kind), "want %s, got %v", tt.kind, err)
		})
	}
}

func TestDivisionByZeroLocation(t *testing.T) {
	_, err := Evaluate("8 /  4 / 0")

	var parseErr *common.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 7, parseErr.Loc.Pos)
	assert.Equal(t, "division by zero", parseErr.Message)
}

func TestCustomLayer(t *testing.T) {
	maximum := Operator{Literal: "max", Apply: func(acc, operand common.Integer) (common.Integer, error) {
		return max(acc, operand), nil
	}}

	result, err := parsnip.ParseString(Layer([]Operator{maximum}, IntLiteral), "3 max 9 max 4")
	require.NoError(t, err)
	assert.Equal(t, common.Number(9), result.Node)
}
