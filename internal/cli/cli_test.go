package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/l-donovan/parsnip/common"
	"github.com/l-donovan/parsnip/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetArgs(append([]string{"--color", "never"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(WithLogger(context.Background(), testutil.NewTestLogger(t)))

	return result{stdout.String(), stderr.String(), err}
}

func TestCalc(t *testing.T) {
	res := run(t, "", "calc", "5 + 3*2", "(2)^3^2", "20 / 10 * 5", "(-7) / 2")
	require.NoError(t, res.err)
	assert.Equal(t, "11\n64\n10\n-3\n", res.stdout)
}

func TestCalcStopsAtFirstFailure(t *testing.T) {
	res := run(t, "", "calc", "1 + 1", "2 * (1 / 0)", "3")
	require.Error(t, res.err)

	assert.True(t, common.IsKind(res.err, common.Arithmetic))
	assert.Equal(t, "2\n", res.stdout)
	assert.Contains(t, res.stderr, "Context:")
	assert.Contains(t, res.stderr, "division by zero")
}

func TestCalcRequiresAnExpression(t *testing.T) {
	res := run(t, "", "calc")
	assert.Error(t, res.err)
}

func TestJSONFromStdin(t *testing.T) {
	res := run(t, `{"a": [1, 2,], "b": {}, "c": null}`, "json")
	require.NoError(t, res.err)

	want := `{
  "a": [
    1,
    2
  ],
  "b": {},
  "c": null
}
`
	assert.Equal(t, want, res.stdout)
}

func TestJSONFormattingFlags(t *testing.T) {
	res := run(t, `[true, ["x"]]`, "json", "--minify")
	require.NoError(t, res.err)
	assert.Equal(t, "[true,[\"x\"]]\n", res.stdout)

	res = run(t, `[true, ["x"]]`, "json", "--tabs", "--indent", "1")
	require.NoError(t, res.err)
	assert.Equal(t, "[\n\ttrue,\n\t[\n\t\t\"x\"\n\t]\n]\n", res.stdout)
}

func TestJSONFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte("\n  [ ]\n"), 0o600))

	res := run(t, "", "json", path)
	require.NoError(t, res.err)
	assert.Equal(t, "[]\n", res.stdout)
}

func TestJSONMissingFile(t *testing.T) {
	res := run(t, "", "json", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "missing.json")
	assert.Empty(t, res.stderr)
}

func TestJSONParseError(t *testing.T) {
	res := run(t, "[1,\n 2\n 3]", "json")
	require.Error(t, res.err)

	assert.True(t, common.IsKind(res.err, common.SyntaxMismatch))
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "Context:")
	assert.Contains(t, res.stderr, "2 │  2")
}

func TestJSONOverflow(t *testing.T) {
	res := run(t, "[2147483648]", "json")
	require.Error(t, res.err)
	assert.True(t, common.IsKind(res.err, common.NumericConversion))
}

func TestDemo(t *testing.T) {
	res := run(t, "", "demo", "--minify")
	require.NoError(t, res.err)

	want := `Tree: Sequence[String("Dog"), Number(2), Boolean(false), Sequence[String("frank")], Mapping{String("sing"): Number(55)}, Null]
Value: ["Dog",2,false,["frank"],{"sing":55},null]
`
	assert.Equal(t, want, res.stdout)
}

func TestInvalidConfig(t *testing.T) {
	res := run(t, "", "--color", "rainbow", "calc", "1")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid color mode")
}

func TestGetConfigDefault(t *testing.T) {
	cfg := GetConfig(context.Background())
	assert.Equal(t, 2, cfg.Indent)
	assert.Equal(t, "auto", cfg.Color)
}

func TestColorAlways(t *testing.T) {
	t.Cleanup(func() { color.NoColor = true })

	res := run(t, `{"a": 1}`, "json", "--color", "always")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "\x1b[")

	res = run(t, "[1 2]", "json", "--color", "always")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "\x1b[")
}

func TestColorAutoDecidesPerWriter(t *testing.T) {
	t.Cleanup(func() { color.NoColor = true })
	color.NoColor = false

	res := run(t, "[1 2]", "json", "--color", "auto")
	require.Error(t, res.err)

	assert.True(t, color.NoColor, "stderr is not a terminal")
	assert.NotContains(t, res.stderr, "\x1b[")

	res = run(t, `{"a": 1}`, "json", "--color", "auto")
	require.NoError(t, res.err)
	assert.NotContains(t, res.stdout, "\x1b[")
}
