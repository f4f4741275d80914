package document

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/l-donovan/parsnip/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{"name": "Shyam", "tags": ["a", 1, true, null, [], {}], "nested": {"n": -5}}`

func TestSerializeIndented(t *testing.T) {
	v, err := Loads(sample)
	require.NoError(t, err)

	out, err := common.Serialize(v, false, 2)
	require.NoError(t, err)

	want := strings.Join([]string{
		`{`,
		`  "name": "Shyam",`,
		`  "tags": [`,
		`    "a",`,
		`    1,`,
		`    true,`,
		`    null,`,
		`    [],`,
		`    {}`,
		`  ],`,
		`  "nested": {`,
		`    "n": -5`,
		`  }`,
		`}`,
	}, "\n")
	assert.Equal(t, want, out)
}

func TestSerializeTabs(t *testing.T) {
	v, err := Loads(`[1, [2]]`)
	require.NoError(t, err)

	out, err := common.Serialize(v, true, 1)
	require.NoError(t, err)
	assert.Equal(t, "[\n\t1,\n\t[\n\t\t2\n\t]\n]", out)
}

func TestMinify(t *testing.T) {
	v, err := Loads(sample)
	require.NoError(t, err)

	out, err := common.Minify(v)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Shyam","tags":["a",1,true,null,[],{}],"nested":{"n":-5}}`, out)
}

func TestMarshalJSON(t *testing.T) {
	v, err := Loads(sample)
	require.NoError(t, err)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Shyam","tags":["a",1,true,null,[],{}],"nested":{"n":-5}}`, string(out))

	out, err = json.Marshal(String(`quote " and \ backslash`))
	require.NoError(t, err)
	assert.Equal(t, `"quote \" and \\ backslash"`, string(out))
}

func TestSerializeWithColorsIgnoresGlobalSwitch(t *testing.T) {
	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })

	v, err := Loads(`{"a": 1}`)
	require.NoError(t, err)

	config := common.NewSerializerConfig(false, 2, true).WithColors(common.NewColors())
	out, err := v.Serialize(config, 0)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, `"a"`)
}
