package document

import "github.com/l-donovan/parsnip/jsonish"

// Loads parses a complete document and converts it into a Value.
func Loads(s string) (Value, error) {
	node, err := jsonish.Parse(s)

	if err != nil {
		return nil, err
	}

	return Convert(node)
}
