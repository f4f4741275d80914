package common

// CharSet is an immutable set of characters used by character-run parsers.
type CharSet struct {
	members map[rune]struct{}
}

func NewCharSet(chars string) CharSet {
	members := make(map[rune]struct{}, len(chars))

	for _, ch := range chars {
		members[ch] = struct{}{}
	}

	return CharSet{members}
}

func (c CharSet) Contains(ch rune) bool {
	_, ok := c.members[ch]
	return ok
}

var (
	// StringCharacters is what may appear between the quotes of a string.
	// There are no escape sequences.
	StringCharacters = NewCharSet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz1234567890-@.")
	NumberCharacters = NewCharSet("1234567890")
)
