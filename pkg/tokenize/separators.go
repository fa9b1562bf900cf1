// Package tokenize splits raw text into maximal word and separator runs.
package tokenize

// DefaultAlphabet holds the characters treated as word boundaries:
// whitespace plus the punctuation commonly found in prose.
const DefaultAlphabet = " \t\n\r,.:;!?/-~()[]*'_{}`\""

// SeparatorSet answers byte-level membership queries against a separator
// alphabet. The alphabet is ASCII only, so classification never needs to
// decode runes: any byte of a multi-byte UTF-8 sequence is above 0x7F and
// therefore always part of a word run.
type SeparatorSet struct {
	table [256]bool
}

// NewSeparatorSet builds a classifier from the given alphabet.
// Bytes outside the ASCII range are ignored.
func NewSeparatorSet(alphabet string) *SeparatorSet {
	s := &SeparatorSet{}
	for i := 0; i < len(alphabet); i++ {
		if b := alphabet[i]; b < 0x80 {
			s.table[b] = true
		}
	}
	return s
}

// DefaultSeparators returns the classifier for DefaultAlphabet.
func DefaultSeparators() *SeparatorSet {
	return NewSeparatorSet(DefaultAlphabet)
}

// IsSeparator reports whether b belongs to the separator alphabet.
func (s *SeparatorSet) IsSeparator(b byte) bool {
	return s.table[b]
}

// Alphabet returns the separator bytes in ascending byte order.
func (s *SeparatorSet) Alphabet() string {
	out := make([]byte, 0, 32)
	for b := 0; b < 256; b++ {
		if s.table[b] {
			out = append(out, byte(b))
		}
	}
	return string(out)
}
