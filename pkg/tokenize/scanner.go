package tokenize

// Token is one maximal run of the source text. Separator reports whether the
// run consists of separator characters. Concatenating the tokens of a text in
// scan order reproduces the text exactly.
type Token struct {
	Text      string
	Separator bool
}

// NextRun returns the maximal run starting at start together with its
// classification. The run is never empty and extends as far as consecutive
// bytes share the classification of text[start]. start must satisfy
// 0 <= start < len(text).
func NextRun(text string, start int, seps *SeparatorSet) (string, bool) {
	sep := seps.IsSeparator(text[start])
	end := start + 1
	for end < len(text) && seps.IsSeparator(text[end]) == sep {
		end++
	}
	return text[start:end], sep
}

// Scanner walks a text as a sequence of maximal runs, in the style of
// bufio.Scanner. Construct with NewScanner; the zero value is empty.
type Scanner struct {
	text string
	seps *SeparatorSet
	pos  int
	tok  Token
}

// NewScanner returns a Scanner over text using the given separator set.
func NewScanner(text string, seps *SeparatorSet) *Scanner {
	return &Scanner{text: text, seps: seps}
}

// Scan advances to the next run, returning false once the text is consumed.
func (s *Scanner) Scan() bool {
	if s.pos >= len(s.text) {
		return false
	}
	run, sep := NextRun(s.text, s.pos, s.seps)
	s.pos += len(run)
	s.tok = Token{Text: run, Separator: sep}
	return true
}

// Token returns the run read by the most recent call to Scan.
func (s *Scanner) Token() Token {
	return s.tok
}
