package rulegram

import "strings"

// The rules format is line-oriented, and which bytes act as delimiters
// depends on where in the line we are: before the ':' that ends the producer
// name, only spaces and newlines delimit; after it, commas and quotes do
// too, while ':' and '#' become ordinary identifier bytes. The Scanner is a
// cursor in the buffer carrying that per-line state across tokens, and the
// parser consumes it directly without a separate token stream.
type Scanner struct {
	input string

	startIndex int // start of this token
	curIndex   int // current position of the Scanner

	tokenType TokenType

	// value holds the cleaned payload of IdentifierToken and
	// QuotedLiteralToken: quotes stripped, '\r' and '\t' removed.
	value string

	// per-line state, reset on every newline
	startOfLine bool // only spaces seen since start of line? '#' opens a comment only here
	afterName   bool // has the name-terminating ':' been seen on this line?

	line int // 0-based line of the current token
}

type TokenType int

func NewScanner(input string) *Scanner {
	return &Scanner{input: input, startOfLine: true}
}

func (s *Scanner) TokenType() TokenType {
	return s.tokenType
}

// Token returns the raw input slice of the current token, including any
// quotes and ignored bytes.
func (s *Scanner) Token() string {
	return s.input[s.startIndex:s.curIndex]
}

// Value returns the payload of the current token: for quoted literals the
// bytes between the quotes, for identifiers the identifier bytes, in both
// cases with '\r' and '\t' dropped. Empty for all other token types.
func (s *Scanner) Value() string {
	return s.value
}

// Line returns the 0-based line number at the scanner's position.
func (s *Scanner) Line() int {
	return s.line
}

// LineText returns the given 0-based line with '\r' stripped and without
// the trailing newline, for use in diagnostics.
func (s *Scanner) LineText(line int) string {
	rest := s.input
	for ; line > 0; line-- {
		nl := strings.IndexByte(rest, '\n')
		if nl < 0 {
			return ""
		}
		rest = rest[nl+1:]
	}
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	return strings.ReplaceAll(rest, "\r", "")
}

// NextToken scans the next token and advances the Scanner's position to
// after the token.
func (s *Scanner) NextToken() TokenType {
	s.tokenType = s.nextToken()
	switch s.tokenType {
	case NewlineToken:
		s.line++
		s.startOfLine = true
		s.afterName = false
	case SpaceToken, CommentToken, EOFToken:
		// still "at start of line" for comment purposes
	default:
		if s.tokenType == NameSepToken {
			s.afterName = true
		}
		s.startOfLine = false
	}
	return s.tokenType
}

func (s *Scanner) nextToken() TokenType {
	s.skipIgnored()
	s.startIndex = s.curIndex
	s.value = ""

	if s.curIndex >= len(s.input) {
		return EOFToken
	}

	c := s.input[s.curIndex]
	switch {
	case c == '\n':
		s.curIndex++
		return NewlineToken
	case c == ' ':
		return s.scanSpaces()
	case c == '#' && s.startOfLine:
		return s.scanComment()
	case c == ':' && !s.afterName:
		s.curIndex++
		return NameSepToken
	}

	if s.afterName {
		switch c {
		case ',':
			s.curIndex++
			return CommaToken
		case '\'', '"':
			s.curIndex++
			return s.scanQuoted(c)
		}
	}

	return s.scanIdentifier()
}

// '\r' and '\t' play no syntactic role anywhere, not even inside quoted
// literals; they are dropped below the token level.
func (s *Scanner) skipIgnored() {
	for s.curIndex < len(s.input) {
		if c := s.input[s.curIndex]; c != '\r' && c != '\t' {
			return
		}
		s.curIndex++
	}
}

func (s *Scanner) scanSpaces() TokenType {
	for s.curIndex < len(s.input) {
		switch s.input[s.curIndex] {
		case ' ', '\r', '\t':
			s.curIndex++
		default:
			return SpaceToken
		}
	}
	return SpaceToken
}

// scanComment consumes up to, not including, the newline.
func (s *Scanner) scanComment() TokenType {
	if end := strings.IndexByte(s.input[s.curIndex:], '\n'); end >= 0 {
		s.curIndex += end
	} else {
		s.curIndex = len(s.input)
	}
	return CommentToken
}

// scanQuoted assumes the opening quote has been consumed. There are no
// escape sequences; the first matching quote ends the literal, and quotes
// of the other kind are ordinary bytes. A literal cannot span lines.
func (s *Scanner) scanQuoted(quote byte) TokenType {
	var value strings.Builder
	for s.curIndex < len(s.input) {
		c := s.input[s.curIndex]
		switch c {
		case quote:
			s.curIndex++
			s.value = value.String()
			return QuotedLiteralToken
		case '\n':
			return UnterminatedLiteralErrorToken
		case '\r', '\t':
			s.curIndex++
		default:
			value.WriteByte(c)
			s.curIndex++
		}
	}
	return UnterminatedLiteralErrorToken
}

// scanIdentifier assumes the first byte of the identifier is at curIndex.
// Which bytes end the run depends on the line mode (see Scanner doc).
func (s *Scanner) scanIdentifier() TokenType {
	var value strings.Builder
	for s.curIndex < len(s.input) {
		c := s.input[s.curIndex]
		switch {
		case c == '\n' || c == ' ':
			s.value = value.String()
			return IdentifierToken
		case c == '\r' || c == '\t':
			s.curIndex++
			continue
		case !s.afterName && c == ':':
			s.value = value.String()
			return IdentifierToken
		case s.afterName && (c == ',' || c == '\'' || c == '"'):
			s.value = value.String()
			return IdentifierToken
		}
		value.WriteByte(c)
		s.curIndex++
	}
	s.value = value.String()
	return IdentifierToken
}
