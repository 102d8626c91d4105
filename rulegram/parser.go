// Line parser for the rules format. Each logical line defines alternatives
// of one producer:
//
//	NAME : ELEMENT (',' ELEMENT)*
//
// Within the element list, spaces separate tokens of a single rule
// (concatenation) and commas start a new alternative. Quoted literals
// ('...' or "...") become terminal tokens; any other byte run becomes a
// reference to another producer. '#' at the start of a line opens a
// comment. The first malformed line stops parsing.
package rulegram

import "fmt"

// Error is a line-scoped parse diagnostic. Line is 1-based; LineText is the
// offending line with '\r' and the newline stripped.
type Error struct {
	Line     int
	LineText string
	Message  string
}

func (e Error) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Message, e.LineText)
}

// ParseString parses a complete rules text into a grammar. References are
// left unresolved; run Analyze before enumerating.
func ParseString(input string) (*Grammar, error) {
	return Parse(NewScanner(input))
}

// Parse consumes the scanner to the end of input or the first malformed
// line, whichever comes first.
//
// CONVENTION: parse functions are called with the scanner positioned ON the
// token that triggered them, and return with it positioned on the token
// that ends their construct (the newline or EOF closing the line).
func Parse(s *Scanner) (*Grammar, error) {
	g := NewGrammar()
	for {
		switch tt := s.NextToken(); tt {
		case EOFToken:
			return g, nil
		case NewlineToken, SpaceToken, CommentToken:
			// blank or comment line, or indentation before a name
		case IdentifierToken:
			if err := parseRuleLine(s, g); err != nil {
				return nil, err
			}
		case NameSepToken:
			return nil, lineError(s, s.Line(), "empty producer name")
		default:
			return nil, lineError(s, s.Line(), fmt.Sprintf("unexpected %s", tt))
		}
	}
}

// parseRuleLine parses one `NAME : elements` line; the scanner is on the
// name identifier.
func parseRuleLine(s *Scanner, g *Grammar) error {
	line := s.Line()
	name := s.Value()

	// Spaces around the name are fine, a second identifier before the ':'
	// is not.
	for {
		switch tt := s.NextToken(); tt {
		case NameSepToken:
			return parseElements(s, g, line, name)
		case SpaceToken:
			continue
		case IdentifierToken:
			return lineError(s, line, "space in producer name")
		case NewlineToken, EOFToken:
			return lineError(s, line, "missing ':' after producer name")
		default:
			return lineError(s, line, fmt.Sprintf("unexpected %s in producer name", tt))
		}
	}
}

// parseElements parses the element list after the ':'. Every comma commits
// the tokens accumulated so far as one alternative of the named producer.
func parseElements(s *Scanner, g *Grammar, line int, name string) error {
	var rule Rule
	committed := 0

	commit := func() error {
		if len(rule.Tokens) == 0 {
			return lineError(s, line, "empty alternative")
		}
		g.AddRule(name, rule)
		rule = Rule{}
		committed++
		return nil
	}

	for {
		switch tt := s.NextToken(); tt {
		case SpaceToken:
			// the scanner already split tokens; nothing to do
		case IdentifierToken:
			rule.Tokens = append(rule.Tokens, Reference(s.Value()))
		case QuotedLiteralToken:
			rule.Tokens = append(rule.Tokens, Terminal(s.Value()))
		case CommaToken:
			if err := commit(); err != nil {
				return err
			}
		case UnterminatedLiteralErrorToken:
			return lineError(s, line, "unterminated quoted literal")
		case NewlineToken, EOFToken:
			if len(rule.Tokens) > 0 {
				return commit()
			}
			if committed == 0 {
				return lineError(s, line, "rule line has no elements")
			}
			// something was committed but the line ended right after a
			// comma
			return lineError(s, line, "empty alternative")
		default:
			return lineError(s, line, fmt.Sprintf("unexpected %s in elements", tt))
		}
	}
}

func lineError(s *Scanner, line int, message string) error {
	return Error{Line: line + 1, LineText: s.LineText(line), Message: message}
}
