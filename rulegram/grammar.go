package rulegram

import (
	"fmt"
	"strings"
)

// EntryName is the producer every grammar must define; enumeration starts
// from it.
const EntryName = "PRODUCER"

type TokenKind int

const (
	// TerminalToken contributes its literal bytes to the output.
	TerminalToken TokenKind = iota + 1

	// NonTerminalToken references another producer; Ref is set by Analyze.
	NonTerminalToken

	// UnresolvedToken is the parse-time form of a reference: only the
	// symbol is known. Analyze turns every one of these into a
	// NonTerminalToken or fails.
	UnresolvedToken
)

// Token is a single grammar atom. The Symbol is kept after resolution so
// diagnostics and dumps can name the reference without chasing Ref.
type Token struct {
	Kind    TokenKind
	Literal []byte    // TerminalToken only
	Symbol  string    // NonTerminalToken and UnresolvedToken
	Ref     *Producer // NonTerminalToken only; non-owning
}

func Terminal(literal string) Token {
	return Token{Kind: TerminalToken, Literal: []byte(literal)}
}

func Reference(symbol string) Token {
	return Token{Kind: UnresolvedToken, Symbol: symbol}
}

func (t Token) String() string {
	if t.Kind == TerminalToken {
		return "'" + string(t.Literal) + "'"
	}
	return t.Symbol
}

// Rule is an ordered, non-empty token sequence; it emits the concatenation
// of its tokens' emissions.
type Rule struct {
	Tokens []Token
}

func (r Rule) String() string {
	parts := make([]string, len(r.Tokens))
	for i, t := range r.Tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// Producer is a named list of alternative rules, in definition order.
type Producer struct {
	Name  string
	Rules []Rule
}

// Grammar maps producer names to producers, remembering definition order so
// diagnostics and dumps are deterministic.
type Grammar struct {
	names  []string
	byName map[string]*Producer
}

func NewGrammar() *Grammar {
	return &Grammar{byName: make(map[string]*Producer)}
}

// AddRule appends rule as an alternative of the named producer, defining
// the producer if this is its first rule.
func (g *Grammar) AddRule(name string, rule Rule) {
	p := g.byName[name]
	if p == nil {
		p = &Producer{Name: name}
		g.byName[name] = p
		g.names = append(g.names, name)
	}
	p.Rules = append(p.Rules, rule)
}

// Get returns the named producer, or nil.
func (g *Grammar) Get(name string) *Producer {
	return g.byName[name]
}

// Producers returns all producers in definition order.
func (g *Grammar) Producers() []*Producer {
	result := make([]*Producer, len(g.names))
	for i, name := range g.names {
		result[i] = g.byName[name]
	}
	return result
}

func (g *Grammar) Len() int {
	return len(g.names)
}

// Outline is a flat, marshal-friendly rendering of a grammar, used by the
// dump command and by tests comparing parse results.
type Outline struct {
	Entry     string            `yaml:"entry"`
	Producers []ProducerOutline `yaml:"producers"`
}

type ProducerOutline struct {
	Name  string   `yaml:"name"`
	Rules []string `yaml:"rules"`
}

func (g *Grammar) Outline() Outline {
	outline := Outline{Entry: EntryName}
	for _, p := range g.Producers() {
		po := ProducerOutline{Name: p.Name}
		for _, r := range p.Rules {
			po.Rules = append(po.Rules, r.String())
		}
		outline.Producers = append(outline.Producers, po)
	}
	return outline
}

func (g *Grammar) String() string {
	var b strings.Builder
	for _, p := range g.Producers() {
		ruleTexts := make([]string, len(p.Rules))
		for i, r := range p.Rules {
			ruleTexts[i] = r.String()
		}
		fmt.Fprintf(&b, "%s: %s\n", p.Name, strings.Join(ruleTexts, " , "))
	}
	return b.String()
}
