// The enumeration engine. A cursor tree is built once from the entry
// producer and mirrors the grammar's shape; advancing it steps through the
// language like an odometer where the FIRST token of each rule is the least
// significant digit. The grammar itself is never mutated, so any number of
// cursor trees can run over the same grammar.
package rulegram

import "bytes"

// Cursor designates one emission of a grammar element and can be stepped
// to the next one.
type Cursor interface {
	// Current appends the designated string to out. Undefined once the
	// cursor is exhausted.
	Current(out *bytes.Buffer)

	// Advance moves to the next emission; after the last one the cursor
	// becomes exhausted. Advancing an exhausted cursor is a no-op.
	Advance()

	// Reset re-initialises the cursor in place so Current yields the same
	// string a freshly built cursor would.
	Reset()

	Exhausted() bool
}

// NewCursor builds the cursor tree for the grammar's entry producer. The
// grammar must have been analyzed.
func NewCursor(g *Grammar) Cursor {
	entry := g.Get(EntryName)
	if entry == nil {
		panic("rulegram: cursor over grammar without entry producer")
	}
	return newProducerCursor(entry)
}

// producerCursor steps through the alternatives of one producer, emitting
// every string of the active alternative before moving to the next.
type producerCursor struct {
	rules  []*ruleCursor
	active int
}

func newProducerCursor(p *Producer) *producerCursor {
	pc := &producerCursor{rules: make([]*ruleCursor, len(p.Rules))}
	for i, r := range p.Rules {
		pc.rules[i] = newRuleCursor(r)
	}
	return pc
}

func (pc *producerCursor) Exhausted() bool {
	return pc.active >= len(pc.rules)
}

func (pc *producerCursor) Current(out *bytes.Buffer) {
	pc.rules[pc.active].Current(out)
}

func (pc *producerCursor) Advance() {
	if pc.Exhausted() {
		return
	}
	rc := pc.rules[pc.active]
	rc.Advance()
	if rc.Exhausted() {
		rc.Reset()
		pc.active++
	}
}

func (pc *producerCursor) Reset() {
	pc.active = 0
	for _, rc := range pc.rules {
		rc.Reset()
	}
}

// ruleCursor holds one cursor per token of its rule. Its emission is the
// concatenation of its tokens' emissions.
type ruleCursor struct {
	tokens    []Cursor
	exhausted bool
}

func newRuleCursor(r Rule) *ruleCursor {
	rc := &ruleCursor{tokens: make([]Cursor, len(r.Tokens))}
	for i, tok := range r.Tokens {
		switch tok.Kind {
		case TerminalToken:
			rc.tokens[i] = &terminalCursor{literal: tok.Literal}
		case NonTerminalToken:
			// Each non-terminal owns a fresh producer cursor; sharing one
			// across references would alias odometer state.
			rc.tokens[i] = newProducerCursor(tok.Ref)
		default:
			panic("rulegram: cursor over unresolved grammar")
		}
	}
	return rc
}

func (rc *ruleCursor) Exhausted() bool {
	return rc.exhausted
}

func (rc *ruleCursor) Current(out *bytes.Buffer) {
	for _, tc := range rc.tokens {
		tc.Current(out)
	}
}

// Advance runs the odometer: bump the first token; on wrap-around reset it
// and carry into the second, and so on. Carrying out of the last token
// exhausts the rule.
func (rc *ruleCursor) Advance() {
	if rc.exhausted {
		return
	}
	for _, tc := range rc.tokens {
		tc.Advance()
		if !tc.Exhausted() {
			return
		}
		tc.Reset()
	}
	rc.exhausted = true
}

func (rc *ruleCursor) Reset() {
	rc.exhausted = false
	for _, tc := range rc.tokens {
		tc.Reset()
	}
}

// terminalCursor has exactly one emission: its literal.
type terminalCursor struct {
	literal   []byte
	exhausted bool
}

func (tc *terminalCursor) Exhausted() bool {
	return tc.exhausted
}

func (tc *terminalCursor) Current(out *bytes.Buffer) {
	out.Write(tc.literal)
}

func (tc *terminalCursor) Advance() {
	tc.exhausted = true
}

func (tc *terminalCursor) Reset() {
	tc.exhausted = false
}
