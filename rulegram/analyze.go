package rulegram

import "fmt"

// UnknownProducerError reports a reference to a producer that is defined
// nowhere in the grammar.
type UnknownProducerError struct {
	Symbol string
}

func (e UnknownProducerError) Error() string {
	return fmt.Sprintf("no such producer: %s", e.Symbol)
}

// NonProductiveError reports a producer, reachable from the entry, that has
// no terminating derivation.
type NonProductiveError struct {
	Name string
}

func (e NonProductiveError) Error() string {
	return fmt.Sprintf("%s cannot be instantiated", e.Name)
}

// RecursiveError reports a producer that derives itself. Such a producer
// may still be productive, but its language is infinite and can never be
// fully enumerated.
type RecursiveError struct {
	Name string
}

func (e RecursiveError) Error() string {
	return fmt.Sprintf("%s derives itself and cannot be fully enumerated", e.Name)
}

// MissingEntryError reports a grammar with no entry producer.
type MissingEntryError struct{}

func (e MissingEntryError) Error() string {
	return fmt.Sprintf("no %s producer defined", EntryName)
}

// Analyze resolves every symbolic reference in the grammar and verifies
// that enumeration from the entry producer will terminate. Resolution
// happens here rather than during parsing so that forward references work.
// After Analyze returns nil the grammar is complete: every token is a
// terminal or a resolved non-terminal, and every producer reachable from
// the entry has a finite language.
func Analyze(g *Grammar) error {
	if g.Get(EntryName) == nil {
		return MissingEntryError{}
	}

	// Resolution covers the whole grammar, not just what the entry
	// reaches: a dangling reference is an authoring error wherever it sits.
	for _, p := range g.Producers() {
		for ri := range p.Rules {
			tokens := p.Rules[ri].Tokens
			for ti := range tokens {
				tok := &tokens[ti]
				if tok.Kind != UnresolvedToken {
					continue
				}
				ref := g.Get(tok.Symbol)
				if ref == nil {
					return UnknownProducerError{Symbol: tok.Symbol}
				}
				tok.Kind = NonTerminalToken
				tok.Ref = ref
			}
		}
	}

	productive := markProductive(g)
	reachable := markReachable(g.Get(EntryName))

	// Diagnose the first offender in definition order, so the error is
	// stable across runs.
	for _, p := range g.Producers() {
		if reachable[p] && !productive[p] {
			return NonProductiveError{Name: p.Name}
		}
	}

	// Productivity alone does not rule out e.g. `A:'x',A 'y'`: A terminates
	// but its language is infinite, and the cursor tree over it could not
	// even be built. Any cycle reachable from the entry is rejected.
	if name, ok := findCycle(g.Get(EntryName)); ok {
		return RecursiveError{Name: name}
	}

	return nil
}

// markProductive runs the fixed point: a producer is productive once some
// rule of it contains only terminals and productive non-terminals.
func markProductive(g *Grammar) map[*Producer]bool {
	productive := make(map[*Producer]bool)
	for changed := true; changed; {
		changed = false
		for _, p := range g.Producers() {
			if productive[p] {
				continue
			}
			for _, r := range p.Rules {
				if ruleProductive(r, productive) {
					productive[p] = true
					changed = true
					break
				}
			}
		}
	}
	return productive
}

func ruleProductive(r Rule, productive map[*Producer]bool) bool {
	for _, tok := range r.Tokens {
		if tok.Kind == NonTerminalToken && !productive[tok.Ref] {
			return false
		}
	}
	return true
}

func markReachable(entry *Producer) map[*Producer]bool {
	reachable := make(map[*Producer]bool)
	var visit func(p *Producer)
	visit = func(p *Producer) {
		if reachable[p] {
			return
		}
		reachable[p] = true
		for _, r := range p.Rules {
			for _, tok := range r.Tokens {
				if tok.Kind == NonTerminalToken {
					visit(tok.Ref)
				}
			}
		}
	}
	visit(entry)
	return reachable
}

// findCycle looks for a producer that can derive itself, depth-first from
// the entry. Returns the name of a producer on the first cycle found.
func findCycle(entry *Producer) (string, bool) {
	const (
		visiting = 1
		done     = 2
	)
	state := make(map[*Producer]int)
	var visit func(p *Producer) (string, bool)
	visit = func(p *Producer) (string, bool) {
		switch state[p] {
		case visiting:
			return p.Name, true
		case done:
			return "", false
		}
		state[p] = visiting
		for _, r := range p.Rules {
			for _, tok := range r.Tokens {
				if tok.Kind != NonTerminalToken {
					continue
				}
				if name, ok := visit(tok.Ref); ok {
					return name, true
				}
			}
		}
		state[p] = done
		return "", false
	}
	return visit(entry)
}
