package rulegram

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCursor(t *testing.T, input string) Cursor {
	g := mustParse(t, input)
	require.NoError(t, Analyze(g))
	return NewCursor(g)
}

func current(c Cursor) string {
	var buf bytes.Buffer
	c.Current(&buf)
	return buf.String()
}

func enumerate(c Cursor) []string {
	var out []string
	for !c.Exhausted() {
		out = append(out, current(c))
		c.Advance()
	}
	return out
}

func collect(t *testing.T, input string) []string {
	return enumerate(buildCursor(t, input))
}

func TestSingleTerminal(t *testing.T) {
	assert.Equal(t, []string{"x"}, collect(t, "PRODUCER:'x'"))
}

func TestConcatenationWithAlternation(t *testing.T) {
	// the first token varies fastest
	assert.Equal(t, []string{"0a", "1a", "0b", "1b"}, collect(t, `
A:'0','1'
B:'a','b'
PRODUCER: A B
`))
}

func TestNestedProducers(t *testing.T) {
	// C enumerates a, b, 0, 1; the first C varies fastest
	assert.Equal(t, []string{
		"aa", "ba", "0a", "1a",
		"ab", "bb", "0b", "1b",
		"a0", "b0", "00", "10",
		"a1", "b1", "01", "11",
	}, collect(t, `
D:'0','1'
L:'a','b'
C: L , D
PRODUCER: C C
`))
}

func TestEmptyTerminalEmitsNothing(t *testing.T) {
	assert.Equal(t, []string{"x"}, collect(t, "E:''\nPRODUCER: E 'x'\n"))
}

func TestCommentAndBlankLines(t *testing.T) {
	assert.Equal(t, []string{"0", "1"}, collect(t, "# leading comment\nNUM:'0','1'\n\nPRODUCER: NUM\n"))
}

func TestAlternativesInDeclarationOrder(t *testing.T) {
	assert.Equal(t, []string{"ab", "c"}, collect(t, "A:'a' 'b','c'\nPRODUCER: A\n"))
}

func TestRedefinedProducerEnumeratesInSourceOrder(t *testing.T) {
	assert.Equal(t, []string{"0", "1"}, collect(t, "A:'0'\nA:'1'\nPRODUCER: A\n"))
}

func TestDefinitionOrderDoesNotAffectLanguage(t *testing.T) {
	forward := collect(t, "PRODUCER: A B\nA:'0','1'\nB:'a','b'\n")
	backward := collect(t, "B:'a','b'\nA:'0','1'\nPRODUCER: A B\n")
	assert.Equal(t, forward, backward)
}

func TestDuplicateDerivationsAppearTwice(t *testing.T) {
	// the same string from two distinct derivations is emitted twice
	assert.Equal(t, []string{"x", "x"}, collect(t, "A:'x','x'\nPRODUCER: A\n"))
}

func TestDeepNesting(t *testing.T) {
	assert.Equal(t, []string{"0z", "1z", "0y", "1y"}, collect(t, `
D:'0','1'
M: D 'z' , D 'y'
PRODUCER: M
`))
}

func TestResetBeforeAnyAdvance(t *testing.T) {
	c := buildCursor(t, "A:'0','1'\nB:'a','b'\nPRODUCER: A B\n")
	first := current(c)
	c.Reset()
	assert.Equal(t, first, current(c))
}

func TestResetRestartsEnumeration(t *testing.T) {
	c := buildCursor(t, "A:'0','1'\nB:'a','b'\nPRODUCER: A B\n")
	all := enumerate(c)
	require.True(t, c.Exhausted())
	c.Reset()
	assert.False(t, c.Exhausted())
	assert.Equal(t, all, enumerate(c))
}

func TestResetMidway(t *testing.T) {
	c := buildCursor(t, "A:'0','1'\nB:'a','b'\nPRODUCER: A B\n")
	c.Advance()
	c.Advance()
	c.Reset()
	assert.Equal(t, "0a", current(c))
}

func TestExhaustionIsFinal(t *testing.T) {
	c := buildCursor(t, "PRODUCER:'x'")
	assert.False(t, c.Exhausted())
	c.Advance()
	assert.True(t, c.Exhausted())
	c.Advance()
	assert.True(t, c.Exhausted())
	c.Advance()
	assert.True(t, c.Exhausted())
}

func TestLanguageSize(t *testing.T) {
	// 4 * 4 * 4 three-symbol words
	words := collect(t, `
D:'0','1'
L:'a','b'
C: L , D
PRODUCER: C C C
`)
	assert.Len(t, words, 64)

	// no accidental duplicates: every derivation here is distinct
	seen := make(map[string]bool)
	for _, w := range words {
		assert.False(t, seen[w], "duplicate %q", w)
		seen[w] = true
	}
}
