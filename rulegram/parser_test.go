package rulegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// outline of a parse, for golden comparisons
func parseOutline(t *testing.T, input string) Outline {
	g, err := ParseString(input)
	require.NoError(t, err)
	return g.Outline()
}

func TestParseSingleTerminal(t *testing.T) {
	assert.Equal(t, Outline{
		Entry: "PRODUCER",
		Producers: []ProducerOutline{
			{Name: "PRODUCER", Rules: []string{"'x'"}},
		},
	}, parseOutline(t, "PRODUCER:'x'"))
}

func TestParseDeterminism(t *testing.T) {
	input := "A:'0','1'\nB: A A , 'z'\nPRODUCER: B\n"
	assert.Equal(t, parseOutline(t, input), parseOutline(t, input))
}

func TestRedefinitionAppends(t *testing.T) {
	assert.Equal(t, Outline{
		Entry: "PRODUCER",
		Producers: []ProducerOutline{
			{Name: "A", Rules: []string{"'0'", "'1'"}},
			{Name: "PRODUCER", Rules: []string{"A"}},
		},
	}, parseOutline(t, "A:'0'\nA:'1'\nPRODUCER: A\n"))
}

func TestConcatenationAndAlternation(t *testing.T) {
	// spaces concatenate within a rule, commas start a new alternative
	assert.Equal(t, Outline{
		Entry: "PRODUCER",
		Producers: []ProducerOutline{
			{Name: "A", Rules: []string{"X Y", "Z"}},
		},
	}, parseOutline(t, "A: X Y , Z"))
}

func TestQuoteAdjacency(t *testing.T) {
	// bytes directly after a closing quote start a separate identifier
	// token, and a quote directly after identifier bytes starts a separate
	// terminal token
	assert.Equal(t, []string{"'x' abc 'y'"}, parseOutline(t, "PRODUCER:'x'abc'y'").Producers[0].Rules)
	assert.Equal(t, []string{"ab 'x'"}, parseOutline(t, "PRODUCER: ab'x'").Producers[0].Rules)
}

func TestOppositeQuotesAreLiteral(t *testing.T) {
	assert.Equal(t, []string{`'it"s' 'it's'`}, parseOutline(t, `PRODUCER:'it"s' "it's"`).Producers[0].Rules)
}

func TestEmptyTerminal(t *testing.T) {
	assert.Equal(t, []string{"'' 'x'"}, parseOutline(t, "PRODUCER:'' 'x'").Producers[0].Rules)
}

func TestCommentsAndBlankLines(t *testing.T) {
	assert.Equal(t, Outline{
		Entry: "PRODUCER",
		Producers: []ProducerOutline{
			{Name: "NUM", Rules: []string{"'0'", "'1'"}},
			{Name: "PRODUCER", Rules: []string{"NUM"}},
		},
	}, parseOutline(t, "# leading comment\nNUM:'0','1'\n\nPRODUCER: NUM\n"))
}

func TestCarriageReturnsAndTabsIgnored(t *testing.T) {
	assert.Equal(t,
		parseOutline(t, "PRODUCER:'ab' X\nX:'y'\n"),
		parseOutline(t, "PRO\tDUCER\t:\r'a\tb' X\r\nX:'y'\r\n"))
}

func TestNameSpacePadding(t *testing.T) {
	assert.Equal(t, "A", parseOutline(t, "   A   :'x'").Producers[0].Name)
}

func TestMissingNewlineAtEOF(t *testing.T) {
	assert.Equal(t, []string{"'x'", "'y'"}, parseOutline(t, "PRODUCER:'x','y'").Producers[0].Rules)
}

func TestParseErrors(t *testing.T) {
	test := func(input, expectedMessage string, expectedLine int, expectedLineText string) func(*testing.T) {
		return func(t *testing.T) {
			g, err := ParseString(input)
			assert.Nil(t, g)
			require.Error(t, err)
			perr, ok := err.(Error)
			require.True(t, ok, "expected rulegram.Error, got %T", err)
			assert.Equal(t, expectedMessage, perr.Message)
			assert.Equal(t, expectedLine, perr.Line)
			assert.Equal(t, expectedLineText, perr.LineText)
		}
	}

	t.Run("", test("A B: 'x'", "space in producer name", 1, "A B: 'x'"))
	t.Run("", test("ABC", "missing ':' after producer name", 1, "ABC"))
	t.Run("", test("ABC\nA:'x'", "missing ':' after producer name", 1, "ABC"))
	t.Run("", test("A:", "rule line has no elements", 1, "A:"))
	t.Run("", test("A:   ", "rule line has no elements", 1, "A:   "))
	t.Run("", test(":'x'", "empty producer name", 1, ":'x'"))
	t.Run("", test("A: ,'x'", "empty alternative", 1, "A: ,'x'"))
	t.Run("", test("A: 'x',,'y'", "empty alternative", 1, "A: 'x',,'y'"))
	t.Run("", test("A: 'x',", "empty alternative", 1, "A: 'x',"))
	t.Run("", test("A: 'x", "unterminated quoted literal", 1, "A: 'x"))
	t.Run("", test("GOOD:'x'\nBAD", "missing ':' after producer name", 2, "BAD"))
	t.Run("", test("GOOD:'x'\n\n# c\nA: \"y\r", "unterminated quoted literal", 4, "A: \"y"))
}

func TestParseStopsAtFirstError(t *testing.T) {
	g, err := ParseString("BAD\nALSO BAD:'x'")
	assert.Nil(t, g)
	require.Error(t, err)
	assert.Equal(t, 1, err.(Error).Line)
}
