package rulegram

const (
	SpaceToken TokenType = iota + 1
	NewlineToken

	// CommentToken covers a whole comment line: a '#' seen before any name
	// character, up to (not including) the newline.
	CommentToken

	// NameSepToken is the ':' that ends the producer name. Any later ':'
	// on the same line is an ordinary identifier byte.
	NameSepToken
	CommaToken

	IdentifierToken
	QuotedLiteralToken

	UnterminatedLiteralErrorToken

	EOFToken
)

func (tt TokenType) GoString() string {
	return tokenToDescription[tt]
}

func (tt TokenType) String() string {
	return tokenToDescription[tt]
}

func init() {
	// make sure we panic if a description isn't declared
	for tt := TokenType(1); tt <= EOFToken; tt++ {
		if tokenToDescription[tt] == "" {
			panic("you have not updated tokenToDescription")
		}
	}
}

var tokenToDescription = map[TokenType]string{
	SpaceToken:   "SpaceToken",
	NewlineToken: "NewlineToken",

	CommentToken: "CommentToken",

	NameSepToken: "NameSepToken",
	CommaToken:   "CommaToken",

	IdentifierToken:    "IdentifierToken",
	QuotedLiteralToken: "QuotedLiteralToken",

	UnterminatedLiteralErrorToken: "UnterminatedLiteralErrorToken",

	EOFToken: "EOFToken",
}
