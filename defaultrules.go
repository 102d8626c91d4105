package crunchx

import (
	"fmt"
	"os"
)

// DefaultRulesFile is the rules file used when none is given on the
// command line.
const DefaultRulesFile = "crunchx.rul"

// DefaultRules is the built-in rule text: every 8-character string over
// [a-zA-Z0-9].
const DefaultRules = `# crunchx default rules
#
# Every line defines one producer: a name, a ':', and comma-separated
# alternatives. Quoted elements are emitted literally; bare elements refer
# to other producers. Enumeration starts from PRODUCER.

NUM:'0','1','2','3','4','5','6','7','8','9'
LITER_LOWER:'a','b','c','d','e','f','g','h','i','j','k','l','m','n','o','p','q','r','s','t','u','v','w','x','y','z'
LITER_UPPER:'A','B','C','D','E','F','G','H','I','J','K','L','M','N','O','P','Q','R','S','T','U','V','W','X','Y','Z'
LITER:LITER_LOWER,LITER_UPPER
WORD:LITER,NUM
PRODUCER:WORD WORD WORD WORD WORD WORD WORD WORD
`

// WriteDefaultRules writes the built-in rule text to path, replacing any
// existing file.
func WriteDefaultRules(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return Error{Kind: CannotOpenFile, Message: fmt.Sprintf("cannot open rules file %s for writing: %s", path, err)}
	}
	if _, err := f.Write([]byte(DefaultRules)); err != nil {
		f.Close()
		return Error{Kind: WriteFileError, Message: fmt.Sprintf("error writing rules file %s: %s", path, err)}
	}
	if err := f.Close(); err != nil {
		return Error{Kind: WriteFileError, Message: fmt.Sprintf("error writing rules file %s: %s", path, err)}
	}
	return nil
}
