package crunchx

import "errors"

// Kind classifies everything that can go wrong, from the command line down
// to enumeration. Each kind doubles as the process exit code.
type Kind int

const (
	CannotOpenFile Kind = iota + 1
	FileTooLarge
	ReadFileError
	WriteFileError

	// InvalidRules is an attempt to operate on a session with no loaded
	// grammar.
	InvalidRules

	InvalidGrammar
	NoSuchProducer
	NonProductive

	InvalidParam
	Misc
)

func (k Kind) String() string {
	return kindToDescription[k]
}

// ExitCode returns the process exit code for this kind; always non-zero.
func (k Kind) ExitCode() int {
	return int(k)
}

func init() {
	// make sure we panic if a description isn't declared
	for k := CannotOpenFile; k <= Misc; k++ {
		if kindToDescription[k] == "" {
			panic("you have not updated kindToDescription")
		}
	}
}

var kindToDescription = map[Kind]string{
	CannotOpenFile: "CannotOpenFile",
	FileTooLarge:   "FileTooLarge",
	ReadFileError:  "ReadFileError",
	WriteFileError: "WriteFileError",
	InvalidRules:   "InvalidRules",
	InvalidGrammar: "InvalidGrammar",
	NoSuchProducer: "NoSuchProducer",
	NonProductive:  "NonProductive",
	InvalidParam:   "InvalidParam",
	Misc:           "Misc",
}

// Error is the user-facing error of this package: a kind plus a
// human-readable message. Lower-layer errors (rulegram parse and analysis
// diagnostics, I/O failures) are mapped into one of these before they leave
// the Session.
type Error struct {
	Kind    Kind
	Message string
}

func (e Error) Error() string {
	return e.Message
}

// ExitCode maps any error to a process exit code: the kind's code for
// taxonomy errors, 1 otherwise. nil maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e Error
	if errors.As(err, &e) {
		return e.Kind.ExitCode()
	}
	return 1
}
