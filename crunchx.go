// Package crunchx generates every string derivable from a small
// context-free grammar, one per line, in a deterministic order. The rules
// format and the enumeration engine live in the rulegram package; this
// package owns loading, validation and the output loop.
package crunchx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vincentchina/crunchx/rulegram"
)

// MaxRulesSize is the largest rules text accepted, in bytes.
const MaxRulesSize = 2 << 20

// Session scopes one loaded grammar. Sessions are independent; multiple
// grammars can coexist in-process. A Session is not safe for concurrent
// use, but the grammar it holds is immutable once loaded, so a host may
// run several enumerations over it as long as each owns its own cursor.
type Session struct {
	// Logger, when set, receives progress logging. Nothing is logged
	// otherwise.
	Logger logrus.FieldLogger

	grammar *rulegram.Grammar
}

func NewSession() *Session {
	return &Session{}
}

// Loaded reports whether the session holds a validated grammar.
func (s *Session) Loaded() bool {
	return s.grammar != nil
}

// LoadFile reads, parses and validates the rules file at path.
func (s *Session) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return Error{Kind: CannotOpenFile, Message: fmt.Sprintf("cannot open rules file %s: %s", path, err)}
	}
	defer f.Close()
	return s.loadReader(path, f)
}

// LoadFS is LoadFile against an fs.FS.
func (s *Session) LoadFS(fsys fs.FS, path string) error {
	f, err := fsys.Open(path)
	if err != nil {
		return Error{Kind: CannotOpenFile, Message: fmt.Sprintf("cannot open rules file %s: %s", path, err)}
	}
	defer f.Close()
	return s.loadReader(path, f)
}

func (s *Session) loadReader(path string, r io.Reader) error {
	// Read one byte past the limit so oversize inputs are detected without
	// buffering them whole.
	buf, err := io.ReadAll(io.LimitReader(r, MaxRulesSize+1))
	if err != nil {
		return Error{Kind: ReadFileError, Message: fmt.Sprintf("error reading rules file %s: %s", path, err)}
	}
	if len(buf) > MaxRulesSize {
		return Error{Kind: FileTooLarge, Message: fmt.Sprintf("rules file %s exceeds %d bytes", path, MaxRulesSize)}
	}
	return s.LoadBytes(buf)
}

// LoadBytes parses and validates a rules text. On success the session's
// previous grammar, if any, is replaced; on failure it is left unchanged.
func (s *Session) LoadBytes(buf []byte) error {
	if len(buf) > MaxRulesSize {
		return Error{Kind: FileTooLarge, Message: fmt.Sprintf("rules text exceeds %d bytes", MaxRulesSize)}
	}

	g, err := rulegram.ParseString(string(buf))
	if err != nil {
		return Error{Kind: InvalidGrammar, Message: err.Error()}
	}
	if err := rulegram.Analyze(g); err != nil {
		return Error{Kind: analysisKind(err), Message: err.Error()}
	}

	s.grammar = g
	if s.Logger != nil {
		s.Logger.WithField("producers", g.Len()).Debug("rules loaded")
	}
	return nil
}

func analysisKind(err error) Kind {
	var (
		unknown       rulegram.UnknownProducerError
		nonProductive rulegram.NonProductiveError
		recursive     rulegram.RecursiveError
	)
	switch {
	case errors.As(err, &unknown):
		return NoSuchProducer
	case errors.As(err, &nonProductive), errors.As(err, &recursive):
		return NonProductive
	default:
		// missing entry producer and any future analyser diagnostics
		return Misc
	}
}

// Generate writes every string of the loaded grammar to w, one per line,
// in enumeration order.
func (s *Session) Generate(w io.Writer) error {
	if !s.Loaded() {
		return Error{Kind: InvalidRules, Message: "no rules loaded"}
	}

	cursor := rulegram.NewCursor(s.grammar)
	var buf bytes.Buffer
	count := 0
	for !cursor.Exhausted() {
		buf.Reset()
		cursor.Current(&buf)
		buf.WriteByte('\n')
		if _, err := w.Write(buf.Bytes()); err != nil {
			return Error{Kind: WriteFileError, Message: fmt.Sprintf("error writing output: %s", err)}
		}
		cursor.Advance()
		count++
	}

	if s.Logger != nil {
		s.Logger.WithField("strings", count).Debug("enumeration finished")
	}
	return nil
}

// Outline returns a marshal-friendly rendering of the loaded grammar.
func (s *Session) Outline() (rulegram.Outline, error) {
	if !s.Loaded() {
		return rulegram.Outline{}, Error{Kind: InvalidRules, Message: "no rules loaded"}
	}
	return s.grammar.Outline(), nil
}
