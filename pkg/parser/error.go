package parser

import (
	"fmt"

	"github.com/nanocc/nanocc/pkg/token"
)

// SyntaxError is the fatal result of a parse. Parsing stops at the
// first malformed construct; there is no recovery and no partial tree.
type SyntaxError struct {
	Tok token.Token
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", token.Describe(e.Tok), e.Msg)
}

// parseBreakout carries the fatal error up through the recursive
// descent; Parse recovers it at the top. Any other panic is a parser
// bug and is re-raised.
type parseBreakout struct {
	err error
}

// bad aborts the parse, reporting the offending token.
func (p *parser) bad(tok token.Token, format string, args ...interface{}) {
	panic(parseBreakout{&SyntaxError{Tok: tok, Msg: fmt.Sprintf(format, args...)}})
}

// fail aborts the parse with a description not tied to one token.
func (p *parser) fail(format string, args ...interface{}) {
	panic(parseBreakout{fmt.Errorf(format, args...)})
}
