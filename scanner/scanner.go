/*
Package scanner splits command lines of the interactive sandbox into tokens.

The scanner is an adapter for lexmachine (https://github.com/timtadh/lexmachine).
It knows about two kinds of tokens only: identifiers (command words) and signed
decimal integers (arguments). White space and comments, starting with '#' and
extending to the end of the line, are skipped.

    sc, _ := scanner.CommandScanner("push 5 -17   # comment")
    for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
        …   // Ident "push", Int 5, Int -17
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/ctnr"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctnr.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("ctnr.scanner")
}

// TokType is a category type for a Token.
type TokType int

// Token types are replicated from text/scanner for practical reasons.
const (
	EOF   TokType = scanner.EOF
	Ident TokType = scanner.Ident
	Int   TokType = scanner.Int
)

func (t TokType) String() string {
	return scanner.TokenString(rune(t))
}

// Token is a very unsophisticated token type. Tokens of type Int carry their
// numeric value.
type Token struct {
	kind   TokType
	lexeme string
	val    int64
	span   ctnr.Span[uint64]
}

// TokType returns the category of a token.
func (t Token) TokType() TokType {
	return t.kind
}

// Lexeme returns the token text as it appeared in the input.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Value returns the numeric value of an Int token, 0 for other tokens.
func (t Token) Value() int64 {
	return t.val
}

// Span returns the byte positions of the token in the input line, from the
// start position up to the position just behind the end.
func (t Token) Span() ctnr.Span[uint64] {
	return t.span
}

func (t Token) String() string {
	return fmt.Sprintf("<%s %q %v>", t.kind, t.lexeme, t.span)
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}
