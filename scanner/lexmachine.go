package scanner

import (
	"strconv"
	"sync"

	"github.com/npillmayer/ctnr"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. init is called to add the
// token patterns to the lexer.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer)) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

var commandLexer *LMAdapter
var commandLexerErr error
var initOnce sync.Once // monitors one-time initialization

// Lexer returns the lexer for sandbox command lines. The DFA is compiled
// on first use.
func Lexer() (*LMAdapter, error) {
	initOnce.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`#[^\n]*\n?`), Skip) // skip comments
			lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*`), MakeToken(Ident))
			lexer.Add([]byte(`[\+\-]?[0-9]+`), MakeToken(Int))
			lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
		}
		commandLexer, commandLexerErr = NewLMAdapter(init)
	})
	return commandLexer, commandLexerErr
}

// CommandScanner creates a scanner for a sandbox command line.
func CommandScanner(input string) (*LMScanner, error) {
	lm, err := Lexer()
	if err != nil {
		return nil, err
	}
	return lm.Scanner(input)
}

// Scanner creates a scanner for a given input.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken returns the next token of the input. Input the lexer cannot
// match is reported to the error handler and skipped. At the end of the input
// NextToken returns tokens of type EOF.
func (lms *LMScanner) NextToken() Token {
	for {
		tok, err, eof := lms.scanner.Next()
		for err != nil {
			lms.Error(err)
			if ui, is := err.(*machines.UnconsumedInput); is {
				lms.scanner.TC = ui.FailTC
			}
			tok, err, eof = lms.scanner.Next()
		}
		if eof {
			return Token{kind: EOF}
		}
		tracer().Debugf("tok is %T | %v", tok, tok)
		token := tok.(*lexmachine.Token)
		start := uint64(token.TC)
		t := Token{
			kind:   TokType(token.Type),
			lexeme: string(token.Lexeme),
			span:   ctnr.Span[uint64]{start, start + uint64(len(token.Lexeme))},
		}
		if t.kind == Int {
			n, err := strconv.ParseInt(t.lexeme, 10, 64)
			if err != nil {
				lms.Error(err)
				continue
			}
			t.val = n
		}
		return t
	}
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(typ TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}
