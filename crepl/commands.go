package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/ctnr"
	"github.com/npillmayer/ctnr/easyfind"
	"github.com/npillmayer/ctnr/mutant"
	"github.com/npillmayer/ctnr/scanner"
	"github.com/npillmayer/ctnr/span"
)

// Intp is our interpreter object. It holds the containers commands operate on.
type Intp struct {
	capacity uint
	numbers  *span.Numbers[int]
	stack    *mutant.Stack[int]
}

// NewIntp creates an interpreter with empty containers. The span collection
// will have room for capacity numbers.
func NewIntp(capacity uint) *Intp {
	intp := &Intp{capacity: capacity}
	intp.reset()
	return intp
}

func (intp *Intp) reset() {
	intp.numbers = span.New[int](intp.capacity)
	intp.stack = mutant.New[int]()
}

// A command has a minimum and maximum count of integer arguments (max < 0
// meaning unlimited) and produces a line of output.
type command struct {
	min, max int
	args     string
	help     string
	run      func(intp *Intp, args []int) (string, error)
}

var commands = map[string]command{
	"add": {1, -1, "N…", "add numbers to the span collection (all or nothing)",
		func(intp *Intp, args []int) (string, error) {
			if err := intp.numbers.AddRange(args...); err != nil {
				return "", err
			}
			return fmt.Sprintf("holding %d of %d numbers", intp.numbers.Len(), intp.numbers.Cap()), nil
		}},
	"shortest": {0, 0, "", "shortest span between two numbers",
		func(intp *Intp, args []int) (string, error) {
			return spanResult(intp.numbers.ShortestSpan())
		}},
	"longest": {0, 0, "", "longest span between two numbers",
		func(intp *Intp, args []int) (string, error) {
			return spanResult(intp.numbers.LongestSpan())
		}},
	"numbers": {0, 0, "", "list the span collection",
		func(intp *Intp, args []int) (string, error) {
			return intp.numbers.String(), nil
		}},
	"push": {1, -1, "N…", "push numbers onto the stack",
		func(intp *Intp, args []int) (string, error) {
			for _, n := range args {
				intp.stack.Push(n)
			}
			return fmt.Sprintf("stack size %d", intp.stack.Size()), nil
		}},
	"pop": {0, 0, "", "pop the top of stack",
		func(intp *Intp, args []int) (string, error) {
			v, err := intp.stack.Pop()
			return strconv.Itoa(v), err
		}},
	"top": {0, 0, "", "show the top of stack",
		func(intp *Intp, args []int) (string, error) {
			v, err := intp.stack.Top()
			return strconv.Itoa(v), err
		}},
	"size": {0, 0, "", "show the stack size",
		func(intp *Intp, args []int) (string, error) {
			return strconv.Itoa(intp.stack.Size()), nil
		}},
	"stack": {0, 0, "", "iterate the stack, oldest first",
		func(intp *Intp, args []int) (string, error) {
			var b strings.Builder
			it := intp.stack.Iterator()
			for it.Next() {
				fmt.Fprintf(&b, "[%d]=%d ", it.Index(), it.Value())
			}
			return strings.TrimSpace(b.String()), nil
		}},
	"drain": {0, 0, "", "copy the stack to a plain stack and pop it empty",
		func(intp *Intp, args []int) (string, error) {
			plain := intp.stack.Stack()
			values := make([]string, 0, plain.Size())
			for !plain.Empty() {
				v, _ := plain.Pop()
				values = append(values, strconv.Itoa(v.(int)))
			}
			return strings.Join(values, " "), nil
		}},
	"find": {1, 1, "N", "search a number in both containers",
		func(intp *Intp, args []int) (string, error) {
			n := args[0]
			p1, err1 := easyfind.Find(intp.numbers.Values(), n)
			p2, err2 := easyfind.In[int](intp.stack.Iterator(), n)
			if err1 != nil && err2 != nil {
				return "", err1
			}
			return fmt.Sprintf("numbers: %s, stack: %s", position(p1, err1), position(p2, err2)), nil
		}},
	"reset": {0, 0, "", "start over with empty containers",
		func(intp *Intp, args []int) (string, error) {
			intp.reset()
			return "containers are empty", nil
		}},
}

func spanResult(s ctnr.Span[int], err error) (string, error) {
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %v", s.Len(), s), nil
}

func position(pos int, err error) string {
	if err != nil {
		return "not found"
	}
	return "position " + strconv.Itoa(pos)
}

// Exec executes a single command line. It returns the output of the command
// and a flag signalling the user wants to quit.
func (intp *Intp) Exec(line string) (string, bool, error) {
	name, args, err := parseCommand(line)
	if err != nil || name == "" {
		return "", false, err
	}
	tracer().Debugf("command %q, args = %v", name, args)
	switch name {
	case "quit", "exit":
		return "", true, nil
	case "help":
		return usage(), false, nil
	}
	cmd, ok := commands[name]
	if !ok {
		return "", false, fmt.Errorf("unknown command %q, try 'help'", name)
	}
	if len(args) < cmd.min || (cmd.max >= 0 && len(args) > cmd.max) {
		return "", false, fmt.Errorf("usage: %s %s", name, cmd.args)
	}
	out, err := cmd.run(intp, args)
	return out, false, err
}

// parseCommand splits a command line into a lower-case command name and
// integer arguments. Empty lines and comment lines yield an empty name.
func parseCommand(line string) (string, []int, error) {
	sc, err := scanner.CommandScanner(line)
	if err != nil {
		return "", nil, err
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	tok := sc.NextToken()
	if tok.TokType() == scanner.EOF {
		return "", nil, scanErr
	}
	if tok.TokType() != scanner.Ident {
		return "", nil, fmt.Errorf("expected command, have %q at %v", tok.Lexeme(), tok.Span())
	}
	name := strings.ToLower(tok.Lexeme())
	var args []int
	for tok = sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
		if tok.TokType() != scanner.Int {
			return "", nil, fmt.Errorf("expected number, have %q at %v", tok.Lexeme(), tok.Span())
		}
		args = append(args, int(tok.Value()))
	}
	if scanErr != nil {
		return "", nil, errors.Join(errors.New("cannot read command line"), scanErr)
	}
	return name, args, nil
}

func usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(&b, "%-16s %s\n", name+" "+cmd.args, cmd.help)
	}
	fmt.Fprintf(&b, "%-16s %s", "quit", "leave C.REPL")
	return b.String()
}
