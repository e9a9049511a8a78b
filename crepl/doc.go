/*
Package crepl/main provides an interactive command line tool (C.REPL) to play
with the containers of this module. C.REPL holds a bounded span collection and
a mutant stack, and offers commands to fill, query and iterate them.

    crepl> add 6 3 17 9 11
    crepl> shortest
    crepl> push 5 17
    crepl> stack

Type "help" for a list of commands, quit with "quit" or <ctrl>D.

Configuration is read from an optional file crepl.yaml in the current
directory (or from the file given with flag -config) and from environment
variables CREPL_CAPACITY, CREPL_PROMPT, CREPL_TRACE and CREPL_HISTORY.
Command line flags take precedence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctnr.repl'
func tracer() tracing.Trace {
	return tracing.Select("ctnr.repl")
}

// traceKeys lists the trace keys of all packages driven by C.REPL.
var traceKeys = []string{"ctnr.repl", "ctnr.find", "ctnr.span", "ctnr.mutant", "ctnr.scanner"}
