/*
Package mutant implements a stack which may be iterated.

A plain stack grants access to its top element only. Stack in this package
offers the usual push, pop and top operations, but in addition will let clients
iterate over all of its elements in storage order, i.e. from the bottom-most
(oldest) element up to the top-most (newest) one. It is a composition over a
doubly linked list of package github.com/emirpasic/gods, which serves as a
double-ended sequence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mutant

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctnr.mutant'.
func tracer() tracing.Trace {
	return tracing.Select("ctnr.mutant")
}
