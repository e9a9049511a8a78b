/*
Package span implements a bounded collection of integers which is able to report
the shortest and the longest distance between any two of its elements.

The capacity of a collection is declared at construction time and enforced on
every insertion. Distances are computed by brute force: the elements are sorted
and every pair of them is inspected, which is quadratic in the number of
elements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package span

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctnr.span'.
func tracer() tracing.Trace {
	return tracing.Select("ctnr.span")
}
