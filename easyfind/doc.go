/*
Package easyfind implements a generic linear search.

Values may be searched in slices, in anything offering a ctnr.Iterator (which
includes the list types of github.com/emirpasic/gods, with the help of
ctnr.Wrap), and in range-over-func sequences. All of the search functions
report the position of the first match or an error wrapping ctnr.ErrNotFound.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package easyfind

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctnr.find'.
func tracer() tracing.Trace {
	return tracing.Select("ctnr.find")
}
