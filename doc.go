/*
Package ctnr is a small collection of exercises around generic containers
and iterators.

Package structure is as follows:

■ easyfind: Package easyfind implements a generic linear search over slices,
iterators and range-over-func sequences.

■ span: Package span implements a bounded collection of integers which reports
the shortest and longest distance between any two of its elements.

■ mutant: Package mutant implements a stack which, unlike a plain stack, may be
iterated in storage order.

■ crepl: An interactive sandbox to play with all of the above.

The base package contains the error kinds and the iterator vocabulary which are
used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ctnr
