/*
Command msdemo pushes some numbers onto a mutant stack, iterates over them
oldest first, and then pops them from a plain stack copy, newest first.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"

	"github.com/npillmayer/ctnr/mutant"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

func main() {
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracing.Select("ctnr.mutant").SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	var mstack mutant.Stack[int]
	mstack.Push(5)
	mstack.Push(17)
	top, _ := mstack.Top()
	pterm.Println(top) // 17
	mstack.Pop()
	pterm.Println(mstack.Size()) // 1
	mstack.Push(3)
	mstack.Push(5)
	mstack.Push(737)
	mstack.Push(0)
	it := mstack.Iterator()
	it.Next()
	it.Next()
	it.Prev()
	pterm.Println("==========================")
	for ok := true; ok; ok = it.Next() {
		pterm.Println(it.Value()) // 5 3 5 737 0
	}
	pterm.Println("==========================")
	s := mstack.Stack()
	for !s.Empty() {
		v, _ := s.Pop()
		pterm.Println(v) // 0 737 5 3 5
	}
}
