/*
Command efdemo searches values in a vector-like array list, a deque filled from
the front and a singly linked list, each holding the numbers 0…999, and prints
the values found.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/npillmayer/ctnr"
	"github.com/npillmayer/ctnr/easyfind"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

func main() {
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracing.Select("ctnr.find").SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	vec := arraylist.New()
	deq := doublylinkedlist.New()
	lst := singlylinkedlist.New()
	for i := 0; i < 1000; i++ {
		vec.Add(i)
		deq.Prepend(i)
		lst.Add(i)
	}
	vit, dit, lit := vec.Iterator(), deq.Iterator(), lst.Iterator()
	search(vec, "vector", ctnr.Wrap[int](&vit), 999)
	search(deq, "deque", ctnr.Wrap[int](&dit), 888)
	search(lst, "list", ctnr.Wrap[int](&lit), 777)
	search(lst, "list", ctnr.Wrap[int](&lit), 1000)
}

type getter interface {
	Get(index int) (interface{}, bool)
}

func search(c getter, name string, it ctnr.Iterator[int], v int) {
	pos, err := easyfind.In(it, v)
	if err != nil {
		pterm.Error.Printfln("%s: %v", name, err)
		return
	}
	found, _ := c.Get(pos)
	pterm.Println(found)
}
