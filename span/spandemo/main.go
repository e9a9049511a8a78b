/*
Command spandemo fills a span collection of capacity 5 and prints the shortest
and the longest span. Further numbers may be given as arguments; they will
exceed the capacity and make the demo report an error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"strconv"

	"github.com/npillmayer/ctnr/span"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

func main() {
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracing.Select("ctnr.span").SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	sp := span.New[int](5)
	numbers := []int{6, 3, 17, 9, 11}
	for _, arg := range flag.Args() {
		n, err := strconv.Atoi(arg)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		numbers = append(numbers, n)
	}
	for _, n := range numbers {
		if err := sp.Add(n); err != nil {
			pterm.Error.Println(err)
			return
		}
	}
	shortest, err := sp.Shortest()
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	longest, _ := sp.Longest()
	pterm.Println(shortest)
	pterm.Println(longest)
}
