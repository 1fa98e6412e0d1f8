package threestage_test

import "fmt"

func ExampleIndex_Add() {
	ix := newTestIndex()
	ix.Add(1, box(0, 0, 0, 1, 1, 1), 1)
	ix.Rebuild()

	stats := ix.Stats()
	fmt.Println(stats.State, stats.ElementsInOptimised)
	// Output: Steady 1
}
