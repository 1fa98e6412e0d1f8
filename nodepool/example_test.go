package nodepool_test

import (
	"fmt"

	"github.com/katalvlaran/spatialpart/nodepool"
)

func ExamplePool_Add() {
	p := nodepool.New[string]()
	a := p.Add("first")
	b := p.Add("second")
	p.Remove(a)
	c := p.Add("third") // reuses a's freed offset
	fmt.Println(a == c, p.At(b), p.Size())
	// Output: true second 2
}
