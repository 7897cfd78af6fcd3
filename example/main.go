package main

import (
	"fmt"

	"github.com/metailurini/intset"
)

func main() {
	s := intset.New()

	values := []int32{3, 6, 9, 2, 11, 1, 4}
	fmt.Println("inserting:", values)
	for _, v := range values {
		s.Insert(v)
	}
	fmt.Println("size:", s.Len())

	for _, v := range []int32{4, 5, 11, 0} {
		fmt.Printf("contains %d: %t\n", v, s.Contains(v))
	}
}
