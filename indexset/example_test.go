package indexset_test

import (
	"fmt"

	"github.com/hasbyte1/go-clique/indexset"
)

func ExampleNew() {
	s := indexset.New(5, 1, 3, 1)
	fmt.Println(s, s.Len())
	// Output: [1, 3, 5] 3
}

func ExampleIndexSet_Runs() {
	for _, r := range indexset.New(1, 2, 5, 6, 7, 9).Runs() {
		fmt.Println(r)
	}
	// Output:
	// 1-2
	// 5-7
	// 9
}

func ExampleIndexSet_Gaps() {
	fmt.Println(indexset.New(1, 5, 6, 7, 12).Gaps())
	// Output: [2, 3, 4, 8, 9, 10, 11]
}
