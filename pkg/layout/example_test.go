package layout_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/fabricgen/pkg/layout"
)

func ExampleDescribe() {
	g, err := layout.Layout(7, 7)
	if err != nil {
		panic(err)
	}
	for _, line := range strings.Split(layout.Describe(g), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	// Output:
	// Device Architecture:
	//         IOB     IOB
	//     COR QCB QSB QCB COR
	// IOB QCB CLB QCB CLB QCB IOB
	//     QSB QCB QSB QCB QSB
	// IOB QCB CLB QCB CLB QCB IOB
	//     COR QCB QSB QCB COR
	//         IOB     IOB
}

func ExampleClassify() {
	fmt.Println(layout.Classify(1, 1, 7, 7))
	fmt.Println(layout.Classify(3, 3, 7, 7))
	fmt.Println(layout.Classify(2, 2, 7, 7))
	fmt.Println(layout.Classify(2, 3, 7, 7))
	fmt.Println(layout.Classify(0, 4, 7, 7))
	// Output:
	// COR
	// QSB
	// CLB
	// QCB
	// IOB
}
