package meshopt_test

import (
	"fmt"

	"github.com/Faultbox/meshopt/pkg/meshopt"
)

func ExampleOptimizeVertexCache() {
	// Two triangles sharing the 0-2 edge, followed by one unrelated triangle and
	// one more sharing the 2-3 edge.
	indices := []uint32{0, 1, 2, 4, 5, 6, 0, 2, 3, 3, 2, 7}

	if err := meshopt.OptimizeVertexCache(indices, indices, 8); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(indices)
	// Output: [0 1 2 0 2 3 3 2 7 4 5 6]
}

func ExampleAnalyzeVertexCache() {
	indices := []uint32{0, 1, 2, 0, 2, 3}

	stats, err := meshopt.AnalyzeVertexCache(indices, 4, 16, 0, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("transformed=%d acmr=%.2f atvr=%.2f\n", stats.VerticesTransformed, stats.ACMR, stats.ATVR)
	// Output: transformed=4 acmr=2.00 atvr=1.00
}

func ExampleOptimizeVertexFetchRemap() {
	indices := []uint32{3, 1, 2, 2, 1, 0}
	remap := make([]uint32, 5)

	unique, err := meshopt.OptimizeVertexFetchRemap(remap, indices, 5)
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = meshopt.RemapIndexBuffer(indices, indices, remap)

	fmt.Println(unique, indices)
	// Output: 4 [0 1 2 2 1 3]
}
