package meshopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangleCounts counts triangles as ordered triples.
func triangleCounts(indices []uint32) map[[3]uint32]int {
	counts := make(map[[3]uint32]int, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		counts[[3]uint32{indices[i], indices[i+1], indices[i+2]}]++
	}
	return counts
}

// assertPermutation checks that out holds exactly the triangles of in.
func assertPermutation(t *testing.T, in, out []uint32) {
	t.Helper()
	require.Len(t, out, len(in))
	assert.Equal(t, triangleCounts(in), triangleCounts(out))
}

// testMeshes are small inputs shared by the reorderer tests.
var testMeshes = []struct {
	name        string
	indices     []uint32
	vertexCount int
}{
	{"single triangle", []uint32{0, 1, 2}, 3},
	{"quad", []uint32{0, 1, 2, 0, 2, 3}, 4},
	{"disjoint", []uint32{0, 1, 2, 3, 4, 5, 0, 2, 6}, 7},
	{"fan", []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 0, 5, 6, 0, 6, 1}, 7},
	{"degenerate corners", []uint32{0, 0, 1, 1, 2, 2, 0, 1, 2}, 3},
	{"duplicate triangles", []uint32{0, 1, 2, 0, 1, 2, 2, 1, 3}, 4},
	{"unused vertices", []uint32{5, 6, 7, 7, 6, 8}, 12},
}
