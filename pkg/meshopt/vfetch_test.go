package meshopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshopt/internal/meshgen"
)

func TestOptimizeVertexFetchRemap(t *testing.T) {
	indices := []uint32{2, 0, 1, 2, 1, 3}
	remap := make([]uint32, 5)

	unique, err := OptimizeVertexFetchRemap(remap, indices, 5)
	require.NoError(t, err)
	assert.Equal(t, 4, unique)
	assert.Equal(t, []uint32{1, 2, 0, 3, Unused}, remap)

	require.NoError(t, RemapIndexBuffer(indices, indices, remap))
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, indices)
}

func TestRemapVertexBuffer(t *testing.T) {
	vertices := []string{"a", "b", "c", "d", "unused"}
	remap := []uint32{1, 2, 0, 3, Unused}

	out := make([]string, 4)
	require.NoError(t, RemapVertexBuffer(out, vertices, remap))
	assert.Equal(t, []string{"c", "a", "b", "d"}, out)

	// In place keeps the trailing unused slot as it was.
	require.NoError(t, RemapVertexBuffer(vertices, vertices, remap))
	assert.Equal(t, []string{"c", "a", "b", "d", "unused"}, vertices)
}

func TestVertexFetchPipeline(t *testing.T) {
	mesh := meshgen.Grid(8)
	meshgen.Shuffle(mesh.Indices, 21)

	indices, err := VertexCache(mesh.Indices, mesh.VertexCount())
	require.NoError(t, err)

	remap := make([]uint32, mesh.VertexCount())
	unique, err := OptimizeVertexFetchRemap(remap, indices, mesh.VertexCount())
	require.NoError(t, err)
	assert.Equal(t, mesh.VertexCount(), unique)

	remapped := make([]uint32, len(indices))
	require.NoError(t, RemapIndexBuffer(remapped, indices, remap))

	vertices := make([][3]float32, unique)
	positions := make([][3]float32, mesh.VertexCount())
	for i, v := range mesh.Vertices {
		positions[i] = v.Position
	}
	require.NoError(t, RemapVertexBuffer(vertices, positions, remap))

	// Same triangles by position, vertices now numbered in first-use order.
	for i := range indices {
		assert.Equal(t, positions[indices[i]], vertices[remapped[i]])
	}

	highest := uint32(0)
	for _, idx := range remapped {
		assert.LessOrEqual(t, idx, highest+1)
		highest = max(highest, idx)
	}
}

func TestVertexFetchErrors(t *testing.T) {
	_, err := OptimizeVertexFetchRemap(make([]uint32, 2), []uint32{0, 1, 2}, 3)
	assert.ErrorIs(t, err, ErrRemapSize)

	_, err = OptimizeVertexFetchRemap(make([]uint32, 3), []uint32{0, 1, 3}, 3)
	assert.ErrorIs(t, err, ErrIndexRange)

	_, err = OptimizeVertexFetchRemap(make([]uint32, 3), []uint32{0, 1}, 3)
	assert.ErrorIs(t, err, ErrIndexCount)

	err = RemapIndexBuffer(make([]uint32, 3), []uint32{0, 1, 2}, []uint32{0, Unused, 1})
	assert.ErrorIs(t, err, ErrIndexRange)

	err = RemapIndexBuffer(make([]uint32, 2), []uint32{0, 1, 2}, []uint32{0, 1, 2})
	assert.ErrorIs(t, err, ErrDestinationSize)

	err = RemapVertexBuffer(make([]int, 1), []int{1, 2}, []uint32{0, 1})
	assert.ErrorIs(t, err, ErrDestinationSize)

	err = RemapVertexBuffer(make([]int, 2), []int{1, 2, 3}, []uint32{0, 1})
	assert.ErrorIs(t, err, ErrVertexBufferSize)
}
