package meshopt

import (
	"fmt"
	"slices"
)

// Unused marks a vertex that no index references in a remap table.
const Unused = ^uint32(0)

// OptimizeVertexFetchRemap fills remap (len == vertexCount) with new vertex numbers
// assigned in order of first use by indices and returns the number of referenced
// vertices. Unreferenced vertices get Unused. Run it after the triangle order is final
// so vertex memory is read roughly sequentially.
func OptimizeVertexFetchRemap(remap []uint32, indices []uint32, vertexCount int) (int, error) {
	if len(indices)%3 != 0 {
		return 0, fmt.Errorf("%w: got %d", ErrIndexCount, len(indices))
	}
	if vertexCount < 0 {
		return 0, fmt.Errorf("%w: %d", ErrVertexCount, vertexCount)
	}
	if len(remap) != vertexCount {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrRemapSize, len(remap), vertexCount)
	}
	if err := validateIndices(indices, vertexCount); err != nil {
		return 0, err
	}

	for i := range remap {
		remap[i] = Unused
	}

	next := uint32(0)
	for _, idx := range indices {
		if remap[idx] == Unused {
			remap[idx] = next
			next++
		}
	}

	return int(next), nil
}

// RemapIndexBuffer writes remap[indices[i]] to destination[i]. destination may alias
// indices.
func RemapIndexBuffer(destination, indices, remap []uint32) error {
	if len(destination) < len(indices) {
		return fmt.Errorf("%w: have %d, need %d", ErrDestinationSize, len(destination), len(indices))
	}

	for i, idx := range indices {
		if int(idx) >= len(remap) || remap[idx] == Unused {
			return &IndexError{Position: i, Index: idx, VertexCount: len(remap)}
		}
	}

	for i, idx := range indices {
		destination[i] = remap[idx]
	}
	return nil
}

// RemapVertexBuffer moves vertices[i] to destination[remap[i]], dropping vertices mapped
// to Unused. destination must hold every remapped position and may alias vertices.
func RemapVertexBuffer[T any](destination, vertices []T, remap []uint32) error {
	if len(vertices) != len(remap) {
		return fmt.Errorf("%w: %d vertices, %d remap entries", ErrVertexBufferSize, len(vertices), len(remap))
	}

	for _, r := range remap {
		if r != Unused && int(r) >= len(destination) {
			return fmt.Errorf("%w: remap target %d, have %d", ErrDestinationSize, r, len(destination))
		}
	}

	source := slices.Clone(vertices)
	for i, r := range remap {
		if r != Unused {
			destination[r] = source[i]
		}
	}
	return nil
}
