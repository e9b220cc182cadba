package meshopt

import (
	"errors"
	"fmt"
	"math"
)

// Precondition errors. Validation runs before anything is written to a destination.
var (
	ErrIndexCount       = errors.New("index count is not a multiple of 3")
	ErrIndexRange       = errors.New("vertex index out of range")
	ErrVertexCount      = errors.New("invalid vertex count")
	ErrCacheSize        = errors.New("cache size must be between 3 and 2^32-1")
	ErrWarpSize         = errors.New("warp size must be 0 or at least 3")
	ErrDestinationSize  = errors.New("destination buffer too small")
	ErrRemapSize        = errors.New("remap table does not match vertex count")
	ErrVertexBufferSize = errors.New("vertex buffer does not match remap table")
)

// IndexError reports the first index that references a vertex outside [0, VertexCount).
type IndexError struct {
	Position    int    // Offset into the index buffer
	Index       uint32 // Offending vertex index
	VertexCount int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d at position %d out of range [0, %d)", e.Index, e.Position, e.VertexCount)
}

// Unwrap lets errors.Is match ErrIndexRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexRange
}

// validateIndices checks that every index is below vertexCount.
func validateIndices(indices []uint32, vertexCount int) error {
	for i, idx := range indices {
		if uint64(idx) >= uint64(vertexCount) {
			return &IndexError{Position: i, Index: idx, VertexCount: vertexCount}
		}
	}
	return nil
}

// validCacheSize reports whether n fits the uint32 timestamp arithmetic of the FIFO
// simulations.
func validCacheSize(n int) bool {
	return n >= 3 && uint64(n) <= math.MaxUint32
}

// checkBuffers runs the shared precondition checks of the reorderers. It reports
// empty=true for inputs that are defined no-ops.
func checkBuffers(destination, indices []uint32, vertexCount int) (empty bool, err error) {
	if len(indices)%3 != 0 {
		return false, fmt.Errorf("%w: got %d", ErrIndexCount, len(indices))
	}
	if vertexCount < 0 {
		return false, fmt.Errorf("%w: %d", ErrVertexCount, vertexCount)
	}
	if len(indices) == 0 || vertexCount == 0 {
		return true, nil
	}
	if len(destination) < len(indices) {
		return false, fmt.Errorf("%w: have %d, need %d", ErrDestinationSize, len(destination), len(indices))
	}
	return false, validateIndices(indices, vertexCount)
}
