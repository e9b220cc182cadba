package meshopt

import (
	"fmt"
	"slices"
)

// OptimizeVertexCacheFifo reorders triangles for a strict FIFO vertex cache holding
// cacheSize vertices, 3 <= cacheSize <= math.MaxUint32. It fans out from one vertex at a
// time, emitting every pending triangle around it, then moves to a recently cached
// neighbour whose remaining fan still fits in the cache. Aliasing and empty-input rules match
// OptimizeVertexCache.
func OptimizeVertexCacheFifo(destination, indices []uint32, vertexCount int, cacheSize int) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: got %d", ErrIndexCount, len(indices))
	}
	if !validCacheSize(cacheSize) {
		return fmt.Errorf("%w: got %d", ErrCacheSize, cacheSize)
	}

	empty, err := checkBuffers(destination, indices, vertexCount)
	if err != nil || empty {
		return err
	}

	indices = slices.Clone(indices)
	faceCount := len(indices) / 3

	adj := buildAdjacency(indices, vertexCount)
	live := slices.Clone(adj.counts)
	emitted := make([]bool, faceCount)

	// Logical clock of the last cache insertion per vertex. A vertex is cached while
	// timestamp-cacheTimestamps[v] <= cacheSize.
	cacheTimestamps := make([]uint32, vertexCount)
	size := uint32(cacheSize)
	timestamp := size + 1

	// Every emitted triangle pushes its three vertices, so len(indices) is enough.
	deadEnd := make([]uint32, len(indices))
	deadEndTop := 0

	current, ok := uint32(0), true
	inputCursor := 1
	output := 0

	for ok {
		candidatesBegin := deadEndTop

		for _, tri := range adj.neighbours(current) {
			if emitted[tri] {
				continue
			}

			a, b, c := indices[tri*3+0], indices[tri*3+1], indices[tri*3+2]

			destination[output*3+0] = a
			destination[output*3+1] = b
			destination[output*3+2] = c
			output++

			deadEnd[deadEndTop+0] = a
			deadEnd[deadEndTop+1] = b
			deadEnd[deadEndTop+2] = c
			deadEndTop += 3

			live[a]--
			live[b]--
			live[c]--

			if timestamp-cacheTimestamps[a] > size {
				cacheTimestamps[a] = timestamp
				timestamp++
			}
			if timestamp-cacheTimestamps[b] > size {
				cacheTimestamps[b] = timestamp
				timestamp++
			}
			if timestamp-cacheTimestamps[c] > size {
				cacheTimestamps[c] = timestamp
				timestamp++
			}

			emitted[tri] = true
		}

		candidates := deadEnd[candidatesBegin:deadEndTop]

		current, ok = nextVertexNeighbour(candidates, live, cacheTimestamps, timestamp, size)
		if !ok {
			current, ok = nextVertexDeadEnd(deadEnd, &deadEndTop, &inputCursor, live)
		}
	}

	return nil
}

// VertexCacheFifo returns a copy of indices reordered by OptimizeVertexCacheFifo.
func VertexCacheFifo(indices []uint32, vertexCount int, cacheSize int) ([]uint32, error) {
	result := slices.Clone(indices)
	if err := OptimizeVertexCacheFifo(result, result, vertexCount, cacheSize); err != nil {
		return nil, err
	}
	return result, nil
}

// nextVertexNeighbour picks the next fan centre among the vertices just pushed to the
// dead-end stack. A candidate whose remaining fan would still fit in the cache gets
// priority timestamp-cacheTimestamps[v], every other live candidate gets 0, and the
// highest priority wins with ties going to the earlier candidate.
//
// The priority is the number of insertions since v entered the cache, so among fitting
// candidates the one cached longest ago wins, not the most recent one.
func nextVertexNeighbour(candidates, live, cacheTimestamps []uint32, timestamp, cacheSize uint32) (uint32, bool) {
	best, found := uint32(0), false
	bestPriority := -1

	for _, v := range candidates {
		if live[v] == 0 {
			continue
		}

		priority := 0
		if 2*live[v]+timestamp-cacheTimestamps[v] <= cacheSize {
			priority = int(timestamp - cacheTimestamps[v])
		}

		if priority > bestPriority {
			best, bestPriority, found = v, priority, true
		}
	}

	return best, found
}

// nextVertexDeadEnd pops the dead-end stack for a vertex with live triangles, then
// falls back to scanning vertices in input order from the cursor.
func nextVertexDeadEnd(deadEnd []uint32, top *int, cursor *int, live []uint32) (uint32, bool) {
	for *top > 0 {
		*top--
		v := deadEnd[*top]
		if live[v] > 0 {
			return v, true
		}
	}

	for *cursor < len(live) {
		if live[*cursor] > 0 {
			return uint32(*cursor), true
		}
		*cursor++
	}

	return 0, false
}
