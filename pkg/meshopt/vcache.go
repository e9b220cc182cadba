package meshopt

import "slices"

// OptimizeVertexCache writes the triangles of indices to destination in an order that
// reuses a 16-entry post-transform vertex cache as much as possible. destination must
// hold at least len(indices) entries and may be the indices slice itself.
//
// Empty input (no indices or vertexCount == 0) returns nil without touching destination.
// Malformed input is rejected before anything is written.
func OptimizeVertexCache(destination, indices []uint32, vertexCount int) error {
	empty, err := checkBuffers(destination, indices, vertexCount)
	if err != nil || empty {
		return err
	}

	// The working state is built from a private copy so destination may alias indices.
	indices = slices.Clone(indices)
	faceCount := len(indices) / 3

	adj := buildAdjacency(indices, vertexCount)
	live := slices.Clone(adj.counts)
	emitted := make([]bool, faceCount)

	vertexScores := make([]float32, vertexCount)
	for i, n := range live {
		vertexScores[i] = vertexScore(-1, n)
	}

	triangleScores := make([]float32, faceCount)
	for i := range triangleScores {
		a, b, c := indices[i*3+0], indices[i*3+1], indices[i*3+2]
		triangleScores[i] = vertexScores[a] + vertexScores[b] + vertexScores[c]
	}

	window := newCacheWindow(DefaultCacheSize)

	current := uint32(0)
	inputCursor := 1
	output := 0

	for {
		a, b, c := indices[current*3+0], indices[current*3+1], indices[current*3+2]

		destination[output*3+0] = a
		destination[output*3+1] = b
		destination[output*3+2] = c
		output++

		emitted[current] = true
		triangleScores[current] = 0

		window.push(a, b, c)

		live[a]--
		live[b]--
		live[c]--

		// Later sweeps only see pending triangles.
		adj.remove(a, current)
		adj.remove(b, current)
		adj.remove(c, current)

		best, found := uint32(0), false
		var bestScore float32

		for i, v := range window.entries() {
			score := vertexScore(window.position(i), live[v])
			diff := score - vertexScores[v]
			vertexScores[v] = score

			for _, tri := range adj.neighbours(v) {
				triScore := triangleScores[tri] + diff

				// Strict comparison: the first maximum in sweep order wins ties.
				if bestScore < triScore {
					best, bestScore, found = tri, triScore, true
				}

				triangleScores[tri] = triScore
			}
		}

		if !found {
			best, found = nextTriangleDeadEnd(&inputCursor, emitted)
			if !found {
				break
			}
		}

		current = best
	}

	return nil
}

// VertexCache returns a reordered copy of indices. Empty input comes back as an
// unmodified copy.
func VertexCache(indices []uint32, vertexCount int) ([]uint32, error) {
	result := slices.Clone(indices)
	if err := OptimizeVertexCache(result, result, vertexCount); err != nil {
		return nil, err
	}
	return result, nil
}

// nextTriangleDeadEnd returns the first pending triangle at or after the cursor in input
// order, advancing the cursor past emitted triangles.
func nextTriangleDeadEnd(cursor *int, emitted []bool) (uint32, bool) {
	for *cursor < len(emitted) {
		if !emitted[*cursor] {
			return uint32(*cursor), true
		}
		*cursor++
	}
	return 0, false
}
