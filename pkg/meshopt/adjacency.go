package meshopt

// adjacency lists the triangles touching each vertex. The lists are packed into one
// array by a counting sort: the triangles of vertex v are
// data[offsets[v] : offsets[v]+counts[v]], in no particular order.
type adjacency struct {
	counts  []uint32
	offsets []uint32
	data    []uint32
}

// buildAdjacency runs in O(len(indices) + vertexCount). Indices must already be
// validated against vertexCount.
func buildAdjacency(indices []uint32, vertexCount int) adjacency {
	adj := adjacency{
		counts:  make([]uint32, vertexCount),
		offsets: make([]uint32, vertexCount),
		data:    make([]uint32, len(indices)),
	}

	for _, idx := range indices {
		adj.counts[idx]++
	}

	var offset uint32
	for i, n := range adj.counts {
		adj.offsets[i] = offset
		offset += n
	}

	// Scatter triangles; this advances each offset past its vertex's list.
	faceCount := len(indices) / 3
	for i := range faceCount {
		tri := uint32(i)
		a, b, c := indices[i*3+0], indices[i*3+1], indices[i*3+2]

		adj.data[adj.offsets[a]] = tri
		adj.offsets[a]++
		adj.data[adj.offsets[b]] = tri
		adj.offsets[b]++
		adj.data[adj.offsets[c]] = tri
		adj.offsets[c]++
	}

	// Rewind offsets to the start of each list.
	for i, n := range adj.counts {
		adj.offsets[i] -= n
	}

	return adj
}

// neighbours returns the triangles still listed for vertex v. The slice aliases the
// adjacency storage.
func (a *adjacency) neighbours(v uint32) []uint32 {
	start := a.offsets[v]
	return a.data[start : start+a.counts[v]]
}

// remove drops one occurrence of tri from the list of vertex v by swapping it with the
// last entry and shrinking the list.
func (a *adjacency) remove(v, tri uint32) {
	list := a.neighbours(v)
	for i, t := range list {
		if t == tri {
			list[i] = list[len(list)-1]
			a.counts[v]--
			return
		}
	}
}
