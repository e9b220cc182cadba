// Package meshgen builds procedural triangle meshes for benchmarks and tests.
package meshgen

import (
	"math/rand/v2"

	"github.com/Faultbox/meshopt/internal/meshio"
)

// Grid builds an n×n quad grid on the XZ plane with (n+1)² vertices and two triangles
// per quad, emitted row by row.
func Grid(n int) *meshio.Mesh {
	if n <= 0 {
		return &meshio.Mesh{Name: "grid"}
	}

	stride := n + 1
	mesh := &meshio.Mesh{
		Name:         "grid",
		Vertices:     make([]meshio.Vertex, 0, stride*stride),
		Indices:      make([]uint32, 0, n*n*6),
		HasTexCoords: true,
		HasNormals:   true,
	}

	for y := range stride {
		for x := range stride {
			mesh.Vertices = append(mesh.Vertices, meshio.Vertex{
				Position: [3]float32{float32(x), 0, float32(y)},
				TexCoord: [2]float32{float32(x) / float32(n), float32(y) / float32(n)},
				Normal:   [3]float32{0, 1, 0},
			})
		}
	}

	for y := range n {
		for x := range n {
			// Corners: bottom-left, bottom-right, top-left, top-right.
			bl := uint32(y*stride + x)
			br := bl + 1
			tl := bl + uint32(stride)
			tr := tl + 1

			mesh.Indices = append(mesh.Indices,
				bl, br, tl,
				tl, br, tr,
			)
		}
	}

	return mesh
}

// Shuffle permutes the triangles of indices in place with a deterministic PCG stream,
// keeping each triangle's corner order.
func Shuffle(indices []uint32, seed uint64) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rng.Shuffle(len(indices)/3, func(i, j int) {
		i, j = i*3, j*3
		indices[i+0], indices[j+0] = indices[j+0], indices[i+0]
		indices[i+1], indices[j+1] = indices[j+1], indices[i+1]
		indices[i+2], indices[j+2] = indices[j+2], indices[i+2]
	})
}
