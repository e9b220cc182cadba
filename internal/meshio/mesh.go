// Package meshio reads and writes indexed triangle meshes as Wavefront OBJ.
package meshio

// Vertex is one unified vertex: a unique combination of position, texture coordinate
// and normal referenced by the index buffer.
type Vertex struct {
	Position [3]float32
	TexCoord [2]float32
	Normal   [3]float32
}

// Mesh holds a single indexed vertex buffer ready for optimization or GPU upload.
type Mesh struct {
	Name         string
	Vertices     []Vertex
	Indices      []uint32 // 3 per triangle
	HasTexCoords bool
	HasNormals   bool
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}
