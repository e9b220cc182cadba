package meshio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// OBJ parse errors.
var (
	ErrMalformedVertex = errors.New("malformed vertex attribute")
	ErrMalformedFace   = errors.New("malformed face")
	ErrIndexOutOfRange = errors.New("face index out of range")
	ErrTooManyVertices = errors.New("too many unified vertices")
)

// faceKey identifies a unified vertex by its position, texcoord and normal indices
// (-1 when absent).
type faceKey [3]int32

type objReader struct {
	positions [][3]float32
	texCoords [][2]float32
	normals   [][3]float32

	mesh   *Mesh
	lookup map[faceKey]uint32
}

// ReadOBJ parses an OBJ stream. Polygons are fan-triangulated and every distinct
// v/vt/vn combination becomes one vertex of the resulting mesh. Materials, groups
// and smoothing statements are ignored.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	p := &objReader{
		mesh:   &Mesh{},
		lookup: make(map[faceKey]uint32),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		if err := p.parseLine(fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}

	return p.mesh, nil
}

// ReadOBJFile parses the OBJ file at path.
func ReadOBJFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadOBJ(f)
}

func (p *objReader) parseLine(fields []string) error {
	switch fields[0] {
	case "v":
		v, err := parseFloats(fields[1:], 3)
		if err != nil {
			return err
		}
		p.positions = append(p.positions, [3]float32{v[0], v[1], v[2]})
	case "vt":
		v, err := parseFloats(fields[1:], 2)
		if err != nil {
			return err
		}
		p.texCoords = append(p.texCoords, [2]float32{v[0], v[1]})
	case "vn":
		v, err := parseFloats(fields[1:], 3)
		if err != nil {
			return err
		}
		p.normals = append(p.normals, [3]float32{v[0], v[1], v[2]})
	case "f":
		return p.parseFace(fields[1:])
	case "o":
		if p.mesh.Name == "" && len(fields) > 1 {
			p.mesh.Name = strings.Join(fields[1:], " ")
		}
	}
	return nil
}

// parseFloats parses at least n leading floats; extra components (w) are ignored.
func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("%w: want %d components, got %d", ErrMalformedVertex, n, len(fields))
	}

	out := make([]float32, n)
	for i := range n {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedVertex, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

func (p *objReader) parseFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: %d corners", ErrMalformedFace, len(fields))
	}

	corners := make([]uint32, len(fields))
	for i, field := range fields {
		key, err := p.parseCorner(field)
		if err != nil {
			return err
		}
		idx, err := p.vertex(key)
		if err != nil {
			return err
		}
		corners[i] = idx
	}

	// Fan triangulation keeps the polygon winding.
	for i := 1; i+1 < len(corners); i++ {
		p.mesh.Indices = append(p.mesh.Indices, corners[0], corners[i], corners[i+1])
	}
	return nil
}

// parseCorner parses "v", "v/vt", "v//vn" or "v/vt/vn".
func (p *objReader) parseCorner(field string) (faceKey, error) {
	key := faceKey{-1, -1, -1}
	parts := strings.Split(field, "/")
	if len(parts) > 3 || parts[0] == "" {
		return key, fmt.Errorf("%w: %q", ErrMalformedFace, field)
	}

	counts := [3]int{len(p.positions), len(p.texCoords), len(p.normals)}
	for i, part := range parts {
		if part == "" {
			continue
		}
		idx, err := resolveIndex(part, counts[i])
		if err != nil {
			return key, fmt.Errorf("%q: %w", field, err)
		}
		key[i] = idx
	}
	return key, nil
}

// resolveIndex converts a 1-based or negative (relative) OBJ index to 0-based.
func resolveIndex(s string, count int) (int32, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedFace, err)
	}

	switch {
	case n > 0:
		n--
	case n < 0:
		n += count
	default:
		return 0, fmt.Errorf("%w: index 0", ErrIndexOutOfRange)
	}

	if n < 0 || n >= count {
		return 0, fmt.Errorf("%w: %s of %d", ErrIndexOutOfRange, s, count)
	}
	return int32(n), nil
}

func (p *objReader) vertex(key faceKey) (uint32, error) {
	if idx, ok := p.lookup[key]; ok {
		return idx, nil
	}
	if len(p.mesh.Vertices) >= int(^uint32(0)) {
		return 0, ErrTooManyVertices
	}

	v := Vertex{Position: p.positions[key[0]]}
	if key[1] >= 0 {
		v.TexCoord = p.texCoords[key[1]]
		p.mesh.HasTexCoords = true
	}
	if key[2] >= 0 {
		v.Normal = p.normals[key[2]]
		p.mesh.HasNormals = true
	}

	idx := uint32(len(p.mesh.Vertices))
	p.mesh.Vertices = append(p.mesh.Vertices, v)
	p.lookup[key] = idx
	return idx, nil
}

// WriteOBJ writes m with one v (and vt/vn when present) line per vertex, so vertex
// order in the file follows the mesh's vertex buffer.
func WriteOBJ(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
	if m.Name != "" {
		fmt.Fprintf(bw, "o %s\n", m.Name)
	}

	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(v.Position[0]), formatFloat(v.Position[1]), formatFloat(v.Position[2]))
	}
	if m.HasTexCoords {
		for _, v := range m.Vertices {
			fmt.Fprintf(bw, "vt %s %s\n", formatFloat(v.TexCoord[0]), formatFloat(v.TexCoord[1]))
		}
	}
	if m.HasNormals {
		for _, v := range m.Vertices {
			fmt.Fprintf(bw, "vn %s %s %s\n", formatFloat(v.Normal[0]), formatFloat(v.Normal[1]), formatFloat(v.Normal[2]))
		}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		bw.WriteString("f")
		for _, idx := range m.Indices[i : i+3] {
			bw.WriteByte(' ')
			bw.WriteString(formatCorner(idx+1, m.HasTexCoords, m.HasNormals))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteOBJFile writes m to path, creating or truncating the file.
func WriteOBJFile(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteOBJ(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatCorner(n uint32, tex, normal bool) string {
	s := strconv.FormatUint(uint64(n), 10)
	switch {
	case tex && normal:
		return s + "/" + s + "/" + s
	case tex:
		return s + "/" + s
	case normal:
		return s + "//" + s
	default:
		return s
	}
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
