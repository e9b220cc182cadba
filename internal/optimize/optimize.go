// Package optimize runs the reorder pipeline over meshes: analyze, reorder triangles,
// renumber vertices, analyze again.
package optimize

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshopt/internal/config"
	"github.com/Faultbox/meshopt/internal/meshio"
	"github.com/Faultbox/meshopt/pkg/meshopt"
)

// ErrOutputExists is returned when the output file exists and overwriting is off.
var ErrOutputExists = errors.New("output file exists")

// Report summarizes one optimized mesh.
type Report struct {
	Name           string
	Algorithm      string
	Triangles      int
	Vertices       int
	UniqueVertices int
	Before         meshopt.Statistics
	After          meshopt.Statistics
	Elapsed        time.Duration
}

// Runner applies the configured passes. It holds no per-mesh state.
type Runner struct {
	opts    config.OptimizeConfig
	analyze config.AnalyzeConfig
	output  config.OutputConfig
	log     *zap.Logger
}

// New creates a Runner from cfg. A nil logger discards output.
func New(cfg *config.Config, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		opts:    cfg.Optimize,
		analyze: cfg.Analyze,
		output:  cfg.Output,
		log:     log,
	}
}

// Analyze simulates the configured cache over the mesh as it is.
func (r *Runner) Analyze(m *meshio.Mesh) (meshopt.Statistics, error) {
	return meshopt.AnalyzeVertexCache(m.Indices, m.VertexCount(), r.analyze.CacheSize, r.analyze.WarpSize, r.analyze.PrimGroupSize)
}

// Reorder rewrites m.Indices in place with the configured algorithm.
func (r *Runner) Reorder(m *meshio.Mesh) error {
	switch r.opts.Algorithm {
	case config.AlgorithmGreedy:
		return meshopt.OptimizeVertexCache(m.Indices, m.Indices, m.VertexCount())
	case config.AlgorithmFifo:
		return meshopt.OptimizeVertexCacheFifo(m.Indices, m.Indices, m.VertexCount(), r.opts.CacheSize)
	default:
		return fmt.Errorf("%w: unknown algorithm %q", config.ErrInvalidConfig, r.opts.Algorithm)
	}
}

// RemapVertices renumbers vertices in first-use order and drops unreferenced ones.
// It returns the new vertex count.
func (r *Runner) RemapVertices(m *meshio.Mesh) (int, error) {
	remap := make([]uint32, m.VertexCount())
	unique, err := meshopt.OptimizeVertexFetchRemap(remap, m.Indices, m.VertexCount())
	if err != nil {
		return 0, err
	}

	if err := meshopt.RemapIndexBuffer(m.Indices, m.Indices, remap); err != nil {
		return 0, err
	}

	vertices := make([]meshio.Vertex, unique)
	if err := meshopt.RemapVertexBuffer(vertices, m.Vertices, remap); err != nil {
		return 0, err
	}
	m.Vertices = vertices

	return unique, nil
}

// Optimize runs the full pipeline on m in place. On error m may hold a partially
// processed but still valid mesh: each pass either completes or leaves its input as is.
func (r *Runner) Optimize(m *meshio.Mesh) (*Report, error) {
	log := r.log.With(zap.String("mesh", m.Name), zap.String("algorithm", r.opts.Algorithm))

	report := &Report{
		Name:      m.Name,
		Algorithm: r.opts.Algorithm,
		Triangles: m.TriangleCount(),
		Vertices:  m.VertexCount(),
	}

	before, err := r.Analyze(m)
	if err != nil {
		return nil, fmt.Errorf("analyzing input: %w", err)
	}
	report.Before = before
	log.Debug("input analyzed",
		zap.Int("triangles", report.Triangles),
		zap.Int("vertices", report.Vertices),
		zap.Float32("acmr", before.ACMR),
		zap.Float32("atvr", before.ATVR))

	start := time.Now()

	if err := r.Reorder(m); err != nil {
		return nil, fmt.Errorf("reordering triangles: %w", err)
	}
	log.Debug("triangles reordered", zap.Duration("elapsed", time.Since(start)))

	report.UniqueVertices = m.VertexCount()
	if r.opts.VertexFetch {
		unique, err := r.RemapVertices(m)
		if err != nil {
			return nil, fmt.Errorf("remapping vertices: %w", err)
		}
		report.UniqueVertices = unique
		if dropped := report.Vertices - unique; dropped > 0 {
			log.Debug("dropped unreferenced vertices", zap.Int("count", dropped))
		}
	}

	report.Elapsed = time.Since(start)

	after, err := r.Analyze(m)
	if err != nil {
		return nil, fmt.Errorf("analyzing output: %w", err)
	}
	report.After = after

	log.Info("mesh optimized",
		zap.Int("triangles", report.Triangles),
		zap.Float32("acmr_before", before.ACMR),
		zap.Float32("acmr_after", after.ACMR),
		zap.Duration("elapsed", report.Elapsed))

	return report, nil
}

// OptimizeFile reads an OBJ mesh from in, optimizes it and writes it to out.
func (r *Runner) OptimizeFile(in, out string) (*Report, error) {
	if !r.output.Overwrite {
		if _, err := os.Stat(out); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrOutputExists, out)
		}
	}

	m, err := meshio.ReadOBJFile(in)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", in, err)
	}
	r.log.Debug("mesh loaded", zap.String("path", in), zap.Int("triangles", m.TriangleCount()))

	report, err := r.Optimize(m)
	if err != nil {
		return nil, err
	}
	if report.Name == "" {
		report.Name = in
	}

	if err := meshio.WriteOBJFile(out, m); err != nil {
		return nil, fmt.Errorf("writing %s: %w", out, err)
	}
	r.log.Debug("mesh written", zap.String("path", out))

	return report, nil
}
