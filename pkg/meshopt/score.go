package meshopt

const (
	maxCacheSize = 16
	maxValence   = 8

	// DefaultCacheSize is the window simulated by OptimizeVertexCache.
	DefaultCacheSize = maxCacheSize
)

// Tuned scores for a vertex by cache position. Entry 0 is a vertex outside the cache,
// entry i+1 is cache position i.
var vertexScoreTableCache = [1 + maxCacheSize]float32{
	0,
	0.792, 0.767, 0.764, 0.956, 0.827, 0.751, 0.820, 0.864, 0.738, 0.788, 0.642, 0.646, 0.165, 0.654, 0.545, 0.284,
}

// Tuned scores by number of triangles still to be emitted for a vertex. Fewer live
// triangles score higher so nearly finished vertices get retired from the cache.
var vertexScoreTableLive = [1 + maxValence]float32{
	0,
	0.994, 0.721, 0.479, 0.423, 0.174, 0.080, 0.249, 0.056,
}

// vertexScore scores a vertex at cachePosition (-1 when not cached) with liveTriangles
// remaining. Both arguments are clamped to the table bounds.
func vertexScore(cachePosition int, liveTriangles uint32) float32 {
	slot := min(max(cachePosition+1, 0), maxCacheSize)
	live := min(liveTriangles, maxValence)

	return vertexScoreTableCache[slot] + vertexScoreTableLive[live]
}
