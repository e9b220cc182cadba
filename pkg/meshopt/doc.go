// Package meshopt reorders triangle index buffers for post-transform vertex cache efficiency.
//
// Two reorderers are provided. OptimizeVertexCache is a greedy, score-driven pass that
// simulates a 16-entry LRU-like window and repeatedly emits the best-scoring triangle
// adjacent to the cached vertices (Forsyth, "Linear-Speed Vertex Cache Optimisation").
// OptimizeVertexCacheFifo is a vertex-driven fan traversal tuned for a strict FIFO cache
// of configurable size (Sander, Nehab and Barczak, "Fast Triangle Reordering for Vertex
// Locality and Reduced Overdraw").
//
// Both are lossless: the output is a permutation of the input triangles and every
// triangle keeps its three indices in their original order. Destination and source may
// be the same slice.
//
// AnalyzeVertexCache measures the result and OptimizeVertexFetchRemap renumbers vertices
// in first-use order once the triangle order is final.
package meshopt
