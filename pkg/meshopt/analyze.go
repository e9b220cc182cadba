package meshopt

import "fmt"

// Statistics describes how an index buffer behaves in a simulated FIFO vertex cache.
type Statistics struct {
	VerticesTransformed int
	WarpsExecuted       int
	ACMR                float32 // transformed vertices per triangle; best case ~0.5, worst 3
	ATVR                float32 // transformed vertices per referenced vertex; best case 1
}

// AnalyzeVertexCache replays indices through a FIFO cache of cacheSize entries.
// warpSize and primGroupSize model hardware that flushes the cache when a warp fills
// up or a primitive group ends; 0 disables either limit. WarpsExecuted stays 0 unless
// warpSize is set.
func AnalyzeVertexCache(indices []uint32, vertexCount int, cacheSize, warpSize, primGroupSize int) (Statistics, error) {
	var stats Statistics

	if len(indices)%3 != 0 {
		return stats, fmt.Errorf("%w: got %d", ErrIndexCount, len(indices))
	}
	if !validCacheSize(cacheSize) {
		return stats, fmt.Errorf("%w: got %d", ErrCacheSize, cacheSize)
	}
	if warpSize != 0 && warpSize < 3 {
		return stats, fmt.Errorf("%w: got %d", ErrWarpSize, warpSize)
	}
	if vertexCount < 0 {
		return stats, fmt.Errorf("%w: %d", ErrVertexCount, vertexCount)
	}
	if err := validateIndices(indices, vertexCount); err != nil {
		return stats, err
	}

	cacheTimestamps := make([]uint32, vertexCount)
	size := uint32(cacheSize)
	timestamp := size + 1

	warpOffset := 0
	primGroupOffset := 0

	for i := 0; i < len(indices); i += 3 {
		a, b, c := indices[i+0], indices[i+1], indices[i+2]

		misses := 0
		for _, v := range [3]uint32{a, b, c} {
			if timestamp-cacheTimestamps[v] > size {
				misses++
			}
		}

		// Flush when the triangle does not fit in the warp or the primitive group is full.
		if (primGroupSize != 0 && primGroupOffset == primGroupSize) ||
			(warpSize != 0 && warpOffset+misses > warpSize) {
			if warpSize != 0 && warpOffset > 0 {
				stats.WarpsExecuted++
			}
			warpOffset = 0
			primGroupOffset = 0

			// Every cached entry is now older than the cache size.
			timestamp += size + 1
		}

		for _, v := range [3]uint32{a, b, c} {
			if timestamp-cacheTimestamps[v] > size {
				cacheTimestamps[v] = timestamp
				timestamp++
				stats.VerticesTransformed++
				warpOffset++
			}
		}

		primGroupOffset++
	}

	if warpSize != 0 && warpOffset > 0 {
		stats.WarpsExecuted++
	}

	unique := 0
	for _, ts := range cacheTimestamps {
		if ts > 0 {
			unique++
		}
	}

	if len(indices) > 0 {
		stats.ACMR = float32(stats.VerticesTransformed) / float32(len(indices)/3)
	}
	if unique > 0 {
		stats.ATVR = float32(stats.VerticesTransformed) / float32(unique)
	}

	return stats, nil
}
