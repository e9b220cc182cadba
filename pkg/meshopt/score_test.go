package meshopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVertexScore(t *testing.T) {
	tests := []struct {
		name     string
		position int
		live     uint32
		want     float32
	}{
		{"uncached dead", -1, 0, 0},
		{"uncached one live", -1, 1, 0.994},
		{"front of cache", 0, 1, 0.792 + 0.994},
		{"position 3", 3, 2, 0.956 + 0.721},
		{"last slot", 15, 8, 0.284 + 0.056},
		{"valence clamped", 0, 100, 0.792 + 0.056},
		{"position clamped", 40, 1, 0.284 + 0.994},
		{"below sentinel clamped", -5, 3, 0.479},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, vertexScore(tt.position, tt.live), 1e-6)
		})
	}
}

func TestScoreTables(t *testing.T) {
	assert.Len(t, vertexScoreTableCache, 17)
	assert.Len(t, vertexScoreTableLive, 9)
	assert.Zero(t, vertexScoreTableCache[0])
	assert.Zero(t, vertexScoreTableLive[0])

	// Finishing a vertex always beats leaving it with many triangles.
	for v := 2; v <= maxValence; v++ {
		assert.Greater(t, vertexScoreTableLive[1], vertexScoreTableLive[v])
	}
}

func TestCacheWindow(t *testing.T) {
	w := newCacheWindow(4)

	w.push(0, 1, 2)
	assert.Equal(t, []uint32{0, 1, 2}, w.entries())

	w.push(2, 3, 4)
	assert.Equal(t, []uint32{2, 3, 4, 0, 1}, w.entries())
	assert.Equal(t, 4, w.count)
	assert.Equal(t, 3, w.position(3))
	assert.Equal(t, -1, w.position(4))

	// Only the retained four entries carry over.
	w.push(5, 6, 0)
	assert.Equal(t, []uint32{5, 6, 0, 2, 3, 4}, w.entries())
}

func TestCacheWindowFull(t *testing.T) {
	w := newCacheWindow(DefaultCacheSize)
	for i := range uint32(10) {
		w.push(i*3, i*3+1, i*3+2)
	}

	assert.Len(t, w.entries(), DefaultCacheSize+3)
	assert.Equal(t, DefaultCacheSize, w.count)
	assert.Equal(t, uint32(27), w.entries()[0])
}
