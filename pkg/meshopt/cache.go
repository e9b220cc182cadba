package meshopt

// cacheWindow simulates the most-recently-used vertex window of the greedy reorderer.
// Two fixed arrays trade places on every push so updates never allocate.
type cacheWindow struct {
	slots   [2][maxCacheSize + 3]uint32
	active  int
	count   int // entries retained after truncation
	written int // entries produced by the last push, up to count+3
	size    int
}

func newCacheWindow(size int) cacheWindow {
	return cacheWindow{size: min(max(size, 3), maxCacheSize)}
}

// push puts a, b, c at the front followed by the previously cached vertices that are
// not among them, in their previous order.
func (w *cacheWindow) push(a, b, c uint32) {
	prev := &w.slots[w.active]
	next := &w.slots[1-w.active]

	next[0], next[1], next[2] = a, b, c
	n := 3

	for _, v := range prev[:w.count] {
		if v != a && v != b && v != c {
			next[n] = v
			n++
		}
	}

	w.active = 1 - w.active
	w.written = n
	w.count = min(n, w.size)
}

// entries returns everything written by the last push, including the vertices that fell
// past the window size and have just been evicted. Position i is a cache slot when
// i < size.
func (w *cacheWindow) entries() []uint32 {
	return w.slots[w.active][:w.written]
}

// position maps an entry offset to a cache position, -1 for evicted entries.
func (w *cacheWindow) position(i int) int {
	if i >= w.size {
		return -1
	}
	return i
}
