package engine

// pool hands out slots of a fixed-capacity arena. Free handles sit on a
// stack, so alloc and release are O(1) and the pool never grows beyond
// its capacity. A double release is not detected; callers own that
// discipline.
type pool struct {
	free []handle
}

func newPool(capacity int) pool {
	free := make([]handle, capacity)
	for i := range free {
		free[i] = handle(i)
	}
	return pool{free: free}
}

// alloc pops a free handle, reporting false on exhaustion.
func (p *pool) alloc() (handle, bool) {
	n := len(p.free)
	if n == 0 {
		return nilHandle, false
	}
	h := p.free[n-1]
	p.free = p.free[:n-1]
	return h, true
}

// release pushes a handle back onto the free stack.
func (p *pool) release(h handle) {
	if len(p.free) < cap(p.free) {
		p.free = append(p.free, h)
	}
}

// available reports how many slots remain allocatable.
func (p *pool) available() int {
	return len(p.free)
}
