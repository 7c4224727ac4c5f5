package engine

// The price-level index is an unbalanced binary search tree per side,
// keyed on price, with child links stored as handles. Matching only ever
// consumes liquidity from the best price on each side, so the only
// deletion implemented is extremal removal; arbitrary interior deletion
// is deliberately absent, which is also why cancel by id is unsupported.
//
// Tree height is bounded by the number of distinct prices, not kept
// logarithmic, so every walk below is iterative: recursion depth must
// never depend on the shape of the book.

// findLevel returns the level resting at exactly price, or nilHandle.
func (e *Engine) findLevel(root handle, price uint32) handle {
	for root != nilHandle {
		lv := &e.levels[root]
		switch {
		case price == lv.price:
			return root
		case price < lv.price:
			root = lv.left
		default:
			root = lv.right
		}
	}
	return nilHandle
}

// insertLevel returns the level at price, creating it as a fresh leaf
// when absent. Reports false if the level pool is exhausted; the tree is
// untouched in that case.
func (e *Engine) insertLevel(root *handle, price uint32) (handle, bool) {
	link := root
	for *link != nilHandle {
		lv := &e.levels[*link]
		switch {
		case price == lv.price:
			return *link, true
		case price < lv.price:
			link = &lv.left
		default:
			link = &lv.right
		}
	}

	h, ok := e.levelPool.alloc()
	if !ok {
		return nilHandle, false
	}
	// Reset the recycled slot: empty queue, leaf position.
	e.levels[h] = level{
		price: price,
		head:  nilHandle,
		tail:  nilHandle,
		left:  nilHandle,
		right: nilHandle,
	}
	*link = h
	return h, true
}

// bestBuy is the maximum-price level: the rightmost node.
func (e *Engine) bestBuy(root handle) handle {
	if root == nilHandle {
		return nilHandle
	}
	for e.levels[root].right != nilHandle {
		root = e.levels[root].right
	}
	return root
}

// bestSell is the minimum-price level: the leftmost node.
func (e *Engine) bestSell(root handle) handle {
	if root == nilHandle {
		return nilHandle
	}
	for e.levels[root].left != nilHandle {
		root = e.levels[root].left
	}
	return root
}

// removeBestBuy splices out the maximum node and releases it to the level
// pool. The maximum has no right child, so its left subtree takes its
// place. Only valid for the current best node; this is not a general
// purpose deletion.
func (e *Engine) removeBestBuy(root *handle) {
	if *root == nilHandle {
		return
	}
	link := root
	for e.levels[*link].right != nilHandle {
		link = &e.levels[*link].right
	}
	h := *link
	*link = e.levels[h].left
	e.levelPool.release(h)
}

// removeBestSell splices out the minimum node; its right subtree takes
// its place. Same restrictions as removeBestBuy.
func (e *Engine) removeBestSell(root *handle) {
	if *root == nilHandle {
		return
	}
	link := root
	for e.levels[*link].left != nilHandle {
		link = &e.levels[*link].left
	}
	h := *link
	*link = e.levels[h].right
	e.levelPool.release(h)
}
