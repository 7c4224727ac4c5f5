package engine

// Per-level order queues are intrusive doubly linked lists over pool
// slots. FIFO discipline is what gives time priority: the order that has
// rested longest at a price is always advanced first during matching.

// enqueueOrder appends an order at the tail of a level's queue.
func (e *Engine) enqueueOrder(lh, oh handle) {
	lv := &e.levels[lh]
	o := &e.orders[oh]

	o.next = nilHandle
	o.prev = lv.tail
	if lv.tail != nilHandle {
		e.orders[lv.tail].next = oh
	} else {
		lv.head = oh
	}
	lv.tail = oh
}

// dequeueOrder removes and returns the head of a level's queue, or
// nilHandle if the queue is empty. The removed order's links are cleared.
func (e *Engine) dequeueOrder(lh handle) handle {
	lv := &e.levels[lh]
	oh := lv.head
	if oh == nilHandle {
		return nilHandle
	}

	o := &e.orders[oh]
	lv.head = o.next
	if lv.head != nilHandle {
		e.orders[lv.head].prev = nilHandle
	} else {
		lv.tail = nilHandle
	}

	o.next = nilHandle
	o.prev = nilHandle
	return oh
}
