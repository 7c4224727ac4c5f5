package engine

import "vidar/internal/common"

// FlatOrder is a point-in-time copy of one resting order.
type FlatOrder struct {
	ID       uint32
	Price    uint32
	Quantity uint32
	Side     common.Side
}

// FlatLevel is a point-in-time copy of one price level, its queue listed
// in time priority order.
type FlatLevel struct {
	Price  uint32
	Orders []FlatOrder
}

// Levels snapshots one side of the book, best price first: descending
// prices for the buy side, ascending for the sell side. Intended for
// tests and depth display, not the matching path.
func (e *Engine) Levels(side common.Side) []FlatLevel {
	var out []FlatLevel

	// Iterative in-order walk with an explicit stack. The buy side
	// descends into right subtrees first so the highest price comes out
	// on top.
	var stack []handle
	cur := *e.sideRoot(side)
	for cur != nilHandle || len(stack) > 0 {
		for cur != nilHandle {
			stack = append(stack, cur)
			if side == common.Buy {
				cur = e.levels[cur].right
			} else {
				cur = e.levels[cur].left
			}
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		out = append(out, e.flattenLevel(cur))

		if side == common.Buy {
			cur = e.levels[cur].left
		} else {
			cur = e.levels[cur].right
		}
	}
	return out
}

func (e *Engine) flattenLevel(lh handle) FlatLevel {
	lv := &e.levels[lh]
	flat := FlatLevel{Price: lv.price}
	for oh := lv.head; oh != nilHandle; oh = e.orders[oh].next {
		o := &e.orders[oh]
		flat.Orders = append(flat.Orders, FlatOrder{
			ID:       o.id,
			Price:    o.price,
			Quantity: o.quantity,
			Side:     o.side,
		})
	}
	return flat
}
