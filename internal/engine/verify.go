package engine

import (
	"fmt"

	"vidar/internal/common"
)

// VerifyIntegrity walks the whole arena and checks the book's structural
// invariants: strict search-tree ordering on both sides, no reachable
// level with an empty queue, mutual queue links with agreeing head and
// tail, every queued order priced and sided like its level, and pool
// conservation (in-book plus free equals capacity, for both pools).
//
// Debug diagnostic; never called on the matching path.
func (e *Engine) VerifyIntegrity() error {
	ordersInBook := 0
	levelsInBook := 0

	for _, side := range []common.Side{common.Buy, common.Sell} {
		var (
			stack     []handle
			lastPrice uint32
			seenAny   bool
		)
		cur := *e.sideRoot(side)
		for cur != nilHandle || len(stack) > 0 {
			for cur != nilHandle {
				stack = append(stack, cur)
				cur = e.levels[cur].left
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			lv := &e.levels[cur]
			// In-order traversal of a well-formed tree yields strictly
			// increasing prices.
			if seenAny && lv.price <= lastPrice {
				return fmt.Errorf(
					"%s tree: price %d not greater than in-order predecessor %d",
					side, lv.price, lastPrice,
				)
			}
			lastPrice = lv.price
			seenAny = true
			levelsInBook++

			n, err := e.verifyQueue(cur, side)
			if err != nil {
				return err
			}
			ordersInBook += n

			cur = lv.right
		}
	}

	if ordersInBook+e.orderPool.available() != len(e.orders) {
		return fmt.Errorf(
			"order pool accounting: %d in book + %d free != capacity %d",
			ordersInBook, e.orderPool.available(), len(e.orders),
		)
	}
	if levelsInBook+e.levelPool.available() != len(e.levels) {
		return fmt.Errorf(
			"level pool accounting: %d in book + %d free != capacity %d",
			levelsInBook, e.levelPool.available(), len(e.levels),
		)
	}
	return nil
}

// verifyQueue checks one level's queue and returns its length.
func (e *Engine) verifyQueue(lh handle, side common.Side) (int, error) {
	lv := &e.levels[lh]
	if lv.head == nilHandle {
		return 0, fmt.Errorf(
			"%s level %d: empty queue reachable from tree", side, lv.price,
		)
	}
	if e.orders[lv.head].prev != nilHandle {
		return 0, fmt.Errorf(
			"%s level %d: head order has a predecessor", side, lv.price,
		)
	}

	count := 0
	last := nilHandle
	for oh := lv.head; oh != nilHandle; oh = e.orders[oh].next {
		o := &e.orders[oh]
		switch {
		case o.price != lv.price:
			return 0, fmt.Errorf(
				"%s level %d: order %d priced %d", side, lv.price, o.id, o.price,
			)
		case o.side != side:
			return 0, fmt.Errorf(
				"%s level %d: order %d on the wrong side", side, lv.price, o.id,
			)
		case o.quantity == 0:
			return 0, fmt.Errorf(
				"%s level %d: order %d resting with zero quantity", side, lv.price, o.id,
			)
		}
		if o.next != nilHandle && e.orders[o.next].prev != oh {
			return 0, fmt.Errorf(
				"%s level %d: broken back link after order %d", side, lv.price, o.id,
			)
		}
		last = oh
		count++
		if count > len(e.orders) {
			return 0, fmt.Errorf("%s level %d: queue cycle", side, lv.price)
		}
	}
	if lv.tail != last {
		return 0, fmt.Errorf(
			"%s level %d: tail does not terminate the queue", side, lv.price,
		)
	}
	return count, nil
}
