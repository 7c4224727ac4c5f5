package engine

import (
	"time"

	"vidar/internal/common"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Engine owns the order and level arenas and the two-sided book built on
// top of them. Ownership is single-rooted: trees and queues only hold
// handles into the arenas, never the records themselves.
//
// The engine is strictly single threaded. One logical caller drives
// Submit, Match and Cancel to completion; no operation blocks.
type Engine struct {
	orders []order
	levels []level

	orderPool pool
	levelPool pool

	// Tree roots per side.
	buyRoot  handle
	sellRoot handle

	reporter common.Reporter
}

type config struct {
	maxOrders int
	maxLevels int
}

// Option configures engine construction.
type Option func(*config)

// WithCapacity bounds how many resting orders and distinct price levels
// the book holds at once.
func WithCapacity(maxOrders, maxLevels int) Option {
	return func(c *config) {
		c.maxOrders = maxOrders
		c.maxLevels = maxLevels
	}
}

func New(opts ...Option) *Engine {
	cfg := config{
		maxOrders: DefaultMaxOrders,
		maxLevels: DefaultMaxLevels,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		orders:    make([]order, cfg.maxOrders),
		levels:    make([]level, cfg.maxLevels),
		orderPool: newPool(cfg.maxOrders),
		levelPool: newPool(cfg.maxLevels),
		buyRoot:   nilHandle,
		sellRoot:  nilHandle,
	}
}

// SetReporter installs the sink for trade events. With a nil reporter
// trades are visible only in the logs.
func (e *Engine) SetReporter(r common.Reporter) {
	e.reporter = r
}

// sideRoot resolves the tree root slot for a side.
func (e *Engine) sideRoot(side common.Side) *handle {
	if side == common.Buy {
		return &e.buyRoot
	}
	return &e.sellRoot
}

// Submit places a resting limit order into the book. The outcome is
// explicit: nil on acceptance, ErrZeroQuantity for an empty order, and a
// capacity error when either pool is exhausted. A submission that fails
// after its order slot was taken rolls the slot back, so a rejected
// request leaves the book exactly as it found it.
//
// Submit never executes anything; call Match to cross the book. Order ids
// are caller-supplied and not checked for uniqueness.
func (e *Engine) Submit(id, price, quantity uint32, side common.Side) error {
	if quantity == 0 {
		log.Warn().
			Uint32("id", id).
			Msg("order rejected: zero quantity")
		return ErrZeroQuantity
	}

	oh, ok := e.orderPool.alloc()
	if !ok {
		log.Warn().
			Uint32("id", id).
			Msg("order rejected: order pool exhausted")
		return ErrOrderCapacity
	}
	e.orders[oh] = order{
		id:       id,
		price:    price,
		quantity: quantity,
		side:     side,
		prev:     nilHandle,
		next:     nilHandle,
	}

	lh, ok := e.insertLevel(e.sideRoot(side), price)
	if !ok {
		// Roll back the order slot; the request must not half-commit.
		e.orderPool.release(oh)
		log.Warn().
			Uint32("id", id).
			Uint32("price", price).
			Msg("order rejected: level pool exhausted")
		return ErrLevelCapacity
	}

	e.enqueueOrder(lh, oh)

	log.Debug().
		Uint32("id", id).
		Uint32("price", price).
		Uint32("quantity", quantity).
		Stringer("side", side).
		Msg("order resting")
	return nil
}

// Match crosses the book to a fixed point. While the best bid price is at
// least the best ask price, the head orders of the two best levels trade
// for the smaller of their remaining quantities, in price-time priority.
// An order is released the instant its quantity reaches zero, and a level
// whose queue empties is removed from its tree in the same step, so an
// empty level is never observable between iterations.
//
// On return either side is empty, or best bid < best ask. Termination is
// guaranteed: every iteration strictly reduces total resting quantity.
func (e *Engine) Match() {
	for {
		bb := e.bestBuy(e.buyRoot)
		bs := e.bestSell(e.sellRoot)
		if bb == nilHandle || bs == nilHandle {
			return
		}

		buyLevel := &e.levels[bb]
		sellLevel := &e.levels[bs]
		if buyLevel.price < sellLevel.price {
			// Book no longer crosses.
			return
		}

		buyOrder := &e.orders[buyLevel.head]
		sellOrder := &e.orders[sellLevel.head]

		qty := min(buyOrder.quantity, sellOrder.quantity)
		buyOrder.quantity -= qty
		sellOrder.quantity -= qty

		e.reportTrade(buyOrder, sellOrder, qty)

		// Filled heads go straight back to the pool.
		if buyOrder.quantity == 0 {
			e.orderPool.release(e.dequeueOrder(bb))
		}
		if sellOrder.quantity == 0 {
			e.orderPool.release(e.dequeueOrder(bs))
		}

		// Emptied levels leave their trees in the same step. Both are
		// extremal nodes, so the specialized removal applies.
		if buyLevel.head == nilHandle {
			e.removeBestBuy(&e.buyRoot)
		}
		if sellLevel.head == nilHandle {
			e.removeBestSell(&e.sellRoot)
		}
	}
}

// Cancel is part of the book's contract but is not implemented: the book
// keeps no id index, so a cancel cannot locate its order without scanning
// every level. The gap is surfaced to callers instead of silently
// swallowed. Supporting it would need an id to location map maintained on
// submit and fill, plus interior tree deletion.
func (e *Engine) Cancel(id uint32) error {
	log.Warn().
		Uint32("id", id).
		Msg("cancel requested but unsupported")
	return ErrCancelUnsupported
}

// FreeOrders reports how many order slots remain allocatable.
func (e *Engine) FreeOrders() int {
	return e.orderPool.available()
}

// FreeLevels reports how many level slots remain allocatable.
func (e *Engine) FreeLevels() int {
	return e.levelPool.available()
}

func (e *Engine) reportTrade(buy, sell *order, qty uint32) {
	trade := common.Trade{
		ExecID:    uuid.New().String(),
		BuyID:     buy.id,
		BuyPrice:  buy.price,
		SellID:    sell.id,
		SellPrice: sell.price,
		Quantity:  qty,
		Timestamp: time.Now(),
	}

	log.Debug().
		Str("exec_id", trade.ExecID).
		Uint32("buy_id", trade.BuyID).
		Uint32("buy_price", trade.BuyPrice).
		Uint32("sell_id", trade.SellID).
		Uint32("sell_price", trade.SellPrice).
		Uint32("quantity", trade.Quantity).
		Msg("trade executed")

	if e.reporter == nil {
		return
	}
	if err := e.reporter.ReportTrade(trade); err != nil {
		log.Error().
			Err(err).
			Str("exec_id", trade.ExecID).
			Msg("trade report failed")
	}
}
