package engine

import (
	"errors"

	"vidar/internal/common"
)

// Default pool capacities. These bound the book: at most DefaultMaxOrders
// resting orders and DefaultMaxLevels distinct prices per engine.
const (
	DefaultMaxOrders = 1024
	DefaultMaxLevels = 256
)

var (
	ErrZeroQuantity      = errors.New("order quantity must be positive")
	ErrOrderCapacity     = errors.New("order pool exhausted")
	ErrLevelCapacity     = errors.New("price level pool exhausted")
	ErrCancelUnsupported = errors.New("cancel by id is not supported")
)

// handle indexes a slot in one of the engine's arenas. All structural
// links between records are stored as handles, never as Go pointers, so
// slots can be recycled without aliasing hazards.
type handle int32

const nilHandle handle = -1

// order is one resting limit order, pool-resident. The queue links are
// meaningful only while the order is enqueued on a level.
type order struct {
	id       uint32
	price    uint32
	quantity uint32
	side     common.Side

	prev handle
	next handle
}

// level is all resting liquidity at one exact price on one side. It is
// simultaneously a FIFO queue of orders (head/tail) and a node of its
// side's search tree (left/right).
type level struct {
	price uint32

	head handle
	tail handle

	left  handle
	right handle
}
