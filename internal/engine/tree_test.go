package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTree_InsertFindBest(t *testing.T) {
	e := New(WithCapacity(4, 16))

	for _, price := range []uint32{100, 50, 150, 75, 125} {
		_, ok := e.insertLevel(&e.buyRoot, price)
		assert.True(t, ok)
	}

	// Inserting an existing price returns the node without taking a slot.
	before := e.levelPool.available()
	h, ok := e.insertLevel(&e.buyRoot, 75)
	assert.True(t, ok)
	assert.Equal(t, before, e.levelPool.available())
	assert.Equal(t, h, e.findLevel(e.buyRoot, 75))

	assert.Equal(t, uint32(150), e.levels[e.bestBuy(e.buyRoot)].price)
	assert.Equal(t, uint32(50), e.levels[e.bestSell(e.buyRoot)].price)
	assert.Equal(t, nilHandle, e.findLevel(e.buyRoot, 99))
}

func TestTree_RemoveBestBuyAdoptsLeftSubtree(t *testing.T) {
	e := New(WithCapacity(4, 16))

	// 150 is the maximum and carries 125 as its left child.
	for _, price := range []uint32{100, 50, 150, 75, 125} {
		_, ok := e.insertLevel(&e.buyRoot, price)
		assert.True(t, ok)
	}

	e.removeBestBuy(&e.buyRoot)
	assert.Equal(t, uint32(125), e.levels[e.bestBuy(e.buyRoot)].price)

	e.removeBestBuy(&e.buyRoot)
	assert.Equal(t, uint32(100), e.levels[e.bestBuy(e.buyRoot)].price)

	// The released slots are allocatable again.
	assert.Equal(t, 13, e.levelPool.available())
}

func TestTree_RemoveBestSellAdoptsRightSubtree(t *testing.T) {
	e := New(WithCapacity(4, 16))

	// 50 is the minimum and carries 75 as its right child.
	for _, price := range []uint32{100, 50, 150, 75} {
		_, ok := e.insertLevel(&e.sellRoot, price)
		assert.True(t, ok)
	}

	e.removeBestSell(&e.sellRoot)
	assert.Equal(t, uint32(75), e.levels[e.bestSell(e.sellRoot)].price)

	e.removeBestSell(&e.sellRoot)
	assert.Equal(t, uint32(100), e.levels[e.bestSell(e.sellRoot)].price)
}

func TestTree_EmptyTree(t *testing.T) {
	e := New(WithCapacity(4, 4))
	assert.Equal(t, nilHandle, e.bestBuy(e.buyRoot))
	assert.Equal(t, nilHandle, e.bestSell(e.sellRoot))
	assert.Equal(t, nilHandle, e.findLevel(e.buyRoot, 100))

	// Removal on an empty tree is a no-op.
	e.removeBestBuy(&e.buyRoot)
	e.removeBestSell(&e.sellRoot)
	assert.Equal(t, 4, e.levelPool.available())
}

// Monotonically increasing prices degenerate the tree into a single right
// spine. Every walk is iterative, so depth equal to the full level
// capacity must be safe.
func TestTree_DeepMonotonicSpine(t *testing.T) {
	const n = 4096
	e := New(WithCapacity(1, n))

	for price := uint32(1); price <= n; price++ {
		_, ok := e.insertLevel(&e.sellRoot, price)
		assert.True(t, ok)
	}
	assert.Equal(t, 0, e.levelPool.available())
	assert.Equal(t, uint32(1), e.levels[e.bestSell(e.sellRoot)].price)
	assert.Equal(t, uint32(n), e.levels[e.bestBuy(e.sellRoot)].price)

	// Drain from the minimum end; prices come out ascending.
	for price := uint32(1); price <= n; price++ {
		best := e.bestSell(e.sellRoot)
		assert.Equal(t, price, e.levels[best].price)
		e.removeBestSell(&e.sellRoot)
	}
	assert.Equal(t, nilHandle, e.sellRoot)
	assert.Equal(t, n, e.levelPool.available())
}
