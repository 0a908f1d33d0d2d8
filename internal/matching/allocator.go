package matching

import "github.com/shopspring/decimal"

// Allocation is the set of consumables drawn for one warranty row. All three
// fields come from the same purchased unit.
type Allocation struct {
	InvoiceNumber string
	ItemRate      decimal.NullDecimal
	Serial        string
}

// Allocator hands out purchased units per (phone, model) without ever giving
// the same unit to two warranty rows. The n-th draw for a key returns the n-th
// unit of that key's pool. It is not safe for concurrent use and lives for one run.
type Allocator struct {
	index   *PurchaseIndex
	cursors map[PoolKey]int
}

func NewAllocator(index *PurchaseIndex) *Allocator {
	return &Allocator{index: index, cursors: make(map[PoolKey]int)}
}

// Draw consumes the next unit for key. When the pool is exhausted or unknown it
// returns an empty Allocation and false, and the cursor stays where it is.
func (a *Allocator) Draw(key PoolKey) (Allocation, bool) {
	pool := a.index.Pool(key)
	cursor := a.cursors[key]
	if cursor >= len(pool) {
		return Allocation{}, false
	}
	rec := pool[cursor]
	a.cursors[key] = cursor + 1

	return Allocation{
		InvoiceNumber: rec.InvoiceNumber,
		ItemRate:      rec.ItemRate,
		Serial:        rec.Serial,
	}, true
}

// Consumed returns how many units have been drawn for key.
func (a *Allocator) Consumed(key PoolKey) int {
	return a.cursors[key]
}
