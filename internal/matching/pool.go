package matching

import "osg-reconciler/internal/domain"

// PoolKey identifies the purchased units of one model bought by one customer.
type PoolKey struct {
	Phone string
	Model string
}

// PurchaseIndex groups a run's purchase table by phone and by (phone, model),
// preserving source order in both. It is read-only once built.
type PurchaseIndex struct {
	byPhone map[string][]domain.PurchaseRecord
	pools   map[PoolKey][]domain.PurchaseRecord
	total   int
}

// NewPurchaseIndex indexes already-normalized purchase records.
func NewPurchaseIndex(records []domain.PurchaseRecord) *PurchaseIndex {
	idx := &PurchaseIndex{
		byPhone: make(map[string][]domain.PurchaseRecord),
		pools:   make(map[PoolKey][]domain.PurchaseRecord),
		total:   len(records),
	}
	for _, rec := range records {
		idx.byPhone[rec.Phone] = append(idx.byPhone[rec.Phone], rec)
		key := PoolKey{Phone: rec.Phone, Model: rec.Model}
		idx.pools[key] = append(idx.pools[key], rec)
	}
	return idx
}

// ForPhone returns every purchase made under phone, in source order.
func (idx *PurchaseIndex) ForPhone(phone string) []domain.PurchaseRecord {
	return idx.byPhone[phone]
}

// Pool returns the allocatable units for key, in source order.
func (idx *PurchaseIndex) Pool(key PoolKey) []domain.PurchaseRecord {
	return idx.pools[key]
}

// Attributes returns the category and brand of the first purchase row for key.
func (idx *PurchaseIndex) Attributes(key PoolKey) (category, brand string, ok bool) {
	pool := idx.pools[key]
	if len(pool) == 0 {
		return "", "", false
	}
	return pool[0].Category, pool[0].Brand, true
}

// Len is the number of purchase records indexed.
func (idx *PurchaseIndex) Len() int {
	return idx.total
}
