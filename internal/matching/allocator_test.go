package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osg-reconciler/internal/domain"
)

func TestAllocator_Draw(t *testing.T) {
	const phone = "9876543210"
	index := NewPurchaseIndex(NormalizePurchases([]domain.PurchaseRecord{
		purchase(phone, "M", "TV", "INV1", "100", "IMEI1"),
		purchase(phone, "OTHER", "TV", "INV9", "900", "IMEI9"),
		purchase(phone, "M", "TV", "INV2", "", "IMEI2"),
	}))
	alloc := NewAllocator(index)
	key := PoolKey{Phone: phone, Model: "M"}

	first, ok := alloc.Draw(key)
	require.True(t, ok)
	assert.Equal(t, "INV1", first.InvoiceNumber)
	require.True(t, first.ItemRate.Valid)
	assert.Equal(t, "100", first.ItemRate.Decimal.String())
	assert.Equal(t, "IMEI1", first.Serial)

	second, ok := alloc.Draw(key)
	require.True(t, ok)
	assert.Equal(t, "INV2", second.InvoiceNumber)
	assert.False(t, second.ItemRate.Valid)
	assert.Equal(t, "IMEI2", second.Serial)

	third, ok := alloc.Draw(key)
	assert.False(t, ok)
	assert.Equal(t, Allocation{}, third)
	assert.Equal(t, 2, alloc.Consumed(key))

	// exhaustion is sticky and does not wrap
	_, ok = alloc.Draw(key)
	assert.False(t, ok)
	assert.Equal(t, 2, alloc.Consumed(key))
}

func TestAllocator_UnknownKey(t *testing.T) {
	alloc := NewAllocator(NewPurchaseIndex(nil))

	got, ok := alloc.Draw(PoolKey{Phone: "1", Model: "X"})

	assert.False(t, ok)
	assert.Equal(t, Allocation{}, got)
}

func TestAllocator_KeysAreIndependent(t *testing.T) {
	index := NewPurchaseIndex([]domain.PurchaseRecord{
		purchase("111", "M", "TV", "A1", "1", "SA"),
		purchase("222", "M", "TV", "B1", "2", "SB"),
	})
	alloc := NewAllocator(index)

	a, okA := alloc.Draw(PoolKey{Phone: "111", Model: "M"})
	b, okB := alloc.Draw(PoolKey{Phone: "222", Model: "M"})

	assert.True(t, okA)
	assert.True(t, okB)
	assert.Equal(t, "SA", a.Serial)
	assert.Equal(t, "SB", b.Serial)
}
