package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"osg-reconciler/internal/domain"
)

func TestStoreDirectory(t *testing.T) {
	dir := NewStoreDirectory([]domain.Store{
		{Code: "S01", Name: "myG Calicut", Branch: "Calicut", Region: "North", RBM: "Anil"},
		{Code: "S01", Name: "Duplicate", Branch: "Other", Region: "Other", RBM: "Other"},
		{Name: "Future Store", Region: "South"},
	})

	s, ok := dir.Lookup(" s01 ")
	assert.True(t, ok)
	assert.Equal(t, "Anil", s.RBM)

	s, ok = dir.Lookup("MYG CALICUT")
	assert.True(t, ok)
	assert.Equal(t, "S01", s.Code)

	_, ok = dir.Lookup("")
	assert.False(t, ok)

	row := domain.EnrichedRow{WarrantyRow: domain.WarrantyRow{Branch: "Future Store"}}
	assert.True(t, dir.Enrich(&row))
	assert.Equal(t, "Future Store", row.Branch)
	assert.Equal(t, "South", row.Region)

	untouched := domain.EnrichedRow{WarrantyRow: domain.WarrantyRow{StoreCode: "S01", Branch: "B", Region: "R"}, RBM: "X"}
	assert.False(t, dir.Enrich(&untouched))
	assert.False(t, dir.Enrich(&domain.EnrichedRow{WarrantyRow: domain.WarrantyRow{StoreCode: "nope"}}))
}
