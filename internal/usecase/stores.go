package usecase

import (
	"strings"

	"osg-reconciler/internal/domain"
)

// StoreDirectory looks stores up by code or by name.
type StoreDirectory struct {
	byKey map[string]domain.Store
}

func NewStoreDirectory(stores []domain.Store) *StoreDirectory {
	d := &StoreDirectory{byKey: make(map[string]domain.Store, len(stores)*2)}
	for _, s := range stores {
		for _, k := range []string{storeKey(s.Code), storeKey(s.Name)} {
			if k == "" {
				continue
			}
			if _, exists := d.byKey[k]; !exists {
				d.byKey[k] = s
			}
		}
	}
	return d
}

// Lookup finds a store by its code or name, case-insensitively.
func (d *StoreDirectory) Lookup(codeOrName string) (domain.Store, bool) {
	s, ok := d.byKey[storeKey(codeOrName)]
	return s, ok
}

// Enrich fills a row's blank branch and region and its RBM from the store the
// row was sold at. It reports whether anything was filled.
func (d *StoreDirectory) Enrich(row *domain.EnrichedRow) bool {
	store, ok := d.Lookup(row.StoreCode)
	if !ok {
		store, ok = d.Lookup(row.Branch)
	}
	if !ok {
		return false
	}

	changed := false
	if row.Branch == "" && store.Branch != "" {
		row.Branch = store.Branch
		changed = true
	}
	if row.Region == "" && store.Region != "" {
		row.Region = store.Region
		changed = true
	}
	if row.RBM == "" && store.RBM != "" {
		row.RBM = store.RBM
		changed = true
	}
	return changed
}

func storeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
