package matching

import "osg-reconciler/internal/domain"

// Outcome is the result of reconciling one warranty table.
type Outcome struct {
	Rows []domain.EnrichedRow
	// Exhausted counts resolved rows that found their pool already used up.
	Exhausted int
}

// Reconcile enriches every warranty row with the model it refers to and the
// consumables drawn from that customer's purchases. Rows come back in input
// order; unresolved rows keep the model and allocation fields empty but still
// carry the durations read from their SKU. All indexing and cursor state is
// local to the call.
func Reconcile(warranty []domain.WarrantyRow, purchases []domain.PurchaseRecord) Outcome {
	index := NewPurchaseIndex(NormalizePurchases(purchases))
	alloc := NewAllocator(index)

	out := Outcome{Rows: make([]domain.EnrichedRow, 0, len(warranty))}
	for _, raw := range warranty {
		row := normalizeWarranty(raw)
		enriched := domain.EnrichedRow{WarrantyRow: row}

		model, resolution := Resolve(row, index.ForPhone(row.Phone))
		enriched.ResolvedModel = model
		enriched.Resolution = resolution

		if model != "" {
			key := PoolKey{Phone: row.Phone, Model: model}
			if drawn, ok := alloc.Draw(key); ok {
				enriched.AssignedInvoiceNumber = drawn.InvoiceNumber
				enriched.AssignedItemRate = drawn.ItemRate
				enriched.AssignedSerial = drawn.Serial
			} else {
				out.Exhausted++
			}
			if category, brand, ok := index.Attributes(key); ok {
				enriched.AssignedCategory = category
				enriched.AssignedBrand = brand
			}
		}

		enriched.ManufacturerWarranty, enriched.ExtendedDuration = ParseDuration(row.RetailerSKU)
		out.Rows = append(out.Rows, enriched)
	}
	return out
}
