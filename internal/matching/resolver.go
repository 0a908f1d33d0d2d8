package matching

import (
	"slices"
	"strings"

	"osg-reconciler/internal/domain"
)

// Resolve picks the purchased model a warranty row refers to from the
// customer's purchase history. purchases must already be restricted to the
// row's phone. The cascade narrows by category, then price slab, then the
// plan's invoice number, and gives up rather than guess: any ambiguity left
// after the last step yields "" with ResolutionUnresolved.
//
// A customer with a single purchased model always gets that model, whatever
// the SKU text says.
func Resolve(row domain.WarrantyRow, purchases []domain.PurchaseRecord) (string, domain.Resolution) {
	if len(purchases) == 0 {
		return "", domain.ResolutionNoHistory
	}

	if models := distinctModels(purchases); len(models) == 1 {
		return models[0], domain.ResolutionSingleModel
	}

	candidates := purchases
	if keywords := Classify(row.RetailerSKU); len(keywords) > 0 {
		candidates = filterRecords(candidates, func(rec domain.PurchaseRecord) bool {
			return slices.Contains(keywords, strings.ToLower(rec.Category))
		})
		if model, ok := uniqueModel(candidates); ok {
			return model, domain.ResolutionCategory
		}
	}

	if slab, ok := ParseSlab(row.RetailerSKU); ok {
		candidates = filterRecords(candidates, func(rec domain.PurchaseRecord) bool {
			return slab.Contains(rec.ItemRate)
		})
		if model, ok := uniqueModel(candidates); ok {
			return model, domain.ResolutionSlab
		}
	}

	if row.InvoiceNumber != "" {
		candidates = filterRecords(candidates, func(rec domain.PurchaseRecord) bool {
			return rec.InvoiceNumber == row.InvoiceNumber
		})
		if model, ok := uniqueModel(candidates); ok {
			return model, domain.ResolutionInvoice
		}
	}

	return "", domain.ResolutionUnresolved
}

// distinctModels lists the non-empty models in order of first appearance.
func distinctModels(records []domain.PurchaseRecord) []string {
	seen := make(map[string]bool)
	var models []string
	for _, rec := range records {
		if rec.Model == "" || seen[rec.Model] {
			continue
		}
		seen[rec.Model] = true
		models = append(models, rec.Model)
	}
	return models
}

func uniqueModel(records []domain.PurchaseRecord) (string, bool) {
	if len(records) == 0 {
		return "", false
	}
	models := distinctModels(records)
	if len(models) != 1 {
		return "", false
	}
	return models[0], true
}

func filterRecords(records []domain.PurchaseRecord, keep func(domain.PurchaseRecord) bool) []domain.PurchaseRecord {
	var out []domain.PurchaseRecord
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}
