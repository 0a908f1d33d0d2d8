package matching

import (
	"strings"

	"osg-reconciler/internal/domain"
)

// NormalizePhone renders a phone cell in the string form both sheets are
// joined on: surrounding whitespace trimmed and a spreadsheet ".0" suffix dropped.
func NormalizePhone(raw string) string {
	phone := strings.TrimSpace(strings.ReplaceAll(raw, "\u00a0", " "))
	return strings.TrimSuffix(phone, ".0")
}

// NormalizePurchases returns a copy of records with upper-cased categories and
// phones and invoice numbers in their joinable string form.
func NormalizePurchases(records []domain.PurchaseRecord) []domain.PurchaseRecord {
	out := make([]domain.PurchaseRecord, len(records))
	for i, rec := range records {
		rec.Phone = NormalizePhone(rec.Phone)
		rec.Category = strings.ToUpper(strings.TrimSpace(rec.Category))
		rec.InvoiceNumber = strings.TrimSpace(rec.InvoiceNumber)
		rec.Model = strings.TrimSpace(rec.Model)
		out[i] = rec
	}
	return out
}

func normalizeWarranty(row domain.WarrantyRow) domain.WarrantyRow {
	row.Phone = NormalizePhone(row.Phone)
	row.InvoiceNumber = strings.TrimSpace(row.InvoiceNumber)
	return row
}
