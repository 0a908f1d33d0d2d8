package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// PurchaseRecord is one row of the customer's purchase history. Each record is a
// distinct unit that can be handed to at most one warranty row.
type PurchaseRecord struct {
	Phone         string              `json:"phone"`
	Model         string              `json:"model"`
	Category      string              `json:"category"`
	Brand         string              `json:"brand"`
	InvoiceNumber string              `json:"invoice_number"`
	ItemRate      decimal.NullDecimal `json:"item_rate"`
	Serial        string              `json:"serial"`
}

// WarrantyRow is one sold warranty plan from the OSG registration sheet.
type WarrantyRow struct {
	Phone         string `json:"phone"`
	RetailerSKU   string `json:"retailer_sku"`
	InvoiceNumber string `json:"invoice_number"` // the plan's own invoice, not the product's
	StoreCode     string `json:"store_code"`
	Branch        string `json:"branch"`
	Region        string `json:"region"`

	// Fields keeps every source cell keyed by its original header so the output
	// sheet can carry the registration columns through untouched.
	Fields map[string]string `json:"-"`
}

// WarrantyTable is the parsed registration sheet with its header order.
type WarrantyTable struct {
	Headers []string
	Rows    []WarrantyRow
}

// Resolution names the step of the model cascade that settled a row.
type Resolution string

const (
	ResolutionNoHistory   Resolution = "no_history"
	ResolutionSingleModel Resolution = "single_model"
	ResolutionCategory    Resolution = "category"
	ResolutionSlab        Resolution = "slab"
	ResolutionInvoice     Resolution = "invoice"
	ResolutionUnresolved  Resolution = "unresolved"
)

// Coverage is a duration figure read from SKU text. Most patterns give a year
// count; the SDP pattern gives a label such as "5P+4W".
type Coverage struct {
	Years int    `json:"years,omitempty"`
	Label string `json:"label,omitempty"`
	Set   bool   `json:"set"`
}

func YearsCoverage(years int) Coverage { return Coverage{Years: years, Set: true} }

func LabelCoverage(label string) Coverage { return Coverage{Label: label, Set: true} }

// Value returns the int years, the label, or "" for an empty coverage.
func (c Coverage) Value() any {
	switch {
	case !c.Set:
		return ""
	case c.Label != "":
		return c.Label
	default:
		return c.Years
	}
}

func (c Coverage) String() string {
	switch {
	case !c.Set:
		return ""
	case c.Label != "":
		return c.Label
	default:
		return strconv.Itoa(c.Years)
	}
}

// EnrichedRow is a warranty row after reconciliation. Unresolved rows keep
// the model and allocation fields empty.
type EnrichedRow struct {
	WarrantyRow

	ResolvedModel         string              `json:"resolved_model"`
	Resolution            Resolution          `json:"resolution"`
	AssignedInvoiceNumber string              `json:"assigned_invoice_number"`
	AssignedItemRate      decimal.NullDecimal `json:"assigned_item_rate"`
	AssignedSerial        string              `json:"assigned_serial"`
	AssignedCategory      string              `json:"assigned_category"`
	AssignedBrand         string              `json:"assigned_brand"`
	ManufacturerWarranty  Coverage            `json:"manufacturer_warranty"`
	ExtendedDuration      Coverage            `json:"extended_duration"`
	RBM                   string              `json:"rbm,omitempty"`
}

// ItemRateText renders the assigned rate or "" when none was drawn.
func (r EnrichedRow) ItemRateText() string {
	if !r.AssignedItemRate.Valid {
		return ""
	}
	return r.AssignedItemRate.Decimal.String()
}

// Incomplete reports rows a reviewer has to look at: no model, no serial or a
// negative item rate.
func (r EnrichedRow) Incomplete() bool {
	if r.ResolvedModel == "" || r.AssignedSerial == "" {
		return true
	}
	return r.AssignedItemRate.Valid && r.AssignedItemRate.Decimal.IsNegative()
}
