package gateway

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"osg-reconciler/internal/domain"
)

// Header variants accepted for each logical column, in priority order.
var (
	phoneHeaders       = []string{"Customer Mobile", "Mobile No", "Mobile", "Mobile_No", "Mobile No RF"}
	modelHeaders       = []string{"Model"}
	categoryHeaders    = []string{"Category"}
	brandHeaders       = []string{"Brand"}
	invoiceHeaders     = []string{"Invoice Number", "Invoice No", "Invoice No.", "Invoice"}
	itemRateHeaders    = []string{"Item Rate"}
	serialHeaders      = []string{"IMEI", "Serial No", "Serial Number", "Serial"}
	retailerSKUHeaders = []string{"Retailer SKU"}
	storeCodeHeaders   = []string{"Store Code", "Code"}
	branchHeaders      = []string{"Branch"}
	regionHeaders      = []string{"Region"}
	nameHeaders        = []string{"Name", "Customer Name", "Customer"}
	osidHeaders        = []string{"OSID", "OS ID", "OSID No"}
	storeNameHeaders   = []string{"Store", "Store Name", "StoreName", "Branch", "Branch Name", "BranchName"}
	rbmHeaders         = []string{"RBM", "RBM Name", "RBMName", "Manager", "Regional Manager", "RM"}
)

// SheetRepository reads every spreadsheet the service consumes, in xlsx or csv form.
// It implements the usecase source, store and customer repositories.
type SheetRepository struct{}

// NewSheetRepository creates a new repository instance.
func NewSheetRepository() *SheetRepository {
	return &SheetRepository{}
}

// GetWarrantyRows reads the OSG warranty registration sheet.
func (r *SheetRepository) GetWarrantyRows(ctx context.Context, path string) (*domain.WarrantyTable, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	var (
		phone   = t.column(phoneHeaders...)
		sku     = t.column(retailerSKUHeaders...)
		invoice = t.column(invoiceHeaders...)
		store   = t.column(storeCodeHeaders...)
		branch  = t.column(branchHeaders...)
		region  = t.column(regionHeaders...)
	)

	table := &domain.WarrantyTable{
		Headers: t.headers,
		Rows:    make([]domain.WarrantyRow, 0, len(t.rows)),
	}
	for i := range t.rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, domain.WarrantyRow{
			Phone:         t.rawCell(i, phone),
			RetailerSKU:   t.cell(i, sku),
			InvoiceNumber: t.rawCell(i, invoice),
			StoreCode:     t.cell(i, store),
			Branch:        t.cell(i, branch),
			Region:        t.cell(i, region),
			Fields:        t.fields(i),
		})
	}
	return table, nil
}

// GetPurchaseRecords reads the product purchase history sheet. Missing columns
// read as empty and an unparseable item rate is treated as absent.
func (r *SheetRepository) GetPurchaseRecords(ctx context.Context, path string) ([]domain.PurchaseRecord, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	var (
		phone    = t.column(phoneHeaders...)
		model    = t.column(modelHeaders...)
		category = t.column(categoryHeaders...)
		brand    = t.column(brandHeaders...)
		invoice  = t.column(invoiceHeaders...)
		itemRate = t.column(itemRateHeaders...)
		serial   = t.column(serialHeaders...)
	)

	records := make([]domain.PurchaseRecord, 0, len(t.rows))
	for i := range t.rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records = append(records, domain.PurchaseRecord{
			Phone:         t.rawCell(i, phone),
			Model:         t.cell(i, model),
			Category:      t.cell(i, category),
			Brand:         t.cell(i, brand),
			InvoiceNumber: t.rawCell(i, invoice),
			ItemRate:      parseAmount(t.rawCell(i, itemRate)),
			Serial:        t.rawCell(i, serial),
		})
	}
	return records, nil
}

// GetStores reads the store / RBM master sheet. A sheet without a store column
// or an RBM column is rejected.
func (r *SheetRepository) GetStores(ctx context.Context, path string) ([]domain.Store, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	name := t.column(storeNameHeaders...)
	rbm := t.column(rbmHeaders...)
	if name < 0 || rbm < 0 {
		return nil, fmt.Errorf("%w: %s needs a Store (or Branch) column and an RBM column, found %v",
			domain.ErrMalformedSource, path, t.headers)
	}
	code := t.column(storeCodeHeaders...)
	branch := t.column(branchHeaders...)
	region := t.column(regionHeaders...)

	stores := make([]domain.Store, 0, len(t.rows))
	for i := range t.rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s := domain.Store{
			Code:   t.rawCell(i, code),
			Name:   t.cell(i, name),
			Branch: t.cell(i, branch),
			Region: t.cell(i, region),
			RBM:    t.cell(i, rbm),
		}
		if s.Branch == "" {
			s.Branch = s.Name
		}
		stores = append(stores, s)
	}
	return stores, nil
}

// GetCustomerRows reads the OSID workbook used for claim lookups.
func (r *SheetRepository) GetCustomerRows(ctx context.Context, path string) ([]domain.CustomerSheetRow, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	phone := t.column(phoneHeaders...)
	if phone < 0 {
		return nil, fmt.Errorf("%w: %s has no mobile number column", domain.ErrMalformedSource, path)
	}
	var (
		name    = t.column(nameHeaders...)
		invoice = t.column(invoiceHeaders...)
		model   = t.column(modelHeaders...)
		serial  = t.column(serialHeaders...)
		osid    = t.column(osidHeaders...)
	)

	rows := make([]domain.CustomerSheetRow, 0, len(t.rows))
	for i := range t.rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows = append(rows, domain.CustomerSheetRow{
			Phone:   t.rawCell(i, phone),
			Name:    t.cell(i, name),
			Invoice: t.rawCell(i, invoice),
			Model:   t.cell(i, model),
			Serial:  t.rawCell(i, serial),
			OSID:    t.rawCell(i, osid),
		})
	}
	return rows, nil
}

// ModTime reports when path was last modified.
func (r *SheetRepository) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// parseAmount reads a money cell. Thousands separators are accepted; anything
// else that does not parse yields an invalid (absent) value.
func parseAmount(v string) decimal.NullDecimal {
	v = strings.ReplaceAll(strings.TrimSpace(v), ",", "")
	if v == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
