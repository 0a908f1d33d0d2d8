package gateway

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/xuri/excelize/v2"

	"osg-reconciler/internal/domain"
)

const (
	reportSheet  = "Sheet1"
	summarySheet = "Summary"
)

// derivedColumns are appended after the registration columns when the source
// sheet does not already carry them.
var derivedColumns = []string{
	"Model", "Category", "Brand", "Product Invoice Number", "Item Rate", "IMEI",
}

// finalColumns is the layout downstream consumers expect. Columns missing from
// the source are added empty, except the ones reconciliation fills in.
var finalColumns = []string{
	"Customer Mobile", "Date", "Invoice Number", "Product Invoice Number", "Customer Name",
	"Store Code", "Branch", "Region", "IMEI", "Category", "Brand", "Quantity", "Item Code",
	"Model", "Plan Type", "EWS QTY", "Item Rate", "Plan Price", "Sold Price", "Email",
	"Product Count", "Manufacturer Warranty", "Retailer SKU", "OnsiteGo SKU",
	"Duration (Year)", "Total Coverage", "Comment", "Return Flag", "Return against invoice No.",
	"Primary Invoice No.", "RBM",
}

// WorkbookWriter renders a reconciliation report as an xlsx workbook.
type WorkbookWriter struct{}

func NewWorkbookWriter() *WorkbookWriter {
	return &WorkbookWriter{}
}

// ReportColumns returns the output header order for the given source headers.
func ReportColumns(source []string) []string {
	cols := make([]string, 0, len(source)+len(finalColumns))
	seen := make(map[string]bool, cap(cols))
	add := func(h string) {
		if h == "" || seen[h] {
			return
		}
		seen[h] = true
		cols = append(cols, h)
	}
	for _, h := range source {
		add(h)
	}
	for _, h := range derivedColumns {
		add(h)
	}
	for _, h := range finalColumns {
		add(h)
	}
	return cols
}

// Write streams the workbook to w.
func (ww *WorkbookWriter) Write(w io.Writer, report *domain.ReconciliationReport) error {
	f, err := ww.build(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteFile saves the workbook at path.
func (ww *WorkbookWriter) WriteFile(path string, report *domain.ReconciliationReport) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := ww.Write(out, report); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (ww *WorkbookWriter) build(report *domain.ReconciliationReport) (*excelize.File, error) {
	f := excelize.NewFile()

	cols := ReportColumns(report.Headers)
	if err := setRow(f, reportSheet, 1, stringsToCells(cols)); err != nil {
		f.Close()
		return nil, err
	}
	for i, row := range report.Rows {
		values := make([]interface{}, len(cols))
		for c, h := range cols {
			values[c] = reportValue(row, h)
		}
		if err := setRow(f, reportSheet, i+2, values); err != nil {
			f.Close()
			return nil, err
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to add summary sheet: %w", err)
	}
	for i, line := range summaryLines(report.Summary) {
		if err := setRow(f, summarySheet, i+1, line); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

// reportValue picks the cell for header h: reconciled values first, then the
// registration sheet's own cell.
func reportValue(row domain.EnrichedRow, h string) interface{} {
	switch h {
	case "Customer Mobile":
		return row.Phone
	case "Model":
		return row.ResolvedModel
	case "Category":
		return row.AssignedCategory
	case "Brand":
		return row.AssignedBrand
	case "Product Invoice Number":
		return row.AssignedInvoiceNumber
	case "Item Rate":
		if !row.AssignedItemRate.Valid {
			return ""
		}
		return row.AssignedItemRate.Decimal.InexactFloat64()
	case "IMEI":
		return row.AssignedSerial
	case "Manufacturer Warranty":
		return row.ManufacturerWarranty.Value()
	case "Duration (Year)":
		return row.ExtendedDuration.Value()
	case "Quantity", "EWS QTY":
		return 1
	case "Store Code":
		return row.StoreCode
	case "Branch":
		return row.Branch
	case "Region":
		return row.Region
	case "RBM":
		return row.RBM
	}
	return row.Fields[h]
}

func summaryLines(s domain.Summary) [][]interface{} {
	lines := [][]interface{}{
		{"Run ID", s.RunID},
		{"Warranty rows", s.TotalWarrantyRows},
		{"Purchase rows", s.TotalPurchaseRows},
		{"Resolved rows", s.ResolvedRows},
		{"Unresolved rows", s.UnresolvedRows},
		{"Exhausted allocations", s.ExhaustedAllocations},
		{"Incomplete rows", s.IncompleteRows},
		{"Stores from master data", s.StoresFromMaster},
		{},
		{"Resolution step", "Rows"},
	}
	for _, step := range []domain.Resolution{
		domain.ResolutionNoHistory,
		domain.ResolutionSingleModel,
		domain.ResolutionCategory,
		domain.ResolutionSlab,
		domain.ResolutionInvoice,
		domain.ResolutionUnresolved,
	} {
		lines = append(lines, []interface{}{string(step), s.ResolutionSteps[step]})
	}

	lines = append(lines, []interface{}{}, []interface{}{"Category", "Rows"})
	lines = append(lines, countLines(s.RowsByCategory)...)
	lines = append(lines, []interface{}{}, []interface{}{"Brand", "Rows"})
	lines = append(lines, countLines(s.RowsByBrand)...)
	return lines
}

func countLines(counts map[string]int) [][]interface{} {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([][]interface{}, len(keys))
	for i, k := range keys {
		lines[i] = []interface{}{k, counts[k]}
	}
	return lines
}

func stringsToCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
