package gateway

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"osg-reconciler/internal/domain"
)

// readXLSXTable reads the first worksheet of a workbook. Cells are read twice:
// formatted for pass-through columns and raw so that phone numbers and amounts
// are not mangled by number formats.
func readXLSXTable(path string) (*sheetTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to open Excel file %s: %v", domain.ErrMalformedSource, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no worksheets", domain.ErrMalformedSource, path)
	}
	sheet := sheets[0]

	formatted, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read sheet %q of %s: %v", domain.ErrMalformedSource, sheet, path, err)
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read sheet %q of %s: %v", domain.ErrMalformedSource, sheet, path, err)
	}
	if len(formatted) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", domain.ErrMalformedSource, path)
	}

	var rawBody [][]string
	if len(raw) > 1 {
		rawBody = raw[1:]
	}
	return newSheetTable(formatted[0], formatted[1:], rawBody), nil
}
