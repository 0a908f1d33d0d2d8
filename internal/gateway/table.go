package gateway

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"osg-reconciler/internal/domain"
)

var spaceRun = regexp.MustCompile(`\s+`)

// sheetTable is a header plus data rows, independent of the file format.
type sheetTable struct {
	headers []string
	columns map[string]int // normalized header -> index
	rows    [][]string
	raw     [][]string
}

func newSheetTable(headers []string, rows, raw [][]string) *sheetTable {
	t := &sheetTable{
		headers: make([]string, len(headers)),
		columns: make(map[string]int, len(headers)),
	}
	for i, h := range headers {
		t.headers[i] = strings.TrimSpace(h)
		key := normalizeHeader(h)
		if _, exists := t.columns[key]; !exists && key != "" {
			t.columns[key] = i
		}
	}
	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}
		t.rows = append(t.rows, row)
		if i < len(raw) {
			t.raw = append(t.raw, raw[i])
		} else {
			t.raw = append(t.raw, row)
		}
	}
	return t
}

// readTable dispatches on the file extension.
func readTable(path string) (*sheetTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readXLSXTable(path)
	case ".csv":
		return readCSVTable(path)
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q", domain.ErrMalformedSource, filepath.Ext(path))
	}
}

// normalizeHeader lower-cases a header and collapses whitespace, including
// non-breaking spaces.
func normalizeHeader(h string) string {
	h = strings.ReplaceAll(h, "\u00a0", " ")
	return spaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(h)), " ")
}

// column returns the index of the first variant present in the header, or -1.
func (t *sheetTable) column(variants ...string) int {
	for _, v := range variants {
		if i, ok := t.columns[normalizeHeader(v)]; ok {
			return i
		}
	}
	return -1
}

// cell returns the formatted value of row r at column c; missing columns and
// short rows read as "".
func (t *sheetTable) cell(r, c int) string {
	return cellAt(t.rows[r], c)
}

// rawCell is like cell but returns the unformatted value.
func (t *sheetTable) rawCell(r, c int) string {
	return cellAt(t.raw[r], c)
}

// fields maps every original header of row r to its formatted value.
func (t *sheetTable) fields(r int) map[string]string {
	out := make(map[string]string, len(t.headers))
	for i, h := range t.headers {
		if h == "" {
			continue
		}
		out[h] = cellAt(t.rows[r], i)
	}
	return out
}

func cellAt(row []string, c int) string {
	if c < 0 || c >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[c])
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
