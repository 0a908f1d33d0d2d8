package gateway

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"osg-reconciler/internal/domain"
)

// readCSVTable reads a comma separated sheet whose first record is the header.
func readCSVTable(path string) (*sheetTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s has no header row", domain.ErrMalformedSource, path)
		}
		return nil, fmt.Errorf("%w: failed to read header from %s: %v", domain.ErrMalformedSource, path, err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: error reading record from %s: %v", domain.ErrMalformedSource, path, err)
		}
		rows = append(rows, record)
	}
	return newSheetTable(header, rows, rows), nil
}
