package gateway

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"osg-reconciler/internal/domain"
)

func TestSheetRepository_GetPurchaseRecords(t *testing.T) {
	tests := []struct {
		name     string
		csvData  [][]string
		expected []domain.PurchaseRecord
	}{
		{
			name: "valid purchase history",
			csvData: [][]string{
				{"Customer Mobile", "Model", "Category", "Brand", "Invoice Number", "Item Rate", "IMEI"},
				{"9847012345", "OLED55", "tv", "LG", "P1", "89,990", "SN1"},
				{"", "", "", "", "", "", ""},
				{"9847012346", "AC15", "AC", "Voltas", "P2", "n/a", "SN2"},
			},
			expected: []domain.PurchaseRecord{
				{
					Phone:         "9847012345",
					Model:         "OLED55",
					Category:      "tv",
					Brand:         "LG",
					InvoiceNumber: "P1",
					ItemRate:      decimal.NewNullDecimal(decimal.RequireFromString("89990")),
					Serial:        "SN1",
				},
				{
					Phone:         "9847012346",
					Model:         "AC15",
					Category:      "AC",
					Brand:         "Voltas",
					InvoiceNumber: "P2",
					Serial:        "SN2",
				},
			},
		},
		{
			name: "header variants and missing columns",
			csvData: [][]string{
				{" Mobile No ", "MODEL", "Invoice No", "Serial No"},
				{"9847012345", "GL-T292", "P9", "SN9"},
			},
			expected: []domain.PurchaseRecord{
				{Phone: "9847012345", Model: "GL-T292", InvoiceNumber: "P9", Serial: "SN9"},
			},
		},
		{
			name: "empty file with header only",
			csvData: [][]string{
				{"Customer Mobile", "Model"},
			},
			expected: []domain.PurchaseRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile, err := createTempCSV(tt.csvData)
			if err != nil {
				t.Fatalf("Failed to create temp CSV file: %v", err)
			}
			defer os.Remove(tmpFile)

			repo := NewSheetRepository()
			got, err := repo.GetPurchaseRecords(context.Background(), tmpFile)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSheetRepository_FileErrors(t *testing.T) {
	repo := NewSheetRepository()
	ctx := context.Background()

	t.Run("file not found", func(t *testing.T) {
		_, err := repo.GetPurchaseRecords(ctx, "nonexistent_file.csv")
		assert.Error(t, err)
	})

	t.Run("file with no header", func(t *testing.T) {
		tmpFile, err := os.CreateTemp("", "empty_*.csv")
		if err != nil {
			t.Fatalf("Failed to create temp file: %v", err)
		}
		defer os.Remove(tmpFile.Name())
		tmpFile.Close()

		_, err = repo.GetWarrantyRows(ctx, tmpFile.Name())
		assert.ErrorIs(t, err, domain.ErrMalformedSource)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := repo.GetWarrantyRows(ctx, "registrations.txt")
		assert.ErrorIs(t, err, domain.ErrMalformedSource)
	})

	t.Run("corrupt workbook", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o600))

		_, err := repo.GetPurchaseRecords(ctx, path)
		assert.ErrorIs(t, err, domain.ErrMalformedSource)
	})
}

func TestSheetRepository_GetWarrantyRows_XLSX(t *testing.T) {
	path := createTempXLSX(t, [][]interface{}{
		{"Customer Mobile", "Date", "Retailer SKU", "Invoice Number", "Store Code", "Branch", "Region", "Plan Price"},
		{9847012345, "2024-03-01", "HAEW : Warranty : TV Dur : 1+2", "W1", "S01", "Calicut", "North", 2999},
		{9847012346, "2024-03-02", "AC : EWP : Warranty : AC Dur : 3", 40051, "S02", "", "", 1499},
	})

	got, err := NewSheetRepository().GetWarrantyRows(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Customer Mobile", "Date", "Retailer SKU", "Invoice Number", "Store Code", "Branch", "Region", "Plan Price"}, got.Headers)
	require.Len(t, got.Rows, 2)

	first := got.Rows[0]
	assert.Equal(t, "9847012345", first.Phone)
	assert.Equal(t, "HAEW : Warranty : TV Dur : 1+2", first.RetailerSKU)
	assert.Equal(t, "W1", first.InvoiceNumber)
	assert.Equal(t, "S01", first.StoreCode)
	assert.Equal(t, "Calicut", first.Branch)
	assert.Equal(t, "North", first.Region)
	assert.Equal(t, "2024-03-01", first.Fields["Date"])
	assert.Equal(t, "2999", first.Fields["Plan Price"])

	second := got.Rows[1]
	assert.Equal(t, "9847012346", second.Phone)
	assert.Equal(t, "40051", second.InvoiceNumber)
	assert.Empty(t, second.Branch)
}

func TestSheetRepository_GetPurchaseRecords_XLSX(t *testing.T) {
	path := createTempXLSX(t, [][]interface{}{
		{"Customer Mobile", "Model", "Category", "Brand", "Invoice Number", "Item Rate", "IMEI"},
		{9847012345, "GL-T292", "REFRIGERATOR", "LG", "P2", 25000.5, "SN2"},
	})

	got, err := NewSheetRepository().GetPurchaseRecords(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "9847012345", got[0].Phone)
	assert.Equal(t, "GL-T292", got[0].Model)
	require.True(t, got[0].ItemRate.Valid)
	assert.True(t, decimal.RequireFromString("25000.5").Equal(got[0].ItemRate.Decimal))
}

func TestSheetRepository_GetStores(t *testing.T) {
	ctx := context.Background()
	repo := NewSheetRepository()

	t.Run("name and manager variants", func(t *testing.T) {
		tmpFile, err := createTempCSV([][]string{
			{"Store Code", "Store Name", "Region", "Regional Manager"},
			{"S01", "myG Calicut", "North", "Anil"},
			{"S02", "myG Kochi", "Central", "Divya"},
		})
		require.NoError(t, err)
		defer os.Remove(tmpFile)

		got, err := repo.GetStores(ctx, tmpFile)
		require.NoError(t, err)
		assert.Equal(t, []domain.Store{
			{Code: "S01", Name: "myG Calicut", Branch: "myG Calicut", Region: "North", RBM: "Anil"},
			{Code: "S02", Name: "myG Kochi", Branch: "myG Kochi", Region: "Central", RBM: "Divya"},
		}, got)
	})

	t.Run("missing rbm column", func(t *testing.T) {
		tmpFile, err := createTempCSV([][]string{
			{"Store", "Region"},
			{"myG Kochi", "Central"},
		})
		require.NoError(t, err)
		defer os.Remove(tmpFile)

		_, err = repo.GetStores(ctx, tmpFile)
		assert.ErrorIs(t, err, domain.ErrMalformedSource)
	})
}

func TestSheetRepository_GetCustomerRows(t *testing.T) {
	ctx := context.Background()
	repo := NewSheetRepository()

	t.Run("osid workbook", func(t *testing.T) {
		path := createTempXLSX(t, [][]interface{}{
			{"Mobile No", "Customer Name", "Invoice No", "Model", "Serial No", "OSID"},
			{9847012345, "Asha", "INV1", "OLED55", "SN1", "OS1"},
		})

		got, err := repo.GetCustomerRows(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, []domain.CustomerSheetRow{
			{Phone: "9847012345", Name: "Asha", Invoice: "INV1", Model: "OLED55", Serial: "SN1", OSID: "OS1"},
		}, got)
	})

	t.Run("no mobile column", func(t *testing.T) {
		tmpFile, err := createTempCSV([][]string{{"Name", "OSID"}, {"Asha", "OS1"}})
		require.NoError(t, err)
		defer os.Remove(tmpFile)

		_, err = repo.GetCustomerRows(ctx, tmpFile)
		assert.ErrorIs(t, err, domain.ErrMalformedSource)
	})
}

func TestSheetRepository_ModTime(t *testing.T) {
	repo := NewSheetRepository()

	path := filepath.Join(t.TempDir(), "osid.csv")
	require.NoError(t, os.WriteFile(path, []byte("Mobile No\n"), 0o600))
	stamp := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	got, err := repo.ModTime(path)
	require.NoError(t, err)
	assert.True(t, stamp.Equal(got))

	_, err = repo.ModTime(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in        string
		wantValid bool
		want      string
	}{
		{"1,25,000", true, "125000"},
		{" 499.50 ", true, "499.5"},
		{"-1", true, "-1"},
		{"", false, ""},
		{"N/A", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parseAmount(tt.in)
			assert.Equal(t, tt.wantValid, got.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.want, got.Decimal.String())
			}
		})
	}
}

func createTempCSV(data [][]string) (string, error) {
	tmpFile, err := os.CreateTemp("", "test_*.csv")
	if err != nil {
		return "", err
	}

	writer := csv.NewWriter(tmpFile)
	for _, record := range data {
		if err := writer.Write(record); err != nil {
			tmpFile.Close()
			os.Remove(tmpFile.Name())
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", err
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return "", err
	}
	return tmpFile.Name(), nil
}

func createTempXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &values))
	}

	path := filepath.Join(t.TempDir(), "sheet.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
