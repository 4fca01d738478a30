package service

import (
	"bytes"
	"testing"
	"time"

	"go-traceability/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newReportService() (ReportService, *MockCodeRepo, *MockBatchRepo, *MockFactoryRepo, *MockStockRepo) {
	codes := new(MockCodeRepo)
	batches := new(MockBatchRepo)
	factories := new(MockFactoryRepo)
	stocks := new(MockStockRepo)
	svc := NewReportService(codes, batches, factories, stocks)
	return svc, codes, batches, factories, stocks
}

func sheetRows(t *testing.T, content []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	return rows
}

func TestExportProductCode(t *testing.T) {
	svc, codes, _, _, _ := newReportService()

	id := uuid.New()
	code := &model.ProductCode{
		ProductID:     "P1",
		BatchID:       "B1",
		TotalCodes:    100,
		MappedCodes:   90,
		UnmappedCodes: 10,
		Product:       &model.Product{ID: "P1", Name: "Widget", SKUID: "SKU1"},
		Batch:         &model.Batch{ID: "B1", BatchNo: "B-01"},
	}
	code.ID = id
	codes.On("FindProductCodeByID", id).Return(code, nil)

	filename, content, err := svc.ExportProductCode(id)
	require.NoError(t, err)
	require.Equal(t, "product_codes_"+id.String()+".xlsx", filename)

	rows := sheetRows(t, content)
	require.Len(t, rows, 2)
	require.Equal(t, []string{"Product Name", "SKU ID", "Batch No", "Total Codes", "Mapped Codes", "Unmapped Codes"}, rows[0])
	require.Equal(t, []string{"Widget", "SKU1", "B-01", "100", "90", "10"}, rows[1])
}

func TestExportProductCodeMissingAssociations(t *testing.T) {
	svc, codes, _, _, _ := newReportService()

	id := uuid.New()
	codes.On("FindProductCodeByID", id).Return(&model.ProductCode{TotalCodes: 5, MappedCodes: 5}, nil)

	_, content, err := svc.ExportProductCode(id)
	require.NoError(t, err)

	rows := sheetRows(t, content)
	require.Equal(t, "N/A", rows[1][0])
	require.Equal(t, "N/A", rows[1][1])
	require.Equal(t, "N/A", rows[1][2])
}

func TestExportBatchStock(t *testing.T) {
	svc, _, batches, _, stocks := newReportService()

	batch := &model.Batch{
		ID:         "B1",
		BatchNo:    "B-01",
		MfgDate:    time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		ExpiryDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		QAStatus:   model.QAStatusOK,
	}
	batches.On("FindByID", "B1").Return(batch, nil)
	stocks.On("FindByBatch", "B1").Return([]model.Stock{
		{
			Units:     120,
			BinStatus: model.BinStatusOK,
			Product:   &model.Product{Name: "Widget", SKUID: "SKU1"},
			Factory:   &model.Factory{Name: "Plant A"},
		},
	}, nil)

	filename, content, err := svc.ExportBatchStock("B1")
	require.NoError(t, err)
	require.Equal(t, "batch_stock_B1.xlsx", filename)

	rows := sheetRows(t, content)
	require.Len(t, rows, 2)
	require.Equal(t, []string{"B-01", "Widget", "SKU1", "120", "OK", "Plant A", "05-01-2024", "05-01-2025", "OK"}, rows[1])
}
