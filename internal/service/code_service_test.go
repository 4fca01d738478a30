package service

import (
	"testing"
	"time"

	"go-traceability/internal/model"
	"go-traceability/internal/ws"
	"go-traceability/pkg/config"
	"go-traceability/pkg/qr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type codeServiceMocks struct {
	products *MockProductRepo
	batches  *MockBatchRepo
	codes    *MockCodeRepo
	shippers *MockShipperRepo
}

func newCodeService(pick config.BatchPick) (CodeService, *codeServiceMocks) {
	m := &codeServiceMocks{
		products: new(MockProductRepo),
		batches:  new(MockBatchRepo),
		codes:    new(MockCodeRepo),
		shippers: new(MockShipperRepo),
	}
	svc := NewCodeService(m.products, m.batches, m.codes, m.shippers,
		qr.NewCodec("https://trace.example.com"), ws.NewHub(), pick)
	return svc, m
}

func sampleProduct(id, name, sku string) *model.Product {
	return &model.Product{ID: id, Name: name, SKUID: sku, MRP: 10}
}

func sampleBatch(id, productID string) *model.Batch {
	return &model.Batch{
		ID:         id,
		BatchNo:    "B-" + id,
		ProductID:  productID,
		FactoryID:  "FAC1",
		MfgDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ExpiryDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		QAStatus:   model.QAStatusOK,
	}
}

func TestGenerateProductCodesComputesCounts(t *testing.T) {
	svc, m := newCodeService(config.BatchPickOldest)

	m.products.On("FindByID", "P1").Return(sampleProduct("P1", "Widget", "SKU1"), nil)
	m.batches.On("FindByID", "B1").Return(sampleBatch("B1", "P1"), nil)
	m.codes.On("CreateProductCode", mock.AnythingOfType("*model.ProductCode")).Return(nil)

	code, err := svc.GenerateProductCodes(&GenerateProductCodesRequest{
		ProductID:           "P1",
		BatchID:             "B1",
		Quantity:            100,
		RejectionPercentage: 10,
	}, "tester")
	require.NoError(t, err)
	require.Equal(t, 100, code.TotalCodes)
	require.Equal(t, 90, code.MappedCodes)
	require.Equal(t, 10, code.UnmappedCodes)
	require.Contains(t, code.QRCode, "https://trace.example.com/scan?data=")
	require.Equal(t, "tester", code.CreatedBy)

	m.codes.AssertExpectations(t)
}

func TestGenerateProductCodesRejectsPercentageAboveHundred(t *testing.T) {
	svc, m := newCodeService(config.BatchPickOldest)

	_, err := svc.GenerateProductCodes(&GenerateProductCodesRequest{
		ProductID:           "P1",
		BatchID:             "B1",
		Quantity:            100,
		RejectionPercentage: 150,
	}, "tester")
	require.Error(t, err)

	m.codes.AssertNotCalled(t, "CreateProductCode", mock.Anything)
}

func TestGenerateProductCodesUnknownBatch(t *testing.T) {
	svc, m := newCodeService(config.BatchPickOldest)

	m.products.On("FindByID", "P1").Return(sampleProduct("P1", "Widget", "SKU1"), nil)
	m.batches.On("FindByID", "B404").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GenerateProductCodes(&GenerateProductCodesRequest{
		ProductID:           "P1",
		BatchID:             "B404",
		Quantity:            10,
		RejectionPercentage: 0,
	}, "tester")
	require.EqualError(t, err, "batch not found")
}

func TestGenerateShipperCodeAggregatesTotals(t *testing.T) {
	svc, m := newCodeService(config.BatchPickOldest)

	m.products.On("FindByID", "P1").Return(sampleProduct("P1", "Widget", "SKU1"), nil)
	m.products.On("FindByID", "P2").Return(sampleProduct("P2", "Gadget", "SKU2"), nil)
	m.batches.On("FindByID", "B1").Return(sampleBatch("B1", "P1"), nil)
	m.batches.On("FindByID", "B2").Return(sampleBatch("B2", "P2"), nil)

	var created *model.ShipperCode
	var createdEntries []model.ShipperProduct
	m.shippers.On("CreateWithProducts", mock.AnythingOfType("*model.ShipperCode"), mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*model.ShipperCode)
			createdEntries = args.Get(1).([]model.ShipperProduct)
		}).Return(nil)

	shipper, err := svc.GenerateShipperCode(&GenerateShipperRequest{
		ShipperName: "Northbound",
		GrossWeight: 42.5,
		Entries: []ShipperEntryRequest{
			{ProductID: "P1", BatchID: "B1", Quantity: 3},
			{ProductID: "P2", BatchID: "B2", Quantity: 7},
		},
	}, "tester")
	require.NoError(t, err)
	require.Equal(t, 2, shipper.TotalProducts)
	require.Equal(t, 10, shipper.TotalQuantity)
	require.Equal(t, model.ShipperStatusActive, shipper.Status)
	require.Regexp(t, `^SHIP\d{8}[0-9A-F]{6}$`, shipper.Code)
	require.Contains(t, shipper.QRCode, "#")

	require.Same(t, shipper, created)
	require.Len(t, createdEntries, 2)
	require.Equal(t, "B1", createdEntries[0].BatchID)
	require.Equal(t, 7, createdEntries[1].Quantity)
}

func TestGenerateShipperCodeRejectsMismatchedBatch(t *testing.T) {
	svc, m := newCodeService(config.BatchPickOldest)

	m.products.On("FindByID", "P1").Return(sampleProduct("P1", "Widget", "SKU1"), nil)
	m.batches.On("FindByID", "B2").Return(sampleBatch("B2", "P2"), nil)

	_, err := svc.GenerateShipperCode(&GenerateShipperRequest{
		Entries: []ShipperEntryRequest{{ProductID: "P1", BatchID: "B2", Quantity: 1}},
	}, "tester")
	require.EqualError(t, err, "batch B2 does not belong to product P1")

	m.shippers.AssertNotCalled(t, "CreateWithProducts", mock.Anything, mock.Anything)
}

func TestGenerateShipperCodePicksBatchWhenOmitted(t *testing.T) {
	svc, m := newCodeService(config.BatchPickNewest)

	m.products.On("FindByID", "P1").Return(sampleProduct("P1", "Widget", "SKU1"), nil)
	m.batches.On("PickForProduct", "P1", true).Return(sampleBatch("B9", "P1"), nil)
	m.shippers.On("CreateWithProducts", mock.Anything, mock.Anything).Return(nil)

	shipper, err := svc.GenerateShipperCode(&GenerateShipperRequest{
		Entries: []ShipperEntryRequest{{ProductID: "P1", Quantity: 5}},
	}, "tester")
	require.NoError(t, err)
	require.Equal(t, 1, shipper.TotalProducts)
	require.Equal(t, 5, shipper.TotalQuantity)

	m.batches.AssertExpectations(t)
}

func TestGenerateShipperCodeFailsWithoutAnyBatch(t *testing.T) {
	svc, m := newCodeService(config.BatchPickOldest)

	m.products.On("FindByID", "P1").Return(sampleProduct("P1", "Widget", "SKU1"), nil)
	m.batches.On("PickForProduct", "P1", false).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GenerateShipperCode(&GenerateShipperRequest{
		Entries: []ShipperEntryRequest{{ProductID: "P1", Quantity: 5}},
	}, "tester")
	require.EqualError(t, err, "product P1 has no batches to ship")
}

func TestResolveScanFirstLevel(t *testing.T) {
	svc, m := newCodeService(config.BatchPickOldest)

	raw := `{"type":"FIRST_LEVEL","product_id":"P1","batch_id":"B1","quantity":500}`
	m.codes.On("FindFirstLevelByQR", raw).Return(&model.FirstLevelCode{QRCode: raw}, nil)
	m.products.On("FindByID", "P1").Return(sampleProduct("P1", "Widget", "SKU1"), nil)
	m.batches.On("FindByID", "B1").Return(sampleBatch("B1", "P1"), nil)

	fields, err := svc.ResolveScan(raw)
	require.NoError(t, err)
	require.Equal(t, "FIRST_LEVEL", fields["type"])
	require.Equal(t, float64(500), fields["quantity"])
}

func TestResolveScanUnsupportedType(t *testing.T) {
	svc, _ := newCodeService(config.BatchPickOldest)

	_, err := svc.ResolveScan(`{"type":"PRODUCT","product_id":"P1","batch_id":"B1"}`)
	require.ErrorIs(t, err, qr.ErrUnsupportedType)
}

func TestResolveScanUnknownCode(t *testing.T) {
	svc, m := newCodeService(config.BatchPickOldest)

	raw := `{"type":"SECOND_LEVEL","product_id":"P1","batch_id":"B1"}`
	m.codes.On("FindSecondLevelByQR", raw).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ResolveScan(raw)
	require.ErrorIs(t, err, qr.ErrNotFound)
}

func TestResolveScanDanglingProduct(t *testing.T) {
	svc, m := newCodeService(config.BatchPickOldest)

	raw := `{"type":"FIRST_LEVEL","product_id":"P404","batch_id":"B1"}`
	m.codes.On("FindFirstLevelByQR", raw).Return(&model.FirstLevelCode{QRCode: raw}, nil)
	m.products.On("FindByID", "P404").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ResolveScan(raw)
	require.ErrorIs(t, err, qr.ErrDanglingReference)
}

func TestResolveScanInvalidPayload(t *testing.T) {
	svc, _ := newCodeService(config.BatchPickOldest)

	_, err := svc.ResolveScan("garbage")
	require.ErrorIs(t, err, qr.ErrInvalidFormat)

	_, err = svc.ResolveScan(`{"type":"FIRST_LEVEL"}`)
	require.ErrorIs(t, err, qr.ErrMissingFields)
}

func TestCodeImageUnknownTier(t *testing.T) {
	svc, _ := newCodeService(config.BatchPickOldest)

	_, _, err := svc.CodeImage("pallet", uuid.Nil)
	require.ErrorIs(t, err, qr.ErrUnsupportedType)
}
