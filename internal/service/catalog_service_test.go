package service

import (
	"testing"

	"go-traceability/internal/model"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogService() (CatalogService, *MockProductRepo, *MockFactoryRepo, *MockBatchRepo) {
	products := new(MockProductRepo)
	factories := new(MockFactoryRepo)
	batches := new(MockBatchRepo)
	return NewCatalogService(products, factories, batches), products, factories, batches
}

func TestCreateProductGeneratesID(t *testing.T) {
	svc, products, _, _ := newCatalogService()

	products.On("FindBySKU", "SKU1").Return(nil, gorm.ErrRecordNotFound)
	products.On("Create", mock.AnythingOfType("*model.Product")).Return(nil)

	product, err := svc.CreateProduct(&CreateProductRequest{
		Name:  "Widget",
		SKUID: "SKU1",
		MRP:   99.5,
	}, "tester")
	require.NoError(t, err)
	require.Regexp(t, `^PROD\d{8}[0-9A-F]{6}$`, product.ID)
	require.Equal(t, "SKU1", product.SKUID)

	products.AssertExpectations(t)
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	svc, products, _, _ := newCatalogService()

	products.On("FindBySKU", "SKU1").Return(&model.Product{ID: "PROD1", SKUID: "SKU1"}, nil)

	_, err := svc.CreateProduct(&CreateProductRequest{Name: "Widget", SKUID: "SKU1"}, "tester")
	require.EqualError(t, err, "SKU already exists")

	products.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateBatchDefaultsQAStatus(t *testing.T) {
	svc, products, factories, batches := newCatalogService()

	products.On("FindByID", "P1").Return(&model.Product{ID: "P1"}, nil)
	factories.On("FindByID", "F1").Return(&model.Factory{ID: "F1"}, nil)
	batches.On("Create", mock.AnythingOfType("*model.Batch")).Return(nil)

	batch, err := svc.CreateBatch(&CreateBatchRequest{
		BatchNo:    "B-01",
		ProductID:  "P1",
		FactoryID:  "F1",
		MfgDate:    "2024-01-01",
		ExpiryDate: "2025-01-01",
	}, "tester")
	require.NoError(t, err)
	require.Equal(t, model.QAStatusOK, batch.QAStatus)
	require.Equal(t, "tester", batch.RespondedBy)
	require.Regexp(t, `^BATCH\d{8}[0-9A-F]{6}$`, batch.ID)
}

func TestCreateBatchRejectsExpiryBeforeMfg(t *testing.T) {
	svc, _, _, batches := newCatalogService()

	_, err := svc.CreateBatch(&CreateBatchRequest{
		BatchNo:    "B-01",
		ProductID:  "P1",
		FactoryID:  "F1",
		MfgDate:    "2024-06-01",
		ExpiryDate: "2024-01-01",
	}, "tester")
	require.EqualError(t, err, "expiry date cannot be before manufacture date")

	batches.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateBatchRejectsMalformedDate(t *testing.T) {
	svc, _, _, _ := newCatalogService()

	_, err := svc.CreateBatch(&CreateBatchRequest{
		BatchNo:    "B-01",
		ProductID:  "P1",
		FactoryID:  "F1",
		MfgDate:    "01/06/2024",
		ExpiryDate: "2025-01-01",
	}, "tester")
	require.EqualError(t, err, "invalid mfg_date, expected YYYY-MM-DD")
}

func TestCreateBatchUnknownProduct(t *testing.T) {
	svc, products, _, _ := newCatalogService()

	products.On("FindByID", "P404").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateBatch(&CreateBatchRequest{
		BatchNo:    "B-01",
		ProductID:  "P404",
		FactoryID:  "F1",
		MfgDate:    "2024-01-01",
		ExpiryDate: "2025-01-01",
	}, "tester")
	require.EqualError(t, err, "product not found")
}
