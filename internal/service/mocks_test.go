package service

import (
	"go-traceability/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock repositories for service tests

type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(product *model.Product) error {
	return m.Called(product).Error(0)
}

func (m *MockProductRepo) FindAll() ([]model.Product, error) {
	args := m.Called()
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *MockProductRepo) FindByID(id string) (*model.Product, error) {
	args := m.Called(id)
	product, _ := args.Get(0).(*model.Product)
	return product, args.Error(1)
}

func (m *MockProductRepo) FindBySKU(skuID string) (*model.Product, error) {
	args := m.Called(skuID)
	product, _ := args.Get(0).(*model.Product)
	return product, args.Error(1)
}

func (m *MockProductRepo) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockBatchRepo struct {
	mock.Mock
}

func (m *MockBatchRepo) Create(batch *model.Batch) error {
	return m.Called(batch).Error(0)
}

func (m *MockBatchRepo) FindByID(id string) (*model.Batch, error) {
	args := m.Called(id)
	batch, _ := args.Get(0).(*model.Batch)
	return batch, args.Error(1)
}

func (m *MockBatchRepo) FindByProduct(productID string) ([]model.Batch, error) {
	args := m.Called(productID)
	batches, _ := args.Get(0).([]model.Batch)
	return batches, args.Error(1)
}

func (m *MockBatchRepo) PickForProduct(productID string, newestFirst bool) (*model.Batch, error) {
	args := m.Called(productID, newestFirst)
	batch, _ := args.Get(0).(*model.Batch)
	return batch, args.Error(1)
}

func (m *MockBatchRepo) Paginate(productID string, page, perPage int) ([]model.Batch, int64, error) {
	args := m.Called(productID, page, perPage)
	batches, _ := args.Get(0).([]model.Batch)
	return batches, args.Get(1).(int64), args.Error(2)
}

func (m *MockBatchRepo) FindAllDetailed() ([]model.Batch, error) {
	args := m.Called()
	batches, _ := args.Get(0).([]model.Batch)
	return batches, args.Error(1)
}

func (m *MockBatchRepo) FindRecent(limit int) ([]model.Batch, error) {
	args := m.Called(limit)
	batches, _ := args.Get(0).([]model.Batch)
	return batches, args.Error(1)
}

func (m *MockBatchRepo) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockFactoryRepo struct {
	mock.Mock
}

func (m *MockFactoryRepo) Create(factory *model.Factory) error {
	return m.Called(factory).Error(0)
}

func (m *MockFactoryRepo) FindAll() ([]model.Factory, error) {
	args := m.Called()
	factories, _ := args.Get(0).([]model.Factory)
	return factories, args.Error(1)
}

func (m *MockFactoryRepo) FindByID(id string) (*model.Factory, error) {
	args := m.Called(id)
	factory, _ := args.Get(0).(*model.Factory)
	return factory, args.Error(1)
}

func (m *MockFactoryRepo) Paginate(page, perPage int) ([]model.Factory, int64, error) {
	args := m.Called(page, perPage)
	factories, _ := args.Get(0).([]model.Factory)
	return factories, args.Get(1).(int64), args.Error(2)
}

func (m *MockFactoryRepo) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockCodeRepo struct {
	mock.Mock
}

func (m *MockCodeRepo) CreateProductCode(code *model.ProductCode) error {
	return m.Called(code).Error(0)
}

func (m *MockCodeRepo) CreateFirstLevel(code *model.FirstLevelCode) error {
	return m.Called(code).Error(0)
}

func (m *MockCodeRepo) CreateSecondLevel(code *model.SecondLevelCode) error {
	return m.Called(code).Error(0)
}

func (m *MockCodeRepo) PaginateProductCodes(page, perPage int) ([]model.ProductCode, int64, error) {
	args := m.Called(page, perPage)
	codes, _ := args.Get(0).([]model.ProductCode)
	return codes, args.Get(1).(int64), args.Error(2)
}

func (m *MockCodeRepo) PaginateFirstLevel(page, perPage int) ([]model.FirstLevelCode, int64, error) {
	args := m.Called(page, perPage)
	codes, _ := args.Get(0).([]model.FirstLevelCode)
	return codes, args.Get(1).(int64), args.Error(2)
}

func (m *MockCodeRepo) PaginateSecondLevel(page, perPage int) ([]model.SecondLevelCode, int64, error) {
	args := m.Called(page, perPage)
	codes, _ := args.Get(0).([]model.SecondLevelCode)
	return codes, args.Get(1).(int64), args.Error(2)
}

func (m *MockCodeRepo) FindProductCodeByID(id uuid.UUID) (*model.ProductCode, error) {
	args := m.Called(id)
	code, _ := args.Get(0).(*model.ProductCode)
	return code, args.Error(1)
}

func (m *MockCodeRepo) FindFirstLevelByID(id uuid.UUID) (*model.FirstLevelCode, error) {
	args := m.Called(id)
	code, _ := args.Get(0).(*model.FirstLevelCode)
	return code, args.Error(1)
}

func (m *MockCodeRepo) FindSecondLevelByID(id uuid.UUID) (*model.SecondLevelCode, error) {
	args := m.Called(id)
	code, _ := args.Get(0).(*model.SecondLevelCode)
	return code, args.Error(1)
}

func (m *MockCodeRepo) FindFirstLevelByQR(qr string) (*model.FirstLevelCode, error) {
	args := m.Called(qr)
	code, _ := args.Get(0).(*model.FirstLevelCode)
	return code, args.Error(1)
}

func (m *MockCodeRepo) FindSecondLevelByQR(qr string) (*model.SecondLevelCode, error) {
	args := m.Called(qr)
	code, _ := args.Get(0).(*model.SecondLevelCode)
	return code, args.Error(1)
}

type MockShipperRepo struct {
	mock.Mock
}

func (m *MockShipperRepo) CreateWithProducts(shipper *model.ShipperCode, entries []model.ShipperProduct) error {
	return m.Called(shipper, entries).Error(0)
}

func (m *MockShipperRepo) Paginate(page, perPage int) ([]model.ShipperCode, int64, error) {
	args := m.Called(page, perPage)
	shippers, _ := args.Get(0).([]model.ShipperCode)
	return shippers, args.Get(1).(int64), args.Error(2)
}

func (m *MockShipperRepo) FindByID(id uuid.UUID) (*model.ShipperCode, error) {
	args := m.Called(id)
	shipper, _ := args.Get(0).(*model.ShipperCode)
	return shipper, args.Error(1)
}

func (m *MockShipperRepo) FindByCode(code string) (*model.ShipperCode, error) {
	args := m.Called(code)
	shipper, _ := args.Get(0).(*model.ShipperCode)
	return shipper, args.Error(1)
}
