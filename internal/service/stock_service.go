package service

import (
	"errors"

	"go-traceability/internal/model"
	"go-traceability/internal/repository"
	"go-traceability/internal/ws"
	"go-traceability/pkg/validator"

	"gorm.io/gorm"
)

type UpsertStockRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	BatchID   string `json:"batch_id" validate:"required"`
	FactoryID string `json:"factory_id" validate:"required"`
	Units     int    `json:"units" validate:"gte=0"`
	BinStatus string `json:"bin_status" validate:"omitempty,oneof=OK intransit"`
}

// FactoryStockRow is one stock-report line: a factory with its unit total
type FactoryStockRow struct {
	Factory    model.Factory `json:"factory"`
	TotalStock int64         `json:"total_stock"`
}

// StockReport is the read-side aggregation shown on the stock report page
type StockReport struct {
	Factories      []FactoryStockRow `json:"factories"`
	TotalFactories int64             `json:"total_factories"`
	TotalStock     int64             `json:"total_stock"`
	TransitStock   int64             `json:"transit_stock"`
	TotalProducts  int64             `json:"total_products"`
}

type StockService interface {
	UpsertStock(req *UpsertStockRequest, actor string) (*model.Stock, error)
	GetStockReport(page, perPage int) (*StockReport, error)
	GetFactoryStock(factoryID string, page, perPage int) (*model.Factory, []model.Stock, int64, error)
	BatchStockTotal(batchID string) (int64, error)
}

type stockService struct {
	stockRepo   repository.StockRepository
	factoryRepo repository.FactoryRepository
	productRepo repository.ProductRepository
	batchRepo   repository.BatchRepository
	hub         *ws.Hub
}

func NewStockService(
	sRepo repository.StockRepository,
	fRepo repository.FactoryRepository,
	pRepo repository.ProductRepository,
	bRepo repository.BatchRepository,
	hub *ws.Hub,
) StockService {
	return &stockService{
		stockRepo:   sRepo,
		factoryRepo: fRepo,
		productRepo: pRepo,
		batchRepo:   bRepo,
		hub:         hub,
	}
}

func (s *stockService) UpsertStock(req *UpsertStockRequest, actor string) (*model.Stock, error) {
	if err := firstValidationError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	if _, err := s.productRepo.FindByID(req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, err
	}
	if _, err := s.batchRepo.FindByID(req.BatchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("batch not found")
		}
		return nil, err
	}
	if _, err := s.factoryRepo.FindByID(req.FactoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("factory not found")
		}
		return nil, err
	}

	binStatus := req.BinStatus
	if binStatus == "" {
		binStatus = model.BinStatusOK
	}

	stock := &model.Stock{
		ProductID: req.ProductID,
		BatchID:   req.BatchID,
		FactoryID: req.FactoryID,
		Units:     req.Units,
		BinStatus: binStatus,
	}
	stock.CreatedBy = actor

	if err := s.stockRepo.Upsert(stock); err != nil {
		return nil, err
	}

	s.hub.BroadcastEvent("stock_update", map[string]interface{}{
		"product_id": req.ProductID,
		"batch_id":   req.BatchID,
		"factory_id": req.FactoryID,
		"units":      req.Units,
		"bin_status": binStatus,
	})
	return stock, nil
}

func (s *stockService) GetStockReport(page, perPage int) (*StockReport, error) {
	factories, total, err := s.factoryRepo.Paginate(page, perPage)
	if err != nil {
		return nil, err
	}

	rows := make([]FactoryStockRow, 0, len(factories))
	for _, factory := range factories {
		units, err := s.stockRepo.SumUnitsByFactory(factory.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, FactoryStockRow{Factory: factory, TotalStock: units})
	}

	totalStock, err := s.stockRepo.SumUnitsByStatus(model.BinStatusOK)
	if err != nil {
		return nil, err
	}
	transitStock, err := s.stockRepo.SumUnitsByStatus(model.BinStatusInTransit)
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.productRepo.CountAll()
	if err != nil {
		return nil, err
	}

	return &StockReport{
		Factories:      rows,
		TotalFactories: total,
		TotalStock:     totalStock,
		TransitStock:   transitStock,
		TotalProducts:  totalProducts,
	}, nil
}

func (s *stockService) GetFactoryStock(factoryID string, page, perPage int) (*model.Factory, []model.Stock, int64, error) {
	factory, err := s.factoryRepo.FindByID(factoryID)
	if err != nil {
		return nil, nil, 0, errors.New("factory not found")
	}
	items, total, err := s.stockRepo.PaginateByFactory(factoryID, page, perPage)
	if err != nil {
		return nil, nil, 0, err
	}
	return factory, items, total, nil
}

func (s *stockService) BatchStockTotal(batchID string) (int64, error) {
	return s.stockRepo.SumUnitsByBatch(batchID)
}
