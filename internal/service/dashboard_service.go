package service

import (
	"go-traceability/internal/model"
	"go-traceability/internal/repository"
)

// DashboardStats is the overview counter set
type DashboardStats struct {
	TotalProducts  int64 `json:"total_products"`
	TotalBatches   int64 `json:"total_batches"`
	TotalFactories int64 `json:"total_factories"`
}

type DashboardService interface {
	GetDashboardStats() (*DashboardStats, error)
	GetRecentBatches(limit int) ([]model.Batch, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	batchRepo   repository.BatchRepository
	factoryRepo repository.FactoryRepository
}

func NewDashboardService(pRepo repository.ProductRepository, bRepo repository.BatchRepository, fRepo repository.FactoryRepository) DashboardService {
	return &dashboardService{
		productRepo: pRepo,
		batchRepo:   bRepo,
		factoryRepo: fRepo,
	}
}

func (s *dashboardService) GetDashboardStats() (*DashboardStats, error) {
	products, err := s.productRepo.CountAll()
	if err != nil {
		return nil, err
	}
	batches, err := s.batchRepo.CountAll()
	if err != nil {
		return nil, err
	}
	factories, err := s.factoryRepo.CountAll()
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		TotalProducts:  products,
		TotalBatches:   batches,
		TotalFactories: factories,
	}, nil
}

func (s *dashboardService) GetRecentBatches(limit int) ([]model.Batch, error) {
	return s.batchRepo.FindRecent(limit)
}
