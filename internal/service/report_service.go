package service

import (
	"fmt"
	"time"

	"go-traceability/internal/model"
	"go-traceability/internal/repository"
	"go-traceability/pkg/excel"

	"github.com/google/uuid"
)

// ReportService renders tabular exports as xlsx attachments
type ReportService interface {
	ExportProductCode(id uuid.UUID) (string, []byte, error)
	ExportBatchStock(batchID string) (string, []byte, error)
	ExportAllBatches() (string, []byte, error)
	ExportFactoryStock(factoryID string) (string, []byte, error)
	ExportAllStock() (string, []byte, error)
}

type reportService struct {
	codeRepo    repository.CodeRepository
	batchRepo   repository.BatchRepository
	factoryRepo repository.FactoryRepository
	stockRepo   repository.StockRepository
}

func NewReportService(
	cRepo repository.CodeRepository,
	bRepo repository.BatchRepository,
	fRepo repository.FactoryRepository,
	sRepo repository.StockRepository,
) ReportService {
	return &reportService{
		codeRepo:    cRepo,
		batchRepo:   bRepo,
		factoryRepo: fRepo,
		stockRepo:   sRepo,
	}
}

const (
	exportDateLayout     = "02-01-2006"
	exportDateTimeLayout = "02-01-2006 15:04"
)

func (s *reportService) ExportProductCode(id uuid.UUID) (string, []byte, error) {
	code, err := s.codeRepo.FindProductCodeByID(id)
	if err != nil {
		return "", nil, err
	}

	headers := []string{"Product Name", "SKU ID", "Batch No", "Total Codes", "Mapped Codes", "Unmapped Codes"}
	rows := [][]any{{
		nameOrNA(code.Product), skuOrNA(code.Product), batchNoOrNA(code.Batch),
		code.TotalCodes, code.MappedCodes, code.UnmappedCodes,
	}}

	content, err := excel.Export(headers, rows)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("product_codes_%s.xlsx", code.ID), content, nil
}

func (s *reportService) ExportBatchStock(batchID string) (string, []byte, error) {
	batch, err := s.batchRepo.FindByID(batchID)
	if err != nil {
		return "", nil, err
	}
	items, err := s.stockRepo.FindByBatch(batchID)
	if err != nil {
		return "", nil, err
	}

	headers := []string{"Batch No", "Product Name", "SKU ID", "Units", "Bin Status", "Factory", "Mfg Date", "Expiry Date", "QA Status"}
	rows := make([][]any, 0, len(items))
	for _, stock := range items {
		rows = append(rows, []any{
			batch.BatchNo,
			nameOrNA(stock.Product),
			skuOrNA(stock.Product),
			stock.Units,
			stock.BinStatus,
			factoryNameOrNA(stock.Factory),
			batch.MfgDate.Format(exportDateLayout),
			batch.ExpiryDate.Format(exportDateLayout),
			batch.QAStatus,
		})
	}

	content, err := excel.Export(headers, rows)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("batch_stock_%s.xlsx", batchID), content, nil
}

func (s *reportService) ExportAllBatches() (string, []byte, error) {
	batches, err := s.batchRepo.FindAllDetailed()
	if err != nil {
		return "", nil, err
	}

	headers := []string{"Batch No", "Product Name", "SKU ID", "Factory", "Total Stock", "Mfg Date", "Expiry Date", "QA Status", "Created On"}
	rows := make([][]any, 0, len(batches))
	for _, batch := range batches {
		stockTotal, err := s.stockRepo.SumUnitsByBatch(batch.ID)
		if err != nil {
			return "", nil, err
		}
		rows = append(rows, []any{
			batch.BatchNo,
			nameOrNA(batch.Product),
			skuOrNA(batch.Product),
			factoryNameOrNA(batch.Factory),
			stockTotal,
			batch.MfgDate.Format(exportDateLayout),
			batch.ExpiryDate.Format(exportDateLayout),
			batch.QAStatus,
			batch.CreatedAt.Format(exportDateTimeLayout),
		})
	}

	content, err := excel.Export(headers, rows)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("all_batches_%s.xlsx", time.Now().Format("20060102")), content, nil
}

func (s *reportService) ExportFactoryStock(factoryID string) (string, []byte, error) {
	factory, err := s.factoryRepo.FindByID(factoryID)
	if err != nil {
		return "", nil, err
	}
	items, err := s.stockRepo.FindByFactoryDetailed(factoryID)
	if err != nil {
		return "", nil, err
	}

	headers := []string{"Product Name", "SKU ID", "Batch No", "Units", "Bin Status", "Mfg Date", "Expiry Date", "Updated"}
	rows := make([][]any, 0, len(items))
	for _, stock := range items {
		rows = append(rows, []any{
			nameOrNA(stock.Product),
			skuOrNA(stock.Product),
			batchNoOrNA(stock.Batch),
			stock.Units,
			stock.BinStatus,
			batchDateOrNA(stock.Batch, func(b *model.Batch) time.Time { return b.MfgDate }),
			batchDateOrNA(stock.Batch, func(b *model.Batch) time.Time { return b.ExpiryDate }),
			stock.UpdatedAt.Format(exportDateTimeLayout),
		})
	}

	content, err := excel.Export(headers, rows)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("factory_stock_%s_%s.xlsx", factory.Name, time.Now().Format("20060102")), content, nil
}

func (s *reportService) ExportAllStock() (string, []byte, error) {
	items, err := s.stockRepo.FindAllDetailed()
	if err != nil {
		return "", nil, err
	}

	headers := []string{"Factory", "Product Name", "SKU ID", "Batch No", "Units", "Bin Status", "Mfg Date", "Expiry Date", "Updated"}
	rows := make([][]any, 0, len(items))
	for _, stock := range items {
		rows = append(rows, []any{
			factoryNameOrNA(stock.Factory),
			nameOrNA(stock.Product),
			skuOrNA(stock.Product),
			batchNoOrNA(stock.Batch),
			stock.Units,
			stock.BinStatus,
			batchDateOrNA(stock.Batch, func(b *model.Batch) time.Time { return b.MfgDate }),
			batchDateOrNA(stock.Batch, func(b *model.Batch) time.Time { return b.ExpiryDate }),
			stock.UpdatedAt.Format(exportDateTimeLayout),
		})
	}

	content, err := excel.Export(headers, rows)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("all_stock_%s.xlsx", time.Now().Format("20060102")), content, nil
}

func nameOrNA(p *model.Product) string {
	if p == nil {
		return "N/A"
	}
	return p.Name
}

func skuOrNA(p *model.Product) string {
	if p == nil {
		return "N/A"
	}
	return p.SKUID
}

func batchNoOrNA(b *model.Batch) string {
	if b == nil {
		return "N/A"
	}
	return b.BatchNo
}

func factoryNameOrNA(f *model.Factory) string {
	if f == nil {
		return "N/A"
	}
	return f.Name
}

func batchDateOrNA(b *model.Batch, pick func(*model.Batch) time.Time) string {
	if b == nil {
		return "N/A"
	}
	return pick(b).Format(exportDateLayout)
}
