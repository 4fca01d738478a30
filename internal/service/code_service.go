package service

import (
	"errors"
	"fmt"

	"go-traceability/internal/model"
	"go-traceability/internal/repository"
	"go-traceability/internal/ws"
	"go-traceability/pkg/config"
	"go-traceability/pkg/identifier"
	"go-traceability/pkg/qr"
	"go-traceability/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GenerateProductCodesRequest struct {
	ProductID           string  `json:"product_id" validate:"required"`
	BatchID             string  `json:"batch_id" validate:"required"`
	Quantity            int     `json:"quantity" validate:"required,gt=0"`
	RejectionPercentage float64 `json:"rejection_percentage" validate:"gte=0,lte=100"`
}

type GenerateLevelCodesRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	BatchID   string `json:"batch_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type ShipperEntryRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	// BatchID is optional; when empty the configured fallback pick applies
	BatchID  string `json:"batch_id"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type GenerateShipperRequest struct {
	ShipperName string                `json:"shipper_name"`
	GrossWeight float64               `json:"gross_weight" validate:"gte=0"`
	Entries     []ShipperEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

type CodeService interface {
	GenerateProductCodes(req *GenerateProductCodesRequest, actor string) (*model.ProductCode, error)
	GenerateFirstLevelCodes(req *GenerateLevelCodesRequest, actor string) (*model.FirstLevelCode, error)
	GenerateSecondLevelCodes(req *GenerateLevelCodesRequest, actor string) (*model.SecondLevelCode, error)
	GenerateShipperCode(req *GenerateShipperRequest, actor string) (*model.ShipperCode, error)

	ListProductCodes(page, perPage int) ([]model.ProductCode, int64, error)
	ListFirstLevelCodes(page, perPage int) ([]model.FirstLevelCode, int64, error)
	ListSecondLevelCodes(page, perPage int) ([]model.SecondLevelCode, int64, error)
	ListShipperCodes(page, perPage int) ([]model.ShipperCode, int64, error)
	GetShipperCode(id uuid.UUID) (*model.ShipperCode, error)

	// CodeImage renders the stored payload of any code tier as a QR PNG
	CodeImage(codeType string, id uuid.UUID) (image string, data string, err error)

	// ResolveScan decodes scanned text and resolves it against stored codes
	ResolveScan(rawText string) (map[string]interface{}, error)
	// ParseScan decodes without resolving, for the public scan page
	ParseScan(rawText string) (map[string]interface{}, error)
}

type codeService struct {
	productRepo repository.ProductRepository
	batchRepo   repository.BatchRepository
	codeRepo    repository.CodeRepository
	shipperRepo repository.ShipperRepository
	codec       *qr.Codec
	hub         *ws.Hub
	batchPick   config.BatchPick
}

func NewCodeService(
	pRepo repository.ProductRepository,
	bRepo repository.BatchRepository,
	cRepo repository.CodeRepository,
	sRepo repository.ShipperRepository,
	codec *qr.Codec,
	hub *ws.Hub,
	batchPick config.BatchPick,
) CodeService {
	return &codeService{
		productRepo: pRepo,
		batchRepo:   bRepo,
		codeRepo:    cRepo,
		shipperRepo: sRepo,
		codec:       codec,
		hub:         hub,
		batchPick:   batchPick,
	}
}

func (s *codeService) GenerateProductCodes(req *GenerateProductCodesRequest, actor string) (*model.ProductCode, error) {
	if err := firstValidationError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	product, batch, err := s.loadPair(req.ProductID, req.BatchID)
	if err != nil {
		return nil, err
	}

	counts := ProductCodeCounts(req.Quantity, req.RejectionPercentage)

	payload, err := s.codec.Encode(qr.CodeTypeProduct, productInfo(product), batchInfo(batch),
		map[string]interface{}{
			"total_codes":          counts.Total,
			"rejection_percentage": req.RejectionPercentage,
		}, nil)
	if err != nil {
		return nil, err
	}

	code := &model.ProductCode{
		ProductID:     req.ProductID,
		BatchID:       req.BatchID,
		QRCode:        payload,
		TotalCodes:    counts.Total,
		MappedCodes:   counts.Mapped,
		UnmappedCodes: counts.Unmapped,
	}
	code.CreatedBy = actor

	if err := s.codeRepo.CreateProductCode(code); err != nil {
		return nil, err
	}

	s.hub.BroadcastEvent("code_generated", map[string]interface{}{
		"tier":       "product",
		"product_id": product.ID,
		"batch_id":   batch.ID,
		"total":      counts.Total,
	})
	return code, nil
}

func (s *codeService) GenerateFirstLevelCodes(req *GenerateLevelCodesRequest, actor string) (*model.FirstLevelCode, error) {
	if err := firstValidationError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	product, batch, err := s.loadPair(req.ProductID, req.BatchID)
	if err != nil {
		return nil, err
	}

	counts := FirstLevelCounts(req.Quantity)

	payload, err := s.codec.Encode(qr.CodeTypeFirstLevel, productInfo(product), batchInfo(batch),
		map[string]interface{}{"quantity": req.Quantity}, nil)
	if err != nil {
		return nil, err
	}

	code := &model.FirstLevelCode{
		ProductID:     req.ProductID,
		BatchID:       req.BatchID,
		QRCode:        payload,
		TotalCodes:    counts.Total,
		MappedCodes:   counts.Mapped,
		UnmappedCodes: counts.Unmapped,
	}
	code.CreatedBy = actor

	if err := s.codeRepo.CreateFirstLevel(code); err != nil {
		return nil, err
	}

	s.hub.BroadcastEvent("code_generated", map[string]interface{}{
		"tier":       "first_level",
		"product_id": product.ID,
		"batch_id":   batch.ID,
		"total":      counts.Total,
	})
	return code, nil
}

func (s *codeService) GenerateSecondLevelCodes(req *GenerateLevelCodesRequest, actor string) (*model.SecondLevelCode, error) {
	if err := firstValidationError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	product, batch, err := s.loadPair(req.ProductID, req.BatchID)
	if err != nil {
		return nil, err
	}

	payload, err := s.codec.Encode(qr.CodeTypeSecondLevel, productInfo(product), batchInfo(batch),
		map[string]interface{}{"quantity": req.Quantity}, nil)
	if err != nil {
		return nil, err
	}

	code := &model.SecondLevelCode{
		ProductID: req.ProductID,
		BatchID:   req.BatchID,
		QRCode:    payload,
		Quantity:  req.Quantity,
	}
	code.CreatedBy = actor

	if err := s.codeRepo.CreateSecondLevel(code); err != nil {
		return nil, err
	}

	s.hub.BroadcastEvent("code_generated", map[string]interface{}{
		"tier":       "second_level",
		"product_id": product.ID,
		"batch_id":   batch.ID,
		"quantity":   req.Quantity,
	})
	return code, nil
}

// GenerateShipperCode creates the container row and all its product entries
// in one transaction: any failure before commit discards the whole sequence,
// so no orphaned ShipperProduct rows can remain.
func (s *codeService) GenerateShipperCode(req *GenerateShipperRequest, actor string) (*model.ShipperCode, error) {
	if err := firstValidationError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	codeValue := identifier.New(identifier.PrefixShipper)

	type resolvedEntry struct {
		product *model.Product
		batch   *model.Batch
		qty     int
	}

	resolved := make([]resolvedEntry, 0, len(req.Entries))
	payloadEntries := make([]qr.ShipperEntry, 0, len(req.Entries))
	quantities := make([]int, 0, len(req.Entries))

	for _, entry := range req.Entries {
		product, err := s.productRepo.FindByID(entry.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s not found", entry.ProductID)
		}

		var batch *model.Batch
		if entry.BatchID != "" {
			batch, err = s.batchRepo.FindByID(entry.BatchID)
			if err != nil {
				return nil, fmt.Errorf("batch %s not found", entry.BatchID)
			}
			if batch.ProductID != product.ID {
				return nil, fmt.Errorf("batch %s does not belong to product %s", entry.BatchID, entry.ProductID)
			}
		} else {
			batch, err = s.batchRepo.PickForProduct(product.ID, s.batchPick == config.BatchPickNewest)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			if errors.Is(err, gorm.ErrRecordNotFound) {
				batch = nil
			}
		}
		if batch == nil {
			return nil, fmt.Errorf("product %s has no batches to ship", entry.ProductID)
		}

		resolved = append(resolved, resolvedEntry{product, batch, entry.Quantity})
		quantities = append(quantities, entry.Quantity)

		mfg, exp := batch.MfgDate, batch.ExpiryDate
		payloadEntries = append(payloadEntries, qr.ShipperEntry{
			ProductID:   product.ID,
			ProductName: product.Name,
			SKUID:       product.SKUID,
			GTIN:        product.GTIN,
			Quantity:    entry.Quantity,
			MfgDate:     &mfg,
			ExpiryDate:  &exp,
		})
	}

	totalProducts, totalQuantity := ShipperTotals(quantities)

	payload, err := s.codec.EncodeShipper(qr.ShipperInfo{
		Code:          codeValue,
		Name:          req.ShipperName,
		TotalProducts: totalProducts,
		TotalQuantity: totalQuantity,
		GrossWeight:   req.GrossWeight,
		Products:      payloadEntries,
	})
	if err != nil {
		return nil, err
	}

	shipper := &model.ShipperCode{
		Code:          codeValue,
		Name:          req.ShipperName,
		TotalProducts: totalProducts,
		TotalQuantity: totalQuantity,
		GrossWeight:   req.GrossWeight,
		QRCode:        payload,
		Status:        model.ShipperStatusActive,
	}
	shipper.CreatedBy = actor

	entries := make([]model.ShipperProduct, 0, len(resolved))
	for _, entry := range resolved {
		sp := model.ShipperProduct{
			ProductID: entry.product.ID,
			BatchID:   entry.batch.ID,
			Quantity:  entry.qty,
		}
		sp.CreatedBy = actor
		entries = append(entries, sp)
	}

	if err := s.shipperRepo.CreateWithProducts(shipper, entries); err != nil {
		return nil, err
	}

	s.hub.BroadcastEvent("code_generated", map[string]interface{}{
		"tier":           "shipper",
		"shipper_code":   codeValue,
		"total_products": totalProducts,
		"total_quantity": totalQuantity,
	})
	return shipper, nil
}

func (s *codeService) ListProductCodes(page, perPage int) ([]model.ProductCode, int64, error) {
	return s.codeRepo.PaginateProductCodes(page, perPage)
}

func (s *codeService) ListFirstLevelCodes(page, perPage int) ([]model.FirstLevelCode, int64, error) {
	return s.codeRepo.PaginateFirstLevel(page, perPage)
}

func (s *codeService) ListSecondLevelCodes(page, perPage int) ([]model.SecondLevelCode, int64, error) {
	return s.codeRepo.PaginateSecondLevel(page, perPage)
}

func (s *codeService) ListShipperCodes(page, perPage int) ([]model.ShipperCode, int64, error) {
	return s.shipperRepo.Paginate(page, perPage)
}

func (s *codeService) GetShipperCode(id uuid.UUID) (*model.ShipperCode, error) {
	return s.shipperRepo.FindByID(id)
}

func (s *codeService) CodeImage(codeType string, id uuid.UUID) (string, string, error) {
	var data string

	switch codeType {
	case "product":
		code, err := s.codeRepo.FindProductCodeByID(id)
		if err != nil {
			return "", "", err
		}
		data = code.QRCode
	case "first_level":
		code, err := s.codeRepo.FindFirstLevelByID(id)
		if err != nil {
			return "", "", err
		}
		data = code.QRCode
	case "second_level":
		code, err := s.codeRepo.FindSecondLevelByID(id)
		if err != nil {
			return "", "", err
		}
		data = code.QRCode
	case "shipper":
		shipper, err := s.shipperRepo.FindByID(id)
		if err != nil {
			return "", "", err
		}
		data = shipper.QRCode
	default:
		return "", "", qr.ErrUnsupportedType
	}

	image, err := qr.ImageDataURL(data)
	if err != nil {
		return "", "", err
	}
	return image, data, nil
}

// ResolveScan decodes scanned text and resolves it against stored codes.
// Only first and second level codes are resolvable; the lookup is an exact
// string match against the persisted payload.
func (s *codeService) ResolveScan(rawText string) (map[string]interface{}, error) {
	payload, err := s.codec.Decode(rawText)
	if err != nil {
		return nil, err
	}

	switch payload.Type {
	case qr.CodeTypeFirstLevel:
		if _, err := s.codeRepo.FindFirstLevelByQR(payload.Raw); err != nil {
			return nil, qr.ErrNotFound
		}
	case qr.CodeTypeSecondLevel:
		if _, err := s.codeRepo.FindSecondLevelByQR(payload.Raw); err != nil {
			return nil, qr.ErrNotFound
		}
	default:
		return nil, qr.ErrUnsupportedType
	}

	if _, err := s.productRepo.FindByID(payload.ProductID); err != nil {
		return nil, qr.ErrDanglingReference
	}
	if _, err := s.batchRepo.FindByID(payload.BatchID); err != nil {
		return nil, qr.ErrDanglingReference
	}

	return payload.Fields, nil
}

func (s *codeService) ParseScan(rawText string) (map[string]interface{}, error) {
	fields, _, err := s.codec.Parse(rawText)
	return fields, err
}

func (s *codeService) loadPair(productID, batchID string) (*model.Product, *model.Batch, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, nil, errors.New("product not found")
	}
	batch, err := s.batchRepo.FindByID(batchID)
	if err != nil {
		return nil, nil, errors.New("batch not found")
	}
	return product, batch, nil
}

func productInfo(p *model.Product) qr.ProductInfo {
	return qr.ProductInfo{
		ID:             p.ID,
		Name:           p.Name,
		SKUID:          p.SKUID,
		GTIN:           p.GTIN,
		MRP:            p.MRP,
		RegistrationNo: p.RegistrationNo,
		ImageURL:       p.ImageURL,
	}
}

func batchInfo(b *model.Batch) qr.BatchInfo {
	info := qr.BatchInfo{
		ID:         b.ID,
		BatchNo:    b.BatchNo,
		MfgDate:    b.MfgDate,
		ExpiryDate: b.ExpiryDate,
		QAStatus:   b.QAStatus,
	}
	if b.Factory != nil {
		info.FactoryName = b.Factory.Name
	}
	return info
}

func firstValidationError(errs []*validator.ErrorResponse) error {
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
}
