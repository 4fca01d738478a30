package handler

import (
	"errors"

	"go-traceability/internal/service"
	"go-traceability/pkg/qr"

	"github.com/gofiber/fiber/v2"
)

type ScanHandler struct {
	service service.CodeService
}

func NewScanHandler(s service.CodeService) *ScanHandler {
	return &ScanHandler{service: s}
}

type ParseQRRequest struct {
	QRData string `json:"qr_data"`
}

// ParseQR resolves scanned text against stored codes
// POST /api/v1/scan/parse
func (h *ScanHandler) ParseQR(c *fiber.Ctx) error {
	var req ParseQRRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	fields, err := h.service.ResolveScan(req.QRData)
	if err != nil {
		return c.Status(scanErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fields)
}

// ScanPage decodes the data query parameter without a store lookup, serving
// external scanners that follow the embedded URL
// GET /scan
func (h *ScanHandler) ScanPage(c *fiber.Ctx) error {
	data := c.Query("data")
	if data == "" {
		return c.JSON(fiber.Map{"message": "Provide QR data via the data query parameter"})
	}

	fields, err := h.service.ParseScan(data)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid QR code data format"})
	}
	return c.JSON(fiber.Map{"parsed_data": fields})
}

// scanErrorStatus maps the codec error taxonomy onto HTTP statuses
func scanErrorStatus(err error) int {
	switch {
	case errors.Is(err, qr.ErrNotFound), errors.Is(err, qr.ErrDanglingReference):
		return 404
	case errors.Is(err, qr.ErrInvalidFormat), errors.Is(err, qr.ErrMissingFields), errors.Is(err, qr.ErrUnsupportedType):
		return 400
	default:
		return 500
	}
}
