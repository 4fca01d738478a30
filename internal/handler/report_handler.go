package handler

import (
	"go-traceability/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func (h *ReportHandler) ExportProductCode(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid code ID"})
	}

	filename, content, err := h.service.ExportProductCode(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Code not found"})
	}
	return sendSpreadsheet(c, filename, content)
}

func (h *ReportHandler) ExportBatchStock(c *fiber.Ctx) error {
	filename, content, err := h.service.ExportBatchStock(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Batch not found"})
	}
	return sendSpreadsheet(c, filename, content)
}

func (h *ReportHandler) ExportAllBatches(c *fiber.Ctx) error {
	filename, content, err := h.service.ExportAllBatches()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return sendSpreadsheet(c, filename, content)
}

func (h *ReportHandler) ExportFactoryStock(c *fiber.Ctx) error {
	filename, content, err := h.service.ExportFactoryStock(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Factory not found"})
	}
	return sendSpreadsheet(c, filename, content)
}

func (h *ReportHandler) ExportAllStock(c *fiber.Ctx) error {
	filename, content, err := h.service.ExportAllStock()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return sendSpreadsheet(c, filename, content)
}

func sendSpreadsheet(c *fiber.Ctx, filename string, content []byte) error {
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Send(content)
}
