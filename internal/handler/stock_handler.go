package handler

import (
	"go-traceability/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	service service.StockService
}

func NewStockHandler(s service.StockService) *StockHandler {
	return &StockHandler{service: s}
}

func (h *StockHandler) UpsertStock(c *fiber.Ctx) error {
	var req service.UpsertStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	stock, err := h.service.UpsertStock(&req, getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Stock updated", "data": stock})
}

func (h *StockHandler) GetStockReport(c *fiber.Ctx) error {
	page, perPage := pageParams(c)
	report, err := h.service.GetStockReport(page, perPage)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(report)
}

func (h *StockHandler) GetFactoryStock(c *fiber.Ctx) error {
	page, perPage := pageParams(c)
	factory, items, total, err := h.service.GetFactoryStock(c.Params("id"), page, perPage)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"factory": factory,
		"stock":   paginated(items, total, page, perPage),
	})
}

func (h *StockHandler) GetBatchStockTotal(c *fiber.Ctx) error {
	total, err := h.service.BatchStockTotal(c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"batch_id": c.Params("id"), "total_stock": total})
}
