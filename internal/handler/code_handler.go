package handler

import (
	"go-traceability/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CodeHandler struct {
	service service.CodeService
}

func NewCodeHandler(s service.CodeService) *CodeHandler {
	return &CodeHandler{service: s}
}

func (h *CodeHandler) GenerateProductCodes(c *fiber.Ctx) error {
	var req service.GenerateProductCodesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	code, err := h.service.GenerateProductCodes(&req, getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product codes generated", "data": code})
}

func (h *CodeHandler) GenerateFirstLevelCodes(c *fiber.Ctx) error {
	var req service.GenerateLevelCodesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	code, err := h.service.GenerateFirstLevelCodes(&req, getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "First level codes generated", "data": code})
}

func (h *CodeHandler) GenerateSecondLevelCodes(c *fiber.Ctx) error {
	var req service.GenerateLevelCodesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	code, err := h.service.GenerateSecondLevelCodes(&req, getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Second level codes generated", "data": code})
}

func (h *CodeHandler) GenerateShipperCode(c *fiber.Ctx) error {
	var req service.GenerateShipperRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	shipper, err := h.service.GenerateShipperCode(&req, getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Shipper code generated", "data": shipper})
}

func (h *CodeHandler) GetProductCodes(c *fiber.Ctx) error {
	page, perPage := pageParams(c)
	codes, total, err := h.service.ListProductCodes(page, perPage)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(paginated(codes, total, page, perPage))
}

func (h *CodeHandler) GetFirstLevelCodes(c *fiber.Ctx) error {
	page, perPage := pageParams(c)
	codes, total, err := h.service.ListFirstLevelCodes(page, perPage)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(paginated(codes, total, page, perPage))
}

func (h *CodeHandler) GetSecondLevelCodes(c *fiber.Ctx) error {
	page, perPage := pageParams(c)
	codes, total, err := h.service.ListSecondLevelCodes(page, perPage)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(paginated(codes, total, page, perPage))
}

func (h *CodeHandler) GetShipperCodes(c *fiber.Ctx) error {
	page, perPage := pageParams(c)
	shippers, total, err := h.service.ListShipperCodes(page, perPage)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(paginated(shippers, total, page, perPage))
}

func (h *CodeHandler) GetShipperCode(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shipper ID"})
	}

	shipper, err := h.service.GetShipperCode(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Shipper not found"})
	}
	return c.JSON(shipper)
}

// ShowQR returns the QR image for a stored code as a base64 data URL
// GET /api/v1/codes/:type/:id/qr
func (h *CodeHandler) ShowQR(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid code ID"})
	}

	image, data, err := h.service.CodeImage(c.Params("type"), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Code not found"})
	}
	return c.JSON(fiber.Map{"qr_image": image, "qr_data": data})
}
