package handler

import (
	"github.com/gofiber/fiber/v2"
)

const defaultPerPage = 10

// getUserName pulls the display name set by the auth middleware
func getUserName(c *fiber.Ctx) string {
	name := c.Locals("user_name")
	if name == nil {
		return "system"
	}
	return name.(string)
}

func pageParams(c *fiber.Ctx) (page, perPage int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage = c.QueryInt("per_page", defaultPerPage)
	if perPage < 1 || perPage > 100 {
		perPage = defaultPerPage
	}
	return page, perPage
}

func paginated(items interface{}, total int64, page, perPage int) fiber.Map {
	return fiber.Map{
		"items":    items,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	}
}
