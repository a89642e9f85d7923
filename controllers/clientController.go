package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// ClientAnalysis renders the per-client drill-down: credit header, open
// receivables, ABC product ranking, and the two-year monthly comparison.
func ClientAnalysis(c *fiber.Ctx) error {
	code, err := c.ParamsInt("id")
	if err != nil || code <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid client id")
	}

	view, ok := assembler().ClientAnalysis(code)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "client not found")
	}
	return c.JSON(view)
}
