package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// Projection renders one salesperson's month-to-date quota attainment and
// working-days projection.
func Projection(c *fiber.Ctx) error {
	code, err := c.ParamsInt("id")
	if err != nil || code <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid salesperson id")
	}
	return c.JSON(assembler().Projection(code))
}

// CompanyProjection renders the same record aggregated over all quotas.
func CompanyProjection(c *fiber.Ctx) error {
	return c.JSON(assembler().CompanyProjection())
}
