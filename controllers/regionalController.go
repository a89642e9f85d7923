package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const dateParamLayout = "2006-01-02"

// Regional renders the city/district/channel breakdown for one salesperson.
// ?from and ?to bound the period (defaults: start of the current month to
// today).
func Regional(c *fiber.Ctx) error {
	code, err := c.ParamsInt("id")
	if err != nil || code <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid salesperson id")
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if s := c.Query("from"); s != "" {
		from, err = time.Parse(dateParamLayout, s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid from date, want YYYY-MM-DD")
		}
	}
	if s := c.Query("to"); s != "" {
		to, err = time.Parse(dateParamLayout, s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid to date, want YYYY-MM-DD")
		}
		// Make the upper bound inclusive for DATETIME columns.
		to = to.AddDate(0, 0, 1).Add(-time.Second)
	}
	if to.Before(from) {
		return fiber.NewError(fiber.StatusBadRequest, "date range reversed")
	}

	return c.JSON(assembler().Regional(code, from, to))
}
