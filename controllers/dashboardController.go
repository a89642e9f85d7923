package controllers

import (
	"github.com/gofiber/fiber/v2"

	"painel-vendas-backend/database"
	"painel-vendas-backend/reports"
	"painel-vendas-backend/targets"
)

// assembler builds a fresh report assembler per request. It carries no
// state of its own, so this is just wiring.
func assembler() *reports.Assembler {
	return reports.New(database.ERP, targets.Default())
}

// Dashboard renders the client roster. Filters arrive as ?tipo=vendedor|
// grupo|busca&valor=..., matching the dashboard frontend.
func Dashboard(c *fiber.Ctx) error {
	filter := reports.ParseRosterFilter(c.Query("tipo", "todos"), c.Query("valor"))
	return c.JSON(assembler().Roster(filter))
}

// Salespeople lists the active salespeople for the roster filter dropdown.
func Salespeople(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"salespeople": assembler().Salespeople(),
	})
}

// ClientGroups lists the distinct client group codes for the roster filter.
func ClientGroups(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"groups": assembler().ClientGroups(),
	})
}
