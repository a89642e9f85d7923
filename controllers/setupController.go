package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"painel-vendas-backend/database"
	"painel-vendas-backend/middlewares"
	"painel-vendas-backend/utils"
)

type setupDTO struct {
	Server   string `json:"server" validate:"required"`
	Port     string `json:"port"`
	Database string `json:"database" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SetupDatabase probes the given ERP credentials and persists them when
// the store answers. The shared gateway drops its pool so the next query
// runs against the new credentials.
func SetupDatabase(c *fiber.Ctx) error {
	var dto setupDTO
	if err := middlewares.BindAndValidate(c, &dto); err != nil {
		return err
	}
	utils.NormalizeDTO(&dto)

	cfg := database.ERPConfig{
		Server:   dto.Server,
		Port:     dto.Port,
		Database: dto.Database,
		Username: dto.Username,
		Password: dto.Password,
	}

	if err := database.TestERPConnection(cfg); err != nil {
		log.Warn().Err(err).Str("server", cfg.Server).Msg("erp setup probe failed")
		c.Status(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"message": "could not connect to the ERP store",
			"error":   err.Error(),
		})
	}

	if err := database.SaveERPConfig(cfg); err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"message": "could not persist ERP credentials",
		})
	}

	database.ERP.Discard()
	log.Info().Str("server", cfg.Server).Str("database", cfg.Database).Msg("erp credentials updated")
	return c.JSON(fiber.Map{
		"message": "success",
	})
}

// Health reports the service and current ERP connectivity.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":        "ok",
		"erp_connected": database.ERP.Ping() == nil,
	})
}
