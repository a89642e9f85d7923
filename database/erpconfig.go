package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const defaultERPConfigPath = "database/config.json"

// ERPConfig holds the connection credentials for the external ERP store.
// They arrive either from the saved setup file or from the environment;
// the backend never validates them beyond attempting a connection.
type ERPConfig struct {
	Server   string `json:"server"`
	Port     string `json:"port"`
	Database string `json:"database"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// DSN renders the MySQL connection string for the ERP store. parseTime is
// required so DATETIME columns scan into time.Time at the query boundary.
func (c ERPConfig) DSN() string {
	port := c.Port
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4",
		c.Username, c.Password, c.Server, port, c.Database)
}

func erpConfigPath() string {
	if p := os.Getenv("ERP_CONFIG_FILE"); p != "" {
		return p
	}
	return defaultERPConfigPath
}

// LoadERPConfig reads the saved setup file, falling back to ERP_* env vars
// when no file exists. An error means no usable credentials anywhere.
func LoadERPConfig() (ERPConfig, error) {
	var cfg ERPConfig

	raw, err := os.ReadFile(erpConfigPath())
	if err == nil {
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return ERPConfig{}, fmt.Errorf("parse erp config: %w", err)
		}
		if cfg.Server != "" {
			return cfg, nil
		}
	}

	cfg = ERPConfig{
		Server:   os.Getenv("ERP_HOST"),
		Port:     os.Getenv("ERP_PORT"),
		Database: os.Getenv("ERP_DATABASE"),
		Username: os.Getenv("ERP_USER"),
		Password: os.Getenv("ERP_PASSWORD"),
	}
	if cfg.Server == "" || cfg.Database == "" {
		return ERPConfig{}, fmt.Errorf("erp store not configured (no %s and no ERP_* env)", erpConfigPath())
	}
	return cfg, nil
}

// SaveERPConfig persists credentials from the setup endpoint so they
// survive restarts, mirroring how the previous dashboard stored them.
func SaveERPConfig(cfg ERPConfig) error {
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	path := erpConfigPath()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	return os.WriteFile(path, raw, 0o600)
}
