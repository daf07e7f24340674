// Package config resolves keyhunt configuration from defaults, optional
// files, and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config captures the keyhunt configuration resolved from defaults, optional
// files, and environment overrides.
type Config struct {
	OutputDir       string `yaml:"output_dir"`
	CatalogPath     string `yaml:"catalog_path"`
	AuditLogPath    string `yaml:"audit_log_path"`
	XORKey          string `yaml:"xor_key"`
	FeasibilityBits int    `yaml:"feasibility_bits"`
	SuccessBits     int    `yaml:"success_bits"`
	Seed            uint64 `yaml:"seed"`
}

// Default returns the built-in keyhunt configuration.
func Default() Config {
	return Config{
		OutputDir:       "/out",
		CatalogPath:     "",
		AuditLogPath:    "",
		XORKey:          "satoshi",
		FeasibilityBits: 20,
		SuccessBits:     15,
		Seed:            0,
	}
}

// Load resolves the keyhunt configuration using defaults, configuration
// files, and environment overrides. The lookup order for configuration files
// is:
//  1. ~/.keyhunt/config.yml
//  2. ./keyhunt.yml
//
// Environment variables prefixed with KEYHUNT_ have the highest precedence.
func Load() (Config, error) {
	cfg := Default()

	if err := loadHomeConfig(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadLocalConfig(&cfg); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.XORKey) == "" {
		return errors.New("xor_key cannot be empty")
	}
	if c.FeasibilityBits <= 0 {
		return fmt.Errorf("feasibility_bits must be positive, got %d", c.FeasibilityBits)
	}
	if c.SuccessBits <= 0 {
		return fmt.Errorf("success_bits must be positive, got %d", c.SuccessBits)
	}
	if c.SuccessBits > c.FeasibilityBits {
		return fmt.Errorf("success_bits %d cannot exceed feasibility_bits %d", c.SuccessBits, c.FeasibilityBits)
	}
	return nil
}

func loadHomeConfig(cfg *Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("determine home directory: %w", err)
	}

	path := filepath.Join(home, ".keyhunt", "config.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := applyFileConfig(cfg, data); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func loadLocalConfig(cfg *Config) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}
	path := filepath.Join(wd, "keyhunt.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := applyFileConfig(cfg, data); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyFileConfig(cfg *Config, data []byte) error {
	return yaml.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := lookupEnv("KEYHUNT_OUT"); ok {
		cfg.OutputDir = v
	}
	if v, ok := lookupEnv("KEYHUNT_CATALOG"); ok {
		cfg.CatalogPath = v
	}
	if v, ok := lookupEnv("KEYHUNT_AUDIT_LOG"); ok {
		cfg.AuditLogPath = v
	}
	if v, ok := lookupEnv("KEYHUNT_XOR_KEY"); ok {
		cfg.XORKey = v
	}
	if v, ok := lookupEnv("KEYHUNT_FEASIBILITY_BITS"); ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FeasibilityBits = parsed
		}
	}
	if v, ok := lookupEnv("KEYHUNT_SUCCESS_BITS"); ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.SuccessBits = parsed
		}
	}
	if v, ok := lookupEnv("KEYHUNT_SEED"); ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = parsed
		}
	}
}

func lookupEnv(key string) (string, bool) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	val = strings.TrimSpace(val)
	if val == "" {
		return "", false
	}
	return val, true
}
