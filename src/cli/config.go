// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/check-certificate/src/internal/x509/dates"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the certificate auditor configuration structure.
//
// The configuration can be loaded from a JSON or YAML file specified by the
// CHECK_CERTIFICATE_CONFIG_FILE environment variable (or the --config flag),
// with defaults applied for any missing values.
// Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Tool: Settings for the external X.509 tool invocation
	Tool struct {
		// Path: Binary name or path of the OpenSSL-compatible tool
		// (can also be set via the CHECK_CERTIFICATE_TOOL env var)
		Path string `json:"path,omitempty" yaml:"path,omitempty"`
	} `json:"tool" yaml:"tool"`
}

// detectConfigFormat determines the configuration file format based on file extension.
// It supports .json, .yaml, and .yml extensions for flexible configuration management.
//
// The function uses case-insensitive extension matching for cross-platform compatibility.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
// It supports both JSON and YAML formats for configuration flexibility.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads auditor configuration from a JSON or YAML file or applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. CHECK_CERTIFICATE_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
//  4. The CHECK_CERTIFICATE_TOOL environment variable overrides the config file
//
// The file format is automatically detected based on the file extension
// (.json, .yaml, or .yml). The --tool CLI flag, handled by the caller, wins
// over everything loaded here.
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set defaults
	config.Tool.Path = dates.DefaultTool

	// Check environment variable for config file path if not provided
	if configPath == "" {
		configPath = os.Getenv("CHECK_CERTIFICATE_CONFIG_FILE")
	}

	// Try to load from file if path is provided
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Detect format and unmarshal accordingly
		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		// Validate and set defaults for invalid values
		if config.Tool.Path == "" {
			config.Tool.Path = dates.DefaultTool
		}
	}

	// Override tool path from environment when set
	if env := os.Getenv("CHECK_CERTIFICATE_TOOL"); env != "" {
		config.Tool.Path = env
	}

	return config, nil
}
