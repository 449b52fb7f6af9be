// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by [Load].
const (
	EnvConfigFile    = "FMLD_CONFIG_FILE"
	EnvPasteEndpoint = "FMLD_PASTE_ENDPOINT"
	EnvPasteAppID    = "FMLD_PASTE_APP_ID"
	EnvPasteAppToken = "FMLD_PASTE_APP_TOKEN"
)

// Build-time paste defaults, set with
//
//	-ldflags "-X github.com/H0llyW00dzZ/fmld/src/config.DefaultPasteAppID=... -X ..."
var (
	DefaultPasteEndpoint string
	DefaultPasteAppID    string
	DefaultPasteAppToken string
)

// Console formats accepted by log.consoleFormat.
const (
	ConsoleFormatText = "text"
	ConsoleFormatJSON = "json"
)

const (
	defaultFilePrefix     = "fmld"
	defaultTimeoutSeconds = 30
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config is the fmld configuration.
type Config struct {
	// Log: Diagnostic log settings
	Log struct {
		// SystemDir: Preferred log directory (default: OS specific)
		SystemDir string `json:"systemDir,omitempty" yaml:"systemDir,omitempty"`
		// FilePrefix: First component of log file names
		FilePrefix string `json:"filePrefix,omitempty" yaml:"filePrefix,omitempty"`
		// ConsoleFormat: "text" (message only) or "json"
		ConsoleFormat string `json:"consoleFormat,omitempty" yaml:"consoleFormat,omitempty"`
		// Debug: Start with the console in debug mode
		Debug bool `json:"debug,omitempty" yaml:"debug,omitempty"`
	} `json:"log" yaml:"log"`

	// Paste: Remote paste service settings
	Paste struct {
		// Endpoint: URL pastes are POSTed to
		Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
		// AppID: Application id (can also be set via FMLD_PASTE_APP_ID)
		AppID string `json:"appId,omitempty" yaml:"appId,omitempty"`
		// AppToken: Application token (can also be set via FMLD_PASTE_APP_TOKEN)
		AppToken string `json:"appToken,omitempty" yaml:"appToken,omitempty"`
		// Timeout: Request timeout in seconds
		Timeout int `json:"timeoutSeconds,omitempty" yaml:"timeoutSeconds,omitempty"`
		// CABundle: CA bundle to trust; replaced by a discovered one when missing
		CABundle string `json:"caBundle,omitempty" yaml:"caBundle,omitempty"`
		// CABundlePaths: Bundles probed in order when CABundle is missing
		CABundlePaths []string `json:"caBundlePaths,omitempty" yaml:"caBundlePaths,omitempty"`
	} `json:"paste" yaml:"paste"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	config := &Config{}
	config.Log.FilePrefix = defaultFilePrefix
	config.Log.ConsoleFormat = ConsoleFormatText
	config.Paste.Endpoint = DefaultPasteEndpoint
	config.Paste.AppID = DefaultPasteAppID
	config.Paste.AppToken = DefaultPasteAppToken
	config.Paste.Timeout = defaultTimeoutSeconds
	return config
}

// detectConfigFormat determines the configuration file format based on file extension.
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

// Load reads the configuration.
//
// Configuration Priority:
//  1. Default values are set
//  2. FMLD_CONFIG_FILE is used if configPath is empty
//  3. Config file values override defaults (if a path is given)
//  4. FMLD_PASTE_ENDPOINT, FMLD_PASTE_APP_ID and FMLD_PASTE_APP_TOKEN override the file
//
// Invalid values are reset to their defaults.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvPasteEndpoint); v != "" {
		config.Paste.Endpoint = v
	}
	if v := os.Getenv(EnvPasteAppID); v != "" {
		config.Paste.AppID = v
	}
	if v := os.Getenv(EnvPasteAppToken); v != "" {
		config.Paste.AppToken = v
	}

	config.normalize()
	return config, nil
}

func (c *Config) normalize() {
	if c.Log.FilePrefix == "" || strings.ContainsAny(c.Log.FilePrefix, `/\`) {
		c.Log.FilePrefix = defaultFilePrefix
	}
	switch strings.ToLower(c.Log.ConsoleFormat) {
	case ConsoleFormatJSON:
		c.Log.ConsoleFormat = ConsoleFormatJSON
	default:
		c.Log.ConsoleFormat = ConsoleFormatText
	}
	if c.Paste.Timeout <= 0 {
		c.Paste.Timeout = defaultTimeoutSeconds
	}
}
