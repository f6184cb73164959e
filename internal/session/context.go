// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

// Package session provides compiled-schema loading for CLI commands.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/crowdalert/ocsf-parquet/internal/config"
	"github.com/crowdalert/ocsf-parquet/internal/ocsf"
)

var (
	// ErrNoSchema indicates no schema file was given and no project config
	// names one.
	ErrNoSchema = errors.New("no schema file (pass --schema or add ocsf-parquet.yaml)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemaNotFound indicates the schema file doesn't exist.
	ErrSchemaNotFound = errors.New("schema file not found")

	// ErrInvalidSchema indicates the schema file exists but couldn't be parsed.
	ErrInvalidSchema = errors.New("invalid compiled schema")
)

// ConfigFileName is the name of the ocsf-parquet configuration file.
const ConfigFileName = "ocsf-parquet.yaml"

// Context holds the resolved configuration and the parsed compiled schema.
type Context struct {
	// Config is the project configuration, nil when no config file exists.
	Config *config.Config

	// Path is the schema file path that was loaded.
	Path string

	// Schema is the parsed compiled OCSF schema.
	Schema *ocsf.Schema
}

// Load resolves the schema location and parses it. An explicit schemaPath
// wins; otherwise the project config file in the working directory names
// the schema.
func Load(schemaPath string) (*Context, error) {
	ctx := &Context{}

	if schemaPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}

		configPath := filepath.Join(cwd, ConfigFileName)
		if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
			return nil, ErrNoSchema
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if validateErr := cfg.Validate(); validateErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
		}
		if cfg.Schema == "" {
			return nil, ErrNoSchema
		}

		ctx.Config = cfg
		schemaPath = cfg.Schema
		if !filepath.IsAbs(schemaPath) {
			schemaPath = filepath.Join(cwd, schemaPath)
		}
	}

	if _, err := os.Stat(schemaPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, schemaPath)
	}

	schema, err := ocsf.ParseFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	ctx.Path = schemaPath
	ctx.Schema = schema
	return ctx, nil
}
