// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

package ocsf

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a compiled OCSF schema from an io.Reader.
type Parser struct {
	parse func(io.Reader) (*Schema, error)
}

var (
	// JSON parses compiled schemas from JSON.
	JSON = Parser{parseJSON}
	// YAML parses compiled schemas from YAML.
	YAML = Parser{parseYAML}
)

// Parse decodes a compiled schema from r and validates its top-level
// structure.
func (p Parser) Parse(r io.Reader) (*Schema, error) {
	schema, err := p.parse(r)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return schema, nil
}

func parseJSON(r io.Reader) (*Schema, error) {
	var schema Schema
	if err := json.NewDecoder(r).Decode(&schema); err != nil {
		return nil, fmt.Errorf("failed to decode schema JSON: %w", err)
	}
	return &schema, nil
}

func parseYAML(r io.Reader) (*Schema, error) {
	var schema Schema
	if err := yaml.NewDecoder(r).Decode(&schema); err != nil {
		return nil, fmt.Errorf("failed to decode schema YAML: %w", err)
	}
	return &schema, nil
}

// ParseFile loads a compiled schema file. The format is determined from
// the file extension.
func ParseFile(path string) (*Schema, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	switch {
	case strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml"):
		return YAML.Parse(f)
	case strings.HasSuffix(path, ".json"):
		return JSON.Parse(f)
	default:
		return nil, fmt.Errorf("unsupported schema format: %s", path)
	}
}
