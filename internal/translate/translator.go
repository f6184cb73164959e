// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

// Package translate provides schema translation utilities.
package translate

import (
	"fmt"

	"github.com/crowdalert/ocsf-parquet/internal/ocsf"
)

// Translator defines the interface all format translators must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "parquet")
	Name() string

	// Translate renders a single event class in the target format.
	Translate(className string, class *ocsf.ClassDef, schema *ocsf.Schema) ([]byte, error)

	// FileExtension returns the output file extension, or "" when output
	// files are named after the class alone.
	FileExtension() string
}

var translators = make(map[string]Translator)

// Register adds a translator to the registry.
func Register(t Translator) {
	translators[t.Name()] = t
}

// Get retrieves a translator by name.
func Get(name string) (Translator, error) {
	t, ok := translators[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names.
func Available() []string {
	names := make([]string, 0, len(translators))
	for name := range translators {
		names = append(names, name)
	}
	return names
}
