// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

package parquet

import "github.com/crowdalert/ocsf-parquet/internal/ocsf"

// ClassSchema pairs one generated schema text with its routing metadata.
// Category routing is the caller's concern; it may be empty.
type ClassSchema struct {
	Category string
	Name     string
	Text     string
}

// GenerateAll renders every non-deprecated class, preserving the schema's
// stored class order.
func GenerateAll(schema *ocsf.Schema) []ClassSchema {
	var out []ClassSchema
	for name, class := range schema.Classes.All() {
		if class == nil || class.Deprecated != nil {
			continue
		}
		out = append(out, ClassSchema{
			Category: class.Category,
			Name:     name,
			Text:     EmitClass(name, class, schema),
		})
	}
	return out
}
