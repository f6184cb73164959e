// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

package parquet

import "github.com/crowdalert/ocsf-parquet/internal/ocsf"

// PhysicalType is the parquet storage primitive for a scalar attribute,
// plus its logical type annotation when one applies.
type PhysicalType struct {
	Storage    string
	Annotation string
}

// Render formats the type for a named field, e.g.
// "INT32 pid (INTEGER(32, true))".
func (p PhysicalType) Render(name string) string {
	if p.Annotation == "" {
		return p.Storage + " " + name
	}
	return p.Storage + " " + name + " (" + p.Annotation + ")"
}

// stringDefault is the fallback for empty, unknown, and unresolvable
// type names.
var stringDefault = PhysicalType{Storage: "BYTE_ARRAY", Annotation: "STRING"}

var basicTypes = map[string]PhysicalType{
	"boolean_t":   {Storage: "BOOLEAN"},
	"long_t":      {Storage: "INT64", Annotation: "INTEGER(64, true)"},
	"integer_t":   {Storage: "INT32", Annotation: "INTEGER(32, true)"},
	"float_t":     {Storage: "FLOAT"},
	"json_t":      {Storage: "BYTE_ARRAY", Annotation: "JSON"},
	"timestamp_t": {Storage: "INT64", Annotation: "TIMESTAMP(MILLIS, false)"},
}

// Resolve maps an OCSF scalar type name to its parquet physical type.
// Aliases are followed through the schema's type dictionary until a basic
// type is reached; alias chains are assumed finite and acyclic. Unknown
// names fall back to the string default.
func Resolve(typeName string, types map[string]*ocsf.TypeDef) PhysicalType {
	if typeName == "" {
		return stringDefault
	}
	if pt, ok := basicTypes[typeName]; ok {
		return pt
	}
	if def, ok := types[typeName]; ok && def != nil && def.Type != "" {
		return Resolve(def.Type, types)
	}
	return stringDefault
}
