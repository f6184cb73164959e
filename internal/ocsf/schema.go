// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

// Package ocsf defines the compiled OCSF schema model consumed by the
// schema translators.
package ocsf

import "errors"

// Schema is a compiled OCSF schema: the fully merged class/object/type
// graph produced by the OCSF compiler, with profiles and cross-file
// composition already flattened.
type Schema struct {
	Classes *OrderedMap[*ClassDef] `json:"classes" yaml:"classes"`
	Objects map[string]*ObjectDef  `json:"objects" yaml:"objects"`
	Types   map[string]*TypeDef    `json:"types" yaml:"types"`
}

// Deprecation marks a schema element as deprecated.
type Deprecation struct {
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Since   string `json:"since,omitempty" yaml:"since,omitempty"`
}

// ClassDef is an event class definition.
type ClassDef struct {
	Caption    string                  `json:"caption,omitempty" yaml:"caption,omitempty"`
	Category   string                  `json:"category,omitempty" yaml:"category,omitempty"`
	Attributes *OrderedMap[*Attribute] `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Deprecated *Deprecation            `json:"@deprecated,omitempty" yaml:"@deprecated,omitempty"`
}

// ObjectDef is a reusable object definition. Extends names the parent
// object when the definition inherits attributes.
type ObjectDef struct {
	Caption    string                  `json:"caption,omitempty" yaml:"caption,omitempty"`
	Attributes *OrderedMap[*Attribute] `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Extends    string                  `json:"extends,omitempty" yaml:"extends,omitempty"`
	Deprecated *Deprecation            `json:"@deprecated,omitempty" yaml:"@deprecated,omitempty"`
}

// Attribute is a single attribute within a class or object. A null
// attribute in the source document decodes to a nil *Attribute.
type Attribute struct {
	Caption     string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	TypeName    string `json:"type_name,omitempty" yaml:"type_name,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	IsArray     bool   `json:"is_array,omitempty" yaml:"is_array,omitempty"`
}

// DeclaredType returns the authoritative type name: type_name when
// present, otherwise type.
func (a *Attribute) DeclaredType() string {
	if a.TypeName != "" {
		return a.TypeName
	}
	return a.Type
}

// TypeDef is a primitive type or an alias. Type names the underlying
// primitive or another alias when the definition is an alias.
type TypeDef struct {
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Validate checks that the three top-level mappings are present. The
// translators assume a well-formed compiled schema and do not re-check.
func (s *Schema) Validate() error {
	if s.Classes == nil {
		return errors.New("schema has no classes mapping")
	}
	if s.Objects == nil {
		return errors.New("schema has no objects mapping")
	}
	if s.Types == nil {
		return errors.New("schema has no types mapping")
	}
	return nil
}
