// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

// Package parquet translates compiled OCSF event classes into parquet
// textual schema definitions.
package parquet

import (
	"strings"

	"github.com/crowdalert/ocsf-parquet/internal/ocsf"
	"github.com/crowdalert/ocsf-parquet/internal/translate"
)

func init() {
	translate.Register(&Translator{})
}

// Translator renders compiled OCSF classes as parquet message definitions.
type Translator struct{}

// Name returns the translator's identifier.
func (t *Translator) Name() string {
	return "parquet"
}

// FileExtension returns "". Schema files are named after the class alone.
func (t *Translator) FileExtension() string {
	return ""
}

// Translate renders a single event class.
func (t *Translator) Translate(className string, class *ocsf.ClassDef, schema *ocsf.Schema) ([]byte, error) {
	return []byte(EmitClass(className, class, schema)), nil
}

// EmitClass renders one class as a parquet message definition.
func EmitClass(className string, class *ocsf.ClassDef, schema *ocsf.Schema) string {
	lines := []string{"message " + className + " {"}

	if class.Attributes.Len() > 0 {
		ct := &classTranslator{
			schema:        schema,
			activeObjects: make(map[string]struct{}),
			seenAttrs:     make(map[string]struct{}),
		}
		lines = append(lines, ct.translate(class.Attributes, 2, "")...)
	}

	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// attrKind is an attribute's declared-type classification, computed once
// per attribute before any rendering decision.
type attrKind int

const (
	kindPrimitive attrKind = iota
	kindObject
)

type classified struct {
	kind     attrKind
	typeName string
	object   *ocsf.ObjectDef
	isArray  bool
}

// classTranslator carries the recursion guards for a single class. A
// fresh value is created per class and never shared, so independent
// classes can be translated concurrently.
type classTranslator struct {
	schema *ocsf.Schema

	// activeObjects holds the object names on the current expansion path.
	// An object already on the path renders as an opaque leaf instead of
	// recursing, which bounds the expansion of self-referencing objects.
	activeObjects map[string]struct{}

	// seenAttrs holds qualified attribute paths already handled, so a
	// class's own attributes shadow inherited ones of the same name.
	seenAttrs map[string]struct{}
}

func (c *classTranslator) classify(attr *ocsf.Attribute) classified {
	name := attr.DeclaredType()
	cl := classified{kind: kindPrimitive, typeName: name, isArray: attr.IsArray}
	if obj := c.schema.Objects[name]; obj != nil {
		cl.kind = kindObject
		cl.object = obj
	}
	return cl
}

// translate expands an attribute map into field definition lines at the
// given indentation, in document order. The qualified path of every
// attribute is marked before the attribute is examined, so later
// occurrences of the same path are absorbed without emitting anything.
func (c *classTranslator) translate(attrs *ocsf.OrderedMap[*ocsf.Attribute], indent int, prefix string) []string {
	var lines []string
	pad := strings.Repeat(" ", indent)

	for name, attr := range attrs.All() {
		key := prefix + ":" + name
		if _, seen := c.seenAttrs[key]; seen {
			continue
		}
		c.seenAttrs[key] = struct{}{}

		if attr == nil {
			continue
		}

		cl := c.classify(attr)

		if cl.kind == kindObject {
			if _, active := c.activeObjects[cl.typeName]; !active {
				c.activeObjects[cl.typeName] = struct{}{}
				lines = append(lines, c.renderGroup(name, key, cl, indent)...)
				delete(c.activeObjects, cl.typeName)
				continue
			}
			// Already expanding this object further up the path; fall
			// through and render the reference as an opaque leaf.
		}

		pt := Resolve(cl.typeName, c.schema.Types)
		if cl.isArray {
			lines = append(lines,
				pad+"optional group "+name+" (LIST) {",
				pad+"  repeated group list {",
				pad+"    optional "+pt.Render("element")+";",
				pad+"  }",
				pad+"}",
			)
		} else {
			lines = append(lines, pad+"optional "+pt.Render(name)+";")
		}
	}

	return lines
}

// renderGroup renders an object-typed attribute as a nested group.
// Arrays get the two-level LIST wrapper regardless of element type.
func (c *classTranslator) renderGroup(name, key string, cl classified, indent int) []string {
	pad := strings.Repeat(" ", indent)

	var lines []string
	if cl.isArray {
		lines = append(lines,
			pad+"optional group "+name+" (LIST) {",
			pad+"  repeated group list {",
		)
		lines = append(lines, c.expandObject(cl.object, indent+4, key)...)
		lines = append(lines, pad+"  }", pad+"}")
		return lines
	}

	lines = append(lines, pad+"optional group "+name+" {")
	lines = append(lines, c.expandObject(cl.object, indent+2, key)...)
	lines = append(lines, pad+"}")
	return lines
}

// expandObject emits an object's own attributes followed by its inherited
// ones, walking the extends chain to its root. All levels share the same
// path prefix and seenAttrs set, so the most-derived definition wins on
// name collisions. An unresolvable extends target ends the walk.
func (c *classTranslator) expandObject(obj *ocsf.ObjectDef, indent int, prefix string) []string {
	var lines []string
	visited := make(map[*ocsf.ObjectDef]struct{})
	for obj != nil {
		if _, ok := visited[obj]; ok {
			break
		}
		visited[obj] = struct{}{}
		lines = append(lines, c.translate(obj.Attributes, indent, prefix)...)
		obj = c.schema.Objects[obj.Extends]
	}
	return lines
}
