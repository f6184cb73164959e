// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

package parquet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crowdalert/ocsf-parquet/internal/ocsf"
	"github.com/crowdalert/ocsf-parquet/internal/translate"
)

func attrMap(pairs ...any) *ocsf.OrderedMap[*ocsf.Attribute] {
	m := &ocsf.OrderedMap[*ocsf.Attribute]{}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1].(*ocsf.Attribute))
	}
	return m
}

func newSchema() *ocsf.Schema {
	return &ocsf.Schema{
		Classes: &ocsf.OrderedMap[*ocsf.ClassDef]{},
		Objects: map[string]*ocsf.ObjectDef{},
		Types:   map[string]*ocsf.TypeDef{},
	}
}

func TestEmitClass_ScalarAttribute(t *testing.T) {
	schema := newSchema()
	class := &ocsf.ClassDef{
		Attributes: attrMap("pid", &ocsf.Attribute{TypeName: "integer_t"}),
	}

	want := `message process_activity {
  optional INT32 pid (INTEGER(32, true));
}`
	assert.Equal(t, want, EmitClass("process_activity", class, schema))
}

func TestEmitClass_ScalarArray(t *testing.T) {
	schema := newSchema()
	class := &ocsf.ClassDef{
		Attributes: attrMap("tags", &ocsf.Attribute{TypeName: "string_t", IsArray: true}),
	}

	want := `message base_event {
  optional group tags (LIST) {
    repeated group list {
      optional BYTE_ARRAY element (STRING);
    }
  }
}`
	assert.Equal(t, want, EmitClass("base_event", class, schema))
}

func TestEmitClass_EmptyClass(t *testing.T) {
	schema := newSchema()

	want := "message base_event {\n}"
	assert.Equal(t, want, EmitClass("base_event", &ocsf.ClassDef{}, schema))
}

func TestEmitClass_NullAttributeSkipped(t *testing.T) {
	schema := newSchema()
	class := &ocsf.ClassDef{
		Attributes: attrMap(
			"unmapped", (*ocsf.Attribute)(nil),
			"pid", &ocsf.Attribute{TypeName: "integer_t"},
		),
	}

	want := `message base_event {
  optional INT32 pid (INTEGER(32, true));
}`
	assert.Equal(t, want, EmitClass("base_event", class, schema))
}

func TestEmitClass_NestedObject(t *testing.T) {
	schema := newSchema()
	schema.Objects["process"] = &ocsf.ObjectDef{
		Attributes: attrMap(
			"pid", &ocsf.Attribute{TypeName: "integer_t"},
			"name", &ocsf.Attribute{TypeName: "string_t"},
		),
	}
	class := &ocsf.ClassDef{
		Attributes: attrMap("process", &ocsf.Attribute{TypeName: "process"}),
	}

	want := `message process_activity {
  optional group process {
    optional INT32 pid (INTEGER(32, true));
    optional BYTE_ARRAY name (STRING);
  }
}`
	assert.Equal(t, want, EmitClass("process_activity", class, schema))
}

func TestEmitClass_ObjectArray(t *testing.T) {
	schema := newSchema()
	schema.Objects["user"] = &ocsf.ObjectDef{
		Attributes: attrMap("name", &ocsf.Attribute{TypeName: "string_t"}),
	}
	class := &ocsf.ClassDef{
		Attributes: attrMap("users", &ocsf.Attribute{TypeName: "user", IsArray: true}),
	}

	want := `message iam_activity {
  optional group users (LIST) {
    repeated group list {
      optional BYTE_ARRAY name (STRING);
    }
  }
}`
	assert.Equal(t, want, EmitClass("iam_activity", class, schema))
}

func TestEmitClass_DeepNesting(t *testing.T) {
	schema := newSchema()
	schema.Objects["file"] = &ocsf.ObjectDef{
		Attributes: attrMap("path", &ocsf.Attribute{TypeName: "string_t"}),
	}
	schema.Objects["process"] = &ocsf.ObjectDef{
		Attributes: attrMap(
			"loaded_modules", &ocsf.Attribute{TypeName: "string_t", IsArray: true},
			"file", &ocsf.Attribute{TypeName: "file"},
		),
	}
	class := &ocsf.ClassDef{
		Attributes: attrMap("process", &ocsf.Attribute{TypeName: "process"}),
	}

	want := `message process_activity {
  optional group process {
    optional group loaded_modules (LIST) {
      repeated group list {
        optional BYTE_ARRAY element (STRING);
      }
    }
    optional group file {
      optional BYTE_ARRAY path (STRING);
    }
  }
}`
	assert.Equal(t, want, EmitClass("process_activity", class, schema))
}

func TestEmitClass_SelfReference(t *testing.T) {
	schema := newSchema()
	schema.Objects["process"] = &ocsf.ObjectDef{
		Attributes: attrMap(
			"pid", &ocsf.Attribute{TypeName: "integer_t"},
			"parent", &ocsf.Attribute{TypeName: "process"},
		),
	}
	class := &ocsf.ClassDef{
		Attributes: attrMap("process", &ocsf.Attribute{TypeName: "process"}),
	}

	// The repeated occurrence renders as an opaque leaf, not a group.
	want := `message process_activity {
  optional group process {
    optional INT32 pid (INTEGER(32, true));
    optional BYTE_ARRAY parent (STRING);
  }
}`
	assert.Equal(t, want, EmitClass("process_activity", class, schema))
}

func TestEmitClass_TransitiveCycle(t *testing.T) {
	schema := newSchema()
	schema.Objects["container"] = &ocsf.ObjectDef{
		Attributes: attrMap("pod", &ocsf.Attribute{TypeName: "pod"}),
	}
	schema.Objects["pod"] = &ocsf.ObjectDef{
		Attributes: attrMap("container", &ocsf.Attribute{TypeName: "container"}),
	}
	class := &ocsf.ClassDef{
		Attributes: attrMap("container", &ocsf.Attribute{TypeName: "container"}),
	}

	want := `message container_activity {
  optional group container {
    optional group pod {
      optional BYTE_ARRAY container (STRING);
    }
  }
}`
	assert.Equal(t, want, EmitClass("container_activity", class, schema))
}

func TestEmitClass_SiblingsOfSameObjectBothExpand(t *testing.T) {
	schema := newSchema()
	schema.Objects["user"] = &ocsf.ObjectDef{
		Attributes: attrMap("name", &ocsf.Attribute{TypeName: "string_t"}),
	}
	class := &ocsf.ClassDef{
		Attributes: attrMap(
			"src_user", &ocsf.Attribute{TypeName: "user"},
			"dst_user", &ocsf.Attribute{TypeName: "user"},
		),
	}

	want := `message authentication {
  optional group src_user {
    optional BYTE_ARRAY name (STRING);
  }
  optional group dst_user {
    optional BYTE_ARRAY name (STRING);
  }
}`
	assert.Equal(t, want, EmitClass("authentication", class, schema))
}

func TestEmitClass_Inheritance(t *testing.T) {
	schema := newSchema()
	schema.Objects["entity"] = &ocsf.ObjectDef{
		Attributes: attrMap("y", &ocsf.Attribute{TypeName: "string_t"}),
	}
	schema.Objects["actor"] = &ocsf.ObjectDef{
		Attributes: attrMap("x", &ocsf.Attribute{TypeName: "integer_t"}),
		Extends:    "entity",
	}
	class := &ocsf.ClassDef{
		Attributes: attrMap("actor", &ocsf.Attribute{TypeName: "actor"}),
	}

	// Own attributes first, inherited ones after.
	want := `message base_event {
  optional group actor {
    optional INT32 x (INTEGER(32, true));
    optional BYTE_ARRAY y (STRING);
  }
}`
	assert.Equal(t, want, EmitClass("base_event", class, schema))
}

func TestEmitClass_InheritanceShadowing(t *testing.T) {
	schema := newSchema()
	schema.Objects["entity"] = &ocsf.ObjectDef{
		Attributes: attrMap(
			"x", &ocsf.Attribute{TypeName: "string_t"},
			"y", &ocsf.Attribute{TypeName: "string_t"},
		),
	}
	schema.Objects["actor"] = &ocsf.ObjectDef{
		Attributes: attrMap("x", &ocsf.Attribute{TypeName: "integer_t"}),
		Extends:    "entity",
	}
	class := &ocsf.ClassDef{
		Attributes: attrMap("actor", &ocsf.Attribute{TypeName: "actor"}),
	}

	// The derived definition of x wins; the inherited one is absorbed.
	want := `message base_event {
  optional group actor {
    optional INT32 x (INTEGER(32, true));
    optional BYTE_ARRAY y (STRING);
  }
}`
	assert.Equal(t, want, EmitClass("base_event", class, schema))
}

func TestEmitClass_InheritanceChain(t *testing.T) {
	schema := newSchema()
	schema.Objects["root"] = &ocsf.ObjectDef{
		Attributes: attrMap("z", &ocsf.Attribute{TypeName: "boolean_t"}),
	}
	schema.Objects["entity"] = &ocsf.ObjectDef{
		Attributes: attrMap("y", &ocsf.Attribute{TypeName: "string_t"}),
		Extends:    "root",
	}
	schema.Objects["actor"] = &ocsf.ObjectDef{
		Attributes: attrMap("x", &ocsf.Attribute{TypeName: "integer_t"}),
		Extends:    "entity",
	}
	class := &ocsf.ClassDef{
		Attributes: attrMap("actor", &ocsf.Attribute{TypeName: "actor"}),
	}

	want := `message base_event {
  optional group actor {
    optional INT32 x (INTEGER(32, true));
    optional BYTE_ARRAY y (STRING);
    optional BOOLEAN z;
  }
}`
	assert.Equal(t, want, EmitClass("base_event", class, schema))
}

func TestEmitClass_UnresolvableExtends(t *testing.T) {
	schema := newSchema()
	schema.Objects["actor"] = &ocsf.ObjectDef{
		Attributes: attrMap("x", &ocsf.Attribute{TypeName: "integer_t"}),
		Extends:    "ghost",
	}
	class := &ocsf.ClassDef{
		Attributes: attrMap("actor", &ocsf.Attribute{TypeName: "actor"}),
	}

	want := `message base_event {
  optional group actor {
    optional INT32 x (INTEGER(32, true));
  }
}`
	assert.Equal(t, want, EmitClass("base_event", class, schema))
}

func TestEmitClass_AliasedScalar(t *testing.T) {
	schema := newSchema()
	schema.Types["port_t"] = &ocsf.TypeDef{Type: "integer_t"}
	class := &ocsf.ClassDef{
		Attributes: attrMap("port", &ocsf.Attribute{TypeName: "port_t"}),
	}

	want := `message network_activity {
  optional INT32 port (INTEGER(32, true));
}`
	assert.Equal(t, want, EmitClass("network_activity", class, schema))
}

func TestEmitClass_TypeFallsBackWhenTypeNameAbsent(t *testing.T) {
	schema := newSchema()
	class := &ocsf.ClassDef{
		Attributes: attrMap("count", &ocsf.Attribute{Type: "integer_t"}),
	}

	want := `message base_event {
  optional INT32 count (INTEGER(32, true));
}`
	assert.Equal(t, want, EmitClass("base_event", class, schema))
}

func TestGenerateAll(t *testing.T) {
	schema := newSchema()
	schema.Classes.Set("file_activity", &ocsf.ClassDef{
		Category:   "system",
		Attributes: attrMap("time", &ocsf.Attribute{TypeName: "timestamp_t"}),
	})
	schema.Classes.Set("old_event", &ocsf.ClassDef{
		Category:   "system",
		Deprecated: &ocsf.Deprecation{Message: "gone"},
	})
	schema.Classes.Set("authentication", &ocsf.ClassDef{
		Category:   "iam",
		Attributes: attrMap("user_name", &ocsf.Attribute{TypeName: "string_t"}),
	})

	results := GenerateAll(schema)
	require.Len(t, results, 2)

	assert.Equal(t, "file_activity", results[0].Name)
	assert.Equal(t, "system", results[0].Category)
	assert.Equal(t, "authentication", results[1].Name)
	assert.Equal(t, "iam", results[1].Category)

	assert.Contains(t, results[0].Text, "optional INT64 time (TIMESTAMP(MILLIS, false));")
	assert.Contains(t, results[1].Text, "optional BYTE_ARRAY user_name (STRING);")
}

func TestGenerateAll_EmptySchema(t *testing.T) {
	assert.Empty(t, GenerateAll(newSchema()))
}

func TestTranslator_Registered(t *testing.T) {
	tr, err := translate.Get("parquet")
	require.NoError(t, err)
	assert.Equal(t, "parquet", tr.Name())
	assert.Equal(t, "", tr.FileExtension())
	assert.Contains(t, translate.Available(), "parquet")
}

func TestTranslator_Translate(t *testing.T) {
	schema := newSchema()
	class := &ocsf.ClassDef{
		Attributes: attrMap("pid", &ocsf.Attribute{TypeName: "integer_t"}),
	}

	tr := &Translator{}
	data, err := tr.Translate("process_activity", class, schema)
	require.NoError(t, err)
	assert.Equal(t, EmitClass("process_activity", class, schema), string(data))
}
