// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crowdalert/ocsf-parquet/internal/ocsf"
)

type fakeTranslator struct{}

func (f *fakeTranslator) Name() string { return "fake" }

func (f *fakeTranslator) Translate(className string, _ *ocsf.ClassDef, _ *ocsf.Schema) ([]byte, error) {
	return []byte("fake: " + className), nil
}

func (f *fakeTranslator) FileExtension() string { return ".fake" }

func TestRegistry(t *testing.T) {
	Register(&fakeTranslator{})

	tr, err := Get("fake")
	require.NoError(t, err)
	assert.Equal(t, "fake", tr.Name())
	assert.Equal(t, ".fake", tr.FileExtension())
	assert.Contains(t, Available(), "fake")

	data, err := tr.Translate("process_activity", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "fake: process_activity", string(data))
}

func TestRegistry_Unknown(t *testing.T) {
	_, err := Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown translator")
}
