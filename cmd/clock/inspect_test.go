package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sceneloop/internal/application/trace"
)

func TestInspectTrace(t *testing.T) {
	rec := trace.NewRecorder()
	rec.Record(trace.KindActivate, "clock", nil)
	rec.Record(trace.KindSetup, "clock", nil)
	rec.Record(trace.KindStep, "clock", nil)
	rec.Record(trace.KindStep, "clock", assert.AnError)
	rec.Record(trace.KindMissing, "title", nil)

	path := filepath.Join(t.TempDir(), "trace.json")
	require.NoError(t, rec.Save(path))

	var out bytes.Buffer
	require.NoError(t, inspectTrace(path, &out))

	text := out.String()
	assert.Contains(t, text, "events: 5")
	assert.Contains(t, text, "step     2")
	assert.Contains(t, text, "missing  1")
	assert.Contains(t, text, "failures: 1")
	assert.Contains(t, text, `frame 1 step "clock"`)
}

func TestInspectTrace_NoFailures(t *testing.T) {
	rec := trace.NewRecorder()
	rec.Record(trace.KindActivate, "clock", nil)
	path := filepath.Join(t.TempDir(), "trace.json")
	require.NoError(t, rec.Save(path))

	var out bytes.Buffer
	require.NoError(t, inspectTrace(path, &out))
	assert.NotContains(t, out.String(), "failures")
}

func TestInspectTrace_MissingFile(t *testing.T) {
	err := inspectTrace(filepath.Join(t.TempDir(), "missing.json"), &bytes.Buffer{})
	assert.Error(t, err)
}
