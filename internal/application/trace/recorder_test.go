package trace

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_RecordNumbersFrames(t *testing.T) {
	r := NewRecorder()

	r.Record(KindActivate, "clock", nil)
	r.Record(KindSetup, "clock", nil)
	r.Record(KindStep, "clock", nil)
	r.Record(KindStep, "clock", nil)
	r.Record(KindStop, "clock", nil)

	data := r.GetData()
	require.Len(t, data.Events, 5)
	assert.Equal(t, 0, data.Events[2].F)
	assert.Equal(t, 1, data.Events[3].F)
	assert.Equal(t, 2, data.Events[4].F, "stop happens after two steps")
	assert.Equal(t, 2, r.FrameCount())
	assert.Equal(t, 5, r.EventCount())
	assert.Equal(t, map[Kind]int{KindActivate: 1, KindSetup: 1, KindStep: 2, KindStop: 1}, Count(data.Events))
	assert.Empty(t, Failures(data.Events))
}

func TestRecorder_RecordError(t *testing.T) {
	r := NewRecorder()

	r.Record(KindStep, "clock", assert.AnError)

	assert.Equal(t, assert.AnError.Error(), r.GetData().Events[0].Err)
	assert.Len(t, Failures(r.GetData().Events), 1)
}

func TestRecorder_Stop(t *testing.T) {
	r := NewRecorder()

	r.Stop()
	r.Record(KindStep, "clock", nil)

	assert.Equal(t, 0, r.EventCount())
	assert.Equal(t, 0, r.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder()

	err := r.Save(filepath.Join(t.TempDir(), "trace.json"))
	assert.Error(t, err)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	r := NewRecorder()
	r.Record(KindActivate, "clock", nil)
	r.Record(KindStep, "clock", nil)
	r.Record(KindMissing, "nope", assert.AnError)

	path := filepath.Join(t.TempDir(), "trace.json")
	require.NoError(t, r.Save(path))

	data, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, r.GetData().Events, data.Events)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.True(t, strings.HasPrefix(name, "trace_"))
	assert.True(t, strings.HasSuffix(name, ".json"))
}
