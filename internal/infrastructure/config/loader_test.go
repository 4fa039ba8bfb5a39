package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadApp(t *testing.T) {
	loader := NewLoader("../../../cmd/clock/configs")

	cfg, err := loader.LoadApp()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Display.ScreenWidth)
	assert.Equal(t, 120, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, "clock", cfg.Start.Scene)
	assert.Equal(t, "bold 30px sans-serif", cfg.Start.Params["font"])
}

func TestLoader_Defaults(t *testing.T) {
	fsys := fstest.MapFS{
		"app.json": {Data: []byte(`{
			"display": {"screenWidth": 320, "screenHeight": 240},
			"start": {"scene": "clock"}
		}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadApp()
	require.NoError(t, err)

	assert.Equal(t, DefaultTitle, cfg.Display.Title)
	assert.Equal(t, DefaultScale, cfg.Display.Scale)
	assert.Equal(t, DefaultFramerate, cfg.Display.Framerate)
	assert.Nil(t, cfg.Start.Params)
}

func TestLoader_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"no size", `{"start": {"scene": "clock"}}`},
		{"no scene", `{"display": {"screenWidth": 320, "screenHeight": 240}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewFSLoader(fstest.MapFS{"app.json": {Data: []byte(tt.json)}}, "mem")
			_, err := loader.LoadApp()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoader_Errors(t *testing.T) {
	_, err := NewFSLoader(fstest.MapFS{}, "mem").LoadApp()
	assert.ErrorContains(t, err, "failed to read app.json")

	_, err = NewFSLoader(fstest.MapFS{"app.json": {Data: []byte("{")}}, "mem").LoadApp()
	assert.ErrorContains(t, err, "failed to parse app.json")
}
