package config

// AppConfig is the root config for app.json
type AppConfig struct {
	Display DisplayConfig `json:"display"`
	Start   StartConfig   `json:"start"`
}

// DisplayConfig sizes the drawing surface and the window
type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
}

// StartConfig names the scene activated at startup and its params
type StartConfig struct {
	Scene  string         `json:"scene"`
	Params map[string]any `json:"params"`
}

// Defaults applied to zero values after loading
const (
	DefaultTitle     = "sceneloop"
	DefaultScale     = 1
	DefaultFramerate = 60
)

func (c *AppConfig) applyDefaults() {
	if c.Display.Title == "" {
		c.Display.Title = DefaultTitle
	}
	if c.Display.Scale <= 0 {
		c.Display.Scale = DefaultScale
	}
	if c.Display.Framerate <= 0 {
		c.Display.Framerate = DefaultFramerate
	}
}
