// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	RefreshRate int    `yaml:"refresh_rate"` // Frame cap in Hz when vsync is off
	Fullscreen  bool   `yaml:"fullscreen"`
	VSync       bool   `yaml:"vsync"`
}

// CameraConfig holds projection settings. FOV is in degrees.
type CameraConfig struct {
	FOV      float32 `yaml:"fov"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"` // Initial orbit radius
}

// AssetsConfig holds asset search paths, last entry wins.
type AssetsConfig struct {
	Paths         []string `yaml:"paths"`
	ScreenshotDir string   `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Aspect returns the window aspect ratio, falling back to 1 for a degenerate height.
func (w WindowConfig) Aspect() float32 {
	if w.Height <= 0 {
		return 1
	}
	return float32(w.Width) / float32(w.Height)
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:       "ECG",
			Width:       800,
			Height:      800,
			RefreshRate: 120,
			Fullscreen:  false,
			VSync:       true,
		},
		Camera: CameraConfig{
			FOV:      60,
			Near:     0.1,
			Far:      100,
			Distance: 6,
		},
		Assets: AssetsConfig{
			Paths:         []string{"assets"},
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
