package config

const (
	DefaultFPS = 60

	WindowWidth    = 1024
	WindowHeight   = 768
	LeftPanelWidth = 600

	// CellWidth and CellHeight are the pixel size of one terminal cell.
	CellWidth  = 8
	CellHeight = 16
)

type Config struct {
	FPS     int
	Dt      float64
	Presets []Preset
}

func DefaultConfig() *Config {
	return &Config{
		FPS:     DefaultFPS,
		Dt:      1.0 / DefaultFPS,
		Presets: Presets(),
	}
}

// Cols and Rows give the terminal grid that holds the whole window.
func (c *Config) Cols() int { return WindowWidth / CellWidth }
func (c *Config) Rows() int { return WindowHeight / CellHeight }

func (c *Config) Preset(i int) (Preset, error) {
	return lookup(c.Presets, i)
}
