package config

import (
	_ "embed"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/incline/internal/incline"
	"github.com/san-kum/incline/internal/kinematics"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// lengthTolerance bounds |L - h/sin(θ)| for a valid preset.
const lengthTolerance = 1e-6

type Preset struct {
	Height   float64 `yaml:"height"`
	Length   float64 `yaml:"length"`
	ExpSpeed float64 `yaml:"exp_speed"`
	ExpSD    float64 `yaml:"exp_sd"`
}

// Label is the button caption, e.g. "h = 0.5 m" or "h = 1.0 m".
func (p Preset) Label() string {
	h := strconv.FormatFloat(p.Height, 'f', -1, 64)
	if !strings.ContainsRune(h, '.') {
		h += ".0"
	}
	return "h = " + h + " m"
}

func (p Preset) TheoryTime() float64  { return kinematics.TheoryTime(p.Length) }
func (p Preset) TheorySpeed() float64 { return kinematics.TheorySpeed(p.Length) }

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

var defaultPresets = mustParse(presetsYAML)

// Presets returns a copy of the built-in height table, ordered by height.
func Presets() []Preset {
	out := make([]Preset, len(defaultPresets))
	copy(out, defaultPresets)
	return out
}

// Parse decodes a preset table and checks every record against the incline
// geometry.
func Parse(data []byte) ([]Preset, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", incline.ErrInvalidPresets, err)
	}
	if len(f.Presets) == 0 {
		return nil, fmt.Errorf("%w: no presets", incline.ErrInvalidPresets)
	}

	for i, p := range f.Presets {
		if p.Height <= 0 || p.ExpSD < 0 {
			return nil, fmt.Errorf("%w: preset %d has height %.3f sd %.3f", incline.ErrInvalidPresets, i, p.Height, p.ExpSD)
		}
		want := p.Height / kinematics.SinTheta
		if math.Abs(p.Length-want) > lengthTolerance {
			return nil, fmt.Errorf("%w: preset %d length %.3f, expected %.3f", incline.ErrInvalidPresets, i, p.Length, want)
		}
		if i > 0 && p.Height <= f.Presets[i-1].Height {
			return nil, fmt.Errorf("%w: preset %d out of order", incline.ErrInvalidPresets, i)
		}
	}
	return f.Presets, nil
}

func mustParse(data []byte) []Preset {
	p, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return p
}

// MaxLength is the longest plane in the table.
func MaxLength(presets []Preset) float64 {
	maxL := 0.0
	for _, p := range presets {
		maxL = math.Max(maxL, p.Length)
	}
	return maxL
}

// Columns splits the table into height and speed slices for regression.
func Columns(presets []Preset) (heights, speeds []float64) {
	heights = make([]float64, len(presets))
	speeds = make([]float64, len(presets))
	for i, p := range presets {
		heights[i] = p.Height
		speeds[i] = p.ExpSpeed
	}
	return heights, speeds
}

func lookup(presets []Preset, i int) (Preset, error) {
	if i < 0 || i >= len(presets) {
		return Preset{}, fmt.Errorf("%w: index %d of %d", incline.ErrUnknownPreset, i, len(presets))
	}
	return presets[i], nil
}
