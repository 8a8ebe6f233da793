package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/incline/internal/config"
	"github.com/san-kum/incline/internal/logging"
	"github.com/san-kum/incline/internal/regression"
	"github.com/san-kum/incline/internal/sim"
	"github.com/san-kum/incline/internal/viz"
)

type tickMsg time.Time

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

type Model struct {
	cfg    *config.Config
	ctrl   *sim.Controller
	log    *logging.Logger
	layout viz.Layout

	scene *viz.Scene
	graph *viz.Graph

	screen       *viz.Screen
	sceneCanvas  *viz.Canvas
	blockCanvas  *viz.Canvas
	axisCanvas   *viz.Canvas
	sampleCanvas *viz.Canvas
	linCanvas    *viz.Canvas
	powCanvas    *viz.Canvas
	markCanvas   *viz.Canvas

	hover     viz.Target
	lastFrame time.Time
	fps       float64

	// terminal size, zero until the first WindowSizeMsg
	width  int
	height int
}

func NewModel(cfg *config.Config, ctrl *sim.Controller, log *logging.Logger) (*Model, error) {
	if log == nil {
		log = logging.Discard()
	}

	h, v := config.Columns(cfg.Presets)
	curves, err := regression.Fit(h, v)
	if err != nil {
		return nil, fmt.Errorf("fit overlay: %w", err)
	}

	layout := viz.NewLayout(cfg)
	newGraphCanvas := func() *viz.Canvas { return viz.NewCanvas(layout.Graph.W, layout.Graph.H) }

	m := &Model{
		cfg:          cfg,
		ctrl:         ctrl,
		log:          log,
		layout:       layout,
		scene:        viz.NewScene(),
		screen:       viz.NewScreen(layout.Cols, layout.Rows),
		sceneCanvas:  viz.NewCanvas(layout.Scene.W, layout.Scene.H),
		blockCanvas:  viz.NewCanvas(layout.Scene.W, layout.Scene.H),
		axisCanvas:   newGraphCanvas(),
		sampleCanvas: newGraphCanvas(),
		linCanvas:    newGraphCanvas(),
		powCanvas:    newGraphCanvas(),
		markCanvas:   newGraphCanvas(),
	}
	m.graph = viz.NewGraph(m.axisCanvas, config.MaxLength(cfg.Presets))

	// the static layers never change
	m.scene.DrawIncline(m.sceneCanvas)
	m.graph.DrawAxes(m.axisCanvas)
	m.graph.Polyline(m.linCanvas, m.graph.Curve(curves.Linear.Eval))
	m.graph.Polyline(m.powCanvas, m.graph.Curve(curves.Power.Eval))
	return m, nil
}

func (m *Model) Init() tea.Cmd { return tick(m.cfg.FPS) }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.tooSmall() {
			m.hover = viz.Target{}
		}
		return m, nil
	case tea.MouseMsg:
		if m.tooSmall() {
			return m, nil
		}
		m.hover = m.layout.HitTest(msg.X, msg.Y)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(m.hover)
		}
	case tickMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
				m.fps = 1.0 / dt
			}
		}
		m.lastFrame = now
		m.ctrl.Tick()
		return m, tick(m.cfg.FPS)
	}
	return m, nil
}

// tooSmall reports whether the terminal cannot show the whole window. The
// cell grid is fixed, so clipped rows would shift every button off its
// hit-test rectangle.
func (m *Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < m.layout.Cols || m.height < m.layout.Rows
}

func (m *Model) click(t viz.Target) {
	switch t.Kind {
	case viz.TargetPreset:
		if err := m.ctrl.Select(t.Index); err != nil {
			m.log.Failure("select preset", err, "index", t.Index)
		}
	case viz.TargetToggle:
		m.ctrl.Toggle()
	case viz.TargetReset:
		m.ctrl.Reset()
	}
}

// Run starts the interactive program and blocks until the user quits.
func Run(cfg *config.Config, log *logging.Logger) error {
	ctrl, err := sim.New(cfg.Presets, sim.NewFixedClock(cfg.FPS), log)
	if err != nil {
		return err
	}
	m, err := NewModel(cfg, ctrl, log)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
