package tui

import (
	"fmt"

	"github.com/san-kum/incline/internal/sim"
	"github.com/san-kum/incline/internal/viz"
)

const title = "Inclined-Plane Velocity Simulation"

func (m *Model) View() string {
	if m.tooSmall() {
		return m.sizeNotice()
	}

	snap := m.ctrl.Snapshot()
	s := m.screen
	s.Clear()

	m.drawScene(snap)
	m.drawPanel(snap)

	s.Text((m.layout.Cols-len(title))/2, 1, title, viz.InkHeader)
	s.Text(1, 0, fmt.Sprintf("FPS: %d", int(m.fps)), viz.InkDim)

	return s.Render(viz.DefaultPalette)
}

func (m *Model) sizeNotice() string {
	p := viz.DefaultPalette
	return p[viz.InkHeader].Render(fmt.Sprintf("terminal too small: need %dx%d", m.layout.Cols, m.layout.Rows)) + "\n" +
		p[viz.InkDim].Render(fmt.Sprintf("current size %dx%d, enlarge the window or press esc to quit", m.width, m.height))
}

func (m *Model) drawScene(snap sim.Snapshot) {
	r := m.layout.Scene
	m.blockCanvas.Clear()
	m.scene.DrawBlock(m.blockCanvas, snap.S)

	m.screen.Layer(r.X, r.Y, m.sceneCanvas, viz.InkIncline)
	m.screen.Layer(r.X, r.Y, m.blockCanvas, viz.InkBlock)
}

func (m *Model) drawPanel(snap sim.Snapshot) {
	s := m.screen
	s.Fill(viz.Rect{X: m.layout.Panel.X, Y: 0, W: 1, H: m.layout.Rows}, '│', viz.InkDivider)

	for i, r := range m.layout.Presets {
		ink := viz.InkButton
		if i == snap.Index {
			ink = viz.InkButtonActive
		}
		if m.hover.Kind == viz.TargetPreset && m.hover.Index == i {
			ink = viz.InkButtonHover
		}
		s.Button(r, m.cfg.Presets[i].Label(), ink)
	}
	s.Button(m.layout.Toggle, snap.State.ToggleLabel(), m.buttonInk(viz.TargetToggle))
	s.Button(m.layout.Reset, "Reset", m.buttonInk(viz.TargetReset))

	m.drawGraph(snap)

	r := m.layout.Readout
	for i, line := range readout(snap) {
		if i >= r.H {
			break
		}
		s.Text(r.X, r.Y+i, line.text, line.ink)
	}
}

func (m *Model) buttonInk(kind viz.TargetKind) viz.Ink {
	if m.hover.Kind == kind {
		return viz.InkButtonHover
	}
	return viz.InkButton
}

func (m *Model) drawGraph(snap sim.Snapshot) {
	r := m.layout.Graph

	samples := make([]viz.Point, len(snap.Trace))
	for i, smp := range snap.Trace {
		samples[i] = viz.Point{X: smp.S, Y: smp.V}
	}
	m.sampleCanvas.Clear()
	m.graph.Scatter(m.sampleCanvas, samples)
	m.markCanvas.Clear()
	m.graph.Marker(m.markCanvas, snap.Preset.Length, snap.Preset.ExpSpeed)

	s := m.screen
	s.Layer(r.X, r.Y, m.axisCanvas, viz.InkAxis)
	s.Layer(r.X, r.Y, m.linCanvas, viz.InkLinear)
	s.Layer(r.X, r.Y, m.powCanvas, viz.InkPower)
	s.Layer(r.X, r.Y, m.sampleCanvas, viz.InkScatter)
	s.Layer(r.X, r.Y, m.markCanvas, viz.InkMarker)

	s.Text(r.X, r.Y-1, "v (m/s)", viz.InkDim)
	s.Text(r.X+r.W-5, r.Y+r.H, "s (m)", viz.InkDim)
	s.Text(r.X+8, r.Y+r.H, "linear", viz.InkLinear)
	s.Text(r.X+16, r.Y+r.H, "power", viz.InkPower)
}

type line struct {
	text string
	ink  viz.Ink
}

func readout(snap sim.Snapshot) []line {
	p := snap.Preset
	lines := []line{
		{fmt.Sprintf("Height: %.2f m", p.Height), viz.InkText},
		{fmt.Sprintf("Length: %.2f m", p.Length), viz.InkText},
		{fmt.Sprintf("Exp. Avg. Speed: %.2f m/s", p.ExpSpeed), viz.InkText},
		{fmt.Sprintf("Exp. SD: %.2f m/s", p.ExpSD), viz.InkText},
		{fmt.Sprintf("Theor. Avg. Speed: %.2f m/s", p.TheorySpeed()), viz.InkText},
		{fmt.Sprintf("Theor. Time: %.2f s", p.TheoryTime()), viz.InkText},
		{fmt.Sprintf("Elapsed Time: %.2f s", snap.Elapsed), viz.InkText},
		{fmt.Sprintf("Inst. Speed: %.2f m/s", snap.V), viz.InkText},
	}

	if snap.Outcome != nil {
		ink := viz.InkDeviation
		if snap.Outcome.Verdict == sim.Success {
			ink = viz.InkSuccess
		}
		lines = append(lines, line{fmt.Sprintf("Match: %s", snap.Outcome.Verdict), ink})
	}
	if snap.Fit != nil {
		lines = append(lines,
			line{"Linear Fit: " + snap.Fit.Linear.String(), viz.InkLinear},
			line{fmt.Sprintf("Linear R²: %.4f", snap.Fit.Linear.R2), viz.InkLinear},
			line{"Power Fit: " + snap.Fit.Power.String(), viz.InkPower},
		)
	}
	return lines
}
