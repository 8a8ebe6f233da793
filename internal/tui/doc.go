// Package tui is the interactive front end of the inclined-plane simulator.
//
// The bubbletea program polls keyboard and mouse input, advances the
// [sim.Controller] by one fixed tick per frame and redraws the whole screen.
//
// # Controls
//
//	click h = ...     select a height preset
//	click Start       start, pause or resume the slide
//	click Reset       return to the start of the plane
//	Esc / Ctrl+C      quit
package tui
