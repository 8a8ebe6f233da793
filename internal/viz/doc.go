// Package viz draws the inclined-plane experiment on a terminal.
//
// Geometry is worked out in window pixels (1024x768) and rasterised onto
// braille canvases, one dot per 4x4 pixels:
//
//   - [Scene]: the incline, its half-metre ticks and the sliding block
//   - [Graph]: (s, v) scatter, fitted curves and the experimental marker
//   - [Layout]: cell positions of panels and buttons, with mouse hit-testing
//   - [Screen]: a styled cell grid that canvases and text are composed onto
//
// Each canvas is a single colour; [Screen.Layer] merges several canvases so
// the block, samples and curves keep their own [Ink].
package viz
