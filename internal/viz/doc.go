// Package viz renders dynamics data in the terminal: Braille-canvas
// line drawing for trajectories and vector fields, ANSI color views of
// basin rasters, and a live bubbletea view of a running classification.
package viz
