// Package viz provides the terminal host for particle fields.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Model]: hero field across the terminal, card fields in bordered panels
//   - [Canvas]: Braille-based pixel canvas; it is a particle.Surface
//   - Themes with translucent particles blended over the background
//
// # Key Bindings
//
//	Space - Pause/Resume
//	T     - Cycle color themes
//	Q     - Quit
//
// Losing terminal focus stops the frame chain the same way a hidden page
// cancels its animation frame; regaining focus restarts it.
package viz
