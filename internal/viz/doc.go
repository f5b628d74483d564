// Package viz provides the interactive board.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Board]: render state folded from the session's event stream
//   - [App]: control panel around a driver session
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	G     - Generate a new sequence
//	S     - Start sorting
//	A     - Cycle algorithm
//	V     - Cycle speed (applies to a running sort)
//	+/-   - Change element count
//	T     - Cycle color themes
//	?     - Show legend
//	Q     - Quit
package viz
