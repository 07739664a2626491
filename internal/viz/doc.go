// Package viz renders calculations for the terminal.
//
//   - [ResultTable], [FormulaTable], [RecordTable]: lipgloss tables
//   - [Plot]: asciigraph line plot of a sweep
//   - [RunInteractive]: Bubble Tea calculator with formula selection
//
// # Key Bindings
//
//	j/k   - Move selection
//	enter - Select formula / edit input
//	h/l   - Halve or double the selected input
//	c     - Compute
//	s     - Save the shown result
//	esc   - Back
//	q     - Quit
package viz
