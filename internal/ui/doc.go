// Package ui implements the glinview terminal interface with Bubble Tea.
//
// The layout is a header line, a command bar, a two-pane split (log sources
// on the left, the log viewport on the right) and a status bar. A help
// overlay and theme cycling are available globally.
//
// Data flows one way: commands fetch from the glinrdock API and deliver
// typed messages; Update routes every message through the viewer store,
// which owns selection state and discards stale fetch results; View renders
// the latest store snapshot. Auto-refresh ticks arrive on the poll
// controller's channel and are bridged into the program by a self-re-arming
// command.
package ui
