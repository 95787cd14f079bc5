// Package ui renders GitHub events for the terminal.
//
// # Overview
//
// Two front ends share one Renderer:
//
//   - render.go: Renderer, which prints each event as a three-line block
//     ("- <type>", " on <repo>", " url <url>") to any io.Writer
//   - browse.go: a Bubble Tea program (Browse) that fetches events with a
//     spinner, shows them in a scrollable viewport and refetches on demand
//
// # Themes
//
// The Plain theme renders text unchanged and is byte-for-byte identical to
// github.Print. Other themes color the event type, repository and URL through
// Lipgloss; the Lipgloss renderer is bound to the output writer, so colors are
// dropped automatically when the output is not a terminal.
//
// # Key Bindings
//
//	q, ctrl+c   quit
//	r           refetch events
//	T           cycle theme
//	g / G       jump to top / bottom
//	↑ ↓ pgup pgdn   scroll (viewport defaults)
//
// # Error Handling
//
// The browser shows fetch errors in its header and Browse returns the last
// fetch error after the program exits, so the CLI reports it the same way as
// in non-interactive mode.
package ui
