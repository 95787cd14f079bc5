package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/ghactivity/internal/github"
)

// Renderer writes events as text blocks, styled per theme when the output
// supports color.
type Renderer struct {
	theme  Theme
	styles Styles
}

// NewRenderer binds a renderer for the named theme to w's color profile.
func NewRenderer(w io.Writer, themeName string) *Renderer {
	theme := GetTheme(themeName)
	return &Renderer{
		theme:  theme,
		styles: theme.Styles(lipgloss.NewRenderer(w)),
	}
}

// Event renders one event's three-line block without a trailing newline.
func (r *Renderer) Event(e github.Event) string {
	if r == nil || r.theme.IsPlain() {
		return e.Format()
	}
	return fmt.Sprintf("- %s\n on %s\n url %s",
		r.styles.Type.Render(e.Type),
		r.styles.Repo.Render(e.RepoName),
		r.styles.URL.Render(e.RepoURL),
	)
}

// Events renders all events in order, one block per line group.
func (r *Renderer) Events(events []github.Event) string {
	var b strings.Builder
	for _, evt := range events {
		b.WriteString(r.Event(evt))
		b.WriteString("\n")
	}
	return b.String()
}

// Print writes the rendered events to w.
func (r *Renderer) Print(w io.Writer, events []github.Event) error {
	if r == nil || r.theme.IsPlain() {
		return github.Print(w, events)
	}
	_, err := io.WriteString(w, r.Events(events))
	return err
}
