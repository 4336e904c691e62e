package console

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Accent is the suite's banner color (ANSI 256 orange).
const Accent = lipgloss.Color("214")

// Styles holds the lipgloss styles used by the menus. Styles are bound to
// the output's renderer, so they fall back to plain text when the output
// is not a terminal.
type Styles struct {
	Banner  lipgloss.Style
	Tagline lipgloss.Style
	Heading lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles creates styles for the given output.
func NewStyles(out io.Writer) Styles {
	r := lipgloss.NewRenderer(out)
	return Styles{
		Banner: r.NewStyle().
			Foreground(Accent).
			Bold(true),

		Tagline: r.NewStyle().
			Foreground(Accent).
			Italic(true),

		Heading: r.NewStyle().
			Foreground(Accent).
			Bold(true),

		Warning: r.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// Masthead renders a title block, the spaced-out title with an optional
// tagline beneath it.
func (s Styles) Masthead(title, tagline string) string {
	var b strings.Builder
	b.WriteString(s.Banner.Render(spaced(title)))
	if tagline != "" {
		b.WriteString("\n")
		b.WriteString(s.Tagline.Render(spaced(tagline)))
	}
	return b.String()
}

// spaced upper-cases text and puts a space between letters, two between
// words.
func spaced(text string) string {
	words := strings.Fields(strings.ToUpper(text))
	for i, w := range words {
		words[i] = strings.Join(strings.Split(w, ""), " ")
	}
	return strings.Join(words, "  ")
}
