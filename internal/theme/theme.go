// Package theme maps color categories from a scheme table to terminal
// styles.
package theme

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/agusx1211/colorls/internal/assets"
)

// When selects when output is colorized.
type When int

const (
	Auto When = iota
	Always
	Never
)

// ParseWhen accepts always, auto and never. An empty word means always, as
// with a bare --color flag.
func ParseWhen(word string) (When, error) {
	switch strings.ToLower(strings.TrimSpace(word)) {
	case "", "always", "yes", "force":
		return Always, nil
	case "auto", "tty", "if-tty":
		return Auto, nil
	case "never", "no", "none":
		return Never, nil
	default:
		return Auto, fmt.Errorf("invalid color mode %q (expected always, auto, or never)", word)
	}
}

// Theme paints text using a color scheme.
type Theme struct {
	renderer *lipgloss.Renderer
	scheme   map[string]string
	styles   map[string]lipgloss.Style
	enabled  bool
	modes    map[byte]string
}

// Load reads the light or dark scheme and builds a Theme for out.
func Load(l assets.Loader, light bool, when When, out io.Writer) (*Theme, error) {
	name := assets.DarkColors
	if light {
		name = assets.LightColors
	}
	scheme, err := l.Load(name)
	if err != nil {
		return nil, err
	}
	return New(scheme, when, out), nil
}

// New builds a Theme from a category → color table.
func New(scheme map[string]string, when When, out io.Writer) *Theme {
	r := lipgloss.NewRenderer(out)
	if when == Always {
		r.SetColorProfile(termenv.TrueColor)
	}
	return &Theme{
		renderer: r,
		scheme:   scheme,
		styles:   make(map[string]lipgloss.Style, len(scheme)),
		enabled:  when != Never,
		modes:    make(map[byte]string, 8),
	}
}

// Plain returns a Theme that never emits escape sequences.
func Plain() *Theme {
	return New(map[string]string{}, Never, io.Discard)
}

// Paint colors s with the color of category. Unknown categories leave s
// untouched.
func (t *Theme) Paint(category, s string) string {
	if !t.enabled || s == "" {
		return s
	}
	style, ok := t.style(category)
	if !ok {
		return s
	}
	return style.Render(s)
}

// PaintBright colors s like Paint and renders it bold.
func (t *Theme) PaintBright(category, s string) string {
	if !t.enabled || s == "" {
		return s
	}
	style, ok := t.style(category)
	if !ok {
		style = t.renderer.NewStyle()
	}
	return style.Bold(true).Render(s)
}

func (t *Theme) style(category string) (lipgloss.Style, bool) {
	if s, ok := t.styles[category]; ok {
		return s, true
	}
	color, ok := t.scheme[category]
	if !ok || color == "" {
		return lipgloss.Style{}, false
	}
	s := t.renderer.NewStyle().Foreground(lipgloss.Color(color))
	t.styles[category] = s
	return s, true
}

// Mode colors one permission character. The domain is the handful of
// characters a permission string can hold, so results are memoized.
func (t *Theme) Mode(c byte) string {
	if s, ok := t.modes[c]; ok {
		return s
	}
	s := t.Paint(ModeCategory(c), string(c))
	t.modes[c] = s
	return s
}

// ModeCategory maps a permission character to its color category.
func ModeCategory(c byte) string {
	switch c {
	case 'r':
		return "read"
	case 'w':
		return "write"
	case 'x', 's', 'S', 't', 'T':
		return "exec"
	default:
		return "no_access"
	}
}

// Permissions colors each character of a rendered permission string.
func (t *Theme) Permissions(perm string) string {
	var sb strings.Builder
	for i := 0; i < len(perm); i++ {
		sb.WriteString(t.Mode(perm[i]))
	}
	return sb.String()
}
