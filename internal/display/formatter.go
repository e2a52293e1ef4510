package display

import (
	"strings"

	"github.com/talgya/npcnames/internal/names"
)

const (
	DefaultObscure       = "???"
	DefaultDisplayFormat = "{name} the {title}"
)

// Subject is anything that carries a generated name.
type Subject interface {
	DefaultName() string
	Title() string
	IsKnown() bool
}

type minion interface {
	IsMinion() bool
}

// Formatter renders names per context.
type Formatter struct {
	Styles        map[Context]Style
	Enabled       bool   // Show generated names; default names otherwise
	Obscured      bool   // Hide names of subjects that are not known
	Obscure       string // Shown in place of hidden names
	DisplayFormat string // {name} and {title} placeholders
}

// NewFormatter returns a formatter with the default styles and placeholders.
func NewFormatter() *Formatter {
	return &Formatter{
		Styles:        DefaultStyles(),
		Enabled:       true,
		Obscure:       DefaultObscure,
		DisplayFormat: DefaultDisplayFormat,
	}
}

// Style returns the style configured for ctx. Minions seen through the
// crosshair use the minion context.
func (f *Formatter) Style(ctx Context, s Subject) Style {
	if ctx == ContextCrosshair {
		if m, ok := s.(minion); ok && m.IsMinion() {
			ctx = ContextCrosshairMinion
		}
	}
	if style, ok := f.Styles[ctx]; ok {
		return style
	}
	return StyleFullName
}

// Format returns the string shown for s in ctx. c may be nil when the
// subject has no generated name, in which case its default name is used.
// A disabled formatter ignores c and obscurity.
func (f *Formatter) Format(ctx Context, s Subject, c *names.Components) string {
	style := f.Style(ctx, s)
	name := f.name(s, c, style)
	title := s.Title()

	switch style {
	case StyleTitle:
		if title != "" {
			return title
		}
	case StyleDisplayName:
		if title != "" && title != name {
			r := strings.NewReplacer("{name}", name, "{title}", title)
			return r.Replace(f.DisplayFormat)
		}
	}
	return name
}

func (f *Formatter) name(s Subject, c *names.Components, style Style) string {
	if !f.Enabled {
		return s.DefaultName()
	}
	if f.Obscured && !s.IsKnown() {
		return f.Obscure
	}
	if c == nil {
		return s.DefaultName()
	}
	if style == StyleShortName {
		if short, ok := c.AssembleShort(); ok {
			return short
		}
	}
	if full, ok := c.Assemble(); ok {
		return full
	}
	return s.DefaultName()
}
