// Package display turns generated name components into the string shown in
// a given UI context (crosshair, subtitles, dialogue, ...).
package display

import (
	"fmt"
	"strings"
)

// Style selects which form of a name is shown.
type Style uint8

const (
	StyleDisplayName Style = iota // Full name with the title
	StyleFullName                 // Full name without the title
	StyleShortName                // Short name, falling back to the full name
	StyleTitle                    // Title only, falling back to the full name
)

var styleNames = [...]string{
	StyleDisplayName: "display",
	StyleFullName:    "full",
	StyleShortName:   "short",
	StyleTitle:       "title",
}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("style(%d)", uint8(s))
}

// ParseStyle parses a style name as produced by Style.String.
func ParseStyle(s string) (Style, error) {
	for i, name := range styleNames {
		if strings.EqualFold(s, name) {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("unknown name style %q", s)
}

// Context is a place in the UI where a name appears.
type Context uint8

const (
	ContextCrosshair Context = iota
	ContextCrosshairMinion
	ContextSubtitles
	ContextDialogue
	ContextInventory
	ContextBarter
	ContextEnemyHUD
	ContextOther
)

var contextNames = [...]string{
	ContextCrosshair:       "crosshair",
	ContextCrosshairMinion: "crosshair_minion",
	ContextSubtitles:       "subtitles",
	ContextDialogue:        "dialogue",
	ContextInventory:       "inventory",
	ContextBarter:          "barter",
	ContextEnemyHUD:        "enemy_hud",
	ContextOther:           "other",
}

func (c Context) String() string {
	if int(c) < len(contextNames) {
		return contextNames[c]
	}
	return fmt.Sprintf("context(%d)", uint8(c))
}

// ParseContext parses a context name as produced by Context.String.
func ParseContext(s string) (Context, error) {
	for i, name := range contextNames {
		if strings.EqualFold(s, name) {
			return Context(i), nil
		}
	}
	return 0, fmt.Errorf("unknown name context %q", s)
}

// DefaultStyles returns the style used by each context out of the box.
func DefaultStyles() map[Context]Style {
	return map[Context]Style{
		ContextCrosshair:       StyleDisplayName,
		ContextCrosshairMinion: StyleTitle,
		ContextSubtitles:       StyleShortName,
		ContextDialogue:        StyleFullName,
		ContextInventory:       StyleFullName,
		ContextBarter:          StyleShortName,
		ContextEnemyHUD:        StyleFullName,
		ContextOther:           StyleFullName,
	}
}

// ParseStyles overlays "context=style" overrides onto DefaultStyles.
func ParseStyles(overrides map[string]string) (map[Context]Style, error) {
	styles := DefaultStyles()
	for k, v := range overrides {
		ctx, err := ParseContext(k)
		if err != nil {
			return nil, err
		}
		style, err := ParseStyle(v)
		if err != nil {
			return nil, err
		}
		styles[ctx] = style
	}
	return styles, nil
}
