package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	ansi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
)

// glamourGutter is the left margin glamour adds to every line.
const glamourGutter = 2

// RenderMarkdown renders md for a terminal of the given width using the
// Vitesse palette. On renderer failure the raw markdown is returned along
// with the error.
func RenderMarkdown(md string, width int) (string, error) {
	wrap := width - glamourGutter
	if wrap < 10 {
		wrap = 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(vitesseGlamour()),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md, err
	}
	out, err := r.Render(md)
	if err != nil {
		return md, err
	}
	return strings.Trim(out, "\n") + "\n", nil
}

func vitesseGlamour() ansi.StyleConfig {
	// #RRGGBBAA -> #RRGGBB
	hex := func(c lipgloss.Color) string {
		s := string(c)
		if strings.HasPrefix(s, "#") && len(s) == 9 {
			return s[:7]
		}
		return s
	}
	sp := func(s string) *string { return &s }
	bp := func(b bool) *bool { return &b }

	text := hex(Vitesse.Text)
	secondary := hex(Vitesse.Secondary)
	primary := hex(Vitesse.Primary)
	blue := hex(Vitesse.Blue)
	yellow := hex(Vitesse.Yellow)
	heading := ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(blue), Bold: bp(true)}}

	return ansi.StyleConfig{
		Document:  ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(text)}, Margin: uintPtr(glamourGutter)},
		Paragraph: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(text)}},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(secondary), Italic: bp(true)},
		},
		Heading: heading,
		H1:      heading,
		H2:      heading,
		H3:      heading,
		List:    ansi.StyleList{LevelIndent: 2},
		Item:    ansi.StylePrimitive{BlockPrefix: "• "},

		Text:   ansi.StylePrimitive{Color: sp(text)},
		Emph:   ansi.StylePrimitive{Italic: bp(true)},
		Strong: ansi.StylePrimitive{Bold: bp(true), Color: sp(primary)},

		Code: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(yellow)}},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(yellow)}, Margin: uintPtr(glamourGutter)},
		},
		HorizontalRule: ansi.StylePrimitive{Color: sp(secondary), Format: "\n--------\n"},
	}
}

func uintPtr(u uint) *uint { return &u }
