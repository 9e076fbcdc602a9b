package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oshokin/clockeroo/internal/ui/view"
)

// Screens smaller than this are painted as if they had this size.
const (
	minWidth  = 20
	minHeight = 5
)

//nolint:gochecknoglobals // Styles are immutable values.
var (
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Align(lipgloss.Center, lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 2)

	stackStyle = lipgloss.NewStyle().Margin(1, 2)
)

// toneColor maps a tone to an ANSI color; the empty color keeps the terminal default.
func toneColor(tone view.Tone) lipgloss.TerminalColor {
	switch tone {
	case view.ToneMuted:
		return lipgloss.Color("6")
	case view.ToneHint:
		return lipgloss.Color("8")
	case view.ToneAccent:
		return lipgloss.Color("14")
	case view.ToneOK:
		return lipgloss.Color("2")
	case view.ToneWarn:
		return lipgloss.Color("3")
	case view.ToneAlert:
		return lipgloss.Color("1")
	default:
		return lipgloss.NoColor{}
	}
}

// Paint lays frame out on a width by height screen.
func Paint(frame view.Frame, width, height int) string {
	width = max(width, minWidth)
	height = max(height, minHeight)

	var screen string

	switch frame.Layout {
	case view.LayoutStack:
		screen = paintStack(frame.Rows)
	default:
		screen = panelStyle.
			BorderForeground(toneColor(frame.Border)).
			Width(width - 2).
			Height(height - 2).
			Render(panelBody(frame.Rows))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, screen)
}

func panelBody(rows []view.Row) string {
	blocks := make([]string, 0, len(rows))

	for i := 0; i < len(rows); {
		if !rows[i].Preformatted {
			blocks = append(blocks, renderRow(rows[i]))
			i++

			continue
		}

		j := i
		for j < len(rows) && rows[j].Preformatted {
			j++
		}

		blocks = append(blocks, renderBlock(rows[i:j]))
		i = j
	}

	return lipgloss.JoinVertical(lipgloss.Center, blocks...)
}

// renderBlock pads the rows to a common width so centering keeps their shape.
func renderBlock(rows []view.Row) string {
	lines := make([]string, len(rows))
	width := 0

	for i, row := range rows {
		lines[i] = renderRow(row)
		width = max(width, lipgloss.Width(lines[i]))
	}

	pad := lipgloss.NewStyle().Width(width)
	for i, line := range lines {
		lines[i] = pad.Render(line)
	}

	return strings.Join(lines, "\n")
}

func paintStack(rows []view.Row) string {
	blocks := make([]string, 0, len(rows))

	for _, row := range rows {
		if !row.Boxed {
			blocks = append(blocks, renderRow(row))

			continue
		}

		tone := view.ToneDefault
		if len(row.Spans) > 0 {
			tone = row.Spans[0].Tone
		}

		blocks = append(blocks, boxStyle.BorderForeground(toneColor(tone)).Render(renderRow(row)))
	}

	return stackStyle.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

func renderRow(row view.Row) string {
	var b strings.Builder

	for _, span := range row.Spans {
		style := lipgloss.NewStyle().
			Foreground(toneColor(span.Tone)).
			Bold(span.Bold).
			Blink(span.Blink)

		b.WriteString(style.Render(span.Text))
	}

	return b.String()
}
