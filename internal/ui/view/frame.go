package view

import "strings"

// Tone is the semantic color of a span or border.
type Tone int

const (
	// ToneDefault uses the terminal's foreground color.
	ToneDefault Tone = iota
	// ToneMuted is for decoration such as the banner.
	ToneMuted
	// ToneHint is for labels and key help.
	ToneHint
	// ToneAccent is for titles and the panel border.
	ToneAccent
	// ToneOK is for comfortable time values.
	ToneOK
	// ToneWarn is for time values running low and alarm details.
	ToneWarn
	// ToneAlert is for urgent values and completion titles.
	ToneAlert
)

// Layout selects how the painter arranges rows.
type Layout int

const (
	// LayoutPanel draws every row centered inside one full-screen bordered panel.
	LayoutPanel Layout = iota
	// LayoutStack draws rows top to bottom with a margin; boxed rows get their own border.
	LayoutStack
)

// Span is a run of text with one style.
type Span struct {
	// Text is the content.
	Text string
	// Tone is the color.
	Tone Tone
	// Bold emphasizes the text.
	Bold bool
	// Blink makes the text blink where supported.
	Blink bool
}

// Row is one line of the frame.
type Row struct {
	// Spans make up the line, left to right.
	Spans []Span
	// Boxed draws a border around the row in LayoutStack.
	Boxed bool
	// Preformatted rows keep their indentation: consecutive ones are aligned as one block.
	Preformatted bool
}

// Frame is the semantic content of one screen.
type Frame struct {
	// Layout selects the arrangement.
	Layout Layout
	// Border is the tone of the panel border in LayoutPanel.
	Border Tone
	// Rows are the lines of the frame.
	Rows []Row
}

// Text returns the row content without styling.
func (r Row) Text() string {
	var b strings.Builder
	for _, span := range r.Spans {
		b.WriteString(span.Text)
	}

	return b.String()
}

// PlainText renders the frame without styling, one row per line.
func (f Frame) PlainText() string {
	var b strings.Builder
	for _, row := range f.Rows {
		b.WriteString(row.Text())
		b.WriteByte('\n')
	}

	return b.String()
}

// blank is an empty row.
func blank() Row {
	return Row{}
}

// line is a single-span row.
func line(text string, tone Tone) Row {
	return Row{Spans: []Span{{Text: text, Tone: tone}}}
}

// strong is a single bold span row.
func strong(text string, tone Tone) Row {
	return Row{Spans: []Span{{Text: text, Tone: tone, Bold: true}}}
}
