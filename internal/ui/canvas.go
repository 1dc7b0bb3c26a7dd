package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/onboard/internal/theme"
	"github.com/five82/onboard/internal/validate"
)

// Canvas is the wizard's document. Its class list carries the resolved theme
// (theme.Root) and its fields answer focus selectors (validate.Document).
//
// Fields are only touched from the Bubble Tea update loop; the class list may
// also be written by the appearance watcher and has its own lock.
type Canvas struct {
	theme.ClassList

	fields   []*Field
	viewport viewport.Model
	focused  *Field
	pending  []tea.Cmd
}

// Field is a single text input addressable as "#<id>".
type Field struct {
	ID    string
	Label string

	input  textinput.Model
	line   int
	canvas *Canvas
}

// NewCanvas builds a canvas with the given fields in document order.
func NewCanvas(fields ...*Field) *Canvas {
	c := &Canvas{viewport: viewport.New(0, 0)}
	for _, f := range fields {
		f.canvas = c
		c.fields = append(c.fields, f)
	}
	return c
}

// NewField builds a text field.
func NewField(id, label, placeholder string) *Field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "› "
	in.CharLimit = 256
	return &Field{ID: id, Label: label, input: in}
}

// Value returns the trimmed text of the field.
func (f *Field) Value() string {
	return strings.TrimSpace(f.input.Value())
}

// SetValue replaces the field text.
func (f *Field) SetValue(v string) {
	f.input.SetValue(v)
}

// Focused reports whether the field has input focus.
func (f *Field) Focused() bool {
	return f.input.Focused()
}

// ScrollIntoView implements validate.Element. Terminals have no smooth
// scrolling, so only the block alignment is honoured.
func (f *Field) ScrollIntoView(opts validate.ScrollOptions) {
	f.canvas.scrollTo(f.line, opts.Block)
}

// Focus implements validate.Focusable.
func (f *Field) Focus() {
	f.canvas.focus(f)
}

// QuerySelector implements validate.Document. Selectors are "#id" or a
// comma-separated list of them; the first field in document order that
// matches any of them wins.
func (c *Canvas) QuerySelector(selector string) validate.Element {
	var ids []string
	for _, part := range strings.Split(selector, ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "#") && len(part) > 1 {
			ids = append(ids, part[1:])
		}
	}
	for _, f := range c.fields {
		for _, id := range ids {
			if f.ID == id {
				return f
			}
		}
	}
	return nil
}

// Field returns the field with the given id, or nil.
func (c *Canvas) Field(id string) *Field {
	for _, f := range c.fields {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// Resolved reports the theme currently applied to the canvas.
func (c *Canvas) Resolved() theme.Resolved {
	if c.Has(theme.ResolvedLight.Class()) {
		return theme.ResolvedLight
	}
	return theme.ResolvedDark
}

// Palette returns the palette for the applied theme.
func (c *Canvas) Palette() Palette {
	return PaletteFor(c.Resolved())
}

// Focused returns the field holding input focus, or nil.
func (c *Canvas) Focused() *Field {
	return c.focused
}

// FocusNext moves focus to the next field among ids, wrapping around.
func (c *Canvas) FocusNext(ids []string) {
	if len(ids) == 0 {
		return
	}
	next := 0
	if c.focused != nil {
		for i, id := range ids {
			if id == c.focused.ID {
				next = (i + 1) % len(ids)
				break
			}
		}
	}
	if f := c.Field(ids[next]); f != nil {
		c.focus(f)
	}
}

// Blur drops input focus.
func (c *Canvas) Blur() {
	if c.focused != nil {
		c.focused.input.Blur()
		c.focused = nil
	}
}

func (c *Canvas) focus(f *Field) {
	if c.focused == f {
		return
	}
	c.Blur()
	c.focused = f
	c.pending = append(c.pending, f.input.Focus())
}

func (c *Canvas) scrollTo(line int, block validate.ScrollBlock) {
	offset := line
	switch block {
	case validate.BlockCenter:
		offset = line - c.viewport.Height/2
	case validate.BlockEnd:
		offset = line - c.viewport.Height + 1
	}
	if offset < 0 {
		offset = 0
	}
	c.viewport.SetYOffset(offset)
}

// updateFocused forwards a message to the focused field's input.
func (c *Canvas) updateFocused(msg tea.Msg) tea.Cmd {
	if c.focused == nil {
		return nil
	}
	var cmd tea.Cmd
	c.focused.input, cmd = c.focused.input.Update(msg)
	return cmd
}

// takeCmds returns and clears commands produced by focus changes.
func (c *Canvas) takeCmds() tea.Cmd {
	if len(c.pending) == 0 {
		return nil
	}
	cmd := tea.Batch(c.pending...)
	c.pending = nil
	return cmd
}

func (c *Canvas) resize(width, height int) {
	c.viewport.Width = width
	c.viewport.Height = height
}

func (c *Canvas) setContent(lines []string) {
	c.viewport.SetContent(strings.Join(lines, "\n"))
}
