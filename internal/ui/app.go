package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/onboard/internal/theme"
	"github.com/five82/onboard/internal/validate"
)

// Options configures the UI.
type Options struct {
	Theme   *theme.Store
	Checks  *validate.Coordinator
	Canvas  *Canvas
}

// Result is what the wizard collected.
type Result struct {
	Completed bool
	Values    map[string]string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	theme  *theme.Store
	checks *validate.Coordinator
	canvas *Canvas
	steps  []validate.Step

	keys keyMap
	help help.Model

	stepIdx int
	width   int
	height  int
	ready   bool
	done    bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	canvas := opts.Canvas
	if canvas == nil {
		canvas = NewWizardCanvas()
	}
	store := opts.Theme
	if store == nil {
		store = theme.NewStore(theme.Env{Root: canvas})
	}
	checks := opts.Checks
	if checks == nil {
		checks = validate.New(Steps(canvas), validate.WithDocument(canvas))
	}

	return Model{
		theme:  store,
		checks: checks,
		canvas: canvas,
		steps:  checks.Steps(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	m.enterStep()
	return m.canvas.takeCmds()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case themeChangedMsg, validationChangedMsg:
		// The stores already hold the new state; rerender from them.
		m.layout()
		return m, nil
	}

	cmd := m.canvas.updateFocused(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	styles := m.canvas.Palette().Styles()

	sections := []string{
		m.renderHeader(styles),
		m.canvas.viewport.View(),
	}
	if errs := m.checks.Errors(); len(errs) > 0 {
		sections = append(sections, m.renderErrors(styles, errs))
	}
	sections = append(sections, styles.Footer.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Done reports whether the wizard finished.
func (m Model) Done() bool {
	return m.done
}

// Step returns the current step.
func (m Model) Step() validate.Step {
	return m.steps[m.stepIdx]
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme.Cycle()
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		m.checks.Clear()
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.FocusNext):
		m.canvas.FocusNext(pages[m.Step().ID].fields)
		m.layout()
		return m, m.canvas.takeCmds()

	case key.Matches(msg, m.keys.Back):
		if m.stepIdx > 0 {
			m.checks.Clear()
			m.stepIdx--
			m.enterStep()
		}
		m.layout()
		return m, m.canvas.takeCmds()

	case key.Matches(msg, m.keys.Next):
		return m.advance()
	}

	cmd := m.canvas.updateFocused(msg)
	m.layout()
	return m, cmd
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	// Lay out first so field positions are current for scroll-into-view.
	m.layout()
	res := m.checks.Validate(m.Step().ID)
	if !res.Valid {
		m.layout()
		return m, m.canvas.takeCmds()
	}
	if m.stepIdx == len(m.steps)-1 {
		m.done = true
		return m, tea.Quit
	}
	m.stepIdx++
	m.enterStep()
	m.layout()
	return m, m.canvas.takeCmds()
}

// enterStep moves focus to the first field of the current step.
func (m *Model) enterStep() {
	m.canvas.Blur()
	if fields := pages[m.Step().ID].fields; len(fields) > 0 {
		m.canvas.FocusNext(fields[:1])
	}
}

// layout renders the step body into the canvas viewport and records field
// positions.
func (m *Model) layout() {
	styles := m.canvas.Palette().Styles()
	step := m.Step()
	pg := pages[step.ID]

	lines := []string{
		styles.Title.Render(fmt.Sprintf("Step %d of %d · %s", m.stepIdx+1, len(m.steps), step.Title)),
		"",
	}
	for _, l := range pg.intro {
		lines = append(lines, styles.Text.Render(l))
	}
	lines = append(lines, "")

	for _, id := range pg.fields {
		f := m.canvas.Field(id)
		if f == nil {
			continue
		}
		f.input.PromptStyle = styles.Prompt
		f.input.TextStyle = styles.Text
		f.input.PlaceholderStyle = styles.MutedText
		f.line = len(lines)
		lines = append(lines, styles.Label.Render(f.Label), f.input.View(), "")
	}

	if step.ID == StepReview {
		for _, f := range m.canvas.fields {
			lines = append(lines, fmt.Sprintf("%s %s", styles.Label.Render(f.Label+":"), styles.Text.Render(f.Value())))
		}
	}

	if m.ready {
		used := lipgloss.Height(m.renderHeader(styles)) + lipgloss.Height(styles.Footer.Render(m.help.View(m.keys)))
		if errs := m.checks.Errors(); len(errs) > 0 {
			used += lipgloss.Height(m.renderErrors(styles, errs))
		}
		height := m.height - used
		if height < 1 {
			height = 1
		}
		m.canvas.resize(m.width, height)
	}
	m.canvas.setContent(lines)
}

func (m Model) renderHeader(styles Styles) string {
	mode := m.theme.Mode()
	badge := styles.Badge.Render(strings.ToUpper(string(m.canvas.Resolved())))
	label := styles.MutedText.Render(fmt.Sprintf("theme %s", mode))
	return styles.Header.Width(m.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Center, styles.Title.Render("onboard"), "  ", badge, " ", label),
	)
}

func (m Model) renderErrors(styles Styles, errs []string) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = styles.ErrorText.Render("✗ " + e)
	}
	width := m.width - 2
	if width < 10 {
		width = 10
	}
	return styles.ErrorBox.Width(width).Render(strings.Join(lines, "\n"))
}

// Result collects field values.
func (m Model) Result() Result {
	values := make(map[string]string, len(m.canvas.fields))
	for _, f := range m.canvas.fields {
		values[f.ID] = f.Value()
	}
	return Result{Completed: m.done, Values: values}
}

// Messages

type themeChangedMsg struct{}

type validationChangedMsg struct{}

// Run starts the Bubble Tea program and blocks until the wizard finishes,
// the user quits, or ctx is cancelled.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Theme == nil || opts.Checks == nil || opts.Canvas == nil {
		return Result{}, fmt.Errorf("ui requires a theme store, checks and canvas")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	// Send blocks until the event loop reads it, and listeners may fire from
	// inside Update, so deliver asynchronously.
	unsubTheme := opts.Theme.Subscribe(func() { go p.Send(themeChangedMsg{}) })
	defer unsubTheme()
	unsubChecks := opts.Checks.Subscribe(func() { go p.Send(validationChangedMsg{}) })
	defer unsubChecks()

	opts.Theme.Mount()
	defer opts.Theme.Close()
	defer opts.Checks.Close()

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("run ui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Result(), nil
	}
	return Result{}, nil
}
