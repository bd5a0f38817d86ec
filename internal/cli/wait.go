package cli

import (
	"context"
	"errors"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
)

// errCancelled is returned when the user aborts a request with Ctrl+C.
var errCancelled = errors.New("cancelled")

// resultMsg carries the outcome of the request running behind the spinner.
type resultMsg struct {
	value any
	err   error
}

// waitModel is the bubbletea model shown while a server request runs.
type waitModel struct {
	spinner  spinner.Model
	message  string
	run      func() (any, error)
	theme    Theme
	value    any
	err      error
	done     bool
	quitting bool
}

func newWaitModel(message string, run func() (any, error)) waitModel {
	return waitModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		message: message,
		run:     run,
		theme:   defaultTheme,
	}
}

// Init starts the spinner and kicks off the request in a command.
func (m waitModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			value, err := m.run()
			return resultMsg{value: value, err: err}
		},
	)
}

// Update handles messages and returns the updated model.
func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case resultMsg:
		m.value = msg.value
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the spinner line; nothing once the request finished.
func (m waitModel) View() tea.View {
	if m.done || m.quitting {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s %s", m.spinner.View(), m.theme.hintStyle().Render(m.message)))
}

// runWithSpinner runs fn behind an animated spinner when attached to a
// terminal, or directly otherwise (pipes, scripts). The context handed to fn
// is cancelled once the spinner exits, so a Ctrl+C aborts the in-flight
// request instead of leaving it running in the background.
func runWithSpinner(ctx context.Context, message string, fn func(context.Context) (any, error)) (any, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if !isInteractive() {
		return fn(ctx)
	}

	p := tea.NewProgram(newWaitModel(message, func() (any, error) {
		return fn(ctx)
	}))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("spinner UI error: %w", err)
	}

	m, ok := finalModel.(waitModel)
	if !ok {
		return nil, errors.New("unexpected model type")
	}
	if m.quitting {
		return nil, errCancelled
	}
	return m.value, m.err
}
