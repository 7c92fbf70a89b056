package cmd

import (
	"fmt"

	"github.com/bnema/megaverse-cli/internal/application"
	"github.com/bnema/megaverse-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type submissionDoneMsg struct {
	result domain.BatchResult
	err    error
}

type submissionOutcomeMsg struct {
	outcome domain.SubmissionOutcome
}

type submissionProgressModel struct {
	spinner  spinner.Model
	label    string
	start    tea.Cmd
	progress *application.Accumulator
	result   domain.BatchResult
	err      error
	done     bool
}

func newSubmissionProgressModel(label string, start tea.Cmd) submissionProgressModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return submissionProgressModel{
		spinner:  s,
		label:    label,
		start:    start,
		progress: &application.Accumulator{},
	}
}

func (m submissionProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start)
}

func (m submissionProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case submissionOutcomeMsg:
		m.progress.Add(msg.outcome)
		return m, nil
	case submissionDoneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m submissionProgressModel) View() string {
	if m.done {
		return ""
	}

	succeeded, failed := m.progress.Counts()
	if succeeded+failed == 0 {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}

	return fmt.Sprintf("%s %s %d submitted, %d failed", m.spinner.View(), m.label, succeeded+failed, failed)
}

// runWithProgress runs a submission behind a spinner that ticks up as
// outcomes stream in. Signal handling stays with the command context: a
// SIGINT cancels the run itself, which then delivers its partial result
// through the done message.
func runWithProgress(cmd *cobra.Command, label string, opts application.RunOptions, run func(application.RunOptions) (domain.BatchResult, error)) (domain.BatchResult, error) {
	var p *tea.Program

	opts.OnOutcome = func(outcome domain.SubmissionOutcome) {
		p.Send(submissionOutcomeMsg{outcome: outcome})
	}

	start := func() tea.Msg {
		result, err := run(opts)
		return submissionDoneMsg{result: result, err: err}
	}

	p = tea.NewProgram(
		newSubmissionProgressModel(label, start),
		tea.WithInput(nil),
		tea.WithOutput(cmd.ErrOrStderr()),
		tea.WithoutSignalHandler(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.BatchResult{}, err
	}

	m, ok := finalModel.(submissionProgressModel)
	if !ok {
		return domain.BatchResult{}, fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return m.result, m.err
}
