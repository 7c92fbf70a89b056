package grid

import (
	"errors"
	"io"

	"github.com/bnema/megaverse-cli/internal/application"
	"github.com/bnema/megaverse-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	render func(s styles) string
	styles styles
	output string
}

func newModel(render func(s styles) string) model {
	return model{
		render: render,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.render(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func run(render func(s styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(render),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// RenderGoal renders the goal grid with per-kind glyphs and its
// analysis block.
func RenderGoal(goal domain.GoalGrid, analysis application.GoalAnalysis) (string, error) {
	return run(func(s styles) string {
		return goalView(goal, analysis, s)
	})
}

// RenderBatch renders the summary for a finished submission run.
func RenderBatch(result domain.BatchResult) (string, error) {
	return run(func(s styles) string {
		return batchView(result, s)
	})
}
