package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/megaverse-cli/internal/application"
	"github.com/bnema/megaverse-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func goalView(goal domain.GoalGrid, analysis application.GoalAnalysis, s styles) string {
	lines := []string{
		s.title.Render("Megaverse Goal"),
		s.header.Render(fmt.Sprintf("%d rows x %d columns", analysis.Rows, analysis.Columns)),
	}

	if len(goal) == 0 {
		lines = append(lines, s.empty.Render("No goal grid available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.section.Render(renderRows(goal, s)))
	lines = append(lines, s.section.Render(renderAnalysis(analysis, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRows(goal domain.GoalGrid, s styles) string {
	rows := make([]string, 0, len(goal))
	for r, row := range goal {
		var b strings.Builder
		for c, label := range row {
			if c > 0 {
				b.WriteString(" ")
			}
			b.WriteString(cellGlyph(label, domain.Position{Row: r, Column: c}, s))
		}
		rows = append(rows, b.String())
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func cellGlyph(label string, pos domain.Position, s styles) string {
	obj, class := domain.ParseCellLabel(label, pos)
	switch class {
	case domain.CellSpace:
		return s.space.Render(".")
	case domain.CellUnknown:
		return s.unknown.Render("?")
	}

	switch obj.Kind {
	case domain.KindPolyanet:
		return s.polyanet.Render("P")
	case domain.KindSoloon:
		return s.soloon.Render("S")
	case domain.KindCometh:
		return s.cometh.Render("C")
	default:
		return s.unknown.Render("?")
	}
}

func renderAnalysis(analysis application.GoalAnalysis, s styles) string {
	lines := []string{
		s.detail.Render(fmt.Sprintf("polyanets: %d", analysis.Polyanets)),
		s.detail.Render(fmt.Sprintf("soloons:   %d", analysis.Soloons)),
		s.detail.Render(fmt.Sprintf("comeths:   %d", analysis.Comeths)),
		s.detail.Render(fmt.Sprintf("spaces:    %d", analysis.Spaces)),
	}
	if analysis.Unknown > 0 {
		lines = append(lines, s.failure.Render(fmt.Sprintf("unknown:   %d", analysis.Unknown)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func batchView(result domain.BatchResult, s styles) string {
	lines := []string{
		s.title.Render("Submission Summary"),
		s.header.Render(fmt.Sprintf("run %s (%s)", result.RunID, result.Duration().Round(time.Millisecond))),
	}

	if result.Total == 0 {
		lines = append(lines, s.empty.Render("Nothing to submit."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, countsLine(result, s), kindsLine(result, s))

	if result.FullySuccessful() {
		lines = append(lines, s.section.Render(s.success.Render("All submissions succeeded.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	failures := result.Failures()
	parts := []string{s.failure.Render(fmt.Sprintf("%d failed submissions:", len(failures)))}
	for _, outcome := range failures {
		parts = append(parts, s.detail.Render(fmt.Sprintf("  %s %s %s: %s", outcome.Op, outcome.Kind, outcome.Position, outcome.Error)))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func countsLine(result domain.BatchResult, s styles) string {
	succeeded := s.detail.Render(fmt.Sprintf("succeeded: %d", result.Succeeded))
	if result.Succeeded > 0 {
		succeeded = s.success.Render(fmt.Sprintf("succeeded: %d", result.Succeeded))
	}
	failed := s.detail.Render(fmt.Sprintf("failed: %d", result.Failed))
	if result.Failed > 0 {
		failed = s.failure.Render(fmt.Sprintf("failed: %d", result.Failed))
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detail.Render(fmt.Sprintf("objects: %d", result.Total)),
		"   ",
		succeeded,
		"   ",
		failed,
	)
}

func kindsLine(result domain.BatchResult, s styles) string {
	return s.detail.Render(fmt.Sprintf(
		"polyanets: %d  soloons: %d  comeths: %d",
		result.ByKind[domain.KindPolyanet],
		result.ByKind[domain.KindSoloon],
		result.ByKind[domain.KindCometh],
	))
}
