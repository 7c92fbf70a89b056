package grid

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	polyanet lipgloss.Style
	soloon   lipgloss.Style
	cometh   lipgloss.Style
	space    lipgloss.Style
	unknown  lipgloss.Style
	detail   lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		polyanet: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		soloon:   lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		cometh:   lipgloss.NewStyle().Foreground(lipgloss.Color("222")),
		space:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		unknown:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		failure:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}
