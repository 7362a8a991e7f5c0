package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = newStylesheet(theme{
	accent: "#7D56F4",
	set:    "#04B575",
	err:    "#FF0000",
	notice: "#FFA500",
	muted:  "#626262",
})

// theme names the foreground colors used across the viewer.
type theme struct {
	accent, set, err, notice, muted string
}

// stylesheet holds the rendered styles for each part of the view.
type stylesheet struct {
	banner    lipgloss.Style
	heading   lipgloss.Style
	colHeader lipgloss.Style
	setTitle  lipgloss.Style
	failure   lipgloss.Style
	notice    lipgloss.Style
	hint      lipgloss.Style
}

func newStylesheet(t theme) stylesheet {
	return stylesheet{
		banner:    fg(t.accent).Bold(true).MarginBottom(1),
		heading:   fg(t.accent).Bold(true),
		colHeader: fg(t.accent).Bold(true),
		setTitle:  fg(t.set).Bold(true),
		failure:   fg(t.err).Bold(true),
		notice:    fg(t.notice),
		hint:      fg(t.muted).Italic(true),
	}
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
