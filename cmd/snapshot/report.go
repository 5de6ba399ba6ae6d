package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Padding(1, 0)
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
)

// RenderSummary 渲染运行摘要
func RenderSummary(s *Summary, plot bool) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.ToUpper(s.Label)) + "\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Surface", fmt.Sprintf("%dx%d (%s)", s.Width, s.Height, s.Profile))
	row("Particles", fmt.Sprintf("%d", s.Particles))
	row("Frames", fmt.Sprintf("%d", s.Frames))
	row("Links", fmt.Sprintf("%d", s.Links))
	row("Dispersed", fmt.Sprintf("%v", s.Dispersed))
	if n := len(s.Energy); n > 0 {
		row("Energy", fmt.Sprintf("%.2f", s.Energy[n-1]))
	}

	if plot && len(s.Energy) > 1 {
		chart := asciigraph.Plot(s.Energy,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("Kinetic energy per frame"))
		b.WriteString(graphStyle.Render(chart) + "\n")
	}

	for _, path := range s.Written {
		row("Wrote", filepath.ToSlash(path))
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
