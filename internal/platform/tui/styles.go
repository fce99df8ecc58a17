package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pausedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
