package main

import "github.com/charmbracelet/lipgloss"

// Minimal color palette
var (
	dimColor     = lipgloss.Color("#6c6c6c")
	successColor = lipgloss.Color("#9ece6a")
	errorColor   = lipgloss.Color("#f7768e")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	dimStyle     = lipgloss.NewStyle().Foreground(dimColor)
)
