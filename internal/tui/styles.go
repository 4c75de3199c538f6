package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/codeverifier/internal/ui"
	"github.com/muurk/codeverifier/internal/version"
)

// Application branding constants
const (
	AppName   = "CODE VERIFIER"
	GitHubURL = "github.com/muurk/codeverifier"
)

// Common styles
var (
	// Prompt above the slots
	PromptStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Bold(true).
			MarginBottom(1)

	// Pending status ("2/6 entered")
	StatusPendingStyle = lipgloss.NewStyle().
				Foreground(ui.MutedColor)

	// Correct status
	StatusCorrectStyle = lipgloss.NewStyle().
				Foreground(ui.SuccessColor).
				Bold(true)

	// Incorrect status
	StatusIncorrectStyle = lipgloss.NewStyle().
				Foreground(ui.ErrorColor).
				Bold(true)

	// Blurred hint
	StatusBlurredStyle = lipgloss.NewStyle().
				Foreground(ui.WarningColor)
)

// BuildHeaderContent creates header content with app name and URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(ui.TextColor).
		Bold(true).
		Render(AppName + " " + version.Version)

	right := lipgloss.NewStyle().
		Foreground(ui.MutedColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderApplicationContainer wraps a screen with the header, a bordered
// content area and a help footer, filling the terminal.
//
// Before the first tea.WindowSizeMsg the size is unknown; content is then
// returned with header and footer but without the full-screen frame.
func RenderApplicationContainer(content, footerText string, terminalWidth, terminalHeight int) string {
	header := BuildHeaderContent()
	footer := lipgloss.NewStyle().Foreground(ui.MutedColor).Render(footerText)

	if terminalWidth < ui.MinTerminalWidth || terminalHeight <= 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", content, "", footer)
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	// Fixed rows: outer border (2) + header (2) + footer (2)
	contentHeight := terminalHeight - 6
	if contentHeight < 1 {
		contentHeight = 1
	}
	body := lipgloss.Place(terminalWidth-4, contentHeight, lipgloss.Center, lipgloss.Center, content)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		body,
		footerStyle.Render(footer),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth - 2).
		Render(inner)
}
