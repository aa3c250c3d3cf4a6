/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com

Package ui holds the lipgloss styles and row renderers for command output.
*/
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/TaskDeck/models"
)

var (
	// Colors
	ColorHigh      = lipgloss.Color("160") // Red
	ColorMedium    = lipgloss.Color("214") // Orange
	ColorLow       = lipgloss.Color("42")  // Green
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorPin       = lipgloss.Color("205") // Pink

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePin     = lipgloss.NewStyle().Foreground(ColorPin).Bold(true)
	StyleOffline = lipgloss.NewStyle().Foreground(ColorMedium).Bold(true)
	StyleDone    = lipgloss.NewStyle().Foreground(ColorSecondary).Strikethrough(true)

	StyleSectionTitle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true).
				Underline(true)

	stylesByPriority = map[models.TaskPriority]lipgloss.Style{
		models.PriorityHigh:   lipgloss.NewStyle().Foreground(ColorHigh).Bold(true),
		models.PriorityMedium: lipgloss.NewStyle().Foreground(ColorMedium),
		models.PriorityLow:    lipgloss.NewStyle().Foreground(ColorLow),
	}
)

// PriorityBadge renders the priority tier in its color.
func PriorityBadge(p models.TaskPriority) string {
	style, ok := stylesByPriority[p]
	if !ok {
		style = StyleSubtle
	}
	return style.Render(string(p))
}

// TaskRow renders one pending task line: pin marker, title, due date,
// priority badge, and a shortened id for follow-up commands.
func TaskRow(t models.Task) string {
	pin := "  "
	if t.IsPinned {
		pin = StylePin.Render("★ ")
	}
	return fmt.Sprintf("%s%s  %s  [%s]  %s",
		pin,
		StyleTitle.Render(t.Title),
		StyleSubtle.Render("due "+t.DueDate.Format("Jan 2")),
		PriorityBadge(t.Priority),
		StyleSubtle.Render(ShortID(t.ID)),
	)
}

// CompletedRow renders one history line: struck-through title, completion
// day, and the completion note when present.
func CompletedRow(t models.Task) string {
	when := ""
	if t.CompletedAt != nil {
		when = StyleSubtle.Render(t.CompletedAt.Format("Jan 2"))
	}
	line := fmt.Sprintf("  %s  %s", StyleDone.Render(t.Title), when)
	if t.CompletionNote != "" {
		line += "\n" + StyleSubtle.Render("    note: "+t.CompletionNote)
	}
	return line
}

// ShortID truncates a uuid for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// OfflineBadge renders the cache-served indicator for the watch view.
func OfflineBadge() string {
	return StyleOffline.Render("⚠ offline (cached data)")
}
