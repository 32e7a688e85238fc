package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/roeland/learntrack/internal/ui/theme"
)

// Block-letter title, stacked as two words so it fits an 80-column frame.
const bannerFull = `██╗     ███████╗ █████╗ ██████╗ ███╗   ██╗
██║     ██╔════╝██╔══██╗██╔══██╗████╗  ██║
██║     █████╗  ███████║██████╔╝██╔██╗ ██║
██║     ██╔══╝  ██╔══██║██╔══██╗██║╚██╗██║
███████╗███████╗██║  ██║██║  ██║██║ ╚████║
╚══════╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝
████████╗██████╗  █████╗  ██████╗██╗  ██╗
╚══██╔══╝██╔══██╗██╔══██╗██╔════╝██║ ██╔╝
   ██║   ██████╔╝███████║██║     █████╔╝
   ██║   ██╔══██╗██╔══██║██║     ██╔═██╗
   ██║   ██║  ██║██║  ██║╚██████╗██║  ██╗
   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "L E A R N T R A C K"

// renderBanner returns the styled title block or compact fallback.
func renderBanner(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := bannerFull
	if compact {
		art = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStats renders the level, points, video progress, and achievement
// counters as a single stats line.
func renderStats(level, points, watched, total, percent, earned int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	pointStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	videoStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	badgeStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	if compact {
		return fmt.Sprintf("%s %s %s %s",
			levelStyle.Render(fmt.Sprintf("Lv%d", level)),
			pointStyle.Render(fmt.Sprintf("★%d", points)),
			videoStyle.Render(fmt.Sprintf("▶%d/%d", watched, total)),
			badgeStyle.Render(fmt.Sprintf("⬡%d", earned)),
		)
	}
	return fmt.Sprintf("%s  %s  %s  %s",
		levelStyle.Render(fmt.Sprintf("LEVEL %d", level)),
		pointStyle.Render(fmt.Sprintf("★ %d PTS", points)),
		videoStyle.Render(fmt.Sprintf("▶ %d/%d VIDEOS (%d%%)", watched, total, percent)),
		badgeStyle.Render(fmt.Sprintf("⬡ %d EARNED", earned)),
	)
}
