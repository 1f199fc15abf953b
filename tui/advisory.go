package tui

import (
	"farm-advisor/domain"
	"farm-advisor/panels"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 34

func farmDetailsView(profile domain.FarmProfile) string {
	rows := []string{
		titleStyle.Render("Farm Details"),
		subtitleStyle.Render("Plot Size") + "  " + badgeStyle.Render(profile.PlotSize+" acres"),
		subtitleStyle.Render("Soil Type") + "  " + badgeStyle.Render(profile.SoilType),
		subtitleStyle.Render("Location ") + "  " + badgeStyle.Render(profile.Location),
		subtitleStyle.Render("Crop     ") + "  " + badgeStyle.Render(profile.CropType),
	}
	return cardStyle.Render(strings.Join(rows, "\n"))
}

func weatherView(panel panels.WeatherPanel) string {
	w := panel.Weather
	rows := []string{
		titleStyle.Render(panel.Icon.Glyph() + " Weather Forecast"),
		subtitleStyle.Render(panel.Location),
		"",
		lipgloss.NewStyle().Bold(true).Render(w.Temperature) + "  " + w.Condition,
		"Humidity    " + w.Humidity,
		"Wind Speed  " + w.WindSpeed,
		"Visibility  " + w.Visibility,
		"Pressure    " + w.Pressure,
		"UV Index    " + w.UVIndex,
		"",
		subtitleStyle.Render("Farming Advice"),
		panel.Advice,
	}
	return cardStyle.Width(sidebarWidth).Render(strings.Join(rows, "\n"))
}

func policiesView(policies []domain.Policy) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Government Policies & Schemes") + "\n")
	b.WriteString(subtitleStyle.Render("Latest agricultural policies and benefits for farmers") + "\n\n")
	for _, p := range policies {
		status := lipgloss.NewStyle().
			Foreground(statusColors[panels.ColorFor(p.Status)]).
			Bold(true).
			Render(panels.StatusLabel(p.Status))
		b.WriteString(fmt.Sprintf("%s  %s\n", lipgloss.NewStyle().Bold(true).Render(p.Title), status))
		b.WriteString(subtitleStyle.Render(p.Description) + "\n")
		b.WriteString(fmt.Sprintf("Benefit: %s   Eligibility: %s   %s\n\n", panels.BenefitOrDash(p), p.Eligibility, panels.FormatDate(p.Date)))
	}
	return b.String()
}

func transcriptView(messages []domain.Message, width int) string {
	var b strings.Builder
	for _, m := range messages {
		who := userStyle.Render("You")
		if m.FromBot() {
			who = botStyle.Render("Advisor")
		}
		text := m.Text
		if width > 0 {
			text = lipgloss.NewStyle().Width(width).Render(text)
		}
		b.WriteString(fmt.Sprintf("%s %s\n%s\n\n", who, timeStyle.Render(m.CreatedAt.Format("15:04:05")), text))
	}
	return b.String()
}
