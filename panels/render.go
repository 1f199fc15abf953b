package panels

import (
	"farm-advisor/domain"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

var terminalColors = map[StatusColor]color.Color{
	ColorGreen:  color.FgGreen,
	ColorBlue:   color.FgBlue,
	ColorOrange: color.FgYellow,
	ColorGray:   color.FgGray,
}

// RenderWeather writes the weather card as plain lines.
func RenderWeather(w io.Writer, panel WeatherPanel) error {
	title := color.New(color.FgCyan, color.OpBold).Sprintf("%s Weather Forecast", panel.Icon.Glyph())
	lines := []string{
		title,
		panel.Location,
		"",
		fmt.Sprintf("  %s  %s", panel.Weather.Temperature, panel.Weather.Condition),
		fmt.Sprintf("  Humidity    %s", panel.Weather.Humidity),
		fmt.Sprintf("  Wind Speed  %s", panel.Weather.WindSpeed),
		fmt.Sprintf("  Visibility  %s", panel.Weather.Visibility),
		fmt.Sprintf("  Pressure    %s", panel.Weather.Pressure),
		fmt.Sprintf("  UV Index    %s", panel.Weather.UVIndex),
		"",
		color.FgGreen.Render("Farming Advice: ") + panel.Advice,
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// RenderPolicies writes one table row per policy, in the given order.
func RenderPolicies(w io.Writer, policies []domain.Policy) error {
	header := color.New(color.FgCyan, color.OpBold).Render("Government Policies & Schemes")
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Status", "Title", "Category", "Benefit", "Eligibility", "Date"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, p := range policies {
		table.Append([]string{
			StatusBadge(p.Status),
			p.Title,
			p.Category,
			BenefitOrDash(p),
			p.Eligibility,
			FormatDate(p.Date),
		})
	}
	table.Render()

	for _, p := range policies {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", p.Title, p.Description); err != nil {
			return err
		}
	}
	return nil
}

// StatusBadge is the upper-cased status painted with its status colour.
func StatusBadge(status domain.PolicyStatus) string {
	return terminalColors[ColorFor(status)].Render(StatusLabel(status))
}

// FormatDate renders an ISO date as "Jan 2, 2006", leaving anything else untouched.
func FormatDate(iso string) string {
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}
