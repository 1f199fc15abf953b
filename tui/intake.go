package tui

import (
	"farm-advisor/domain"
	"farm-advisor/intake"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldPlotSize = iota
	fieldLocation
	fieldSoilType
	fieldCropType
	fieldCount
)

// selector cycles through a fixed choice list. -1 means nothing chosen yet.
type selector struct {
	placeholder string
	choices     []string
	index       int
}

func (s selector) shift(delta int) selector {
	if s.index < 0 {
		s.index = 0
		return s
	}
	s.index = (s.index + delta + len(s.choices)) % len(s.choices)
	return s
}

func (s selector) value() string {
	if s.index < 0 {
		return ""
	}
	return s.choices[s.index]
}

func (s selector) view(focused bool) string {
	if s.index < 0 {
		return subtitleStyle.Render(s.placeholder)
	}
	if focused {
		return focusStyle.Render("‹ " + s.value() + " ›")
	}
	return s.value()
}

type intakeForm struct {
	plotSize textinput.Model
	location textinput.Model
	soil     selector
	crop     selector
	focus    int
}

func newIntakeForm() intakeForm {
	plotSize := textinput.New()
	plotSize.Placeholder = "e.g., 10"
	plotSize.Prompt = ""
	plotSize.Focus()

	location := textinput.New()
	location.Placeholder = "City, State/Province"
	location.Prompt = ""

	return intakeForm{
		plotSize: plotSize,
		location: location,
		soil:     selector{placeholder: "Select soil type", choices: domain.SoilTypes, index: -1},
		crop:     selector{placeholder: "Select crop type", choices: domain.CropTypes, index: -1},
	}
}

func (f intakeForm) move(delta int) intakeForm {
	f.plotSize.Blur()
	f.location.Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	switch f.focus {
	case fieldPlotSize:
		f.plotSize.Focus()
	case fieldLocation:
		f.location.Focus()
	}
	return f
}

func (f intakeForm) update(msg tea.Msg) (intakeForm, tea.Cmd) {
	var cmd tea.Cmd
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case f.focus == fieldSoilType && (key.Type == tea.KeyLeft || key.Type == tea.KeyRight):
			f.soil = f.soil.shift(direction(key))
			return f, nil
		case f.focus == fieldCropType && (key.Type == tea.KeyLeft || key.Type == tea.KeyRight):
			f.crop = f.crop.shift(direction(key))
			return f, nil
		}
	}
	switch f.focus {
	case fieldPlotSize:
		f.plotSize, cmd = f.plotSize.Update(msg)
	case fieldLocation:
		f.location, cmd = f.location.Update(msg)
	}
	return f, cmd
}

func direction(key tea.KeyMsg) int {
	if key.Type == tea.KeyLeft {
		return -1
	}
	return 1
}

func (f intakeForm) form() intake.Form {
	return intake.Form{
		PlotSize: f.plotSize.Value(),
		SoilType: f.soil.value(),
		Location: f.location.Value(),
		CropType: f.crop.value(),
	}
}

func (f intakeForm) view(errMsg string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🌱 Farm Information") + "\n")
	b.WriteString(subtitleStyle.Render("Tell us about your farm to get personalized AI recommendations") + "\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Plot Size (acres)", f.plotSize.View()},
		{"Location", f.location.View()},
		{"Soil Type", f.soil.view(f.focus == fieldSoilType)},
		{"Crop Type", f.crop.view(f.focus == fieldCropType)},
	}
	for i, row := range rows {
		label := labelStyle.Render(row.label)
		if i == f.focus {
			label = focusStyle.Width(20).Render(row.label)
		}
		b.WriteString(label + row.value + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter: continue to dashboard • tab/shift+tab: move • ←/→: choose") + "\n")
	if errMsg != "" {
		b.WriteString(errorStyle.Render(errMsg) + "\n")
	}
	return b.String()
}
