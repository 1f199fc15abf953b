// Package tui is the terminal front end. It renders exactly one of the
// login, intake and advisory screens, whichever the session controller
// selects, and forwards user input to the controller.
package tui

import (
	"context"
	stderrors "errors"
	"farm-advisor/contract"
	"farm-advisor/domain"
	"farm-advisor/errors"
	"farm-advisor/intake"
	"farm-advisor/panels"
	"farm-advisor/session"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type weatherMsg struct {
	location string
	snapshot domain.WeatherSnapshot
	err      error
}

type Model struct {
	log        *slog.Logger
	controller *session.Controller
	provider   contract.IWeatherProvider
	sink       *Sink

	view     domain.View
	login    loginForm
	intake   intakeForm
	input    textinput.Model
	spin     spinner.Model
	messages []domain.Message
	profile  domain.FarmProfile
	weather  panels.WeatherPanel

	showPolicies bool
	errMsg       string
	width        int
	height       int
}

func New(log *slog.Logger, controller *session.Controller, provider contract.IWeatherProvider, sink *Sink) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	m := Model{
		log:        log,
		controller: controller,
		provider:   provider,
		sink:       sink,
		login:      newLoginForm(),
		intake:     newIntakeForm(),
		input:      newChatInput(),
		spin:       s,
	}
	m.refresh()
	return m
}

func newChatInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "Ask about your crops, soil, weather..."
	in.Prompt = "> "
	in.Focus()
	return in
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick, m.sink.wait())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-sidebarWidth-8, 10)
		return m, nil

	case sessionEventMsg:
		cmd := m.refresh()
		return m, tea.Batch(cmd, m.sink.wait())

	case weatherMsg:
		if msg.err != nil {
			m.log.Warn("Weather panel shows fallback data", "location", msg.location, "error", msg.err)
		}
		if msg.location == m.profile.Location {
			m.weather = panels.NewWeatherPanel(msg.location, &msg.snapshot)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.view {
		case domain.ViewLogin:
			return m.updateLogin(msg)
		case domain.ViewIntake:
			return m.updateIntake(msg)
		default:
			return m.updateAdvisory(msg)
		}
	}
	return m.forward(msg)
}

// forward routes non-key messages (cursor blink) to the focused input.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case domain.ViewLogin:
		m.login, cmd = m.login.update(msg)
	case domain.ViewIntake:
		m.intake, cmd = m.intake.update(msg)
	default:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.login = m.login.move(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.login = m.login.move(-1)
		return m, nil
	case tea.KeyEnter:
		username, password := m.login.credentials()
		if err := m.controller.Login(username, password); err != nil {
			m.errMsg = describe(err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.refresh()
	}
	return m.forward(msg)
}

func (m Model) updateIntake(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.intake = m.intake.move(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.intake = m.intake.move(-1)
		return m, nil
	case tea.KeyEnter:
		profile, err := intake.Submit(m.intake.form())
		if err == nil {
			err = m.controller.SubmitProfile(profile)
		}
		if err != nil {
			m.errMsg = describe(err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.refresh()
	}
	return m.forward(msg)
}

func (m Model) updateAdvisory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlL:
		m.controller.Logout()
		return m, m.refresh()
	case tea.KeyCtrlP:
		m.showPolicies = !m.showPolicies
		return m, nil
	case tea.KeyEnter:
		if err := m.controller.SendMessage(m.input.Value()); err != nil {
			m.errMsg = describe(err)
			return m, nil
		}
		m.errMsg = ""
		m.input.Reset()
		return m, m.refresh()
	}
	return m.forward(msg)
}

// refresh re-reads the controller. Entering a new view resets that view's widgets.
func (m *Model) refresh() tea.Cmd {
	previous := m.view
	m.view = m.controller.View()
	m.profile, _ = m.controller.Profile()

	messages, err := m.controller.Transcript()
	if err != nil {
		m.log.Error("Transcript not readable", "error", err)
	} else {
		m.messages = messages
	}

	if previous == m.view {
		return nil
	}
	switch m.view {
	case domain.ViewLogin:
		m.login = newLoginForm()
		m.intake = newIntakeForm()
		m.showPolicies = false
	case domain.ViewIntake:
		m.intake = newIntakeForm()
	case domain.ViewAdvisory:
		m.input = newChatInput()
		m.weather = panels.NewWeatherPanel(m.profile.Location, nil)
		return m.fetchWeather(m.profile.Location)
	}
	return nil
}

func (m Model) fetchWeather(location string) tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		snapshot, err := provider.Current(context.Background(), location)
		return weatherMsg{location: location, snapshot: snapshot, err: err}
	}
}

func (m Model) View() string {
	switch m.view {
	case domain.ViewLogin:
		return m.login.view(m.errMsg)
	case domain.ViewIntake:
		return m.intake.view(m.errMsg)
	default:
		return m.advisoryView()
	}
}

func (m Model) advisoryView() string {
	header := titleStyle.Render("Farm AI Advisor") + "  " +
		helpStyle.Render("ctrl+p: policies • ctrl+l: logout • ctrl+c: quit")

	sidebar := lipgloss.JoinVertical(lipgloss.Left,
		farmDetailsView(m.profile),
		weatherView(m.weather),
	)

	var main strings.Builder
	if m.showPolicies {
		main.WriteString(policiesView(panels.Policies()))
	} else {
		main.WriteString(titleStyle.Render("AI Farming Assistant") + "\n")
		main.WriteString(subtitleStyle.Render("Get personalized advice for your farm") + "\n\n")
		textWidth := 0
		if m.width > 0 {
			textWidth = max(m.width-sidebarWidth-8, 20)
		}
		main.WriteString(transcriptView(m.messages, textWidth))
		if m.controller.Pending() > 0 {
			main.WriteString(m.spin.View() + " Advisor is typing…\n")
		}
		main.WriteString(m.input.View() + "\n")
		if m.errMsg != "" {
			main.WriteString(errorStyle.Render(m.errMsg) + "\n")
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", main.String())
	return header + "\n\n" + body + "\n"
}

func describe(err error) string {
	switch {
	case stderrors.Is(err, errors.ErrTooManyPendingReplies):
		return "Please wait for the advisor to answer before sending more."
	default:
		return err.Error()
	}
}
