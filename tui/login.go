package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginForm struct {
	inputs []textinput.Model
	focus  int
}

func newLoginForm() loginForm {
	username := textinput.New()
	username.Placeholder = "Enter your username"
	username.Prompt = ""
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Enter your password"
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{inputs: []textinput.Model{username, password}}
}

func (f loginForm) move(delta int) loginForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

func (f loginForm) update(msg tea.Msg) (loginForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f loginForm) credentials() (string, string) {
	return f.inputs[0].Value(), f.inputs[1].Value()
}

func (f loginForm) view(errMsg string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🌾 Farm AI Advisor") + "\n")
	b.WriteString(subtitleStyle.Render("Sign in to continue") + "\n\n")
	labels := []string{"Username", "Password"}
	for i, input := range f.inputs {
		label := labelStyle.Render(labels[i])
		if i == f.focus {
			label = focusStyle.Width(20).Render(labels[i])
		}
		b.WriteString(label + input.View() + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter: sign in • tab: next field • ctrl+c: quit") + "\n")
	if errMsg != "" {
		b.WriteString(errorStyle.Render(errMsg) + "\n")
	}
	return b.String()
}
