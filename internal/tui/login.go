package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginField = iota
	passwordField
)

// loginModel is the login and registration form. It only holds input; the
// request is issued by appModel.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	register   bool
	submitting bool
	notice     string
}

func newLoginModel() loginModel {
	login := textinput.New()
	login.Prompt = "Login:    "
	login.Placeholder = "login"
	login.CharLimit = 64
	login.Focus()

	password := textinput.New()
	password.Prompt = "Password: "
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginModel{inputs: []textinput.Model{login, password}}
}

func (m loginModel) credentials() (login, password string) {
	return strings.TrimSpace(m.inputs[loginField].Value()), m.inputs[passwordField].Value()
}

func (m loginModel) ready() bool {
	login, password := m.credentials()
	return login != "" && password != ""
}

func (m loginModel) nextField() loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m loginModel) updateInput(msg tea.Msg) (loginModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	title := "LOG IN"
	switchHint := "ctrl+r: create an account"
	if m.register {
		title = "CREATE ACCOUNT"
		switchHint = "ctrl+r: log in instead"
	}

	var b strings.Builder
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\nPlease wait...")
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.notice))
	}

	return renderPage(title, b.String(), "tab: next field  enter: submit  "+switchHint)
}
