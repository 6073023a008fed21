package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-gtd/internal/client"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenLogin screen = iota
	screenList
	screenDetail
)

type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputQuickAdd
)

const (
	pageSizeStep = 5
	nameWidth    = 48
)

type appModel struct {
	ctx      context.Context
	api      client.API
	prefs    *client.PreferenceStore
	logger   *logger.Logger
	settings client.Preferences

	screen screen
	login  loginModel
	detail detailModel

	active       int
	lists        map[client.View]*listScreen
	projectCache *client.Cache[models.ProjectView]
	taskCache    *client.Cache[models.TaskView]
	stats        *models.DashboardStats

	mode     inputMode
	search   textinput.Model
	quickAdd textinput.Model
	saving   bool

	spinner spinner.Model
	status  string

	showError    bool
	errorOverlay errorOverlayModel

	logout bool
	copy   func(string) error
}

func newAppModel(ctx context.Context, api client.API, prefs *client.PreferenceStore, settings client.Preferences, opts Options, logger *logger.Logger, loggedIn bool) appModel {
	lists := make(map[client.View]*listScreen, len(tabs))
	for _, v := range tabs {
		state := client.NewListState(v, settings.PageSize, opts.MaxPageSize)
		state.SetGroupBy(settings.GroupBy)
		lists[v] = &listScreen{state: state}
	}

	search := textinput.New()
	search.Prompt = "Search: "
	search.CharLimit = 200

	quickAdd := textinput.New()
	quickAdd.Prompt = "Add: "
	quickAdd.Placeholder = "Call Anna #Errands @home !2 today"
	quickAdd.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := appModel{
		ctx:          ctx,
		api:          api,
		prefs:        prefs,
		logger:       logger.WithComponent("tui"),
		settings:     settings,
		screen:       screenLogin,
		login:        newLoginModel(),
		lists:        lists,
		projectCache: client.NewCache[models.ProjectView](opts.CacheTTL),
		taskCache:    client.NewCache[models.TaskView](opts.CacheTTL),
		search:       search,
		quickAdd:     quickAdd,
		spinner:      sp,
		copy:         clipboard.WriteAll,
	}
	if loggedIn {
		m.screen = screenList
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.screen == screenLogin {
		return tea.Batch(textinput.Blink, m.spinner.Tick)
	}
	return tea.Batch(m.refresh(), m.spinner.Tick)
}

func (m appModel) current() *listScreen {
	return m.lists[tabs[m.active]]
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter, keys.esc) {
				m.showError = false
			}
			return m, nil
		}
		switch m.screen {
		case screenLogin:
			return m.updateLogin(msg)
		case screenDetail:
			return m.updateDetail(msg)
		default:
			if m.mode != inputNone {
				return m.updateInput(msg)
			}
			return m.updateList(msg)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case authDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			return m.fail(msg.err, loginMessage(msg.err))
		}
		m.login = newLoginModel()
		m.screen = screenList
		m.status = "Signed in as " + msg.user.Login
		m.projectCache.Invalidate()
		m.taskCache.Invalidate()
		return m, m.refresh()

	case projectsLoadedMsg:
		l := m.lists[msg.view]
		if msg.key != l.state.Key() {
			return m, nil
		}
		if msg.err != nil {
			l.loading = false
			return m.fail(msg.err, client.UserMessage(msg.err))
		}
		if m.applyTotal(l, msg.page.Total) {
			return m, m.load(msg.view)
		}
		l.setProjects(msg.page.Items)
		return m, nil

	case tasksLoadedMsg:
		l := m.lists[msg.view]
		if msg.key != l.state.Key() {
			return m, nil
		}
		if msg.err != nil {
			l.loading = false
			return m.fail(msg.err, client.UserMessage(msg.err))
		}
		if m.applyTotal(l, msg.page.Total) {
			return m, m.load(msg.view)
		}
		l.setTasks(msg.page.Items)
		return m, nil

	case statsLoadedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("dashboard stats not loaded")
			return m, nil
		}
		stats := msg.stats
		m.stats = &stats
		return m, nil

	case quickAddDoneMsg:
		m.saving = false
		if msg.err != nil {
			return m.fail(msg.err, client.UserMessage(msg.err))
		}
		m.quickAdd.Reset()
		m.quickAdd.Blur()
		m.mode = inputNone
		m.status = "Added " + msg.task.TaskName
		return m, m.invalidate()

	case toggledMsg:
		if msg.err != nil {
			return m.fail(msg.err, client.UserMessage(msg.err))
		}
		if m.screen == screenDetail {
			m.detail = detailModel{item: entry{project: msg.project, task: msg.task}, status: "Saved"}
		}
		m.status = "Saved"
		return m, m.invalidate()

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("clipboard write failed")
			m.detail.status = "Could not copy the URL."
			return m, nil
		}
		m.detail.status = "URL copied to clipboard"
		return m, nil

	case eventMsg:
		if m.screen == screenLogin {
			return m, nil
		}
		return m, m.invalidate()

	case logoutDoneMsg:
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.submitting {
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.tab, keys.backtab):
		m.login = m.login.nextField()
		return m, textinput.Blink
	case key.Matches(msg, keys.register):
		m.login.register = !m.login.register
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.login.focus == loginField {
			m.login = m.login.nextField()
			return m, textinput.Blink
		}
		if !m.login.ready() {
			m.login.notice = "Login and password are required."
			return m, nil
		}
		m.login.notice = ""
		m.login.submitting = true
		return m, m.authenticate()
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.updateInput(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	l := m.current()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		m.active = (m.active + 1) % len(tabs)
		return m, m.ensureLoaded()
	case key.Matches(msg, keys.backtab):
		m.active = (m.active + len(tabs) - 1) % len(tabs)
		return m, m.ensureLoaded()
	case key.Matches(msg, keys.up):
		l.moveCursor(-1)
	case key.Matches(msg, keys.down):
		l.moveCursor(1)
	case key.Matches(msg, keys.nextPage):
		if l.state.NextPage() {
			l.cursor = 0
			return m, m.load(l.state.View)
		}
	case key.Matches(msg, keys.prevPage):
		if l.state.PrevPage() {
			l.cursor = 0
			return m, m.load(l.state.View)
		}
	case key.Matches(msg, keys.enter):
		if e, ok := l.selected(); ok {
			m.detail = detailModel{item: e}
			m.screen = screenDetail
		}
	case key.Matches(msg, keys.toggle):
		if e, ok := l.selected(); ok {
			return m, m.toggle(e)
		}
	case key.Matches(msg, keys.quickAdd):
		m.mode = inputQuickAdd
		m.quickAdd.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.search):
		m.mode = inputSearch
		m.search.SetValue(l.state.Search)
		m.search.CursorEnd()
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.completed):
		l.state.SetShowCompleted(!l.state.ShowCompleted)
		return m, m.load(l.state.View)
	case key.Matches(msg, keys.showAll):
		l.state.SetShowAll(!l.state.ShowAll)
		return m, m.load(l.state.View)
	case key.Matches(msg, keys.group):
		m.settings.GroupBy = l.state.CycleGroupBy()
		l.cursor = 0
		return m, m.savePreferences()
	case key.Matches(msg, keys.grow, keys.shrink):
		step := pageSizeStep
		if key.Matches(msg, keys.shrink) {
			step = -pageSizeStep
		}
		l.state.SetPageSize(l.state.PageSize + step)
		m.settings.PageSize = l.state.PageSize
		return m, tea.Batch(m.load(l.state.View), m.savePreferences())
	case key.Matches(msg, keys.sidebar):
		m.settings.SidebarCollapsed = !m.settings.SidebarCollapsed
		return m, m.savePreferences()
	case key.Matches(msg, keys.refresh):
		return m, m.invalidate()
	case key.Matches(msg, keys.logout):
		return m, m.signOut()
	}
	return m, nil
}

func (m appModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	l := m.current()

	switch {
	case key.Matches(msg, keys.esc):
		if m.mode == inputSearch {
			m.search.Blur()
		} else {
			m.quickAdd.Blur()
		}
		m.mode = inputNone
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.mode == inputSearch {
			m.search.Blur()
			m.mode = inputNone
			l.state.SetSearch(strings.TrimSpace(m.search.Value()))
			l.cursor = 0
			return m, m.load(l.state.View)
		}
		text := strings.TrimSpace(m.quickAdd.Value())
		if text == "" {
			return m, nil
		}
		m.saving = true
		return m, m.addTask(text)
	}

	var cmd tea.Cmd
	if m.mode == inputSearch {
		m.search, cmd = m.search.Update(msg)
	} else {
		m.quickAdd, cmd = m.quickAdd.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc, keys.quit):
		m.screen = screenList
		m.detail = detailModel{}
	case key.Matches(msg, keys.toggle):
		return m, m.toggle(m.detail.item)
	case key.Matches(msg, keys.copy):
		if t := m.detail.item.task; t != nil && t.URL != "" {
			return m, m.copyURL(t.URL)
		}
	}
	return m, nil
}

// fail shows message over the current screen. An expired session sends the
// user back to the login form.
func (m appModel) fail(err error, message string) (tea.Model, tea.Cmd) {
	m.logger.Error().Err(err).Msg("request failed")

	if errors.Is(err, client.ErrUnauthorized) && m.screen != screenLogin {
		m.screen = screenLogin
		m.mode = inputNone
		m.login = newLoginModel()
		m.login.notice = message
		return m, m.forgetSession()
	}

	m.errorOverlay = errorOverlayModel{message: message}
	m.showError = true
	return m, nil
}

func loginMessage(err error) string {
	if errors.Is(err, client.ErrUnauthorized) {
		return "Wrong login or password."
	}
	return client.UserMessage(err)
}

// applyTotal records the fetched total and reports whether the page moved
// back because the collection shrank.
func (m appModel) applyTotal(l *listScreen, total int) bool {
	before := l.state.Page
	l.state.Apply(total)
	return l.state.Page != before
}

func (m appModel) ensureLoaded() tea.Cmd {
	if l := m.current(); !l.loaded && !l.loading {
		return m.load(l.state.View)
	}
	return nil
}

func (m appModel) refresh() tea.Cmd {
	return tea.Batch(m.load(tabs[m.active]), m.loadStats())
}

// invalidate drops every cached page and reloads what is on screen.
func (m appModel) invalidate() tea.Cmd {
	m.projectCache.Invalidate()
	m.taskCache.Invalidate()
	for _, l := range m.lists {
		if l != m.current() {
			l.loaded = false
		}
	}
	return m.refresh()
}

func (m appModel) View() string {
	var body string
	switch m.screen {
	case screenLogin:
		body = m.login.View()
	case screenDetail:
		body = m.detail.View()
	default:
		body = m.listView()
	}

	if m.showError {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", m.errorOverlay.View())
	}
	return appStyle.Render(body)
}

func (m appModel) listView() string {
	l := m.current()

	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(l.summary()))
	b.WriteString("\n\n")

	if l.loading && !l.loaded {
		b.WriteString(m.spinner.View() + " Loading...")
	} else {
		b.WriteString(l.render(nameWidth))
	}

	switch m.mode {
	case inputSearch:
		b.WriteString("\n\n")
		b.WriteString(m.search.View())
	case inputQuickAdd:
		b.WriteString("\n\n")
		b.WriteString(m.quickAdd.View())
		if m.saving {
			b.WriteString(" " + m.spinner.View())
		}
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(m.status))
	}

	hotKeys := "tab: view  ↑/↓: move  ←/→: page  enter: open  space: done  a: add  /: search\n" +
		"  s: completed  g: group  A: show all  +/-: page size  b: sidebar  r: refresh  L: log out  q: quit"
	if m.mode != inputNone {
		hotKeys = "enter: confirm  esc: cancel"
	}

	page := renderPage("GTD · "+tabTitle(l.state.View), b.String(), hotKeys)
	if m.settings.SidebarCollapsed || m.stats == nil {
		return page
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, page, renderStats(*m.stats))
}

func (m appModel) tabBar() string {
	names := make([]string, len(tabs))
	for i, v := range tabs {
		if i == m.active {
			names[i] = activeTabStyle.Render(tabTitle(v))
			continue
		}
		names[i] = helpStyle.Render(tabTitle(v))
	}
	return strings.Join(names, "  ")
}
