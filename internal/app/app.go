// Package app is the Bubble Tea surface: a root model hosting three
// independent screens, each owning its state through cells. The Elm loop is
// the rendering layer; a screen redraws when an Update commits a write.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screenID int

const (
	screenCounter screenID = iota
	screenTodos
	screenProfile
)

var screenNames = []string{"1:Counter", "2:Todos", "3:Profile"}

// Options configure the root model.
type Options struct {
	// Screen picks the initially active screen: counter, todos or profile.
	Screen string
	// UserID is the profile record to fetch.
	UserID int64
	// Fetch performs the external read for the profile screen.
	Fetch FetchUserFunc
}

// Model composes the three screens and routes input to the active one.
type Model struct {
	active  screenID
	counter *counterScreen
	todos   *todosScreen
	profile *profileScreen

	// commits counts cell writes across all screens, for the footer.
	commits uint64

	width, height int
}

// New builds the root model with freshly mounted screens.
func New(opt Options) *Model {
	m := &Model{
		counter: newCounterScreen(),
		todos:   newTodosScreen(),
		profile: newProfileScreen(opt.Fetch, opt.UserID),
	}
	switch strings.ToLower(opt.Screen) {
	case "todos":
		m.active = screenTodos
	case "profile":
		m.active = screenProfile
	default:
		m.active = screenCounter
	}

	tally := func() { m.commits++ }
	m.counter.count.Subscribe(tally)
	m.counter.step.Subscribe(tally)
	m.todos.list.Subscribe(tally)
	m.profile.res.Subscribe(tally)
	return m
}

// Run starts the program in the alternate screen.
func Run(opt Options) error {
	p := tea.NewProgram(New(opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) capturing() bool {
	switch m.active {
	case screenCounter:
		return m.counter.capturing()
	case screenTodos:
		return m.todos.capturing()
	}
	return m.profile.capturing()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		return m, nil
	case userFetchedMsg, spinner.TickMsg:
		// Fetch results and spinner ticks belong to the profile screen
		// even while another screen is active; its state settles off-screen.
		cmd, _ := m.profile.update(msg)
		return m, cmd
	case tea.KeyMsg:
		if x.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.capturing() {
			switch x.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.active = screenCounter
				return m, nil
			case "2":
				m.active = screenTodos
				return m, nil
			case "3":
				m.active = screenProfile
				return m, nil
			case "tab":
				m.active = (m.active + 1) % 3
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.active {
	case screenCounter:
		cmd, _ = m.counter.update(msg)
	case screenTodos:
		cmd, _ = m.todos.update(msg)
	case screenProfile:
		cmd, _ = m.profile.update(msg)
	}
	return m, cmd
}

func (m *Model) View() string {
	tabs := make([]string, len(screenNames))
	for i, name := range screenNames {
		if screenID(i) == m.active {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}

	var body string
	switch m.active {
	case screenCounter:
		body = m.counter.view()
	case screenTodos:
		body = m.todos.view()
	case screenProfile:
		body = m.profile.view()
	}

	panel := panelStyle
	if m.width > 4 {
		panel = panel.Width(m.width - 2)
	}

	footer := helpStyle.Render(fmt.Sprintf("1/2/3 or tab switch • q quit • %d writes", m.commits))
	return strings.Join([]string{
		strings.Join(tabs, " "),
		panel.Render(body),
		footer,
	}, "\n")
}
