package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/triptych/internal/userapi"
)

func newTestModel(screen string) *Model {
	return New(Options{
		Screen: screen,
		UserID: 1,
		Fetch:  stubFetch(userapi.User{Name: "Leanne Graham"}, nil),
	})
}

func TestModel_InitialScreen(t *testing.T) {
	cases := []struct {
		name string
		want screenID
	}{
		{"counter", screenCounter},
		{"todos", screenTodos},
		{"profile", screenProfile},
		{"", screenCounter},
		{"bogus", screenCounter},
	}
	for _, c := range cases {
		if m := newTestModel(c.name); m.active != c.want {
			t.Errorf("Screen=%q: expected screen %d, got %d", c.name, c.want, m.active)
		}
	}
}

func TestModel_NumberKeysSwitchScreens(t *testing.T) {
	m := newTestModel("counter")

	m.Update(keyRunes("3"))
	if m.active != screenProfile {
		t.Errorf("expected profile, got %d", m.active)
	}
	m.Update(keyRunes("2"))
	if m.active != screenTodos {
		t.Errorf("expected todos, got %d", m.active)
	}
}

func TestModel_TabCycles(t *testing.T) {
	m := newTestModel("counter")
	for _, want := range []screenID{screenTodos, screenProfile, screenCounter} {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		if m.active != want {
			t.Fatalf("expected screen %d after tab, got %d", want, m.active)
		}
	}
}

func TestModel_CapturingScreenKeepsKeys(t *testing.T) {
	m := newTestModel("todos")
	m.Update(keyRunes("a")) // open the add input

	m.Update(keyRunes("1")) // must be typed, not a screen switch

	if m.active != screenTodos {
		t.Error("screen switched while the input was capturing")
	}
	if got := m.todos.ti.Value(); got != "1" {
		t.Errorf("expected the rune in the input, got %q", got)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel("counter")
	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestModel_CommitTallyCountsAllCells(t *testing.T) {
	m := newTestModel("counter")

	m.Update(keyRunes("+")) // counter cell
	m.Update(keyRunes("2"))
	m.Update(keyRunes("a"))
	for _, r := range "todo" {
		m.Update(keyRunes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // store cell
	m.Update(keyRunes("3"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // resource cell

	if m.commits != 3 {
		t.Errorf("expected 3 commits across cells, got %d", m.commits)
	}
}

func TestModel_FetchResultRoutedWhileElsewhere(t *testing.T) {
	m := newTestModel("profile")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // start the fetch
	token := tokenOf(t, m.profile)
	m.Update(keyRunes("1")) // walk away to the counter

	m.Update(userFetchedMsg{token: token, user: userapi.User{Name: "Leanne Graham"}})

	if got := m.profile.res.Get().Payload.Name; got != "Leanne Graham" {
		t.Errorf("fetch must settle off-screen, got %q", got)
	}
}

func TestModel_ViewShowsActiveScreen(t *testing.T) {
	m := newTestModel("todos")
	if v := m.View(); v == "" {
		t.Fatal("expected a rendered view")
	}
}
