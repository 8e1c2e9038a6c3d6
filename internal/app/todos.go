package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/triptych/internal/state"
	"github.com/Makepad-fr/triptych/internal/todo"
)

// todosScreen owns one cell holding the copy-on-write store. Mutations go
// through the store's pure operations; the result is published back only
// when it is a new identity, so a no-op never triggers a redraw.
type todosScreen struct {
	list   *state.Cell[*todo.Store]
	cursor int

	adding bool
	ti     textinput.Model
}

func newTodosScreen() *todosScreen {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item..."
	ti.CharLimit = 200
	return &todosScreen{
		list: state.NewCell(todo.NewStore()),
		ti:   ti,
	}
}

// publish commits next to the cell unless it is the store we already hold.
// Republishing the same identity would be a missed-re-render bug on the
// subscription side, so the no-op case skips the write entirely.
func (t *todosScreen) publish(next *todo.Store) {
	if next != t.list.Get() {
		t.list.Set(next)
	}
}

func (t *todosScreen) add(text string) { t.publish(t.list.Get().Add(text)) }
func (t *todosScreen) toggle(id int64) { t.publish(t.list.Get().Toggle(id)) }
func (t *todosScreen) remove(id int64) { t.publish(t.list.Get().Remove(id)) }

// cursorID returns the id under the cursor, or false on an empty list.
func (t *todosScreen) cursorID() (int64, bool) {
	items := t.list.Get().Items()
	if t.cursor < 0 || t.cursor >= len(items) {
		return 0, false
	}
	return items[t.cursor].ID, true
}

func (t *todosScreen) clampCursor() {
	n := t.list.Get().Len()
	if t.cursor >= n {
		t.cursor = n - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t *todosScreen) capturing() bool { return t.adding }

func (t *todosScreen) update(msg tea.Msg) (tea.Cmd, bool) {
	if t.adding {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				// Empty text is silently dropped by the store; either way
				// the input bar closes.
				t.add(t.ti.Value())
				t.ti.SetValue("")
				t.ti.Blur()
				t.adding = false
				t.cursor = t.list.Get().Len() - 1
				t.clampCursor()
				return nil, true
			case "esc":
				t.adding = false
				t.ti.SetValue("")
				t.ti.Blur()
				return nil, true
			}
		}
		t.ti, cmd = t.ti.Update(msg)
		return cmd, true
	}

	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "up", "k":
			if t.cursor > 0 {
				t.cursor--
			}
			return nil, true
		case "down", "j":
			if t.cursor < t.list.Get().Len()-1 {
				t.cursor++
			}
			return nil, true
		case " ":
			if id, ok := t.cursorID(); ok {
				t.toggle(id)
			}
			return nil, true
		case "d":
			if id, ok := t.cursorID(); ok {
				t.remove(id)
				t.clampCursor()
			}
			return nil, true
		case "a":
			t.adding = true
			t.ti.SetValue("")
			t.ti.Focus()
			return nil, true
		}
	}
	return nil, false
}

func (t *todosScreen) view() string {
	st := t.list.Get()
	dn, pn := st.Stats()
	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), dn,
		pendingStyle.Render("•"), pn,
		accentStyle.Render("Total"), st.Len(),
	)

	lines := []string{header, ""}
	items := st.Items()
	if len(items) == 0 {
		lines = append(lines, mutedStyle.Render("  nothing yet — press a to add"))
	}
	for i, it := range items {
		box := mutedStyle.Render(boxUnchecked)
		text := it.Text
		if it.Done {
			box = successStyle.Render(boxChecked)
			text = doneStyle.Render(text)
		}
		prefix := "  "
		if i == t.cursor {
			prefix = selectedStyle.Render("> ")
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", prefix, box, text))
	}

	lines = append(lines, "", helpStyle.Render("a add • space toggle • d delete • ↑/↓ move"))
	if t.adding {
		lines = append(lines, "", "Add new item", t.ti.View())
	}
	return strings.Join(lines, "\n")
}
