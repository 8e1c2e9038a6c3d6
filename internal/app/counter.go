package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/triptych/internal/state"
)

// counterScreen owns two cells: the running count and the step applied by
// increment/decrement. Every user action lands as a cell write.
type counterScreen struct {
	count *state.Cell[int]
	step  *state.Cell[int]

	// inline step entry
	entering bool
	ti       textinput.Model
	stepErr  string
}

func newCounterScreen() *counterScreen {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New step..."
	ti.CharLimit = 6
	return &counterScreen{
		count: state.NewCell(0),
		step:  state.NewCell(1),
		ti:    ti,
	}
}

func (c *counterScreen) increment() { c.count.Set(c.count.Get() + c.step.Get()) }
func (c *counterScreen) decrement() { c.count.Set(c.count.Get() - c.step.Get()) }

// reset zeroes the count, and restores the step to 1 when asked. Each write
// goes through its own cell so both publish fresh identities.
func (c *counterScreen) reset(resetStep bool) {
	c.count.Set(0)
	if resetStep {
		c.step.Set(1)
	}
}

func (c *counterScreen) setStep(n int) { c.step.Set(n) }

func (c *counterScreen) capturing() bool { return c.entering }

func (c *counterScreen) update(msg tea.Msg) (tea.Cmd, bool) {
	if c.entering {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				raw := strings.TrimSpace(c.ti.Value())
				n, err := strconv.Atoi(raw)
				if err != nil || n <= 0 {
					c.stepErr = "Step must be a positive number"
					return nil, true
				}
				c.setStep(n)
				c.ti.SetValue("")
				c.ti.Blur()
				c.entering = false
				c.stepErr = ""
				return nil, true
			case "esc":
				c.entering = false
				c.ti.SetValue("")
				c.ti.Blur()
				c.stepErr = ""
				return nil, true
			}
		}
		c.ti, cmd = c.ti.Update(msg)
		return cmd, true
	}

	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "+", "=", "k", "up":
			c.increment()
			return nil, true
		case "-", "_", "j", "down":
			c.decrement()
			return nil, true
		case "r":
			c.reset(false)
			return nil, true
		case "R":
			c.reset(true)
			return nil, true
		case "s":
			c.entering = true
			c.ti.SetValue("")
			c.ti.Focus()
			return nil, true
		}
	}
	return nil, false
}

func (c *counterScreen) view() string {
	count := titleStyle.Render(strconv.Itoa(c.count.Get()))
	lines := []string{
		fmt.Sprintf("Count: %s", count),
		fmt.Sprintf("Step:  %s", accentStyle.Render(strconv.Itoa(c.step.Get()))),
		"",
		helpStyle.Render("+/- adjust • r reset • R reset+step • s set step"),
	}
	if c.entering {
		entry := "Set step"
		if c.stepErr != "" {
			entry += " — " + errorStyle.Render(c.stepErr)
		}
		lines = append(lines, "", entry, c.ti.View())
	}
	return strings.Join(lines, "\n")
}
