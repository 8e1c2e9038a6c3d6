package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeString(t *testing.T, update func(tea.Msg) (tea.Cmd, bool), s string) {
	t.Helper()
	for _, r := range s {
		update(keyRunes(string(r)))
	}
}

func TestCounter_IncrementDecrement(t *testing.T) {
	c := newCounterScreen()

	c.update(keyRunes("+"))
	c.update(keyRunes("+"))
	if got := c.count.Get(); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}

	c.update(keyRunes("-"))
	if got := c.count.Get(); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestCounter_IncrementUsesStep(t *testing.T) {
	c := newCounterScreen()
	c.setStep(5)

	c.increment()
	c.increment()
	if got := c.count.Get(); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}

	c.decrement()
	if got := c.count.Get(); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}

func TestCounter_ResetKeepsStep(t *testing.T) {
	c := newCounterScreen()
	c.setStep(3)
	c.increment()

	c.update(keyRunes("r"))

	if got := c.count.Get(); got != 0 {
		t.Errorf("expected count 0, got %d", got)
	}
	if got := c.step.Get(); got != 3 {
		t.Errorf("reset must keep the step, got %d", got)
	}
}

func TestCounter_ResetAllRestoresStep(t *testing.T) {
	c := newCounterScreen()
	c.setStep(3)
	c.increment()

	c.update(keyRunes("R"))

	if got := c.count.Get(); got != 0 {
		t.Errorf("expected count 0, got %d", got)
	}
	if got := c.step.Get(); got != 1 {
		t.Errorf("expected step restored to 1, got %d", got)
	}
}

func TestCounter_ResetPublishesFreshIdentity(t *testing.T) {
	c := newCounterScreen()
	writes := 0
	c.count.Subscribe(func() { writes++ })

	// Count is already zero; reset must still commit a distinct write so
	// the subscriber fires.
	c.reset(false)

	if writes != 1 {
		t.Errorf("expected 1 notification, got %d", writes)
	}
}

func TestCounter_SetStepViaInput(t *testing.T) {
	c := newCounterScreen()

	c.update(keyRunes("s"))
	if !c.capturing() {
		t.Fatal("expected the step input to capture keys")
	}
	typeString(t, c.update, "7")
	c.update(tea.KeyMsg{Type: tea.KeyEnter})

	if c.capturing() {
		t.Error("expected the step input to close on enter")
	}
	if got := c.step.Get(); got != 7 {
		t.Errorf("expected step 7, got %d", got)
	}
}

func TestCounter_SetStepRejectsNonNumber(t *testing.T) {
	c := newCounterScreen()

	c.update(keyRunes("s"))
	typeString(t, c.update, "x")
	c.update(tea.KeyMsg{Type: tea.KeyEnter})

	if !c.capturing() {
		t.Error("a rejected step must keep the input open")
	}
	if c.stepErr == "" {
		t.Error("expected a validation message")
	}
	if got := c.step.Get(); got != 1 {
		t.Errorf("step must be unchanged, got %d", got)
	}
}

func TestCounter_SetStepCancel(t *testing.T) {
	c := newCounterScreen()
	c.update(keyRunes("s"))
	typeString(t, c.update, "9")
	c.update(tea.KeyMsg{Type: tea.KeyEsc})

	if c.capturing() {
		t.Error("esc must close the input")
	}
	if got := c.step.Get(); got != 1 {
		t.Errorf("cancelled entry must not change the step, got %d", got)
	}
}
