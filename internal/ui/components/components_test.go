package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

type pressedMsg struct{}

func TestButtonPressWhenEnabled(t *testing.T) {
	b := NewButton("Go", true, func() tea.Cmd {
		return func() tea.Msg { return pressedMsg{} }
	})

	_, cmd := b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from enabled button")
	}
	if _, ok := cmd().(pressedMsg); !ok {
		t.Error("expected pressedMsg")
	}
}

func TestButtonIgnoresPressWhenDisabled(t *testing.T) {
	called := false
	b := NewButton("Go", false, func() tea.Cmd {
		called = true
		return nil
	})

	_, cmd := b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil || called {
		t.Error("disabled button must not fire")
	}
}

func TestCheckboxToggles(t *testing.T) {
	var got []bool
	c := NewCheckbox("agree", func(v bool) tea.Cmd {
		got = append(got, v)
		return nil
	})

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if !c.Checked {
		t.Fatal("expected checked after space")
	}
	c, _ = c.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if c.Checked {
		t.Fatal("expected unchecked after x")
	}
	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("unexpected OnChange values %v", got)
	}
	if !strings.Contains(c.View(), "agree") {
		t.Error("label missing from view")
	}
}

func TestDotsMarksActive(t *testing.T) {
	view := NewDots(3, 1).View()
	if strings.Count(view, "•") != 2 {
		t.Errorf("expected two inactive dots, got %q", view)
	}
	if !strings.Contains(view, "━━━") {
		t.Errorf("expected active bar, got %q", view)
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "soon", Disabled: true},
		{Label: "ask"},
		{Label: "later", Disabled: true},
		{Label: "quit"},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("down should skip disabled items, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("down at the end should stay, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("up should skip disabled items, got %d", m.Selected)
	}
}
