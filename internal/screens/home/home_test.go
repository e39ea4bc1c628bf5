package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/NovaNexusIO/HelpMate/internal/content"
	"github.com/NovaNexusIO/HelpMate/internal/router"
)

var testText = content.Home{
	Title:       "You're all set",
	Description: "Welcome",
	AskForHelp:  "Ask for help",
	OfferHelp:   "Offer help",
	Quit:        "Quit",
	ComingSoon:  "Coming soon",
}

func TestSelectingFeaturePushesPlaceholder(t *testing.T) {
	h := New(testText, true)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from menu selection")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "Ask for help" {
		t.Errorf("unexpected placeholder title %q", push.Screen.Title())
	}
}

func TestQuit(t *testing.T) {
	h := New(testText, false)
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestViewShowsMascotVariant(t *testing.T) {
	if !strings.Contains(New(testText, true).View(80, 24), "★") {
		t.Error("newcomer should see the celebrating mascot")
	}
	if strings.Contains(New(testText, false).View(80, 24), "★") {
		t.Error("returning user should see the idle mascot")
	}
}
