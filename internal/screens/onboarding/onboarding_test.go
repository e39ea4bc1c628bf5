package onboarding

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/NovaNexusIO/HelpMate/internal/content"
	"github.com/NovaNexusIO/HelpMate/internal/onboarding"
	"github.com/NovaNexusIO/HelpMate/internal/screen"
)

type doneMsg struct{}

var testSlides = []onboarding.SlideContent{
	{Title: "Help is nearby", Description: "first", Accent: "heart", Background: "blue"},
	{Title: "Earn recognition", Description: "second", Accent: "award", Background: "purple"},
	{Title: "Many languages", Description: "third", Accent: "globe", Background: "green"},
}

var testLabels = content.Labels{Skip: "Skip", Continue: "Continue", GetStarted: "Get started"}

func newTestScreen(t *testing.T, reducedMotion bool) (*OnboardingScreen, *int) {
	t.Helper()
	calls := 0
	s, err := New(Options{
		Slides: testSlides,
		Labels: testLabels,
		OnComplete: func() tea.Cmd {
			calls++
			return func() tea.Msg { return doneMsg{} }
		},
		ReducedMotion: reducedMotion,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, &calls
}

func press(s screen.Screen, code rune, text string) (screen.Screen, tea.Cmd) {
	return s.Update(tea.KeyPressMsg{Code: code, Text: text})
}

func TestNewRejectsEmptyDeck(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Fatal("expected error for empty deck")
	}
}

func TestAdvanceThroughDeck(t *testing.T) {
	s, calls := newTestScreen(t, true)

	press(s, tea.KeyRight, "")
	press(s, tea.KeyEnter, "")
	if got := s.Controller().Index(); got != 2 {
		t.Fatalf("expected index 2, got %d", got)
	}
	if *calls != 0 {
		t.Fatal("completion must not fire before the last advance")
	}
	if !strings.Contains(s.View(80, 24), "Get started") {
		t.Error("last slide should offer Get started")
	}

	_, cmd := press(s, tea.KeyEnter, "")
	if cmd == nil {
		t.Fatal("expected completion command")
	}
	if _, ok := cmd().(doneMsg); !ok {
		t.Fatal("expected doneMsg from completion command")
	}
	if *calls != 1 {
		t.Errorf("expected one completion, got %d", *calls)
	}

	_, cmd = press(s, tea.KeyEnter, "")
	if cmd != nil || *calls != 1 {
		t.Error("advance after completion must be a no-op")
	}
}

func TestSkipCompletesOnce(t *testing.T) {
	s, calls := newTestScreen(t, true)

	_, cmd := press(s, 's', "s")
	if cmd == nil {
		t.Fatal("expected completion command from skip")
	}
	if s.Controller().Index() != 0 {
		t.Error("skip must not move the slide")
	}

	press(s, 's', "s")
	press(s, tea.KeyRight, "")
	if *calls != 1 {
		t.Errorf("expected one completion, got %d", *calls)
	}
}

func TestDigitJumpsAndLeftGoesBack(t *testing.T) {
	s, calls := newTestScreen(t, true)

	press(s, '3', "3")
	if s.Controller().Index() != 2 {
		t.Fatalf("expected index 2 after pressing 3, got %d", s.Controller().Index())
	}
	if *calls != 0 {
		t.Error("jumping to the last slide must not complete")
	}

	press(s, tea.KeyLeft, "")
	if s.Controller().Index() != 1 {
		t.Fatalf("expected index 1, got %d", s.Controller().Index())
	}
	if s.Controller().Direction() != onboarding.Backward {
		t.Error("expected backward direction")
	}

	press(s, '1', "1")
	press(s, tea.KeyLeft, "")
	if s.Controller().Index() != 0 {
		t.Errorf("left on the first slide must stay put, got %d", s.Controller().Index())
	}
}

func TestDigitBeyondDeckIgnored(t *testing.T) {
	s, _ := newTestScreen(t, true)

	press(s, '7', "7")
	if s.Controller().Index() != 0 {
		t.Errorf("unbound digit must not move, got %d", s.Controller().Index())
	}
}

func TestMoveStartsTransition(t *testing.T) {
	s, _ := newTestScreen(t, false)

	_, cmd := press(s, tea.KeyRight, "")
	if cmd == nil {
		t.Fatal("expected a frame command")
	}
	if s.motion.column() <= 0 {
		t.Errorf("forward move should enter from the right, column %d", s.motion.column())
	}

	press(s, '1', "1")
	if s.motion.column() >= 0 {
		t.Errorf("backward move should enter from the left, column %d", s.motion.column())
	}
}

func TestReducedMotionIsInstant(t *testing.T) {
	s, _ := newTestScreen(t, true)

	_, cmd := press(s, tea.KeyRight, "")
	if cmd != nil {
		t.Error("reduced motion should not schedule frames")
	}
	if !s.motion.settled() {
		t.Error("reduced motion should leave the transition settled")
	}
}

func TestViewShowsSlideAndStatus(t *testing.T) {
	s, _ := newTestScreen(t, true)

	view := s.View(80, 24)
	for _, want := range []string{"Help is nearby", "Continue", "Skip"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if s.Status() != "1/3  " {
		t.Errorf("unexpected status %q", s.Status())
	}
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}
