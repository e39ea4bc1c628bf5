package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/NovaNexusIO/HelpMate/internal/content"
	"github.com/NovaNexusIO/HelpMate/internal/router"
	"github.com/NovaNexusIO/HelpMate/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "onboarding" }
func (s *stubScreen) Title() string                           { return "" }

var testText = content.Splash{Tagline: "Neighbours helping neighbours", PressAnyKey: "press any key"}

func newTestWelcome(instant bool) (*WelcomeScreen, *int) {
	calls := 0
	next := func() screen.Screen {
		calls++
		return &stubScreen{}
	}
	return New(testText, next, instant), &calls
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestPhases(t *testing.T) {
	w, _ := newTestWelcome(false)

	if strings.Contains(w.View(100, 30), "Neighbours") {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 12)
	if !strings.Contains(w.View(100, 30), "Neighbours") {
		t.Error("tagline should be visible once the animation completes")
	}
}

func TestTicksStopAtEnd(t *testing.T) {
	w, calls := newTestWelcome(false)
	sendTicks(w, 12)

	_, cmd := w.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Error("ticks should stop once the animation completes")
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed %v, got %v", totalDur, w.elapsed)
	}
	if *calls != 0 {
		t.Error("splash must not hand over without a key press")
	}
}

func TestKeypressHandsOverOnce(t *testing.T) {
	w, calls := newTestWelcome(false)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should hand over")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}

	_, cmd = w.Update(tea.KeyPressMsg{Code: 'a'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *calls != 1 {
		t.Errorf("next should be built once, got %d", *calls)
	}
}

func TestInstantShowsEverything(t *testing.T) {
	w, _ := newTestWelcome(true)
	if w.Init() != nil {
		t.Error("instant splash should not tick")
	}
	if !strings.Contains(w.View(100, 30), "press any key") {
		t.Error("instant splash should show the hint immediately")
	}
}

func TestCompactBanner(t *testing.T) {
	if !strings.Contains(RenderBanner(40), "H E L P M A T E") {
		t.Error("narrow terminals should get the compact banner")
	}
}
