package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("narrow terminal should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should be accepted")
	}
}

func TestRenderHeaderShowsStatus(t *testing.T) {
	header := RenderHeader("Community pledge", "2/3", 80)
	for _, want := range []string{"HelpMate", "Community pledge", "2/3"} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("", "", 80)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Continue"}}, 80)

	frame := RenderFrame(header, "body", footer, 80, 24)
	if h := lipgloss.Height(frame); h != 24 {
		t.Errorf("expected frame height 24, got %d", h)
	}
	if !strings.Contains(frame, "Continue") {
		t.Error("footer hint missing")
	}
}

func TestBodyHeight(t *testing.T) {
	header := RenderHeader("", "", 80)
	footer := RenderFooter(nil, 80)

	if got := BodyHeight(header, footer, 24); got != 24-lipgloss.Height(header)-lipgloss.Height(footer) {
		t.Errorf("unexpected body height %d", got)
	}
	if got := BodyHeight(header, footer, 2); got != 0 {
		t.Errorf("body height should not go negative, got %d", got)
	}
}

func TestMinSizeMessageShowsDimensions(t *testing.T) {
	msg := RenderMinSizeMessage(40, 10)
	if !strings.Contains(msg, "40 x 10") {
		t.Error("message should show the current size")
	}
}
