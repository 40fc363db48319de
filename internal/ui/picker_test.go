package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestPickerModel_DefaultOrder(t *testing.T) {
	t.Parallel()

	m := newPickerModel("", []string{"/a", "/b", "/c"})
	if len(m.matches) != 3 {
		t.Fatalf("matches = %d, want 3", len(m.matches))
	}
	for i, match := range m.matches {
		if match.Index != i {
			t.Errorf("matches[%d].Index = %d, want %d", i, match.Index, i)
		}
	}
}

func TestPickerModel_EnterSelectsDefault(t *testing.T) {
	t.Parallel()

	m := newPickerModel("", []string{"/a", "/b"})
	_, cmd := m.Update(press(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.chosen != 0 || m.cancelled {
		t.Errorf("chosen = %d cancelled = %v, want 0 false", m.chosen, m.cancelled)
	}
}

func TestPickerModel_Navigate(t *testing.T) {
	t.Parallel()

	m := newPickerModel("", []string{"/a", "/b", "/c"})
	m.Update(press(tea.KeyDown))
	m.Update(press(tea.KeyDown))
	m.Update(press(tea.KeyDown))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (clamped)", m.cursor)
	}
	m.Update(press(tea.KeyUp))
	m.Update(press(tea.KeyEnter))
	if m.chosen != 1 {
		t.Errorf("chosen = %d, want 1", m.chosen)
	}
}

func TestPickerModel_EscCancels(t *testing.T) {
	t.Parallel()

	m := newPickerModel("", []string{"/a"})
	m.Update(press(tea.KeyEscape))
	if !m.cancelled {
		t.Error("expected cancelled after esc")
	}
	if m.chosen != -1 {
		t.Errorf("chosen = %d, want -1", m.chosen)
	}
}

func TestPickerModel_Filter(t *testing.T) {
	t.Parallel()

	options := []string{"/home/u/src/project", "/tmp", "/home/u/docs"}
	m := newPickerModel("", options)
	m.input.SetValue("docs")
	m.filter()

	if len(m.matches) == 0 {
		t.Fatal("expected at least one match")
	}
	if got := options[m.matches[0].Index]; got != "/home/u/docs" {
		t.Errorf("best match = %q, want %q", got, "/home/u/docs")
	}

	m.Update(press(tea.KeyEnter))
	if m.chosen != 2 {
		t.Errorf("chosen = %d, want 2 (index into original options)", m.chosen)
	}
}

func TestPickerModel_NoMatchEnterCancels(t *testing.T) {
	t.Parallel()

	m := newPickerModel("", []string{"/a"})
	m.input.SetValue("zzzz")
	m.filter()
	if len(m.matches) != 0 {
		t.Fatalf("matches = %d, want 0", len(m.matches))
	}
	if !strings.Contains(m.render(), "no matches") {
		t.Error("render should mention no matches")
	}
	m.Update(press(tea.KeyEnter))
	if !m.cancelled {
		t.Error("enter with no matches should cancel")
	}
}

func TestPickerModel_WindowSize(t *testing.T) {
	t.Parallel()

	m := newPickerModel("", []string{"/a"})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 5})
	if m.rows != 2 {
		t.Errorf("rows = %d, want 2", m.rows)
	}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 100})
	if m.rows != maxPickerRows {
		t.Errorf("rows = %d, want %d", m.rows, maxPickerRows)
	}
}

// Scenario: worktree rows styled with color, filtered by digits that occur
// only inside the escape sequences
// Expected: nothing matches, and a visible match renders without broken
// escape sequences
func TestPickerModel_FilterIgnoresEscapes(t *testing.T) {
	t.Parallel()

	p := NewPainter(true)
	options := []string{
		"/repo " + p.Hash("abc1234") + " " + p.Branch("[main]"),
		"/other " + p.Hash("def5678"),
	}
	if !strings.Contains(options[1], "\x1b[") {
		t.Fatalf("expected styled option, got %q", options[1])
	}

	m := newPickerModel("", options)
	m.input.SetValue("38")
	m.filter()
	if len(m.matches) != 0 {
		t.Errorf("matches = %v, want none", m.matches)
	}

	m.input.SetValue("def")
	m.filter()
	if len(m.matches) != 1 || m.matches[0].Index != 1 {
		t.Fatalf("matches = %v, want only option 1", m.matches)
	}
	if got := m.matches[0].Str; got != "/other def5678" {
		t.Errorf("matched text = %q, want %q", got, "/other def5678")
	}
	if strings.Contains(highlight(m.matches[0]), "\x1b[\x1b[") {
		t.Errorf("highlight nested an escape sequence: %q", highlight(m.matches[0]))
	}
}
