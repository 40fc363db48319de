package ui

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"
)

// PickResult holds the outcome of the fuzzy picker.
type PickResult struct {
	Index     int // index into the options passed to Pick
	Cancelled bool
}

const maxPickerRows = 15

type pickerModel struct {
	input     textinput.Model
	title     string
	plain     []string // options without escape sequences
	matches   fuzzy.Matches
	cursor    int
	rows      int
	chosen    int
	done      bool
	cancelled bool
}

func newPickerModel(title string, options []string) *pickerModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type to filter"
	ti.SetWidth(50)
	ti.Focus()

	plain := make([]string, len(options))
	for i, opt := range options {
		plain[i] = ansi.Strip(opt)
	}

	m := &pickerModel{
		input:  ti,
		title:  title,
		plain:  plain,
		rows:   maxPickerRows,
		chosen: -1,
	}
	m.filter()
	return m
}

// filter recomputes matches for the current input. An empty filter keeps
// option order, so the default choice stays on top. Matching runs on the
// visible text only.
func (m *pickerModel) filter() {
	pattern := strings.TrimSpace(m.input.Value())
	if pattern == "" {
		m.matches = make(fuzzy.Matches, len(m.plain))
		for i, opt := range m.plain {
			m.matches[i] = fuzzy.Match{Str: opt, Index: i}
		}
	} else {
		m.matches = fuzzy.Find(pattern, m.plain)
	}
	if m.cursor >= len(m.matches) {
		m.cursor = max(len(m.matches)-1, 0)
	}
}

func (m *pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if len(m.matches) > 0 {
				m.chosen = m.matches[m.cursor].Index
			} else {
				m.cancelled = true
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "up", "ctrl+p", "ctrl+k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n", "ctrl+j":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.rows = min(maxPickerRows, max(msg.Height-3, 1))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter()
	return m, cmd
}

func (m *pickerModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.render())
}

func (m *pickerModel) render() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(promptStyle.Render(m.title) + "\n")
	}
	b.WriteString(m.input.View() + "\n")

	start := 0
	if m.cursor >= m.rows {
		start = m.cursor - m.rows + 1
	}
	end := min(start+m.rows, len(m.matches))
	for i := start; i < end; i++ {
		line := highlight(m.matches[i])
		if i == m.cursor {
			b.WriteString(defaultStyle.Render("▸ ") + defaultStyle.Render(line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	if len(m.matches) == 0 {
		b.WriteString(commentStyle.Render("  no matches") + "\n")
	}
	return b.String()
}

// highlight underlines the characters the fuzzy matcher used.
func highlight(match fuzzy.Match) string {
	if len(match.MatchedIndexes) == 0 {
		return match.Str
	}
	marked := make(map[int]bool, len(match.MatchedIndexes))
	for _, i := range match.MatchedIndexes {
		marked[i] = true
	}

	var b strings.Builder
	for i, r := range match.Str {
		if marked[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Pick shows an interactive fuzzy-filtered list on the terminal and returns
// the chosen option. options[0] is the default and starts under the cursor.
// Interrupts and escape are reported as a cancelled result, not an error.
func Pick(ctx context.Context, in io.Reader, out io.Writer, title string, options []string) (PickResult, error) {
	if len(options) == 0 {
		return PickResult{Cancelled: true}, nil
	}

	profile := colorprofile.Detect(out, os.Environ())
	p := tea.NewProgram(newPickerModel(title, options),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithColorProfile(profile),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil {
			return PickResult{Cancelled: true}, nil
		}
		return PickResult{}, err
	}

	m := final.(*pickerModel)
	if m.cancelled || m.chosen < 0 {
		return PickResult{Cancelled: true}, nil
	}
	return PickResult{Index: m.chosen}, nil
}

// PadRight pads s with spaces to the given display width.
func PadRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
