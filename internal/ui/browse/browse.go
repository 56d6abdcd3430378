// Package browse provides an interactive job browser.
//
// The browser lists jobs with the cell view of their columns and shows the
// tooltip view of the selected job in a detail pane, the terminal equivalent
// of hovering over a description cell.
package browse

import (
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/desccol/internal/column"
	"github.com/raphi011/desccol/internal/description"
	"github.com/raphi011/desccol/internal/ui/static"
	"github.com/raphi011/desccol/internal/ui/styles"
)

// detailHeight is the number of rows reserved below the list.
const detailHeight = 8

// jobItem is a list entry for one job.
type jobItem struct {
	name    string
	summary string // cell views, first line only
	tooltip []field
	raw     string // tooltip view as plain text, copied with "c"
}

// field is one labelled value in the detail pane.
type field struct {
	label string
	value string
}

func (i jobItem) Title() string       { return i.name }
func (i jobItem) Description() string { return i.summary }
func (i jobItem) FilterValue() string { return i.name }

// newItem renders item through cols in both views.
func newItem(item column.Item, cols []column.Column) jobItem {
	cells := column.Values(cols, item, column.CellView)
	tips := column.Values(cols, item, column.TooltipView)

	ji := jobItem{name: item.Name()}
	var summary, raw []string
	for i, c := range cols {
		if c.ID() == "name" {
			continue
		}
		if line := firstLine(static.CellText(cells[i])); line != "" {
			summary = append(summary, line)
		}
		label := c.Header()
		if label == "" {
			label = strings.ToUpper(c.ID())
		}
		ji.tooltip = append(ji.tooltip, field{label: label, value: tooltipText(tips[i])})
		raw = append(raw, static.CellText(tips[i]))
	}
	ji.summary = strings.Join(summary, " · ")
	ji.raw = strings.Join(raw, "\n")
	return ji
}

func tooltipText(t description.Text) string {
	if !t.Valid {
		return styles.MutedStyle.Render("(none)")
	}
	return static.CellText(t)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

type model struct {
	list     list.Model
	width    int
	status   string
	copyText func(string) error
	quitting bool
}

func newModel(items []column.Item, cols []column.Column) model {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = newItem(it, cols)
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = styles.AccentStyle
	delegate.Styles.SelectedDesc = styles.MutedStyle

	l := list.New(listItems, delegate, 80, 20)
	l.Title = "Jobs"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	return model{
		list:     l,
		width:    80,
		copyText: clipboard.WriteAll,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		filtering := m.list.FilterState() == list.Filtering
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q", "esc":
			if !filtering && m.list.FilterState() != list.FilterApplied {
				m.quitting = true
				return m, tea.Quit
			}
		case "c":
			if !filtering {
				m.status = m.copySelected()
				return m, nil
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list.SetSize(msg.Width, max(msg.Height-detailHeight, 5))
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// copySelected copies the tooltip of the selected job and returns a status line.
func (m model) copySelected() string {
	item, ok := m.list.SelectedItem().(jobItem)
	if !ok {
		return ""
	}
	if err := m.copyText(item.raw); err != nil {
		return fmt.Sprintf("copy failed: %v", err)
	}
	return fmt.Sprintf("copied description of %s", item.name)
}

func (m model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	return tea.NewView(lipgloss.JoinVertical(lipgloss.Left, m.list.View(), m.detailView()))
}

func (m model) detailView() string {
	item, ok := m.list.SelectedItem().(jobItem)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Bold.Render(item.name))
	for _, f := range item.tooltip {
		b.WriteString("\n")
		b.WriteString(styles.InfoStyle.Render(f.label))
		b.WriteString("\n")
		b.WriteString(f.value)
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(styles.SuccessStyle.Render(m.status))
	}

	width := max(m.width-4, 20)
	return styles.DetailBorder.Width(width).Render(b.String())
}

// Run shows the browser on stderr until the user quits.
func Run(ctx context.Context, items []column.Item, cols []column.Column) error {
	if len(items) == 0 {
		return nil
	}

	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	p := tea.NewProgram(newModel(items, cols),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	_, err := p.Run()
	return err
}
