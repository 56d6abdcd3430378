package prompt

import (
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled")

// overwriteModel asks whether an existing config file may be replaced.
type overwriteModel struct {
	path      string
	overwrite bool
	done      bool
	cancelled bool
}

func (m overwriteModel) Init() tea.Cmd {
	return nil
}

func (m overwriteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.overwrite = true
	case "n", "N", "enter":
		// keeping the file is the default
		m.overwrite = false
	case "ctrl+c", "q", "esc":
		m.cancelled = true
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m overwriteModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s already exists. Replace it with the default config? [y/N] ", m.path))
}

// ConfirmOverwrite asks on stderr whether the config file at path may be
// replaced. Enter keeps the file. Returns ErrCancelled on ctrl+c, q or esc.
func ConfirmOverwrite(path string) (bool, error) {
	p := tea.NewProgram(overwriteModel{path: path}, tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m := final.(overwriteModel)
	if m.cancelled {
		return false, ErrCancelled
	}
	return m.overwrite, nil
}
