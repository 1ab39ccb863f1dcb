package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuChoice is an entry picked from the hub menu.
type MenuChoice string

const (
	MenuQuit      MenuChoice = ""
	MenuBrowse    MenuChoice = "browse"
	MenuUpload    MenuChoice = "upload"
	MenuDashboard MenuChoice = "dashboard"
)

var menuEntries = []struct {
	choice MenuChoice
	label  string
}{
	{MenuBrowse, "Browse resources"},
	{MenuUpload, "Upload a resource"},
	{MenuDashboard, "My dashboard"},
	{MenuQuit, "Quit"},
}

type menuModel struct {
	cursor   int
	choice   MenuChoice
	quitting bool
}

// RunHubMenu shows the top-level menu and returns the picked entry.
// MenuQuit means the user backed out.
func RunHubMenu() (MenuChoice, error) {
	final, err := tea.NewProgram(menuModel{}).Run()
	if err != nil {
		return MenuQuit, err
	}
	return final.(menuModel).choice, nil
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
	case "enter":
		m.choice = menuEntries[m.cursor].choice
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m menuModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Student Resource Hub") + "\n\n")
	for i, e := range menuEntries {
		if i == m.cursor {
			b.WriteString(StyleHighlight.Render("› "+e.label) + "\n")
		} else {
			b.WriteString(StyleNormal.Render("  "+e.label) + "\n")
		}
	}
	b.WriteString("\n" + StyleHelp.Render("↑/↓ move · enter select · q quit"))
	return b.String()
}
