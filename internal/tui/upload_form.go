package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/hubctl/internal/catalog"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldLink
	fieldFileType
	fieldCategories
	fieldCount
)

// categoryWindow is how many category rows the picker shows at once.
const categoryWindow = 8

type uploadModel struct {
	draft  *catalog.Draft
	inputs []textinput.Model

	focus    int
	typeIdx  int
	catIdx   int
	errMsg   string
	done     bool
	quitting bool
}

// RunUploadForm collects an upload draft interactively. It returns nil
// when the user cancels without submitting.
func RunUploadForm(userID string) (*catalog.Draft, error) {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 200
		inputs[i].Width = 48
	}
	inputs[fieldTitle].Placeholder = "title"
	inputs[fieldDescription].Placeholder = "description"
	inputs[fieldLink].Placeholder = "https://..."
	inputs[fieldTitle].Focus()

	m := uploadModel{
		draft:  &catalog.Draft{UserID: userID},
		inputs: inputs,
	}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, err
	}
	fm := final.(uploadModel)
	if !fm.done {
		return nil, nil
	}
	return fm.draft, nil
}

func (m uploadModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m uploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab", "shift+tab":
		m.errMsg = ""
		if key.String() == "tab" {
			m.focus = (m.focus + 1) % fieldCount
		} else {
			m.focus = (m.focus + fieldCount - 1) % fieldCount
		}
		return m.syncFocus()

	case "enter":
		if m.focus < fieldFileType {
			m.focus++
			return m.syncFocus()
		}
		return m.submit()
	}

	switch m.focus {
	case fieldFileType:
		switch key.String() {
		case "left", "h":
			m.typeIdx = (m.typeIdx + len(catalog.UploadFileTypes) - 1) % len(catalog.UploadFileTypes)
			return m, nil
		case "right", "l", " ":
			m.typeIdx = (m.typeIdx + 1) % len(catalog.UploadFileTypes)
			return m, nil
		}
		return m, nil

	case fieldCategories:
		switch key.String() {
		case "up", "k":
			if m.catIdx > 0 {
				m.catIdx--
			}
			return m, nil
		case "down", "j":
			if m.catIdx < len(catalog.AllCategories)-1 {
				m.catIdx++
			}
			return m, nil
		case " ":
			m.errMsg = ""
			if err := m.draft.ToggleCategory(catalog.AllCategories[m.catIdx]); err != nil {
				m.errMsg = err.Error()
			}
			return m, nil
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m uploadModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m uploadModel) syncFocus() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, cmd
}

// submit validates the assembled draft; any violation keeps the form
// open with the message shown, and nothing is sent.
func (m uploadModel) submit() (tea.Model, tea.Cmd) {
	m.draft.Title = strings.TrimSpace(m.inputs[fieldTitle].Value())
	m.draft.Description = strings.TrimSpace(m.inputs[fieldDescription].Value())
	m.draft.Link = strings.TrimSpace(m.inputs[fieldLink].Value())
	m.draft.FileType = catalog.UploadFileTypes[m.typeIdx]

	if err := m.draft.Validate(); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.done = true
	m.quitting = true
	return m, tea.Quit
}

func (m uploadModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render("Upload resource") + "\n\n")

	labels := []string{"Title", "Description", "Link"}
	for i, in := range m.inputs {
		b.WriteString(m.label(i, labels[i]))
		b.WriteString(in.View() + "\n")
	}

	b.WriteString(m.label(fieldFileType, "File type"))
	for i, t := range catalog.UploadFileTypes {
		if i == m.typeIdx {
			b.WriteString(StyleHighlight.Render("[" + t + "] "))
		} else {
			b.WriteString(StyleHelp.Render(t + " "))
		}
	}
	b.WriteString("\n")

	b.WriteString(m.label(fieldCategories, fmt.Sprintf("Categories (%d/%d)", len(m.draft.Categories), catalog.MaxCategories)))
	b.WriteString(m.renderCategories())

	if m.errMsg != "" {
		b.WriteString("\n" + StyleError.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + StyleHelp.Render("tab next field · space toggle · enter submit · esc cancel"))
	return b.String()
}

func (m uploadModel) label(field int, text string) string {
	if m.focus == field {
		return StyleHighlight.Render("› "+text) + "\n"
	}
	return StyleNormal.Render("  "+text) + "\n"
}

func (m uploadModel) renderCategories() string {
	start := m.catIdx - categoryWindow/2
	if start > len(catalog.AllCategories)-categoryWindow {
		start = len(catalog.AllCategories) - categoryWindow
	}
	if start < 0 {
		start = 0
	}
	end := start + categoryWindow
	if end > len(catalog.AllCategories) {
		end = len(catalog.AllCategories)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		c := catalog.AllCategories[i]
		mark := "[ ]"
		if m.selected(c) {
			mark = StyleCategory.Render("[x]")
		}
		line := fmt.Sprintf("  %s %s", mark, c)
		if m.focus == fieldCategories && i == m.catIdx {
			line = StyleHighlight.Render("› " + mark + " " + c)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m uploadModel) selected(c string) bool {
	for _, existing := range m.draft.Categories {
		if existing == c {
			return true
		}
	}
	return false
}
