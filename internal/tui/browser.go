package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/hubctl/internal/catalog"
	"github.com/blackwell-systems/hubctl/internal/hub"
)

// copyFeedbackTTL is how long the "copied" marker stays visible.
const copyFeedbackTTL = 2 * time.Second

// typeCycle is the order the type filter steps through; "" means all.
var typeCycle = []string{"", "pdf", "text", "image", "code", "link", "document", "other"}

// BrowserAction is an action requested from the browser.
type BrowserAction string

const (
	ActionNone        BrowserAction = ""
	ActionShowDetails BrowserAction = "details"
)

// BrowserResult holds the outcome of a browser session.
type BrowserResult struct {
	Action   BrowserAction
	Resource *catalog.Resource
}

type bookmarkResultMsg struct {
	resourceID string
	bookmarked bool
	err        error
}

// copyExpiredMsg clears the "copied" marker, but only when the
// (resource, generation) pair still matches: a newer copy on the same
// resource supersedes the pending expiry, and copies on different
// resources cannot clear each other's marker.
type copyExpiredMsg struct {
	resourceID string
	gen        int
}

type browserModel struct {
	state *catalog.BrowseState
	coord *hub.Coordinator

	search    textinput.Model
	searching bool
	pager     paginator.Model
	typeIdx   int
	cursor    int

	copiedID  string
	copiedGen int

	status   string
	quitting bool
	result   BrowserResult
}

// RunBrowser launches the interactive resource browser.
func RunBrowser(state *catalog.BrowseState, coord *hub.Coordinator) (*BrowserResult, error) {
	search := textinput.New()
	search.Placeholder = "search title, description, category"
	search.Prompt = "/ "
	search.CharLimit = 100
	search.Width = 40

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.ActiveDot = StyleHighlight.Render("•")
	pager.InactiveDot = StyleHelp.Render("•")

	m := browserModel{state: state, coord: coord, search: search, pager: pager}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, err
	}
	fm := final.(browserModel)
	return &fm.result, nil
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bookmarkResultMsg:
		if msg.err != nil {
			m.status = StyleError.Render(msg.err.Error())
			return m, nil
		}
		if msg.bookmarked {
			m.status = StyleFeedback.Render("bookmarked")
		} else {
			m.status = StyleFeedback.Render("bookmark removed")
		}
		return m, nil

	case copyExpiredMsg:
		if m.copiedID == msg.resourceID && m.copiedGen == msg.gen {
			m.copiedID = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

// updateSearch handles keys while the search input is focused. The view
// recomputes on every keystroke; each recompute resets to page 1.
func (m browserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.state.SetQuery("")
		m.cursor = 0
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.state.SetQuery(m.search.Value())
	m.cursor = 0
	return m, cmd
}

func (m browserModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, browserKeys.quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, browserKeys.search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, browserKeys.typeFlt):
		m.typeIdx = (m.typeIdx + 1) % len(typeCycle)
		m.state.SetType(typeCycle[m.typeIdx])
		m.cursor = 0
		return m, nil

	case key.Matches(msg, browserKeys.nextPage):
		m.state.NextPage()
		m.cursor = m.clampCursor()
		return m, nil

	case key.Matches(msg, browserKeys.prevPage):
		m.state.PrevPage()
		m.cursor = m.clampCursor()
		return m, nil

	case key.Matches(msg, browserKeys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, browserKeys.down):
		if m.cursor < len(m.state.Page())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, browserKeys.bookmark):
		r := m.selected()
		if r == nil {
			return m, nil
		}
		id := r.ID
		coord := m.coord
		return m, func() tea.Msg {
			bookmarked, err := coord.Toggle(context.Background(), id)
			return bookmarkResultMsg{resourceID: id, bookmarked: bookmarked, err: err}
		}

	case key.Matches(msg, browserKeys.copyLink):
		r := m.selected()
		if r == nil {
			return m, nil
		}
		url := r.CandidateURL()
		if url == "" {
			m.status = StyleError.Render("no link to copy")
			return m, nil
		}
		if err := clipboard.WriteAll(url); err != nil {
			m.status = StyleError.Render("clipboard: " + err.Error())
			return m, nil
		}
		m.copiedID = r.ID
		m.copiedGen++
		id, gen := r.ID, m.copiedGen
		return m, tea.Tick(copyFeedbackTTL, func(time.Time) tea.Msg {
			return copyExpiredMsg{resourceID: id, gen: gen}
		})

	case key.Matches(msg, browserKeys.enter):
		r := m.selected()
		if r == nil {
			return m, nil
		}
		m.result = BrowserResult{Action: ActionShowDetails, Resource: r}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *browserModel) selected() *catalog.Resource {
	page := m.state.Page()
	if m.cursor < 0 || m.cursor >= len(page) {
		return nil
	}
	r := page[m.cursor]
	return &r
}

func (m *browserModel) clampCursor() int {
	n := len(m.state.Page())
	if n == 0 {
		return 0
	}
	if m.cursor >= n {
		return n - 1
	}
	return m.cursor
}

func (m browserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render("Resources"))
	fmt.Fprintf(&b, "  %s\n", StyleHelp.Render(fmt.Sprintf("%d matching", len(m.state.View()))))

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	if t := typeCycle[m.typeIdx]; t != "" {
		b.WriteString(StyleCategory.Render("type: " + t))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	page := m.state.Page()
	if len(page) == 0 {
		b.WriteString(StyleHelp.Render("  No resources found.") + "\n")
	}
	for i, r := range page {
		b.WriteString(m.renderRow(i, r))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	m.pager.SetTotalPages(m.state.TotalPages())
	m.pager.Page = m.state.CurrentPage() - 1
	fmt.Fprintf(&b, "%s  %s\n", m.pager.View(),
		StyleHelp.Render(fmt.Sprintf("page %d/%d", m.state.CurrentPage(), m.state.TotalPages())))

	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(StyleHelp.Render("↑/↓ move · / search · t type · b bookmark · c copy · n/p page · enter details · q quit"))
	return b.String()
}

func (m browserModel) renderRow(i int, r catalog.Resource) string {
	title := r.Title
	cats := ""
	if len(r.Categories) > 0 {
		cats = " " + StyleCategory.Render("["+strings.Join(r.Categories, ",")+"]")
	}
	mark := ""
	if m.coord != nil && m.coord.IsBookmarked(r.ID) {
		mark = " " + StyleBookmarked.Render("★")
	}
	copied := ""
	if m.copiedID == r.ID {
		copied = " " + StyleFeedback.Render("copied")
	}
	typ := StyleHelp.Render(fmt.Sprintf("%-9s", r.Type()))

	if i == m.cursor {
		return StyleHighlight.Render("› ") + typ + " " + StyleHighlight.Render(title) + cats + mark + copied
	}
	return "  " + typ + " " + StyleNormal.Render(title) + cats + mark + copied
}
