package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/hubctl/internal/api"
	"github.com/blackwell-systems/hubctl/internal/catalog"
	"github.com/blackwell-systems/hubctl/internal/hub"
	"github.com/blackwell-systems/hubctl/internal/util"
)

type contentLoadedMsg struct {
	text string
	err  error
}

type detailModel struct {
	client   *api.Client
	coord    *hub.Coordinator
	resource *catalog.Resource

	spin     spinner.Model
	fetchCtx context.Context
	fetching bool
	loaded   bool
	content  string
	fetchErr error

	copied    bool
	copiedGen int

	status   string
	quitting bool
	cancel   context.CancelFunc
}

// detailCopyExpiredMsg clears the detail view's "copied" marker unless a
// newer copy superseded the pending expiry.
type detailCopyExpiredMsg struct {
	gen int
}

// RunDetail shows a single resource, fetching text content on demand.
func RunDetail(client *api.Client, coord *hub.Coordinator, r *catalog.Resource) error {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StyleHighlight

	m := detailModel{client: client, coord: coord, resource: r, spin: sp}
	if catalog.NeedsContentFetch(r.Type(), r.CandidateURL()) {
		// The fetch context is tied to the view: quitting cancels an
		// in-flight request instead of leaving it to finish in the dark.
		m.fetchCtx, m.cancel = context.WithCancel(context.Background())
		m.fetching = true
	}
	_, err := tea.NewProgram(m).Run()
	if m.cancel != nil {
		m.cancel()
	}
	return err
}

func (m detailModel) Init() tea.Cmd {
	if !m.fetching {
		return nil
	}
	ctx := m.fetchCtx
	client := m.client
	url := m.resource.CandidateURL()
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		text, err := client.FetchContent(ctx, url)
		return contentLoadedMsg{text: text, err: err}
	})
}

func (m detailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contentLoadedMsg:
		// Loaded means the fetch completed, not that the body was
		// non-empty: an empty text file still renders preformatted.
		m.fetching = false
		m.loaded = msg.err == nil
		m.content = msg.text
		m.fetchErr = msg.err
		return m, nil

	case detailCopyExpiredMsg:
		if m.copiedGen == msg.gen {
			m.copied = false
		}
		return m, nil

	case bookmarkResultMsg:
		if msg.err != nil {
			m.status = StyleError.Render(msg.err.Error())
		} else if msg.bookmarked {
			m.status = StyleFeedback.Render("bookmarked")
		} else {
			m.status = StyleFeedback.Render("bookmark removed")
		}
		return m, nil

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m detailModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		if m.cancel != nil {
			m.cancel()
		}
		m.quitting = true
		return m, tea.Quit

	case "b":
		if m.coord == nil {
			return m, nil
		}
		id := m.resource.ID
		coord := m.coord
		return m, func() tea.Msg {
			bookmarked, err := coord.Toggle(context.Background(), id)
			return bookmarkResultMsg{resourceID: id, bookmarked: bookmarked, err: err}
		}

	case "c":
		url := m.resource.CandidateURL()
		if url == "" {
			m.status = StyleError.Render("no link to copy")
			return m, nil
		}
		if err := clipboard.WriteAll(url); err != nil {
			m.status = StyleError.Render("clipboard: " + err.Error())
			return m, nil
		}
		m.copied = true
		m.copiedGen++
		gen := m.copiedGen
		return m, tea.Tick(copyFeedbackTTL, func(time.Time) tea.Msg {
			return detailCopyExpiredMsg{gen: gen}
		})
	}
	return m, nil
}

func (m detailModel) View() string {
	if m.quitting {
		return ""
	}
	r := m.resource

	var b strings.Builder
	b.WriteString(StyleHeader.Render(r.Title))
	if m.coord != nil && m.coord.IsBookmarked(r.ID) {
		b.WriteString(" " + StyleBookmarked.Render("★"))
	}
	if m.copied {
		b.WriteString(" " + StyleFeedback.Render("copied"))
	}
	b.WriteString("\n\n")

	if r.Description != "" {
		b.WriteString(StyleNormal.Render(r.Description) + "\n")
	}
	fmt.Fprintf(&b, "%s %s\n", StyleHelp.Render("type:"), r.Type())
	if len(r.Categories) > 0 {
		fmt.Fprintf(&b, "%s %s\n", StyleHelp.Render("categories:"), StyleCategory.Render(strings.Join(r.Categories, ", ")))
	}
	if r.UploadedAt != "" {
		fmt.Fprintf(&b, "%s %s\n", StyleHelp.Render("uploaded:"), util.HumanDate(r.UploadedAt))
	}
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(StyleHelp.Render("b bookmark · c copy link · q back"))
	return b.String()
}

// renderContent walks the file-type decision tree: each branch degrades
// to a fixed message when the locator is unusable, never to an error.
func (m detailModel) renderContent() string {
	r := m.resource
	if m.fetching {
		return m.spin.View() + " " + StyleHelp.Render("Loading content...")
	}
	if m.fetchErr != nil {
		// A failed content fetch lands on the same fallback as a bad
		// locator; the resource row itself stays intact.
		return StyleError.Render("Text file not available.")
	}

	d := catalog.Decide(r.Type(), r.CandidateURL(), m.loaded)
	switch d.Kind {
	case catalog.RenderInlineImage:
		return StyleNormal.Render("[image] ") + d.URL
	case catalog.RenderDownload:
		return StyleNormal.Render("Download: ") + d.URL
	case catalog.RenderOpenLink:
		return StyleNormal.Render("Open: ") + d.URL
	case catalog.RenderPreformatted:
		return StyleNormal.Render(m.content)
	case catalog.RenderLoadingText:
		return StyleHelp.Render("Loading content...")
	default:
		return StyleError.Render(d.Message)
	}
}
