package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/hubctl/internal/catalog"
)

func testBrowserModel() browserModel {
	store := catalog.NewStore(nil)
	return browserModel{state: catalog.NewBrowseState(store, 10)}
}

func TestCopyExpiry_StaleGenerationIgnored(t *testing.T) {
	m := testBrowserModel()
	m.copiedID = "r1"
	m.copiedGen = 2

	// The expiry from the first copy fires after a second copy of the
	// same resource superseded it; the marker must survive.
	next, _ := m.Update(copyExpiredMsg{resourceID: "r1", gen: 1})
	got := next.(browserModel)
	if got.copiedID != "r1" {
		t.Errorf("stale expiry cleared marker: copiedID = %q", got.copiedID)
	}
}

func TestCopyExpiry_MatchingGenerationClears(t *testing.T) {
	m := testBrowserModel()
	m.copiedID = "r1"
	m.copiedGen = 2

	next, _ := m.Update(copyExpiredMsg{resourceID: "r1", gen: 2})
	got := next.(browserModel)
	if got.copiedID != "" {
		t.Errorf("matching expiry did not clear marker: copiedID = %q", got.copiedID)
	}
}

func TestCopyExpiry_OtherResourceIgnored(t *testing.T) {
	m := testBrowserModel()
	m.copiedID = "r2"
	m.copiedGen = 3

	next, _ := m.Update(copyExpiredMsg{resourceID: "r1", gen: 3})
	got := next.(browserModel)
	if got.copiedID != "r2" {
		t.Errorf("expiry for another resource cleared marker: copiedID = %q", got.copiedID)
	}
}

func TestBookmarkResult_ErrorShown(t *testing.T) {
	m := testBrowserModel()
	next, _ := m.Update(bookmarkResultMsg{resourceID: "r1", err: errFake})
	got := next.(browserModel)
	if got.status == "" {
		t.Error("bookmark failure should surface a status line")
	}
}

var errFake = fakeErr{}

type fakeErr struct{}

func (fakeErr) Error() string { return "server unreachable" }

var _ tea.Model = browserModel{}
