package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/hubctl/internal/util"
)

// browserKeyMap defines the browse view's keyboard shortcuts.
type browserKeyMap struct {
	quit     key.Binding
	enter    key.Binding
	search   key.Binding
	typeFlt  key.Binding
	bookmark key.Binding
	copyLink key.Binding
	nextPage key.Binding
	prevPage key.Binding
	up       key.Binding
	down     key.Binding
}

var browserKeys = browserKeyMap{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	typeFlt: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "type filter"),
	),
	bookmark: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "bookmark"),
	),
	copyLink: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy link"),
	),
	nextPage: key.NewBinding(
		key.WithKeys("n", "right"),
		key.WithHelp("n", "next page"),
	),
	prevPage: key.NewBinding(
		key.WithKeys("p", "left"),
		key.WithHelp("p", "prev page"),
	),
	up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "down"),
	),
}

// ShouldUseTUI reports whether interactive mode is appropriate.
func ShouldUseTUI(cmd *cobra.Command) bool {
	if noInteractive, _ := cmd.Flags().GetBool("no-interactive"); noInteractive {
		return false
	}
	if root := cmd.Root(); root != nil {
		if noInteractive, _ := root.PersistentFlags().GetBool("no-interactive"); noInteractive {
			return false
		}
	}
	return util.IsTTY()
}
