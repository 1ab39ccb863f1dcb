package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/hubctl/internal/catalog"
	"github.com/blackwell-systems/hubctl/internal/hub"
	"github.com/blackwell-systems/hubctl/internal/logger"
	"github.com/blackwell-systems/hubctl/internal/tui"
	"github.com/blackwell-systems/hubctl/internal/util"
)

type browseOptions struct {
	query    string
	fileType string
	page     int
	pageSize int
}

func newBrowseCmd() *cobra.Command {
	var opts browseOptions

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the resource catalog",
		Long: `Browse the shared resource catalog.

Interactive mode opens a full-screen browser with incremental search,
type filtering, paging and bookmarking. With --no-interactive (or a
non-TTY stdout) it prints one page as plain text instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Filter by title, description or category substring")
	cmd.Flags().StringVarP(&opts.fileType, "type", "t", "", "Filter by file type (pdf, text, image, code, link, document, other)")
	cmd.Flags().IntVar(&opts.page, "page", 1, "Page to show in plain-text mode")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "Resources per page (default from config)")
	return cmd
}

func runBrowse(cmd *cobra.Command, opts browseOptions) error {
	resources, err := client.ListResources(cmd.Context(), "")
	if err != nil {
		return fmt.Errorf("fetching resources: %w", err)
	}
	log.Info("catalog fetched", logger.Int("resources", len(resources)))

	store := catalog.NewStore(resources)
	pageSize := opts.pageSize
	if pageSize <= 0 {
		pageSize = cfg.Browse.EffectivePageSize()
	}
	state := catalog.NewBrowseState(store, pageSize)
	state.SetQuery(opts.query)
	state.SetType(opts.fileType)

	// Identity resolution is best effort: browsing works anonymously,
	// bookmarking refuses later with a clear error.
	sess, err := hub.Resolve(cmd.Context(), client)
	if err != nil {
		log.Warn("session resolution failed", logger.Err(err))
	}
	coord := hub.NewCoordinator(client, store, sess)

	if !tui.ShouldUseTUI(cmd) {
		return printPage(state, sess, opts.page)
	}

	for {
		result, err := tui.RunBrowser(state, coord)
		if err != nil {
			return err
		}
		if result.Action != tui.ActionShowDetails || result.Resource == nil {
			return nil
		}
		if err := tui.RunDetail(client, coord, result.Resource); err != nil {
			return err
		}
	}
}

// printPage renders one page of the filtered view as plain text.
func printPage(state *catalog.BrowseState, sess *hub.Session, page int) error {
	for p := 1; p < page && p < state.TotalPages(); p++ {
		state.NextPage()
	}

	f := state.Filter()
	heading := "Resources"
	if f.Query != "" {
		heading += fmt.Sprintf(" matching %q", f.Query)
	}
	if f.Type != "" {
		heading += fmt.Sprintf(" of type %s", f.Type)
	}
	header("%s (page %d/%d, %d total)", heading, state.CurrentPage(), state.TotalPages(), len(state.View()))

	rows := state.Page()
	if len(rows) == 0 {
		fmt.Println("  No resources found.")
		return nil
	}
	for _, r := range rows {
		mark := " "
		if r.IsBookmarkedBy(sess.UserID()) {
			mark = "★"
		}
		fmt.Printf("  %s %-24s %-9s %s\n", mark, util.Truncate(r.Title, 24), r.Type(), r.ID)
	}
	return nil
}
