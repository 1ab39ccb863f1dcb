package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/hubctl/internal/catalog"
	"github.com/blackwell-systems/hubctl/internal/hub"
	"github.com/blackwell-systems/hubctl/internal/util"
)

func newBookmarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookmark <resource-id>",
		Short: "Toggle a bookmark on a resource",
		Long: `Toggle a bookmark on a resource.

The server decides the resulting state; the outcome printed here is its
answer, not a local guess.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := hub.Resolve(cmd.Context(), client)
			if err != nil {
				return err
			}
			if _, err := sess.RequireUser(); err != nil {
				return err
			}

			coord := hub.NewCoordinator(client, catalog.NewStore(nil), sess)
			bookmarked, err := coord.Toggle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if bookmarked {
				ok("bookmarked %s", args[0])
			} else {
				ok("bookmark removed from %s", args[0])
			}
			return nil
		},
	}
}

func newBookmarksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookmarks",
		Short: "List your bookmarked resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := client.Bookmarks(cmd.Context())
			if err != nil {
				return err
			}
			header("Bookmarks (%d)", len(resources))
			if len(resources) == 0 {
				fmt.Println("  No bookmarks yet.")
				return nil
			}
			for _, r := range resources {
				fmt.Printf("  %-24s %-9s %s\n", util.Truncate(r.Title, 24), r.Type(), r.ID)
			}
			return nil
		},
	}
}
