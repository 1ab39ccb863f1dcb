package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/hubctl/internal/catalog"
	"github.com/blackwell-systems/hubctl/internal/hub"
	"github.com/blackwell-systems/hubctl/internal/util"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your uploads and bookmarks",
		RunE:  runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	sess, err := hub.Resolve(cmd.Context(), client)
	if err != nil {
		return err
	}
	user, err := sess.RequireUser()
	if err != nil {
		return err
	}

	// Identity resolves first; the two catalog fetches then run
	// concurrently since neither depends on the other.
	var uploaded, bookmarked []catalog.Resource
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		uploaded, err = client.ListResources(ctx, user.ID)
		return err
	})
	g.Go(func() error {
		var err error
		bookmarked, err = client.Bookmarks(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	header("%s <%s>", user.Name, user.Email)
	fmt.Println()

	header("Uploads (%d)", len(uploaded))
	printResourceList(uploaded)
	fmt.Println()

	header("Bookmarks (%d)", len(bookmarked))
	printResourceList(bookmarked)
	return nil
}

func printResourceList(resources []catalog.Resource) {
	if len(resources) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, r := range resources {
		fmt.Printf("  %-24s %-9s %s\n", util.Truncate(r.Title, 24), r.Type(), r.ID)
	}
}
