package app

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/hubctl/internal/catalog"
	"github.com/blackwell-systems/hubctl/internal/util"
)

func newInfoCmd() *cobra.Command {
	var download bool

	cmd := &cobra.Command{
		Use:   "info <resource-id>",
		Short: "Show one resource in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := client.GetResource(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			header("%s", r.Title)
			if r.Description != "" {
				fmt.Printf("  %s\n", r.Description)
			}
			fmt.Printf("  type:       %s\n", r.Type())
			if len(r.Categories) > 0 {
				fmt.Printf("  categories: %s\n", strings.Join(r.Categories, ", "))
			}
			if r.UploadedAt != "" {
				fmt.Printf("  uploaded:   %s\n", util.HumanDate(r.UploadedAt))
			}
			fmt.Printf("  bookmarks:  %d\n", len(r.BookmarkedBy))
			printContent(cmd.Context(), r)

			if download {
				return downloadResource(cmd, r)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&download, "download", false, "Download the content into the local cache")
	return cmd
}

// printContent prints the content branch the resource resolves to,
// fetching the raw body for text-like types.
func printContent(ctx context.Context, r *catalog.Resource) {
	label, value, preformatted := resourceContent(ctx, r)
	if !preformatted {
		fmt.Printf("  %-11s %s\n", label+":", value)
		return
	}
	fmt.Printf("  %s\n", label+":")
	for _, line := range strings.Split(strings.TrimRight(value, "\n"), "\n") {
		fmt.Printf("    %s\n", line)
	}
}

// resourceContent resolves what `info` shows for a resource's content.
// For text and code it performs the secondary fetch; that fetch failing
// is reported on its own and the metadata already printed stands.
func resourceContent(ctx context.Context, r *catalog.Resource) (label, value string, preformatted bool) {
	d := catalog.Decide(r.Type(), r.CandidateURL(), false)
	switch d.Kind {
	case catalog.RenderInlineImage:
		return "image", d.URL, false
	case catalog.RenderDownload:
		return "download", d.URL, false
	case catalog.RenderOpenLink:
		return "link", d.URL, false
	case catalog.RenderLoadingText:
		text, err := client.FetchContent(ctx, d.URL)
		if err != nil {
			warn("content fetch failed: %v", err)
			return "content", "Text file not available.", false
		}
		return "content", text, true
	default:
		return "content", d.Message, false
	}
}

func downloadResource(cmd *cobra.Command, r *catalog.Resource) error {
	url := r.CandidateURL()
	if !catalog.ValidURL(url) {
		return fmt.Errorf("resource %s has no downloadable content", r.ID)
	}

	filename := path.Base(url)
	if filename == "." || filename == "/" {
		filename = r.ID
	}
	if cacheMgr.Exists(r.ID, filename) {
		ok("already cached: %s", cacheMgr.Path(r.ID, filename))
		return nil
	}

	body, err := client.DownloadContent(cmd.Context(), url)
	if err != nil {
		return fmt.Errorf("downloading: %w", err)
	}
	defer body.Close()

	dest, err := cacheMgr.Store(r.ID, filename, body)
	if err != nil {
		return fmt.Errorf("caching: %w", err)
	}
	ok("downloaded to %s", dest)
	return nil
}
