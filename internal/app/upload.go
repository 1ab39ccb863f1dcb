package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/hubctl/internal/catalog"
	"github.com/blackwell-systems/hubctl/internal/hub"
	"github.com/blackwell-systems/hubctl/internal/logger"
	"github.com/blackwell-systems/hubctl/internal/tui"
)

func newUploadCmd() *cobra.Command {
	var draft catalog.Draft
	var categories []string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Share a new resource",
		Long: `Share a new resource with the Hub.

Without flags (on a TTY) this opens an interactive form. With flags it
submits directly; the same validation applies either way, and nothing
is sent until every field passes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if draft.Title == "" && tui.ShouldUseTUI(cmd) {
				return runUploadInteractive(cmd)
			}

			sess, err := hub.Resolve(cmd.Context(), client)
			if err != nil {
				return err
			}
			user, err := sess.RequireUser()
			if err != nil {
				return err
			}
			draft.UserID = user.ID
			for _, c := range categories {
				if err := draft.AddCategory(strings.TrimSpace(c)); err != nil {
					return err
				}
			}
			return submitDraft(cmd, &draft)
		},
	}

	cmd.Flags().StringVar(&draft.Title, "title", "", "Resource title")
	cmd.Flags().StringVar(&draft.Description, "description", "", "Short description")
	cmd.Flags().StringVar(&draft.Link, "link", "", "Content URL")
	cmd.Flags().StringVar(&draft.FileType, "type", "", "File type ("+strings.Join(catalog.UploadFileTypes, ", ")+")")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Category (repeatable, up to 3)")
	return cmd
}

func runUploadInteractive(cmd *cobra.Command) error {
	sess, err := hub.Resolve(cmd.Context(), client)
	if err != nil {
		return err
	}
	user, err := sess.RequireUser()
	if err != nil {
		return err
	}

	draft, err := tui.RunUploadForm(user.ID)
	if err != nil {
		return err
	}
	if draft == nil {
		warn("upload cancelled")
		return nil
	}
	return submitDraft(cmd, draft)
}

func submitDraft(cmd *cobra.Command, draft *catalog.Draft) error {
	if err := client.Upload(cmd.Context(), draft); err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	log.Info("resource uploaded", logger.String("title", draft.Title))
	ok("uploaded %q", draft.Title)
	return nil
}
