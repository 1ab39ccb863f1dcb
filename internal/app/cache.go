package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/hubctl/internal/util"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage locally downloaded content",
		Long:  "Manage the local cache of downloaded resource files without touching anything on the server.",
	}

	cmd.AddCommand(
		newCacheInfoCmd(),
		newCacheClearCmd(),
	)
	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, bytes, err := cacheMgr.Info()
			if err != nil {
				return err
			}
			header("Cache")
			fmt.Printf("  files: %d\n", files)
			fmt.Printf("  size:  %s\n", util.HumanBytes(bytes))
			return nil
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear [resource-id...]",
		Short: "Remove downloaded content from the cache",
		Long: `Remove downloaded content from the local cache.

With resource IDs, only those entries are removed. Without arguments the
entire cache is cleared. Files are re-downloaded on the next 'info
--download'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				files, bytes, _ := cacheMgr.Info()
				if err := cacheMgr.Clear(); err != nil {
					return err
				}
				ok("cleared %d files (%s)", files, util.HumanBytes(bytes))
				return nil
			}
			for _, id := range args {
				if err := cacheMgr.Remove(id); err != nil {
					warn("removing %s: %v", id, err)
					continue
				}
				fmt.Printf("  %s: removed\n", id)
			}
			return nil
		},
	}
}
