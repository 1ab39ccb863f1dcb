package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/hubctl/internal/api"
	"github.com/blackwell-systems/hubctl/internal/cache"
	"github.com/blackwell-systems/hubctl/internal/config"
	"github.com/blackwell-systems/hubctl/internal/logger"
	"github.com/blackwell-systems/hubctl/internal/tui"
	"github.com/blackwell-systems/hubctl/internal/util"
)

var (
	cfg      *config.Config
	client   *api.Client
	cacheMgr *cache.Manager
	log      logger.Logger

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagDebug         bool
)

var rootCmd = &cobra.Command{
	Use:   "hubctl",
	Short: "Browse, bookmark and share study resources from the terminal",
	Long: `hubctl is a terminal client for a Student Resource Hub server.

It browses the shared resource catalog, filters and pages through it,
bookmarks entries against your account, and uploads new resources.

Run 'hubctl' with no arguments to launch the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			return runHub(cmd)
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/hubctl/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug output to the configured log file")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		if flagConfig != "" {
			os.Setenv("HUBCTL_CONFIG", flagConfig)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		log = logger.Nop()
		if flagDebug || cfg.Log.File != "" {
			level := cfg.Log.Level
			if flagDebug {
				level = "debug"
			}
			if l, err := logger.New(config.ExpandHome(cfg.Log.File), level); err == nil {
				log = l
			}
		}

		client = api.New(cfg.API.BaseURL, config.LoadSession(), log)
		cacheMgr = cache.New(config.ExpandHome(cfg.Defaults.CacheDir))
		return nil
	}

	rootCmd.AddCommand(
		newLoginCmd(),
		newSignupCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newBrowseCmd(),
		newInfoCmd(),
		newUploadCmd(),
		newBookmarkCmd(),
		newBookmarksCmd(),
		newDashboardCmd(),
		newCacheCmd(),
		newVersionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

// runHub launches the interactive menu and routes the picked entry.
func runHub(cmd *cobra.Command) error {
	for {
		choice, err := tui.RunHubMenu()
		if err != nil {
			return err
		}
		switch choice {
		case tui.MenuBrowse:
			if err := runBrowse(cmd, browseOptions{}); err != nil {
				return err
			}
		case tui.MenuUpload:
			if err := runUploadInteractive(cmd); err != nil {
				return err
			}
		case tui.MenuDashboard:
			if err := runDashboard(cmd, nil); err != nil {
				return err
			}
		case tui.MenuQuit:
			return nil
		}
	}
}
