package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/berrythewa/clippaths/internal/config"
	"github.com/berrythewa/clippaths/internal/platform"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newRootCmd builds the command tree. Running the root command reads the clipboard once.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clippaths",
		Short: "Print the file paths referenced by the system clipboard",
		Long: `clippaths prints the files currently copied to the system clipboard,
one path per line, or "None" when the clipboard holds no file reference.

  • Windows: reads the dropped-files (CF_HDROP) clipboard format
  • macOS:   asks osascript for the clipboard as a file URL
  • Linux:   reads the clipboard text (X11 selection, then xclip)

The exit status is 0 whether or not paths were found.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
		RunE: runRead,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if zapLogger != nil {
				_ = zapLogger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/clippaths/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "log errors only")
	rootCmd.PersistentFlags().BoolVar(&useJSON, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&platformName, "platform", "", "override OS detection (auto, windows, darwin, linux)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on fatal errors
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func loadConfig() error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if platformName != "" {
		loaded.Platform = platformName
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid --platform: %w", err)
		}
	}

	cfg = loaded
	return setupLogger()
}

// loadConfigOrDefault lets commands that repair or locate the config file
// run when the file itself is broken
func loadConfigOrDefault() error {
	err := loadConfig()
	if err == nil {
		return nil
	}

	cfg = config.DefaultConfig()
	if setupErr := setupLogger(); setupErr != nil {
		return setupErr
	}
	zapLogger.Warn("Using default configuration", zap.Error(err))
	return nil
}

func runRead(cmd *cobra.Command, args []string) error {
	logger := GetZapLogger()

	reader, err := newReader(platform.DetectorFor(cfg.Platform), readerOptions(cfg, logger))
	if err != nil {
		return err
	}

	res, err := reader.ReadFilePaths(cmd.Context())
	if err != nil {
		return err
	}

	logger.Debug("Clipboard read",
		zap.String("status", res.Status.String()),
		zap.String("source", res.Source),
		zap.Int("paths", len(res.Paths)))

	return printResult(cmd.OutOrStdout(), res, useJSON)
}

func readerOptions(cfg *config.Config, logger *zap.Logger) platform.Options {
	return platform.Options{
		Logger:        logger,
		Runner:        &platform.ExecRunner{Timeout: cfg.HelperTimeout},
		OpenTimeout:   cfg.Windows.OpenTimeout,
		OsascriptPath: cfg.Darwin.Osascript,
		Script:        cfg.Darwin.Script,
		Sources:       cfg.Linux.Sources,
		XclipPath:     cfg.Linux.Xclip,
		XclipArgs:     cfg.Linux.XclipArgs,
		Display:       cfg.Linux.Display,
	}
}
