package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studiowebux/notepad/internal/cli"
	"github.com/studiowebux/notepad/internal/config"
	"github.com/studiowebux/notepad/internal/history"
	"github.com/studiowebux/notepad/internal/keybinds"
	"github.com/studiowebux/notepad/internal/logging"
	"github.com/studiowebux/notepad/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Like grep: no matches is a quiet exit status 1
		if errors.Is(err, cli.ErrNoMatches) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "notepad [file]",
	Short: "Notepad - a terminal text editor",
	Long: `Notepad is a single-document text editor for the terminal.

Run without arguments to start with an empty document, or give a file to
open it. A file that does not exist yet is created on the first save.

Examples:
  notepad                                   # Start with an empty document
  notepad notes.txt                         # Open notes.txt
  notepad export notes.txt -o notes.pdf     # Export to PDF without the editor
  notepad export *.txt                      # Export several files at once
  notepad replace notes.txt --find a --replace b --in-place
  notepad find notes.txt TODO               # Print line:col of each match
  notepad recent                            # List recently used files
  notepad history notes.txt                 # Show what happened to notes.txt`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return tui.Run(path)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <file>...",
	Short: "Export documents to single-page PDFs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(env cli.Env, _ *history.Manager) error {
			return cli.Export(cmd.Context(), env, cli.ExportOptions{
				Files:    args,
				Output:   flagExportOutput,
				PageSize: flagPageSize,
			})
		})
	},
}

var replaceCmd = &cobra.Command{
	Use:   "replace <file>",
	Short: "Replace every occurrence of a term",
	Long: `Replace every literal, case-sensitive occurrence of --find with --replace.

The result is printed to stdout unless --in-place is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(env cli.Env, _ *history.Manager) error {
			_, err := cli.Replace(env, cli.ReplaceOptions{
				FilePath: args[0],
				Find:     flagFind,
				Replace:  flagReplace,
				InPlace:  flagInPlace,
			})
			return err
		})
	},
}

var findCmd = &cobra.Command{
	Use:   "find <file> <term>",
	Short: "Print the line:col of every occurrence of a term",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(env cli.Env, _ *history.Manager) error {
			return cli.Find(env, cli.FindOptions{
				FilePath: args[0],
				Term:     args[1],
				Format:   flagFormat,
			})
		})
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently used files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var picked string
		err := withEnv(cmd, func(env cli.Env, hist *history.Manager) error {
			if hist == nil {
				return errors.New("history is unavailable")
			}
			if !flagPick {
				return cli.Recent(env, hist, cli.RecentOptions{Limit: flagLimit, Format: flagFormat})
			}
			var err error
			picked, err = cli.PickRecent(hist, flagLimit)
			return err
		})
		if errors.Is(err, cli.ErrCancelled) {
			return nil
		}
		if err != nil || picked == "" {
			return err
		}
		return tui.Run(picked)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history [file]",
	Short: "List recorded open, save and export events",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(env cli.Env, hist *history.Manager) error {
			if hist == nil {
				return errors.New("history is unavailable")
			}
			if flagClear {
				return cli.ClearHistory(env, hist)
			}
			opts := cli.HistoryOptions{Limit: flagHistoryLimit, Format: flagFormat}
			if len(args) > 0 {
				opts.File = args[0]
			}
			return cli.History(env, hist, opts)
		})
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Print the default key bindings as JSON",
	Long: `Print the default key bindings as JSON.

With --write the defaults are saved to the keybinds file in the
configuration directory, ready to be edited.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := keybinds.ExportDefaults()

		if !flagWrite {
			data, err := json.MarshalIndent(defaults, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		if _, err := os.Stat(config.KeybindsFile); err == nil && !flagForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", config.KeybindsFile)
		}
		if err := keybinds.SaveConfig(defaults, config.KeybindsFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Key bindings written to %s\n", config.KeybindsFile)
		return nil
	},
}

// Flags for export
var (
	flagExportOutput string
	flagPageSize     string
)

// Flags for replace
var (
	flagFind    string
	flagReplace string
	flagInPlace bool
)

// Flags for find, recent and history
var (
	flagFormat string
	flagLimit  int
	flagPick   bool
)

// Flags for history
var (
	flagHistoryLimit int
	flagClear        bool
)

// Flags for keybinds
var (
	flagWrite bool
	flagForce bool
)

func init() {
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Output PDF path, single file only (default: the file with a .pdf extension)")
	exportCmd.Flags().StringVar(&flagPageSize, "page-size", "", "Page size (Letter/Legal/A4/A5, default from settings)")

	replaceCmd.Flags().StringVar(&flagFind, "find", "", "Text to find")
	replaceCmd.Flags().StringVar(&flagReplace, "replace", "", "Replacement text")
	replaceCmd.Flags().BoolVarP(&flagInPlace, "in-place", "i", false, "Save the result back to the file")
	replaceCmd.MarkFlagRequired("find")

	findCmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "Output format (text/json/yaml)")

	recentCmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "Output format (text/json/yaml)")
	recentCmd.Flags().IntVarP(&flagLimit, "limit", "n", history.MaxRecentFiles, "Number of files to list")
	recentCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose a file interactively and open it")

	historyCmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "Output format (text/json/yaml)")
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 50, "Number of events to list (0 for all)")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded events")

	keybindsCmd.Flags().BoolVar(&flagWrite, "write", false, "Write the defaults to the keybinds file")
	keybindsCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing keybinds file")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(keybindsCmd)
}

// withEnv initializes configuration, logging and history for a CLI
// command and runs fn. History is optional: hist is nil when the database
// cannot be opened.
func withEnv(cmd *cobra.Command, fn func(env cli.Env, hist *history.Manager) error) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	settings, settingsErr := config.LoadSettings(config.GetSettingsFilePath())

	log, logCloser, err := logging.Open(config.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	if settingsErr != nil {
		log.Warn().Err(settingsErr).Msg("using default settings")
	}

	env := cli.Env{
		Out:      cmd.OutOrStdout(),
		Err:      cmd.ErrOrStderr(),
		Settings: settings,
		Log:      log.With().Str("command", cmd.Name()).Logger(),
	}

	hist, err := history.NewManager(config.DatabasePath)
	if err != nil {
		log.Warn().Err(err).Msg("history disabled")
		return fn(env, nil)
	}
	defer hist.Close()
	env.Recorder = hist

	return fn(env, hist)
}
