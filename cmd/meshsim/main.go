// Package main provides the CLI entrypoint for meshsim.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/meshsim/internal/config"
	"github.com/verte-zerg/meshsim/internal/model"
	"github.com/verte-zerg/meshsim/internal/preset"
	"github.com/verte-zerg/meshsim/internal/report"
	"github.com/verte-zerg/meshsim/internal/store"
)

const slowRunThresholdSeconds = 10

var (
	simPresetID int
	simBarWidth int
	simPlain    bool
	simYes      bool
	simNoSave   bool

	presetsDetailed bool

	historyLast int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "meshsim [source] [preset-id]",
		Short: "Radio transmission speed simulator",
		Long: strings.Join([]string{
			"meshsim estimates how long a text payload takes to transmit over a",
			"LoRa mesh radio preset and replays the transmission at that pace.",
			"",
			"The source is a file path, an http(s) URL, or 'sample' for built-in",
			"demo text. Without arguments meshsim starts in interactive mode.",
		}, "\n"),
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runSimulateCmd,
	}

	rootCmd.Flags().IntVar(&simPresetID, "preset", preset.DefaultID(), "preset id (see 'meshsim presets')")
	rootCmd.Flags().IntVar(&simBarWidth, "bar-width", report.DefaultBarWidth, "progress bar fill width in plain mode")
	rootCmd.Flags().BoolVar(&simPlain, "plain", false, "line-oriented output instead of the interactive view")
	rootCmd.Flags().BoolVar(&simYes, "yes", false, "skip the slow-run confirmation")
	rootCmd.Flags().BoolVar(&simNoSave, "no-save", false, "do not record this run in history")

	rootCmd.AddCommand(newPresetsCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runSimulateCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "preset", &simPresetID, fileCfg.Simulate.Preset)
	applyIntConfig(cmd, "bar-width", &simBarWidth, fileCfg.Simulate.BarWidth)
	applyBoolConfig(cmd, "plain", &simPlain, fileCfg.Simulate.Plain)
	applyBoolConfig(cmd, "yes", &simYes, fileCfg.Simulate.Yes)

	saveHistory := !simNoSave
	if !cmd.Flags().Changed("no-save") && fileCfg.Simulate.SaveHistory != nil {
		saveHistory = *fileCfg.Simulate.SaveHistory
	}

	if simBarWidth < 1 {
		return fmt.Errorf("--bar-width must be > 0")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sourceSpec := ""
	if len(args) >= 1 {
		sourceSpec = args[0]
	}
	if len(args) == 2 {
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("preset argument must be a number: %w", err)
		}
		simPresetID = id
	}

	if len(args) == 0 {
		spec, id, err := runInteractiveForm(simPresetID)
		if err != nil {
			return err
		}
		sourceSpec = spec
		simPresetID = id
	}

	opts := model.Options{
		PresetID:    simPresetID,
		BarWidth:    simBarWidth,
		Plain:       simPlain,
		Yes:         simYes,
		SaveHistory: saveHistory,
	}
	return runSimulation(ctx, cmd, sourceSpec, opts)
}

func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List radio presets",
		Args:  cobra.NoArgs,
		RunE:  runPresetsCmd,
	}
	cmd.Flags().BoolVar(&presetsDetailed, "detailed", false, "include modulation and range columns")
	return cmd
}

func runPresetsCmd(cmd *cobra.Command, _ []string) error {
	return report.RenderPresets(cmd.OutOrStdout(), preset.List(), preset.DefaultID(), presetsDetailed)
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N runs")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	runs, err := st.ListRuns(cmd.Context(), historyLast)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	return report.RenderHistory(cmd.OutOrStdout(), runs)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# meshsim configuration
# Uncomment a value to enable it. CLI flags override config values.

[simulate]
# preset = %d            # Preset id (see 'meshsim presets')
# bar-width = %d        # Progress bar fill width in plain mode
# plain = false         # Line-oriented output instead of the interactive view
# yes = false           # Skip the slow-run confirmation
# save-history = true   # Record runs in the history database
`,
		preset.DefaultID(),
		report.DefaultBarWidth,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
