package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/meshsim/internal/config"
	"github.com/verte-zerg/meshsim/internal/model"
	"github.com/verte-zerg/meshsim/internal/preset"
	"github.com/verte-zerg/meshsim/internal/report"
	"github.com/verte-zerg/meshsim/internal/sim"
	"github.com/verte-zerg/meshsim/internal/source"
	"github.com/verte-zerg/meshsim/internal/store"
	"github.com/verte-zerg/meshsim/internal/tui"
)

// runSimulation resolves the preset and source, asks for confirmation on
// slow runs, executes playback on the chosen frontend, and records the
// outcome. Preset and source failures surface here, before any playback.
func runSimulation(ctx context.Context, cmd *cobra.Command, sourceSpec string, opts model.Options) error {
	p, err := preset.Get(opts.PresetID)
	if err != nil {
		return err
	}
	if sourceSpec == "" {
		return fmt.Errorf("source is required (file path, URL, or 'sample')")
	}

	text, err := source.Resolve(ctx, sourceSpec)
	if err != nil {
		return err
	}

	plan := sim.Estimate(p, text)
	if !opts.Yes && plan.Duration > slowRunThresholdSeconds*time.Second && term.IsTerminal(int(os.Stdin.Fd())) {
		ok, err := confirmSlowRun(plan.Duration)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	interactive := !opts.Plain && term.IsTerminal(int(os.Stdout.Fd()))
	startedAt := time.Now()

	var res sim.Result
	if interactive {
		res, err = runPlaybackTUI(ctx, p, text, opts.BarWidth)
	} else {
		res, err = runPlaybackPlain(ctx, cmd, p, plan, text, opts.BarWidth)
	}
	if err != nil {
		return err
	}

	if opts.SaveHistory {
		if err := recordRun(ctx, startedAt, sourceSpec, p, plan, res); err != nil {
			logErrf("failed to record run: %v\n", err)
		}
	}
	return nil
}

func runPlaybackPlain(ctx context.Context, cmd *cobra.Command, p preset.Preset, plan sim.Plan, text string, barWidth int) (sim.Result, error) {
	out := cmd.OutOrStdout()
	if err := report.RenderPlan(out, p, plan); err != nil {
		return sim.Result{}, err
	}
	if _, err := fmt.Fprintln(out, "\nStarting transmission... (ctrl+c to stop)"); err != nil {
		return sim.Result{}, err
	}
	// Keep the progress line inside the terminal width.
	if limit := report.TerminalWidth() - 20; barWidth > limit && limit >= 10 {
		barWidth = limit
	}
	sink := &report.ConsoleSink{W: out, BarWidth: barWidth}
	return sim.Simulate(ctx, &p, text, sink, sim.WallClock{})
}

func runPlaybackTUI(ctx context.Context, p preset.Preset, text string, barWidth int) (sim.Result, error) {
	playback := tui.NewModel(ctx, p, text)
	program := tea.NewProgram(playback, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return sim.Result{}, fmt.Errorf("failed to run TUI: %w", err)
	}
	finished, ok := final.(*tui.Model)
	if !ok {
		return sim.Result{}, errors.New("unexpected playback model")
	}
	res, err := finished.Result()
	if err != nil {
		return sim.Result{}, err
	}
	if res == nil {
		return sim.Result{}, errors.New("playback ended before a summary was produced")
	}

	// Repeat the summary outside the alt screen so it survives the TUI.
	sink := &report.ConsoleSink{W: os.Stdout, BarWidth: barWidth}
	if err := sink.Summary(*res); err != nil {
		return sim.Result{}, err
	}
	return *res, nil
}

func recordRun(ctx context.Context, startedAt time.Time, sourceSpec string, p preset.Preset, plan sim.Plan, res sim.Result) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	rec := model.RunRecord{
		StartedAt:    startedAt,
		Source:       sourceLabel(sourceSpec),
		PresetID:     p.ID,
		PresetName:   p.Name,
		PayloadBytes: plan.PayloadBytes,
		PacketCount:  res.PacketCount,
		PacketsSent:  res.PacketsSent,
		BytesSent:    res.BytesSent,
		EstimatedMs:  res.Estimated.Milliseconds(),
		ElapsedMs:    res.Elapsed.Milliseconds(),
		Cancelled:    res.Cancelled,
	}
	_, err = st.InsertRun(ctx, rec)
	return err
}

func sourceLabel(spec string) string {
	if source.IsSampleKeyword(spec) {
		return "sample"
	}
	return spec
}
