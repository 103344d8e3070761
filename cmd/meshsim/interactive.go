package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/verte-zerg/meshsim/internal/preset"
	"github.com/verte-zerg/meshsim/internal/report"
)

// runInteractiveForm collects a source and preset when meshsim is started
// without arguments.
func runInteractiveForm(defaultPresetID int) (string, int, error) {
	sourceSpec := "sample"
	presetID := defaultPresetID

	options := make([]huh.Option[int], 0, len(preset.List()))
	for _, p := range preset.List() {
		label := fmt.Sprintf("%d. %s (%.2f kbps)", p.ID, p.Name, p.KilobitsPerSecond())
		if p.ID == preset.DefaultID() {
			label += " ★"
		}
		options = append(options, huh.NewOption(label, p.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Source").
				Description("File path, http(s) URL, or 'sample' for built-in demo text.").
				Value(&sourceSpec).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("source must not be empty")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Radio preset").
				Description("Slower presets reach further.").
				Options(options...).
				Value(&presetID),
		),
	)
	if err := form.Run(); err != nil {
		return "", 0, fmt.Errorf("interactive setup failed: %w", err)
	}
	return strings.TrimSpace(sourceSpec), presetID, nil
}

// confirmSlowRun warns before playback that will take a while.
func confirmSlowRun(duration time.Duration) (bool, error) {
	ok := false
	confirm := huh.NewConfirm().
		Title(fmt.Sprintf("Estimated transmission time: %s. Continue?", report.FormatDuration(duration))).
		Affirmative("Start").
		Negative("Cancel").
		Value(&ok)
	if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return ok, nil
}
