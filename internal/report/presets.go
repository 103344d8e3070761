package report

import (
	"fmt"
	"io"

	"github.com/verte-zerg/meshsim/internal/preset"
)

// RenderPresets prints the catalog. Detailed mode adds modulation and
// range columns; the default preset is starred in both.
func RenderPresets(w io.Writer, presets []preset.Preset, defaultID int, detailed bool) error {
	cols := []column{
		{title: "#"},
		{title: "Speed", rightAlign: true},
		{title: "Name"},
	}
	if detailed {
		cols = append(cols, column{title: "Modulation"}, column{title: "Range"})
	}
	cols = append(cols, column{})

	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		star := ""
		if p.ID == defaultID {
			star = "★"
		}
		if detailed {
			rows = append(rows, []string{
				fmt.Sprintf("%d", p.ID),
				FormatRate(p.BitRate),
				p.Name,
				p.Technical,
				p.Range,
				star,
			})
		} else {
			rows = append(rows, []string{
				fmt.Sprintf("%d", p.ID),
				FormatRate(p.BitRate),
				p.Name,
				star,
			})
		}
	}

	for _, line := range formatTable(cols, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "\n★ = default preset")
	return err
}
