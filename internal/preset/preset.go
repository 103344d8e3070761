// Package preset defines the fixed catalog of radio presets.
package preset

import "fmt"

// Preset describes one radio configuration: its effective data rate plus
// display metadata. Values are returned by copy; the catalog itself is
// never mutated after process start.
type Preset struct {
	ID        int
	Name      string
	Technical string
	BitRate   float64 // usable bits per second
	Range     string
}

// KilobitsPerSecond reports the preset data rate in kbps for display.
func (p Preset) KilobitsPerSecond() float64 {
	return p.BitRate / 1000
}

// InvalidIDError reports a preset id outside the catalog range.
type InvalidIDError struct {
	ID int
}

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("invalid preset id %d (valid: 1-%d)", e.ID, len(catalog))
}

// defaultID is Long Range / Fast, the stock radio default.
const defaultID = 6

// Catalog order is id order; ids are contiguous starting at 1.
var catalog = []Preset{
	{ID: 1, Name: "Short Range / Turbo", Technical: "SF 7/128, BW 500 kHz, CR 4/5", BitRate: 21880, Range: "2-5 km"},
	{ID: 2, Name: "Short Range / Fast", Technical: "SF 7/128, BW 250 kHz, CR 4/5", BitRate: 10940, Range: "3-8 km"},
	{ID: 3, Name: "Short Range / Slow", Technical: "SF 8/256, BW 250 kHz, CR 4/5", BitRate: 6250, Range: "5-12 km"},
	{ID: 4, Name: "Medium Range / Fast", Technical: "SF 9/512, BW 250 kHz, CR 4/5", BitRate: 3520, Range: "8-15 km"},
	{ID: 5, Name: "Medium Range / Slow", Technical: "SF 10/1024, BW 250 kHz, CR 4/5", BitRate: 1950, Range: "10-20 km"},
	{ID: 6, Name: "Long Range / Fast", Technical: "SF 11/2048, BW 250 kHz, CR 4/5", BitRate: 1070, Range: "15-25 km"},
	{ID: 7, Name: "Long Range / Moderate", Technical: "SF 11/2048, BW 125 kHz, CR 4/8", BitRate: 340, Range: "20-35 km"},
	{ID: 8, Name: "Long Range / Slow", Technical: "SF 12/4096, BW 125 kHz, CR 4/8", BitRate: 180, Range: "25-50+ km"},
}

// List returns all presets in ascending id order.
func List() []Preset {
	return append([]Preset(nil), catalog...)
}

// Get resolves a preset by id.
func Get(id int) (Preset, error) {
	if id < 1 || id > len(catalog) {
		return Preset{}, InvalidIDError{ID: id}
	}
	return catalog[id-1], nil
}

// DefaultID returns the id used when the caller does not pick a preset.
func DefaultID() int {
	return defaultID
}
