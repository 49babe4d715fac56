package huepick

// HistoryLimit is the maximum number of colors kept in a History.
const HistoryLimit = 12

// History is an ordered list of saved hex colors, most recent first.
// The zero value is an empty history. History values are immutable;
// Add returns a new History.
type History struct {
	entries []string
}

// NewHistory returns a History holding the given colors in order,
// dropping duplicates and anything past HistoryLimit.
func NewHistory(colors ...string) History {
	var h History
	for _, c := range colors {
		if len(h.entries) == HistoryLimit {
			break
		}
		if !h.Contains(c) {
			h.entries = append(h.entries, c)
		}
	}
	return h
}

// Add returns a history with hex at the front. A color that is already
// present is skipped without reordering. When the history is full the
// oldest entry is evicted.
func (h History) Add(hex string) History {
	if h.Contains(hex) {
		return h
	}
	n := len(h.entries)
	if n >= HistoryLimit {
		n = HistoryLimit - 1
	}
	entries := make([]string, 0, n+1)
	entries = append(entries, hex)
	entries = append(entries, h.entries[:n]...)
	return History{entries: entries}
}

// Contains reports whether hex is in the history.
func (h History) Contains(hex string) bool {
	for _, e := range h.entries {
		if e == hex {
			return true
		}
	}
	return false
}

// At returns the entry at index i and whether it exists.
func (h History) At(i int) (string, bool) {
	if i < 0 || i >= len(h.entries) {
		return "", false
	}
	return h.entries[i], true
}

// Len returns the number of entries.
func (h History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the entries, most recent first.
func (h History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Swatches converts the history into exportable records.
func (h History) Swatches() []Swatch {
	swatches := make([]Swatch, 0, len(h.entries))
	for i, hex := range h.entries {
		rgb, err := ParseHex(hex)
		if err != nil {
			continue
		}
		swatches = append(swatches, Swatch{
			Position: i,
			Hex:      hex,
			RGB:      rgb,
			HSL:      RGBToHSL(rgb),
		})
	}
	return swatches
}
