package bubbletea

import "github.com/fwojciec/huepick"

// Screen geometry in terminal cells.
const (
	titleRows   = 2 // title and a blank line
	marginLeft  = 1
	columnGap   = 2
	stripCols   = 2
	panelCols   = 28
	panelRows   = 9
	swatchCols  = 3 // history swatch width; one blank column follows
	footerRows  = 5 // blank, history, blank, status, help
	minSurfaceW = 8
	maxSurfaceW = 64
	minSurfaceH = 4
	maxSurfaceH = 24
)

// screenLayout places every interactive region on the terminal grid. The
// same value drives rendering and mouse hit testing.
type screenLayout struct {
	surfaceX, surfaceY int
	surfaceW, surfaceH int
	stripX             int
	panelX             int
	historyY           int
	statusY            int
	helpY              int
}

func computeLayout(width, height int) screenLayout {
	l := screenLayout{surfaceX: marginLeft, surfaceY: titleRows}
	l.surfaceW = clampInt(width-marginLeft-columnGap-stripCols-columnGap-panelCols, minSurfaceW, maxSurfaceW)
	l.surfaceH = clampInt(height-titleRows-footerRows, minSurfaceH, maxSurfaceH)
	l.stripX = l.surfaceX + l.surfaceW + columnGap
	l.panelX = l.stripX + stripCols + columnGap
	l.historyY = l.surfaceY + l.bodyRows() + 1
	l.statusY = l.historyY + 2
	l.helpY = l.statusY + 1
	return l
}

// bodyRows is the height of the surface and panel block.
func (l screenLayout) bodyRows() int {
	return max(l.surfaceH, panelRows)
}

// picker converts the cell geometry to the color model's layout. A region
// n cells wide spans n-1 units so that its last cell maps to fraction 1.
func (l screenLayout) picker() huepick.Layout {
	return huepick.Layout{
		Surface: huepick.Rect{
			X:      float64(l.surfaceX),
			Y:      float64(l.surfaceY),
			Width:  float64(l.surfaceW - 1),
			Height: float64(l.surfaceH - 1),
		},
		HueStrip: huepick.Rect{
			X:      float64(l.stripX),
			Y:      float64(l.surfaceY),
			Width:  float64(stripCols - 1),
			Height: float64(l.surfaceH - 1),
		},
	}
}

// historyIndexAt returns the history slot under the cell (x, y).
// Blank separator columns are not part of any slot.
func (l screenLayout) historyIndexAt(x, y int) (int, bool) {
	if y != l.historyY || x < marginLeft {
		return 0, false
	}
	offset := x - marginLeft
	if offset%(swatchCols+1) == swatchCols {
		return 0, false
	}
	i := offset / (swatchCols + 1)
	if i >= huepick.HistoryLimit {
		return 0, false
	}
	return i, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
