package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Board layout constants
const (
	hudWidth = 12 // Width of the score panel
	hudGap   = 2  // Columns between board and score panel
)

// Layout is the placement of the board and score panel on a screen.
type Layout struct {
	Board core.Rect // Including the border
	HUD   core.Rect
}

// BoardSize returns the bordered size of a rows×cols board.
func BoardSize(rows, cols, cellWidth int) (w, h int) {
	return cols*cellWidth + 2, rows + 2
}

// FrameSize returns the screen size needed by DrawFrame: the bordered
// board plus the score panel.
func FrameSize(rows, cols, cellWidth int) (w, h int) {
	bw, bh := BoardSize(rows, cols, cellWidth)
	return bw + hudGap + hudWidth, bh
}

// NewLayout centers the board and its score panel inside area. It reports
// false when area is too small to hold them.
func NewLayout(area core.Rect, rows, cols, cellWidth int) (Layout, bool) {
	bw, bh := BoardSize(rows, cols, cellWidth)
	total := core.NewRect(0, 0, bw+hudGap+hudWidth, bh)
	if total.W > area.W || total.H > area.H {
		return Layout{}, false
	}
	total = area.Centered(total.W, total.H)
	return Layout{
		Board: core.NewRect(total.X, total.Y, bw, bh),
		HUD:   core.NewRect(total.X+bw+hudGap, total.Y+1, hudWidth, bh-2),
	}, true
}

// DrawBoard draws the bordered playfield and every block of the frame.
// Each grid cell is cellWidth columns wide.
func DrawBoard(dst *core.Screen, r core.Rect, f blockfall.Frame, theme registry.Theme, cellWidth int) {
	dst.DrawBox(r, theme.Border)

	ox, oy := r.X+1, r.Y+1
	empty := theme.Color(blockfall.Empty)
	for y := range f.Rows {
		for x := range f.Cols {
			dst.SetCell(ox+x*cellWidth, oy+y, '·', empty)
		}
	}

	for _, b := range f.Blocks {
		color := theme.Color(b.Color)
		for i := range cellWidth {
			dst.SetCell(ox+b.X*cellWidth+i, oy+b.Y, '█', color)
		}
	}

	if f.Over() {
		drawGameOver(dst, r, f, theme)
	}
}

func drawGameOver(dst *core.Screen, r core.Rect, f blockfall.Frame, theme registry.Theme) {
	lines := []string{"GAME OVER", fmt.Sprintf("score %d", f.Score), "r: restart"}
	y := r.Y + (r.H-len(lines))/2
	for i, text := range lines {
		n := len([]rune(text))
		x := r.X + (r.W-n)/2
		color := theme.Text
		if i == 0 {
			color = theme.Accent
		}
		dst.DrawColorText(x, y+i, text, color)
	}
}

// DrawHUD draws the score panel.
func DrawHUD(dst *core.Screen, r core.Rect, f blockfall.Frame, theme registry.Theme) {
	rows := []struct {
		label string
		value string
	}{
		{"SCORE", strconv.Itoa(f.Score)},
		{"LINES", strconv.Itoa(f.Lines)},
		{"PIECE", f.Piece},
	}
	y := r.Y
	for _, row := range rows {
		if y+1 >= r.Bottom() {
			return
		}
		dst.DrawColorText(r.X, y, row.label, theme.Text)
		dst.DrawColorText(r.X, y+1, row.value, theme.Accent)
		y += 3
	}
}

// DrawFrame lays out and draws a whole frame into dst. If the screen is too
// small, a notice is drawn instead.
func DrawFrame(dst *core.Screen, f blockfall.Frame, theme registry.Theme, cellWidth int) {
	area := core.NewRect(0, 0, dst.Width(), dst.Height())
	layout, ok := NewLayout(area, f.Rows, f.Cols, cellWidth)
	if !ok {
		w, h := FrameSize(f.Rows, f.Cols, cellWidth)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small: need %dx%d", w, h), theme.Text)
		return
	}
	DrawBoard(dst, layout.Board, f, theme, cellWidth)
	DrawHUD(dst, layout.HUD, f, theme)
}
