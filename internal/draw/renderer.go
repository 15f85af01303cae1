package draw

import (
	"fmt"
	"io"

	"github.com/tomz197/rockfield/internal/loop"
	"github.com/tomz197/rockfield/internal/physics"
)

// flameLength is how far behind the ship the thrust flame reaches, in field units.
const flameLength = 6

// Renderer draws loop snapshots to a terminal. The field is scaled to the
// largest area that fits the terminal below the HUD row while keeping its
// aspect ratio.
type Renderer struct {
	cw     *ChunkWriter
	canvas *Canvas
	size   TermSizeFunc

	fieldW, fieldH float64
	termW, termH   int
	drawBorder     bool
	err            error
}

// NewRenderer creates a renderer for a fieldWidth x fieldHeight world.
func NewRenderer(w io.Writer, fieldWidth, fieldHeight float64, size TermSizeFunc) *Renderer {
	return &Renderer{
		cw:     NewChunkWriter(w),
		canvas: NewScaledCanvas(1, 1, fieldWidth, fieldHeight),
		size:   size,
		fieldW: fieldWidth,
		fieldH: fieldHeight,
	}
}

// Err returns the first write error, if any.
func (r *Renderer) Err() error {
	return r.err
}

// Render implements loop.Renderer.
func (r *Renderer) Render(frame loop.Snapshot) {
	r.fit()
	r.canvas.Clear()

	for _, a := range frame.Asteroids {
		r.canvas.DrawPolygon(a.Vertices[:], false)
	}
	if frame.Ship.Alive {
		hull := frame.Ship.Hull
		r.canvas.DrawPolygon(hull[:], true)
		if frame.Ship.Thrusting {
			dx, dy := physics.Direction(frame.Ship.Angle)
			tail := physics.Point{
				X: frame.Ship.Center.X - dx*flameLength,
				Y: frame.Ship.Center.Y - dy*flameLength,
			}
			r.canvas.DrawLine(frame.Ship.Center, tail)
		}
	}
	for _, b := range frame.Bullets {
		r.canvas.Set(b.Position)
	}

	r.canvas.Render(r.cw)
	if r.drawBorder {
		r.canvas.RenderBorder(r.cw)
		r.drawBorder = false
	}
	r.drawHUD(frame)

	switch {
	case frame.Paused:
		r.drawCentered(0, "PAUSED")
		r.drawCentered(1, "Press P to resume")
	case frame.LevelTransition:
		r.drawCentered(0, fmt.Sprintf("LEVEL %d", frame.Level))
	}
	r.flush()
}

// GameOver clears the screen and prints the final result.
func (r *Renderer) GameOver(res loop.Result) error {
	r.fit()
	ClearScreen(r.cw)
	r.canvas.ForceRedraw()
	r.drawBorder = true

	r.drawCentered(-2, "GAME OVER")
	r.drawCentered(0, fmt.Sprintf("Score: %d", res.Points))
	r.drawCentered(1, fmt.Sprintf("Level: %d", res.Level))
	r.drawCentered(2, fmt.Sprintf("Multiplier: x%.1f", res.Multiplier))
	r.drawCentered(4, "Press Q to quit")
	r.flush()
	return r.err
}

// fit re-reads the terminal size and re-centers the canvas when it changed.
func (r *Renderer) fit() {
	w, h, err := r.size()
	if err != nil || (w == r.termW && h == r.termH) {
		return
	}
	r.termW, r.termH = w, h

	// Leave the HUD row plus a border on every side
	maxCols := max(w-2, 1)
	maxRows := max(h-3, 1)

	// Half-block pixels are square, so rows hold two pixels each
	cols := maxCols
	rows := int(float64(cols) * r.fieldH / r.fieldW / 2)
	if rows > maxRows {
		rows = maxRows
		cols = int(float64(rows) * 2 * r.fieldW / r.fieldH)
	}
	cols, rows = max(cols, 1), max(rows, 1)

	ClearScreen(r.cw)
	r.canvas.Resize(cols, rows)
	r.canvas.SetOffset((w-cols)/2, 1+(h-1-rows)/2)
	r.canvas.ForceRedraw()
	r.drawBorder = true
}

// drawHUD writes the status line. Fields are fixed width so shrinking
// values leave no residue.
func (r *Renderer) drawHUD(frame loop.Snapshot) {
	r.cw.WriteAt(2, 1, fmt.Sprintf("Score: %-10d", frame.Score))
	right := fmt.Sprintf("Level: %-3d x%-5.1f", frame.Level, frame.Multiplier)
	r.cw.WriteAt(max(r.termW-len(right), 1), 1, right)
}

// drawCentered writes text centered on the canvas, dy rows below its middle.
func (r *Renderer) drawCentered(dy int, text string) {
	col := r.canvas.OffsetCol() + r.canvas.TerminalWidth()/2 - len(text)/2 + 1
	row := r.canvas.OffsetRow() + r.canvas.TerminalHeight()/2 + dy + 1
	r.cw.WriteAt(col, row, text)
	r.canvas.MarkTextDirty(col, row, len(text))
}

func (r *Renderer) flush() {
	if err := r.cw.Flush(); err != nil && r.err == nil {
		r.err = err
	}
}
