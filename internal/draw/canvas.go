// Package draw renders the game to an ANSI terminal using half-block
// characters, so each terminal cell holds two vertical pixels.
package draw

import (
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/tomz197/rockfield/internal/physics"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// cell values: bit 0 is the top pixel, bit 1 the bottom one.
const (
	cellEmpty byte = 0
	cellTop   byte = 1
	cellBot   byte = 2
	cellFull  byte = cellTop | cellBot
	cellStale byte = 0xff // Forces a rewrite on the next Render
)

var cellRunes = [4]rune{BlockEmpty, BlockUpperHalf, BlockLowerHalf, BlockFull}

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// It scales from logical field coordinates to terminal pixels and only emits
// cells that changed since the previous Render.
type Canvas struct {
	termWidth      int    // Canvas columns
	termHeight     int    // Canvas rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]
	prev           []byte // Cell contents written by the last Render

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets of the canvas origin.
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	scaledBuf       []physics.Point
	intersectionBuf []float64
	numBuf          [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the canvas dimensions in terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// A resize forces a full redraw.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth, termHeight = max(termWidth, 1), max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
		c.prev = make([]byte, termHeight*termWidth)
		c.ForceRedraw()
	}
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// ForceRedraw makes the next Render rewrite every cell, e.g. after the
// screen was cleared underneath the canvas.
func (c *Canvas) ForceRedraw() {
	for i := range c.prev {
		c.prev[i] = cellStale
	}
}

// MarkTextDirty marks the canvas cells under a text span as stale so the
// next Render repaints them. col and row are 1-based terminal coordinates.
func (c *Canvas) MarkTextDirty(col, row, width int) {
	r := row - 1 - c.offsetRow
	if r < 0 || r >= c.termHeight {
		return
	}
	start := max(col-1-c.offsetCol, 0)
	end := min(col-1-c.offsetCol+width, c.termWidth)
	for x := start; x < end; x++ {
		c.prev[r*c.termWidth+x] = cellStale
	}
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at canvas pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Pixel reports whether the pixel at canvas pixel coordinates is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

func (c *Canvas) toPixel(p physics.Point) (int, int) {
	return int(math.Round(p.X * c.scaleX)), int(math.Round(p.Y * c.scaleY))
}

// Set sets a pixel at logical coordinates.
func (c *Canvas) Set(p physics.Point) {
	c.setPixel(c.toPixel(p))
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 physics.Point) {
	x1, y1 := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon, filling the interior when filled is set.
func (c *Canvas) DrawPolygon(points []physics.Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []physics.Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]physics.Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = physics.Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	n := len(scaled)
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections
		slices.Sort(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			for x := int(math.Ceil(intersections[i])); x <= int(math.Floor(intersections[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render writes every cell that changed since the last Render.
func (c *Canvas) Render(w io.Writer) {
	var buf strings.Builder
	lastRow, lastCol := -1, -1

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			var cell byte
			if c.pixels[topOffset+col] {
				cell |= cellTop
			}
			if c.pixels[bottomOffset+col] {
				cell |= cellBot
			}
			idx := row*c.termWidth + col
			if c.prev[idx] == cell {
				continue
			}
			c.prev[idx] = cell

			// Consecutive cells on a row need no cursor move
			if row != lastRow || col != lastCol+1 {
				c.moveCursor(&buf, col+1+c.offsetCol, row+1+c.offsetRow)
			}
			buf.WriteRune(cellRunes[cell])
			lastRow, lastCol = row, col
		}
	}

	data := buf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func (c *Canvas) moveCursor(buf *strings.Builder, col, row int) {
	buf.WriteString("\033[")
	buf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	buf.WriteByte(';')
	buf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	buf.WriteByte('H')
}

// RenderBorder draws a box around the canvas when the offsets leave room for it.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 2 // Row 1 is the HUD

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if hasV {
		if hasH {
			c.moveCursor(&buf, left, top)
			buf.WriteString("┌" + line + "┐")
			c.moveCursor(&buf, left, bottom)
			buf.WriteString("└" + line + "┘")
		} else {
			c.moveCursor(&buf, c.offsetCol+1, top)
			buf.WriteString(line)
			c.moveCursor(&buf, c.offsetCol+1, bottom)
			buf.WriteString(line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row < bottom; row++ {
			c.moveCursor(&buf, left, row)
			buf.WriteRune('│')
			c.moveCursor(&buf, right, row)
			buf.WriteRune('│')
		}
	}
	io.WriteString(w, buf.String())
}

// TerminalWidth returns the canvas column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
