// Package draw renders the world to an ANSI terminal using half-block
// characters, which give two square-ish pixels per character cell.
package draw

import (
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Point is a position in logical canvas space. Y grows downward.
type Point struct {
	X, Y float64
}

// Half-block characters used by Render.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a pixel buffer with twice the terminal's vertical resolution.
// Drawing uses logical coordinates that are scaled to the terminal size.
type Canvas struct {
	cols   int    // Terminal columns
	rows   int    // Terminal rows
	pixels []bool // [y*cols + x], y in sub-pixels

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	renderBuf       strings.Builder
	scaledBuf       []Point   // fillPolygon scratch
	intersectionBuf []float64 // fillPolygon scratch
	polygonBuf      []Point   // BorrowPoints scratch
}

// NewCanvas creates a canvas that maps a logicalWidth x logicalHeight space
// onto cols x rows terminal cells.
func NewCanvas(cols, rows int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(cols, rows)
	return c
}

// Resize adapts the canvas to a new terminal size, keeping the logical size.
func (c *Canvas) Resize(cols, rows int) {
	cols = max(cols, 1)
	rows = max(rows, 1)
	if cols != c.cols || rows != c.rows {
		c.cols = cols
		c.rows = rows
		c.pixels = make([]bool, cols*rows*2)
	}
	c.scaleX = float64(cols) / c.logicalWidth
	c.scaleY = float64(rows*2) / c.logicalHeight
}

// Clear resets every pixel.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Cols returns the terminal column count.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the terminal row count.
func (c *Canvas) Rows() int { return c.rows }

// LogicalWidth returns the width of the drawing space.
func (c *Canvas) LogicalWidth() float64 { return c.logicalWidth }

// LogicalHeight returns the height of the drawing space.
func (c *Canvas) LogicalHeight() float64 { return c.logicalHeight }

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.rows*2 {
		c.pixels[y*c.cols+x] = true
	}
}

// Set lights the pixel at a logical position.
func (c *Canvas) Set(p Point) {
	c.setPixel(int(math.Round(p.X*c.scaleX)), int(math.Round(p.Y*c.scaleY)))
}

// DrawLine draws a line with Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
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

// DrawPolygon draws a closed outline, filling the interior if filled is set.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := range n {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// fillPolygon scanline-fills in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
		minY = min(minY, scaled[i].Y)
		maxY = max(maxY, scaled[i].Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		xs := c.intersectionBuf[:0]

		n := len(scaled)
		for i := range n {
			p1, p2 := scaled[i], scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = xs

		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// BorrowPoints returns a scratch slice of n points, valid until the next call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

// ToCell converts a logical position to a 1-based terminal (col, row), for
// placing text next to drawn shapes.
func (c *Canvas) ToCell(p Point) (col, row int) {
	px := int(math.Round(p.X * c.scaleX))
	py := int(math.Round(p.Y * c.scaleY))
	return px + 1, py/2 + 1
}

// Render writes every lit cell to w. Empty cells are skipped, so the screen
// must be cleared first.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	var num [20]byte
	for row := range c.rows {
		top := c.pixels[row*2*c.cols : (row*2+1)*c.cols]
		bottom := c.pixels[(row*2+1)*c.cols : (row*2+2)*c.cols]

		for col := range c.cols {
			var ch rune
			switch {
			case top[col] && bottom[col]:
				ch = BlockFull
			case top[col]:
				ch = BlockUpperHalf
			case bottom[col]:
				ch = BlockLowerHalf
			default:
				continue
			}

			c.renderBuf.WriteString("\033[")
			c.renderBuf.Write(strconv.AppendInt(num[:0], int64(row+1), 10))
			c.renderBuf.WriteByte(';')
			c.renderBuf.Write(strconv.AppendInt(num[:0], int64(col+1), 10))
			c.renderBuf.WriteByte('H')
			c.renderBuf.WriteRune(ch)
		}
	}

	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
