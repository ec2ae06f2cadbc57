package viz

import (
	"math"
	"strings"
)

// Braille patterns pack a 2x4 dot grid into one terminal cell, starting at
// Unicode 0x2800.
var dotMask = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille drawing surface. Coordinates passed to Set and the
// draw helpers are in dots: (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= rune(dotMask[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
}

// DrawLine rasterizes with Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle draws a filled disc of radius r dots centered on (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r int) {
	if r < 1 {
		c.Set(cx, cy)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy)
			}
		}
	}
}

// StrokeCircle draws a circle outline. Used for orbit rings and the
// selection marker.
func (c *Canvas) StrokeCircle(cx, cy int, r float64) {
	if r <= 0 {
		return
	}
	steps := int(2 * math.Pi * r)
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		a := float64(i) * 2 * math.Pi / float64(steps)
		c.Set(cx+int(r*math.Cos(a)), cy+int(r*math.Sin(a)))
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
