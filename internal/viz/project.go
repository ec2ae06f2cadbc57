package viz

import "planetoids/internal/geom"

// Projection maps the orbital plane onto the canvas dot grid, matching the
// top-down camera of the windowed mode. It is invertible, which is what
// makes mouse picking in the terminal possible.
type Projection struct {
	Width, Height int     // canvas size in cells
	Scale         float64 // dots per scene unit
}

// NewProjection sizes the scale so a system of the given outermost orbit
// radius fills most of the canvas.
func NewProjection(w, h int, maxRadius float64) Projection {
	dots := h * 4
	if w*2 < dots {
		dots = w * 2
	}
	if maxRadius <= 0 {
		maxRadius = 1
	}
	return Projection{
		Width:  w,
		Height: h,
		Scale:  float64(dots) / 2 * 0.9 / maxRadius,
	}
}

// ToDots converts a world position to dot coordinates.
func (p Projection) ToDots(pos geom.Vec3) (int, int) {
	cx, cy := p.Width, p.Height*2 // dot-grid center
	return cx + int(pos.X*p.Scale), cy + int(pos.Z*p.Scale)
}

// CellToWorld converts a terminal cell (mouse coordinates) back to a point
// on the orbital plane, using the center of the cell.
func (p Projection) CellToWorld(cellX, cellY int) geom.Vec3 {
	px := float64(cellX*2) + 0.5
	py := float64(cellY*4) + 1.5
	cx, cy := float64(p.Width), float64(p.Height*2)
	return geom.Vec3{
		X: (px - cx) / p.Scale,
		Z: (py - cy) / p.Scale,
	}
}
