package glyph

import "image"

// Cell is one accepted grid sample in surface pixel coordinates.
type Cell struct {
	X, Y int
}

// Sample walks the image on a regular grid starting at (0, 0) with the given
// stride and returns every cell whose alpha is strictly greater than threshold.
// Cells are returned in row-major order.
func Sample(img *image.RGBA, stride int, threshold uint8) []Cell {
	if img == nil || stride <= 0 {
		return nil
	}

	b := img.Bounds()
	cells := make([]Cell, 0, 256)
	for y := b.Min.Y; y < b.Max.Y; y += stride {
		row := img.Pix[(y-b.Min.Y)*img.Stride:]
		for x := b.Min.X; x < b.Max.X; x += stride {
			alpha := row[(x-b.Min.X)*4+3]
			if alpha > threshold {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// AlphaAt returns the alpha channel at (x, y), or 0 outside the image.
func AlphaAt(img *image.RGBA, x, y int) uint8 {
	if img == nil || !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return 0
	}
	return img.RGBAAt(x, y).A
}
