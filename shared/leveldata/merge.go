package leveldata

// MergeSolidTiles greedily merges a row-major grid of solid cells into as few
// rectangles as possible: each rect grows along the row first, then down while
// every cell of the next row span is still solid. Output is in row-major
// order of each rect's top-left tile.
func MergeSolidTiles(solid []bool, width, height int, tileW, tileH float64) []SolidRect {
	if width <= 0 || height <= 0 || len(solid) != width*height {
		return nil
	}

	var rects []SolidRect
	processed := make([]bool, len(solid))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if processed[idx] || !solid[idx] {
				continue
			}

			w := 1
			for x+w < width {
				i := y*width + x + w
				if processed[i] || !solid[i] {
					break
				}
				w++
			}

			h := 1
		rows:
			for y+h < height {
				for xi := x; xi < x+w; xi++ {
					i := (y+h)*width + xi
					if processed[i] || !solid[i] {
						break rows
					}
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*width+xx] = true
				}
			}

			rects = append(rects, SolidRect{
				X: float64(x) * tileW,
				Y: float64(y) * tileH,
				W: float64(w) * tileW,
				H: float64(h) * tileH,
			})
		}
	}
	return rects
}
