package render

import (
	"image"
	"image/color"
)

// FloodFill recolors the 4-connected area of pixels that exactly match the
// seed pixel, starting at seed. It returns the number of pixels changed. A
// seed already painted with fill is left alone, as is a seed outside img.
func FloodFill(img *image.RGBA, seed image.Point, fill color.RGBA) int {
	if img == nil || !seed.In(img.Bounds()) {
		return 0
	}
	target := rgbaAt(img, seed.X, seed.Y)
	if target == fill {
		return 0
	}
	b := img.Bounds()
	painted := 0
	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if rgbaAt(img, p.X, p.Y) != target {
			continue
		}
		// Walk to the left edge of this span.
		x0 := p.X
		for x0 > b.Min.X && rgbaAt(img, x0-1, p.Y) == target {
			x0--
		}
		aboveOpen, belowOpen := false, false
		for x := x0; x < b.Max.X && rgbaAt(img, x, p.Y) == target; x++ {
			img.SetRGBA(x, p.Y, fill)
			painted++
			if p.Y > b.Min.Y {
				match := rgbaAt(img, x, p.Y-1) == target
				if match && !aboveOpen {
					stack = append(stack, image.Pt(x, p.Y-1))
				}
				aboveOpen = match
			}
			if p.Y < b.Max.Y-1 {
				match := rgbaAt(img, x, p.Y+1) == target
				if match && !belowOpen {
					stack = append(stack, image.Pt(x, p.Y+1))
				}
				belowOpen = match
			}
		}
	}
	return painted
}

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	i := img.PixOffset(x, y)
	s := img.Pix[i : i+4 : i+4]
	return color.RGBA{s[0], s[1], s[2], s[3]}
}
