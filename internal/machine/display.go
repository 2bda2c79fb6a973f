package machine

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Frame is a snapshot of the display, indexed by y*DisplayWidth+x.
type Frame [DisplayWidth * DisplayHeight]bool

// Pixel returns whether the pixel at the coordinates is lit.
// Coordinates outside of the frame are reported as unlit.
func (f *Frame) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return f[y*DisplayWidth+x]
}

// LitCount returns the number of lit pixels.
func (f *Frame) LitCount() int {
	var n int
	for _, lit := range f {
		if lit {
			n++
		}
	}
	return n
}

// Display is the monochrome bit plane written by the sprite draw and clear instructions.
type Display struct {
	pixels Frame
	dirty  bool
}

// Clear turns off all pixels.
func (d *Display) Clear() {
	d.pixels = Frame{}
	d.dirty = true
}

// XORPixel toggles the pixel at the coordinates and returns whether it was lit
// before. Coordinates outside of the display are ignored.
func (d *Display) XORPixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	i := y*DisplayWidth + x
	wasLit := d.pixels[i]
	d.pixels[i] = !wasLit
	d.dirty = true
	return wasLit
}

// Frame returns a copy of the current display content.
func (d *Display) Frame() Frame {
	return d.pixels
}
