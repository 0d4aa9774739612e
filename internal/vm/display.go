package vm

// Display dimensions.
const (
	DisplayWidth      = 64
	DisplayHeight     = 32
	DisplayWidthUnits = DisplayWidth / 8
)

// Display is a packed monochrome bitmap. Every byte holds 8 horizontal
// pixels with the most significant bit being the leftmost pixel.
type Display [DisplayWidthUnits * DisplayHeight]byte

// Pixel reports whether the pixel at the given position is lit.
// Coordinates wrap around the display edges.
func (d *Display) Pixel(x, y int) bool {
	x = wrap(x, DisplayWidth)
	y = wrap(y, DisplayHeight)
	unit := d[y*DisplayWidthUnits+x/8]
	return unit&(0x80>>(x%8)) != 0
}

func (d *Display) clear() {
	*d = Display{}
}

// drawSprite composites the sprite lines onto the display using XOR, starting
// at the given column and row. Lines that cross the right edge continue on the
// left edge of the same row, lines past the bottom edge continue at the top.
// It reports whether any lit pixel was turned off.
func (d *Display) drawSprite(column, row byte, sprite []byte) bool {
	x := int(column) % DisplayWidth
	y := int(row) % DisplayHeight
	shift := uint(x % 8)
	unit := x / 8
	next := (unit + 1) % DisplayWidthUnits

	var collision bool
	for _, line := range sprite {
		first := line >> shift
		second := line << (8 - shift)

		base := y * DisplayWidthUnits
		if d[base+unit]&first != 0 || d[base+next]&second != 0 {
			collision = true
		}
		d[base+unit] ^= first
		d[base+next] ^= second

		y = (y + 1) % DisplayHeight
	}
	return collision
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
