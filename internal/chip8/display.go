package chip8

import "strings"

// Frame is the monochrome display buffer, stored row-major. Frames are
// values, a copy handed to a renderer is not affected by later drawing.
type Frame [DisplayHeight][DisplayWidth]bool

// Pixel returns the state of the pixel at the given coordinates. The
// coordinates wrap around the display edges.
func (f *Frame) Pixel(x, y int) bool {
	return f[wrap(y, DisplayHeight)][wrap(x, DisplayWidth)]
}

// Set sets the state of the pixel at the given coordinates, wrapping the
// coordinates around the display edges.
func (f *Frame) Set(x, y int, on bool) {
	f[wrap(y, DisplayHeight)][wrap(x, DisplayWidth)] = on
}

// Clear turns all pixels off.
func (f *Frame) Clear() {
	*f = Frame{}
}

// Lit returns the number of pixels that are on.
func (f *Frame) Lit() int {
	count := 0
	for y := range f {
		for x := range f[y] {
			if f[y][x] {
				count++
			}
		}
	}
	return count
}

// String renders the frame as text, one line per row, using '#' for lit
// and '.' for unlit pixels.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(DisplayHeight * (DisplayWidth + 1))
	for y := range f {
		for x := range f[y] {
			if f[y][x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func wrap(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}

// Keys is the pressed state of the 16 logical keys.
type Keys [KeyCount]bool

// FirstPressed returns the lowest pressed key.
func (k Keys) FirstPressed() (uint8, bool) {
	for i, pressed := range k {
		if pressed {
			return uint8(i), true
		}
	}
	return 0, false
}
