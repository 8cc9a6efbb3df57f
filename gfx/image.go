package gfx

import (
	"fmt"
	"image"
)

// Image is an indexed-color canvas, one byte per pixel holding a color index
// in [0, NumColors). All drawing operations clip to the clip rectangle and
// resolve the color they write through the image's palette remap table.
type Image struct {
	width, height int
	clip          image.Rectangle
	palette       *Palette
	pixels        []uint8
}

func NewImage(width, height int) *Image {
	return &Image{
		width:   width,
		height:  height,
		clip:    image.Rect(0, 0, width, height),
		palette: NewPalette(),
		pixels:  make([]uint8, width*height),
	}
}

func (i *Image) Size() image.Point {
	return image.Pt(i.width, i.height)
}

func (i *Image) Palette() *Palette {
	return i.palette
}

func (i *Image) ClipRect() image.Rectangle {
	return i.clip
}

func (i *Image) SetClipRect(rect image.Rectangle) {
	i.clip = rect.Intersect(image.Rect(0, 0, i.width, i.height))
}

func (i *Image) ResetClipRect() {
	i.clip = image.Rect(0, 0, i.width, i.height)
}

// Cls fills the whole image, ignoring the clip rectangle.
func (i *Image) Cls(color int) {
	c := i.palette.mapColor(color)
	for n := range i.pixels {
		i.pixels[n] = c
	}
}

func (i *Image) Pset(x, y, color int) {
	if !image.Pt(x, y).In(i.clip) {
		return
	}
	i.pixels[y*i.width+x] = i.palette.mapColor(color)
}

// Pget returns the color index at (x, y), or 0 outside the image.
func (i *Image) Pget(x, y int) int {
	if !InRange(x, 0, i.width) || !InRange(y, 0, i.height) {
		return 0
	}
	return int(i.pixels[y*i.width+x])
}

// Rect fills the given rectangle.
func (i *Image) Rect(x, y, w, h, color int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(i.clip)
	if r.Empty() {
		return
	}
	c := i.palette.mapColor(color)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := i.pixels[py*i.width : py*i.width+i.width]
		for px := r.Min.X; px < r.Max.X; px++ {
			row[px] = c
		}
	}
}

// RectB draws the one pixel wide border of the given rectangle.
func (i *Image) RectB(x, y, w, h, color int) {
	if w <= 0 || h <= 0 {
		return
	}
	i.Rect(x, y, w, 1, color)
	i.Rect(x, y+h-1, w, 1, color)
	i.Rect(x, y, 1, h, color)
	i.Rect(x+w-1, y, 1, h, color)
}

func (i *Image) Line(x0, y0, x1, y1, color int) {
	dx, dy := Abs(x1-x0), -Abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		i.Pset(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Blt copies the w*h region of src starting at (sx, sy) to (x, y). Negative
// w or h flips the copy horizontally or vertically. Source pixels equal to
// transparentColor are skipped; pass a negative transparentColor to copy all
// pixels. Copied pixels go through the destination's palette remap table.
func (i *Image) Blt(x, y int, src *Image, sx, sy, w, h, transparentColor int) {
	flipX, flipY := false, false
	if w < 0 {
		w, flipX = -w, true
	}
	if h < 0 {
		h, flipY = -h, true
	}
	for dy := 0; dy < h; dy++ {
		destY := y + dy
		if !InRange(destY, i.clip.Min.Y, i.clip.Max.Y) {
			continue
		}
		srcY := sy + dy
		if flipY {
			srcY = sy + h - 1 - dy
		}
		if !InRange(srcY, 0, src.height) {
			continue
		}
		for dx := 0; dx < w; dx++ {
			destX := x + dx
			if !InRange(destX, i.clip.Min.X, i.clip.Max.X) {
				continue
			}
			srcX := sx + dx
			if flipX {
				srcX = sx + w - 1 - dx
			}
			if !InRange(srcX, 0, src.width) {
				continue
			}
			c := src.pixels[srcY*src.width+srcX]
			if int(c) == transparentColor {
				continue
			}
			i.pixels[destY*i.width+destX] = i.palette.mapColor(int(c))
		}
	}
}

// SetRows writes pixel data given as rows of hex digits, one digit per
// pixel, starting at (x, y). All rows must have the same length.
func (i *Image) SetRows(x, y int, rows []string) error {
	for dy, row := range rows {
		for dx, r := range row {
			c, err := parseHexDigit(r)
			if err != nil {
				return fmt.Errorf("cannot parse image row %d (%v)", dy, err)
			}
			i.Pset(x+dx, y+dy, c)
		}
	}
	return nil
}

func parseHexDigit(r rune) (int, error) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), nil
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, nil
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, nil
	}
	return 0, fmt.Errorf("invalid hex digit %q", r)
}

// WriteRGBA resolves the image through its display palette into buf, four
// bytes per pixel in RGBA order. buf must hold at least 4*width*height bytes.
func (i *Image) WriteRGBA(buf []byte) {
	for n, c := range i.pixels {
		rgba := i.palette.Color(int(c))
		buf[4*n] = rgba.R
		buf[4*n+1] = rgba.G
		buf[4*n+2] = rgba.B
		buf[4*n+3] = rgba.A
	}
}

// ToNRGBA resolves the image through its display palette.
func (i *Image) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, i.width, i.height))
	for y := 0; y < i.height; y++ {
		for x := 0; x < i.width; x++ {
			img.Set(x, y, i.palette.Color(int(i.pixels[y*i.width+x])))
		}
	}
	return img
}
