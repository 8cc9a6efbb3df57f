package gfx

import (
	"fmt"
	"strconv"
)

// TileSize is the edge length in pixels of one tilemap cell.
const TileSize = 8

// Tile addresses an 8x8 cell of an image bank by cell coordinates.
type Tile struct {
	X, Y uint8
}

// Tilemap is a grid of tiles referencing cells of an image bank. Bank is the
// index of that bank inside the owning resource; the map itself does not
// hold image data.
type Tilemap struct {
	width, height int
	Bank          int
	tiles         []Tile
}

func NewTilemap(width, height int) *Tilemap {
	return &Tilemap{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

func (t *Tilemap) Width() int  { return t.width }
func (t *Tilemap) Height() int { return t.height }

func (t *Tilemap) Get(x, y int) Tile {
	if !InRange(x, 0, t.width) || !InRange(y, 0, t.height) {
		return Tile{}
	}
	return t.tiles[y*t.width+x]
}

func (t *Tilemap) Set(x, y int, tile Tile) {
	if !InRange(x, 0, t.width) || !InRange(y, 0, t.height) {
		return
	}
	t.tiles[y*t.width+x] = tile
}

// SetRows writes tile data given as rows of hex digits, four digits per tile
// ("XXYY", bank cell X then cell Y), starting at (x, y).
func (t *Tilemap) SetRows(x, y int, rows []string) error {
	for dy, row := range rows {
		if len(row)%4 != 0 {
			return fmt.Errorf("cannot parse tilemap row %d, length %d is not a multiple of 4", dy, len(row))
		}
		for dx := 0; dx*4 < len(row); dx++ {
			value, err := strconv.ParseUint(row[dx*4:dx*4+4], 16, 16)
			if err != nil {
				return fmt.Errorf("cannot parse tilemap row %d (%v)", dy, err)
			}
			t.Set(x+dx, y+dy, Tile{X: uint8(value >> 8), Y: uint8(value)})
		}
	}
	return nil
}

// BltTilemap draws the tw*th tile region of tm starting at tile (tx, ty) to
// pixel position (x, y), sampling tiles from the bank image.
func (i *Image) BltTilemap(x, y int, tm *Tilemap, tx, ty, tw, th int, bank *Image, transparentColor int) {
	for dy := 0; dy < th; dy++ {
		for dx := 0; dx < tw; dx++ {
			tile := tm.Get(tx+dx, ty+dy)
			i.Blt(x+dx*TileSize, y+dy*TileSize, bank,
				int(tile.X)*TileSize, int(tile.Y)*TileSize,
				TileSize, TileSize, transparentColor)
		}
	}
}
