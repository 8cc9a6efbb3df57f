package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/draw"

	"github.com/pixelplane/pixo/gfx"
	"github.com/pixelplane/pixo/resource"
)

var bank = flag.Int("bank", 0, "image bank to export")
var tilemap = flag.Int("tilemap", -1, "tilemap to export instead of a bank")
var scale = flag.Int("scale", 1, "integer scale factor for the exported image")

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatalf("Usage: %s [flags] <resource_file> <output_png>\n", os.Args[0])
	}
	filename, outname := flag.Arg(0), flag.Arg(1)
	res, err := resource.LoadFile(filename)
	if err != nil {
		log.Fatalf("Cannot load resource file %s (%v)", filename, err)
	}

	var canvas *gfx.Image
	if *tilemap >= 0 {
		if *tilemap >= len(res.Tilemaps) {
			log.Fatalf("Resource has no tilemap %d, %d tilemaps present", *tilemap, len(res.Tilemaps))
		}
		tm := res.Tilemaps[*tilemap]
		if tm.Bank < 0 || tm.Bank >= len(res.Banks) {
			log.Fatalf("Tilemap %d references missing bank %d", *tilemap, tm.Bank)
		}
		canvas = gfx.NewImage(tm.Width()*gfx.TileSize, tm.Height()*gfx.TileSize)
		canvas.Palette().SetColors(res.Colors)
		canvas.BltTilemap(0, 0, tm, 0, 0, tm.Width(), tm.Height(), res.Banks[tm.Bank], -1)
	} else {
		if *bank < 0 || *bank >= len(res.Banks) {
			log.Fatalf("Resource has no bank %d, %d banks present", *bank, len(res.Banks))
		}
		canvas = res.Banks[*bank]
	}

	src := canvas.ToNRGBA()
	out := src
	if *scale > 1 {
		bounds := src.Bounds()
		out = image.NewNRGBA(image.Rect(0, 0, bounds.Dx()**scale, bounds.Dy()**scale))
		draw.NearestNeighbor.Scale(out, out.Bounds(), src, bounds, draw.Src, nil)
	}

	file, err := os.Create(outname)
	if err != nil {
		log.Fatalf("Cannot create file %s (%v)", outname, err)
	}
	defer file.Close()
	if err := png.Encode(file, out); err != nil {
		log.Fatalf("Cannot encode png file %s (%v)", outname, err)
	}
}
