// Package resource reads and writes .pixres archives: zip files holding a
// single yaml document with the display palette, the image banks and the
// tilemaps of an application.
package resource

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/pixelplane/pixo/gfx"
)

const (
	FormatVersion    = 1
	FileExtension    = ".pixres"
	archiveEntryName = "resource.yaml"

	// maxDimension bounds bank and tilemap sizes read from archives, so a
	// malformed file cannot make Decode allocate absurd amounts of memory.
	maxDimension = 4096
)

type Resource struct {
	Colors   [gfx.NumColors]color.RGBA
	Banks    []*gfx.Image
	Tilemaps []*gfx.Tilemap
}

func New() *Resource {
	return &Resource{Colors: gfx.DefaultColors}
}

// NewBank adds an image bank with the resource's display colors and returns it.
func (r *Resource) NewBank(width, height int) *gfx.Image {
	bank := gfx.NewImage(width, height)
	bank.Palette().SetColors(r.Colors)
	r.Banks = append(r.Banks, bank)
	return bank
}

type resourceData struct {
	FormatVersion int           `yaml:"formatVersion"`
	Colors        []string      `yaml:"colors,omitempty"`
	Images        []imageData   `yaml:"images,omitempty"`
	Tilemaps      []tilemapData `yaml:"tilemaps,omitempty"`
}

type imageData struct {
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Data   []string `yaml:"data"`
}

type tilemapData struct {
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Bank   int      `yaml:"bank"`
	Data   []string `yaml:"data"`
}

// Decode parses the yaml document of a resource archive.
func Decode(data []byte) (*Resource, error) {
	var rd resourceData
	if err := yaml.Unmarshal(data, &rd); err != nil {
		return nil, fmt.Errorf("cannot parse resource data (%v)", err)
	}
	if rd.FormatVersion > FormatVersion {
		return nil, fmt.Errorf("resource format version %d is too new, supported up to %d",
			rd.FormatVersion, FormatVersion)
	}
	res := New()
	if len(rd.Colors) > 0 {
		if len(rd.Colors) != gfx.NumColors {
			return nil, fmt.Errorf("expected %d palette colors, got %d", gfx.NumColors, len(rd.Colors))
		}
		for i, s := range rd.Colors {
			c, err := parseColor(s)
			if err != nil {
				return nil, fmt.Errorf("cannot parse palette color %d (%v)", i, err)
			}
			res.Colors[i] = c
		}
	}
	for i, id := range rd.Images {
		if err := checkSize(id.Width, id.Height); err != nil {
			return nil, fmt.Errorf("cannot decode image bank %d (%v)", i, err)
		}
		bank := res.NewBank(id.Width, id.Height)
		if err := bank.SetRows(0, 0, id.Data); err != nil {
			return nil, fmt.Errorf("cannot decode image bank %d (%v)", i, err)
		}
	}
	for i, td := range rd.Tilemaps {
		if err := checkSize(td.Width, td.Height); err != nil {
			return nil, fmt.Errorf("cannot decode tilemap %d (%v)", i, err)
		}
		tilemap := gfx.NewTilemap(td.Width, td.Height)
		tilemap.Bank = td.Bank
		if err := tilemap.SetRows(0, 0, td.Data); err != nil {
			return nil, fmt.Errorf("cannot decode tilemap %d (%v)", i, err)
		}
		res.Tilemaps = append(res.Tilemaps, tilemap)
	}
	return res, nil
}

// Encode renders the resource as the yaml document stored in an archive.
func (r *Resource) Encode() ([]byte, error) {
	rd := resourceData{FormatVersion: FormatVersion}
	for _, c := range r.Colors {
		rd.Colors = append(rd.Colors, fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B))
	}
	for _, bank := range r.Banks {
		size := bank.Size()
		id := imageData{Width: size.X, Height: size.Y}
		for y := 0; y < size.Y; y++ {
			row := make([]byte, size.X)
			for x := 0; x < size.X; x++ {
				row[x] = "0123456789abcdef"[bank.Pget(x, y)]
			}
			id.Data = append(id.Data, string(row))
		}
		rd.Images = append(rd.Images, id)
	}
	for _, tilemap := range r.Tilemaps {
		td := tilemapData{Width: tilemap.Width(), Height: tilemap.Height(), Bank: tilemap.Bank}
		for y := 0; y < tilemap.Height(); y++ {
			var row []byte
			for x := 0; x < tilemap.Width(); x++ {
				tile := tilemap.Get(x, y)
				row = append(row, fmt.Sprintf("%02x%02x", tile.X, tile.Y)...)
			}
			td.Data = append(td.Data, string(row))
		}
		rd.Tilemaps = append(rd.Tilemaps, td)
	}
	data, err := yaml.Marshal(&rd)
	if err != nil {
		return nil, fmt.Errorf("cannot encode resource data (%v)", err)
	}
	return data, nil
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	return nil
}

func parseColor(s string) (color.RGBA, error) {
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("expected 6 hex digits, got %q", s)
	}
	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xff,
	}, nil
}

// Load reads a resource archive.
func Load(r io.ReaderAt, size int64) (*Resource, error) {
	archive, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("cannot open resource archive (%v)", err)
	}
	file, err := archive.Open(archiveEntryName)
	if err != nil {
		return nil, fmt.Errorf("not a resource archive, missing %s (%v)", archiveEntryName, err)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read resource data (%v)", err)
	}
	return Decode(data)
}

func LoadFile(filename string) (*Resource, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read file %s (%v)", filename, err)
	}
	return Load(bytes.NewReader(data), int64(len(data)))
}

// Save writes the resource as an archive.
func (r *Resource) Save(w io.Writer) error {
	data, err := r.Encode()
	if err != nil {
		return err
	}
	archive := zip.NewWriter(w)
	file, err := archive.Create(archiveEntryName)
	if err != nil {
		return fmt.Errorf("cannot create archive entry (%v)", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("cannot write archive entry (%v)", err)
	}
	if err := archive.Close(); err != nil {
		return fmt.Errorf("cannot finish archive (%v)", err)
	}
	return nil
}

func (r *Resource) SaveFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create file %s (%v)", filename, err)
	}
	defer file.Close()
	return r.Save(file)
}
