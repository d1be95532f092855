// Command isomrender draws a debug contact sheet of a tileset's tile
// groups: one labeled swatch per group, colored by terrain type, so a
// freshly parsed CV5 can be eyeballed without a real megatile image set.
// The decode/resize pipeline is grounded on the teacher's cmd/tob; the
// swatch-and-label drawing uses fogleman/gg, a teacher dependency that
// cmd/tob itself declared but never actually imported.
package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"

	"github.com/alecthomas/kong"
	"github.com/fogleman/gg"
	"github.com/nfnt/resize"

	"github.com/voidshard/isom"
)

const desc = `Renders a labeled contact sheet of a tileset's tile groups for debugging.`

var cli struct {
	CV5   string `help:"path to the tileset's CV5 asset (required)"`
	Brush int    `default:"0" help:"BrushId of the tileset to render"`

	Output string `short:"o" default:"tileset.png" help:"output contact sheet path"`

	Columns   int `default:"16" help:"tile groups per row"`
	CellSize  int `default:"48" help:"swatch cell size in px, before scaling"`
	ScalePct  int `default:"100" help:"final image scale, in percent"`
}

// terrainColor maps a terrain type index to a stable, visually distinct
// swatch color -- enough to tell groups apart at a glance, not a palette
// matched to any real tileset art.
func terrainColor(terrainType uint16) color.Color {
	hue := float64(terrainType) * 47.0
	hue -= 360.0 * float64(int(hue)/360)
	return hsvToRGBA(hue, 0.55, 0.85)
}

func hsvToRGBA(h, s, v float64) color.Color {
	c := v * s
	x := c * (1 - abs(mod2(h/60.0)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}

func mod2(v float64) float64 {
	for v >= 2 {
		v -= 2
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func main() {
	kong.Parse(&cli, kong.Name("isomrender"), kong.Description(desc))

	tileGroups, err := isom.LoadTileGroupsFromCV5(cli.CV5)
	if err != nil {
		panic(err)
	}

	tileset, err := isom.LoadTileset(isom.BrushId(cli.Brush), tileGroups)
	if err != nil {
		panic(err)
	}

	rows := (len(tileset.TileGroups) + cli.Columns - 1) / cli.Columns
	canvasW := cli.Columns * cli.CellSize
	canvasH := rows * cli.CellSize

	dc := gg.NewContext(canvasW, canvasH)
	dc.SetColor(color.Black)
	dc.Clear()

	for i, group := range tileset.TileGroups {
		col := i % cli.Columns
		row := i / cli.Columns
		x := float64(col * cli.CellSize)
		y := float64(row * cli.CellSize)

		dc.SetColor(terrainColor(group.TerrainType))
		dc.DrawRectangle(x+1, y+1, float64(cli.CellSize)-2, float64(cli.CellSize)-2)
		dc.Fill()

		dc.SetColor(color.White)
		dc.DrawStringAnchored(fmt.Sprintf("%d", i), x+float64(cli.CellSize)/2, y+float64(cli.CellSize)/2, 0.5, 0.5)
	}

	out := image.Image(dc.Image())
	if cli.ScalePct != 100 {
		out = resize.Resize(
			uint(canvasW*cli.ScalePct/100),
			uint(canvasH*cli.ScalePct/100),
			out,
			resize.Lanczos3,
		)
	}

	if err := saveContactSheet(cli.Output, out); err != nil {
		panic(err)
	}
	fmt.Printf("wrote %s (%d tile groups)\n", cli.Output, len(tileset.TileGroups))
}

func saveContactSheet(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	if err := png.Encode(buff, in); err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, buff.Bytes(), 0644)
}
