// Command isomcut slices a gridded tileset contact-sheet image into clean,
// line-free megatile images -- the same "cut out each tile, re-glue
// without the gridlines" trick as the teacher's cmd/cutter, renamed and
// defaulted for ISOM's 32x32 megatile size instead of arbitrary sprite
// sheets.
package main

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io/ioutil"

	"github.com/alecthomas/kong"
)

const desc = `Cuts a gridded tileset contact sheet into clean megatile images, removing separator lines.`

var cli struct {
	Input string `short:"i" help:"input contact-sheet image (required)"`

	TileWidth  int `default:"32" help:"megatile width in px"`
	TileHeight int `default:"32" help:"megatile height in px"`
	LineWidth  int `default:"1" help:"grid line width in px to remove"`
}

func main() {
	kong.Parse(&cli, kong.Name("isomcut"), kong.Description(desc))

	imgdata, err := ioutil.ReadFile(cli.Input)
	if err != nil {
		panic(err)
	}

	in, _, err := image.Decode(bytes.NewBuffer(imgdata))
	if err != nil {
		panic(err)
	}

	bnds := in.Bounds()
	tilesHigh := (bnds.Max.Y - bnds.Min.Y) / (cli.TileHeight + cli.LineWidth)
	tilesWide := (bnds.Max.X - bnds.Min.X) / (cli.TileWidth + cli.LineWidth)

	dst := image.NewRGBA(image.Rect(0, 0, cli.TileWidth*tilesWide, cli.TileHeight*tilesHigh))

	for ty := 0; ty < tilesHigh; ty++ {
		for tx := 0; tx < tilesWide; tx++ {
			drect := image.Rect(tx*cli.TileWidth, ty*cli.TileHeight, (tx+1)*cli.TileWidth, (ty+1)*cli.TileHeight)
			spnt := image.Pt(1+cli.LineWidth+tx*(cli.TileWidth+cli.LineWidth), 2+cli.LineWidth+ty*(cli.TileHeight+cli.LineWidth))
			draw.Draw(dst, drect, in, spnt, draw.Src)
		}
	}

	if err := savePng(fmt.Sprintf("%s.cut.png", cli.Input), dst); err != nil {
		panic(err)
	}
}

func savePng(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	if err := png.Encode(buff, in); err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, buff.Bytes(), 0644)
}
