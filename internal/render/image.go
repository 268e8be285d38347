package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"svw.info/sudokulogic/internal/domain"
)

const (
	cellSize    = 50
	cellBorder  = 3
	blockBorder = 5
	imageSize   = 9*cellSize + 9*cellBorder + 4*blockBorder
	glyphScale  = 3
)

var (
	background = color.RGBA{A: 0xff}
	cellFill   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	givenInk   = color.RGBA{B: 0xcd, A: 0xff}
	solvedInk  = color.RGBA{A: 0xff}
)

// PNG rasterizes the board to a file: white cells on black rails,
// given digits in blue, solved-in digits in black.
type PNG struct {
	Path string
}

func NewPNG(path string) *PNG { return &PNG{Path: path} }

func (p *PNG) Render(b *domain.Board) error {
	img := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			x0 := c*cellSize + blockBorder*(c/3+1) + c*cellBorder
			y0 := r*cellSize + blockBorder*(r/3+1) + r*cellBorder
			cellRect := image.Rect(x0, y0, x0+cellSize, y0+cellSize)
			draw.Draw(img, cellRect, image.NewUniform(cellFill), image.Point{}, draw.Src)

			cell := domain.Cell{Row: r, Col: c}
			d := b.Value(cell)
			if d == 0 {
				continue
			}
			ink := solvedInk
			if b.Given(cell) {
				ink = givenInk
			}
			drawDigit(img, cellRect, d, ink)
		}
	}

	f, err := os.Create(p.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// drawDigit renders a digit glyph into a small staging image and
// scales it up into the middle of the cell.
func drawDigit(dst *image.RGBA, cell image.Rectangle, d uint8, ink color.Color) {
	face := basicfont.Face7x13
	glyph := image.NewRGBA(image.Rect(0, 0, face.Advance, face.Height))
	dr := &font.Drawer{
		Dst:  glyph,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	dr.DrawString(string(rune('0' + d)))

	w := face.Advance * glyphScale
	h := face.Height * glyphScale
	x0 := cell.Min.X + (cellSize-w)/2
	y0 := cell.Min.Y + (cellSize-h)/2
	xdraw.NearestNeighbor.Scale(dst, image.Rect(x0, y0, x0+w, y0+h), glyph, glyph.Bounds(), xdraw.Over, nil)
}
