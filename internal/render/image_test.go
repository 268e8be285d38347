package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokulogic/internal/domain"
)

func renderToImage(t *testing.T, b *domain.Board) image.Image {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, NewPNG(path).Render(b))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func countInRect(img image.Image, rect image.Rectangle, want color.RGBA) int {
	n := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if rgba(img.At(x, y)) == want {
				n++
			}
		}
	}
	return n
}

// cellRect mirrors the renderer's cell geometry.
func cellRect(r, c int) image.Rectangle {
	x0 := c*cellSize + blockBorder*(c/3+1) + c*cellBorder
	y0 := r*cellSize + blockBorder*(r/3+1) + r*cellBorder
	return image.Rect(x0, y0, x0+cellSize, y0+cellSize)
}

func TestImageGeometryAndRails(t *testing.T) {
	var values [9][9]uint8
	img := renderToImage(t, domain.NewBoard(values))

	assert.Equal(t, image.Rect(0, 0, 497, 497), img.Bounds())
	assert.Equal(t, background, rgba(img.At(0, 0)))
	assert.Equal(t, background, rgba(img.At(496, 496)))

	// empty cells are solid white
	rect := cellRect(4, 4)
	assert.Equal(t, rect.Dx()*rect.Dy(), countInRect(img, rect, cellFill))
}

func TestImageInkDistinguishesGivens(t *testing.T) {
	var values [9][9]uint8
	values[0][0] = 5
	b := domain.NewBoard(values)
	b.Assign(domain.Cell{Row: 8, Col: 8}, 3)

	img := renderToImage(t, b)

	assert.Positive(t, countInRect(img, cellRect(0, 0), givenInk))
	assert.Zero(t, countInRect(img, cellRect(0, 0), solvedInk))

	assert.Positive(t, countInRect(img, cellRect(8, 8), solvedInk))
	assert.Zero(t, countInRect(img, cellRect(8, 8), givenInk))
}
