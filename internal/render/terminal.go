// Package render turns a final board into human-facing output: a
// box-ruled terminal grid and a PNG image that distinguishes given
// digits from solved-in ones.
package render

import (
	"fmt"
	"io"

	"svw.info/sudokulogic/internal/domain"
)

const rule = "+-------+-------+-------+"

// Terminal writes a box-ruled ASCII grid, '.' for unassigned cells.
type Terminal struct {
	W io.Writer
}

func NewTerminal(w io.Writer) *Terminal { return &Terminal{W: w} }

func (t *Terminal) Render(b *domain.Board) error {
	if _, err := fmt.Fprintln(t.W, rule); err != nil {
		return err
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c%3 == 0 {
				if _, err := fmt.Fprint(t.W, "| "); err != nil {
					return err
				}
			}
			ch := "."
			if d := b.Value(domain.Cell{Row: r, Col: c}); d != 0 {
				ch = fmt.Sprintf("%d", d)
			}
			if _, err := fmt.Fprintf(t.W, "%s ", ch); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(t.W, "|"); err != nil {
			return err
		}
		if r%3 == 2 {
			if _, err := fmt.Fprintln(t.W, rule); err != nil {
				return err
			}
		}
	}
	return nil
}
