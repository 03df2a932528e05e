package befunge

import (
	"fmt"
	"io"
)

// Playfield is the fixed 25×80 grid of commands. It holds both code and
// data: the p command rewrites cells at runtime, so the grid is plain
// mutable storage with no distinction between the two.
type Playfield struct {
	cells [Rows][Cols]Command
}

// NewPlayfield returns an empty playfield with every cell blank.
func NewPlayfield() *Playfield {
	p := &Playfield{}
	for y := range p.cells {
		for x := range p.cells[y] {
			p.cells[y][x] = Command{Op: OpSpace}
		}
	}
	return p
}

// Load fills the playfield from source bytes. A newline resets the column
// to 0 and advances the row without consuming a cell; every other byte is
// decoded and stored, advancing left to right, top to bottom. Input longer
// than the grid wraps around and overwrites earlier rows. Load fails only
// when the read fails, never on content.
func (p *Playfield) Load(r io.Reader) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading program: %w", err)
	}

	x, y := 0, 0
	for _, b := range buf {
		if b == '\n' {
			x = 0
			y = (y + 1) % Rows
			continue
		}

		p.cells[y][x] = Decode(b)

		x = (x + 1) % Cols
		if x == 0 {
			y = (y + 1) % Rows
		}
	}

	return nil
}

// At returns the cell at (x, y). Coordinates must be in bounds; the
// interpreter and renderer only index within the fixed grid.
func (p *Playfield) At(x, y int) Command {
	return p.cells[y][x]
}

// checkBounds validates a runtime coordinate pair, x first.
func checkBounds(x, y int64) error {
	if x < 0 || x >= Cols {
		return &CoordinateError{Axis: "x", Value: x}
	}
	if y < 0 || y >= Rows {
		return &CoordinateError{Axis: "y", Value: y}
	}
	return nil
}

// Get returns the cell at a runtime coordinate pair, failing with a
// CoordinateError when either value is out of range.
func (p *Playfield) Get(x, y int64) (Command, error) {
	if err := checkBounds(x, y); err != nil {
		return Command{}, err
	}
	return p.cells[y][x], nil
}

// Put overwrites the cell at a runtime coordinate pair, with the same
// bounds checking as Get. This is the self-modifying-code path.
func (p *Playfield) Put(x, y int64, c Command) error {
	if err := checkBounds(x, y); err != nil {
		return err
	}
	p.cells[y][x] = c
	return nil
}
