package befunge

import (
	"errors"
	"strings"
	"testing"
)

func TestPlayfieldStartsBlank(t *testing.T) {
	p := NewPlayfield()
	for _, pos := range [][2]int{{0, 0}, {Cols - 1, 0}, {0, Rows - 1}, {Cols - 1, Rows - 1}, {40, 12}} {
		if got := p.At(pos[0], pos[1]); got.Op != OpSpace {
			t.Errorf("cell (%d, %d): got opcode %d, want OpSpace", pos[0], pos[1], got.Op)
		}
	}
}

func TestPlayfieldLoad(t *testing.T) {
	p := NewPlayfield()
	if err := p.Load(strings.NewReader(">12@\nv^")); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cases := []struct {
		x, y int
		op   Opcode
	}{
		{0, 0, OpRight},
		{1, 0, OpNum},
		{2, 0, OpNum},
		{3, 0, OpEnd},
		{0, 1, OpDown},
		{1, 1, OpUp},
		{4, 0, OpSpace}, // past end of first line
		{2, 1, OpSpace}, // past end of second line
	}
	for _, c := range cases {
		if got := p.At(c.x, c.y); got.Op != c.op {
			t.Errorf("cell (%d, %d): got opcode %d, want %d", c.x, c.y, got.Op, c.op)
		}
	}
}

// A line longer than 80 columns continues on the next row; the newline then
// resets the cursor below it.
func TestPlayfieldLoadLongLine(t *testing.T) {
	p := NewPlayfield()
	line := strings.Repeat("1", Cols) + "2\n3"
	if err := p.Load(strings.NewReader(line)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := p.At(Cols-1, 0); got.Op != OpNum || got.Arg != 1 {
		t.Errorf("cell (%d, 0): got %+v, want digit 1", Cols-1, got)
	}
	if got := p.At(0, 1); got.Op != OpNum || got.Arg != 2 {
		t.Errorf("cell (0, 1): got %+v, want digit 2", got)
	}
	if got := p.At(0, 2); got.Op != OpNum || got.Arg != 3 {
		t.Errorf("cell (0, 2): got %+v, want digit 3", got)
	}
}

// More than 25 lines wraps back to the top and overwrites.
func TestPlayfieldLoadOverflowWraps(t *testing.T) {
	p := NewPlayfield()
	src := strings.Repeat("1\n", Rows) + "2"
	if err := p.Load(strings.NewReader(src)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := p.At(0, 0); got.Op != OpNum || got.Arg != 2 {
		t.Errorf("cell (0, 0): got %+v, want digit 2 after wrap", got)
	}
	if got := p.At(0, 1); got.Op != OpNum || got.Arg != 1 {
		t.Errorf("cell (0, 1): got %+v, want digit 1", got)
	}
}

func TestPlayfieldGetPutRoundTrip(t *testing.T) {
	p := NewPlayfield()
	want := Decode('*')
	if err := p.Put(79, 24, want); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err := p.Get(79, 24)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestPlayfieldBoundsChecks(t *testing.T) {
	p := NewPlayfield()
	cases := []struct {
		x, y int64
		axis string
	}{
		{int64(Cols), 0, "x"},
		{-1, 0, "x"},
		{0, int64(Rows), "y"},
		{0, -1, "y"},
		{1000, 1000, "x"}, // x is checked first
	}
	for _, c := range cases {
		_, err := p.Get(c.x, c.y)
		var coordErr *CoordinateError
		if !errors.As(err, &coordErr) {
			t.Errorf("Get(%d, %d): got %v, want CoordinateError", c.x, c.y, err)
			continue
		}
		if coordErr.Axis != c.axis {
			t.Errorf("Get(%d, %d): got axis %q, want %q", c.x, c.y, coordErr.Axis, c.axis)
		}

		if err := p.Put(c.x, c.y, Decode(' ')); !errors.As(err, &coordErr) {
			t.Errorf("Put(%d, %d): got %v, want CoordinateError", c.x, c.y, err)
		}
	}
}
