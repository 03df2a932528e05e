package befunge

// Playfield dimensions, fixed by the Befunge-93 definition.
const (
	Rows = 25
	Cols = 80
)

// counter is the program counter position. Movement wraps toroidally on each
// axis independently: stepping off an edge re-enters from the opposite edge
// on the same row or column.
type counter struct {
	x, y int
}

func (c *counter) reset() {
	c.x = 0
	c.y = 0
}

func (c *counter) right() {
	c.x = (c.x + 1) % Cols
}

func (c *counter) left() {
	if c.x == 0 {
		c.x = Cols - 1
	} else {
		c.x--
	}
}

func (c *counter) down() {
	c.y = (c.y + 1) % Rows
}

func (c *counter) up() {
	if c.y == 0 {
		c.y = Rows - 1
	} else {
		c.y--
	}
}
