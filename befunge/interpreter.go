package befunge

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// Interpreter: the Befunge-93 execution engine
// ---------------------------------------------------------------------------

// Direction is the program counter's direction of travel.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

// StepResult reports whether execution should continue after a step.
type StepResult int

const (
	StepContinue StepResult = iota
	StepHalt
)

// Interpreter executes a Befunge-93 program one command at a time. It owns
// all execution state: the playfield, program counter, direction, stack,
// string-mode flag, RNG, and accumulated output. A single goroutine drives
// it; the only blocking points are the two input commands.
type Interpreter struct {
	field      *Playfield
	pc         counter
	dir        Direction
	stack      Stack
	stringMode bool
	rng        *rand.Rand
	output     strings.Builder
	input      io.Reader
}

// New creates an empty interpreter reading input commands from stdin and
// seeding the RNG from the clock. Use SetInput and SetRandSeed to override.
func New() *Interpreter {
	return &Interpreter{
		field: NewPlayfield(),
		dir:   DirRight,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		input: os.Stdin,
	}
}

// Load fills the playfield from source bytes. See Playfield.Load.
func (i *Interpreter) Load(r io.Reader) error {
	return i.field.Load(r)
}

// SetInput sets the byte source consumed by the & and ~ commands.
func (i *Interpreter) SetInput(r io.Reader) {
	i.input = r
}

// SetRandSeed reseeds the RNG used by the ? command, making runs
// reproducible.
func (i *Interpreter) SetRandSeed(seed int64) {
	i.rng = rand.New(rand.NewSource(seed))
}

// CurrentCommand returns the command under the program counter.
func (i *Interpreter) CurrentCommand() Command {
	return i.field.At(i.pc.x, i.pc.y)
}

// StackValues returns a copy of the stack contents, bottom first.
func (i *Interpreter) StackValues() []int64 {
	return i.stack.Values()
}

// Output returns the text produced so far by the . and , commands.
func (i *Interpreter) Output() string {
	return i.output.String()
}

// Position returns the program counter's (x, y) location.
func (i *Interpreter) Position() (int, int) {
	return i.pc.x, i.pc.y
}

// At returns the playfield cell at (x, y). Coordinates must be in bounds.
func (i *Interpreter) At(x, y int) Command {
	return i.field.At(x, y)
}

// binop pops two values and pushes f(x, y), where x was pushed before y.
func (i *Interpreter) binop(f func(x, y int64) int64) {
	y := i.stack.Pop()
	x := i.stack.Pop()
	i.stack.Push(f(x, y))
}

// Step executes the command under the program counter and advances it one
// cell in the current direction, wrapping at the playfield edges. It
// returns StepHalt when the program ends. Any error is fatal to the run.
func (i *Interpreter) Step() (StepResult, error) {
	cmd := i.field.At(i.pc.x, i.pc.y)

	// String mode reroutes dispatch entirely: every cell except the
	// closing quote pushes its byte value, operator glyphs included.
	if i.stringMode {
		if cmd.Op == OpStr {
			i.stringMode = false
		} else {
			i.stack.Push(int64(cmd.Encode()))
		}
		i.advance()
		return StepContinue, nil
	}

	switch cmd.Op {
	case OpAdd:
		i.binop(func(x, y int64) int64 { return x + y })
	case OpSub:
		i.binop(func(x, y int64) int64 { return x - y })
	case OpMul:
		i.binop(func(x, y int64) int64 { return x * y })
	case OpDiv:
		if i.stack.Peek() == 0 {
			return StepHalt, ErrDivideByZero
		}
		i.binop(func(x, y int64) int64 { return x / y })
	case OpMod:
		if i.stack.Peek() == 0 {
			return StepHalt, ErrDivideByZero
		}
		i.binop(func(x, y int64) int64 { return x % y })
	case OpNot:
		if i.stack.Pop() == 0 {
			i.stack.Push(1)
		} else {
			i.stack.Push(0)
		}
	case OpGt:
		i.binop(func(x, y int64) int64 {
			if x > y {
				return 1
			}
			return 0
		})
	case OpRight:
		i.dir = DirRight
	case OpLeft:
		i.dir = DirLeft
	case OpUp:
		i.dir = DirUp
	case OpDown:
		i.dir = DirDown
	case OpRand:
		i.dir = [4]Direction{DirUp, DirDown, DirLeft, DirRight}[i.rng.Intn(4)]
	case OpIfH:
		if i.stack.Pop() == 0 {
			i.dir = DirRight
		} else {
			i.dir = DirLeft
		}
	case OpIfV:
		if i.stack.Pop() == 0 {
			i.dir = DirDown
		} else {
			i.dir = DirUp
		}
	case OpStr:
		i.stringMode = true
	case OpDup:
		i.stack.Push(i.stack.Peek())
	case OpSwap:
		x := i.stack.Pop()
		y := i.stack.Pop()
		i.stack.Push(x)
		i.stack.Push(y)
	case OpPop:
		i.stack.Pop()
	case OpOutI:
		fmt.Fprintf(&i.output, "%d ", i.stack.Pop())
	case OpOutC:
		// The value is truncated to 8 bits and appended as the character
		// with that code point, so 128-255 produce valid text.
		i.output.WriteRune(rune(byte(i.stack.Pop())))
	case OpInI:
		v, err := i.readInt()
		if err != nil {
			return StepHalt, err
		}
		i.stack.Push(v)
	case OpInC:
		b, err := i.readByte()
		if err != nil {
			return StepHalt, err
		}
		i.stack.Push(int64(b))
	case OpBri:
		i.advance()
	case OpSpace:
		// no-op
	case OpNum:
		i.stack.Push(int64(cmd.Arg))
	case OpChar:
		// Literal cells only carry a numeric value when the byte itself
		// is a digit. Any other literal reached outside string mode is a
		// fault, preserved from the historical behavior.
		if cmd.Arg < '0' || cmd.Arg > '9' {
			return StepHalt, &LiteralError{Byte: cmd.Arg}
		}
		i.stack.Push(int64(cmd.Arg - '0'))
	case OpGet:
		y := i.stack.Pop()
		x := i.stack.Pop()
		c, err := i.field.Get(x, y)
		if err != nil {
			return StepHalt, fmt.Errorf("g command: %w", err)
		}
		i.stack.Push(int64(c.Encode()))
	case OpPut:
		// Coordinates are checked before the value is popped, so an
		// out-of-range coordinate wins over an oversized value.
		y := i.stack.Pop()
		x := i.stack.Pop()
		if err := checkBounds(x, y); err != nil {
			return StepHalt, fmt.Errorf("p command: %w", err)
		}
		v := i.stack.Pop()
		if v < 0 || v > 255 {
			return StepHalt, fmt.Errorf("p command: %w", &CellValueError{Value: v})
		}
		if err := i.field.Put(x, y, Decode(byte(v))); err != nil {
			return StepHalt, fmt.Errorf("p command: %w", err)
		}
	case OpEnd:
		return StepHalt, nil
	}

	i.advance()
	return StepContinue, nil
}

// Run resets the program counter, stack, and output, then steps until the
// program halts or the continuation returns false. The continuation is
// called after every non-terminal step with the 1-based step count; it may
// block driver-side but must not re-enter the interpreter. Any step
// failure is returned annotated with the failing position.
func (i *Interpreter) Run(cont func(*Interpreter, int) bool) error {
	i.pc.reset()
	i.stack.Reset()
	i.output.Reset()

	for n := 1; ; n++ {
		res, err := i.Step()
		if err != nil {
			return fmt.Errorf("step at (%d, %d): %w", i.pc.x, i.pc.y, err)
		}
		if res == StepHalt {
			return nil
		}
		if !cont(i, n) {
			return nil
		}
	}
}

// advance moves the program counter one cell in the current direction.
func (i *Interpreter) advance() {
	switch i.dir {
	case DirRight:
		i.pc.right()
	case DirLeft:
		i.pc.left()
	case DirUp:
		i.pc.up()
	case DirDown:
		i.pc.down()
	}
}

// readByte reads a single byte from the input source.
func (i *Interpreter) readByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(i.input, buf[:]); err != nil {
		return 0, fmt.Errorf("reading input byte: %w", err)
	}
	return buf[0], nil
}

// readInt reads bytes until a space and parses the accumulated text as a
// decimal integer. A read failure before the space, or text that does not
// parse, aborts the run.
func (i *Interpreter) readInt() (int64, error) {
	var sb strings.Builder
	for {
		b, err := i.readByte()
		if err != nil {
			return 0, err
		}
		if b == ' ' {
			break
		}
		sb.WriteByte(b)
	}

	v, err := strconv.ParseInt(sb.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q as a number: %w", sb.String(), err)
	}
	return v, nil
}
