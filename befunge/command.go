package befunge

// ---------------------------------------------------------------------------
// Command: the Befunge-93 instruction set
// ---------------------------------------------------------------------------

// Opcode identifies a playfield instruction.
type Opcode byte

const (
	// Blank cell; executes as a no-op.
	OpSpace Opcode = iota

	// Arithmetic and logic
	OpAdd // + pop y, x; push x + y
	OpSub // - pop y, x; push x - y
	OpMul // * pop y, x; push x * y
	OpDiv // / pop y, x; push x / y
	OpMod // % pop y, x; push x % y
	OpNot // ! pop x; push 1 if x is 0, else 0
	OpGt  // ` pop y, x; push 1 if x > y, else 0

	// Program counter direction
	OpRight // > move right
	OpLeft  // < move left
	OpUp    // ^ move up
	OpDown  // v move down
	OpRand  // ? move in a random direction
	OpIfH   // _ pop x; move right if x is 0, else left
	OpIfV   // | pop x; move down if x is 0, else up

	// Stack manipulation
	OpStr  // " toggle string mode
	OpDup  // : duplicate top of stack
	OpSwap // \ swap top two stack values
	OpPop  // $ discard top of stack

	// I/O
	OpOutI // . pop x; output as decimal plus a trailing space
	OpOutC // , pop x; output as a single character
	OpInI  // & read a space-terminated integer and push it
	OpInC  // ~ read one character and push its value

	// Playfield access
	OpBri // # skip the next cell
	OpGet // g pop y, x; push the cell value at (x, y)
	OpPut // p pop y, x, v; store v into the cell at (x, y)

	// Termination
	OpEnd // @ halt

	// Literals
	OpNum  // 0-9 push the digit value (held in Arg)
	OpChar // any other byte (held in Arg)
)

// Command is a single playfield cell. For OpNum, Arg holds the digit value
// 0-9; for OpChar, Arg holds the raw byte; all other opcodes ignore Arg.
type Command struct {
	Op  Opcode
	Arg byte
}

// opGlyphs maps each fixed opcode to its source glyph. OpNum and OpChar are
// handled separately since they carry a payload.
var opGlyphs = map[Opcode]byte{
	OpSpace: ' ',
	OpAdd:   '+',
	OpSub:   '-',
	OpMul:   '*',
	OpDiv:   '/',
	OpMod:   '%',
	OpNot:   '!',
	OpGt:    '`',
	OpRight: '>',
	OpLeft:  '<',
	OpUp:    '^',
	OpDown:  'v',
	OpRand:  '?',
	OpIfH:   '_',
	OpIfV:   '|',
	OpStr:   '"',
	OpDup:   ':',
	OpSwap:  '\\',
	OpPop:   '$',
	OpOutI:  '.',
	OpOutC:  ',',
	OpInI:   '&',
	OpInC:   '~',
	OpBri:   '#',
	OpGet:   'g',
	OpPut:   'p',
	OpEnd:   '@',
}

// glyphOps is the inverse of opGlyphs, built at init.
var glyphOps [256]Opcode

func init() {
	for i := range glyphOps {
		glyphOps[i] = OpChar
	}
	for op, g := range opGlyphs {
		glyphOps[g] = op
	}
	for d := byte('0'); d <= '9'; d++ {
		glyphOps[d] = OpNum
	}
}

// Decode maps a source byte to its Command. Decoding is total: digits become
// OpNum, the fixed glyphs become their opcode, and every other byte degrades
// to an OpChar literal rather than failing.
func Decode(b byte) Command {
	switch op := glyphOps[b]; op {
	case OpNum:
		return Command{Op: OpNum, Arg: b - '0'}
	case OpChar:
		return Command{Op: OpChar, Arg: b}
	default:
		return Command{Op: op}
	}
}

// Encode maps a Command back to its source byte. It is the left inverse of
// Decode for every value Decode produces. Encoding an OpNum with Arg > 9 is
// undefined; Decode never constructs one.
func (c Command) Encode() byte {
	switch c.Op {
	case OpNum:
		return '0' + c.Arg
	case OpChar:
		return c.Arg
	default:
		return opGlyphs[c.Op]
	}
}

// String returns the command's glyph as a one-character string.
func (c Command) String() string {
	return string(rune(c.Encode()))
}
