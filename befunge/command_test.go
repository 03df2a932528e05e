package befunge

import "testing"

func TestDecodeOperators(t *testing.T) {
	cases := []struct {
		glyph byte
		op    Opcode
	}{
		{'+', OpAdd},
		{'-', OpSub},
		{'*', OpMul},
		{'/', OpDiv},
		{'%', OpMod},
		{'!', OpNot},
		{'`', OpGt},
		{'>', OpRight},
		{'<', OpLeft},
		{'^', OpUp},
		{'v', OpDown},
		{'?', OpRand},
		{'_', OpIfH},
		{'|', OpIfV},
		{'"', OpStr},
		{':', OpDup},
		{'\\', OpSwap},
		{'$', OpPop},
		{'.', OpOutI},
		{',', OpOutC},
		{'#', OpBri},
		{'g', OpGet},
		{'p', OpPut},
		{'&', OpInI},
		{'~', OpInC},
		{'@', OpEnd},
		{' ', OpSpace},
	}
	for _, c := range cases {
		cmd := Decode(c.glyph)
		if cmd.Op != c.op {
			t.Errorf("Decode(%q): got opcode %d, want %d", c.glyph, cmd.Op, c.op)
		}
		if cmd.Encode() != c.glyph {
			t.Errorf("Decode(%q).Encode(): got %q", c.glyph, cmd.Encode())
		}
	}
}

func TestDecodeDigits(t *testing.T) {
	for b := byte('0'); b <= '9'; b++ {
		cmd := Decode(b)
		if cmd.Op != OpNum {
			t.Errorf("Decode(%q): got opcode %d, want OpNum", b, cmd.Op)
		}
		if cmd.Arg != b-'0' {
			t.Errorf("Decode(%q): got digit %d, want %d", b, cmd.Arg, b-'0')
		}
		if cmd.Encode() != b {
			t.Errorf("Decode(%q).Encode(): got %q", b, cmd.Encode())
		}
	}
}

func TestDecodeLiteralFallback(t *testing.T) {
	for _, b := range []byte{'a', 'Z', '(', 0, 7, 200, 255} {
		cmd := Decode(b)
		if cmd.Op != OpChar {
			t.Errorf("Decode(%d): got opcode %d, want OpChar", b, cmd.Op)
		}
		if cmd.Arg != b {
			t.Errorf("Decode(%d): got payload %d", b, cmd.Arg)
		}
	}
}

// Decoding is total and encoding is its left inverse, so a second
// decode-encode round trip changes nothing for any byte.
func TestCodecIdempotent(t *testing.T) {
	for b := 0; b < 256; b++ {
		first := Decode(byte(b))
		second := Decode(first.Encode())
		if first != second {
			t.Errorf("byte %d: decode(encode(decode(b))) = %+v, want %+v", b, second, first)
		}
	}
}

func TestCommandString(t *testing.T) {
	if got := Decode('@').String(); got != "@" {
		t.Errorf("String: got %q, want %q", got, "@")
	}
	if got := Decode('7').String(); got != "7" {
		t.Errorf("String: got %q, want %q", got, "7")
	}
}
