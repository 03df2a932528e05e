// Package befunge implements a Befunge-93 execution engine: a fixed 25×80
// playfield of single-character commands traversed by a program counter
// that moves in four cardinal directions, mutating an int64 stack and an
// output buffer as it executes.
//
// The engine is a small state machine with some historical sharp edges,
// all preserved here:
//
//   - Toroidal addressing: the program counter wraps per axis at the
//     playfield edges. Runtime cell access through g and p does not wrap;
//     out-of-range coordinates fail.
//
//   - String mode: between quotes, every cell pushes its byte value
//     instead of executing, operator glyphs included.
//
//   - Self-modifying code: p rewrites playfield cells at runtime, so the
//     grid is plain mutable storage holding both code and data.
//
//   - Underflow as zero: popping or peeking an empty stack yields 0.
//
// The driver loads a program with Load, then calls Step in a loop or hands
// a continuation to Run, observing state between steps through read-only
// accessors. Execution is strictly single-threaded; the only blocking
// points are the two input commands, which read from an injectable source.
package befunge
