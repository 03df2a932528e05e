package befunge

// Stack is the interpreter's LIFO of int64 values. Befunge-93 defines stack
// underflow as yielding zero, so Pop and Peek never fail.
type Stack struct {
	values []int64
}

// Push adds a value on top of the stack.
func (s *Stack) Push(v int64) {
	s.values = append(s.values, v)
}

// Pop removes and returns the top value, or 0 if the stack is empty.
func (s *Stack) Pop() int64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v
}

// Peek returns the top value without removing it, or 0 if the stack is empty.
func (s *Stack) Peek() int64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return len(s.values)
}

// Reset discards all values.
func (s *Stack) Reset() {
	s.values = s.values[:0]
}

// Values returns a copy of the stack contents, bottom first.
func (s *Stack) Values() []int64 {
	out := make([]int64, len(s.values))
	copy(out, s.values)
	return out
}
