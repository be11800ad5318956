// machine.go: the RPN stack machine
//
// What this file does
// -------------------
// A Machine holds the operand stack, the single memory slot, the store
// history, and the dump snapshots for one evaluation. Eval tokenizes and
// runs a whole expression; Run consumes an already-scanned token sequence.
// Both reset all machine state on entry, so every evaluation is independent:
// nothing stored or pushed in one call is visible to the next.
//
// The machine performs no I/O. The "?" and "&" operators append Snapshot
// values which the caller fetches with Dumps after the call (a failed call
// still keeps the snapshots taken before the error).
//
// Public API
// ----------
//	New() *Machine
//	Eval(src) (float64, []Snapshot, error)      package-level, fresh machine
//	(*Machine) Eval(src) (float64, error)
//	(*Machine) Run(tokens) (float64, error)
//	(*Machine) Dumps() []Snapshot
//	(*Machine) Push / Peek / Depth / Stack / Clear
package rpn

import "math"

// SnapshotKind says which dump operator produced a Snapshot.
type SnapshotKind int

const (
	// StackDump is a "?" snapshot: the operand stack, bottom to top.
	StackDump SnapshotKind = iota
	// MemoryDump is a "&" snapshot: every value stored so far, oldest first.
	MemoryDump
)

// Snapshot is one introspection dump emitted during an evaluation.
type Snapshot struct {
	Kind   SnapshotKind
	Index  int // token ordinal of the dump operator
	Values []float64
}

// Machine evaluates RPN token sequences. Not safe for concurrent use; for
// concurrent evaluation give each goroutine its own machine, or use the
// package-level Eval.
type Machine struct {
	stack   []float64
	mem     float64
	memSet  bool
	history []float64
	dumps   []Snapshot
}

// New creates an empty machine.
func New() *Machine { return &Machine{} }

// Eval evaluates one expression on a fresh machine and returns the result,
// the snapshots emitted by "?" and "&", and the first error encountered.
func Eval(src string) (float64, []Snapshot, error) {
	m := New()
	v, err := m.Eval(src)
	return v, m.Dumps(), err
}

// Eval tokenizes src and evaluates it. All machine state is reset first.
func (m *Machine) Eval(src string) (float64, error) {
	m.Clear()
	tokens, err := NewLexer(src).Scan()
	if err != nil {
		return 0, err
	}
	return m.Run(tokens)
}

// Run evaluates a complete token sequence. All machine state is reset
// first. Evaluation is fail-fast: the first error aborts and is returned,
// and no partial result accompanies it. On success exactly one value must
// remain on the stack; anything else is an ErrMalformedExpression naming
// the leftover count.
func (m *Machine) Run(tokens []Token) (float64, error) {
	m.Clear()
	for _, tok := range tokens {
		if err := m.step(tok); err != nil {
			return 0, err
		}
	}
	if len(m.stack) != 1 {
		end := Token{Line: 1, Col: 1}
		if n := len(tokens); n > 0 {
			end = tokens[n-1]
		}
		return 0, &Error{
			Kind:     ErrMalformedExpression,
			Index:    end.Index,
			Line:     end.Line,
			Col:      end.Col,
			Leftover: len(m.stack),
		}
	}
	return m.stack[0], nil
}

// step applies one token to the machine.
func (m *Machine) step(tok Token) error {
	switch tok.Type {
	case EOF:
		return nil

	case NUMBER:
		m.Push(tok.Value)
		return nil

	case PLUS, MINUS, MULT, DIV, POW, EXCH:
		if len(m.stack) < 2 {
			return underflow(tok, len(m.stack), 2)
		}
		b := m.pop()
		a := m.pop()
		switch tok.Type {
		case PLUS:
			m.Push(a + b)
		case MINUS:
			m.Push(a - b)
		case MULT:
			m.Push(a * b)
		case DIV:
			if b == 0 {
				return errAt(ErrDivisionByZero, tok)
			}
			m.Push(a / b)
		case POW:
			m.Push(math.Pow(a, b))
		case EXCH:
			m.Push(b)
			m.Push(a)
		}
		return nil

	case STORE:
		if len(m.stack) < 1 {
			return underflow(tok, 0, 1)
		}
		v := m.pop()
		m.mem, m.memSet = v, true
		m.history = append(m.history, v)
		return nil

	case RECALL:
		if !m.memSet {
			return errAt(ErrMemoryUndefined, tok)
		}
		m.Push(m.mem)
		return nil

	case STACKDUMP:
		m.dumps = append(m.dumps, Snapshot{
			Kind:   StackDump,
			Index:  tok.Index,
			Values: append([]float64(nil), m.stack...),
		})
		return nil

	case MEMDUMP:
		m.dumps = append(m.dumps, Snapshot{
			Kind:   MemoryDump,
			Index:  tok.Index,
			Values: append([]float64(nil), m.history...),
		})
		return nil

	default:
		return errAt(ErrUnknownOperator, tok)
	}
}

func underflow(tok Token, have, need int) *Error {
	return &Error{
		Kind:   ErrStackUnderflow,
		Lexeme: tok.Lexeme,
		Index:  tok.Index,
		Line:   tok.Line,
		Col:    tok.Col,
		Have:   have,
		Need:   need,
	}
}

func errAt(kind ErrorKind, tok Token) *Error {
	return &Error{
		Kind:   kind,
		Lexeme: tok.Lexeme,
		Index:  tok.Index,
		Line:   tok.Line,
		Col:    tok.Col,
	}
}

// ----- manual stack surface -----

// Push puts v on top of the stack.
func (m *Machine) Push(v float64) { m.stack = append(m.stack, v) }

// pop removes and returns the top value. Callers check the depth first.
func (m *Machine) pop() float64 {
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v
}

// Peek returns the top value without removing it.
func (m *Machine) Peek() (float64, bool) {
	if len(m.stack) == 0 {
		return 0, false
	}
	return m.stack[len(m.stack)-1], true
}

// Depth returns the number of values on the stack.
func (m *Machine) Depth() int { return len(m.stack) }

// Stack returns a copy of the stack, bottom to top.
func (m *Machine) Stack() []float64 {
	return append([]float64(nil), m.stack...)
}

// Dumps returns the snapshots emitted by the most recent evaluation.
func (m *Machine) Dumps() []Snapshot {
	return append([]Snapshot(nil), m.dumps...)
}

// Clear resets the machine to its initial state: empty stack, undefined
// memory, empty history, no snapshots.
func (m *Machine) Clear() {
	m.stack = nil
	m.mem = 0
	m.memSet = false
	m.history = nil
	m.dumps = nil
}
