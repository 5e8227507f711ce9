package tape

// Cell is the capability a tape cell type provides. Arithmetic wraps
// around the cell's value range; the zero value is the default cell.
type Cell[C any] interface {
	comparable
	Increment() C      // Value plus one, wrapping at the maximum.
	Decrement() C      // Value minus one, wrapping at zero.
	Byte() byte        // Low eight bits, for output.
	FromByte(b byte) C // Cell holding an input byte.
}

// Byte is an 8-bit unsigned cell.
type Byte uint8

func (b Byte) Increment() Byte       { return b + 1 }
func (b Byte) Decrement() Byte       { return b - 1 }
func (b Byte) Byte() byte            { return byte(b) }
func (Byte) FromByte(value byte) Byte { return Byte(value) }

// Word is a 16-bit unsigned cell.
type Word uint16

func (w Word) Increment() Word       { return w + 1 }
func (w Word) Decrement() Word       { return w - 1 }
func (w Word) Byte() byte            { return byte(w & 0xff) }
func (Word) FromByte(value byte) Word { return Word(value) }
