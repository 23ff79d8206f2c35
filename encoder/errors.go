package encoder

import "fmt"

// OverflowError reports that an immediate value does not fit in its
// instruction-word field, one of the assembler's AssemblyError causes
// (§4.8, §7).
type OverflowError struct {
	Value int32
	Bits  int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("immediate %d does not fit in %d-bit field", e.Value, e.Bits)
}
