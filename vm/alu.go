package vm

import (
	"fmt"

	"yarisc32/isa"
)

// ALU is a pure combinational function of the control-flag vector and two
// operands. Exactly one ALUOP_* flag must be set, enforced via
// Flags.CountAluOps; zero or more than one is an InvalidInstructionError.
// Arithmetic wraps at the machine's native word width; shift amounts are
// masked to the low 5 bits (log2(32)) rather than raising an error, per
// §4.3's portability note.
func ALU(flags isa.Flags, rs1, rs2 uint32, imm int32) (uint32, error) {
	if n := flags.CountAluOps(); n != 1 {
		return 0, &InvalidInstructionError{Reason: fmt.Sprintf("expected exactly one ALUOP flag, got %d", n)}
	}

	if flags&isa.UseImm != 0 {
		rs2 = uint32(imm)
	}

	switch {
	case flags&isa.AluOpAdd != 0:
		return rs1 + rs2, nil
	case flags&isa.AluOpSub != 0:
		return rs1 - rs2, nil
	case flags&isa.AluOpMul != 0:
		return rs1 * rs2, nil
	case flags&isa.AluOpShl != 0:
		return rs1 << (rs2 & (isa.WordBits - 1)), nil
	case flags&isa.AluOpShr != 0:
		return rs1 >> (rs2 & (isa.WordBits - 1)), nil
	case flags&isa.AluOpSlt != 0:
		return boolWord(int32(rs1) < int32(rs2)), nil
	case flags&isa.AluOpSeq != 0:
		return boolWord(rs1 == rs2), nil
	case flags&isa.AluOpSne != 0:
		return boolWord(rs1 != rs2), nil
	default: // flags&isa.AluOpSge != 0; CountAluOps already confirmed exactly one bit is set
		return boolWord(int32(rs1) >= int32(rs2)), nil
	}
}

func boolWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
