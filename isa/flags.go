package isa

// Flags is the control-signal bitset produced by the decoder and consumed
// by the ALU, the register file, and the bus. Exactly one ALUOP_* bit is
// set for any valid, non-halt instruction.
type Flags uint32

const (
	UseImm Flags = 1 << iota
	AluOpAdd
	AluOpSub
	AluOpMul
	AluOpShl
	AluOpShr
	AluOpSlt
	AluOpSeq
	AluOpSne
	AluOpSge
	RegWrite
	MemWrite
	MemRead
	Branch
	JalFlag

	// Valid is set by the decoder on any recognized, non-zero opcode. It
	// distinguishes "decoded a real instruction" from the all-zero halt
	// word, independent of whatever ALU/branch bits that instruction sets.
	Valid

	// BranchNE, BranchGE, and BranchLT mark which comparison a taken branch
	// used, mirroring the distinct ALUOP_{SEQ,SNE,SGE,SLT} bit already set
	// by Decode. They carry no additional behavior on their own; they exist
	// so a trace or disassembler can report the branch kind without
	// re-deriving it from the ALU op, the way the original instruction set
	// kept one flag bit per branch variant alongside the generic BRANCH
	// flag.
	BranchNE
	BranchGE
	BranchLT
)

// aluOpMask is the set of bits that are mutually exclusive: decode must set
// exactly one of these per valid, non-halt instruction.
const aluOpMask = AluOpAdd | AluOpSub | AluOpMul | AluOpShl | AluOpShr |
	AluOpSlt | AluOpSeq | AluOpSne | AluOpSge

// CountAluOps returns how many ALUOP_* bits are set, used to enforce the
// "exactly one" invariant.
func (f Flags) CountAluOps() int {
	return popcount(uint32(f & aluOpMask))
}

func popcount(v uint32) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}

// Has reports whether every bit in want is set in f.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}
