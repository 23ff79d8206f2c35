package vm

import "yarisc32/isa"

// DecodedInstruction is the decoder's output: the control-flag vector plus
// the operand addresses and immediate needed to execute one instruction.
type DecodedInstruction struct {
	Opcode isa.Opcode
	Flags  isa.Flags
	Rd     int
	Rs1    int
	Rs2    int
	Imm    int32
}

// Decode turns a 32-bit instruction word into a control-flag vector plus
// operand addresses, per §4.1. It never returns an error itself: both
// NO_OP and an unrecognized opcode decode to a zero-flag instruction. The
// two are told apart by Opcode and the Valid flag: Opcode == isa.NoOp is
// the halt sentinel, while a non-NoOp opcode with Valid unset is an
// unrecognized instruction, which the DECODE stage reports as an
// InvalidInstructionError rather than halting silently.
func Decode(word uint32) DecodedInstruction {
	opcode := isa.Opcode((word >> isa.OpcodeShift) & isa.OpcodeMask)
	rd := int((word >> isa.RdShift) & isa.RegMask)
	rs1 := int((word >> isa.Rs1Shift) & isa.RegMask)
	rs2 := int((word >> isa.Rs2Shift) & isa.RegMask)
	imm := isa.SignExtend11(word >> isa.ImmShift)

	d := DecodedInstruction{Opcode: opcode, Rd: rd, Rs1: rs1, Rs2: rs2, Imm: imm}

	switch opcode {
	case isa.NoOp:
		return d // flags stay zero: the halt sentinel
	case isa.Add:
		d.Flags = isa.AluOpAdd | isa.RegWrite
	case isa.Sub:
		d.Flags = isa.AluOpSub | isa.RegWrite
	case isa.Mul:
		d.Flags = isa.AluOpMul | isa.RegWrite
	case isa.Shl:
		d.Flags = isa.AluOpShl | isa.RegWrite
	case isa.Shr:
		d.Flags = isa.AluOpShr | isa.RegWrite
	case isa.Slt:
		d.Flags = isa.AluOpSlt | isa.RegWrite
	case isa.AddI:
		d.Flags = isa.AluOpAdd | isa.RegWrite | isa.UseImm
	case isa.SubI:
		d.Flags = isa.AluOpSub | isa.RegWrite | isa.UseImm
	case isa.MulI:
		d.Flags = isa.AluOpMul | isa.RegWrite | isa.UseImm
	case isa.ShlI:
		d.Flags = isa.AluOpShl | isa.RegWrite | isa.UseImm
	case isa.ShrI:
		d.Flags = isa.AluOpShr | isa.RegWrite | isa.UseImm
	case isa.SltI:
		d.Flags = isa.AluOpSlt | isa.RegWrite | isa.UseImm
	case isa.Lw:
		d.Flags = isa.RegWrite | isa.AluOpAdd | isa.UseImm | isa.MemRead
	case isa.Sw:
		d.Flags = isa.MemWrite | isa.AluOpAdd | isa.UseImm
	case isa.Beq:
		d.Flags = isa.Branch | isa.AluOpSeq
	case isa.Bne:
		d.Flags = isa.Branch | isa.AluOpSne | isa.BranchNE
	case isa.Bge:
		d.Flags = isa.Branch | isa.AluOpSge | isa.BranchGE
	case isa.Blt:
		d.Flags = isa.Branch | isa.AluOpSlt | isa.BranchLT
	case isa.Jal:
		d.Flags = isa.Branch | isa.AluOpSeq | isa.JalFlag
		d.Imm = isa.SignExtend24(word >> isa.JalImmShift)
		d.Rd, d.Rs1, d.Rs2 = 0, 0, 0
	default:
		return d // unrecognized opcode: flags stay zero, Valid unset
	}

	d.Flags |= isa.Valid

	// For immediate-form instructions the rs2 field overlaps the low bits of
	// the immediate, so it names no register.
	if d.Flags.Has(isa.UseImm) {
		d.Rs2 = 0
	}

	// Operand-slot remap for instructions with no destination register
	// (§4.1, §9): the field in the rd position is actually rs1, and the
	// field in the rs1 position is actually rs2. JAL is excluded: its wide
	// immediate field overlaps rd/rs1/rs2 entirely, and it was already
	// forced to rs1=rs2=0 above.
	if opcode.NoDestRegister() {
		d.Rs1, d.Rs2 = d.Rd, d.Rs1
		d.Rd = 0
	}

	return d
}
