// Package encoder packs instruction fields into 32-bit words. It is the
// exact inverse of vm.Decode, and is used by the assembler to emit a binary
// image and by tests to synthesize instruction words directly.
package encoder

import "yarisc32/isa"

func pack(opcode isa.Opcode, rd, rs1, rs2 int, imm uint32) uint32 {
	return uint32(opcode)&isa.OpcodeMask |
		(uint32(rd)&isa.RegMask)<<isa.RdShift |
		(uint32(rs1)&isa.RegMask)<<isa.Rs1Shift |
		(uint32(rs2)&isa.RegMask)<<isa.Rs2Shift |
		(imm&isa.ImmMask)<<isa.ImmShift
}

// RType encodes an R-type instruction: rd, rs1, rs2, no immediate.
func RType(opcode isa.Opcode, rd, rs1, rs2 int) uint32 {
	return pack(opcode, rd, rs1, rs2, 0)
}

// IType encodes an I-type instruction: rd, rs1, immediate. The immediate is
// masked to its 11-bit field; callers that need overflow detection should
// call CheckImm11 first.
func IType(opcode isa.Opcode, rd, rs1 int, imm int32) uint32 {
	return pack(opcode, rd, rs1, 0, isa.MaskImm11(imm))
}

// BType encodes a branch instruction: rs1, rs2, relative immediate. Per the
// operand-slot remap (§4.1, §9), the semantic rs1/rs2 are packed into the
// word's rd/rs1 field positions, with the word's rs2 field left zero.
func BType(opcode isa.Opcode, rs1, rs2 int, imm int32) uint32 {
	return pack(opcode, rs1, rs2, 0, isa.MaskImm11(imm))
}

// SW encodes a store: base register rs1, value register rs2, offset
// immediate. Like BType, this applies the no-destination-register remap:
// rs1 packs into the word's rd field, rs2 into the word's rs1 field.
func SW(rs1, rs2 int, imm int32) uint32 {
	return pack(isa.Sw, rs1, rs2, 0, isa.MaskImm11(imm))
}

// LW encodes a load: destination rd, base register rs1, offset immediate.
// LW has a destination register, so no remap applies; its shape is
// identical to IType.
func LW(rd, rs1 int, imm int32) uint32 {
	return pack(isa.Lw, rd, rs1, 0, isa.MaskImm11(imm))
}

// JAL encodes a jump-and-link with a 24-bit relative immediate occupying
// bits 7-30; it carries no register operands.
func JAL(imm int32) uint32 {
	return uint32(isa.Jal)&isa.OpcodeMask | (isa.MaskImm24(imm) << isa.JalImmShift)
}

// CheckImm11 reports an OverflowError if v does not fit an 11-bit signed
// field.
func CheckImm11(v int32) error {
	if !isa.FitsSigned11(v) {
		return &OverflowError{Value: v, Bits: 11}
	}
	return nil
}

// CheckImm24 reports an OverflowError if v does not fit a 24-bit signed
// field.
func CheckImm24(v int32) error {
	if !isa.FitsSigned24(v) {
		return &OverflowError{Value: v, Bits: 24}
	}
	return nil
}
