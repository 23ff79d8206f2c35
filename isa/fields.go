package isa

// Instruction word field layout. Bit 0 is the least significant bit. Fields
// are packed by bit offset, not by byte.
const (
	OpcodeShift = 0
	OpcodeMask  = 0x7F // 7 bits: 0-6

	RdShift  = 7
	Rs1Shift = 13
	Rs2Shift = 19
	RegMask  = 0x3F // 6 bits; only 0-31 are addressable, bit 5 reserved zero

	// I/B-form immediate: 11 bits at bits 19-29, sign in bit 10 of the field.
	ImmShift    = 19
	ImmMask     = 0x7FF
	ImmSignBit  = 0x400 // bit 10 of the 11-bit field
	ImmSignBias = 0x800 // 2^11

	// JAL immediate: 24 bits at bits 7-30, sign in bit 23 of the field.
	JalImmShift    = 7
	JalImmMask     = 0xFFFFFF
	JalImmSignBit  = 0x800000 // bit 23 of the 24-bit field
	JalImmSignBias = 0x1000000

	// WordBits is the native width of registers, RAM words, and ALU results.
	WordBits = 32
)

// NumRegisters is the size of the register file.
const NumRegisters = 32

// DataBase is the word address where the assembler's .data section is
// mapped, added to every data-label immediate reference (§9 Design Notes,
// resolving the data-label base-offset open question).
const DataBase = 1000

// TextSectionWords and DataSectionWords are the word-address ranges a
// binary image lays .text and .data sections out into: .text occupies
// [0, TextSectionWords), .data occupies [TextSectionWords,
// TextSectionWords+DataSectionWords).
const (
	TextSectionWords = 1000
	DataSectionWords = 1000
)

// Register index conventions (§3, §6).
const (
	RegZero   = 0  // hard-wired zero; writes are dropped
	RegPCAlias = 29 // write-back to this register diverts the value to PC
	RegSP     = 30  // stack pointer, by convention
	RegRA     = 31  // return address, by convention
)

// SignExtend11 reconstructs a signed value from an 11-bit two's-complement
// field by subtracting 2^11 when the sign bit is set, per the "sign
// extension by subtraction" convention (§9 Design Notes).
func SignExtend11(field uint32) int32 {
	v := int32(field & ImmMask)
	if field&ImmSignBit != 0 {
		v -= ImmSignBias
	}
	return v
}

// SignExtend24 is the JAL-width counterpart of SignExtend11.
func SignExtend24(field uint32) int32 {
	v := int32(field & JalImmMask)
	if field&JalImmSignBit != 0 {
		v -= JalImmSignBias
	}
	return v
}

// MaskImm11 masks a (possibly negative) immediate down to its 11-bit
// two's-complement field representation, for packing by the encoder.
func MaskImm11(v int32) uint32 {
	return uint32(v) & ImmMask
}

// MaskImm24 is the JAL-width counterpart of MaskImm11.
func MaskImm24(v int32) uint32 {
	return uint32(v) & JalImmMask
}

// FitsSigned11 reports whether v is representable in an 11-bit signed field.
func FitsSigned11(v int32) bool {
	return v >= -1024 && v <= 1023
}

// FitsSigned24 reports whether v is representable in a 24-bit signed field.
func FitsSigned24(v int32) bool {
	return v >= -(1<<23) && v <= (1<<23)-1
}
