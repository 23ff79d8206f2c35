package vm

import "yarisc32/isa"

// RegisterFile is the CPU's 32-slot general-purpose register array.
// Register 0 is hard-wired zero: writes to it are silently dropped. By
// convention (not enforced here) register 29 aliases the program counter on
// write-back, register 30 is the stack pointer, and register 31 is the
// return address.
type RegisterFile struct {
	regs [isa.NumRegisters]uint32
}

// NewRegisterFile returns a register file with every slot zeroed.
func NewRegisterFile() *RegisterFile {
	return &RegisterFile{}
}

// Read returns the value held at register i. Reading register 0 always
// yields zero.
func (r *RegisterFile) Read(i int) uint32 {
	if i == isa.RegZero {
		return 0
	}
	return r.regs[i]
}

// ReadPair reads two registers in one call, as the decode stage does for
// rs1/rs2.
func (r *RegisterFile) ReadPair(i, j int) (uint32, uint32) {
	return r.Read(i), r.Read(j)
}

// Write sets register i to v. Writing register 0 is a no-op.
func (r *RegisterFile) Write(i int, v uint32) {
	if i == isa.RegZero {
		return
	}
	r.regs[i] = v
}

// MaybeWriteback performs the write-back stage's register update: it writes
// busOut when MemRead is set, otherwise aluOut, and only when RegWrite is
// set. It is a no-op otherwise, and is itself still subject to the
// register-0 rule in Write.
func (r *RegisterFile) MaybeWriteback(rd int, aluOut, busOut uint32, flags isa.Flags) {
	if flags&isa.RegWrite == 0 {
		return
	}
	if flags&isa.MemRead != 0 {
		r.Write(rd, busOut)
	} else {
		r.Write(rd, aluOut)
	}
}

// Dump returns a copy of all 32 register values, for inspection/trace use.
func (r *RegisterFile) Dump() [isa.NumRegisters]uint32 {
	return r.regs
}
