package isa

import "fmt"

// abiNames lists the RISC-V-style ABI register aliases in register-index
// order: zero, ra, sp, gp, tp, t0-t2, s0-s1, a0-a7, s2-s11, t3-t6.
var abiNames = []string{
	"zero", "ra", "sp", "gp", "tp",
	"t0", "t1", "t2", "s0", "s1",
	"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
	"s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11",
	"t3", "t4", "t5", "t6",
}

var registerByName = buildRegisterTable()

func buildRegisterTable() map[string]int {
	table := make(map[string]int, len(abiNames)+NumRegisters)
	for i, name := range abiNames {
		table[name] = i
	}
	for i := 1; i < NumRegisters; i++ {
		table[fmt.Sprintf("r%d", i)] = i
	}
	return table
}

// LookupRegister resolves a case-normalized register token (an ABI alias
// such as "sp" or "a0", or the "rN" form) to a register index. Ok is false
// for unrecognized names.
func LookupRegister(name string) (int, bool) {
	idx, ok := registerByName[name]
	return idx, ok
}

// RegisterName returns the ABI alias for a register index, or the "rN"
// form for indices beyond the named ABI table.
func RegisterName(idx int) string {
	if idx >= 0 && idx < len(abiNames) {
		return abiNames[idx]
	}
	return fmt.Sprintf("r%d", idx)
}
