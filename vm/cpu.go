package vm

import "yarisc32/isa"

// CPU is the staged execution engine: it owns a program counter, a register
// file, and a bus, and advances exactly one pipeline stage per call to
// Tick. A full instruction therefore takes five ticks to retire. Staging
// is purely a bookkeeping device here (the implementation is sequential)
// but makes single-stepping and stage inspection observable, per §4.7.
type CPU struct {
	PC    uint32
	Regs  *RegisterFile
	Bus   *Bus
	state Stage

	// Per-instruction latched state, carried between stages of one
	// instruction's five-tick lifetime.
	instr   uint32
	flags   isa.Flags
	rd      int
	rs1Addr int
	rs2Addr int
	imm     int32
	rs1Val  uint32
	rs2Val  uint32
	aluOut  uint32
	busOut  uint32

	lastErr error
}

// NewCPU constructs a CPU in the FETCH state, PC at 0, with a fresh
// register file wired to bus.
func NewCPU(bus *Bus) *CPU {
	return &CPU{
		Regs:  NewRegisterFile(),
		Bus:   bus,
		state: StageFetch,
	}
}

// State returns the stage the CPU is about to execute (or StageStopped
// once halted).
func (c *CPU) State() Stage {
	return c.state
}

// Err returns the error that caused the CPU to stop abnormally (a bus or
// ALU failure), or nil if the CPU has not stopped or stopped via the NO_OP
// halt sentinel.
func (c *CPU) Err() error {
	return c.lastErr
}

// Tick advances the CPU by exactly one pipeline stage and returns the
// stage that just ran. Once Tick returns StageStopped, every subsequent
// call also returns StageStopped without further effect.
func (c *CPU) Tick() (Stage, error) {
	switch c.state {
	case StageFetch:
		return c.tickFetch()
	case StageDecode:
		return c.tickDecode()
	case StageExecute:
		return c.tickExecute()
	case StageMem:
		return c.tickMem()
	case StageWriteBack:
		return c.tickWriteBack()
	default:
		return StageStopped, nil
	}
}

func (c *CPU) tickFetch() (Stage, error) {
	word, err := c.Bus.Read(c.PC)
	if err != nil {
		c.lastErr = err
		c.state = StageStopped
		return StageStopped, err
	}
	c.instr = word
	c.state = StageDecode
	return StageFetch, nil
}

func (c *CPU) tickDecode() (Stage, error) {
	d := Decode(c.instr)
	if d.Opcode == isa.NoOp {
		c.state = StageStopped
		return StageStopped, nil
	}
	if !d.Flags.Has(isa.Valid) {
		err := &InvalidInstructionError{Word: c.instr, Reason: "unrecognized opcode"}
		c.lastErr = err
		c.state = StageStopped
		return StageStopped, err
	}
	c.flags = d.Flags
	c.rd = d.Rd
	c.rs1Addr = d.Rs1
	c.rs2Addr = d.Rs2
	c.imm = d.Imm
	c.rs1Val, c.rs2Val = c.Regs.ReadPair(d.Rs1, d.Rs2)
	c.state = StageExecute
	return StageDecode, nil
}

func (c *CPU) tickExecute() (Stage, error) {
	out, err := ALU(c.flags, c.rs1Val, c.rs2Val, c.imm)
	if err != nil {
		c.lastErr = err
		c.state = StageStopped
		return StageStopped, err
	}
	c.aluOut = out
	c.state = StageMem
	return StageExecute, nil
}

func (c *CPU) tickMem() (Stage, error) {
	if c.flags&isa.MemRead != 0 {
		out, err := c.Bus.Read(c.aluOut)
		if err != nil {
			c.lastErr = err
			c.state = StageStopped
			return StageStopped, err
		}
		c.busOut = out
	} else {
		c.busOut = 0
	}
	if err := c.Bus.Write(c.aluOut, c.rs2Val, c.flags); err != nil {
		c.lastErr = err
		c.state = StageStopped
		return StageStopped, err
	}
	c.state = StageWriteBack
	return StageMem, nil
}

func (c *CPU) tickWriteBack() (Stage, error) {
	switch {
	case c.rd == isa.RegPCAlias:
		// Diverts the write-back value into PC instead of the register,
		// using the same MEM_READ-conditional selection as an ordinary
		// register write-back: this is what lets both a memory-loaded
		// return address (LW r29, ...) and a directly computed one (ADD
		// r29, r0, r31, as in the recursive-call return sequence) serve as
		// an indirect jump target.
		if c.flags&isa.MemRead != 0 {
			c.PC = c.busOut
		} else {
			c.PC = c.aluOut
		}
	case c.flags&isa.JalFlag != 0:
		c.Regs.Write(isa.RegRA, c.PC+1)
		c.PC += uint32(c.imm)
	default:
		c.Regs.MaybeWriteback(c.rd, c.aluOut, c.busOut, c.flags)
		c.advancePC()
	}
	c.state = StageFetch
	return StageWriteBack, nil
}

// advancePC applies the non-JAL program-counter update rule (§4.6): a
// taken branch (BRANCH set and the ALU result > 0) adds the relative
// immediate; anything else advances by one word.
func (c *CPU) advancePC() {
	if c.flags&isa.Branch != 0 && int32(c.aluOut) > 0 {
		c.PC += uint32(c.imm)
	} else {
		c.PC++
	}
}

// Run ticks the CPU until it reaches StageStopped, returning the error (if
// any) that caused an abnormal stop. A normal halt (an executed NO_OP)
// returns a nil error.
func (c *CPU) Run() error {
	for c.state != StageStopped {
		if _, err := c.Tick(); err != nil {
			return err
		}
	}
	return c.lastErr
}
