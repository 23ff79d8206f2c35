package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yarisc32/encoder"
	"yarisc32/isa"
	"yarisc32/parser"
)

func assemble(t *testing.T, source string) *parser.Program {
	t.Helper()
	p := parser.NewParser(source, "test.s")
	prog, err := p.Parse()
	require.NoError(t, err)
	return prog
}

func TestParser_RType(t *testing.T) {
	prog := assemble(t, "ADD r1, r2, r3\n")
	require.Len(t, prog.Text, 2) // instruction + sentinel NO_OP
	assert.Equal(t, encoder.RType(isa.Add, 1, 2, 3), prog.Text[0])
	assert.Equal(t, uint32(0), prog.Text[1])
}

func TestParser_CaseInsensitiveMnemonicAndRegister(t *testing.T) {
	prog := assemble(t, "add R1, R2, R3\n")
	assert.Equal(t, encoder.RType(isa.Add, 1, 2, 3), prog.Text[0])
}

func TestParser_ABIRegisterNames(t *testing.T) {
	prog := assemble(t, "ADD sp, zero, ra\n")
	assert.Equal(t, encoder.RType(isa.Add, isa.RegSP, isa.RegZero, isa.RegRA), prog.Text[0])
}

func TestParser_BranchLabelResolvesToRelativeOffset(t *testing.T) {
	source := "LOOP: ADDI r1, r1, 1\nBEQ zero, zero, LOOP\n"
	prog := assemble(t, source)
	require.Len(t, prog.Text, 3)
	assert.Equal(t, encoder.BType(isa.Beq, 0, 0, -1), prog.Text[1])
}

func TestParser_LabelOnOwnLineCarriesForward(t *testing.T) {
	// A label on its own line, with no instruction on the same line,
	// resolves to the next non-empty instruction's index.
	source := "SKIP:\nADD r1, zero, zero\nBEQ zero, zero, SKIP\n"
	prog := assemble(t, source)
	// SKIP resolves to index 0 (the ADD); BEQ is index 1, so offset -1.
	assert.Equal(t, encoder.BType(isa.Beq, 0, 0, -1), prog.Text[1])
}

func TestParser_LabelAfterFinalInstructionResolvesViaSentinel(t *testing.T) {
	source := "BEQ zero, zero, END\nEND:\n"
	prog := assemble(t, source)
	// END resolves to index 1, the synthetic sentinel NO_OP; BEQ is
	// index 0, so offset +1.
	assert.Equal(t, encoder.BType(isa.Beq, 0, 0, 1), prog.Text[0])
}

func TestParser_JalUsesRelativeOffset(t *testing.T) {
	source := "JAL TARGET\nADD r1, zero, zero\nTARGET:\nADD r2, zero, zero\n"
	prog := assemble(t, source)
	assert.Equal(t, encoder.JAL(2), prog.Text[0])
}

func TestParser_DataLabelImmediateAddsDataBase(t *testing.T) {
	source := ".data\nCOUNT: 7\n.text\nLW r1, zero, COUNT\n"
	prog := assemble(t, source)
	assert.Equal(t, encoder.LW(1, 0, isa.DataBase), prog.Text[0])
	require.Len(t, prog.Data, 1)
	assert.Equal(t, uint32(7), prog.Data[0])
}

func TestParser_StoreOperandOrderIsSemantic(t *testing.T) {
	// SW rs1, rs2, imm: base register first, then the value register.
	prog := assemble(t, "SW r1, r2, 5\n")
	assert.Equal(t, encoder.SW(1, 2, 5), prog.Text[0])
}

func TestParser_DefaultSectionIsText(t *testing.T) {
	prog := assemble(t, "ADD r1, zero, zero\n")
	assert.Equal(t, encoder.RType(isa.Add, 1, 0, 0), prog.Text[0])
}

func TestParser_UnknownMnemonicFails(t *testing.T) {
	_, err := parser.NewParser("FROBNICATE r1, r2, r3\n", "test.s").Parse()
	require.Error(t, err)
	var ae *parser.AssemblyError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, parser.ErrorUnknownMnemonic, ae.Kind)
}

func TestParser_UnknownRegisterFails(t *testing.T) {
	_, err := parser.NewParser("ADD bogus, r1, r2\n", "test.s").Parse()
	var ae *parser.AssemblyError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, parser.ErrorUnknownRegister, ae.Kind)
}

func TestParser_UndefinedLabelFails(t *testing.T) {
	_, err := parser.NewParser("BEQ zero, zero, NOWHERE\n", "test.s").Parse()
	var ae *parser.AssemblyError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, parser.ErrorUndefinedLabel, ae.Kind)
}

func TestParser_DuplicateLabelFails(t *testing.T) {
	source := "DUP: ADD r1, zero, zero\nDUP: ADD r2, zero, zero\n"
	_, err := parser.NewParser(source, "test.s").Parse()
	var ae *parser.AssemblyError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, parser.ErrorDuplicateLabel, ae.Kind)
}

func TestParser_ImmediateOverflowFails(t *testing.T) {
	_, err := parser.NewParser("ADDI r1, r1, 99999\n", "test.s").Parse()
	var ae *parser.AssemblyError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, parser.ErrorImmediateOverflow, ae.Kind)
}

func TestParser_CommentsAndBlankLinesIgnored(t *testing.T) {
	source := "# a comment\n\nADD r1, zero, zero # trailing comment\n\n"
	prog := assemble(t, source)
	assert.Equal(t, encoder.RType(isa.Add, 1, 0, 0), prog.Text[0])
}
