package parser

import (
	"strconv"
	"strings"

	"yarisc32/encoder"
	"yarisc32/isa"
)

// Program is the assembled result: encoded text words and raw data words,
// each still in section-relative order (the loader places them at their
// final image addresses).
type Program struct {
	Text []uint32
	Data []uint32
}

// Parser assembles one source file in two passes: a data pass that builds
// the data-label table, and a text pass that resolves text labels and
// branch/jump targets before encoding each instruction.
type Parser struct {
	filename string
	source   string
}

// NewParser returns a Parser for source, using filename for error
// positions.
func NewParser(source, filename string) *Parser {
	return &Parser{source: source, filename: filename}
}

// textEntry is one resolved text-section instruction: its token list and
// any labels that resolve to its index, after orphaned labels from
// preceding empty lines have been carried forward onto it.
type textEntry struct {
	labels []string
	tokens []string
	pos    Position
}

// Parse runs the full pipeline: section split, data pass, text
// preprocess, label resolution, and per-line encoding.
func (p *Parser) Parse() (*Program, error) {
	textLines, dataLines := p.splitSections()

	data, dataLabels, err := p.processData(dataLines)
	if err != nil {
		return nil, err
	}

	entries, err := p.preprocessText(textLines)
	if err != nil {
		return nil, err
	}

	textLabels := newLabelTable()
	for i, e := range entries {
		for _, label := range e.labels {
			if err := textLabels.Define(label, i, e.pos); err != nil {
				return nil, err
			}
		}
	}

	text := make([]uint32, len(entries))
	for i, e := range entries {
		word, err := p.encodeLine(i, e, textLabels, dataLabels)
		if err != nil {
			return nil, err
		}
		text[i] = word
	}

	return &Program{Text: text, Data: data}, nil
}

// splitSections partitions the cleaned source into .data and .text lines.
// Lines before any section directive default to .text, per §4.8 point 2.
func (p *Parser) splitSections() (textLines, dataLines []sourceLine) {
	section := "text"
	for _, l := range cleanLines(p.source) {
		switch strings.ToLower(l.text) {
		case ".text":
			section = "text"
			continue
		case ".data":
			section = "data"
			continue
		}
		if section == "data" {
			dataLines = append(dataLines, l)
		} else {
			textLines = append(textLines, l)
		}
	}
	return textLines, dataLines
}

// processData runs the data pass (§4.8 point 3): each line may carry
// leading `label:` prefixes, naming the index of the next data word; the
// remainder of the line is whitespace-separated signed integers appended
// to the data-word list.
func (p *Parser) processData(lines []sourceLine) ([]uint32, *LabelTable, error) {
	labels := newLabelTable()
	var words []uint32
	for _, l := range lines {
		names, rest := splitLabels(l.text)
		pos := Position{Filename: p.filename, Line: l.line}
		for _, name := range names {
			if err := labels.Define(name, len(words), pos); err != nil {
				return nil, nil, err
			}
		}
		for _, tok := range strings.Fields(rest) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, nil, newError(pos, ErrorSyntax, tok, "invalid data word")
			}
			words = append(words, uint32(int32(n)))
		}
	}
	return words, labels, nil
}

// preprocessText runs the text preprocess pass (§4.8 point 4): split each
// line on labels, carry labels from label-only lines forward onto the
// next instruction, and append a sentinel NO_OP so labels trailing the
// final instruction still resolve to a valid index.
func (p *Parser) preprocessText(lines []sourceLine) ([]textEntry, error) {
	type raw struct {
		labels []string
		rest   string
		pos    Position
	}

	var all []raw
	for _, l := range lines {
		names, rest := splitLabels(l.text)
		all = append(all, raw{labels: names, rest: rest, pos: Position{Filename: p.filename, Line: l.line}})
	}
	sentinelLine := 0
	if len(lines) > 0 {
		sentinelLine = lines[len(lines)-1].line + 1
	}
	all = append(all, raw{rest: "NO_OP", pos: Position{Filename: p.filename, Line: sentinelLine}})

	var entries []textEntry
	var orphaned []string
	for _, r := range all {
		if r.rest == "" {
			orphaned = append(orphaned, r.labels...)
			continue
		}
		labels := append(orphaned, r.labels...)
		orphaned = nil
		entries = append(entries, textEntry{labels: labels, tokens: tokenize(r.rest), pos: r.pos})
	}
	return entries, nil
}

// encodeLine assembles one text entry into an instruction word, resolving
// register names, data-label and branch-label immediates, and applying the
// LW/SW/branch operand-order and overflow rules of §4.8 points 5-7.
func (p *Parser) encodeLine(index int, e textEntry, textLabels, dataLabels *LabelTable) (uint32, error) {
	pos := e.pos
	if len(e.tokens) == 0 {
		return 0, newError(pos, ErrorSyntax, "", "empty instruction")
	}

	mnemonic := strings.ToUpper(e.tokens[0])
	opcode, ok := isa.LookupMnemonic(mnemonic)
	if !ok {
		return 0, newError(pos, ErrorUnknownMnemonic, e.tokens[0], "unknown mnemonic")
	}
	args := e.tokens[1:]

	reg := func(tok string) (int, error) {
		idx, ok := isa.LookupRegister(strings.ToLower(tok))
		if !ok {
			return 0, newError(pos, ErrorUnknownRegister, tok, "unknown register")
		}
		return idx, nil
	}
	regImm := func(tok string) (int32, error) {
		if idx, ok := dataLabels.Lookup(tok); ok {
			return int32(idx + isa.DataBase), nil
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return 0, newError(pos, ErrorSyntax, tok, "invalid immediate")
		}
		return int32(n), nil
	}
	relImm := func(tok string) (int32, error) {
		target, ok := textLabels.Lookup(tok)
		if !ok {
			return 0, newError(pos, ErrorUndefinedLabel, tok, "undefined label")
		}
		return int32(target - index), nil
	}
	overflow := func(tok string, err error) error {
		if err == nil {
			return nil
		}
		return newError(pos, ErrorImmediateOverflow, tok, err.Error())
	}

	switch opcode {
	case isa.NoOp:
		return 0, nil

	case isa.Jal:
		if len(args) != 1 {
			return 0, newError(pos, ErrorSyntax, mnemonic, "JAL takes one label operand")
		}
		off, err := relImm(args[0])
		if err != nil {
			return 0, err
		}
		if err := overflow(args[0], encoder.CheckImm24(off)); err != nil {
			return 0, err
		}
		return encoder.JAL(off), nil

	case isa.Lw:
		if len(args) != 3 {
			return 0, newError(pos, ErrorSyntax, mnemonic, "LW takes rd, rs1, imm")
		}
		rd, err := reg(args[0])
		if err != nil {
			return 0, err
		}
		rs1, err := reg(args[1])
		if err != nil {
			return 0, err
		}
		off, err := regImm(args[2])
		if err != nil {
			return 0, err
		}
		if err := overflow(args[2], encoder.CheckImm11(off)); err != nil {
			return 0, err
		}
		return encoder.LW(rd, rs1, off), nil

	case isa.Sw:
		if len(args) != 3 {
			return 0, newError(pos, ErrorSyntax, mnemonic, "SW takes rs1, rs2, imm")
		}
		rs1, err := reg(args[0])
		if err != nil {
			return 0, err
		}
		rs2, err := reg(args[1])
		if err != nil {
			return 0, err
		}
		off, err := regImm(args[2])
		if err != nil {
			return 0, err
		}
		if err := overflow(args[2], encoder.CheckImm11(off)); err != nil {
			return 0, err
		}
		return encoder.SW(rs1, rs2, off), nil

	case isa.Beq, isa.Bne, isa.Bge, isa.Blt:
		if len(args) != 3 {
			return 0, newError(pos, ErrorSyntax, mnemonic, "branch takes rs1, rs2, label")
		}
		rs1, err := reg(args[0])
		if err != nil {
			return 0, err
		}
		rs2, err := reg(args[1])
		if err != nil {
			return 0, err
		}
		off, err := relImm(args[2])
		if err != nil {
			return 0, err
		}
		if err := overflow(args[2], encoder.CheckImm11(off)); err != nil {
			return 0, err
		}
		return encoder.BType(opcode, rs1, rs2, off), nil

	case isa.AddI, isa.SubI, isa.MulI, isa.ShlI, isa.ShrI, isa.SltI:
		if len(args) != 3 {
			return 0, newError(pos, ErrorSyntax, mnemonic, "immediate instruction takes rd, rs1, imm")
		}
		rd, err := reg(args[0])
		if err != nil {
			return 0, err
		}
		rs1, err := reg(args[1])
		if err != nil {
			return 0, err
		}
		off, err := regImm(args[2])
		if err != nil {
			return 0, err
		}
		if err := overflow(args[2], encoder.CheckImm11(off)); err != nil {
			return 0, err
		}
		return encoder.IType(opcode, rd, rs1, off), nil

	default: // R-type: Add, Sub, Mul, Shl, Shr, Slt
		if len(args) != 3 {
			return 0, newError(pos, ErrorSyntax, mnemonic, "register instruction takes rd, rs1, rs2")
		}
		rd, err := reg(args[0])
		if err != nil {
			return 0, err
		}
		rs1, err := reg(args[1])
		if err != nil {
			return 0, err
		}
		rs2, err := reg(args[2])
		if err != nil {
			return 0, err
		}
		return encoder.RType(opcode, rd, rs1, rs2), nil
	}
}
