// Package loader builds a binary image from an assembled program and
// loads that image into RAM, per the image layout in §4.8 point 8:
// .text occupies word addresses [0, TextSectionWords), .data occupies
// [TextSectionWords, TextSectionWords+DataSectionWords), both zero-padded,
// each word written big-endian.
package loader

import (
	"encoding/binary"

	"yarisc32/isa"
	"yarisc32/parser"
	"yarisc32/vm"
)

// Build lays out an assembled program into a binary image: text words
// first, then data words, each section zero-padded to its fixed size.
func Build(prog *parser.Program) ([]byte, error) {
	if len(prog.Text) > isa.TextSectionWords {
		return nil, &SectionOverflowError{Section: "text", Words: len(prog.Text), Max: isa.TextSectionWords}
	}
	if len(prog.Data) > isa.DataSectionWords {
		return nil, &SectionOverflowError{Section: "data", Words: len(prog.Data), Max: isa.DataSectionWords}
	}

	image := make([]uint32, isa.TextSectionWords+isa.DataSectionWords)
	copy(image, prog.Text)
	copy(image[isa.TextSectionWords:], prog.Data)

	out := make([]byte, len(image)*4)
	for i, word := range image {
		binary.BigEndian.PutUint32(out[i*4:], word)
	}
	return out, nil
}

// AssembleFile parses and builds a binary image from a source file in one
// step.
func AssembleFile(path string) ([]byte, error) {
	prog, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Build(prog)
}

// LoadIntoRAM assembles source and loads the resulting image directly into
// ram, leaving ram ready for a CPU to fetch from address 0.
func LoadIntoRAM(ram *vm.RAM, path string) error {
	image, err := AssembleFile(path)
	if err != nil {
		return err
	}
	return ram.LoadImage(image)
}
