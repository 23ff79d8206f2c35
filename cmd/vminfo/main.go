// Command vminfo inspects instruction words and binary images: decode a
// single word, or dump a binary image's text and data sections.
package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"yarisc32/isa"
	"yarisc32/vm"
)

func main() {
	root := &cobra.Command{
		Use:   "vminfo",
		Short: "Inspect instruction words and binary images",
	}
	root.AddCommand(decodeCmd(), dumpCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <word>",
		Short: "Decode a single instruction word (hex with 0x prefix, or decimal)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid word %q: %w", args[0], err)
			}
			d := vm.Decode(uint32(word))
			fmt.Printf("opcode:  %s (0x%02X)\n", d.Opcode, uint8(d.Opcode))
			fmt.Printf("branch:  %t\n", d.Opcode.IsBranch())
			fmt.Printf("flags:   0x%06X\n", uint32(d.Flags))
			fmt.Printf("rd:      %s (%d)\n", isa.RegisterName(d.Rd), d.Rd)
			fmt.Printf("rs1:     %s (%d)\n", isa.RegisterName(d.Rs1), d.Rs1)
			fmt.Printf("rs2:     %s (%d)\n", isa.RegisterName(d.Rs2), d.Rs2)
			fmt.Printf("imm:     %d\n", d.Imm)
			return nil
		},
	}
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump a binary image's text and data sections as hex words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0]) // #nosec G304 -- user-provided image path
			if err != nil {
				return err
			}
			words := len(content) / 4
			fmt.Printf(".text (%d words):\n", isa.TextSectionWords)
			for i := 0; i < isa.TextSectionWords && i < words; i++ {
				word := binary.BigEndian.Uint32(content[i*4 : i*4+4])
				if word == 0 {
					continue
				}
				fmt.Printf("  [%4d] 0x%08X  %s\n", i, word, vm.Decode(word).Opcode)
			}
			fmt.Printf(".data (%d words):\n", isa.DataSectionWords)
			for i := isa.TextSectionWords; i < isa.TextSectionWords+isa.DataSectionWords && i < words; i++ {
				word := binary.BigEndian.Uint32(content[i*4 : i*4+4])
				if word == 0 {
					continue
				}
				fmt.Printf("  [%4d] %d\n", i-isa.TextSectionWords, vm.AsInt32(word))
			}
			return nil
		},
	}
}
