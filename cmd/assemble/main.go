// Command assemble compiles an assembly source file into a binary image.
//
// Usage: assemble <source> [<dest>]
//
// With <dest> omitted, the source is assembled and discarded; only
// diagnostics are produced. Exit code 0 on success, non-zero on any
// assembly error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"yarisc32/loader"
	"yarisc32/parser"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <source> [<dest>]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(args); err != nil {
		var ae *parser.AssemblyError
		if errors.As(err, &ae) {
			fmt.Fprintf(os.Stderr, "assembly error: %s\n", ae.Error())
		} else {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	image, err := loader.AssembleFile(args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 {
		fmt.Printf("OK: %d bytes assembled\n", len(image))
		return nil
	}

	return os.WriteFile(args[1], image, 0644)
}
