// Package main implements a CHIP-8 ROM disassembler
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/CalvoM/chip-8/internal/disasm"
	"github.com/CalvoM/chip-8/internal/loader"
	"github.com/CalvoM/chip-8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	input  string
	output string
	quiet  bool
}

func main() {
	opts := readArguments()

	if !opts.quiet {
		printBanner()
	}

	if err := disasmFile(opts); err != nil {
		fmt.Println(fmt.Errorf("disassembling failed: %w", err))
		os.Exit(1)
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts optionFlags

	flags.StringVar(&opts.output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.BoolVar(&opts.quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) == 0 {
		printBanner()
		fmt.Printf("usage: chip8dis [options] <ROM file to disassemble>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	opts.input = args[0]

	return opts
}

func printBanner() {
	fmt.Fprintf(os.Stderr, "[------------------------------------]\n")
	fmt.Fprintf(os.Stderr, "[ chip8dis - CHIP-8 ROM disassembler ]\n")
	fmt.Fprintf(os.Stderr, "[------------------------------------]\n")
	fmt.Fprintf(os.Stderr, "version: %s\n\n", buildinfo.Version(version, commit, date))
}

func disasmFile(opts optionFlags) error {
	program, err := loader.New().Load(options.Program{
		Parameters: options.Parameters{Input: opts.input},
	})
	if err != nil {
		return err
	}

	out := os.Stdout
	if opts.output != "" {
		out, err = os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = out.Close() }()
	}

	w := bufio.NewWriter(out)
	if err := disasm.WriteListing(w, disasm.List(program)); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
