// Package main implements a CHIP-8 program disassembler
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/loader"
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

	quiet     bool
	noOffsets bool
}

func main() {
	options := readArguments()

	if !options.quiet {
		printBanner()
	}

	if err := disasmFile(options); err != nil {
		fmt.Println(fmt.Errorf("disassembling failed: %w", err))
		os.Exit(1)
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.BoolVar(&options.noOffsets, "nooffsets", false, "do not output addresses and instruction words in comments")
	flags.StringVar(&options.output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) == 0 {
		printBanner()
		fmt.Printf("usage: chip8disasm [options] <file to disassemble>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	options.input = args[0]

	return options
}

func printBanner() {
	fmt.Println("[--------------------------------------]")
	fmt.Println("[ chip8disasm - CHIP-8 disassembler    ]")
	fmt.Printf("[--------------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

// createOutput opens the listing output file.
var createOutput = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

func disasmFile(options optionFlags) (err error) {
	image, err := loader.New().Load(options.input)
	if err != nil {
		return err
	}

	listingOptions := disasm.Options{
		OffsetComments: !options.noOffsets,
	}
	if options.output == "" {
		if err = disasm.Listing(os.Stdout, image, listingOptions); err != nil {
			return fmt.Errorf("processing file: %w", err)
		}
		return nil
	}

	outputFile, err := createOutput(options.output)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", options.output, err)
	}
	defer func() {
		if closeErr := outputFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", closeErr)
		}
	}()

	if err = disasm.Listing(outputFile, image, listingOptions); err != nil {
		return fmt.Errorf("processing file: %w", err)
	}
	return nil
}
