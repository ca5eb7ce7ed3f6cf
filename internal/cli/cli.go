// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/p8cart/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Input == "" && opts.Batch == "" {
		opts.Input = args[0]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: p8cart [options] <cartridge source file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to decode, please pass the file to decode as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale factor %d, must be at least 1", opts.Scale)
	}

	for _, output := range []string{opts.Output, opts.MapOutput} {
		if output != "" && !strings.EqualFold(filepath.Ext(output), ".png") {
			return fmt.Errorf("unsupported output file %s: only .png is supported", output)
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input cartridge source file (.p8)")
	flags.StringVar(&opts.Output, "o", "", "name of the output .png file of the sprite sheet")
	flags.StringVar(&opts.MapOutput, "map", "", "name of the output .png file of the tile map")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .png file naming, for example *.p8")
	flags.IntVar(&opts.Scale, "scale", 1, "scale factor of exported images")
	flags.BoolVar(&opts.Compile, "compile", false, "compile the program text as Lua 5.1, fails for cartridges using dialect extensions")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
