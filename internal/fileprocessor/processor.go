// Package fileprocessor handles file selection and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/retroenv/p8cart/internal/options"
	"github.com/retroenv/p8cart/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, writer io.Writer) error {
	pipe := pipeline.New(logger)
	if _, err := pipe.Execute(ctx, opts, writer); err != nil {
		return fmt.Errorf("processing %s: %w", opts.Input, err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates an output filename for a given input file,
// the suffix is appended to the name without the cartridge extension.
func GenerateOutputFilename(inputFile, suffix string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + suffix
}

// BatchOptions returns the options for a single file of a batch, exports are
// named after the input file.
func BatchOptions(opts options.Program, file string) options.Program {
	opts.Input = file
	if opts.Output != "" {
		opts.Output = GenerateOutputFilename(file, ".png")
	}
	if opts.MapOutput != "" {
		opts.MapOutput = GenerateOutputFilename(file, ".map.png")
	}
	return opts
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("p8cart", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
