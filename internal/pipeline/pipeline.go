// Package pipeline orchestrates the cartridge decoding workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/retroenv/p8cart/internal/codemodule"
	"github.com/retroenv/p8cart/internal/config"
	"github.com/retroenv/p8cart/internal/decoder"
	"github.com/retroenv/p8cart/internal/detector"
	"github.com/retroenv/p8cart/internal/export"
	"github.com/retroenv/p8cart/internal/loader"
	"github.com/retroenv/p8cart/internal/memory"
	"github.com/retroenv/p8cart/internal/options"
	"github.com/retroenv/p8cart/internal/report"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete decoding workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// Result contains the decoded cartridge.
type Result struct {
	Info    detector.Info
	Image   *memory.Image
	Program string
	Cursors decoder.Cursors
}

// New creates a new decoding pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete decoding pipeline for the input file of the options.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) (*Result, error) {
	lines, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading cartridge: %w", err)
	}
	return p.ExecuteWithSource(ctx, lines, opts, writer)
}

// ExecuteWithSource runs the decoding pipeline with already loaded source lines.
// This is useful for testing and programmatic usage where the source is already in memory.
func (p *Pipeline) ExecuteWithSource(ctx context.Context, lines []string, opts options.Program,
	writer io.Writer) (*Result, error) {

	info, err := p.detector.Detect(opts.Input, lines)
	if err != nil {
		return nil, fmt.Errorf("detecting cartridge format: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	module := config.CreateCodeModule(p.logger, opts)
	defer module.Close()

	img := memory.New()
	dec := decoder.New(p.logger, img, module)
	if err := dec.Decode(lines); err != nil {
		return nil, fmt.Errorf("decoding cartridge source: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	exported, err := p.exportImages(opts, img)
	if err != nil {
		return nil, err
	}

	if !opts.Quiet {
		if err := p.printSummary(opts, info, img, module, exported, writer); err != nil {
			return nil, fmt.Errorf("printing summary: %w", err)
		}
	}

	return &Result{
		Info:    info,
		Image:   img,
		Program: module.Text(),
		Cursors: dec.Cursors(),
	}, nil
}

// exportImages writes the requested PNG files and returns their names.
func (p *Pipeline) exportImages(opts options.Program, img *memory.Image) ([]string, error) {
	var exported []string

	if opts.Output != "" {
		if err := export.WriteFile(opts.Output, export.SpriteSheetImage(img), opts.Scale); err != nil {
			return nil, fmt.Errorf("exporting sprite sheet: %w", err)
		}
		p.logger.Debug("Exported sprite sheet", log.String("file", opts.Output))
		exported = append(exported, opts.Output)
	}

	if opts.MapOutput != "" {
		if err := export.WriteFile(opts.MapOutput, export.MapImage(img), opts.Scale); err != nil {
			return nil, fmt.Errorf("exporting tile map: %w", err)
		}
		p.logger.Debug("Exported tile map", log.String("file", opts.MapOutput))
		exported = append(exported, opts.MapOutput)
	}

	return exported, nil
}

// printSummary prints information about the decoded cartridge.
func (p *Pipeline) printSummary(opts options.Program, info detector.Info, img *memory.Image,
	module codemodule.Module, exported []string, writer io.Writer) error {

	_, compiled := module.(*codemodule.Lua)
	return report.Summary(writer, report.Cartridge{
		Name:      filepath.Base(opts.Input),
		Version:   info.Version,
		Stats:     img.Stats(),
		CodeLines: module.Lines(),
		CodeBytes: len(module.Text()),
		Compiled:  compiled,
		Exported:  exported,
	})
}
