package fileprocessor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/p8cart/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, "carts/game.png", GenerateOutputFilename("carts/game.p8", ".png"))
	assert.Equal(t, "game.map.png", GenerateOutputFilename("game.p8", ".map.png"))
	assert.Equal(t, "game.png", GenerateOutputFilename("game", ".png"))
}

func TestBatchOptions(t *testing.T) {
	opts := options.Program{
		Parameters: options.Parameters{Output: "x.png", Batch: "*.p8"},
	}

	got := BatchOptions(opts, "a.p8")
	assert.Equal(t, "a.p8", got.Input)
	assert.Equal(t, "a.png", got.Output)
	assert.Equal(t, "", got.MapOutput)

	opts.MapOutput = "m.png"
	got = BatchOptions(opts, "b.p8")
	assert.Equal(t, "b.map.png", got.MapOutput)
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.p8", "b.p8", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
	}

	opts := &options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.p8")}}
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(files))

	opts = &options.Program{Parameters: options.Parameters{Input: "game.p8"}}
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(files))
	assert.Equal(t, "game.p8", files[0])
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "game.p8")
	assert.NoError(t, os.WriteFile(input, []byte("pico-8 cartridge\n__lua__\nx = 1\n"), 0600))

	opts := options.Program{
		Parameters: options.Parameters{Input: input},
		Flags:      options.Flags{Scale: 1, Quiet: true},
	}
	var buf bytes.Buffer
	assert.NoError(t, ProcessFile(context.Background(), log.NewTestLogger(t), opts, &buf))

	opts.Input = filepath.Join(dir, "missing.p8")
	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, &buf)
	assert.ErrorContains(t, err, "missing.p8")
}
