package config

import (
	"testing"

	"github.com/retroenv/p8cart/internal/codemodule"
	"github.com/retroenv/p8cart/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestCreateCodeModule(t *testing.T) {
	logger := log.NewTestLogger(t)

	module := CreateCodeModule(logger, options.Program{})
	_, ok := module.(*codemodule.Source)
	assert.True(t, ok)

	opts := options.Program{
		Parameters: options.Parameters{Input: "/carts/game.p8"},
		Flags:      options.Flags{Compile: true},
	}
	module = CreateCodeModule(logger, opts)
	defer module.Close()
	_, ok = module.(*codemodule.Lua)
	assert.True(t, ok)
}
