package codemodule

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/log"
	lua "github.com/yuin/gopher-lua"
)

var _ Module = &Lua{}

// Lua compiles the delivered program text with a Lua 5.1 compiler. The console
// dialect adds syntax like compound assignments that plain Lua rejects, so this
// module is only suited for cartridges written in standard Lua.
type Lua struct {
	*Source

	logger *log.Logger
	name   string
	state  *lua.LState
	chunk  *lua.LFunction
}

// NewLua returns a Lua code module, the name is used as chunk name in error messages.
func NewLua(logger *log.Logger, name string) *Lua {
	return &Lua{
		Source: NewSource(),
		logger: logger,
		name:   name,
	}
}

// LoadSource compiles the program text without executing it.
func (l *Lua) LoadSource(text string) error {
	if err := l.Source.LoadSource(text); err != nil {
		return err
	}

	l.state = lua.NewState(lua.Options{SkipOpenLibs: true})
	chunk, err := l.state.Load(strings.NewReader(text), l.name)
	if err != nil {
		l.Close()
		return fmt.Errorf("compiling program text: %w", err)
	}
	l.chunk = chunk

	l.logger.Debug("Compiled program text",
		log.String("chunk", l.name),
		log.Int("constants", len(chunk.Proto.Constants)),
		log.Int("functions", len(chunk.Proto.FunctionPrototypes)))
	return nil
}

// Chunk returns the compiled main function of the program.
func (l *Lua) Chunk() *lua.LFunction {
	return l.chunk
}

// Close releases the Lua state.
func (l *Lua) Close() {
	if l.state != nil {
		l.state.Close()
		l.state = nil
	}
}
