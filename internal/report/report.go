// Package report prints a summary of a decoded cartridge.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/retroenv/p8cart/internal/memory"
)

// Cartridge contains the details of a decoded cartridge to report.
type Cartridge struct {
	Name      string
	Version   int
	Stats     memory.Stats
	CodeLines int
	CodeBytes int
	Compiled  bool
	Exported  []string
}

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	box   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		label: r.NewStyle().Width(14).Foreground(lipgloss.ANSIColor(4)),
		value: r.NewStyle().Bold(true),
		box:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Summary writes a styled summary of the cartridge to the writer. The renderer
// detects the color support of the writer.
func Summary(w io.Writer, cart Cartridge) error {
	st := newStyles(lipgloss.NewRenderer(w))

	rows := []string{st.title.Render(cart.Name)}
	for _, field := range fields(cart) {
		rows = append(rows, st.label.Render(field[0])+st.value.Render(field[1]))
	}

	_, err := fmt.Fprintln(w, st.box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	return err
}

func fields(cart Cartridge) [][2]string {
	version := "unknown"
	if cart.Version > 0 {
		version = fmt.Sprint(cart.Version)
	}
	code := fmt.Sprintf("%d lines, %d bytes", cart.CodeLines, cart.CodeBytes)
	if cart.Compiled {
		code += ", compiled"
	}

	f := [][2]string{
		{"version", version},
		{"code", code},
		{"sprites", fmt.Sprintf("%d/%d", cart.Stats.Sprites, memory.SpriteCount)},
		{"sprite flags", fmt.Sprintf("%d/%d", cart.Stats.SpriteFlags, memory.SpriteCount)},
		{"map cells", fmt.Sprintf("%d/%d", cart.Stats.MapCells, memory.MapWidth*memory.MapHeight)},
		{"sounds", fmt.Sprintf("%d/%d", cart.Stats.Sounds, memory.SoundCount)},
		{"patterns", fmt.Sprintf("%d/%d", cart.Stats.Patterns, memory.PatternCount)},
	}
	for _, name := range cart.Exported {
		f = append(f, [2]string{"exported", name})
	}
	return f
}
