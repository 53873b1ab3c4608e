package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/brailler/internal/braille"
	"github.com/san-kum/brailler/internal/viz"
)

// maxLine caps a single input line.
const maxLine = 16 << 20

// LiveRenderer transcribes a stream line by line, printing each result as
// soon as its line arrives.
type LiveRenderer struct {
	codec  *braille.Codec
	styles viz.Styles
	out    io.Writer
	decode bool
	dots   bool
	lines  int
}

func NewLiveRenderer(out io.Writer, codec *braille.Codec, styles viz.Styles) *LiveRenderer {
	if codec == nil {
		codec = braille.Default()
	}
	return &LiveRenderer{codec: codec, styles: styles, out: out}
}

// Decoding switches the renderer to Braille to text.
func (r *LiveRenderer) Decoding(on bool) *LiveRenderer {
	r.decode = on
	return r
}

// WithDots draws a dot grid under every encoded line.
func (r *LiveRenderer) WithDots(on bool) *LiveRenderer {
	r.dots = on
	return r
}

// Lines reports how many lines were rendered.
func (r *LiveRenderer) Lines() int { return r.lines }

// Run reads in until EOF or until ctx is done.
func (r *LiveRenderer) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.OnLine(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// OnLine renders a single line.
func (r *LiveRenderer) OnLine(line string) error {
	var b strings.Builder
	if r.decode {
		b.WriteString(r.codec.Decode(line))
		b.WriteString("\n")
	} else {
		cells := r.codec.Encode(line)
		b.WriteString(r.styles.Braille.Render(cells))
		b.WriteString("\n")
		if r.dots && cells != "" {
			b.WriteString(r.styles.BigCells(cells, 2))
			b.WriteString("\n\n")
		}
	}
	if _, err := fmt.Fprint(r.out, b.String()); err != nil {
		return fmt.Errorf("tui: write: %w", err)
	}
	r.lines++
	return nil
}
