package terminal

import (
	"bytes"
	"fmt"
	"io"

	"github.com/CalvoM/chip-8/internal/machine"
)

const (
	escHome       = "\x1b[H"
	escClear      = "\x1b[2J"
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
)

// half block glyphs indexed by top pixel | bottom pixel<<1.
var glyphs = [4]string{" ", "▀", "▄", "█"}

// Renderer draws frames as text, two display rows per text line.
type Renderer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewRenderer returns a renderer that writes to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Start clears the screen and hides the cursor.
func (r *Renderer) Start() error {
	if _, err := io.WriteString(r.w, escClear+escHideCursor); err != nil {
		return fmt.Errorf("preparing screen: %w", err)
	}
	return nil
}

// Stop shows the cursor again and moves it below the drawn frame.
func (r *Renderer) Stop() error {
	if _, err := io.WriteString(r.w, escShowCursor+"\r\n"); err != nil {
		return fmt.Errorf("restoring screen: %w", err)
	}
	return nil
}

// Render draws the frame starting at the top left of the screen.
// Lines end with CR LF as the terminal output is not translated in raw mode.
func (r *Renderer) Render(frame machine.Frame) error {
	r.buf.Reset()
	r.buf.WriteString(escHome)

	for y := 0; y < machine.DisplayHeight; y += 2 {
		for x := range machine.DisplayWidth {
			index := 0
			if frame.Pixel(x, y) {
				index |= 1
			}
			if frame.Pixel(x, y+1) {
				index |= 2
			}
			r.buf.WriteString(glyphs[index])
		}
		r.buf.WriteString("\r\n")
	}

	if _, err := r.w.Write(r.buf.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
