package chat

import (
	"fmt"
	"io"
	"time"
)

const renderDelay = 10 * time.Millisecond

// Renderer paces the visual output of a completed reply one rune at a time.
type Renderer struct {
	out   io.Writer
	label string
	delay time.Duration
}

// NewRenderer creates a renderer with the given lead-in label.
func NewRenderer(out io.Writer, label string) *Renderer {
	return &Renderer{
		out:   out,
		label: label,
		delay: renderDelay,
	}
}

// Render emits the label, then each rune of text with a fixed delay, and a
// trailing newline. It runs on the calling goroutine.
func (r *Renderer) Render(text string) error {
	if _, err := fmt.Fprint(r.out, r.label); err != nil {
		return err
	}
	for _, ch := range text {
		if _, err := fmt.Fprintf(r.out, "%c", ch); err != nil {
			return err
		}
		time.Sleep(r.delay)
	}
	_, err := fmt.Fprintln(r.out)
	return err
}
