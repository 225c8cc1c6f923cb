package chat

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	indicatorLabel    = "Thinking"
	indicatorSteps    = 6
	indicatorInterval = 100 * time.Millisecond
)

// Indicator cycles a single-line "Thinking..." cue while a request is in
// flight, redrawing in place with a carriage return.
type Indicator struct {
	out      io.Writer
	label    string
	steps    int
	interval time.Duration
}

// NewIndicator creates an indicator writing to the given stream.
func NewIndicator(out io.Writer) *Indicator {
	return &Indicator{
		out:      out,
		label:    indicatorLabel,
		steps:    indicatorSteps,
		interval: indicatorInterval,
	}
}

// Run cycles the cue until stop is closed, then clears the line and returns.
// The stop channel is checked once per animation step, so the worst-case
// latency between the signal and the observed stop is one step.
// Write failures are cosmetic and ignored.
func (in *Indicator) Run(stop <-chan struct{}) {
	dots := 0
	for {
		select {
		case <-stop:
			fmt.Fprintf(in.out, "\r%s\r", strings.Repeat(" ", len(in.label)+in.steps))
			return
		default:
		}

		if dots == in.steps {
			// Clear the dots visually before the next cycle
			fmt.Fprintf(in.out, "\r%s%s", in.label, strings.Repeat(" ", in.steps))
			dots = 0
		} else {
			fmt.Fprintf(in.out, "\r%s%s", in.label, strings.Repeat(".", dots))
			dots++
		}

		time.Sleep(in.interval)
	}
}
