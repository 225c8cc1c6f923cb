package chat

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/memtalk/memtalk/internal/memtalk"
	"github.com/memtalk/memtalk/internal/openai"
)

var (
	userStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	botStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
)

// Completer issues one chat-completion request.
type Completer interface {
	Complete(req openai.ChatCompletionRequest) (string, error)
}

// Coordinator drives one request/response cycle per user turn: it overlaps
// the wait indicator with the in-flight request, then hands the reply off to
// the paced renderer.
type Coordinator struct {
	completer Completer
	conv      *memtalk.Conversation
	model     string
	indicator *Indicator
	renderer  *Renderer
	reconcile func() error
	in        *bufio.Scanner
	out       io.Writer
	errOut    io.Writer
	prompt    string
	debug     bool
}

// NewCoordinator creates a coordinator wired to the standard streams.
func NewCoordinator(completer Completer, conv *memtalk.Conversation, model string) *Coordinator {
	return &Coordinator{
		completer: completer,
		conv:      conv,
		model:     model,
		indicator: NewIndicator(os.Stdout),
		renderer:  NewRenderer(os.Stdout, botStyle.Render("Bot:")+" "),
		in:        bufio.NewScanner(os.Stdin),
		out:       os.Stdout,
		errOut:    os.Stderr,
		prompt:    userStyle.Render("You:") + " ",
	}
}

// SetDebug enables or disables debug output
func (co *Coordinator) SetDebug(enabled bool) {
	co.debug = enabled
}

// SetReconciler installs the post-turn profile reconciliation hook.
// A reconciliation failure fails the turn.
func (co *Coordinator) SetReconciler(fn func() error) {
	co.reconcile = fn
}

// RunTurn executes one full turn for the given raw input line.
// Blank input is not appended to the log but still triggers a request with
// whatever has accumulated so far.
func (co *Coordinator) RunTurn(input string) error {
	co.conv.AppendUser(input)

	if co.debug {
		fmt.Fprintf(co.errOut, "Conversation log for API request: %+v\n", co.conv.Messages)
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		co.indicator.Run(stop)
	}()

	response, err := co.completer.Complete(openai.ChatCompletionRequest{
		Model:    co.model,
		Messages: co.conv.Messages,
	})

	// The cue must be cleared before anything else reaches the terminal.
	close(stop)
	<-done

	if err != nil {
		return err
	}

	if rerr := co.renderer.Render(response); rerr != nil {
		fmt.Fprintf(co.errOut, "Warning: failed to render response: %v\n", rerr)
	}

	co.conv.AppendAssistant(response)

	if co.reconcile != nil {
		if err := co.reconcile(); err != nil {
			return fmt.Errorf("updating profile: %w", err)
		}
	}

	return nil
}

// Loop reads input lines and runs turns until EOF or a turn-fatal error.
func (co *Coordinator) Loop() error {
	for {
		fmt.Fprint(co.out, co.prompt)

		if !co.in.Scan() {
			// EOF (Ctrl+D) or error
			if err := co.in.Err(); err != nil {
				return fmt.Errorf("input error: %w", err)
			}
			fmt.Fprintln(co.errOut, "\nGoodbye!")
			return nil
		}

		if err := co.RunTurn(co.in.Text()); err != nil {
			return err
		}
	}
}
