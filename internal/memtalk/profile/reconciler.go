package profile

import (
	"fmt"
	"io"
	"os"

	"github.com/memtalk/memtalk/internal/memtalk"
	"github.com/memtalk/memtalk/internal/memtalk/prompt"
	"github.com/memtalk/memtalk/internal/openai"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	// DefaultMaxEdits bounds how many non-equal diff spans an accepted
	// revision may contain. A larger unsolicited change to a slowly
	// accumulated profile is treated as a runaway or corrupted edit.
	DefaultMaxEdits = 200

	profileMaxTokens = 4000
)

// Completer issues one chat-completion request.
type Completer interface {
	Complete(req openai.ChatCompletionRequest) (string, error)
}

// Reconciler asks the service for a revised profile document after each turn
// and decides, by diff magnitude, whether to accept it or roll back to the
// backup copy.
type Reconciler struct {
	completer Completer
	store     *Store
	model     string
	prompt    *prompt.Prompt
	maxEdits  int
	debug     bool
	errOut    io.Writer
}

// NewReconciler creates a reconciler. A nil prompt selects the built-in
// revision exchange.
func NewReconciler(completer Completer, store *Store, model string, p *prompt.Prompt) *Reconciler {
	if p == nil {
		p = prompt.DefaultProfilePrompt()
	}
	return &Reconciler{
		completer: completer,
		store:     store,
		model:     model,
		prompt:    p,
		maxEdits:  DefaultMaxEdits,
		errOut:    os.Stderr,
	}
}

// SetMaxEdits overrides the accepted-revision span limit.
func (r *Reconciler) SetMaxEdits(n int) {
	r.maxEdits = n
}

// SetDebug enables or disables debug output
func (r *Reconciler) SetDebug(enabled bool) {
	r.debug = enabled
}

// Reconcile runs one revision cycle: request a revised document, measure its
// divergence from the current one, and persist either the revision or the
// backup. Exactly maxEdits spans still accepts; rollback needs strictly more.
func (r *Reconciler) Reconcile() error {
	current, err := r.store.Load()
	if err != nil {
		return err
	}

	temp := 0.0
	revised, err := r.completer.Complete(openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []memtalk.Message{
			{Role: memtalk.RoleSystem, Content: r.prompt.System},
			{Role: memtalk.RoleUser, Content: r.prompt.User},
		},
		Temperature: &temp,
		MaxTokens:   profileMaxTokens,
	})
	if err != nil {
		return err
	}

	edits := countEdits(current, revised)
	if r.debug {
		fmt.Fprintf(r.errOut, "Profile revision: %d non-equal spans (limit %d)\n", edits, r.maxEdits)
	}

	if edits > r.maxEdits {
		restored, err := r.store.LoadBackup()
		if err != nil {
			return err
		}
		return r.store.Save(restored)
	}

	return r.store.Save(revised)
}

// countEdits counts the non-equal spans of a character-level diff between
// the two documents.
func countEdits(original, revised string) int {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, revised, false)

	count := 0
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			count++
		}
	}
	return count
}
