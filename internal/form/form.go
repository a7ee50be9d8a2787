// Package form holds the state of the transform form and the transitions
// user actions and network completions drive. The web page implements the
// same record in JavaScript; this version backs the terminal client.
package form

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// CopiedResetDelay is how long Copied stays set after a copy.
const CopiedResetDelay = 2000 * time.Millisecond

const (
	msgEmptyInput = "Input cannot be empty."
	msgUnexpected = "An unexpected error occurred. Please try again."
)

// ErrBusy is returned by Submit while a submission is in flight.
var ErrBusy = errors.New("form: submission in flight")

// Transformer sends text to the transform endpoint.
type Transformer interface {
	Transform(ctx context.Context, text string) (string, error)
}

// TransformerFunc adapts a function to Transformer.
type TransformerFunc func(ctx context.Context, text string) (string, error)

func (f TransformerFunc) Transform(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func(text string) error

func (f ClipboardFunc) WriteAll(text string) error { return f(text) }

// State is a snapshot of the form.
type State struct {
	Input   string
	Output  string
	Loading bool
	Error   string
	Copied  bool
}

// Form is safe for concurrent use.
type Form struct {
	api  Transformer
	clip Clipboard

	// after schedules f after d; replaced in tests.
	after func(d time.Duration, f func())

	mu      sync.Mutex
	state   State
	copyGen int
}

// New returns an empty form. clip may be nil, in which case Copy fails.
func New(api Transformer, clip Clipboard) *Form {
	return &Form{
		api:  api,
		clip: clip,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// State returns a snapshot.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) SetInput(text string) {
	f.mu.Lock()
	f.state.Input = text
	f.mu.Unlock()
}

// Submit sends the current input. Whitespace-only input sets a local error
// without calling the transformer. Transform failures land in State().Error;
// the only returned error is ErrBusy.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state.Loading {
		f.mu.Unlock()
		return ErrBusy
	}
	if strings.TrimSpace(f.state.Input) == "" {
		f.state.Error = msgEmptyInput
		f.state.Output = ""
		f.state.Copied = false
		f.mu.Unlock()
		return nil
	}
	f.state.Loading = true
	f.state.Error = ""
	f.state.Output = ""
	f.state.Copied = false
	input := f.state.Input
	f.mu.Unlock()

	out, err := f.api.Transform(ctx, input)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Loading = false
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = msgUnexpected
		}
		f.state.Error = msg
		return nil
	}
	f.state.Output = out
	return nil
}

// Copy writes the output to the clipboard and sets Copied for
// CopiedResetDelay. It is a no-op when there is no output.
func (f *Form) Copy() error {
	f.mu.Lock()
	text := f.state.Output
	f.mu.Unlock()

	if text == "" {
		return nil
	}
	if f.clip == nil {
		return errors.New("form: no clipboard available")
	}
	if err := f.clip.WriteAll(text); err != nil {
		return err
	}

	f.mu.Lock()
	f.state.Copied = true
	f.copyGen++
	gen := f.copyGen
	f.mu.Unlock()

	f.after(CopiedResetDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		// A newer copy owns the flag.
		if f.copyGen == gen {
			f.state.Copied = false
		}
	})
	return nil
}
