package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// Kind tells a success notification from an error one.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

const spinnerTick = 100 * time.Millisecond

var spinnerFrames = []string{"|", "/", "-", "\\"}

// Notifier prints the cosmetic feedback of the client: a spinner while an
// action "loads" and a one-line notification afterwards. Its delays never
// affect the outcome of an action; a cancelled context just cuts them short.
type Notifier struct {
	w       io.Writer
	latency time.Duration
}

func NewNotifier(w io.Writer, latency time.Duration) *Notifier {
	return &Notifier{w: w, latency: latency}
}

// Busy shows a spinner labelled label for the simulated latency. It
// returns false if ctx was cancelled first.
func (n *Notifier) Busy(ctx context.Context, label string) bool {
	if n.latency <= 0 {
		return ctx.Err() == nil
	}

	deadline := time.NewTimer(n.latency)
	defer deadline.Stop()
	ticker := time.NewTicker(spinnerTick)
	defer ticker.Stop()

	frame := 0
	n.frame(label, frame)
	for {
		select {
		case <-ctx.Done():
			n.clear(label)
			return false
		case <-deadline.C:
			n.clear(label)
			return true
		case <-ticker.C:
			frame++
			n.frame(label, frame)
		}
	}
}

// Notify prints msg marked with its kind.
func (n *Notifier) Notify(msg string, kind Kind) {
	mark := "✔"
	if kind == KindError {
		mark = "✖"
	}
	fmt.Fprintf(n.w, "%s %s\n", mark, msg)
}

func (n *Notifier) Success(msg string) { n.Notify(msg, KindSuccess) }

func (n *Notifier) Error(msg string) { n.Notify(msg, KindError) }

// Wait pauses for d, or less if ctx is cancelled. It reports whether the
// full delay elapsed.
func Wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (n *Notifier) frame(label string, i int) {
	fmt.Fprintf(n.w, "\r%s %s", spinnerFrames[i%len(spinnerFrames)], label)
}

func (n *Notifier) clear(label string) {
	fmt.Fprintf(n.w, "\r%s\r", strings.Repeat(" ", len(label)+2))
}
