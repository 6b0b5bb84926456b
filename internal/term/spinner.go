// Package term is the terminal front-end: a spinner stands in for the
// triggering button and a printer for the page.
package term

import (
	"io"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

// Spinner is a panel.Control. While disabled it animates an mpb spinner
// next to its current label.
type Spinner struct {
	out io.Writer

	mu       sync.Mutex
	label    string
	disabled bool
	progress *mpb.Progress
	bar      *mpb.Bar
}

func NewSpinner(out io.Writer, label string) *Spinner {
	return &Spinner{out: out, label: label}
}

func (s *Spinner) Label() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label
}

func (s *Spinner) SetLabel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.label = label
}

func (s *Spinner) Disabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disabled
}

func (s *Spinner) SetDisabled(disabled bool) {
	s.mu.Lock()
	if s.disabled == disabled {
		s.mu.Unlock()
		return
	}
	s.disabled = disabled

	if disabled {
		s.start()
		s.mu.Unlock()
		return
	}

	progress, bar := s.progress, s.bar
	s.progress, s.bar = nil, nil
	s.mu.Unlock()

	// The label decorator takes s.mu, so the bar is torn down unlocked.
	if bar != nil {
		bar.Abort(true)
	}
	if progress != nil {
		progress.Wait()
	}
}

// start must be called with s.mu held.
func (s *Spinner) start() {
	s.progress = mpb.New(
		mpb.WithOutput(s.out),
		mpb.WithWidth(1),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	s.bar = s.progress.AddSpinner(0,
		mpb.PrependDecorators(decor.Name(" ")),
		mpb.AppendDecorators(
			decor.Any(func(decor.Statistics) string {
				return " " + s.Label()
			}),
		),
	)
}
