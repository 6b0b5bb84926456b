package term

import (
	"context"
	"io"

	"github.com/cozy-creator/comfy-panel/internal/panel"
)

// Action is one panel call driven from the terminal.
type Action func(ctx context.Context, p *panel.Panel, ctl panel.Control, d panel.Display) error

// Run executes action with a spinner control labeled label, then prints what
// it rendered. The action's error is returned after printing.
func Run(ctx context.Context, p *panel.Panel, out, errOut io.Writer, label string, action Action) error {
	printer := NewPrinter(out, errOut, p.Localizer())
	spinner := NewSpinner(errOut, label)

	err := action(ctx, p, spinner, printer)
	printer.Flush()
	return err
}
