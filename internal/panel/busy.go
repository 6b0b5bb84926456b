package panel

import "sync"

// Busy disables ctl and shows label until the returned release func runs.
// Release restores the label and disabled state seen at acquisition and is
// safe to call more than once, so callers can release early and still
// defer it for the panic path.
func Busy(ctl Control, label string) (release func()) {
	if ctl == nil {
		return func() {}
	}

	prevLabel := ctl.Label()
	prevDisabled := ctl.Disabled()

	ctl.SetDisabled(true)
	if label != "" {
		ctl.SetLabel(label)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			ctl.SetLabel(prevLabel)
			ctl.SetDisabled(prevDisabled)
		})
	}
}

// StaticControl is a Control with no UI behind it, for callers that trigger
// actions programmatically.
type StaticControl struct {
	mu       sync.Mutex
	label    string
	disabled bool
}

func NewStaticControl(label string) *StaticControl {
	return &StaticControl{label: label}
}

func (c *StaticControl) Label() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.label
}

func (c *StaticControl) SetLabel(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.label = label
}

func (c *StaticControl) Disabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disabled
}

func (c *StaticControl) SetDisabled(disabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disabled = disabled
}
