package api

import (
	"sync"

	"github.com/cozy-creator/comfy-panel/internal/panel"
)

// ControlState is the button state the page should apply once a request
// settles.
type ControlState struct {
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
}

type ActionResponse struct {
	OK      bool              `json:"ok"`
	Regions map[string]string `json:"regions"`
	Notices []panel.Notice    `json:"notices"`
	Control ControlState      `json:"control"`
}

// recorder is the request-scoped Control and Display for one web action.
// It remembers every control state it passed through.
type recorder struct {
	mu      sync.Mutex
	control ControlState
	history []ControlState
	regions map[string]string
	notices []panel.Notice
}

func newRecorder(label string) *recorder {
	return &recorder{
		control: ControlState{Label: label},
		regions: map[string]string{},
		notices: []panel.Notice{},
	}
}

func (r *recorder) Label() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.control.Label
}

func (r *recorder) SetLabel(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.control.Label = label
	r.history = append(r.history, r.control)
}

func (r *recorder) Disabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.control.Disabled
}

func (r *recorder) SetDisabled(disabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.control.Disabled = disabled
	r.history = append(r.history, r.control)
}

func (r *recorder) Replace(region panel.Region, content string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.regions[string(region)] = content
}

func (r *recorder) Notify(n panel.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recorder) response(ok bool) ActionResponse {
	r.mu.Lock()
	defer r.mu.Unlock()

	regions := make(map[string]string, len(r.regions))
	for k, v := range r.regions {
		regions[k] = v
	}
	return ActionResponse{
		OK:      ok,
		Regions: regions,
		Notices: append([]panel.Notice{}, r.notices...),
		Control: r.control,
	}
}
