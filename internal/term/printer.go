package term

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/cozy-creator/comfy-panel/internal/i18n"
	"github.com/cozy-creator/comfy-panel/internal/panel"
)

var regionTitles = map[panel.Region]string{
	panel.RegionLauncher:      "section.launcher",
	panel.RegionPyTorchStatus: "section.pytorch",
	panel.RegionPythonStatus:  "section.python",
	panel.RegionDeps:          "section.deps",
	panel.RegionNodes:         "section.nodes",
	panel.RegionSearch:        "section.search",
	panel.RegionDiagnostics:   "section.diagnostics",
	panel.RegionSystem:        "section.system",
	panel.RegionPresets:       "section.presets",
	panel.RegionHistory:       "section.history",
	panel.RegionLogs:          "section.logs",
}

// Printer is a panel.Display. Notices go straight to errOut; regions are
// collected and written in page order by Flush.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	loc    i18n.Localizer

	mu      sync.Mutex
	regions map[panel.Region]string
}

func NewPrinter(out, errOut io.Writer, loc i18n.Localizer) *Printer {
	return &Printer{
		out:     out,
		errOut:  errOut,
		loc:     loc,
		regions: map[panel.Region]string{},
	}
}

func (p *Printer) Replace(region panel.Region, content string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.regions[region] = content
}

func (p *Printer) Notify(n panel.Notice) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.errOut, "%s %s\n", noticePrefix(n.Level), n.Message)
}

func noticePrefix(level panel.Level) string {
	switch level {
	case panel.LevelSuccess:
		return "✔"
	case panel.LevelAlert:
		return "!"
	case panel.LevelError:
		return "✘"
	default:
		return "•"
	}
}

// Flush writes every collected region and forgets them.
func (p *Printer) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, region := range panel.Regions {
		content, ok := p.regions[region]
		if !ok {
			continue
		}
		content = strings.TrimRight(content, "\n ")
		if strings.TrimSpace(content) == "" {
			continue
		}

		if key, ok := regionTitles[region]; ok {
			fmt.Fprintf(p.out, "%s\n", p.loc.T(key))
		}
		fmt.Fprintf(p.out, "%s\n\n", strings.TrimLeft(content, "\n"))
	}
	p.regions = map[panel.Region]string{}
}
