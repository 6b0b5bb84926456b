package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cozy-creator/comfy-panel/internal/backend"
	"github.com/cozy-creator/comfy-panel/internal/github"
)

const dateLayout = "2006-01-02"

type VersionOption struct {
	Key   string
	Label string
}

// VersionOptions lists the catalog newest key first.
func VersionOptions(versions backend.PyTorchVersions) []VersionOption {
	opts := make([]VersionOption, 0, len(versions))
	for key, label := range versions {
		opts = append(opts, VersionOption{Key: key, Label: label})
	}
	sort.Slice(opts, func(i, j int) bool {
		return opts[i].Key > opts[j].Key
	})
	return opts
}

type DepsSummary struct {
	Total        int
	Installed    int
	Missing      int
	MissingNames []string
	UsingPython  string
}

func NewDepsSummary(r *backend.DependencyReport) DepsSummary {
	s := DepsSummary{
		Total:       r.Total,
		Installed:   r.Installed,
		Missing:     r.Missing,
		UsingPython: r.UsingPython,
	}
	for _, pkg := range r.MissingPackages {
		s.MissingNames = append(s.MissingNames, pkg.Name)
	}
	return s
}

func (s DepsSummary) MissingList() string {
	return strings.Join(s.MissingNames, ", ")
}

type RepoCard struct {
	Name        string
	FullName    string
	Description string
	Stars       int
	Updated     string
	CloneURL    string
	HTMLURL     string
}

// SearchResults feeds the search region. When Message is set it replaces
// the card list; Failed marks it as an error rather than the empty state.
type SearchResults struct {
	Author  string
	Message string
	Failed  bool
	Repos   []RepoCard
}

func NewSearchResults(author string, result *github.SearchResult) SearchResults {
	out := SearchResults{Author: author}
	for _, repo := range result.Items {
		card := RepoCard{
			Name:        repo.Name,
			FullName:    repo.FullName,
			Description: repo.Description,
			Stars:       repo.StargazersCount,
			CloneURL:    repo.CloneURL,
			HTMLURL:     repo.HTMLURL,
		}
		if !repo.UpdatedAt.IsZero() {
			card.Updated = repo.UpdatedAt.Format(dateLayout)
		}
		out.Repos = append(out.Repos, card)
	}
	return out
}

func SearchFailure(author, message string) SearchResults {
	return SearchResults{Author: author, Message: message, Failed: true}
}

type DepsOutput struct {
	Success bool
	Output  string
}

type Logs struct {
	Entries []backend.LogEntry
	Level   string
	Search  string
}

type Setting struct {
	Key   string
	Value string
}

type Preset struct {
	Name     string
	Settings []Setting
}

// NewPresets sorts presets by name and each preset's settings by key.
func NewPresets(presets backend.Presets) []Preset {
	out := make([]Preset, 0, len(presets))
	for name, cfg := range presets {
		p := Preset{Name: name, Settings: make([]Setting, 0, len(cfg))}
		for key, value := range cfg {
			p.Settings = append(p.Settings, Setting{Key: key, Value: fmt.Sprint(value)})
		}
		sort.Slice(p.Settings, func(i, j int) bool {
			return p.Settings[i].Key < p.Settings[j].Key
		})
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// RecentFirst returns a reversed copy of the backend's oldest-first history.
func RecentFirst(entries []backend.HistoryEntry) []backend.HistoryEntry {
	out := make([]backend.HistoryEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}

type Page struct {
	BackendURL string
}
