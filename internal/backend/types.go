package backend

import "strings"

type PyTorchInfo struct {
	Installed     bool   `json:"installed"`
	Version       string `json:"version"`
	CUDAAvailable bool   `json:"cuda_available"`
	CUDAVersion   string `json:"cuda_version"`
	UsingPython   string `json:"using_python"`
}

// PyTorchVersions maps an install key (e.g. "2.5.1+cu124") to its display label.
type PyTorchVersions map[string]string

type PythonCheck struct {
	Version     string `json:"version"`
	Compatible  bool   `json:"compatible"`
	Recommended string `json:"recommended"`
	Executable  string `json:"executable"`
}

type PythonEnv struct {
	Path       string `json:"path"`
	Version    string `json:"version"`
	Current    bool   `json:"current"`
	Configured bool   `json:"configured"`
	Invalid    bool   `json:"invalid"`
	Source     string `json:"source"`
	Location   string `json:"location"`
}

type Requirement struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Operator string `json:"operator"`
	Raw      string `json:"raw"`
}

type DependencyReport struct {
	Total           int           `json:"total"`
	Installed       int           `json:"installed"`
	Missing         int           `json:"missing"`
	MissingPackages []Requirement `json:"missing_packages"`
	UsingPython     string        `json:"using_python"`
}

type CustomNode struct {
	Name             string `json:"name"`
	Path             string `json:"path"`
	Enabled          bool   `json:"enabled"`
	IsGitRepo        bool   `json:"is_git_repo"`
	FilesCount       int    `json:"files_count"`
	HasRequirements  bool   `json:"has_requirements"`
	HasInstallScript bool   `json:"has_install_script"`
	GitURL           string `json:"git_url"`
}

type DiskUsage struct {
	TotalGB float64 `json:"total_gb"`
	UsedGB  float64 `json:"used_gb"`
	FreeGB  float64 `json:"free_gb"`
	Percent float64 `json:"percent"`
}

type GitInfo struct {
	Installed bool   `json:"installed"`
	Version   string `json:"version"`
	Path      string `json:"path"`
}

type Diagnostics struct {
	Python PythonCheck `json:"python"`
	Disk   DiskUsage   `json:"disk"`
	Git    GitInfo     `json:"git"`
	Cwd    string      `json:"cwd"`
}

// ProcessInfo describes the running ComfyUI process. The backend sends null
// when nothing is running.
type ProcessInfo struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemoryMB   float64 `json:"memory_mb"`
	Status     string  `json:"status"`
	CreateTime float64 `json:"create_time"`
	NumThreads int     `json:"num_threads"`
}

type LauncherStatus struct {
	Running         bool         `json:"running"`
	Uptime          string       `json:"uptime"`
	PID             int          `json:"pid"`
	RestartAttempts int          `json:"restart_attempts"`
	ProcessInfo     *ProcessInfo `json:"process_info"`
}

type MemoryUsage struct {
	Percent     float64 `json:"percent"`
	UsedGB      float64 `json:"used_gb"`
	TotalGB     float64 `json:"total_gb"`
	AvailableGB float64 `json:"available_gb"`
}

// GPUUsage is one card. Load and MemoryPercent are percentages, memory is in
// GB and temperature in degrees Celsius.
type GPUUsage struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Load          float64 `json:"load"`
	MemoryUsed    float64 `json:"memory_used"`
	MemoryTotal   float64 `json:"memory_total"`
	MemoryPercent float64 `json:"memory_percent"`
	Temperature   float64 `json:"temperature"`
}

type SystemInfo struct {
	Platform        string  `json:"platform"`
	PlatformVersion string  `json:"platform_version"`
	PythonVersion   string  `json:"python_version"`
	CPUCount        int     `json:"cpu_count"`
	CPUFreq         float64 `json:"cpu_freq"`
	TotalMemoryGB   float64 `json:"total_memory_gb"`
}

type SystemStatus struct {
	CPU    float64     `json:"cpu"`
	Memory MemoryUsage `json:"memory"`
	GPU    []GPUUsage  `json:"gpu"`
	Info   SystemInfo  `json:"info"`
}

// Presets maps a preset name to the launcher settings it applies.
type Presets map[string]map[string]any

// HistoryEntry is one recorded launch.
type HistoryEntry struct {
	Timestamp string         `json:"timestamp"`
	Command   string         `json:"command"`
	Config    map[string]any `json:"config"`
}

type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Level     string `json:"level"`
}

// LogQuery filters GET /api/logs. Zero values mean "all levels", "no search"
// and the backend's default limit.
type LogQuery struct {
	Level  string
	Search string
	Limit  int
}

// ActionResult is the envelope every mutating endpoint answers with. The
// backend is inconsistent about where it puts the human readable text, so
// callers should use Text.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
	PID     int    `json:"pid,omitempty"`
}

// Text returns the first non-empty of message, error and output.
func (r *ActionResult) Text() string {
	if r == nil {
		return ""
	}

	for _, s := range []string{r.Message, r.Error, r.Output} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}
