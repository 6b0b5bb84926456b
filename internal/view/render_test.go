package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cozy-creator/comfy-panel/internal/backend"
	"github.com/cozy-creator/comfy-panel/internal/github"
	"github.com/cozy-creator/comfy-panel/internal/i18n"
)

var en = i18n.New(i18n.English)

func renderers(t *testing.T) map[string]Renderer {
	t.Helper()
	h, err := NewHTML()
	require.NoError(t, err)
	txt, err := NewText()
	require.NoError(t, err)
	return map[string]Renderer{"html": h, "text": txt}
}

func sampleReport() *backend.DependencyReport {
	return &backend.DependencyReport{
		Total:     10,
		Installed: 7,
		Missing:   3,
		MissingPackages: []backend.Requirement{
			{Name: "numpy"}, {Name: "pillow"}, {Name: "scipy"},
		},
	}
}

func TestRenderDeps(t *testing.T) {
	for name, r := range renderers(t) {
		t.Run(name, func(t *testing.T) {
			out, err := r.Render(en, Deps, NewDepsSummary(sampleReport()))
			require.NoError(t, err)

			assert.Contains(t, out, "Total: 10")
			assert.Contains(t, out, "Installed: 7")
			assert.Contains(t, out, "Missing: 3")
			assert.Contains(t, out, "numpy, pillow, scipy")
		})
	}
}

func TestRenderDeps_Chinese(t *testing.T) {
	r, err := NewHTML()
	require.NoError(t, err)

	out, err := r.Render(i18n.New(i18n.Chinese), Deps, NewDepsSummary(sampleReport()))
	require.NoError(t, err)
	assert.Contains(t, out, "总计：10")
	assert.Contains(t, out, "缺失：3")
}

func TestRenderNodes_EscapesNames(t *testing.T) {
	r, err := NewHTML()
	require.NoError(t, err)

	nodes := []backend.CustomNode{
		{Name: `<script>alert("x")</script>`, Enabled: true, IsGitRepo: true, FilesCount: 4},
	}
	out, err := r.Render(en, Nodes, nodes)
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, `data-action="toggle-node"`)
	assert.Contains(t, out, `data-action="update-node"`)
	assert.Contains(t, out, "4 files")
}

func TestRenderNodes_Empty(t *testing.T) {
	for name, r := range renderers(t) {
		t.Run(name, func(t *testing.T) {
			out, err := r.Render(en, Nodes, []backend.CustomNode(nil))
			require.NoError(t, err)
			assert.Contains(t, out, "No custom nodes installed")
		})
	}
}

func TestRenderSearch_Cards(t *testing.T) {
	result := &github.SearchResult{Items: []github.Repository{
		{
			Name:            "ComfyUI-Impact-Pack",
			FullName:        "ltdrdata/ComfyUI-Impact-Pack",
			StargazersCount: 1500,
			Description:     `Detailer <b>nodes</b>`,
			UpdatedAt:       time.Date(2024, 10, 3, 8, 0, 0, 0, time.UTC),
			CloneURL:        "https://github.com/ltdrdata/ComfyUI-Impact-Pack.git",
			HTMLURL:         "https://github.com/ltdrdata/ComfyUI-Impact-Pack",
		},
		{Name: "empty-desc", CloneURL: "https://github.com/ltdrdata/empty-desc.git"},
	}}

	r, err := NewHTML()
	require.NoError(t, err)
	out, err := r.Render(en, Search, NewSearchResults("ltdrdata", result))
	require.NoError(t, err)

	assert.Contains(t, out, "2 repositories found")
	assert.Contains(t, out, "★ 1500")
	assert.Contains(t, out, "Updated 2024-10-03")
	assert.Contains(t, out, "Detailer &lt;b&gt;nodes&lt;/b&gt;")
	assert.Contains(t, out, "No description")
	assert.Contains(t, out, `data-arg-giturl="https://github.com/ltdrdata/ComfyUI-Impact-Pack.git"`)
}

func TestRenderSearch_EmptyState(t *testing.T) {
	for name, r := range renderers(t) {
		t.Run(name, func(t *testing.T) {
			out, err := r.Render(en, Search, NewSearchResults("nobody", &github.SearchResult{}))
			require.NoError(t, err)
			assert.Contains(t, out, "No repositories found for nobody")
		})
	}
}

func TestRenderSearch_Failure(t *testing.T) {
	r, err := NewHTML()
	require.NoError(t, err)

	out, err := r.Render(en, Search, SearchFailure("x", "Search failed: Validation Failed"))
	require.NoError(t, err)
	assert.Contains(t, out, `class="error"`)
	assert.Contains(t, out, "Search failed: Validation Failed")
}

func TestVersionOptions(t *testing.T) {
	opts := VersionOptions(backend.PyTorchVersions{
		"2.4.1+cu121": "PyTorch 2.4.1 (CUDA 12.1)",
		"2.5.1+cu124": "PyTorch 2.5.1 (CUDA 12.4)",
		"2.5.1+cpu":   "PyTorch 2.5.1 (CPU)",
	})

	require.Len(t, opts, 3)
	assert.Equal(t, "2.5.1+cu124", opts[0].Key)
	assert.Equal(t, "2.5.1+cpu", opts[1].Key)
	assert.Equal(t, "2.4.1+cu121", opts[2].Key)
}

func TestRenderPyTorch(t *testing.T) {
	for name, r := range renderers(t) {
		t.Run(name, func(t *testing.T) {
			out, err := r.Render(en, PyTorchStatus, &backend.PyTorchInfo{
				Installed: true, Version: "2.5.1", CUDAAvailable: true, CUDAVersion: "12.4",
			})
			require.NoError(t, err)
			assert.Contains(t, out, "Version: 2.5.1")
			assert.Contains(t, out, "CUDA available: Yes")
			assert.Contains(t, out, "CUDA version: 12.4")

			out, err = r.Render(en, PyTorchStatus, &backend.PyTorchInfo{})
			require.NoError(t, err)
			assert.Contains(t, out, "PyTorch is not installed")
		})
	}
}

func TestRenderPage(t *testing.T) {
	r, err := NewHTML()
	require.NoError(t, err)

	out, err := r.Render(i18n.New(i18n.Chinese), HTMLPage, Page{BackendURL: "http://127.0.0.1:5000"})
	require.NoError(t, err)
	assert.Contains(t, out, `<html lang="zh">`)
	assert.Contains(t, out, "ComfyUI 控制面板")
	assert.Contains(t, out, `id="nodes-list"`)
}

func TestRenderPage_LocalizedControls(t *testing.T) {
	r, err := NewHTML()
	require.NoError(t, err)

	out, err := r.Render(i18n.New(i18n.Chinese), HTMLPage, Page{})
	require.NoError(t, err)
	assert.Contains(t, out, `name="force"> 强制</label>`)
	assert.Contains(t, out, `<option value="success">成功</option>`)
	assert.Contains(t, out, `id="system-status"`)
	assert.Contains(t, out, `id="presets"`)
	assert.Contains(t, out, `id="history"`)
	assert.NotContains(t, out, "> force<")
}

func TestRenderSystem(t *testing.T) {
	status := &backend.SystemStatus{
		CPU:    37.5,
		Memory: backend.MemoryUsage{Percent: 50, UsedGB: 16, TotalGB: 32},
		GPU: []backend.GPUUsage{
			{ID: 0, Name: "RTX <4090>", Load: 88, MemoryUsed: 20.5, MemoryTotal: 24, MemoryPercent: 85.4, Temperature: 71},
		},
		Info: backend.SystemInfo{Platform: "Linux", PlatformVersion: "6.8"},
	}

	for name, r := range renderers(t) {
		t.Run(name, func(t *testing.T) {
			out, err := r.Render(en, System, status)
			require.NoError(t, err)
			assert.Contains(t, out, "CPU: 37.5%")
			assert.Contains(t, out, "Memory: 16.00 GB of 32.00 GB used (50.0%)")
			assert.Contains(t, out, "load 88.0%, VRAM 20.50 / 24.00 GB (85.4%), 71°C")
			assert.Contains(t, out, "Platform: Linux 6.8")
			assert.NotContains(t, out, "No GPU detected")
		})
	}

	h, err := NewHTML()
	require.NoError(t, err)
	out, err := h.Render(en, System, status)
	require.NoError(t, err)
	assert.Contains(t, out, "RTX &lt;4090&gt;")
}

func TestRenderPresets(t *testing.T) {
	presets := NewPresets(backend.Presets{
		"low_memory": {"lowvram": true, "extra_args": "--cache-lru 8"},
		"default":    {"port": "8188"},
	})
	require.Len(t, presets, 2)
	assert.Equal(t, "default", presets[0].Name)
	assert.Equal(t, []Setting{{Key: "extra_args", Value: "--cache-lru 8"}, {Key: "lowvram", Value: "true"}}, presets[1].Settings)

	txt, err := NewText()
	require.NoError(t, err)
	out, err := txt.Render(en, PresetList, presets)
	require.NoError(t, err)
	assert.Contains(t, out, "lowvram = true")

	out, err = txt.Render(en, PresetList, NewPresets(nil))
	require.NoError(t, err)
	assert.Contains(t, out, "No presets")
}

func TestRecentFirst(t *testing.T) {
	entries := []backend.HistoryEntry{{Command: "a"}, {Command: "b"}, {Command: "c"}}
	got := RecentFirst(entries)

	assert.Equal(t, []backend.HistoryEntry{{Command: "c"}, {Command: "b"}, {Command: "a"}}, got)
	assert.Equal(t, "a", entries[0].Command, "input is not modified")
	assert.Empty(t, RecentFirst(nil))
}
