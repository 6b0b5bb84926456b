package i18n

var messages = map[Locale]map[string]string{
	English: {
		"page.title": "ComfyUI Control Panel",

		"section.launcher":    "Launcher",
		"section.pytorch":     "PyTorch",
		"section.python":      "Python Environment",
		"section.deps":        "Dependencies",
		"section.nodes":       "Custom Nodes",
		"section.search":      "Find Nodes by Author",
		"section.model":       "Model Download",
		"section.diagnostics": "Diagnostics",
		"section.logs":        "Logs",
		"section.system":      "System Monitor",
		"section.presets":     "Presets",
		"section.history":     "Launch History",

		"button.check":    "Check",
		"button.refresh":  "Refresh",
		"button.install":  "Install",
		"button.save":     "Save",
		"button.find":     "Find",
		"button.search":   "Search",
		"button.download": "Download",
		"button.start":    "Start",
		"button.stop":     "Stop",
		"button.restart":  "Restart",
		"button.clear":    "Clear",

		"placeholder.git_url":     "https://github.com/user/repo.git",
		"placeholder.python_path": "Path to the Python executable",
		"placeholder.author":      "GitHub user or organization",
		"placeholder.model_url":   "https://huggingface.co/org/model",
		"placeholder.save_path":   "models/checkpoints",
		"placeholder.log_search":  "Filter logs",

		"common.yes":           "Yes",
		"common.no":            "No",
		"common.network_error": "Request failed: %s",
		"common.unknown_error": "Operation failed",
		"common.checking":      "Checking...",

		"pytorch.not_installed":   "PyTorch is not installed",
		"pytorch.version":         "Version: %s",
		"pytorch.cuda_available":  "CUDA available: %s",
		"pytorch.cuda_version":    "CUDA version: %s",
		"pytorch.using_python":    "Python: %s",
		"pytorch.select_version":  "Please select a PyTorch version",
		"pytorch.installing":      "Installing...",
		"pytorch.install_started": "PyTorch installation started. Check the logs for progress.",
		"pytorch.install_failed":  "PyTorch installation failed",

		"python.version":      "Version: %s",
		"python.compatible":   "Compatible",
		"python.incompatible": "Incompatible",
		"python.recommended":  "Recommended: %s",
		"python.executable":   "Executable: %s",
		"python.no_envs":      "No Python environments found",
		"python.current":      "current",
		"python.configured":   "configured",
		"python.invalid":      "invalid",
		"python.use":          "Use",
		"python.enter_path":   "Please enter a Python executable path",
		"python.saving":       "Saving...",
		"python.saved":        "Python path saved",
		"python.save_failed":  "Failed to save the Python path",

		"deps.total":           "Total: %d",
		"deps.installed":       "Installed: %d",
		"deps.missing":         "Missing: %d",
		"deps.missing_list":    "Missing packages: %s",
		"deps.all_ok":          "All dependencies are satisfied",
		"deps.using_python":    "Python: %s",
		"deps.installing":      "Installing...",
		"deps.install_success": "Dependencies installed",
		"deps.install_failed":  "Dependency installation failed",

		"nodes.empty":           "No custom nodes installed",
		"nodes.enabled":         "Enabled",
		"nodes.disabled":        "Disabled",
		"nodes.git":             "Git",
		"nodes.files":           "%d files",
		"nodes.requirements":    "requirements.txt",
		"nodes.enable":          "Enable",
		"nodes.disable":         "Disable",
		"nodes.update":          "Update",
		"nodes.delete":          "Delete",
		"nodes.install":         "Install",
		"nodes.enter_git_url":   "Please enter a Git repository URL",
		"nodes.enter_name":      "Please select a node",
		"nodes.installing":      "Installing...",
		"nodes.enabling":        "Enabling...",
		"nodes.disabling":       "Disabling...",
		"nodes.deleting":        "Deleting...",
		"nodes.updating":        "Updating...",
		"nodes.install_success": "Node installed successfully",
		"nodes.install_failed":  "Node installation failed",
		"nodes.enable_success":  "Node %s enabled",
		"nodes.disable_success": "Node %s disabled",
		"nodes.toggle_failed":   "Failed to change the node state",
		"nodes.delete_success":  "Node %s deleted",
		"nodes.delete_failed":   "Failed to delete the node",
		"nodes.update_success":  "Node %s updated",
		"nodes.update_failed":   "Failed to update the node",

		"search.enter_author":         "Please enter an author name",
		"search.searching":            "Searching...",
		"search.rate_limited":         "GitHub API rate limit exceeded. Try again after %s",
		"search.rate_limited_unknown": "GitHub API rate limit exceeded. Try again later",
		"search.failed":               "Search failed: %s",
		"search.failed_generic":       "GitHub API request failed",
		"search.empty":                "No repositories found for %s",
		"search.results":              "%d repositories found",
		"search.stars":                "★ %d",
		"search.updated":              "Updated %s",
		"search.no_description":       "No description",

		"model.enter_url":        "Please enter a model URL",
		"model.downloading":      "Downloading...",
		"model.download_started": "Download started. Check the logs for progress.",
		"model.download_failed":  "Model download failed",

		"diag.disk":        "Disk: %.2f GB free of %.2f GB (%.1f%% used)",
		"diag.git":         "Git: %s",
		"diag.git_missing": "Git not found",
		"diag.cwd":         "Working directory: %s",

		"launcher.running":         "Running",
		"launcher.stopped":         "Stopped",
		"launcher.uptime":          "Uptime: %s",
		"launcher.pid":             "PID: %d",
		"launcher.restarts":        "Restart attempts: %d",
		"launcher.starting":        "Starting...",
		"launcher.stopping":        "Stopping...",
		"launcher.restarting":      "Restarting...",
		"launcher.start_success":   "Process started",
		"launcher.stop_success":    "Process stopped",
		"launcher.restart_success": "Process restarted",
		"launcher.action_failed":   "Launcher operation failed",

		"logs.empty":         "No log entries",
		"logs.clearing":      "Clearing...",
		"logs.cleared":       "Logs cleared",
		"logs.clear_failed":  "Failed to clear logs",
		"logs.level_all":     "All levels",
		"logs.level_info":    "Info",
		"logs.level_success": "Success",
		"logs.level_warning": "Warning",
		"logs.level_error":   "Error",

		"launcher.force":   "Force",
		"launcher.process": "Process: %s, CPU %.1f%%, memory %.1f MB, %d threads",

		"system.cpu":       "CPU: %.1f%%",
		"system.memory":    "Memory: %.2f GB of %.2f GB used (%.1f%%)",
		"system.gpu":       "GPU %d %s: load %.1f%%, VRAM %.2f / %.2f GB (%.1f%%), %.0f°C",
		"system.no_gpu":    "No GPU detected",
		"system.platform":  "Platform: %s %s",
		"system.cpu_count": "CPU cores: %d (%.0f MHz)",
		"system.python":    "Python: %s",

		"presets.empty":   "No presets",
		"history.empty":   "No launches recorded",
		"history.command": "%s  %s",
	},

	Chinese: {
		"page.title": "ComfyUI 控制面板",

		"section.launcher":    "启动器",
		"section.pytorch":     "PyTorch",
		"section.python":      "Python 环境",
		"section.deps":        "依赖",
		"section.nodes":       "自定义节点",
		"section.search":      "按作者查找节点",
		"section.model":       "模型下载",
		"section.diagnostics": "系统诊断",
		"section.logs":        "日志",
		"section.system":      "系统监控",
		"section.presets":     "预设",
		"section.history":     "启动历史",

		"button.check":    "检查",
		"button.refresh":  "刷新",
		"button.install":  "安装",
		"button.save":     "保存",
		"button.find":     "查找",
		"button.search":   "搜索",
		"button.download": "下载",
		"button.start":    "启动",
		"button.stop":     "停止",
		"button.restart":  "重启",
		"button.clear":    "清除",

		"placeholder.git_url":     "https://github.com/user/repo.git",
		"placeholder.python_path": "Python 可执行文件路径",
		"placeholder.author":      "GitHub 用户或组织",
		"placeholder.model_url":   "https://huggingface.co/org/model",
		"placeholder.save_path":   "models/checkpoints",
		"placeholder.log_search":  "筛选日志",

		"common.yes":           "是",
		"common.no":            "否",
		"common.network_error": "请求失败：%s",
		"common.unknown_error": "操作失败",
		"common.checking":      "检查中...",

		"pytorch.not_installed":   "未安装 PyTorch",
		"pytorch.version":         "版本：%s",
		"pytorch.cuda_available":  "CUDA 可用：%s",
		"pytorch.cuda_version":    "CUDA 版本：%s",
		"pytorch.using_python":    "Python：%s",
		"pytorch.select_version":  "请选择 PyTorch 版本",
		"pytorch.installing":      "安装中...",
		"pytorch.install_started": "PyTorch 安装已开始，请查看日志了解进度。",
		"pytorch.install_failed":  "PyTorch 安装失败",

		"python.version":      "版本：%s",
		"python.compatible":   "兼容",
		"python.incompatible": "不兼容",
		"python.recommended":  "推荐版本：%s",
		"python.executable":   "可执行文件：%s",
		"python.no_envs":      "未找到 Python 环境",
		"python.current":      "当前",
		"python.configured":   "已配置",
		"python.invalid":      "无效",
		"python.use":          "使用",
		"python.enter_path":   "请输入 Python 可执行文件路径",
		"python.saving":       "保存中...",
		"python.saved":        "Python 路径已保存",
		"python.save_failed":  "保存 Python 路径失败",

		"deps.total":           "总计：%d",
		"deps.installed":       "已安装：%d",
		"deps.missing":         "缺失：%d",
		"deps.missing_list":    "缺失的包：%s",
		"deps.all_ok":          "所有依赖均已满足",
		"deps.using_python":    "Python：%s",
		"deps.installing":      "安装中...",
		"deps.install_success": "依赖安装完成",
		"deps.install_failed":  "依赖安装失败",

		"nodes.empty":           "未安装自定义节点",
		"nodes.enabled":         "已启用",
		"nodes.disabled":        "已禁用",
		"nodes.git":             "Git",
		"nodes.files":           "%d 个文件",
		"nodes.requirements":    "requirements.txt",
		"nodes.enable":          "启用",
		"nodes.disable":         "禁用",
		"nodes.update":          "更新",
		"nodes.delete":          "删除",
		"nodes.install":         "安装",
		"nodes.enter_git_url":   "请输入 Git 仓库地址",
		"nodes.enter_name":      "请选择节点",
		"nodes.installing":      "安装中...",
		"nodes.enabling":        "启用中...",
		"nodes.disabling":       "禁用中...",
		"nodes.deleting":        "删除中...",
		"nodes.updating":        "更新中...",
		"nodes.install_success": "节点安装成功",
		"nodes.install_failed":  "节点安装失败",
		"nodes.enable_success":  "已启用节点 %s",
		"nodes.disable_success": "已禁用节点 %s",
		"nodes.toggle_failed":   "更改节点状态失败",
		"nodes.delete_success":  "已删除节点 %s",
		"nodes.delete_failed":   "删除节点失败",
		"nodes.update_success":  "已更新节点 %s",
		"nodes.update_failed":   "更新节点失败",

		"search.enter_author":         "请输入作者名称",
		"search.searching":            "搜索中...",
		"search.rate_limited":         "GitHub API 请求次数超限，请在 %s 之后重试",
		"search.rate_limited_unknown": "GitHub API 请求次数超限，请稍后重试",
		"search.failed":               "搜索失败：%s",
		"search.failed_generic":       "GitHub API 请求失败",
		"search.empty":                "未找到 %s 的仓库",
		"search.results":              "找到 %d 个仓库",
		"search.stars":                "★ %d",
		"search.updated":              "更新于 %s",
		"search.no_description":       "暂无描述",

		"model.enter_url":        "请输入模型地址",
		"model.downloading":      "下载中...",
		"model.download_started": "下载已开始，请查看日志了解进度。",
		"model.download_failed":  "模型下载失败",

		"diag.disk":        "磁盘：可用 %.2f GB / 共 %.2f GB（已用 %.1f%%）",
		"diag.git":         "Git：%s",
		"diag.git_missing": "未找到 Git",
		"diag.cwd":         "工作目录：%s",

		"launcher.running":         "运行中",
		"launcher.stopped":         "已停止",
		"launcher.uptime":          "运行时间：%s",
		"launcher.pid":             "PID：%d",
		"launcher.restarts":        "重启次数：%d",
		"launcher.starting":        "启动中...",
		"launcher.stopping":        "停止中...",
		"launcher.restarting":      "重启中...",
		"launcher.start_success":   "进程已启动",
		"launcher.stop_success":    "进程已停止",
		"launcher.restart_success": "进程已重启",
		"launcher.action_failed":   "启动器操作失败",

		"logs.empty":         "暂无日志",
		"logs.clearing":      "清除中...",
		"logs.cleared":       "日志已清除",
		"logs.clear_failed":  "清除日志失败",
		"logs.level_all":     "全部级别",
		"logs.level_info":    "信息",
		"logs.level_success": "成功",
		"logs.level_warning": "警告",
		"logs.level_error":   "错误",

		"launcher.force":   "强制",
		"launcher.process": "进程：%s，CPU %.1f%%，内存 %.1f MB，%d 个线程",

		"system.cpu":       "CPU：%.1f%%",
		"system.memory":    "内存：已用 %.2f GB / 共 %.2f GB（%.1f%%）",
		"system.gpu":       "GPU %d %s：负载 %.1f%%，显存 %.2f / %.2f GB（%.1f%%），%.0f°C",
		"system.no_gpu":    "未检测到 GPU",
		"system.platform":  "平台：%s %s",
		"system.cpu_count": "CPU 核心：%d（%.0f MHz）",
		"system.python":    "Python：%s",

		"presets.empty":   "暂无预设",
		"history.empty":   "暂无启动记录",
		"history.command": "%s  %s",
	},
}
