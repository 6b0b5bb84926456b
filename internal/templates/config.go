package templates

import "os"

const configTemplate = `# comfy-panel configuration
host: 127.0.0.1
port: 5050
environment: dev

# en or zh; regional tags such as zh-CN are matched to the nearest one
language: en

# the launcher backend this panel drives
backend_url: http://127.0.0.1:5000
# how long "serve" waits for the backend to answer before starting anyway
backend_wait: 10s
# 0 disables the per-request timeout
request_timeout: 0s

github_api_url: https://api.github.com

# serve page assets from disk instead of the embedded copies
public_dir: ""
allowed_origins: []
`

const envTemplate = `# Environment overrides for comfy-panel. Keys use the COMFY_PANEL_ prefix,
# e.g. COMFY_PANEL_PORT=5051.
# A GitHub token raises the search rate limit.
# GITHUB_TOKEN=
`

func GetConfigTemplate() string {
	return configTemplate
}

func GetEnvTemplate() string {
	return envTemplate
}

func WriteConfig(path string) error {
	return writeFile(path, GetConfigTemplate())
}

func WriteEnv(path string) error {
	return writeFile(path, GetEnvTemplate())
}

func writeFile(path, content string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}
