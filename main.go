package main

import (
	cmd "github.com/cozy-creator/comfy-panel/cmd/panel"
)

func main() {
	cmd.Execute()
}
