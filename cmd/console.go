package cmd

import (
	"context"

	"cinemahub/internal/console"
)

// RunConsole drives the interactive session until the operator exits.
func RunConsole(ui *console.Console) {
	ui.Run(context.Background())
}
