package main

import (
	"fmt"
	"os"

	claudebridge "github.com/arthur-debert/claude-bridge/cmd/claude-bridge"
	"github.com/arthur-debert/claude-bridge/pkg/errors"
	"github.com/arthur-debert/claude-bridge/pkg/style"
)

func main() {
	rootCmd := claudebridge.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// Ambiguous plugin matches carry the candidate list in the details
		if details := errors.GetErrorDetails(err); details != nil {
			if candidates, ok := details["candidates"]; ok {
				fmt.Fprintln(os.Stderr, style.MutedStyle.Render(fmt.Sprintf("  candidates: %v", candidates)))
			}
		}

		os.Exit(1)
	}
}
