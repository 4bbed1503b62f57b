package main

import (
	"fmt"
	"os"

	"axiomai.dev/marketplace-web/internal/agentctl"
)

func main() {
	if err := agentctl.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
