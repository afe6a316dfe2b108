package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pico-peloton/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List display frontends",
	Long:  `Shows the display frontends the device can run on.`,
	Args:  cobra.NoArgs,
	Run:   runFrontends,
}

func runFrontends(_ *cobra.Command, _ []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No frontends available.")
		return
	}

	fmt.Println("Available frontends:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, f := range frontends {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, f := range frontends {
		fmt.Printf("  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Println()
	fmt.Println("Run 'peloton run --frontend <id>' to use one.")
}
