package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "portalctl",
	Short:        "Feedback portal client",
	Long:         "Command-line client for the customer feedback portal: posts, complaints, and suggested replies.",
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(
		loginCommand,
		logoutCommand,
		postsCommand,
		complaintsCommand,
		assistCommand,
	)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("portalctl: %v", err)
	}
}
