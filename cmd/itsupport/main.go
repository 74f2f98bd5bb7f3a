package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Menatic/IT-Support/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "itsupport",
		Short: "IT-Support - helpdesk service",
		Long:  `IT-Support is a helpdesk service with ticketing, log analysis, system monitoring and an AI assistant.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
