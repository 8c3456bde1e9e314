package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/daymark/core/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "daymark",
		Short: "Daymark API Server",
		Long:  `Daymark is a task-tracking backend with a monthly calendar view and a news feed, serving the mobile client's task list, calendar, and news screens.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
