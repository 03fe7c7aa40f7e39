package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "carletoncalendar",
	Short: "carletoncalendar turns pasted course schedules into a downloadable ICS calendar",
	Long: `CarletonCalendar parses loosely formatted course schedule text the way it is
copy-pasted from the registration system and generates a calendar file with one
weekly recurring event per course meeting`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
