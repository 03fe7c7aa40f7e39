/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Phoenixs77/CarletonCalendar/calendar"
	"github.com/Phoenixs77/CarletonCalendar/courses"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [schedule text file]",
	Short: "Converts a saved schedule text file into an ICS file",
	Long: `Reads course schedule text from a file, parses it, and writes the
generated calendar to --out (courses.ics in the working directory by default)`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job": "convert",
		})

		outPath, _ := cmd.Flags().GetString("out")
		name, _ := cmd.Flags().GetString("name")

		raw, err := os.ReadFile(args[0])
		if err != nil {
			logger.Error("Could not read input file: ", err)
			os.Exit(1)
		}

		parsed := courses.ParseCourses(string(raw))
		logger.Info("Parsed course blocks: ", len(parsed))

		doc, outcomes, err := calendar.Generate(parsed, calendar.Options{CalendarName: name})
		if err != nil {
			logger.Error("Could not generate calendar: ", err)
			os.Exit(1)
		}
		kept := 0
		for _, outcome := range outcomes {
			if outcome.Kept {
				kept++
				continue
			}
			logger.WithFields(log.Fields{
				"class":  outcome.Course.ClassName,
				"reason": string(outcome.Reason),
			}).Warn("Skipped course")
		}

		if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
			logger.Error("Could not write ICS file: ", err)
			os.Exit(1)
		}
		logger.WithFields(log.Fields{
			"events": kept,
			"out":    outPath,
		}).Info("ICS file written")
	},
}

func init() {
	convertCmd.Flags().StringP("out", "o", "courses.ics", "path of the generated ICS file")
	convertCmd.Flags().StringP("name", "n", calendar.DefaultCalendarName, "calendar display name")
	rootCmd.AddCommand(convertCmd)
}
