/*
Copyright © 2024 Mattis Møl Kristensen <mattismoel@gmail.com>
*/
package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/mattismoel/canvigo/pkg/canvigo"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports chosen Canvas assignments to an iCalendar file",
	Long: `Fetches the active courses of the user, lets the user pick courses and
optionally single assignments, and writes the chosen assignments to an .ics
file. Every event links back to the assignment page on Canvas.`,
	Run: func(cmd *cobra.Command, args []string) {
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			log.Fatalf("Could not get output flag: %v\n", err)
		}

		c, err := canvasFromEnv()
		if err != nil {
			log.Fatalf("Could not create Canvas client: %v\n", err)
		}

		assignments, err := selectAssignments(c)
		if errors.Is(err, errNoCourses) {
			fmt.Println("No courses found.")
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Could not select assignments: %v\n", err)
		}
		if len(assignments) == 0 {
			fmt.Println("No assignment selected. Exiting.")
			return
		}

		cal := canvigo.BuildICalendar(assignments)
		err = canvigo.WriteICalendar(cal, output)
		if err != nil {
			log.Fatalf("Could not write calendar file: %v\n", err)
		}

		fmt.Printf("\nCreated calendar file: %v\n", output)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "assignments.ics", "The path of the iCalendar output file")
}
