/*
Copyright © 2024 Mattis Møl Kristensen <mattismoel@gmail.com>
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/mattismoel/canvigo/pkg/canvigo"
	"github.com/spf13/cobra"
)

// coursesCmd represents the courses command
var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Lists the active courses of the user",
	Long: `Lists the active Canvas courses of the user without any interactive
selection. The list can be printed as plain text or exported as JSON to a
file for use in other tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			log.Fatalf("Could not get format flag: %v\n", err)
		}
		path, err := cmd.Flags().GetString("path")
		if err != nil {
			log.Fatalf("Could not get path flag: %v\n", err)
		}

		c, err := canvasFromEnv()
		if err != nil {
			log.Fatalf("Could not create Canvas client: %v\n", err)
		}

		courses, err := c.GetCourses()
		if err != nil {
			log.Fatalf("Could not get courses: %v\n", err)
		}
		if len(courses) == 0 {
			fmt.Println("No courses found.")
			return
		}

		w := os.Stdout
		if path != "" {
			f, err := os.Create(path)
			if err != nil {
				log.Fatalf("Could not create %q: %v\n", path, err)
			}
			defer f.Close()
			w = f
		}

		err = canvigo.ExportCourses(courses, format, w)
		if err != nil {
			log.Fatalf("Could not export courses list to %v format: %v\n", format, err)
		}
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)

	coursesCmd.Flags().StringP("format", "f", "plain", "The format of the course list (json or plain)")
	coursesCmd.Flags().StringP("path", "o", "", "The path the course list should be written to, stdout if empty")
}
