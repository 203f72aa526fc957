/*
Copyright © 2024 Mattis Møl Kristensen <mattismoel@gmail.com>
*/
package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mattismoel/canvigo/pkg/canvigo"
	"github.com/mattismoel/canvigo/util"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// pushCmd represents the push command
var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Pushes chosen Canvas assignments to a Google Calendar",
	Long: `Runs the same course and assignment selection as the export command, but
inserts the chosen assignments into a Google Calendar instead of writing an
.ics file. Pushing the same assignment again overwrites its event, so re-runs
do not create duplicates.`,
	Run: func(cmd *cobra.Command, args []string) {
		calendarID, err := cmd.Flags().GetString("calendarID")
		if err != nil {
			log.Fatalf("Could not get calendar ID: %v\n", err)
		}
		tokenPath, err := cmd.Flags().GetString("token")
		if err != nil {
			log.Fatalf("Could not get token: %v\n", err)
		}

		gc, err := googleCalendar(calendarID, tokenPath)
		if err != nil {
			log.Fatalf("Could not create Google Calendar instance: %v\n", err)
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

		err = gc.AddAssignments(assignments)
		if err != nil {
			log.Fatalf("Could not push assignments to Google Calendar: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)

	pushCmd.Flags().StringP("calendarID", "c", "primary", "The Google Calendar ID")
	pushCmd.Flags().StringP("token", "t", "token.json", "The OAuth token file for Google Calendar")
}

// Creates a Google Calendar instance from the credentials.json file and a
// cached OAuth token.
func googleCalendar(calendarID, tokenPath string) (*canvigo.GoogleCalendar, error) {
	// Reads the credentials file and creates a config from it - this is used to create the client
	bytes, err := os.ReadFile("credentials.json")
	if err != nil {
		return nil, fmt.Errorf("could not read contents of credentials.json: %w", err)
	}

	config, err := google.ConfigFromJSON(bytes, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("could not create config from credentials.json: %w", err)
	}

	if !strings.HasSuffix(tokenPath, ".json") {
		tokenPath += ".json"
	}

	client, err := util.GetClient(config, tokenPath)
	if err != nil {
		return nil, fmt.Errorf("could not get Google Calendar client: %w", err)
	}

	return canvigo.NewGoogleCalendar(client, calendarID)
}
