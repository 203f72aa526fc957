/*
Copyright © 2024 Mattis Møl Kristensen <mattismoel@gmail.com>
*/
package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clears the users Google Calendar",
	Long: `Clears the users Google Calendar from pushed Canvas assignment events.
When used, only canvigo events are targeted, therefore leaving any personal
events intact.`,
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

		err = gc.Clear()
		if err != nil {
			log.Fatalf("Could not clear Google Calendar: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().StringP("calendarID", "c", "primary", "The Google Calendar ID")
	clearCmd.Flags().StringP("token", "t", "token.json", "The OAuth token file for Google Calendar")
}
