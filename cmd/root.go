/*
Copyright © 2024 Mattis Møl Kristensen <mattismoel@gmail.com>
*/
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mattismoel/canvigo/pkg/canvigo"
	"github.com/mattismoel/canvigo/util"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "canvigo",
	Short: "Exports Canvas assignments to calendar files",
	Long: `Canvigo fetches the courses and assignments of a Canvas user and exports a
chosen subset of them as calendar events. Each event carries the due date of
the assignment and a link to its Canvas page.

Canvigo reads the Canvas instance URL and the users access token from the
CANVAS_BASE_URL and CANVAS_API_TOKEN environment variables. A .env file in
the working directory is picked up automatically.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		// .env is optional - already exported variables still apply
		godotenv.Load()
	})
}

// Creates a Canvas client from the required environment variables.
func canvasFromEnv() (*canvigo.Canvas, error) {
	baseURL, err := util.RequireEnv("CANVAS_BASE_URL")
	if err != nil {
		return nil, err
	}
	token, err := util.RequireEnv("CANVAS_API_TOKEN")
	if err != nil {
		return nil, err
	}
	return canvigo.NewCanvas(baseURL, token), nil
}
