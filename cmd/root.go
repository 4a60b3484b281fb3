package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "door-sentry",
	Short: "A webcam doorway monitor that recognizes and announces visitors",
	Long: `Door Sentry watches a webcam pointed at your door, detects people with
an object detection network and recognizes known faces. Every visitor is
classified as a friend, a delivery person or an unknown person, and each
category triggers its own announcement sound over a looping background track.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
