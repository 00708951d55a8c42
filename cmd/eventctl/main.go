package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	baseURL  string
	username string
	password string
)

var rootCmd = &cobra.Command{
	Use:          "eventctl",
	Short:        "Work with an Event Desk server from the terminal.",
	Long:         "Work with an Event Desk server from the terminal. Deletes are confirmed the same way the web page confirms them.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", envOr("EVENTDESK_URL", "http://localhost:5000"), "Event Desk server URL.")
	rootCmd.PersistentFlags().StringVar(&username, "username", os.Getenv("EVENTDESK_USERNAME"), "Account to log in with.")
	rootCmd.PersistentFlags().StringVar(&password, "password", os.Getenv("EVENTDESK_PASSWORD"), "Password for the account.")

	rootCmd.AddCommand(formsCmd)
	rootCmd.AddCommand(deleteCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
