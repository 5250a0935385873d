package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	// Missing .env is fine; credentials can come from the environment.
	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "moonpulse",
		Short: "Score crypto subreddit activity and attribute it to projects",
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(snapshotCmd())
	root.AddCommand(leaderboardCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(runCmd())

	return root
}

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch, score and merge one collection window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot()
		},
	}
	return cmd
}

func leaderboardCmd() *cobra.Command {
	var (
		epochNum   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show per-project mention totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeaderboard(epochNum, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&epochNum, "epoch", "", "filter to one epoch (e.g., 69)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func exportCmd() *cobra.Command {
	var (
		epochNum string
		since    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write activity and user summary CSVs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(epochNum, since)
		},
	}

	cmd.Flags().StringVar(&epochNum, "epoch", "", "filter to one epoch (e.g., 69)")
	cmd.Flags().StringVar(&since, "since", "", "only rows on or after this date (YYYY-MM-DD)")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the read-only aggregates HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "server port (default: from config)")
	return cmd
}

func runCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start daemon with scheduled snapshots and HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "server port (default: from config)")
	return cmd
}
