package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"yeonmal/internal/calculation"
	"yeonmal/internal/config"
	"yeonmal/internal/output"
	"yeonmal/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "yeonmal",
	Short: "Korean year-end tax settlement calculator",
	Long:  "Computes a year-end personal income tax settlement from a structured input file",
}

func calculateCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Calculate a settlement from a YAML input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to load input: %w", err)
			}

			for _, issue := range calculation.ValidateInput(*input) {
				fmt.Fprintf(os.Stderr, "warning: %s: %s\n", issue.Field, issue.Message)
			}

			result := calculation.NewEngine().Settle(*input)
			return output.NewReportGenerator(os.Stdout).GenerateReport(&result, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "console", "output format (console, json)")
	return cmd
}

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the settlement API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := server.New()

			go func() {
				if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
					e.Logger.Fatal(err)
				}
			}()

			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt)
			<-shutdown

			log.Println("shutting down the server")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			return e.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "8080", "listen port")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "yeonmal %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func main() {
	rootCmd.AddCommand(calculateCmd(), serveCmd(), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
