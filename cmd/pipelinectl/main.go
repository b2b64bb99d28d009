// Package main implements pipelinectl, a CLI that runs the transcript pipeline locally.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipelinectl",
	Short: "Run the meeting task pipeline from the command line",
	Long: `pipelinectl runs the transcript-to-task pipeline without the HTTP server.
Everything is kept in memory; the model providers come from config.yaml.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(sanitizeCmd)
}

// readInput reads path, or stdin when path is "-".
func readInput(in io.Reader, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}
