package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/groveco/cloudbrowser/internal/observability"
)

var catCmd = &cobra.Command{
	Use:   "cat <container> <path>",
	Short: "Write an object's bytes to stdout",
	Long: `Fetch one object by exact path and write its full payload to stdout.

Examples:
  cloudbrowser cat media notes/todo.txt
  cloudbrowser cat media photos/beach.jpg > beach.jpg`,
	Args: cobra.ExactArgs(2),
	RunE: runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	containerName, path := args[0], args[1]

	conn, err := newConnection()
	if err != nil {
		observability.CLILogger.Error("Failed to create connection", zap.Error(err))
		return err
	}

	cont, err := conn.Container(ctx, containerName)
	if err != nil {
		observability.CLILogger.Error("Failed to fetch container",
			zap.String("container", containerName), zap.Error(err))
		return err
	}

	obj, err := cont.Object(ctx, path)
	if err != nil {
		observability.CLILogger.Error("Failed to fetch object",
			zap.String("container", containerName), zap.String("path", path), zap.Error(err))
		return err
	}

	data, err := obj.Read(ctx)
	if err != nil {
		observability.CLILogger.Error("Failed to read object",
			zap.String("container", containerName), zap.String("path", path), zap.Error(err))
		return err
	}

	_, err = os.Stdout.Write(data)
	return err
}
