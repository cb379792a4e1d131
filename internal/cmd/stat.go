package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/groveco/cloudbrowser/internal/observability"
)

var statCmd = &cobra.Command{
	Use:   "stat <container> <path>",
	Short: "Show metadata for a single object",
	Long: `Fetch one object by exact path and print its metadata.

Examples:
  cloudbrowser stat media photos/vacation/beach.jpg`,
	Args: cobra.ExactArgs(2),
	RunE: runStat,
}

func init() {
	rootCmd.AddCommand(statCmd)
}

func runStat(cmd *cobra.Command, args []string) error {
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

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", obj.Name())
	fmt.Fprintf(tw, "Type:\t%s\n", obj.Type())
	fmt.Fprintf(tw, "Size:\t%s (%d bytes)\n", formatSize(obj.Size()), obj.Size())
	fmt.Fprintf(tw, "Content-Type:\t%s\n", obj.ContentType())
	fmt.Fprintf(tw, "Modified:\t%s\n", obj.LastModified().Format("2006-01-02 15:04:05"))
	return tw.Flush()
}
