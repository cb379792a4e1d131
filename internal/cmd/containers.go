package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/groveco/cloudbrowser/internal/observability"
	"github.com/groveco/cloudbrowser/pkg/output"
)

var containersCmd = &cobra.Command{
	Use:   "containers",
	Short: "List all containers for the account",
	Long: `List every container for the account with its object count and
total byte size as reported by the vendor listing call.

Examples:
  cloudbrowser containers
  cloudbrowser containers --output jsonl`,
	Args: cobra.NoArgs,
	RunE: runContainers,
}

var containersOutput string

func init() {
	rootCmd.AddCommand(containersCmd)

	containersCmd.Flags().StringVar(&containersOutput, "output", "table", "Output format (table|jsonl)")
}

func runContainers(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	conn, err := newConnection()
	if err != nil {
		observability.CLILogger.Error("Failed to create connection", zap.Error(err))
		return err
	}

	start := time.Now()
	containers, err := conn.Containers(ctx)
	if err != nil {
		observability.CLILogger.Error("Failed to list containers", zap.Error(err))
		if containersOutput == "jsonl" {
			emitJSONLError(ctx, err)
		}
		return err
	}

	switch containersOutput {
	case "table":
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		if _, err := fmt.Fprintln(tw, "NAME\tOBJECTS\tSIZE"); err != nil {
			return err
		}
		for _, cont := range containers {
			if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\n", cont.Name(), cont.Count(), formatSize(cont.Bytes())); err != nil {
				return err
			}
		}
		return tw.Flush()

	case "jsonl":
		w := output.NewJSONLWriter(os.Stdout, uuid.New().String(), datastoreName)
		var bytesTotal int64
		for _, cont := range containers {
			bytesTotal += cont.Bytes()
			if err := w.WriteContainer(ctx, &output.ContainerRecord{
				Name:  cont.Name(),
				Count: cont.Count(),
				Bytes: cont.Bytes(),
			}); err != nil {
				return err
			}
		}
		dur := time.Since(start)
		return w.WriteSummary(ctx, &output.SummaryRecord{
			Entries:       int64(len(containers)),
			BytesTotal:    bytesTotal,
			Duration:      dur,
			DurationHuman: dur.Round(time.Millisecond).String(),
		})

	default:
		return fmt.Errorf("invalid --output value %q: expected table or jsonl", containersOutput)
	}
}
