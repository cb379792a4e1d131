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
	"github.com/groveco/cloudbrowser/pkg/cloud"
	"github.com/groveco/cloudbrowser/pkg/output"
)

var lsCmd = &cobra.Command{
	Use:   "ls <container> [path]",
	Short: "List one page of objects under a pseudo-directory",
	Long: `List objects in a container, collapsing the flat namespace into
pseudo-directories at each '/' boundary. One page is fetched per
invocation; resume with --marker set to the last name of the previous
page (the jsonl summary carries it as next_marker).

Examples:
  cloudbrowser ls media
  cloudbrowser ls media photos/vacation
  cloudbrowser ls media photos --limit 100 --marker beach.jpg
  cloudbrowser ls media --output jsonl`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLs,
}

var (
	lsMarker string
	lsLimit  int
	lsOutput string
)

func init() {
	rootCmd.AddCommand(lsCmd)

	lsCmd.Flags().StringVar(&lsMarker, "marker", "", "Resume after this entry name")
	lsCmd.Flags().IntVar(&lsLimit, "limit", 0, "Page size (0 uses the configured default)")
	lsCmd.Flags().StringVar(&lsOutput, "output", "table", "Output format (table|jsonl)")
}

func runLs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	containerName := args[0]
	path := ""
	if len(args) > 1 {
		path = args[1]
	}

	conn, err := newConnection()
	if err != nil {
		observability.CLILogger.Error("Failed to create connection", zap.Error(err))
		return err
	}

	limit := lsLimit
	if limit <= 0 {
		limit = cfg.Datastore.DefaultLimit
	}

	start := time.Now()
	cont, err := conn.Container(ctx, containerName)
	if err != nil {
		observability.CLILogger.Error("Failed to fetch container",
			zap.String("container", containerName), zap.Error(err))
		if lsOutput == "jsonl" {
			emitJSONLError(ctx, err)
		}
		return err
	}

	objects, err := cont.Objects(ctx, path, cloud.ListOptions{Marker: lsMarker, Limit: limit})
	if err != nil {
		observability.CLILogger.Error("Failed to list objects",
			zap.String("container", containerName), zap.String("path", path), zap.Error(err))
		if lsOutput == "jsonl" {
			emitJSONLError(ctx, err)
		}
		return err
	}

	// A full page means there may be more; its last name resumes the
	// listing.
	nextMarker := ""
	if len(objects) == limit {
		nextMarker = objects[len(objects)-1].Name()
	}

	switch lsOutput {
	case "table":
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		if _, err := fmt.Fprintln(tw, "NAME\tTYPE\tSIZE\tCONTENT_TYPE\tMODIFIED"); err != nil {
			return err
		}
		for _, obj := range objects {
			modified := ""
			if !obj.LastModified().IsZero() {
				modified = obj.LastModified().Format("2006-01-02 15:04:05")
			}
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				obj.Name(), obj.Type(), formatSize(obj.Size()), obj.ContentType(), modified); err != nil {
				return err
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if nextMarker != "" {
			fmt.Fprintf(os.Stderr, "ls: more entries may follow; resume with --marker %q\n", nextMarker)
		}
		return nil

	case "jsonl":
		w := output.NewJSONLWriter(os.Stdout, uuid.New().String(), datastoreName)
		var bytesTotal int64
		for _, obj := range objects {
			rec := &output.ObjectRecord{
				Name: obj.Name(),
				Type: obj.Type().String(),
				Size: obj.Size(),
			}
			if obj.Type() == cloud.TypeFile {
				bytesTotal += obj.Size()
				rec.ContentType = obj.ContentType()
				modified := obj.LastModified()
				rec.LastModified = &modified
			}
			if err := w.WriteObject(ctx, rec); err != nil {
				return err
			}
		}
		dur := time.Since(start)
		return w.WriteSummary(ctx, &output.SummaryRecord{
			Entries:       int64(len(objects)),
			BytesTotal:    bytesTotal,
			NextMarker:    nextMarker,
			Duration:      dur,
			DurationHuman: dur.Round(time.Millisecond).String(),
		})

	default:
		return fmt.Errorf("invalid --output value %q: expected table or jsonl", lsOutput)
	}
}
