package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/google/uuid"

	"github.com/groveco/cloudbrowser/pkg/cloud"
	"github.com/groveco/cloudbrowser/pkg/output"
)

// errorRecord maps an adapter failure onto a jsonl error record.
func errorRecord(err error) *output.ErrorRecord {
	rec := &output.ErrorRecord{
		Code:    output.ErrCodeCloud,
		Message: err.Error(),
	}

	var cloudErr *cloud.Error
	if errors.As(err, &cloudErr) {
		rec.Container = cloudErr.Container
		rec.Object = cloudErr.Object
	}

	switch {
	case cloud.IsNoContainer(err):
		rec.Code = output.ErrCodeNoContainer
	case cloud.IsNoObject(err):
		rec.Code = output.ErrCodeNoObject
	}
	return rec
}

// emitJSONLError writes a single error record to stdout so jsonl
// consumers see a parseable failure before the command exits non-zero.
func emitJSONLError(ctx context.Context, err error) {
	w := output.NewJSONLWriter(os.Stdout, uuid.New().String(), datastoreName)
	_ = w.WriteError(ctx, errorRecord(err))
}
