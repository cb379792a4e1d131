// Package output provides JSONL output for browsing results.
//
// Output is structured as typed record envelopes containing containers,
// objects, errors, and summaries. Each line is a self-contained JSON
// object that can be parsed independently.
package output

import (
	"encoding/json"
	"errors"
	"time"
)

// Record type constants define the envelope types for JSONL output.
// These follow the pattern: cloudbrowser.<type>.v<version>
const (
	// TypeContainer identifies container listing records.
	TypeContainer = "cloudbrowser.container.v1"

	// TypeObject identifies object listing records.
	TypeObject = "cloudbrowser.object.v1"

	// TypeError identifies error records.
	TypeError = "cloudbrowser.error.v1"

	// TypeSummary identifies final summary records.
	TypeSummary = "cloudbrowser.summary.v1"
)

// Record is the envelope for all JSONL output.
//
// Each line of JSONL output contains a Record with a type-specific
// payload in the Data field. The type field determines how to
// interpret the Data payload.
type Record struct {
	// Type identifies the record type (e.g., "cloudbrowser.object.v1").
	Type string `json:"type"`

	// TS is the timestamp when the record was created (RFC3339Nano).
	TS time.Time `json:"ts"`

	// JobID is the correlation ID for this invocation.
	JobID string `json:"job_id"`

	// Datastore identifies the storage vendor (e.g., "swift").
	Datastore string `json:"datastore"`

	// Data contains the type-specific payload as raw JSON.
	Data json.RawMessage `json:"data"`
}

// ContainerRecord is the data payload for container listings.
type ContainerRecord struct {
	// Name is the container name.
	Name string `json:"name"`

	// Count is the number of objects in the container.
	Count int64 `json:"count"`

	// Bytes is the total size of the container in bytes.
	Bytes int64 `json:"bytes"`
}

// ObjectRecord is the data payload for object listings.
//
// Pseudo-directory entries carry only Name and Type; files carry the
// full metadata set.
type ObjectRecord struct {
	// Name is the object name within its container.
	Name string `json:"name"`

	// Type is the entry type ("file" or "subdir").
	Type string `json:"object_type"`

	// Size is the object size in bytes. Zero for pseudo-directories.
	Size int64 `json:"size"`

	// ContentType is the MIME type of the object.
	// Empty for pseudo-directories.
	ContentType string `json:"content_type,omitempty"`

	// LastModified is when the object was last modified.
	// Omitted for pseudo-directories.
	LastModified *time.Time `json:"last_modified,omitempty"`
}

// ErrorRecord is the data payload for errors.
type ErrorRecord struct {
	// Code is a machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable error description.
	Message string `json:"message"`

	// Container is the container related to this error, if applicable.
	Container string `json:"container,omitempty"`

	// Object is the object path related to this error, if applicable.
	Object string `json:"object,omitempty"`
}

// Error codes for ErrorRecord.
const (
	// ErrCodeNoContainer indicates the container was not found.
	ErrCodeNoContainer = "NO_CONTAINER"

	// ErrCodeNoObject indicates the object was not found.
	ErrCodeNoObject = "NO_OBJECT"

	// ErrCodeCloud indicates any other vendor or adapter failure.
	ErrCodeCloud = "CLOUD_ERROR"
)

// SummaryRecord is the data payload for final summaries.
//
// A summary record is emitted after the entries of a listing page with
// aggregate statistics and the resume marker for the next page.
type SummaryRecord struct {
	// Entries is the number of entries emitted.
	Entries int64 `json:"entries"`

	// BytesTotal is the cumulative size of emitted file entries.
	BytesTotal int64 `json:"bytes_total"`

	// NextMarker resumes the listing on a following invocation.
	// Empty when the returned page was not full.
	NextMarker string `json:"next_marker,omitempty"`

	// Duration is the total operation duration.
	Duration time.Duration `json:"duration_ns"`

	// DurationHuman is a human-readable duration string.
	DurationHuman string `json:"duration"`
}

// Writer errors.
var (
	// ErrWriterClosed is returned when writing to a closed writer.
	ErrWriterClosed = errors.New("writer is closed")
)

// WriteError wraps errors that occur during write operations.
type WriteError struct {
	Op  string // Operation that failed (e.g., "marshal_data", "write")
	Err error  // Underlying error
}

func (e *WriteError) Error() string {
	return "output: " + e.Op + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
