// Package cloud defines abstractions for browsing cloud object storage.
//
// The contracts here are vendor-neutral: a Connection owns Containers,
// a Container owns Objects, and Objects are either real files or
// pseudo-directories derived from a flat, '/'-delimited namespace.
// Vendor adapters (e.g. pkg/cloud/swift) implement these interfaces and
// translate vendor errors onto the taxonomy in errors.go.
package cloud

import (
	"context"
	"time"
)

// Sep is the path separator used for pseudo-directory semantics.
// Object names are flat strings; Sep-delimited segments are presented
// as directories by listing operations.
const Sep = "/"

// DefaultGetObjectsLimit is the default page size for object listings.
const DefaultGetObjectsLimit = 20

// ObjectType distinguishes real stored objects from pseudo-directories.
type ObjectType string

const (
	// TypeFile is a real stored object with payload bytes.
	TypeFile ObjectType = "file"

	// TypeSubdir is a pseudo-directory entry. Subdir entries never have
	// payload bytes; their name ends at a path-segment boundary.
	TypeSubdir ObjectType = "subdir"
)

// String returns the string representation of the object type.
func (t ObjectType) String() string {
	return string(t)
}

// ListOptions configures a Container.Objects page.
type ListOptions struct {
	// Marker is the name of the last entry from a previous page.
	// Empty string starts from the beginning.
	Marker string

	// Limit caps the number of entries returned.
	// Zero uses DefaultGetObjectsLimit.
	Limit int
}

// Connection is an authenticated account on one storage vendor.
//
// A Connection is not designed for concurrent use; callers needing
// parallelism should create independent Connections or serialize
// access externally.
type Connection interface {
	// Authenticate establishes a session with the vendor service.
	// Adapters may also authenticate lazily on first use.
	Authenticate(ctx context.Context) error

	// Containers returns all containers for the account, each carrying
	// the object count and total byte size reported at listing time.
	Containers(ctx context.Context) ([]Container, error)

	// Container returns one container by exact name.
	// Fails with ErrNoContainer if the container does not exist.
	Container(ctx context.Context, name string) (Container, error)
}

// Container is a named collection of objects within an account.
//
// Count and Bytes are snapshot values supplied at listing time, not
// kept fresh.
type Container interface {
	// Name is the container name, unique within the account.
	Name() string

	// Count is the number of objects in the container.
	Count() int64

	// Bytes is the total size of the container in bytes.
	Bytes() int64

	// Objects returns one page of entries under path, treated as a
	// pseudo-directory. Entries resume after opts.Marker when set.
	// The returned page never exceeds the effective limit.
	Objects(ctx context.Context, path string, opts ListOptions) ([]Object, error)

	// Object returns exactly one object by exact path.
	// Fails with ErrNoObject if the object does not exist.
	Object(ctx context.Context, path string) (Object, error)
}

// Object is one storage object or pseudo-directory entry.
type Object interface {
	// Name is the object name, unique within its container.
	Name() string

	// Size is the object size in bytes. Zero for pseudo-directories.
	Size() int64

	// ContentType is the MIME type reported by the vendor.
	ContentType() string

	// LastModified is the vendor-reported modification time.
	// Zero for pseudo-directories.
	LastModified() time.Time

	// Type reports whether the entry is a file or a pseudo-directory.
	Type() ObjectType

	// Read returns the full payload bytes of the object.
	// Fails with ErrNoObject if the object does not exist.
	Read(ctx context.Context) ([]byte, error)
}
