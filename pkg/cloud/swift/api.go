package swift

import (
	"context"

	"github.com/ncw/swift/v2"
)

// API is the slice of the vendor SDK this adapter calls.
//
// *swift.Connection from github.com/ncw/swift/v2 satisfies it directly;
// tests substitute a fake to exercise the adapter without a network.
type API interface {
	// Authenticate establishes a session with the auth endpoint.
	Authenticate(ctx context.Context) error

	// ContainersAll returns every container for the account.
	ContainersAll(ctx context.Context, opts *swift.ContainersOpts) ([]swift.Container, error)

	// Container returns one container's metadata by name.
	Container(ctx context.Context, container string) (swift.Container, swift.Headers, error)

	// Objects returns one page of listing entries for a container.
	Objects(ctx context.Context, container string, opts *swift.ObjectsOpts) ([]swift.Object, error)

	// Object returns one object's metadata by exact name.
	Object(ctx context.Context, container string, objectName string) (swift.Object, swift.Headers, error)

	// ObjectGetBytes returns the full payload of one object.
	ObjectGetBytes(ctx context.Context, container string, objectName string) ([]byte, error)
}

var _ API = (*swift.Connection)(nil)
