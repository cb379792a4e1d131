package swift

import (
	"context"

	"github.com/ncw/swift/v2"

	"github.com/groveco/cloudbrowser/pkg/cloud"
)

// Connection is an authenticated Swift account.
type Connection struct {
	cfg Config
	api API
}

var _ cloud.Connection = (*Connection)(nil)

// New creates a connection for the given account credentials.
//
// No network traffic happens here; the SDK authenticates on the first
// call (or explicitly via Authenticate).
func New(cfg Config) (*Connection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	api := &swift.Connection{
		UserName:    cfg.Account,
		ApiKey:      cfg.Key,
		AuthUrl:     cfg.authURL(),
		Region:      cfg.Region,
		AuthVersion: cfg.AuthVersion,
		Internal:    cfg.ServiceNet,
	}

	return &Connection{cfg: cfg, api: api}, nil
}

// Authenticate establishes a session with the auth endpoint.
func (cn *Connection) Authenticate(ctx context.Context) error {
	if err := cn.api.Authenticate(ctx); err != nil {
		return translateErr("Authenticate", "", "", err)
	}
	return nil
}

// Containers returns all containers for the account, each carrying the
// object count and total byte size from the vendor listing call.
func (cn *Connection) Containers(ctx context.Context) ([]cloud.Container, error) {
	infos, err := cn.api.ContainersAll(ctx, nil)
	if err != nil {
		return nil, translateErr("Containers", "", "", err)
	}

	containers := make([]cloud.Container, 0, len(infos))
	for _, info := range infos {
		containers = append(containers, &Container{
			conn:  cn,
			name:  info.Name,
			count: info.Count,
			bytes: info.Bytes,
		})
	}
	return containers, nil
}

// Container returns one container's metadata by exact name.
func (cn *Connection) Container(ctx context.Context, name string) (cloud.Container, error) {
	info, _, err := cn.api.Container(ctx, name)
	if err != nil {
		return nil, translateErr("Container", name, "", err)
	}
	return &Container{
		conn:  cn,
		name:  info.Name,
		count: info.Count,
		bytes: info.Bytes,
	}, nil
}
