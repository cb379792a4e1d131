package swift

import (
	"context"
	"fmt"
	"strings"

	"github.com/ncw/swift/v2"

	"github.com/groveco/cloudbrowser/pkg/cloud"
)

// sep is the delimiter handed to the vendor listing call. Must agree
// with cloud.Sep.
const sep = '/'

// Container is one Swift container. Count and Bytes are snapshot
// values from the listing call that produced the container.
type Container struct {
	conn  *Connection
	name  string
	count int64
	bytes int64
}

var _ cloud.Container = (*Container)(nil)

// Name is the container name, unique within the account.
func (c *Container) Name() string { return c.name }

// Count is the number of objects in the container.
func (c *Container) Count() int64 { return c.count }

// Bytes is the total size of the container in bytes.
func (c *Container) Bytes() int64 { return c.bytes }

// Objects returns one page of entries under path, treated as a
// pseudo-directory.
//
// Swift has two notions of pseudo-directories within its flat
// namespace: dummy directory objects (real stored objects of type
// "application/directory", uploaded manually) and implied
// subdirectories synthesized from the prefix/delimiter query. When
// both exist for the same logical path the vendor returns both in one
// page, the implied entry directly after the dummy object; the
// duplicate implied entry is collapsed away here and the page is
// truncated back to the requested limit.
//
// Known limitation: when dummy directory objects are present, a page
// may carry fewer than limit entries even though more exist, because
// collapsing runs after a single page fetch with no re-fill round.
// Dummy objects are rare enough that the underfill is accepted.
func (c *Container) Objects(ctx context.Context, path string, opts cloud.ListOptions) ([]cloud.Object, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = cloud.DefaultGetObjectsLimit
	}
	if ceiling := c.conn.cfg.maxListLimit(); limit > ceiling {
		return nil, &cloud.Error{
			Op:        "Objects",
			Container: c.name,
			Err:       fmt.Errorf("object limit must be at most %d, got %d", ceiling, limit),
		}
	}

	prefix := path
	if prefix != "" {
		prefix = strings.TrimSuffix(prefix, cloud.Sep) + cloud.Sep
	}

	// Request one extra entry: a marker of "foo" can still return the
	// pseudo-directory "foo/" because of the trailing separator, and
	// that entry is dropped below.
	infos, err := c.conn.api.Objects(ctx, c.name, &swift.ObjectsOpts{
		Limit:     limit + 1,
		Prefix:    prefix,
		Delimiter: sep,
		Marker:    opts.Marker,
	})
	if err != nil {
		return nil, translateErr("Objects", c.name, "", err)
	}

	if len(infos) > 0 && opts.Marker != "" && isPseudo(infos[0]) &&
		strings.Trim(pseudoName(infos[0]), cloud.Sep) == opts.Marker {
		infos = infos[1:]
	}

	infos = collapse(infos)
	if len(infos) > limit {
		infos = infos[:limit]
	}

	objects := make([]cloud.Object, 0, len(infos))
	for _, info := range infos {
		obj, err := objectFromListing(c, info)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// collapse drops implied pseudo-directory entries that duplicate a
// dummy directory object in the same page. The implied entry always
// directly follows its dummy object in listing order, so tracking the
// most recently seen real name is enough.
func collapse(infos []swift.Object) []swift.Object {
	out := make([]swift.Object, 0, len(infos))
	var lastName string
	seenReal := false
	for _, info := range infos {
		if isPseudo(info) {
			if seenReal && strings.Trim(pseudoName(info), cloud.Sep) == lastName {
				continue
			}
			out = append(out, info)
			continue
		}
		lastName = info.Name
		seenReal = true
		out = append(out, info)
	}
	return out
}

// Object returns exactly one object by exact path.
func (c *Container) Object(ctx context.Context, path string) (cloud.Object, error) {
	info, headers, err := c.conn.api.Object(ctx, c.name, path)
	if err != nil {
		return nil, translateErr("Object", c.name, path, err)
	}
	return objectFromFetched(c, info, headers)
}
