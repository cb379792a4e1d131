package swift

import (
	"context"
	"strings"
	"time"

	"github.com/ncw/swift/v2"

	"github.com/groveco/cloudbrowser/pkg/cloud"
)

// dirContentType marks dummy directory objects: real stored objects
// manually uploaded to represent a pseudo-directory.
const dirContentType = "application/directory"

// listingTimeLayout matches listing timestamps, eg 2010-04-15T01:52:13.
// Any sub-second fraction is cut off before parsing.
const listingTimeLayout = "2006-01-02T15:04:05"

// Object is one Swift storage object or pseudo-directory entry.
type Object struct {
	container    *Container
	name         string
	size         int64
	contentType  string
	lastModified time.Time
	objType      cloud.ObjectType
}

var _ cloud.Object = (*Object)(nil)

// Name is the object name, unique within its container.
func (o *Object) Name() string { return o.name }

// Size is the object size in bytes.
func (o *Object) Size() int64 { return o.size }

// ContentType is the MIME type reported by the vendor.
func (o *Object) ContentType() string { return o.contentType }

// LastModified is the vendor-reported modification time.
func (o *Object) LastModified() time.Time { return o.lastModified }

// Type reports whether the entry is a file or a pseudo-directory.
func (o *Object) Type() cloud.ObjectType { return o.objType }

// Read returns the full payload bytes of the object.
func (o *Object) Read(ctx context.Context) ([]byte, error) {
	b, err := o.container.conn.api.ObjectGetBytes(ctx, o.container.name, o.name)
	if err != nil {
		return nil, translateErr("Read", o.container.name, o.name, err)
	}
	return b, nil
}

// chooseType maps a content type onto the entry type.
func chooseType(contentType string) cloud.ObjectType {
	if contentType == dirContentType {
		return cloud.TypeSubdir
	}
	return cloud.TypeFile
}

// isPseudo reports whether a listing entry is an implied
// pseudo-directory synthesized by the delimiter query.
func isPseudo(info swift.Object) bool {
	return info.SubDir != "" || info.PseudoDirectory
}

// pseudoName returns the raw name of a pseudo-directory entry, which
// carries a trailing separator.
func pseudoName(info swift.Object) string {
	if info.SubDir != "" {
		return info.SubDir
	}
	return info.Name
}

// objectFromListing builds an Object from one listing entry: either an
// implied pseudo-directory or full file metadata.
//
// Malformed timestamps are not handled defensively; a vendor response
// that fails to parse propagates as an error.
func objectFromListing(c *Container, info swift.Object) (*Object, error) {
	if isPseudo(info) {
		return &Object{
			container: c,
			name:      strings.TrimSuffix(pseudoName(info), cloud.Sep),
			objType:   cloud.TypeSubdir,
		}, nil
	}

	// eg 2010-04-15T01:52:13.919070
	raw, _, _ := strings.Cut(info.ServerLastModified, ".")
	lastModified, err := time.Parse(listingTimeLayout, raw)
	if err != nil {
		return nil, err
	}

	return &Object{
		container:    c,
		name:         info.Name,
		size:         info.Bytes,
		contentType:  info.ContentType,
		lastModified: lastModified,
		objType:      chooseType(info.ContentType),
	}, nil
}

// objectFromFetched builds an Object from a full object fetch, where
// the modification time arrives as an RFC 1123 header value,
// eg Thu, 07 Jun 2007 18:57:07 GMT.
func objectFromFetched(c *Container, info swift.Object, headers swift.Headers) (*Object, error) {
	lastModified, err := time.Parse(time.RFC1123, headers["Last-Modified"])
	if err != nil {
		return nil, err
	}

	return &Object{
		container:    c,
		name:         info.Name,
		size:         info.Bytes,
		contentType:  info.ContentType,
		lastModified: lastModified,
		objType:      chooseType(info.ContentType),
	}, nil
}
