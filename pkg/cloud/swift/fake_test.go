package swift

import (
	"context"

	"github.com/ncw/swift/v2"
)

// fakeAPI implements API in memory, recording every vendor call so
// tests can assert on call counts and request parameters.
type fakeAPI struct {
	calls []string

	authErr error

	containers    []swift.Container
	containersErr error

	listing     []swift.Object
	listingOpts swift.ObjectsOpts
	listingErr  error

	fetched        map[string]swift.Object
	fetchedHeaders map[string]swift.Headers

	contents map[string][]byte
}

var _ API = (*fakeAPI)(nil)

func (f *fakeAPI) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) Authenticate(ctx context.Context) error {
	f.record("Authenticate")
	return f.authErr
}

func (f *fakeAPI) ContainersAll(ctx context.Context, opts *swift.ContainersOpts) ([]swift.Container, error) {
	f.record("ContainersAll")
	return f.containers, f.containersErr
}

func (f *fakeAPI) Container(ctx context.Context, container string) (swift.Container, swift.Headers, error) {
	f.record("Container")
	for _, cont := range f.containers {
		if cont.Name == container {
			return cont, swift.Headers{}, nil
		}
	}
	return swift.Container{}, nil, swift.ContainerNotFound
}

func (f *fakeAPI) Objects(ctx context.Context, container string, opts *swift.ObjectsOpts) ([]swift.Object, error) {
	f.record("Objects")
	if opts != nil {
		f.listingOpts = *opts
	}
	if f.listingErr != nil {
		return nil, f.listingErr
	}
	// Honor the requested limit the way the vendor does.
	listing := f.listing
	if opts != nil && opts.Limit > 0 && len(listing) > opts.Limit {
		listing = listing[:opts.Limit]
	}
	return listing, nil
}

func (f *fakeAPI) Object(ctx context.Context, container string, objectName string) (swift.Object, swift.Headers, error) {
	f.record("Object")
	info, ok := f.fetched[objectName]
	if !ok {
		return swift.Object{}, nil, swift.ObjectNotFound
	}
	headers := f.fetchedHeaders[objectName]
	if headers == nil {
		headers = swift.Headers{"Last-Modified": "Thu, 07 Jun 2007 18:57:07 GMT"}
	}
	return info, headers, nil
}

func (f *fakeAPI) ObjectGetBytes(ctx context.Context, container string, objectName string) ([]byte, error) {
	f.record("ObjectGetBytes")
	data, ok := f.contents[objectName]
	if !ok {
		return nil, swift.ObjectNotFound
	}
	return data, nil
}

// newTestConnection wires a Connection to a fake API with a valid
// config.
func newTestConnection(api *fakeAPI) *Connection {
	return &Connection{
		cfg: Config{Account: "tester", Key: "secret"},
		api: api,
	}
}

// fileInfo builds a real file listing entry.
func fileInfo(name, contentType string, size int64, lastModified string) swift.Object {
	return swift.Object{
		Name:               name,
		ContentType:        contentType,
		Bytes:              size,
		ServerLastModified: lastModified,
	}
}

// subdirInfo builds an implied pseudo-directory listing entry the way
// the SDK surfaces them: SubDir set, Name mirrored from it.
func subdirInfo(name string) swift.Object {
	return swift.Object{
		Name:            name,
		SubDir:          name,
		PseudoDirectory: true,
	}
}
