package swift

import (
	"context"
	"testing"
	"time"

	"github.com/ncw/swift/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groveco/cloudbrowser/pkg/cloud"
)

func testContainer(api *fakeAPI) *Container {
	return &Container{conn: newTestConnection(api), name: "media"}
}

func TestChooseType(t *testing.T) {
	assert.Equal(t, cloud.TypeSubdir, chooseType("application/directory"))
	assert.Equal(t, cloud.TypeFile, chooseType("text/plain"))
	assert.Equal(t, cloud.TypeFile, chooseType(""))
}

func TestObjectFromListing_File(t *testing.T) {
	c := testContainer(&fakeAPI{})

	obj, err := objectFromListing(c, fileInfo("photos/beach.jpg", "image/jpeg", 1024, "2010-04-15T01:52:13.919070"))
	require.NoError(t, err)

	assert.Equal(t, "photos/beach.jpg", obj.Name())
	assert.Equal(t, int64(1024), obj.Size())
	assert.Equal(t, "image/jpeg", obj.ContentType())
	assert.Equal(t, cloud.TypeFile, obj.Type())
	assert.Equal(t, time.Date(2010, 4, 15, 1, 52, 13, 0, time.UTC), obj.LastModified())
}

func TestObjectFromListing_DummyDirectory(t *testing.T) {
	c := testContainer(&fakeAPI{})

	obj, err := objectFromListing(c, fileInfo("photos", "application/directory", 0, "2020-01-01T00:00:00"))
	require.NoError(t, err)

	assert.Equal(t, "photos", obj.Name())
	assert.Equal(t, cloud.TypeSubdir, obj.Type())
}

func TestObjectFromListing_ImpliedSubdir(t *testing.T) {
	c := testContainer(&fakeAPI{})

	obj, err := objectFromListing(c, subdirInfo("photos/"))
	require.NoError(t, err)

	assert.Equal(t, "photos", obj.Name())
	assert.Equal(t, cloud.TypeSubdir, obj.Type())
	assert.Zero(t, obj.Size())
	assert.True(t, obj.LastModified().IsZero())
}

func TestObjectFromListing_FractionIgnored(t *testing.T) {
	c := testContainer(&fakeAPI{})

	withFraction, err := objectFromListing(c, fileInfo("a.txt", "text/plain", 1, "2010-04-15T01:52:13.919070"))
	require.NoError(t, err)
	withoutFraction, err := objectFromListing(c, fileInfo("a.txt", "text/plain", 1, "2010-04-15T01:52:13"))
	require.NoError(t, err)

	assert.True(t, withFraction.LastModified().Equal(withoutFraction.LastModified()))
}

func TestObjectFromListing_MalformedTimestamp(t *testing.T) {
	c := testContainer(&fakeAPI{})

	_, err := objectFromListing(c, fileInfo("a.txt", "text/plain", 1, "not-a-timestamp"))
	assert.Error(t, err)
}

func TestObjectFromFetched(t *testing.T) {
	c := testContainer(&fakeAPI{})

	info := swift.Object{Name: "notes/todo.txt", ContentType: "text/plain", Bytes: 42}
	headers := swift.Headers{"Last-Modified": "Thu, 07 Jun 2007 18:57:07 GMT"}

	obj, err := objectFromFetched(c, info, headers)
	require.NoError(t, err)

	assert.Equal(t, "notes/todo.txt", obj.Name())
	assert.Equal(t, int64(42), obj.Size())
	assert.Equal(t, cloud.TypeFile, obj.Type())
	assert.Equal(t, time.Date(2007, 6, 7, 18, 57, 7, 0, time.UTC), obj.LastModified().UTC())
}

func TestObjectFromFetched_DirectoryMarker(t *testing.T) {
	c := testContainer(&fakeAPI{})

	info := swift.Object{Name: "photos", ContentType: "application/directory"}
	headers := swift.Headers{"Last-Modified": "Thu, 07 Jun 2007 18:57:07 GMT"}

	obj, err := objectFromFetched(c, info, headers)
	require.NoError(t, err)
	assert.Equal(t, cloud.TypeSubdir, obj.Type())
}

func TestObjectFromFetched_MissingLastModified(t *testing.T) {
	c := testContainer(&fakeAPI{})

	_, err := objectFromFetched(c, swift.Object{Name: "a.txt"}, swift.Headers{})
	assert.Error(t, err)
}

func TestObject_Read(t *testing.T) {
	api := &fakeAPI{contents: map[string][]byte{"notes/todo.txt": []byte("buy milk")}}
	c := testContainer(api)

	obj := &Object{container: c, name: "notes/todo.txt", objType: cloud.TypeFile}

	data, err := obj.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("buy milk"), data)
}

func TestObject_Read_Missing(t *testing.T) {
	api := &fakeAPI{contents: map[string][]byte{}}
	c := testContainer(api)

	obj := &Object{container: c, name: "missing/path", objType: cloud.TypeFile}

	_, err := obj.Read(context.Background())
	require.Error(t, err)
	assert.True(t, cloud.IsNoObject(err))
}
