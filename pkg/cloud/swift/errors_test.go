package swift

import (
	"errors"
	"testing"

	"github.com/ncw/swift/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groveco/cloudbrowser/pkg/cloud"
)

func TestTranslateErr_Nil(t *testing.T) {
	assert.NoError(t, translateErr("Objects", "media", "", nil))
}

func TestTranslateErr_KnownErrors(t *testing.T) {
	tests := []struct {
		name     string
		vendor   error
		expected error
	}{
		{"container not found", swift.ContainerNotFound, cloud.ErrNoContainer},
		{"object not found", swift.ObjectNotFound, cloud.ErrNoObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateErr("Op", "media", "path", tt.vendor)
			assert.True(t, errors.Is(err, tt.expected))
		})
	}
}

func TestTranslateErr_UnknownErrorKeepsMessage(t *testing.T) {
	vendor := errors.New("503 Service Unavailable")
	err := translateErr("Objects", "media", "", vendor)

	var cloudErr *cloud.Error
	require.True(t, errors.As(err, &cloudErr))
	assert.Equal(t, "Objects", cloudErr.Op)
	assert.Equal(t, "media", cloudErr.Container)
	assert.True(t, errors.Is(err, vendor))
	assert.Contains(t, err.Error(), "503 Service Unavailable")
	assert.False(t, cloud.IsNoContainer(err))
	assert.False(t, cloud.IsNoObject(err))
}

func TestTranslateErr_Context(t *testing.T) {
	err := translateErr("Object", "media", "photos/beach.jpg", swift.ObjectNotFound)

	var cloudErr *cloud.Error
	require.True(t, errors.As(err, &cloudErr))
	assert.Equal(t, "Object", cloudErr.Op)
	assert.Equal(t, "media", cloudErr.Container)
	assert.Equal(t, "photos/beach.jpg", cloudErr.Object)
}
